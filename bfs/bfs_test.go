package bfs_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/citypath/bfs"
	"github.com/katalvlaran/citypath/core"
)

// chain builds 0→1→…→n-1 with unit weights.
func chain(n int) *core.Graph[int] {
	g := core.NewGraph[int]()
	for i := 0; i < n; i++ {
		g.AddVertex(i)
	}
	for i := 0; i+1 < n; i++ {
		g.AddEdge(core.VertexID(i), core.VertexID(i+1), 1, false)
	}

	return g
}

func ids(v ...int) []core.VertexID {
	out := make([]core.VertexID, len(v))
	for i, x := range v {
		out[i] = core.VertexID(x)
	}

	return out
}

// ---- 1. Errors ----

func TestBFS_Errors(t *testing.T) {
	_, err := bfs.BFS(nil, 0)
	require.ErrorIs(t, err, bfs.ErrGraphNil)

	g := chain(2)
	_, err = bfs.BFS(g, 5)
	require.ErrorIs(t, err, bfs.ErrStartVertexNotFound)
	_, err = bfs.BFS(g, -1)
	require.ErrorIs(t, err, bfs.ErrStartVertexNotFound)

	_, err = bfs.BFS(g, 0, bfs.WithMaxDepth(-1))
	require.ErrorIs(t, err, bfs.ErrOptionViolation)
}

// ---- 2. Traversal ----

func TestBFS_DepthsAndPath(t *testing.T) {
	// 0→1→2→3 plus shortcut 0→3.
	g := chain(4)
	g.AddEdge(0, 3, 100, false)

	res, err := bfs.BFS(g, 0)
	require.NoError(t, err)
	require.Equal(t, ids(0, 1, 3, 2), res.Order)
	require.Equal(t, 1, res.Depth[3], "weights are ignored")
	require.Equal(t, 2, res.Depth[2])

	path, err := res.PathTo(3)
	require.NoError(t, err)
	require.Equal(t, ids(0, 3), path)

	path, err = res.PathTo(0)
	require.NoError(t, err)
	require.Equal(t, ids(0), path)
}

func TestBFS_FollowsDirection(t *testing.T) {
	res, err := bfs.BFS(chain(3), 2)
	require.NoError(t, err)
	require.Equal(t, ids(2), res.Order)

	_, err = res.PathTo(0)
	require.ErrorIs(t, err, bfs.ErrNotReached)
}

func TestBFS_MaxDepthAndFilter(t *testing.T) {
	res, err := bfs.BFS(chain(5), 0, bfs.WithMaxDepth(2))
	require.NoError(t, err)
	require.Equal(t, ids(0, 1, 2), res.Order)

	res, err = bfs.BFS(chain(5), 0, bfs.WithFilterEdge(func(from core.VertexID, e core.Edge) bool {
		return e.To != 3
	}))
	require.NoError(t, err)
	require.Equal(t, ids(0, 1, 2), res.Order)
}

func TestBFS_OnVisitAbort(t *testing.T) {
	stop := errors.New("stop")
	_, err := bfs.BFS(chain(5), 0, bfs.WithOnVisit(func(id core.VertexID, _ int) error {
		if id == 2 {
			return stop
		}
		return nil
	}))
	require.ErrorIs(t, err, stop)
}

func TestBFS_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := bfs.BFS(chain(3), 0, bfs.WithContext(ctx))
	require.ErrorIs(t, err, context.Canceled)
}

func TestBFS_OnFrozenView(t *testing.T) {
	res, err := bfs.BFS(chain(4).Freeze(), 1)
	require.NoError(t, err)
	require.Equal(t, ids(1, 2, 3), res.Order)
}

// ---- 3. Components ----

func TestComponents(t *testing.T) {
	// {0,1,2} linked one way only, {3,4}, {5} isolated.
	g := chain(3)
	for i := 3; i < 6; i++ {
		g.AddVertex(i)
	}
	g.AddEdge(4, 3, 1, false)

	labels, n, err := bfs.Components(context.Background(), g)
	require.NoError(t, err)
	require.Equal(t, 3, n)
	require.Equal(t, []int{0, 0, 0, 1, 1, 2}, labels)
}

func TestComponents_EmptyAndErrors(t *testing.T) {
	labels, n, err := bfs.Components(context.Background(), core.NewGraph[int]())
	require.NoError(t, err)
	require.Zero(t, n)
	require.Empty(t, labels)

	_, _, err = bfs.Components(context.Background(), nil)
	require.ErrorIs(t, err, bfs.ErrGraphNil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, _, err = bfs.Components(ctx, chain(3))
	require.ErrorIs(t, err, context.Canceled)
}
