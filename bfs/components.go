// File: components.go
// Role: weakly connected component labelling on top of BFS.
// Determinism:
//   - Labels are dense and assigned in ascending order of each component's
//     smallest vertex ID.

package bfs

import (
	"context"

	"github.com/katalvlaran/citypath/core"
)

// undirected is g with every edge mirrored.
type undirected [][]core.Edge

func (u undirected) VertexCount() int { return len(u) }

func (u undirected) OutEdges(id core.VertexID) []core.Edge { return u[id] }

func mirror(g Graph) undirected {
	n := g.VertexCount()
	u := make(undirected, n)
	for v := 0; v < n; v++ {
		for _, e := range g.OutEdges(core.VertexID(v)) {
			u[v] = append(u[v], e)
			u[e.To] = append(u[e.To], core.Edge{To: core.VertexID(v), Weight: e.Weight})
		}
	}

	return u
}

// Components labels the weakly connected components of g. Two vertices get
// the same label iff an undirected path links them, so different labels
// prove that no directed path exists either. It returns the labels indexed
// by vertex ID and the number of components, or ctx.Err() on cancellation.
//
// Complexity: O(V + E) time and memory.
func Components(ctx context.Context, g Graph) ([]int, int, error) {
	if g == nil {
		return nil, 0, ErrGraphNil
	}
	if err := ctx.Err(); err != nil {
		return nil, 0, err
	}

	u := mirror(g)
	labels := make([]int, len(u))
	for i := range labels {
		labels[i] = -1
	}

	count := 0
	for v := range u {
		if labels[v] >= 0 {
			continue
		}
		label := count
		_, err := BFS(u, core.VertexID(v),
			WithContext(ctx),
			WithOnVisit(func(id core.VertexID, _ int) error {
				labels[id] = label
				return nil
			}),
		)
		if err != nil {
			return nil, 0, err
		}
		count++
	}

	return labels, count, nil
}
