package bfs_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/citypath/bfs"
	"github.com/katalvlaran/citypath/core"
)

// BenchmarkBFS_Chain measures BFS on a linear chain graph of size N.
func BenchmarkBFS_Chain(b *testing.B) {
	const N = 10000
	g := chain(N).Freeze()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bfs.BFS(g, 0)
	}
}

// BenchmarkComponents_Islands labels N two-vertex islands.
func BenchmarkComponents_Islands(b *testing.B) {
	const N = 5000
	g := core.NewGraph[int](core.WithVertexCapacity(2 * N))
	for i := 0; i < 2*N; i++ {
		g.AddVertex(i)
	}
	for i := 0; i < N; i++ {
		g.AddEdge(core.VertexID(2*i), core.VertexID(2*i+1), 1, true)
	}
	v := g.Freeze()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _, _ = bfs.Components(context.Background(), v)
	}
}
