// Package dijkstra_test provides benchmarks for ShortestPath.
package dijkstra_test

import (
	"testing"

	"github.com/katalvlaran/citypath/core"
	"github.com/katalvlaran/citypath/dijkstra"
)

// gridView builds a side×side 4-connected grid with unit weights.
func gridView(side int) *core.View[int] {
	g := core.NewGraph[int](core.WithVertexCapacity(side * side))
	for i := 0; i < side*side; i++ {
		g.AddVertex(i)
	}
	for y := 0; y < side; y++ {
		for x := 0; x < side; x++ {
			id := core.VertexID(y*side + x)
			if x+1 < side {
				g.AddEdge(id, id+1, 1, true)
			}
			if y+1 < side {
				g.AddEdge(id, id+core.VertexID(side), 1, true)
			}
		}
	}

	return g.Freeze()
}

// BenchmarkShortestPath_Grid100 measures a corner-to-corner query on a
// 100×100 grid, the worst case for early exit.
func BenchmarkShortestPath_Grid100(b *testing.B) {
	view := gridView(100)
	dest := core.VertexID(100*100 - 1)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		dijkstra.ShortestPath(view, 0, dest)
	}
}

// BenchmarkShortestPath_Neighbor measures a query that settles after a few pops.
func BenchmarkShortestPath_Neighbor(b *testing.B) {
	view := gridView(100)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		dijkstra.ShortestPath(view, 0, 1)
	}
}
