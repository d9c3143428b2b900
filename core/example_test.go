package core_test

import (
	"fmt"

	"github.com/katalvlaran/citypath/core"
)

// ExampleGraph shows the builder → Freeze → View lifecycle.
func ExampleGraph() {
	g := core.NewGraph[string]()
	home := g.AddVertex("home")
	work := g.AddVertex("work")

	fmt.Println(g.AddEdge(home, work, 1.5, true))
	fmt.Println(g.AddEdge(home, work, -1, false)) // rejected, graph unchanged

	view := g.Freeze()
	tag, _ := view.VertexTag(work)
	fmt.Println(view.VertexCount(), view.EdgeCount(), tag)

	// Output:
	// true
	// false
	// 2 2 work
}
