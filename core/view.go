// File: view.go
// Role: Immutable graph handle produced by Graph.Freeze.
// Determinism:
//   - Preserves vertex IDs, tags and per-vertex edge order exactly.
// Concurrency:
//   - Read lock on the source while copying; the View itself needs no locks.

package core

// View is a read-only snapshot of a Graph. It exposes no mutators, so any
// number of goroutines may query it without synchronization.
type View[T any] struct {
	tags      []T
	edges     [][]Edge
	edgeCount int
}

// Freeze deep-copies the graph into a View. Later mutations of g are not
// reflected in the View.
//
// Complexity: O(V + E).
func (g *Graph[T]) Freeze() *View[T] {
	g.mu.RLock()
	defer g.mu.RUnlock()

	v := &View[T]{
		tags:      make([]T, len(g.vertices)),
		edges:     make([][]Edge, len(g.vertices)),
		edgeCount: g.edgeCount,
	}
	for i := range g.vertices {
		v.tags[i] = g.vertices[i].tag
		if n := len(g.vertices[i].edges); n > 0 {
			v.edges[i] = make([]Edge, n)
			copy(v.edges[i], g.vertices[i].edges)
		}
	}

	return v
}

// VertexCount returns the number of vertices.
func (v *View[T]) VertexCount() int { return len(v.tags) }

// EdgeCount returns the number of directed edges.
func (v *View[T]) EdgeCount() int { return v.edgeCount }

// HasVertex reports whether id addresses an existing vertex.
func (v *View[T]) HasVertex(id VertexID) bool {
	return id >= 0 && int(id) < len(v.tags)
}

// VertexTag returns the tag of id, or the zero value and false if id is out of range.
func (v *View[T]) VertexTag(id VertexID) (T, bool) {
	if !v.HasVertex(id) {
		var zero T
		return zero, false
	}

	return v.tags[id], true
}

// OutEdges returns the edges leaving id (nil for an unknown id).
// The slice must not be modified.
func (v *View[T]) OutEdges(id VertexID) []Edge {
	if !v.HasVertex(id) {
		return nil
	}

	return v.edges[id]
}
