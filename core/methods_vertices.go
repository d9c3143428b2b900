// File: methods_vertices.go
// Role: Vertex lifecycle & queries: AddVertex, VertexTag, VertexCount, HasVertex.
// Determinism:
//   - AddVertex hands out IDs 0,1,2,… in call order.
// Concurrency:
//   - Mutations under mu write lock, queries under mu read lock.

package core

// AddVertex appends a vertex carrying tag and returns its ID.
//
// Behavior highlights:
//   - Always succeeds; IDs are monotonically increasing starting at 0.
//   - VertexCount() after the call equals the number of AddVertex calls.
//
// Complexity: O(1) amortized.
func (g *Graph[T]) AddVertex(tag T) VertexID {
	g.mu.Lock()
	defer g.mu.Unlock()

	id := VertexID(len(g.vertices))
	g.vertices = append(g.vertices, vertex[T]{tag: tag})

	return id
}

// VertexTag returns the tag given to AddVertex for id.
// For an out-of-range id it returns the zero value of T and false.
// Complexity: O(1).
func (g *Graph[T]) VertexTag(id VertexID) (T, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.hasVertex(id) {
		var zero T
		return zero, false
	}

	return g.vertices[id].tag, true
}

// HasVertex reports whether id addresses an existing vertex.
// Complexity: O(1).
func (g *Graph[T]) HasVertex(id VertexID) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.hasVertex(id)
}

// VertexCount returns the number of vertices.
// Complexity: O(1).
func (g *Graph[T]) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.vertices)
}

// hasVertex is the lock-free range check; callers hold mu.
func (g *Graph[T]) hasVertex(id VertexID) bool {
	return id >= 0 && int(id) < len(g.vertices)
}
