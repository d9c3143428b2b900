// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge, ValidateEdge, OutEdges, EdgeCount.
// Determinism:
//   - OutEdges(v) lists edges in insertion order.
// Concurrency:
//   - Mutations under mu write lock, queries under mu read lock.

package core

import (
	"fmt"
	"math"
)

// AddEdge stores a directed edge src→dest with the given weight and, when
// bidirectional is set, the mirror edge dest→src with the same weight.
//
// Steps:
//  1. Validate endpoints and weight (see ValidateEdge).
//  2. On failure return false; the graph is not touched.
//  3. Append the edge (and its mirror) to the source adjacency lists.
//
// Parallel edges are accepted. A bidirectional self-loop stores two edges.
//
// Complexity: O(1) amortized.
func (g *Graph[T]) AddEdge(src, dest VertexID, weight float64, bidirectional bool) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.validateEdge(src, dest, weight) != nil {
		return false
	}

	g.vertices[src].edges = append(g.vertices[src].edges, Edge{To: dest, Weight: weight})
	g.edgeCount++
	if bidirectional {
		g.vertices[dest].edges = append(g.vertices[dest].edges, Edge{To: src, Weight: weight})
		g.edgeCount++
	}

	return true
}

// ValidateEdge reports why AddEdge(src, dest, weight, …) would be rejected,
// or nil if it would succeed.
//
// Errors:
//   - ErrVertexNotFound: src or dest outside [0, VertexCount).
//   - ErrInvalidWeight:  weight is NaN.
//   - ErrNegativeWeight: weight < 0.
func (g *Graph[T]) ValidateEdge(src, dest VertexID, weight float64) error {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.validateEdge(src, dest, weight)
}

func (g *Graph[T]) validateEdge(src, dest VertexID, weight float64) error {
	if !g.hasVertex(src) {
		return fmt.Errorf("%w: source %d", ErrVertexNotFound, src)
	}
	if !g.hasVertex(dest) {
		return fmt.Errorf("%w: destination %d", ErrVertexNotFound, dest)
	}
	if math.IsNaN(weight) {
		return ErrInvalidWeight
	}
	if weight < 0 {
		return fmt.Errorf("%w: %v", ErrNegativeWeight, weight)
	}

	return nil
}

// OutEdges returns the edges leaving id, or nil for an unknown id.
//
// The returned slice aliases internal storage and must be treated as
// read-only. It stays valid (but may not observe later appends) after
// further AddEdge calls.
//
// Complexity: O(1).
func (g *Graph[T]) OutEdges(id VertexID) []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.hasVertex(id) {
		return nil
	}
	edges := g.vertices[id].edges

	return edges[:len(edges):len(edges)]
}

// EdgeCount returns the total number of stored directed edges; a
// bidirectional AddEdge counts twice.
// Complexity: O(1).
func (g *Graph[T]) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeCount
}
