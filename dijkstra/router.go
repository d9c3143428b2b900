// File: router.go
// Role: Router facade over core.Graph with component-label precompute.

package dijkstra

import (
	"context"
	"time"

	"github.com/katalvlaran/citypath/bfs"
	"github.com/katalvlaran/citypath/core"
)

// Router is the path-router facade: a tagged core.Graph plus Dijkstra
// queries against it. Build it with AddVertex/AddEdge, then either query it
// directly or Freeze it into an immutable core.View for concurrent use.
type Router[T any] struct {
	g    *core.Graph[T]
	comp []int // weak component per vertex; nil until Precompute succeeds
}

// NewRouter returns an empty Router. Graph options are passed through to core.NewGraph.
func NewRouter[T any](opts ...core.GraphOption) *Router[T] {
	return &Router[T]{g: core.NewGraph[T](opts...)}
}

// VertexCount returns the number of vertices added so far.
func (r *Router[T]) VertexCount() int { return r.g.VertexCount() }

// EdgeCount returns the number of directed edges stored.
func (r *Router[T]) EdgeCount() int { return r.g.EdgeCount() }

// AddVertex adds a vertex carrying tag and returns its ID (0, 1, 2, …).
func (r *Router[T]) AddVertex(tag T) core.VertexID { return r.g.AddVertex(tag) }

// GetVertexTag returns the tag of id; false when id is out of range.
func (r *Router[T]) GetVertexTag(id core.VertexID) (T, bool) { return r.g.VertexTag(id) }

// AddEdge adds src→dest (and dest→src when bidirectional). It returns false
// without touching the graph for unknown endpoints or a negative weight.
// A successful AddEdge discards precomputed component labels.
func (r *Router[T]) AddEdge(src, dest core.VertexID, weight float64, bidirectional bool) bool {
	if !r.g.AddEdge(src, dest, weight, bidirectional) {
		return false
	}
	r.comp = nil

	return true
}

// Precompute labels the weakly connected components of the graph so that
// queries between components are answered without a search. Labelling that
// has not finished by deadline is abandoned and every query falls back to a
// full search. It always returns true.
func (r *Router[T]) Precompute(deadline time.Time) bool {
	ctx, cancel := context.WithDeadline(context.Background(), deadline)
	defer cancel()

	labels, _, err := bfs.Components(ctx, r.g)
	if err != nil {
		labels = nil
	}
	r.comp = labels

	return true
}

// Components returns the labels computed by Precompute (indexed by vertex
// ID), or nil.
func (r *Router[T]) Components() []int { return r.comp }

// FindShortestPath returns the shortest distance from src to dest and the
// vertex path, or (NoPathExists, nil).
func (r *Router[T]) FindShortestPath(src, dest core.VertexID) (float64, []core.VertexID) {
	if !MayReach(r.comp, src, dest) {
		return NoPathExists, nil
	}

	return ShortestPath(r.g, src, dest)
}

// MayReach reports whether src and dest share a component label. With nil
// labels or out-of-range IDs it returns true and leaves the answer to the
// search.
func MayReach(labels []int, src, dest core.VertexID) bool {
	if labels == nil || src < 0 || dest < 0 || int(src) >= len(labels) || int(dest) >= len(labels) {
		return true
	}

	return labels[src] == labels[dest]
}

// Freeze snapshots the router's graph into an immutable View.
func (r *Router[T]) Freeze() *core.View[T] { return r.g.Freeze() }
