// File: types.go
// Role: VertexID, Edge, Graph declarations, sentinel errors and the constructor.
// Concurrency:
//   - Graph mutations and reads share one sync.RWMutex (mu).
//   - View (view.go) carries no lock; it is immutable after Freeze.

package core

import (
	"errors"
	"sync"
)

// VertexID addresses a vertex inside one Graph or View. IDs are dense and
// start at 0; the same street node maps to unrelated IDs in different graphs.
type VertexID int

// InvalidVertexID is returned wherever a vertex cannot be produced.
const InvalidVertexID VertexID = -1

// Sentinel errors for core graph operations. AddEdge itself reports failure
// through its bool result; ValidateEdge exposes the reason.
var (
	// ErrVertexNotFound indicates an edge endpoint outside [0, VertexCount).
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrNegativeWeight indicates a negative edge weight.
	ErrNegativeWeight = errors.New("core: negative edge weight")

	// ErrInvalidWeight indicates a NaN edge weight.
	ErrInvalidWeight = errors.New("core: edge weight is not a number")
)

// Edge is one directed, weighted connection leaving a vertex.
type Edge struct {
	// To is the destination vertex.
	To VertexID

	// Weight is the non-negative traversal cost (miles, seconds, …).
	Weight float64
}

// vertex is the internal record for one vertex: its tag and outgoing edges.
type vertex[T any] struct {
	tag   T
	edges []Edge
}

// Graph is the builder-phase weighted digraph.
//
// All exported methods are safe for concurrent use, but the intended usage is
// single-threaded construction followed by Freeze.
type Graph[T any] struct {
	mu sync.RWMutex // guards vertices and edgeCount

	vertices  []vertex[T]
	edgeCount int
}

// GraphOption configures a Graph before its first vertex is added.
type GraphOption func(*graphConfig)

// graphConfig collects construction-time settings.
type graphConfig struct {
	vertexCapacity int
}

// WithVertexCapacity pre-allocates room for n vertices. Negative values are ignored.
func WithVertexCapacity(n int) GraphOption {
	return func(c *graphConfig) {
		if n > 0 {
			c.vertexCapacity = n
		}
	}
}

// NewGraph creates an empty Graph.
// Complexity: O(capacity).
func NewGraph[T any](opts ...GraphOption) *Graph[T] {
	var cfg graphConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Graph[T]{vertices: make([]vertex[T], 0, cfg.vertexCapacity)}
}
