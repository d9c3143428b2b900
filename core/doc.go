// Package core provides the weighted directed graph used by every router in
// citypath.
//
// A Graph G = (V,E) here is deliberately narrow:
//
//   - Vertices are addressed by dense integer IDs (0, 1, 2, …) handed out by
//     AddVertex in call order. IDs are never reused or reordered.
//   - Every vertex carries one opaque, typed tag (Graph[T]); the planner stores
//     the originating street-node ID there and reads it back after a search.
//   - Edges are directed, carry a non-negative float64 weight, and are kept in
//     insertion order per source vertex. A "bidirectional" AddEdge simply
//     stores one edge in each direction.
//   - Parallel edges are kept as-is. Search algorithms naturally prefer the
//     cheapest one; nothing is deduplicated or summed at insert time.
//
// Lifecycle:
//
//	Graph[T]   builder phase: AddVertex / AddEdge, guarded by a sync.RWMutex.
//	Freeze()   deep-copies the catalog into a View[T].
//	View[T]    immutable handle; no mutators exist, so concurrent readers
//	           need no locking at all.
//
// Core Methods:
//
//	AddVertex(tag T) VertexID                              // O(1)
//	VertexTag(id VertexID) (T, bool)                       // O(1)
//	AddEdge(src, dest VertexID, w float64, bidir bool) bool // O(1)
//	OutEdges(id VertexID) []Edge                           // O(1), shared slice
//	VertexCount() int / EdgeCount() int                    // O(1)
//	Freeze() *View[T]                                      // O(V+E)
//
// Contract violations (unknown vertex, negative or NaN weight) are reported
// by return values, never by panics: AddEdge returns false and leaves the
// graph untouched, VertexTag returns the zero tag and false.
package core
