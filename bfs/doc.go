// Package bfs provides breadth-first search over core graphs, returning
// unweighted hop distances, parent links and visit order, plus weakly
// connected component labelling.
//
// What
//
//   - BFS explores vertices in non-decreasing hop count from a start vertex.
//     The Result holds Order (visit sequence), Depth and Parent.
//   - Hooks and limits: WithOnVisit (may abort with an error), WithMaxDepth,
//     WithFilterEdge and WithContext.
//   - Components labels weakly connected components. The dijkstra Router uses
//     the labels to answer queries between components without searching.
//
// Determinism
//
//	Neighbors are enqueued in OutEdges order, which is edge insertion order,
//	so the visit sequence is reproducible.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E)
//   - Memory: O(V) for BFS, O(V + E) for Components (mirrored adjacency).
package bfs
