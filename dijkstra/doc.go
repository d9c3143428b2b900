// Package dijkstra provides single-pair Dijkstra search on core graphs with
// non-negative edge weights, plus the Router facade used by the planner.
//
// Overview:
//
//   - ShortestPath(g, src, dest, opts...) returns the minimum total weight and
//     the vertex path from src to dest, or NoPathExists and a nil path.
//   - A min-heap (container/heap) always expands the next-closest vertex;
//     stale heap entries are skipped (lazy decrease-key).
//   - Ties are broken by heap insertion order, so results are reproducible.
//   - Non-negative weights are a precondition; core.Graph.AddEdge rejects
//     negative weights, so no pre-scan is needed here.
//
// Sentinel handling:
//
//   - Invalid vertex IDs, a nil graph, and unreachable destinations all yield
//     NoPathExists (math.MaxFloat64), which is distinct from 0 and from every
//     real distance. The returned path is nil in that case.
//
// Options:
//
//   - WithMaxDistance(x): destinations farther than x are reported unreachable.
//   - WithInfEdgeThreshold(t): edges with weight ≥ t are impassable.
//
// Router:
//
//	r := dijkstra.NewRouter[uint64]()
//	a := r.AddVertex(100)
//	b := r.AddVertex(200)
//	r.AddEdge(a, b, 1.5, true)
//	d, path := r.FindShortestPath(a, b) // 1.5, [a b]
//	view := r.Freeze()                   // immutable, safe for concurrent ShortestPath
//
// Precompute(deadline) labels weakly connected components (package bfs);
// afterwards FindShortestPath answers cross-component queries at once.
// MayReach applies the same test to labels kept next to a frozen View.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
//
// Thread safety:
//
//   - ShortestPath allocates its own state per call. Running it concurrently
//     on a frozen core.View needs no synchronization.
package dijkstra
