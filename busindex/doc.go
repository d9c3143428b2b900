// Package busindex precomputes lookup structures over a bus system so the
// planner can ask, in constant time, which routes connect two street nodes.
//
// Index contents:
//
//   - stops sorted by stop ID (SortedStopByIndex) and routes sorted by name
//     (SortedRouteByIndex);
//   - stop ID → stop and street node → stop;
//   - (node A, node B) → routes whose stop sequence visits A's stop
//     immediately followed by B's stop.
//
// Only consecutive stops produce pairs: for a route [S1 S2 S3] on nodes
// [N1 N2 N3], RouteBetweenNodeIDs(N1, N2) and (N2, N3) are true while
// (N1, N3) is false unless some other route serves it directly.
//
// The index is rebuilt from scratch by New; there is no incremental update.
package busindex
