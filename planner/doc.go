// Package planner is the multimodal trip planner: it turns a street map and a
// bus system into three parallel weighted graphs and answers distance and
// travel-time queries over them.
//
// Graphs (one vertex per street node, same vertex IDs in all three):
//
//	distance  miles;   bidirectional unless the way is oneway=yes
//	bike      seconds; same direction rules, no edge on bicycle=no ways
//	walk/bus  seconds; walking ignores oneway, a bus hop replaces walking
//	          when a route serves the two nodes consecutively and is faster
//
// Bus time for a hop is distance / DefaultSpeedLimit plus BusStopTime. Every
// consecutive stop pair of every route also gets a direct bus edge, so buses
// connect stops that share no way segment.
//
// Queries:
//
//	FindShortestPath(src, dest) → miles, node path
//	FindFastestPath(src, dest)  → hours, []TripStep
//	GetPathDescription(steps)   → directions
//	NearestNode(lat, lon)       → node (k-d tree via github.com/kyroy/kdtree)
//
// Unreachable or unknown endpoints yield NoPathExists and a nil path; this is
// never an error.
//
// Fastest-path policy: by default a reachable bike route is always returned,
// even when walking and riding the bus would be quicker. WithBikePriority(false)
// compares durations instead.
//
// Lifecycle: New does all work eagerly and freezes the graphs. A Planner is
// immutable afterwards and safe for concurrent queries; WithQueryCache adds a
// synchronized LRU (github.com/bluele/gcache) in front of both path queries.
package planner
