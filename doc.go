// Package citypath is a multimodal trip planner for a city street map and its
// bus network: walk, bike and bus, shortest distance and fastest time, with
// turn-by-turn style directions.
//
// Layout:
//
//	core/       dense weighted digraph (builder Graph, frozen View)
//	dijkstra/   single-pair Dijkstra and the Router facade
//	bfs/        breadth-first search and weak component labels
//	geoutil/    haversine miles, bearings, DMS formatting (paulmach/orb)
//	streetmap/  OSM XML street map provider (paulmach/osm)
//	bussystem/  bus stops and routes from CSV
//	busindex/   sorted stop/route index and node-pair route lookup
//	planner/    three parallel graphs, fastest/shortest queries, directions
//	config/     YAML + environment configuration (yaml.v3, validator)
//	shell/      interactive commands and CSV trip export
//	cmd/citypath the binary
//
// Quick example (two intersections on one street):
//
//	1 ─── Main St ─── 2
//
//	> shortest 1 2
//	Shortest path is 0.5 mi.
//	> fastest 1 2
//	Fastest path takes 4 min 4 sec
//
//	go install github.com/katalvlaran/citypath/cmd/citypath@latest
package citypath
