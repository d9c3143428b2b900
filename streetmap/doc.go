// Package streetmap defines the street-map provider used by the planner and
// an OpenStreetMap implementation that reads OSM XML.
//
// The planner only needs a handful of capabilities: enumerate nodes and ways
// by index, look them up by ID, read a node's location, read a way's node
// sequence, and read key/value tags such as "oneway", "bicycle" or "name".
// StreetMap, Node and Way capture exactly that.
//
// Loading:
//
//	f, _ := os.Open("city.osm")
//	sm, err := streetmap.Load(ctx, f) // github.com/paulmach/osm/osmxml underneath
//
// Lookups never fail loudly: unknown indices and IDs yield nil, unknown tag
// keys yield "", and out-of-range way positions yield InvalidNodeID.
package streetmap
