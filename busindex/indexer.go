// File: indexer.go
// Role: Indexer construction and queries.
// Determinism:
//   - Stops iterate by ascending stop ID, routes by ascending name, and
//     RoutesByNodeIDs returns routes sorted by name.
// Concurrency:
//   - Immutable after New; safe for concurrent readers.

package busindex

import (
	"sort"

	"github.com/katalvlaran/citypath/bussystem"
	"github.com/katalvlaran/citypath/streetmap"
)

// nodePair is an ordered (source node, destination node) key.
type nodePair struct {
	src, dest streetmap.NodeID
}

// Indexer answers stop and route queries in street-node space.
type Indexer struct {
	stops      []bussystem.Stop
	routes     []bussystem.Route
	stopByID   map[bussystem.StopID]bussystem.Stop
	stopByNode map[streetmap.NodeID]bussystem.Stop
	pairs      map[nodePair][]bussystem.Route
}

// New indexes bs eagerly. A nil bus system yields an empty index.
//
// Steps:
//  1. Collect stops, sort by ID, map ID → stop and node → stop.
//  2. Collect routes, sort by name.
//  3. For each route (in name order) and each consecutive stop pair whose
//     stops both exist, append the route to pairs[(node_i, node_i+1)].
//
// Complexity: O(S log S + R log R + Σ|route|).
func New(bs bussystem.BusSystem) *Indexer {
	ix := &Indexer{
		stopByID:   make(map[bussystem.StopID]bussystem.Stop),
		stopByNode: make(map[streetmap.NodeID]bussystem.Stop),
		pairs:      make(map[nodePair][]bussystem.Route),
	}
	if bs == nil {
		return ix
	}

	ix.indexStops(bs)
	ix.indexRoutes(bs)
	ix.indexPairs()

	return ix
}

func (ix *Indexer) indexStops(bs bussystem.BusSystem) {
	for i := 0; i < bs.StopCount(); i++ {
		s := bs.StopByIndex(i)
		if s == nil {
			continue
		}
		ix.stops = append(ix.stops, s)
		ix.stopByID[s.ID()] = s
	}
	sort.SliceStable(ix.stops, func(i, j int) bool { return ix.stops[i].ID() < ix.stops[j].ID() })
	for _, s := range ix.stops {
		// First stop by ID wins a shared node.
		if _, taken := ix.stopByNode[s.NodeID()]; !taken {
			ix.stopByNode[s.NodeID()] = s
		}
	}
}

func (ix *Indexer) indexRoutes(bs bussystem.BusSystem) {
	for i := 0; i < bs.RouteCount(); i++ {
		if r := bs.RouteByIndex(i); r != nil {
			ix.routes = append(ix.routes, r)
		}
	}
	sort.SliceStable(ix.routes, func(i, j int) bool { return ix.routes[i].Name() < ix.routes[j].Name() })
}

func (ix *Indexer) indexPairs() {
	for _, r := range ix.routes {
		for i := 0; i+1 < r.StopCount(); i++ {
			from, ok1 := ix.stopByID[r.GetStopID(i)]
			to, ok2 := ix.stopByID[r.GetStopID(i+1)]
			if !ok1 || !ok2 {
				continue
			}
			key := nodePair{src: from.NodeID(), dest: to.NodeID()}
			set := ix.pairs[key]
			// Routes arrive in name order, so a repeat is always the last entry.
			if n := len(set); n > 0 && set[n-1] == r {
				continue
			}
			ix.pairs[key] = append(set, r)
		}
	}
}

// StopCount returns the number of indexed stops.
func (ix *Indexer) StopCount() int { return len(ix.stops) }

// RouteCount returns the number of indexed routes.
func (ix *Indexer) RouteCount() int { return len(ix.routes) }

// SortedStopByIndex returns the index-th stop in ascending stop-ID order, or nil.
func (ix *Indexer) SortedStopByIndex(index int) bussystem.Stop {
	if index < 0 || index >= len(ix.stops) {
		return nil
	}

	return ix.stops[index]
}

// SortedRouteByIndex returns the index-th route in ascending name order, or nil.
func (ix *Indexer) SortedRouteByIndex(index int) bussystem.Route {
	if index < 0 || index >= len(ix.routes) {
		return nil
	}

	return ix.routes[index]
}

// StopByID returns the stop with the given ID, or nil.
func (ix *Indexer) StopByID(id bussystem.StopID) bussystem.Stop {
	if s, ok := ix.stopByID[id]; ok {
		return s
	}

	return nil
}

// StopByNodeID returns the stop located on the given street node, or nil.
func (ix *Indexer) StopByNodeID(id streetmap.NodeID) bussystem.Stop {
	if s, ok := ix.stopByNode[id]; ok {
		return s
	}

	return nil
}

// RoutesByNodeIDs returns the routes on which node src is immediately
// followed by node dest, sorted by name. The bool is true iff the result is
// non-empty. The returned slice is a copy.
//
// Complexity: O(1) average plus the size of the result.
func (ix *Indexer) RoutesByNodeIDs(src, dest streetmap.NodeID) ([]bussystem.Route, bool) {
	set, ok := ix.pairs[nodePair{src: src, dest: dest}]
	if !ok {
		return nil, false
	}
	out := make([]bussystem.Route, len(set))
	copy(out, set)

	return out, true
}

// RouteBetweenNodeIDs reports whether any route serves src → dest consecutively.
func (ix *Indexer) RouteBetweenNodeIDs(src, dest streetmap.NodeID) bool {
	_, ok := ix.pairs[nodePair{src: src, dest: dest}]
	return ok
}
