// File: query.go
// Role: read-only planner queries and the optional result cache.
// Concurrency:
//   - All methods only read frozen graphs and immutable maps; gcache is
//     internally synchronized.

package planner

import (
	"github.com/katalvlaran/citypath/core"
	"github.com/katalvlaran/citypath/dijkstra"
	"github.com/katalvlaran/citypath/streetmap"
)

// NoPathExists is the distance or duration reported for an unreachable
// destination or an unknown node.
const NoPathExists = dijkstra.NoPathExists

type queryKind uint8

const (
	shortestQuery queryKind = iota
	fastestQuery
)

type queryKey struct {
	kind      queryKind
	src, dest streetmap.NodeID
}

type shortestResult struct {
	miles float64
	path  []streetmap.NodeID
}

type fastestResult struct {
	hours float64
	path  []TripStep
}

// NodeCount returns the number of distinct street nodes in the planner.
func (p *Planner) NodeCount() int { return len(p.sorted) }

// SortedNodeByIndex returns the index-th node in ascending node-ID order.
func (p *Planner) SortedNodeByIndex(index int) (streetmap.Node, bool) {
	if index < 0 || index >= len(p.sorted) {
		return nil, false
	}

	return p.sorted[index], true
}

// FindShortestPath returns the shortest distance in miles from src to dest
// and the node path, or (NoPathExists, nil).
func (p *Planner) FindShortestPath(src, dest streetmap.NodeID) (float64, []streetmap.NodeID) {
	key := queryKey{kind: shortestQuery, src: src, dest: dest}
	if v, ok := p.cached(key); ok {
		r := v.(shortestResult)
		return r.miles, append([]streetmap.NodeID(nil), r.path...)
	}

	miles, path := NoPathExists, []streetmap.NodeID(nil)
	if vs, vd, ok := p.vertices(src, dest); ok && dijkstra.MayReach(p.distanceComp, vs, vd) {
		var vpath []core.VertexID
		miles, vpath = dijkstra.ShortestPath(p.distance, vs, vd)
		if miles != NoPathExists {
			path = tags(p.distance, vpath)
		}
	}

	p.store(key, shortestResult{miles: miles, path: path})

	return miles, append([]streetmap.NodeID(nil), path...)
}

// FindFastestPath returns the fastest travel time in hours from src to dest
// and the mode-tagged steps, or (NoPathExists, nil).
//
// With bike priority (the default) a reachable bike route is returned as-is.
// Without it the faster of bike and walk/bus is returned; bike wins ties.
// Walk/bus steps are tagged Bus when the hop into them rides a bus.
func (p *Planner) FindFastestPath(src, dest streetmap.NodeID) (float64, []TripStep) {
	key := queryKey{kind: fastestQuery, src: src, dest: dest}
	if v, ok := p.cached(key); ok {
		r := v.(fastestResult)
		return r.hours, append([]TripStep(nil), r.path...)
	}

	hours, steps := p.fastest(src, dest)
	p.store(key, fastestResult{hours: hours, path: steps})

	return hours, append([]TripStep(nil), steps...)
}

func (p *Planner) fastest(src, dest streetmap.NodeID) (float64, []TripStep) {
	vs, vd, ok := p.vertices(src, dest)
	if !ok {
		return NoPathExists, nil
	}

	bikeSec, bikePath := NoPathExists, []core.VertexID(nil)
	if dijkstra.MayReach(p.bikeComp, vs, vd) {
		bikeSec, bikePath = dijkstra.ShortestPath(p.bike, vs, vd)
	}
	if p.bikePriority && bikeSec != NoPathExists {
		return bikeSec / secondsPerHour, p.bikeSteps(bikePath)
	}

	wbSec, wbPath := NoPathExists, []core.VertexID(nil)
	if dijkstra.MayReach(p.walkBusComp, vs, vd) {
		wbSec, wbPath = dijkstra.ShortestPath(p.walkBus, vs, vd)
	}
	if bikeSec != NoPathExists && bikeSec <= wbSec {
		return bikeSec / secondsPerHour, p.bikeSteps(bikePath)
	}
	if wbSec == NoPathExists {
		return NoPathExists, nil
	}

	return wbSec / secondsPerHour, p.walkBusSteps(wbPath)
}

func (p *Planner) bikeSteps(vpath []core.VertexID) []TripStep {
	ids := tags(p.bike, vpath)
	steps := make([]TripStep, len(ids))
	for i, id := range ids {
		steps[i] = TripStep{Mode: Bike, NodeID: id}
	}

	return steps
}

// walkBusSteps tags each step by the hop that reaches it; the first step
// inherits the mode of the second.
func (p *Planner) walkBusSteps(vpath []core.VertexID) []TripStep {
	ids := tags(p.walkBus, vpath)
	steps := make([]TripStep, len(ids))
	for i, id := range ids {
		steps[i] = TripStep{Mode: Walk, NodeID: id}
		if i == 0 {
			continue
		}
		if _, bus := p.busHops[hop{ids[i-1], id}]; bus {
			steps[i].Mode = Bus
		}
	}
	if len(steps) > 1 {
		steps[0].Mode = steps[1].Mode
	}

	return steps
}

// vertices maps both endpoints to vertex IDs; false if either is unknown.
func (p *Planner) vertices(src, dest streetmap.NodeID) (core.VertexID, core.VertexID, bool) {
	vs, ok1 := p.vertexOf[src]
	vd, ok2 := p.vertexOf[dest]

	return vs, vd, ok1 && ok2
}

func tags(v *core.View[streetmap.NodeID], vpath []core.VertexID) []streetmap.NodeID {
	out := make([]streetmap.NodeID, 0, len(vpath))
	for _, id := range vpath {
		tag, _ := v.VertexTag(id)
		out = append(out, tag)
	}

	return out
}

func (p *Planner) cached(key queryKey) (interface{}, bool) {
	if p.cache == nil {
		return nil, false
	}
	v, err := p.cache.Get(key)
	if err != nil {
		return nil, false
	}

	return v, true
}

func (p *Planner) store(key queryKey, v interface{}) {
	if p.cache == nil {
		return
	}
	if err := p.cache.Set(key, v); err != nil {
		p.log.Debug("query cache set failed", "error", err)
	}
}
