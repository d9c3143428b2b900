// File: system.go
// Role: in-memory BusSystem with a small builder API.
// Concurrency:
//   - AddStop / AddRouteStop are construction-time only; reads are safe for
//     concurrent use once building is done.

package bussystem

import "github.com/katalvlaran/citypath/streetmap"

type stop struct {
	id   StopID
	node streetmap.NodeID
}

func (s *stop) ID() StopID                { return s.id }
func (s *stop) NodeID() streetmap.NodeID { return s.node }

type route struct {
	name  string
	stops []StopID
}

func (r *route) Name() string   { return r.name }
func (r *route) StopCount() int { return len(r.stops) }

func (r *route) GetStopID(index int) StopID {
	if index < 0 || index >= len(r.stops) {
		return InvalidStopID
	}

	return r.stops[index]
}

// System is the in-memory BusSystem. Stops keep insertion order; routes keep
// the order in which their names first appeared.
type System struct {
	stops       []*stop
	stopByID    map[StopID]*stop
	routes      []*route
	routeByName map[string]*route
}

// New returns an empty System.
func New() *System {
	return &System{
		stopByID:    make(map[StopID]*stop),
		routeByName: make(map[string]*route),
	}
}

// AddStop registers a stop on the given street node. A repeated ID replaces
// the earlier stop in ID lookups; both remain indexed.
func (s *System) AddStop(id StopID, node streetmap.NodeID) {
	st := &stop{id: id, node: node}
	s.stops = append(s.stops, st)
	s.stopByID[id] = st
}

// AddRouteStop appends stop id to the named route, creating the route on first use.
func (s *System) AddRouteStop(name string, id StopID) {
	r, ok := s.routeByName[name]
	if !ok {
		r = &route{name: name}
		s.routes = append(s.routes, r)
		s.routeByName[name] = r
	}
	r.stops = append(r.stops, id)
}

// StopCount returns the number of stops.
func (s *System) StopCount() int { return len(s.stops) }

// RouteCount returns the number of routes.
func (s *System) RouteCount() int { return len(s.routes) }

// StopByIndex returns the stop at index, or nil.
func (s *System) StopByIndex(index int) Stop {
	if index < 0 || index >= len(s.stops) {
		return nil
	}

	return s.stops[index]
}

// StopByID returns the stop with the given ID, or nil.
func (s *System) StopByID(id StopID) Stop {
	if st, ok := s.stopByID[id]; ok {
		return st
	}

	return nil
}

// RouteByIndex returns the route at index, or nil.
func (s *System) RouteByIndex(index int) Route {
	if index < 0 || index >= len(s.routes) {
		return nil
	}

	return s.routes[index]
}

// RouteByName returns the named route, or nil.
func (s *System) RouteByName(name string) Route {
	if r, ok := s.routeByName[name]; ok {
		return r
	}

	return nil
}
