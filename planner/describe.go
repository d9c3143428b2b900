// File: describe.go
// Role: turn-by-turn description of a mode-tagged trip.

package planner

import (
	"fmt"

	"github.com/katalvlaran/citypath/bussystem"
	"github.com/katalvlaran/citypath/geoutil"
	"github.com/katalvlaran/citypath/streetmap"
)

// leg is a maximal run of same-mode steps together with the node it departs from.
type leg struct {
	mode  TransportationMode
	nodes []streetmap.Node
}

// GetPathDescription renders path as human-readable directions:
//
//	Start at 38d 30' 0" N, 121d 45' 36" W
//	Walk E along Main St for 0.3 mi
//	Take Bus A from stop 1 to stop 3
//	Walk N for 0.1 mi
//	End at 38d 31' 12" N, 121d 44' 2" W
//
// A leg covering steps i..j runs from the node of step i-1 (or step 0) to
// the node of step j. Legs that start and end at the same node are omitted,
// so a single-step path yields only the Start and End lines.
//
// Errors: ErrEmptyPath; ErrUnknownNode (wrapped with the node ID).
func (p *Planner) GetPathDescription(path []TripStep) ([]string, error) {
	if len(path) == 0 {
		return nil, ErrEmptyPath
	}
	nodes := make([]streetmap.Node, len(path))
	for i, step := range path {
		n, ok := p.nodeByID[step.NodeID]
		if !ok {
			return nil, fmt.Errorf("%w: %d", ErrUnknownNode, uint64(step.NodeID))
		}
		nodes[i] = n
	}

	first := nodes[0].Location()
	last := nodes[len(nodes)-1].Location()
	out := []string{"Start at " + geoutil.FormatDMS(first.Lat, first.Lon)}

	for _, l := range splitLegs(path, nodes) {
		if len(l.nodes) < 2 || l.nodes[0].ID() == l.nodes[len(l.nodes)-1].ID() {
			continue
		}
		switch l.mode {
		case Bus:
			out = append(out, p.describeBus(l))
		default:
			out = append(out, p.describeTravel(l))
		}
	}

	out = append(out, "End at "+geoutil.FormatDMS(last.Lat, last.Lon))

	return out, nil
}

func splitLegs(path []TripStep, nodes []streetmap.Node) []leg {
	var legs []leg
	for i := 0; i < len(path); {
		j := i
		for j+1 < len(path) && path[j+1].Mode == path[i].Mode {
			j++
		}
		start := i - 1
		if start < 0 {
			start = 0
		}
		legs = append(legs, leg{mode: path[i].Mode, nodes: nodes[start : j+1]})
		i = j + 1
	}

	return legs
}

// describeTravel renders a Walk or Bike leg.
func (p *Planner) describeTravel(l leg) string {
	var miles float64
	for k := 1; k < len(l.nodes); k++ {
		miles += geoutil.DistanceMiles(l.nodes[k-1].Location().Point(), l.nodes[k].Location().Point())
	}
	from := l.nodes[0]
	to := l.nodes[len(l.nodes)-1]
	dir := geoutil.Direction(geoutil.Bearing(from.Location().Point(), to.Location().Point()))

	if name, ok := p.streetNames[hop{from.ID(), l.nodes[1].ID()}]; ok {
		return fmt.Sprintf("%s %s along %s for %.1f mi", l.mode, dir, name, miles)
	}

	return fmt.Sprintf("%s %s for %.1f mi", l.mode, dir, miles)
}

// describeBus names the route and the boarding and alighting stops. The
// route is the first by name that serves every hop of the leg, falling back
// to the first route serving the first hop.
func (p *Planner) describeBus(l leg) string {
	from := l.nodes[0].ID()
	to := l.nodes[len(l.nodes)-1].ID()

	route := ""
	if first, ok := p.buses.RoutesByNodeIDs(from, l.nodes[1].ID()); ok {
		route = first[0].Name()
		for _, r := range first {
			if p.servesLeg(r, l) {
				route = r.Name()
				break
			}
		}
	}

	label := "Take Bus"
	if route != "" {
		label += " " + route
	}

	return fmt.Sprintf("%s from %s to %s", label, p.stopLabel(from), p.stopLabel(to))
}

func (p *Planner) servesLeg(r bussystem.Route, l leg) bool {
	for k := 1; k < len(l.nodes); k++ {
		routes, _ := p.buses.RoutesByNodeIDs(l.nodes[k-1].ID(), l.nodes[k].ID())
		found := false
		for _, cand := range routes {
			if cand.Name() == r.Name() {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	return true
}

// stopLabel prefers the stop ID; nodes without a stop fall back to the node ID.
func (p *Planner) stopLabel(id streetmap.NodeID) string {
	if s := p.buses.StopByNodeID(id); s != nil {
		return fmt.Sprintf("stop %d", uint64(s.ID()))
	}

	return fmt.Sprintf("node %d", uint64(id))
}
