// File: nearest.go
// Role: nearest street node lookup over a k-d tree of node locations.

package planner

import (
	"github.com/kyroy/kdtree"

	"github.com/katalvlaran/citypath/geoutil"
	"github.com/katalvlaran/citypath/streetmap"
)

// nearestCandidates is how many k-d tree neighbors are re-ranked by
// great-circle distance. The tree compares raw degrees, which stretches
// east-west distances away from the equator.
const nearestCandidates = 8

// nodePoint adapts a street node to kdtree.Point as (lat, lon).
type nodePoint struct {
	lat, lon float64
	node     streetmap.Node
}

func (p *nodePoint) Dimensions() int { return 2 }

func (p *nodePoint) Dimension(i int) float64 {
	switch i {
	case 0:
		return p.lat
	case 1:
		return p.lon
	default:
		panic("invalid dimension")
	}
}

func newNodeTree(nodes []streetmap.Node) *kdtree.KDTree {
	if len(nodes) == 0 {
		return nil
	}
	points := make([]kdtree.Point, 0, len(nodes))
	for _, n := range nodes {
		loc := n.Location()
		points = append(points, &nodePoint{lat: loc.Lat, lon: loc.Lon, node: n})
	}

	return kdtree.New(points)
}

// NearestNode returns the street node closest to (lat, lon) by haversine
// distance; ties go to the lower node ID. False when the map has no nodes.
func (p *Planner) NearestNode(lat, lon float64) (streetmap.Node, bool) {
	if p.tree == nil {
		return nil, false
	}
	target := streetmap.Location{Lat: lat, Lon: lon}.Point()

	var (
		best     streetmap.Node
		bestDist float64
	)
	for _, kp := range p.tree.KNN(&nodePoint{lat: lat, lon: lon}, nearestCandidates) {
		np, ok := kp.(*nodePoint)
		if !ok {
			continue
		}
		d := geoutil.DistanceMiles(target, np.node.Location().Point())
		if best == nil || d < bestDist || (d == bestDist && np.node.ID() < best.ID()) {
			best, bestDist = np.node, d
		}
	}

	return best, best != nil
}
