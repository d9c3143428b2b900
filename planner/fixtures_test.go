package planner_test

import (
	"io"
	"testing"

	"github.com/paulmach/osm"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"

	"github.com/katalvlaran/citypath/bussystem"
	"github.com/katalvlaran/citypath/geoutil"
	"github.com/katalvlaran/citypath/planner"
	"github.com/katalvlaran/citypath/streetmap"
)

const (
	walkMPH  = 3.0
	bikeMPH  = 8.0
	roadMPH  = 25.0
	dwellSec = 30.0
)

// cityMap is a small town:
//
//	5 (island)      4
//	                |  Elm St (bicycle=no)
//	1 ---- 2 ---- 3        Main St
//
//	6  . . . . . . 7       no street between them, bus route B only
//
// Nodes are listed out of ID order on purpose.
func cityMap() *streetmap.OpenStreetMap {
	nodes := []*osm.Node{
		{ID: 3, Lat: 38.50, Lon: -121.73},
		{ID: 1, Lat: 38.50, Lon: -121.75},
		{ID: 2, Lat: 38.50, Lon: -121.74},
		{ID: 4, Lat: 38.51, Lon: -121.73},
		{ID: 5, Lat: 38.51, Lon: -121.75},
		{ID: 6, Lat: 38.40, Lon: -121.75},
		{ID: 7, Lat: 38.40, Lon: -121.70},
	}
	ways := []*osm.Way{
		{ID: 100, Nodes: osm.WayNodes{{ID: 1}, {ID: 2}, {ID: 3}}, Tags: osm.Tags{{Key: "name", Value: "Main St"}}},
		{ID: 101, Nodes: osm.WayNodes{{ID: 3}, {ID: 4}}, Tags: osm.Tags{
			{Key: "name", Value: "Elm St"}, {Key: "bicycle", Value: "no"},
		}},
		// References a node that does not exist; the segment is skipped.
		{ID: 102, Nodes: osm.WayNodes{{ID: 4}, {ID: 999}}},
	}

	return streetmap.New(nodes, ways)
}

// cityBuses runs route A along Main St (stops 11, 12, 13 on nodes 1, 2, 3)
// and route B between the otherwise disconnected nodes 6 and 7.
func cityBuses() *bussystem.System {
	bs := bussystem.New()
	bs.AddStop(11, 1)
	bs.AddStop(12, 2)
	bs.AddStop(13, 3)
	bs.AddStop(16, 6)
	bs.AddStop(17, 7)
	for _, id := range []bussystem.StopID{11, 12, 13} {
		bs.AddRouteStop("A", id)
	}
	bs.AddRouteStop("B", 16)
	bs.AddRouteStop("B", 17)

	return bs
}

func cityConfig() planner.StaticConfiguration {
	return planner.StaticConfiguration{
		Streets:           cityMap(),
		Buses:             cityBuses(),
		WalkSpeedMPH:      walkMPH,
		BikeSpeedMPH:      bikeMPH,
		RoadSpeedMPH:      roadMPH,
		BusStopSeconds:    dwellSec,
		PrecomputeSeconds: 1,
	}
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newPlanner(t *testing.T, cfg planner.Configuration, opts ...planner.Option) *planner.Planner {
	t.Helper()
	opts = append([]planner.Option{planner.WithLogger(quietLogger())}, opts...)
	p, err := planner.New(cfg, opts...)
	require.NoError(t, err)

	return p
}

// miles is the haversine distance between two nodes of cityMap.
func miles(a, b streetmap.NodeID) float64 {
	sm := cityMap()
	return geoutil.DistanceMiles(sm.NodeByID(a).Location().Point(), sm.NodeByID(b).Location().Point())
}

func steps(mode planner.TransportationMode, ids ...streetmap.NodeID) []planner.TripStep {
	out := make([]planner.TripStep, len(ids))
	for i, id := range ids {
		out[i] = planner.TripStep{Mode: mode, NodeID: id}
	}

	return out
}
