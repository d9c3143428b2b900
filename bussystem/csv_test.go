package bussystem_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/citypath/bussystem"
	"github.com/katalvlaran/citypath/streetmap"
)

const (
	stopsCSV = "stop_id,node_id\n1,100\n2,101\n3,102\n"
	// Route B is listed first and interleaved with A.
	routesCSV = "route,stop_id\nB,3\nA,1\nA,2\nB,1\nA,3\n"
)

func TestLoadCSV(t *testing.T) {
	bs, err := bussystem.LoadCSV(strings.NewReader(stopsCSV), strings.NewReader(routesCSV))
	require.NoError(t, err)

	require.Equal(t, 3, bs.StopCount())
	require.Equal(t, 2, bs.RouteCount())

	s := bs.StopByID(2)
	require.NotNil(t, s)
	require.Equal(t, bussystem.StopID(2), s.ID())
	require.Equal(t, streetmap.NodeID(101), s.NodeID())
	require.Equal(t, bussystem.StopID(1), bs.StopByIndex(0).ID())

	require.Equal(t, "B", bs.RouteByIndex(0).Name(), "routes keep first-appearance order")
	a := bs.RouteByName("A")
	require.NotNil(t, a)
	require.Equal(t, 3, a.StopCount())
	require.Equal(t, []bussystem.StopID{1, 2, 3}, []bussystem.StopID{a.GetStopID(0), a.GetStopID(1), a.GetStopID(2)})
	require.Equal(t, bussystem.InvalidStopID, a.GetStopID(3))
	require.Equal(t, bussystem.InvalidStopID, a.GetStopID(-1))
}

func TestLoadCSV_AbsentLookups(t *testing.T) {
	bs, err := bussystem.LoadCSV(strings.NewReader(stopsCSV), strings.NewReader(routesCSV))
	require.NoError(t, err)

	require.Nil(t, bs.StopByID(99))
	require.Nil(t, bs.StopByIndex(3))
	require.Nil(t, bs.RouteByIndex(-1))
	require.Nil(t, bs.RouteByName("Z"))
}

func TestLoadCSV_HeaderMatching(t *testing.T) {
	// Reordered, upper-case and padded headers; an extra column is ignored.
	stops := "Node_ID, STOP_ID ,zone\n100,1,x\n101,2,y\n"
	routes := "stop_id,Route\n1,X\n2,X\n"

	bs, err := bussystem.LoadCSV(strings.NewReader(stops), strings.NewReader(routes))
	require.NoError(t, err)
	require.Equal(t, streetmap.NodeID(100), bs.StopByID(1).NodeID())
	require.Equal(t, 2, bs.RouteByName("X").StopCount())
}

func TestLoadCSV_ShortRowsSkipped(t *testing.T) {
	stops := "stop_id,node_id\n1,100\n2\n\n3,102\n"
	routes := "route,stop_id\nA\nA,1\n"

	bs, err := bussystem.LoadCSV(strings.NewReader(stops), strings.NewReader(routes))
	require.NoError(t, err)
	require.Equal(t, 2, bs.StopCount())
	require.Equal(t, 1, bs.RouteByName("A").StopCount())
}

func TestLoadCSV_Empty(t *testing.T) {
	bs, err := bussystem.LoadCSV(strings.NewReader(""), strings.NewReader("route,stop_id\n"))
	require.NoError(t, err)
	require.Zero(t, bs.StopCount())
	require.Zero(t, bs.RouteCount())
}

func TestLoadCSV_Errors(t *testing.T) {
	_, err := bussystem.LoadCSV(strings.NewReader("id,node\n1,2\n"), strings.NewReader(""))
	require.ErrorIs(t, err, bussystem.ErrMissingColumn)

	_, err = bussystem.LoadCSV(strings.NewReader("stop_id,node_id\n1,100\nx,101\n"), strings.NewReader(""))
	require.ErrorIs(t, err, bussystem.ErrBadRecord)
	require.Contains(t, err.Error(), "line 3")

	_, err = bussystem.LoadCSV(strings.NewReader(stopsCSV), strings.NewReader("route,stop_id\nA,-4\n"))
	require.ErrorIs(t, err, bussystem.ErrBadRecord)
	require.Contains(t, err.Error(), "routes")
}

func TestSystem_Builder(t *testing.T) {
	bs := bussystem.New()
	bs.AddStop(7, 700)
	bs.AddStop(7, 701)
	bs.AddRouteStop("loop", 7)

	require.Equal(t, 2, bs.StopCount(), "duplicates stay indexed")
	require.Equal(t, streetmap.NodeID(701), bs.StopByID(7).NodeID(), "later stop wins ID lookup")
	require.Equal(t, 1, bs.RouteByName("loop").StopCount())
}

var _ bussystem.BusSystem = (*bussystem.System)(nil)
