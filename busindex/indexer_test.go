package busindex_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/citypath/bussystem"
	"github.com/katalvlaran/citypath/busindex"
	"github.com/katalvlaran/citypath/streetmap"
)

type IndexerSuite struct {
	suite.Suite
	ix *busindex.Indexer
}

// SetupTest builds:
//
//	stops: 3@N102, 1@N100, 2@N101, 4@N103
//	route "B": 1 2 3
//	route "A": 2 3 4 99   (99 is unknown)
//	route "C": 1 3
func (s *IndexerSuite) SetupTest() {
	bs := bussystem.New()
	bs.AddStop(3, 102)
	bs.AddStop(1, 100)
	bs.AddStop(2, 101)
	bs.AddStop(4, 103)
	for _, id := range []bussystem.StopID{1, 2, 3} {
		bs.AddRouteStop("B", id)
	}
	for _, id := range []bussystem.StopID{2, 3, 4, 99} {
		bs.AddRouteStop("A", id)
	}
	bs.AddRouteStop("C", 1)
	bs.AddRouteStop("C", 3)
	s.ix = busindex.New(bs)
}

func (s *IndexerSuite) TestSortedStops() {
	require := require.New(s.T())
	require.Equal(4, s.ix.StopCount())
	for i := 0; i < 4; i++ {
		require.Equal(bussystem.StopID(i+1), s.ix.SortedStopByIndex(i).ID())
	}
	require.Nil(s.ix.SortedStopByIndex(4))
	require.Nil(s.ix.SortedStopByIndex(-1))
}

func (s *IndexerSuite) TestSortedRoutes() {
	require := require.New(s.T())
	require.Equal(3, s.ix.RouteCount())
	require.Equal("A", s.ix.SortedRouteByIndex(0).Name())
	require.Equal("B", s.ix.SortedRouteByIndex(1).Name())
	require.Equal("C", s.ix.SortedRouteByIndex(2).Name())
	require.Nil(s.ix.SortedRouteByIndex(3))
}

func (s *IndexerSuite) TestStopLookups() {
	require := require.New(s.T())
	require.Equal(streetmap.NodeID(102), s.ix.StopByID(3).NodeID())
	require.Equal(bussystem.StopID(4), s.ix.StopByNodeID(103).ID())
	require.Nil(s.ix.StopByID(99))
	require.Nil(s.ix.StopByNodeID(999))
}

func (s *IndexerSuite) TestConsecutivePairsOnly() {
	require := require.New(s.T())
	require.True(s.ix.RouteBetweenNodeIDs(100, 101))
	require.True(s.ix.RouteBetweenNodeIDs(101, 102))
	require.False(s.ix.RouteBetweenNodeIDs(101, 100), "pairs are ordered")
	require.True(s.ix.RouteBetweenNodeIDs(100, 102), "route C serves 1→3 directly")
	require.False(s.ix.RouteBetweenNodeIDs(100, 103))
	require.False(s.ix.RouteBetweenNodeIDs(103, 103), "unknown stop 99 contributes nothing")
}

func (s *IndexerSuite) TestRoutesByNodeIDsSortedByName() {
	require := require.New(s.T())

	routes, ok := s.ix.RoutesByNodeIDs(101, 102)
	require.True(ok)
	require.Len(routes, 2)
	require.Equal("A", routes[0].Name())
	require.Equal("B", routes[1].Name())

	routes, ok = s.ix.RoutesByNodeIDs(102, 103)
	require.True(ok)
	require.Len(routes, 1)
	require.Equal("A", routes[0].Name())

	routes, ok = s.ix.RoutesByNodeIDs(103, 100)
	require.False(ok)
	require.Empty(routes)
}

func (s *IndexerSuite) TestRoutesByNodeIDsReturnsCopy() {
	routes, _ := s.ix.RoutesByNodeIDs(101, 102)
	routes[0] = nil

	again, _ := s.ix.RoutesByNodeIDs(101, 102)
	s.Require().NotNil(again[0])
}

func TestIndexerSuite(t *testing.T) {
	suite.Run(t, new(IndexerSuite))
}

func TestNew_NilAndEmpty(t *testing.T) {
	for _, bs := range []bussystem.BusSystem{nil, bussystem.New()} {
		ix := busindex.New(bs)
		require.Zero(t, ix.StopCount())
		require.Zero(t, ix.RouteCount())
		require.Nil(t, ix.SortedStopByIndex(0))
		require.False(t, ix.RouteBetweenNodeIDs(1, 2))
	}
}

func TestNew_RouteVisitingPairTwice(t *testing.T) {
	bs := bussystem.New()
	bs.AddStop(1, 10)
	bs.AddStop(2, 20)
	for _, id := range []bussystem.StopID{1, 2, 1, 2} {
		bs.AddRouteStop("loop", id)
	}

	routes, ok := busindex.New(bs).RoutesByNodeIDs(10, 20)
	require.True(t, ok)
	require.Len(t, routes, 1, "a route is listed once per pair")
}
