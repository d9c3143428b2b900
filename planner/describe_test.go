package planner_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/citypath/planner"
)

const (
	dmsNode1 = `38d 30' 0" N, 121d 45' 0" W`
	dmsNode3 = `38d 30' 0" N, 121d 43' 48" W`
	dmsNode4 = `38d 30' 36" N, 121d 43' 48" W`
	dmsNode5 = `38d 30' 36" N, 121d 45' 0" W`
)

func TestGetPathDescription_BusThenWalk(t *testing.T) {
	p := newPlanner(t, cityConfig())
	_, path := p.FindFastestPath(1, 4)

	desc, err := p.GetPathDescription(path)
	require.NoError(t, err)
	require.Equal(t, []string{
		"Start at " + dmsNode1,
		"Take Bus A from stop 11 to stop 13",
		"Walk N along Elm St for 0.7 mi",
		"End at " + dmsNode4,
	}, desc)
}

func TestGetPathDescription_BikeAlongNamedStreet(t *testing.T) {
	p := newPlanner(t, cityConfig())
	_, path := p.FindFastestPath(1, 3)

	desc, err := p.GetPathDescription(path)
	require.NoError(t, err)
	require.Equal(t, []string{
		"Start at " + dmsNode1,
		"Bike E along Main St for 1.1 mi",
		"End at " + dmsNode3,
	}, desc)
}

func TestGetPathDescription_UnnamedWalk(t *testing.T) {
	p := newPlanner(t, cityConfig())

	desc, err := p.GetPathDescription(steps(planner.Walk, 1, 5))
	require.NoError(t, err)
	require.Equal(t, []string{
		"Start at " + dmsNode1,
		"Walk N for 0.7 mi",
		"End at " + dmsNode5,
	}, desc)
}

func TestGetPathDescription_LegsShareTransferNode(t *testing.T) {
	p := newPlanner(t, cityConfig())

	// Walk 1→2, then ride 2→3: the bus leg starts where the walk ended.
	path := []planner.TripStep{
		{Mode: planner.Walk, NodeID: 1},
		{Mode: planner.Walk, NodeID: 2},
		{Mode: planner.Bus, NodeID: 3},
	}
	desc, err := p.GetPathDescription(path)
	require.NoError(t, err)
	require.Equal(t, []string{
		"Start at " + dmsNode1,
		"Walk E along Main St for 0.5 mi",
		"Take Bus A from stop 12 to stop 13",
		"End at " + dmsNode3,
	}, desc)
}

func TestGetPathDescription_ModeChangeInPlaceIsNotALeg(t *testing.T) {
	p := newPlanner(t, cityConfig())

	// Ride 1→2, walk 2→3, then a bus step that stays at 3.
	path := []planner.TripStep{
		{Mode: planner.Bus, NodeID: 1},
		{Mode: planner.Bus, NodeID: 2},
		{Mode: planner.Walk, NodeID: 3},
		{Mode: planner.Bus, NodeID: 3},
	}
	desc, err := p.GetPathDescription(path)
	require.NoError(t, err)
	require.Equal(t, []string{
		"Start at " + dmsNode1,
		"Take Bus A from stop 11 to stop 12",
		"Walk E along Main St for 0.5 mi",
		"End at " + dmsNode3,
	}, desc)
}

func TestGetPathDescription_DirectBusHop(t *testing.T) {
	p := newPlanner(t, cityConfig())
	_, path := p.FindFastestPath(6, 7)

	desc, err := p.GetPathDescription(path)
	require.NoError(t, err)
	require.Len(t, desc, 3)
	require.Equal(t, "Take Bus B from stop 16 to stop 17", desc[1])
}

func TestGetPathDescription_BusWithoutRoute(t *testing.T) {
	p := newPlanner(t, cityConfig())

	desc, err := p.GetPathDescription(steps(planner.Bus, 4, 5))
	require.NoError(t, err)
	require.Equal(t, "Take Bus from node 4 to node 5", desc[1])
}

func TestGetPathDescription_SingleStep(t *testing.T) {
	p := newPlanner(t, cityConfig())

	desc, err := p.GetPathDescription(steps(planner.Walk, 3))
	require.NoError(t, err)
	require.Equal(t, []string{"Start at " + dmsNode3, "End at " + dmsNode3}, desc)
}

func TestGetPathDescription_Errors(t *testing.T) {
	p := newPlanner(t, cityConfig())

	_, err := p.GetPathDescription(nil)
	require.ErrorIs(t, err, planner.ErrEmptyPath)

	_, err = p.GetPathDescription(steps(planner.Walk, 1, 999))
	require.ErrorIs(t, err, planner.ErrUnknownNode)
	require.Contains(t, err.Error(), "999")
}
