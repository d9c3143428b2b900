// File: types.go
// Role: errors, the Planner contract consumed by the shell and the results sink.

package shell

import (
	"errors"
	"io"

	"github.com/katalvlaran/citypath/planner"
	"github.com/katalvlaran/citypath/streetmap"
)

var (
	// ErrNilPlanner is returned by New when no planner is supplied.
	ErrNilPlanner = errors.New("shell: planner is nil")
	// ErrNoResults is reported by save when the shell has no SinkFactory.
	ErrNoResults = errors.New("shell: no results sink")
	// ErrBadSinkName is returned by DirSinkFactory for names that would
	// escape the results directory.
	ErrBadSinkName = errors.New("shell: invalid sink name")
)

// Planner is the subset of *planner.Planner the shell drives.
type Planner interface {
	NodeCount() int
	SortedNodeByIndex(index int) (streetmap.Node, bool)
	NearestNode(lat, lon float64) (streetmap.Node, bool)
	FindShortestPath(src, dest streetmap.NodeID) (float64, []streetmap.NodeID)
	FindFastestPath(src, dest streetmap.NodeID) (float64, []planner.TripStep)
	GetPathDescription(path []planner.TripStep) ([]string, error)
}

// SinkFactory creates named outputs for saved trips.
type SinkFactory interface {
	CreateSink(name string) (io.WriteCloser, error)
}
