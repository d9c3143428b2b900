// File: sink.go
// Role: directory-backed SinkFactory and the CSV trip export.

package shell

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/katalvlaran/citypath/planner"
)

// tripHeader is the first row of every exported trip.
var tripHeader = []string{"mode", "node_id"}

// DirSinkFactory creates files inside Dir, creating the directory on demand.
type DirSinkFactory struct {
	Dir string
}

// CreateSink creates (or truncates) Dir/name. The name must be a plain file
// name.
func (f DirSinkFactory) CreateSink(name string) (io.WriteCloser, error) {
	if name == "" || name != filepath.Base(name) || name == "." || name == ".." {
		return nil, fmt.Errorf("%w: %q", ErrBadSinkName, name)
	}
	if err := os.MkdirAll(f.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("shell: create results dir: %w", err)
	}

	return os.Create(filepath.Join(f.Dir, name))
}

// tripFileName names a saved trip "<first>_<last>_<n>steps.csv".
func tripFileName(path []planner.TripStep) string {
	return fmt.Sprintf("%d_%d_%dsteps.csv", path[0].NodeID, path[len(path)-1].NodeID, len(path))
}

// WriteTripCSV writes the header row and one "mode,node_id" row per step.
func WriteTripCSV(w io.Writer, path []planner.TripStep) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(tripHeader); err != nil {
		return err
	}
	for _, step := range path {
		if err := cw.Write([]string{step.Mode.String(), strconv.FormatUint(uint64(step.NodeID), 10)}); err != nil {
			return err
		}
	}
	cw.Flush()

	return cw.Error()
}
