// File: shell.go
// Role: line-oriented command processor over a Planner.
// Concurrency:
//   - A Shell is not safe for concurrent use; it owns the last computed path.

package shell

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"golang.org/x/exp/slog"

	"github.com/katalvlaran/citypath/geoutil"
	"github.com/katalvlaran/citypath/planner"
	"github.com/katalvlaran/citypath/streetmap"
)

const prompt = "> "

var helpText = []string{
	"------------------------------------------------------------------------",
	"help     Display this help menu",
	"exit     Exit the program",
	"count    Output the number of nodes in the map",
	`node     Syntax "node [0, count)"`,
	"         Will output node ID and Lat/Lon for node",
	`nearest  Syntax "nearest lat lon"`,
	"         Will output the node closest to the coordinate",
	`fastest  Syntax "fastest start end"`,
	"         Calculates the time for fastest path from start to end",
	`shortest Syntax "shortest start end"`,
	"         Calculates the distance for the shortest path from start to end",
	"save     Saves the last calculated path to file",
	"print    Prints the steps for the last calculated path",
}

// Shell reads commands from in, writes results to out and diagnostics to
// errOut. save and print act on the path of the last successful fastest
// query.
type Shell struct {
	in       io.Reader
	out      io.Writer
	errOut   io.Writer
	results  SinkFactory
	planner  Planner
	log      *slog.Logger
	lastPath []planner.TripStep
}

// Option configures a Shell.
type Option func(*Shell)

// WithLogger sets the logger used for command tracing; nil keeps slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(s *Shell) {
		if l != nil {
			s.log = l
		}
	}
}

// New builds a Shell. results may be nil, in which case save always fails.
func New(p Planner, results SinkFactory, in io.Reader, out, errOut io.Writer, opts ...Option) (*Shell, error) {
	if p == nil {
		return nil, ErrNilPlanner
	}
	s := &Shell{
		in:      in,
		out:     out,
		errOut:  errOut,
		results: results,
		planner: p,
		log:     slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}

	return s, nil
}

// Run processes commands until exit, end of input or ctx cancellation.
// Cancellation is observed between commands. It returns the input read error
// or ctx.Err(), and nil on exit or end of input.
func (s *Shell) Run(ctx context.Context) error {
	sc := bufio.NewScanner(s.in)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		fmt.Fprint(s.out, prompt)
		if !sc.Scan() {
			return sc.Err()
		}

		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		s.log.Debug("command", "name", fields[0], "args", fields[1:])
		if fields[0] == "exit" {
			return nil
		}
		s.dispatch(fields[0], fields[1:])
	}
}

func (s *Shell) dispatch(cmd string, args []string) {
	switch cmd {
	case "help":
		for _, line := range helpText {
			s.println(line)
		}
	case "count":
		s.printf("%d nodes\n", s.planner.NodeCount())
	case "node":
		s.node(args)
	case "nearest":
		s.nearest(args)
	case "fastest":
		s.fastest(args)
	case "shortest":
		s.shortest(args)
	case "save":
		s.save()
	case "print":
		s.print()
	default:
		s.fail("Unknown command %q type help for help.", cmd)
	}
}

func (s *Shell) node(args []string) {
	if len(args) < 1 {
		s.fail("Invalid node parameter, see help.")
		return
	}
	index, err := strconv.ParseUint(args[0], 10, 31)
	if err != nil {
		s.fail("Invalid node parameter, see help.")
		return
	}
	n, ok := s.planner.SortedNodeByIndex(int(index))
	if !ok {
		s.fail("Invalid node index, see help.")
		return
	}
	s.printf("Node %d: id = %d is at %s\n", index, n.ID(), dms(n))
}

func (s *Shell) nearest(args []string) {
	if len(args) < 2 {
		s.fail("Invalid nearest parameter, see help.")
		return
	}
	lat, err1 := strconv.ParseFloat(args[0], 64)
	lon, err2 := strconv.ParseFloat(args[1], 64)
	if err1 != nil || err2 != nil {
		s.fail("Invalid nearest parameter, see help.")
		return
	}
	n, ok := s.planner.NearestNode(lat, lon)
	if !ok {
		s.fail("No nodes in map, see help.")
		return
	}
	s.printf("Nearest node: id = %d is at %s\n", n.ID(), dms(n))
}

func (s *Shell) fastest(args []string) {
	src, dest, ok := parsePair(args)
	if !ok {
		s.fail("Invalid fastest parameter, see help.")
		return
	}
	hours, path := s.planner.FindFastestPath(src, dest)
	if hours == planner.NoPathExists {
		s.fail("No path found, see help.")
		return
	}
	s.lastPath = path
	s.printf("Fastest path takes %s\n", FormatHours(hours))
}

func (s *Shell) shortest(args []string) {
	src, dest, ok := parsePair(args)
	if !ok {
		s.fail("Invalid shortest parameter, see help.")
		return
	}
	miles, _ := s.planner.FindShortestPath(src, dest)
	if miles == planner.NoPathExists {
		s.fail("No path found, see help.")
		return
	}
	s.printf("Shortest path is %.1f mi.\n", miles)
}

func (s *Shell) save() {
	if len(s.lastPath) == 0 {
		s.fail("No valid path to save, see help.")
		return
	}
	name := tripFileName(s.lastPath)
	if err := s.export(name); err != nil {
		s.log.Warn("save trip", "file", name, "err", err)
		s.fail("Failed to save path, see help.")
		return
	}
	s.printf("Path saved to <results>/%s\n", name)
}

func (s *Shell) export(name string) (err error) {
	if s.results == nil {
		return ErrNoResults
	}
	w, err := s.results.CreateSink(name)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := w.Close(); err == nil {
			err = cerr
		}
	}()

	return WriteTripCSV(w, s.lastPath)
}

func (s *Shell) print() {
	if len(s.lastPath) == 0 {
		s.fail("No valid path to print, see help.")
		return
	}
	desc, err := s.planner.GetPathDescription(s.lastPath)
	if err != nil {
		s.log.Warn("describe trip", "err", err)
		s.fail("Failed to print path, see help.")
		return
	}
	for _, line := range desc {
		s.println(line)
	}
}

// FormatHours renders a duration in hours as "H hr M min S sec", omitting
// zero parts. The total is rounded to the nearest second before splitting.
func FormatHours(t float64) string {
	total := int(math.Round(t * 3600))
	h := total / 3600
	m := total % 3600 / 60
	sec := total % 60

	parts := make([]string, 0, 3)
	if h > 0 {
		parts = append(parts, fmt.Sprintf("%d hr", h))
	}
	if m > 0 {
		parts = append(parts, fmt.Sprintf("%d min", m))
	}
	if sec > 0 {
		parts = append(parts, fmt.Sprintf("%d sec", sec))
	}
	if len(parts) == 0 {
		return "0 sec"
	}

	return strings.Join(parts, " ")
}

func parsePair(args []string) (streetmap.NodeID, streetmap.NodeID, bool) {
	if len(args) < 2 {
		return 0, 0, false
	}
	src, err := strconv.ParseUint(args[0], 10, 64)
	if err != nil {
		return 0, 0, false
	}
	dest, err := strconv.ParseUint(args[1], 10, 64)
	if err != nil {
		return 0, 0, false
	}

	return streetmap.NodeID(src), streetmap.NodeID(dest), true
}

func dms(n streetmap.Node) string {
	loc := n.Location()
	return geoutil.FormatDMS(loc.Lat, loc.Lon)
}

func (s *Shell) println(line string) { fmt.Fprintln(s.out, line) }

func (s *Shell) printf(format string, args ...interface{}) { fmt.Fprintf(s.out, format, args...) }

func (s *Shell) fail(format string, args ...interface{}) {
	fmt.Fprintf(s.errOut, format+"\n", args...)
}
