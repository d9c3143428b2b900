// File: csv.go
// Role: CSV loader for stops (stop_id,node_id) and routes (route,stop_id).

package bussystem

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/citypath/streetmap"
)

// Header names expected in the two CSV inputs (matched case-insensitively).
const (
	ColStopID = "stop_id"
	ColNodeID = "node_id"
	ColRoute  = "route"
)

// LoadCSV builds a System from a stops CSV and a routes CSV. Both start with
// a header row. Route rows list stops in travel order; rows that are too
// short to hold the required columns are skipped.
func LoadCSV(stops, routes io.Reader) (*System, error) {
	s := New()

	if err := eachRow(stops, "stops", []string{ColStopID, ColNodeID}, func(line int, f []string) error {
		id, err := parseID(f[0], line, ColStopID)
		if err != nil {
			return err
		}
		node, err := parseID(f[1], line, ColNodeID)
		if err != nil {
			return err
		}
		s.AddStop(StopID(id), streetmap.NodeID(node))

		return nil
	}); err != nil {
		return nil, err
	}

	if err := eachRow(routes, "routes", []string{ColRoute, ColStopID}, func(line int, f []string) error {
		id, err := parseID(f[1], line, ColStopID)
		if err != nil {
			return err
		}
		s.AddRouteStop(f[0], StopID(id))

		return nil
	}); err != nil {
		return nil, err
	}

	return s, nil
}

// eachRow reads every record of r, resolves cols against the header and
// calls fn with the selected fields in cols order.
func eachRow(r io.Reader, what string, cols []string, fn func(line int, fields []string) error) error {
	csvr := csv.NewReader(r)
	csvr.FieldsPerRecord = -1
	csvr.TrimLeadingSpace = true

	head, err := csvr.Read()
	if err == io.EOF {
		return nil
	}
	if err != nil {
		return fmt.Errorf("bussystem: read %s: %w", what, err)
	}

	idx := make([]int, len(cols))
	need := 0
	for i, col := range cols {
		idx[i] = -1
		for j, h := range head {
			if strings.EqualFold(strings.TrimSpace(h), col) {
				idx[i] = j
				break
			}
		}
		if idx[i] < 0 {
			return fmt.Errorf("%w: %s has no %q column", ErrMissingColumn, what, col)
		}
		if idx[i]+1 > need {
			need = idx[i] + 1
		}
	}

	fields := make([]string, len(cols))
	for {
		row, err := csvr.Read()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("bussystem: read %s: %w", what, err)
		}
		if len(row) < need {
			continue
		}
		for i, j := range idx {
			fields[i] = strings.TrimSpace(row[j])
		}
		line, _ := csvr.FieldPos(0)
		if err := fn(line, fields); err != nil {
			return fmt.Errorf("%s: %w", what, err)
		}
	}
}

func parseID(v string, line int, col string) (uint64, error) {
	id, err := strconv.ParseUint(v, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: line %d: %s %q", ErrBadRecord, line, col, v)
	}

	return id, nil
}
