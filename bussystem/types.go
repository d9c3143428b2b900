// File: types.go
// Role: identifiers, sentinel errors and the read-only BusSystem contracts.

package bussystem

import (
	"errors"
	"math"

	"github.com/katalvlaran/citypath/streetmap"
)

// StopID identifies a bus stop.
type StopID uint64

// InvalidStopID is returned by Route.GetStopID for an out-of-range index.
const InvalidStopID StopID = math.MaxUint64

// Sentinel errors for CSV loading.
var (
	// ErrMissingColumn indicates that a required header column is absent.
	ErrMissingColumn = errors.New("bussystem: missing column")

	// ErrBadRecord indicates a row whose numeric field cannot be parsed.
	ErrBadRecord = errors.New("bussystem: bad record")
)

// Stop is a bus stop placed on a street node.
type Stop interface {
	ID() StopID
	NodeID() streetmap.NodeID
}

// Route is a named, ordered sequence of stops.
type Route interface {
	Name() string
	StopCount() int
	// GetStopID returns InvalidStopID when index is out of range.
	GetStopID(index int) StopID
}

// BusSystem is the read-only bus-network provider. Lookups return nil when
// the index, ID or name is unknown.
type BusSystem interface {
	StopCount() int
	RouteCount() int
	StopByIndex(index int) Stop
	StopByID(id StopID) Stop
	RouteByIndex(index int) Route
	RouteByName(name string) Route
}
