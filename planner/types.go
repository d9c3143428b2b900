// File: types.go
// Role: travel modes, trip steps, the Configuration contract, sentinel errors
// and functional options.

package planner

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/exp/slog"

	"github.com/katalvlaran/citypath/bussystem"
	"github.com/katalvlaran/citypath/streetmap"
)

// Sentinel errors returned by New, GetPathDescription and ParseMode.
var (
	// ErrNilConfiguration indicates that New received a nil Configuration.
	ErrNilConfiguration = errors.New("planner: configuration is nil")

	// ErrNilStreetMap indicates that the configuration carries no street map.
	ErrNilStreetMap = errors.New("planner: street map is nil")

	// ErrBadSpeed indicates a walk, bike or road speed that is not a positive finite number.
	ErrBadSpeed = errors.New("planner: speed must be positive")

	// ErrEmptyPath indicates that GetPathDescription received no steps.
	ErrEmptyPath = errors.New("planner: empty path")

	// ErrUnknownNode indicates a trip step whose node is not in the street map.
	ErrUnknownNode = errors.New("planner: unknown node")

	// ErrUnknownMode indicates a string that names no TransportationMode.
	ErrUnknownMode = errors.New("planner: unknown transportation mode")

	// ErrBadCacheSize indicates a negative WithQueryCache size.
	ErrBadCacheSize = errors.New("planner: cache size must be non-negative")
)

// TransportationMode is how a trip step's node was reached.
type TransportationMode int

const (
	Walk TransportationMode = iota
	Bike
	Bus
)

// String returns "Walk", "Bike" or "Bus".
func (m TransportationMode) String() string {
	switch m {
	case Walk:
		return "Walk"
	case Bike:
		return "Bike"
	case Bus:
		return "Bus"
	default:
		return fmt.Sprintf("TransportationMode(%d)", int(m))
	}
}

// ParseMode is the inverse of String; matching is case-insensitive.
func ParseMode(s string) (TransportationMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "walk":
		return Walk, nil
	case "bike":
		return Bike, nil
	case "bus":
		return Bus, nil
	}

	return Walk, fmt.Errorf("%w: %q", ErrUnknownMode, s)
}

// TripStep is one node of a trip together with the mode used to arrive there.
// The first step carries the mode of the first leg.
type TripStep struct {
	Mode   TransportationMode
	NodeID streetmap.NodeID
}

// Configuration is the read-only input of New. Speeds are in miles per hour,
// BusStopTime is the dwell time in seconds charged for every bus hop and
// PrecomputeTime is the preprocessing budget in seconds.
type Configuration interface {
	StreetMap() streetmap.StreetMap
	BusSystem() bussystem.BusSystem
	WalkSpeed() float64
	BikeSpeed() float64
	DefaultSpeedLimit() float64
	BusStopTime() float64
	PrecomputeTime() int
}

// StaticConfiguration is a plain-value Configuration.
type StaticConfiguration struct {
	Streets           streetmap.StreetMap
	Buses             bussystem.BusSystem
	WalkSpeedMPH      float64
	BikeSpeedMPH      float64
	RoadSpeedMPH      float64
	BusStopSeconds    float64
	PrecomputeSeconds int
}

func (c StaticConfiguration) StreetMap() streetmap.StreetMap { return c.Streets }
func (c StaticConfiguration) BusSystem() bussystem.BusSystem { return c.Buses }
func (c StaticConfiguration) WalkSpeed() float64             { return c.WalkSpeedMPH }
func (c StaticConfiguration) BikeSpeed() float64             { return c.BikeSpeedMPH }
func (c StaticConfiguration) DefaultSpeedLimit() float64     { return c.RoadSpeedMPH }
func (c StaticConfiguration) BusStopTime() float64           { return c.BusStopSeconds }
func (c StaticConfiguration) PrecomputeTime() int            { return c.PrecomputeSeconds }

// options holds the planner's optional behavior.
type options struct {
	bikePriority bool
	cacheSize    int
	logger       *slog.Logger
}

// Option configures New.
type Option func(*options)

func defaultOptions() options {
	return options{
		bikePriority: true,
		cacheSize:    0,
		logger:       slog.Default(),
	}
}

// WithBikePriority selects the fastest-path policy. When on (the default) any
// bike route wins outright; when off the faster of bike and walk/bus wins,
// with bike taking ties.
func WithBikePriority(on bool) Option {
	return func(o *options) { o.bikePriority = on }
}

// WithQueryCache keeps the last size query results in an LRU cache.
// Zero disables caching. Panics with ErrBadCacheSize for a negative size.
func WithQueryCache(size int) Option {
	return func(o *options) {
		if size < 0 {
			panic(ErrBadCacheSize.Error())
		}
		o.cacheSize = size
	}
}

// WithLogger sets the logger used for construction statistics. A nil logger
// keeps the default.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}
