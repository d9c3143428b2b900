// File: types.go
// Role: sentinel values, the Graph read surface and functional options.

package dijkstra

import (
	"errors"
	"math"

	"github.com/katalvlaran/citypath/core"
)

// NoPathExists is the distance reported when the destination cannot be
// reached (or either endpoint is invalid). It is never produced by a real
// path, so callers can compare against it directly.
const NoPathExists = math.MaxFloat64

// Sentinel errors used when an option receives an invalid argument.
var (
	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadInfThreshold indicates that InfEdgeThreshold was set to zero or a
	// negative value, which would make even zero-weight edges impassable.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")
)

// Graph is the read surface Dijkstra needs. Both *core.Graph[T] (builder
// phase) and *core.View[T] (frozen) satisfy it.
type Graph interface {
	VertexCount() int
	OutEdges(id core.VertexID) []core.Edge
}

// Options configures the behavior of ShortestPath.
//
// MaxDistance      – vertices farther than this from the source are not explored.
//
//	Must be ≥ 0. Default is NoPathExists (no cap).
//
// InfEdgeThreshold – edges with weight ≥ this threshold are impassable.
//
//	Must be > 0. Default is +Inf (only infinite weights are impassable).
type Options struct {
	MaxDistance      float64
	InfEdgeThreshold float64
}

// Option represents a functional option for configuring ShortestPath.
type Option func(*Options)

// WithMaxDistance sets a maximum distance threshold. A destination farther
// than max is reported as NoPathExists.
// Panics with ErrBadMaxDistance for a negative value.
func WithMaxDistance(max float64) Option {
	return func(o *Options) {
		if max < 0 || math.IsNaN(max) {
			// Invalid configuration is a programming error; fail early.
			panic(ErrBadMaxDistance.Error())
		}
		o.MaxDistance = max
	}
}

// WithInfEdgeThreshold treats edges with weight ≥ threshold as walls.
// Panics with ErrBadInfThreshold for zero, negative or NaN values.
func WithInfEdgeThreshold(threshold float64) Option {
	return func(o *Options) {
		if !(threshold > 0) {
			panic(ErrBadInfThreshold.Error())
		}
		o.InfEdgeThreshold = threshold
	}
}

// DefaultOptions returns Options with no distance cap and no walls.
func DefaultOptions() Options {
	return Options{
		MaxDistance:      NoPathExists,
		InfEdgeThreshold: math.Inf(1),
	}
}
