// File: types.go
// Role: identifiers, Location and the read-only StreetMap / Node / Way contracts.

package streetmap

import (
	"errors"
	"math"

	"github.com/paulmach/orb"
)

// NodeID identifies a street node (an OSM node ID).
type NodeID uint64

// WayID identifies a way (an OSM way ID).
type WayID uint64

// InvalidNodeID is returned by Way.GetNodeID for an out-of-range index.
const InvalidNodeID NodeID = math.MaxUint64

// ErrDecode wraps every failure raised while scanning OSM XML.
var ErrDecode = errors.New("streetmap: decode osm xml")

// Location is a WGS84 coordinate pair in decimal degrees.
type Location struct {
	Lat float64
	Lon float64
}

// Point converts the location into an orb.Point ({lon, lat}).
func (l Location) Point() orb.Point { return orb.Point{l.Lon, l.Lat} }

// Attributed exposes the key/value tags of a node or way. Keys keep the order
// in which they first appeared in the source document.
type Attributed interface {
	AttributeCount() int
	// GetAttributeKey returns "" when index is out of range.
	GetAttributeKey(index int) string
	HasAttribute(key string) bool
	// GetAttribute returns "" for a missing key.
	GetAttribute(key string) string
}

// Node is a geographic point of the street map.
type Node interface {
	Attributed
	ID() NodeID
	Location() Location
}

// Way is an ordered polyline of node IDs with travel attributes
// ("oneway", "bicycle", "name", …).
type Way interface {
	Attributed
	ID() WayID
	NodeCount() int
	// GetNodeID returns InvalidNodeID when index is out of range.
	GetNodeID(index int) NodeID
}

// StreetMap is the read-only street-map provider consumed by the planner.
// Lookups return nil when the index or ID is unknown.
type StreetMap interface {
	NodeCount() int
	WayCount() int
	NodeByIndex(index int) Node
	NodeByID(id NodeID) Node
	WayByIndex(index int) Way
	WayByID(id WayID) Way
}
