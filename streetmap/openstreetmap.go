// File: openstreetmap.go
// Role: StreetMap implementation backed by paulmach/osm objects.
// Determinism:
//   - Nodes and ways are indexed in document order.
// Concurrency:
//   - Immutable after Load/New; safe for concurrent readers.

package streetmap

import (
	"context"
	"fmt"
	"io"

	"github.com/paulmach/osm"
	"github.com/paulmach/osm/osmxml"
)

// attributes is an insertion-ordered tag set.
type attributes struct {
	keys   []string
	values map[string]string
}

func newAttributes(tags osm.Tags) attributes {
	a := attributes{
		keys:   make([]string, 0, len(tags)),
		values: make(map[string]string, len(tags)),
	}
	for _, t := range tags {
		if _, seen := a.values[t.Key]; !seen {
			a.keys = append(a.keys, t.Key)
		}
		a.values[t.Key] = t.Value
	}

	return a
}

func (a attributes) AttributeCount() int { return len(a.keys) }

func (a attributes) GetAttributeKey(index int) string {
	if index < 0 || index >= len(a.keys) {
		return ""
	}

	return a.keys[index]
}

func (a attributes) HasAttribute(key string) bool {
	_, ok := a.values[key]
	return ok
}

func (a attributes) GetAttribute(key string) string { return a.values[key] }

type node struct {
	attributes
	id  NodeID
	loc Location
}

func (n *node) ID() NodeID         { return n.id }
func (n *node) Location() Location { return n.loc }

type way struct {
	attributes
	id    WayID
	nodes []NodeID
}

func (w *way) ID() WayID      { return w.id }
func (w *way) NodeCount() int { return len(w.nodes) }

func (w *way) GetNodeID(index int) NodeID {
	if index < 0 || index >= len(w.nodes) {
		return InvalidNodeID
	}

	return w.nodes[index]
}

// OpenStreetMap is the in-memory StreetMap built from OSM nodes and ways.
// For a repeated ID the first entry wins ID lookups; both stay indexed.
type OpenStreetMap struct {
	nodes    []*node
	ways     []*way
	nodeByID map[NodeID]*node
	wayByID  map[WayID]*way
}

// New builds an OpenStreetMap from decoded OSM objects. Nil entries are ignored.
func New(nodes []*osm.Node, ways []*osm.Way) *OpenStreetMap {
	m := &OpenStreetMap{
		nodes:    make([]*node, 0, len(nodes)),
		ways:     make([]*way, 0, len(ways)),
		nodeByID: make(map[NodeID]*node, len(nodes)),
		wayByID:  make(map[WayID]*way, len(ways)),
	}
	for _, n := range nodes {
		if n != nil {
			m.addNode(n)
		}
	}
	for _, w := range ways {
		if w != nil {
			m.addWay(w)
		}
	}

	return m
}

// Load scans an OSM XML document and returns the street map it describes.
// Relations and changesets are skipped. Decoding errors are wrapped in ErrDecode.
func Load(ctx context.Context, r io.Reader) (*OpenStreetMap, error) {
	scanner := osmxml.New(ctx, r)
	defer scanner.Close()

	var (
		nodes []*osm.Node
		ways  []*osm.Way
	)
	for scanner.Scan() {
		switch o := scanner.Object().(type) {
		case *osm.Node:
			nodes = append(nodes, o)
		case *osm.Way:
			ways = append(ways, o)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}

	return New(nodes, ways), nil
}

func (m *OpenStreetMap) addNode(n *osm.Node) {
	nd := &node{
		attributes: newAttributes(n.Tags),
		id:         NodeID(n.ID),
		loc:        Location{Lat: n.Lat, Lon: n.Lon},
	}
	m.nodes = append(m.nodes, nd)
	if _, dup := m.nodeByID[nd.id]; !dup {
		m.nodeByID[nd.id] = nd
	}
}

func (m *OpenStreetMap) addWay(w *osm.Way) {
	wy := &way{
		attributes: newAttributes(w.Tags),
		id:         WayID(w.ID),
		nodes:      make([]NodeID, len(w.Nodes)),
	}
	for i, wn := range w.Nodes {
		wy.nodes[i] = NodeID(wn.ID)
	}
	m.ways = append(m.ways, wy)
	if _, dup := m.wayByID[wy.id]; !dup {
		m.wayByID[wy.id] = wy
	}
}

// NodeCount returns the number of nodes.
func (m *OpenStreetMap) NodeCount() int { return len(m.nodes) }

// WayCount returns the number of ways.
func (m *OpenStreetMap) WayCount() int { return len(m.ways) }

// NodeByIndex returns the node at index in document order, or nil.
func (m *OpenStreetMap) NodeByIndex(index int) Node {
	if index < 0 || index >= len(m.nodes) {
		return nil
	}

	return m.nodes[index]
}

// NodeByID returns the node with the given ID, or nil.
func (m *OpenStreetMap) NodeByID(id NodeID) Node {
	if n, ok := m.nodeByID[id]; ok {
		return n
	}

	return nil
}

// WayByIndex returns the way at index in document order, or nil.
func (m *OpenStreetMap) WayByIndex(index int) Way {
	if index < 0 || index >= len(m.ways) {
		return nil
	}

	return m.ways[index]
}

// WayByID returns the way with the given ID, or nil.
func (m *OpenStreetMap) WayByID(id WayID) Way {
	if w, ok := m.wayByID[id]; ok {
		return w
	}

	return nil
}
