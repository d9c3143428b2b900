// File: planner.go
// Role: Planner construction: three parallel graphs, bus hops, street names,
// nearest-node tree and query cache.
// Determinism:
//   - Vertices are added in street-map node order; edges in way order, then
//     in route-name order for direct bus hops.
// Concurrency:
//   - New is single-threaded. The returned Planner is immutable and safe for
//     concurrent queries.

package planner

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/bluele/gcache"
	"github.com/kyroy/kdtree"
	"golang.org/x/exp/slog"

	"github.com/katalvlaran/citypath/busindex"
	"github.com/katalvlaran/citypath/core"
	"github.com/katalvlaran/citypath/dijkstra"
	"github.com/katalvlaran/citypath/geoutil"
	"github.com/katalvlaran/citypath/streetmap"
)

// secondsPerHour converts "miles / mph" into seconds.
const secondsPerHour = 3600

// hop is an ordered pair of adjacent street nodes.
type hop struct {
	from, to streetmap.NodeID
}

// Planner answers shortest-distance and fastest-time queries over a street
// map and bus system. Build it with New.
type Planner struct {
	streets streetmap.StreetMap
	buses   *busindex.Indexer

	sorted   []streetmap.Node
	nodeByID map[streetmap.NodeID]streetmap.Node
	vertexOf map[streetmap.NodeID]core.VertexID

	distance *core.View[streetmap.NodeID] // miles
	bike     *core.View[streetmap.NodeID] // seconds
	walkBus  *core.View[streetmap.NodeID] // seconds

	// Weak component labels per graph; nil when labelling did not finish.
	distanceComp, bikeComp, walkBusComp []int

	busHops     map[hop]struct{}
	streetNames map[hop]string

	tree  *kdtree.KDTree
	cache gcache.Cache

	bikePriority bool
	log          *slog.Logger
}

// builder carries the mutable state of New.
type builder struct {
	p        *Planner
	distance *dijkstra.Router[streetmap.NodeID]
	bike     *dijkstra.Router[streetmap.NodeID]
	walkBus  *dijkstra.Router[streetmap.NodeID]
	nodes    []streetmap.Node
	walkCost map[hop]float64

	walkSpeed, bikeSpeed, roadSpeed, dwell float64

	skipped int
}

// New builds a Planner from cfg.
//
// Steps:
//  1. Validate cfg (ErrNilConfiguration, ErrNilStreetMap, ErrBadSpeed).
//  2. Index the bus system (nil means no buses).
//  3. Add one vertex per street node to the distance, bike and walk/bus graphs.
//  4. Derive edges from every consecutive node pair of every way.
//  5. Add direct bus-hop edges for consecutive stops of every route.
//  6. Precompute and freeze the three graphs; build the nearest-node tree.
func New(cfg Configuration, opts ...Option) (*Planner, error) {
	if cfg == nil {
		return nil, ErrNilConfiguration
	}
	sm := cfg.StreetMap()
	if sm == nil {
		return nil, ErrNilStreetMap
	}
	speeds := []struct {
		name string
		v    float64
	}{
		{"walk", cfg.WalkSpeed()},
		{"bike", cfg.BikeSpeed()},
		{"road", cfg.DefaultSpeedLimit()},
	}
	for _, s := range speeds {
		if !(s.v > 0) || math.IsInf(s.v, 1) {
			return nil, fmt.Errorf("%w: %s speed %v", ErrBadSpeed, s.name, s.v)
		}
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	dwell := cfg.BusStopTime()
	if !(dwell >= 0) || math.IsInf(dwell, 1) {
		o.logger.Warn("ignoring invalid bus stop time", "seconds", dwell)
		dwell = 0
	}

	p := &Planner{
		streets:      sm,
		buses:        busindex.New(cfg.BusSystem()),
		nodeByID:     make(map[streetmap.NodeID]streetmap.Node, sm.NodeCount()),
		vertexOf:     make(map[streetmap.NodeID]core.VertexID, sm.NodeCount()),
		busHops:      make(map[hop]struct{}),
		streetNames:  make(map[hop]string),
		bikePriority: o.bikePriority,
		log:          o.logger,
	}
	b := &builder{
		p:         p,
		distance:  dijkstra.NewRouter[streetmap.NodeID](core.WithVertexCapacity(sm.NodeCount())),
		bike:      dijkstra.NewRouter[streetmap.NodeID](core.WithVertexCapacity(sm.NodeCount())),
		walkBus:   dijkstra.NewRouter[streetmap.NodeID](core.WithVertexCapacity(sm.NodeCount())),
		walkCost:  make(map[hop]float64),
		walkSpeed: cfg.WalkSpeed(),
		bikeSpeed: cfg.BikeSpeed(),
		roadSpeed: cfg.DefaultSpeedLimit(),
		dwell:     dwell,
	}

	b.addNodes()
	b.addWays()
	b.addBusHops()
	b.finish(time.Duration(cfg.PrecomputeTime()) * time.Second)

	if o.cacheSize > 0 {
		p.cache = gcache.New(o.cacheSize).LRU().Build()
	}

	p.log.Info("planner built",
		"nodes", len(p.sorted),
		"ways", sm.WayCount(),
		"distance_edges", p.distance.EdgeCount(),
		"bike_edges", p.bike.EdgeCount(),
		"walkbus_edges", p.walkBus.EdgeCount(),
		"bus_hops", len(p.busHops),
		"skipped_segments", b.skipped,
	)

	return p, nil
}

// addNodes adds one vertex per distinct node, identically in all three
// graphs. The first node seen for an ID wins.
func (b *builder) addNodes() {
	sm := b.p.streets
	for i := 0; i < sm.NodeCount(); i++ {
		n := sm.NodeByIndex(i)
		if n == nil {
			continue
		}
		if _, dup := b.p.vertexOf[n.ID()]; dup {
			continue
		}
		v := b.distance.AddVertex(n.ID())
		b.bike.AddVertex(n.ID())
		b.walkBus.AddVertex(n.ID())
		b.p.vertexOf[n.ID()] = v
		b.p.nodeByID[n.ID()] = n
		b.nodes = append(b.nodes, n)
	}

	b.p.sorted = make([]streetmap.Node, len(b.nodes))
	copy(b.p.sorted, b.nodes)
	sort.Slice(b.p.sorted, func(i, j int) bool { return b.p.sorted[i].ID() < b.p.sorted[j].ID() })
}

// addWays derives distance, bike and walk/bus edges from each way segment.
func (b *builder) addWays() {
	sm := b.p.streets
	for i := 0; i < sm.WayCount(); i++ {
		w := sm.WayByIndex(i)
		if w == nil {
			continue
		}
		bikable := w.GetAttribute("bicycle") != "no"
		bidirectional := w.GetAttribute("oneway") != "yes"
		name := w.GetAttribute("name")

		for k := 1; k < w.NodeCount(); k++ {
			from, to := w.GetNodeID(k-1), w.GetNodeID(k)
			vf, ok1 := b.p.vertexOf[from]
			vt, ok2 := b.p.vertexOf[to]
			if !ok1 || !ok2 {
				b.skipped++
				b.p.log.Debug("skipping segment with unknown node",
					"way", uint64(w.ID()), "from", uint64(from), "to", uint64(to))
				continue
			}
			miles := b.miles(from, to)

			b.distance.AddEdge(vf, vt, miles, bidirectional)
			if bikable {
				b.bike.AddEdge(vf, vt, miles/b.bikeSpeed*secondsPerHour, bidirectional)
			}

			// Pedestrians ignore oneway.
			walk := miles / b.walkSpeed * secondsPerHour
			b.addWalkBusEdge(hop{from, to}, vf, vt, walk, miles)
			b.addWalkBusEdge(hop{to, from}, vt, vf, walk, miles)

			if name != "" {
				b.nameHop(hop{from, to}, name)
				b.nameHop(hop{to, from}, name)
			}
		}
	}
}

// addWalkBusEdge adds h with weight min(walk, bus) where bus applies only if
// some route serves h consecutively.
func (b *builder) addWalkBusEdge(h hop, vf, vt core.VertexID, walk, miles float64) {
	if best, ok := b.walkCost[h]; !ok || walk < best {
		b.walkCost[h] = walk
	}
	weight := walk
	if b.p.buses.RouteBetweenNodeIDs(h.from, h.to) {
		if bus := b.busSeconds(miles); bus < walk {
			weight = bus
			b.p.busHops[h] = struct{}{}
		}
	}
	b.walkBus.AddEdge(vf, vt, weight, false)
}

// addBusHops links consecutive stops of every route directly, so a bus can
// run between stops that share no way segment. Pairs already recorded as bus
// hops, or where walking is no slower, are left alone.
func (b *builder) addBusHops() {
	ix := b.p.buses
	for r := 0; r < ix.RouteCount(); r++ {
		route := ix.SortedRouteByIndex(r)
		for i := 0; i+1 < route.StopCount(); i++ {
			s1, s2 := ix.StopByID(route.GetStopID(i)), ix.StopByID(route.GetStopID(i+1))
			if s1 == nil || s2 == nil || s1.NodeID() == s2.NodeID() {
				continue
			}
			h := hop{s1.NodeID(), s2.NodeID()}
			if _, done := b.p.busHops[h]; done {
				continue
			}
			vf, ok1 := b.p.vertexOf[h.from]
			vt, ok2 := b.p.vertexOf[h.to]
			if !ok1 || !ok2 {
				b.skipped++
				continue
			}
			bus := b.busSeconds(b.miles(h.from, h.to))
			if walk, ok := b.walkCost[h]; ok && walk <= bus {
				continue
			}
			b.walkBus.AddEdge(vf, vt, bus, false)
			b.p.busHops[h] = struct{}{}
		}
	}
}

// finish runs the precompute hook within budget, freezes every graph and
// builds the nearest-node tree.
func (b *builder) finish(budget time.Duration) {
	deadline := time.Now().Add(budget)
	for _, g := range []struct {
		name   string
		r      *dijkstra.Router[streetmap.NodeID]
		labels *[]int
	}{
		{"distance", b.distance, &b.p.distanceComp},
		{"bike", b.bike, &b.p.bikeComp},
		{"walkbus", b.walkBus, &b.p.walkBusComp},
	} {
		if !g.r.Precompute(deadline) {
			b.p.log.Warn("precompute failed", "graph", g.name)
		}
		*g.labels = g.r.Components()
		if *g.labels == nil {
			b.p.log.Debug("no component labels", "graph", g.name, "budget", budget)
		}
	}

	b.p.distance = b.distance.Freeze()
	b.p.bike = b.bike.Freeze()
	b.p.walkBus = b.walkBus.Freeze()
	b.p.tree = newNodeTree(b.nodes)
}

func (b *builder) nameHop(h hop, name string) {
	if _, ok := b.p.streetNames[h]; !ok {
		b.p.streetNames[h] = name
	}
}

func (b *builder) miles(from, to streetmap.NodeID) float64 {
	a := b.p.nodeByID[from].Location().Point()
	c := b.p.nodeByID[to].Location().Point()

	return geoutil.DistanceMiles(a, c)
}

func (b *builder) busSeconds(miles float64) float64 {
	return miles/b.roadSpeed*secondsPerHour + b.dwell
}
