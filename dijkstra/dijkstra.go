// File: dijkstra.go
// Role: single-pair Dijkstra search.
//
// Implementation notes:
//
//   - Distances and predecessors live in dense slices indexed by VertexID.
//   - We use a "lazy" decrease-key strategy: pushing duplicates into the heap
//     and ignoring stale entries when popped.
//   - Heap ties are broken by push order, so equal-cost paths are resolved
//     identically on every run.
//   - The search stops as soon as the destination is settled.

package dijkstra

import (
	"container/heap"

	"github.com/katalvlaran/citypath/core"
)

// ShortestPath returns the minimum total weight from src to dest in g and the
// vertex sequence realizing it (src and dest inclusive).
//
// Returns (NoPathExists, nil) when:
//   - g is nil,
//   - src or dest is outside [0, g.VertexCount()),
//   - dest is unreachable from src (or lies beyond WithMaxDistance).
//
// A query with src == dest returns (0, [src]).
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func ShortestPath(g Graph, src, dest core.VertexID, opts ...Option) (float64, []core.VertexID) {
	if g == nil {
		return NoPathExists, nil
	}
	n := g.VertexCount()
	if !inRange(src, n) || !inRange(dest, n) {
		return NoPathExists, nil
	}

	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	r := newRunner(g, cfg, n)
	r.init(src)
	r.process(dest)

	if !r.visited[dest] {
		return NoPathExists, nil
	}

	return r.dist[dest], r.path(src, dest)
}

func inRange(id core.VertexID, n int) bool {
	return id >= 0 && int(id) < n
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       Graph           // read-only within the search
	options Options         // thresholds
	dist    []float64       // vertex → best known distance from the source
	prev    []core.VertexID // vertex → predecessor on the best known path
	visited []bool          // vertex → distance finalized
	pq      nodePQ          // lazy min-heap
	seq     uint64          // push counter used for tie-breaking
}

func newRunner(g Graph, cfg Options, n int) *runner {
	return &runner{
		g:       g,
		options: cfg,
		dist:    make([]float64, n),
		prev:    make([]core.VertexID, n),
		visited: make([]bool, n),
		pq:      make(nodePQ, 0, n),
	}
}

// init sets every distance to NoPathExists and pushes the source at 0.
func (r *runner) init(src core.VertexID) {
	for i := range r.dist {
		r.dist[i] = NoPathExists
		r.prev[i] = core.InvalidVertexID
	}
	r.dist[src] = 0
	heap.Init(&r.pq)
	r.push(src, 0)
}

// process pops vertices in distance order until the heap drains, the
// destination is settled, or the next distance exceeds MaxDistance.
func (r *runner) process(dest core.VertexID) {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		u := item.id
		if r.visited[u] {
			continue // stale entry
		}
		if item.dist > r.options.MaxDistance {
			break
		}
		r.visited[u] = true
		if u == dest {
			return
		}
		r.relax(u)
	}
}

// relax examines each edge leaving u and improves neighbor distances.
// Assumes r.dist[u] is final.
func (r *runner) relax(u core.VertexID) {
	for _, e := range r.g.OutEdges(u) {
		v := e.To
		if r.visited[v] {
			continue
		}
		if e.Weight >= r.options.InfEdgeThreshold {
			continue
		}
		newDist := r.dist[u] + e.Weight
		if newDist > r.options.MaxDistance {
			continue
		}
		// Strict "<": equal-cost alternatives keep the first predecessor found.
		if newDist >= r.dist[v] {
			continue
		}
		r.dist[v] = newDist
		r.prev[v] = u
		r.push(v, newDist)
	}
}

func (r *runner) push(id core.VertexID, dist float64) {
	heap.Push(&r.pq, &nodeItem{id: id, dist: dist, seq: r.seq})
	r.seq++
}

// path walks predecessors back from dest and returns the forward sequence.
func (r *runner) path(src, dest core.VertexID) []core.VertexID {
	var out []core.VertexID
	for v := dest; v != core.InvalidVertexID; v = r.prev[v] {
		out = append(out, v)
		if v == src {
			break
		}
	}
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}

	return out
}

// nodeItem represents a vertex and its tentative distance from the source.
type nodeItem struct {
	id   core.VertexID
	dist float64
	seq  uint64
}

// nodePQ is a min-heap of *nodeItem ordered by dist, then by push order.
type nodePQ []*nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less orders by smaller dist first; equal distances pop in push order.
func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].seq < pq[j].seq
}

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element; called by heap.Push.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

// Pop removes and returns the last element; called by heap.Pop.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
