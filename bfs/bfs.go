// File: bfs.go
// Role: breadth-first walker over a Graph.
// Determinism:
//   - Neighbors are queued in OutEdges order.

package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/citypath/core"
)

// queueItem pairs a vertex ID with its BFS depth.
type queueItem struct {
	id    core.VertexID
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph Graph
	opts  Options
	ctx   context.Context
	queue []queueItem
	res   *Result
}

// BFS runs breadth-first search on g starting from start. Edge weights are
// ignored; every edge counts as one hop.
// Returns ErrGraphNil or ErrStartVertexNotFound for invalid input,
// ErrOptionViolation for bad options, ctx.Err() on cancellation, or any
// OnVisit error.
func BFS(g Graph, start core.VertexID, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if start < 0 || int(start) >= g.VertexCount() {
		return nil, fmt.Errorf("%w: %d", ErrStartVertexNotFound, start)
	}

	w := &walker{
		graph: g,
		opts:  o,
		ctx:   o.Ctx,
		res: &Result{
			Depth:  make(map[core.VertexID]int),
			Parent: make(map[core.VertexID]core.VertexID),
		},
	}
	w.enqueue(start, 0, core.InvalidVertexID)

	return w.res, w.loop()
}

// enqueue marks id visited at depth d, records its parent and queues it.
func (w *walker) enqueue(id core.VertexID, d int, parent core.VertexID) {
	w.res.Depth[id] = d
	if parent != core.InvalidVertexID {
		w.res.Parent[id] = parent
	}
	w.queue = append(w.queue, queueItem{id: id, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]

		w.res.Order = append(w.res.Order, item.id)
		if err := w.opts.OnVisit(item.id, item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %d: %w", item.id, err)
		}
		w.enqueueNeighbors(item)
	}

	return nil
}

// enqueueNeighbors applies filtering and MaxDepth and queues every unseen
// neighbor in edge order.
func (w *walker) enqueueNeighbors(item queueItem) {
	next := item.depth + 1
	if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
		return
	}
	for _, e := range w.graph.OutEdges(item.id) {
		if !w.opts.FilterEdge(item.id, e) {
			continue
		}
		if _, seen := w.res.Depth[e.To]; !seen {
			w.enqueue(e.To, next, item.id)
		}
	}
}
