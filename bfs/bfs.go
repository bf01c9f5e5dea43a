// SPDX-License-Identifier: MIT
package bfs

import (
	"cmp"
	"context"
	"fmt"

	"github.com/katalvlaran/lvroute/core"
)

// queueItem pairs a node ID with its BFS depth.
type queueItem[N cmp.Ordered] struct {
	id    N
	depth int
}

// walker encapsulates mutable BFS state.
type walker[N cmp.Ordered, W core.Weight] struct {
	graph *core.Multigraph[N, W]
	opts  Options[N]
	ctx   context.Context
	queue []queueItem[N]
	res   *Result[N]
}

// BFS runs breadth-first search on g starting from start, following every
// directed edge regardless of its weight. Parallel edges between the same
// pair count as one hop.
//
// Returns ErrGraphNil or ErrStartNodeNotFound for invalid input,
// ErrOptionViolation for bad options, the context error on cancellation,
// or any OnVisit error (wrapped).
func BFS[N cmp.Ordered, W core.Weight](g *core.Multigraph[N, W], start N, opts ...Option[N]) (*Result[N], error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions[N]()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.HasNode(start) {
		return nil, ErrStartNodeNotFound
	}

	n := g.NodeCount()
	w := &walker[N, W]{
		graph: g,
		opts:  o,
		ctx:   o.Ctx,
		queue: make([]queueItem[N], 0, n),
		res: &Result[N]{
			Start:  start,
			Order:  make([]N, 0, n),
			Depth:  make(map[N]int, n),
			Parent: make(map[N]N, n),
		},
	}

	w.res.Depth[start] = 0
	w.queue = append(w.queue, queueItem[N]{id: start})

	return w.res, w.loop()
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker[N, W]) loop() error {
	for len(w.queue) > 0 {
		if err := w.ctx.Err(); err != nil {
			return err
		}

		item := w.queue[0]
		w.queue = w.queue[1:]

		w.res.Order = append(w.res.Order, item.id)
		if err := w.opts.OnVisit(item.id, item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %v: %w", item.id, err)
		}
		w.enqueueNeighbors(item)
	}

	return nil
}

// enqueueNeighbors applies filtering and MaxDepth, and enqueues each unseen
// neighbor in ascending ID order.
func (w *walker[N, W]) enqueueNeighbors(item queueItem[N]) {
	next := item.depth + 1
	if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
		return
	}
	for _, nbr := range w.graph.Neighbors(item.id) {
		if !w.opts.FilterNeighbor(item.id, nbr) {
			continue
		}
		if _, seen := w.res.Depth[nbr]; seen {
			continue
		}
		w.res.Depth[nbr] = next
		w.res.Parent[nbr] = item.id
		w.queue = append(w.queue, queueItem[N]{id: nbr, depth: next})
	}
}
