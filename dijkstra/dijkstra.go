// SPDX-License-Identifier: MIT
package dijkstra

import (
	"cmp"
	"container/heap"
	"fmt"
	"slices"
	"time"

	"github.com/katalvlaran/lvroute/compass"
	"github.com/katalvlaran/lvroute/core"
)

// FindPath computes a minimum-cost route from source to destination in g.
//
// Returns:
//
//   - route.Found == false with a nil error when either endpoint is not
//     registered or destination is unreachable (or lies beyond MaxCost).
//   - *NegativeEdgeError when a negative weight is met on an edge leaving a
//     settled node toward an unsettled one.
//   - ErrCostOverflow when destination is not reached and some integer
//     cumulative cost would have wrapped on the way.
//   - ErrNilGraph when g is nil.
//
// The store is only read. Concurrent FindPath calls on the same store are
// safe; concurrent mutation is not supported while a query runs.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func FindPath[N cmp.Ordered, W core.Weight](g *core.Multigraph[N, W], source, destination N, opts ...Option) (*Route[N, W], error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if g == nil {
		return nil, ErrNilGraph
	}

	r := &runner[N, W]{
		g:       g,
		options: cfg,
		dst:     destination,
		settled: make(map[N]struct{}),
		best:    make(map[N]W),
	}
	start := time.Now()
	route, outcome, err := r.run(source)
	r.report(outcome, time.Since(start))
	if err != nil {
		cfg.Logger.Debug("dijkstra: query failed",
			"source", source, "destination", destination, "error", err)

		return nil, err
	}
	cfg.Logger.Debug("dijkstra: query done",
		"source", source, "destination", destination, "outcome", string(outcome),
		"settled", r.stats.Settled, "pushes", r.stats.Pushes)

	return route, nil
}

// entry is one frontier record. prev is the arena index of the entry it was
// relaxed from, or -1 for the seed.
type entry[N cmp.Ordered, W core.Weight] struct {
	node N
	cost W
	prev int
	hops int
}

// runner holds the mutable state of a single query.
type runner[N cmp.Ordered, W core.Weight] struct {
	g        *core.Multigraph[N, W]
	options  Options
	dst      N
	pq       frontier[N, W]
	settled  map[N]struct{}
	best     map[N]W // lowest cost pushed so far per node
	overflow error   // first wrapped cumulative cost, if any
	stats    QueryStats
}

// run executes the search and maps its result onto an Outcome.
func (r *runner[N, W]) run(source N) (*Route[N, W], Outcome, error) {
	notFound := &Route[N, W]{Source: source, Destination: r.dst}
	if !r.g.HasNode(source) || !r.g.HasNode(r.dst) {
		return notFound, OutcomeUnknownEndpoint, nil
	}

	heap.Init(&r.pq)
	r.push(entry[N, W]{node: source, prev: -1})

	for r.pq.Len() > 0 {
		i := heap.Pop(&r.pq).(int)
		cur := r.pq.arena[i]

		if cur.node == r.dst {
			route, err := r.reconstruct(source, i)
			if err != nil {
				return nil, OutcomeError, err
			}

			return route, OutcomeFound, nil
		}
		if _, done := r.settled[cur.node]; done {
			r.stats.Stale++
			continue
		}
		r.settled[cur.node] = struct{}{}
		r.stats.Settled++

		if err := r.relax(i); err != nil {
			return nil, OutcomeError, err
		}
	}

	if r.overflow != nil {
		return nil, OutcomeError, r.overflow
	}

	return notFound, OutcomeNoPath, nil
}

// relax pushes one entry per unsettled neighbour of the entry at arena index
// i, priced with the minimum weight of the neighbour's edge collection.
// Collections are ascending, so a negative minimum is the only way a
// negative weight can be present.
func (r *runner[N, W]) relax(i int) error {
	cur := r.pq.arena[i]
	var err error
	r.g.ScanNeighbors(cur.node, func(to N, edges *core.EdgeCollection[W]) bool {
		if _, done := r.settled[to]; done {
			return true
		}
		w, ok := edges.Min()
		if !ok {
			return true
		}
		if w < 0 {
			err = &NegativeEdgeError[N, W]{From: cur.node, To: to, Weight: w}
			return false
		}

		cost := cur.cost + w
		// A wrapped sum is costlier than any representable route: prune it
		// and report only if nothing cheaper reaches the destination.
		if w > 0 && cost < cur.cost {
			if r.overflow == nil {
				r.overflow = fmt.Errorf("%w: %v→%v: %v + %v", ErrCostOverflow, cur.node, to, cur.cost, w)
			}
			return true
		}
		if float64(cost) > r.options.MaxCost {
			return true
		}
		// An equal-cost entry pushed later would lose the tie to the
		// earlier one anyway.
		if prev, seen := r.best[to]; seen && cost >= prev {
			return true
		}
		r.push(entry[N, W]{node: to, cost: cost, prev: i, hops: cur.hops + 1})

		return true
	})

	return err
}

func (r *runner[N, W]) push(e entry[N, W]) {
	r.best[e.node] = e.cost
	r.pq.arena = append(r.pq.arena, e)
	heap.Push(&r.pq, len(r.pq.arena)-1)
	r.stats.Pushes++
}

// reconstruct walks the predecessor chain from arena index i back to the
// seed and returns the route in travel order.
func (r *runner[N, W]) reconstruct(source N, i int) (*Route[N, W], error) {
	last := r.pq.arena[i]
	segments := make([]Segment[N, W], 0, last.hops)

	for e := last; e.prev >= 0; e = r.pq.arena[e.prev] {
		p := r.pq.arena[e.prev]
		seg := Segment[N, W]{From: p.node, To: e.node, Cost: e.cost - p.cost}
		seg.Direction, seg.DirectionErr = direction(p.node, e.node)
		if seg.DirectionErr != nil {
			if r.options.StrictDirections {
				return nil, fmt.Errorf("dijkstra: segment %v→%v: %w", p.node, e.node, seg.DirectionErr)
			}
			r.options.Logger.Debug("dijkstra: direction unavailable",
				"from", p.node, "to", e.node, "error", seg.DirectionErr)
		}
		segments = append(segments, seg)
	}
	slices.Reverse(segments)

	return &Route[N, W]{
		Source:      source,
		Destination: r.dst,
		Found:       true,
		Total:       last.cost,
		Hops:        len(segments),
		Segments:    segments,
	}, nil
}

func (r *runner[N, W]) report(outcome Outcome, d time.Duration) {
	if r.options.Observer == nil {
		return
	}
	r.stats.Outcome = outcome
	r.stats.Duration = d
	r.options.Observer.ObserveQuery(r.stats)
}

// direction classifies from→to when both IDs are strings; other node types
// carry no coordinates.
func direction[N cmp.Ordered](from, to N) (compass.Direction, error) {
	a, okA := any(from).(string)
	b, okB := any(to).(string)
	if !okA || !okB {
		return "", fmt.Errorf("%w: node IDs of type %T carry no coordinates", compass.ErrMalformedCoordinate, from)
	}

	return compass.Classify(a, b)
}

// frontier is a min-heap of arena indices ordered by (cost, node ID, arena
// index). Arena indices grow in discovery order, so among exact ties the
// entry discovered first is extracted first.
type frontier[N cmp.Ordered, W core.Weight] struct {
	arena []entry[N, W]
	items []int
}

func (f *frontier[N, W]) Len() int { return len(f.items) }

func (f *frontier[N, W]) Less(i, j int) bool {
	a, b := f.items[i], f.items[j]
	ea, eb := &f.arena[a], &f.arena[b]
	if ea.cost != eb.cost {
		return ea.cost < eb.cost
	}
	if c := cmp.Compare(ea.node, eb.node); c != 0 {
		return c < 0
	}

	return a < b
}

func (f *frontier[N, W]) Swap(i, j int) { f.items[i], f.items[j] = f.items[j], f.items[i] }

func (f *frontier[N, W]) Push(x any) { f.items = append(f.items, x.(int)) }

func (f *frontier[N, W]) Pop() any {
	n := len(f.items)
	x := f.items[n-1]
	f.items = f.items[:n-1]

	return x
}
