// SPDX-License-Identifier: MIT
package dijkstra

import (
	"cmp"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"strings"
	"time"

	"github.com/katalvlaran/lvroute/compass"
	"github.com/katalvlaran/lvroute/core"
)

// Sentinel errors returned by FindPath.
var (
	// ErrNilGraph indicates that a nil *core.Multigraph was passed to FindPath.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrNegativeWeight is matched (via errors.Is) by every *NegativeEdgeError.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrCostOverflow indicates that a cumulative route cost no longer fits
	// in the integer weight type.
	ErrCostOverflow = errors.New("dijkstra: cumulative cost overflows weight type")

	// ErrBadMaxCost indicates that WithMaxCost received a negative or NaN cap.
	ErrBadMaxCost = errors.New("dijkstra: MaxCost must be non-negative")
)

// NegativeEdgeError reports the first negative weight met while relaxing the
// outgoing edges of a settled node. The query is aborted; the store is left
// untouched.
type NegativeEdgeError[N cmp.Ordered, W core.Weight] struct {
	From   N
	To     N
	Weight W
}

// Error implements the error interface.
func (e *NegativeEdgeError[N, W]) Error() string {
	return fmt.Sprintf("%v: edge %v→%v weight=%v", ErrNegativeWeight, e.From, e.To, e.Weight)
}

// Unwrap lets errors.Is(err, ErrNegativeWeight) succeed.
func (e *NegativeEdgeError[N, W]) Unwrap() error { return ErrNegativeWeight }

// Outcome classifies how a query ended.
type Outcome string

// Query outcomes reported to an Observer.
const (
	OutcomeFound           Outcome = "found"
	OutcomeNoPath          Outcome = "no_path"
	OutcomeUnknownEndpoint Outcome = "unknown_endpoint"
	OutcomeError           Outcome = "error"
)

// QueryStats summarises one FindPath call.
type QueryStats struct {
	Outcome  Outcome
	Settled  int // nodes finalised before the search stopped
	Pushes   int // frontier insertions, seed included
	Stale    int // superseded entries discarded on extraction
	Duration time.Duration
}

// Observer receives one QueryStats per FindPath call, after the result is
// known. Implementations must be safe for concurrent use when queries run
// concurrently.
type Observer interface {
	ObserveQuery(QueryStats)
}

// ObserverFunc adapts a plain function to Observer.
type ObserverFunc func(QueryStats)

// ObserveQuery calls f(s).
func (f ObserverFunc) ObserveQuery(s QueryStats) { f(s) }

// Options configures FindPath.
//
//	Logger           – debug-level query traces; discarded by default.
//	Observer         – optional per-query statistics hook.
//	StrictDirections – a segment whose direction cannot be classified fails the query.
//	MaxCost          – routes costlier than this are reported as not found; default +Inf.
type Options struct {
	Logger           *slog.Logger
	Observer         Observer
	StrictDirections bool
	MaxCost          float64
}

// Option represents a functional option for configuring FindPath.
type Option func(*Options)

// DefaultOptions returns the configuration used when no Option is given.
func DefaultOptions() Options {
	return Options{
		Logger:  slog.New(slog.DiscardHandler),
		MaxCost: math.Inf(1),
	}
}

// WithLogger routes query traces to l. A nil l keeps the discard logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithObserver installs obs as the per-query statistics hook.
func WithObserver(obs Observer) Option {
	return func(o *Options) {
		o.Observer = obs
	}
}

// WithStrictDirections makes a direction classification failure abort the
// query with an error wrapping compass.ErrMalformedCoordinate.
func WithStrictDirections() Option {
	return func(o *Options) {
		o.StrictDirections = true
	}
}

// WithMaxCost caps the cumulative cost explored. Frontier entries costlier
// than max are never pushed, so a destination beyond the cap is not found.
// Panics on a negative or NaN max.
func WithMaxCost(max float64) Option {
	return func(o *Options) {
		if max < 0 || math.IsNaN(max) {
			panic(ErrBadMaxCost.Error())
		}
		o.MaxCost = max
	}
}

// Segment is one hop of a reconstructed route.
type Segment[N cmp.Ordered, W core.Weight] struct {
	From N
	To   N

	// Cost is the cumulative cost at To minus the cumulative cost at From.
	Cost W

	// Direction is the compass heading From→To; empty when DirectionErr is set.
	Direction compass.Direction

	// DirectionErr records why Direction could not be classified.
	DirectionErr error
}

// Route is the result of FindPath.
//
// When Found is false, Total, Hops and Segments carry no information.
type Route[N cmp.Ordered, W core.Weight] struct {
	Source      N
	Destination N
	Found       bool
	Total       W
	Hops        int
	Segments    []Segment[N, W]
}

// Nodes returns the visited node IDs in travel order, source first.
// It returns nil for a route that was not found.
func (r *Route[N, W]) Nodes() []N {
	if r == nil || !r.Found {
		return nil
	}
	out := make([]N, 0, len(r.Segments)+1)
	out = append(out, r.Source)
	for _, s := range r.Segments {
		out = append(out, s.To)
	}

	return out
}

// String renders the route one segment per line followed by the total, or
// "no path" when the route was not found.
func (r *Route[N, W]) String() string {
	if r == nil || !r.Found {
		return "no path"
	}
	var sb strings.Builder
	for _, s := range r.Segments {
		dir := string(s.Direction)
		if s.DirectionErr != nil {
			dir = "?"
		}
		fmt.Fprintf(&sb, "%v -> %v (%v, %s)\n", s.From, s.To, s.Cost, dir)
	}
	fmt.Fprintf(&sb, "total %v", r.Total)

	return sb.String()
}
