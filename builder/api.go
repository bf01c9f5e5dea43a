// SPDX-License-Identifier: MIT
// Package: lvroute/builder
//
// api.go - public entry-points for the builder package.
//
// Design contract:
//   - One orchestrator: BuildGraph(opts, cons...). Creates g, resolves cfg, runs cons in order.
//   - Functional options (Option) resolve into an immutable builderConfig.
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical stores.
//   - Constructors never panic; they return sentinel errors wrapped with context.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvroute/core"
)

// Graph is the store produced by the builder: coordinate-style string IDs
// and float64 weights.
type Graph = core.Multigraph[string, float64]

// Constructor applies a deterministic mutation to g using the resolved
// builderConfig. Constructors MUST:
//   - Validate parameters early and return sentinel errors (no panics).
//   - Preserve determinism for the same config and call order.
//   - Treat an insertion refused as a duplicate as a no-op.
type Constructor func(g *Graph, cfg builderConfig) error

// BuildGraph creates an empty store, resolves the builder configuration from
// opts, and applies all constructors in order. Any constructor error is
// wrapped with the context "BuildGraph: %w" and returned immediately; the
// partially built store is discarded.
//
// Errors:
//   - Wraps constructor errors via %w; callers should branch with errors.Is
//     against builder sentinels (ErrTooFewNodes, ErrUnknownNode, ...).
func BuildGraph(opts []Option, cons ...Constructor) (*Graph, error) {
	g := core.NewMultigraph[string, float64]()
	if err := Apply(g, opts, cons...); err != nil {
		return nil, fmt.Errorf("BuildGraph: %w", err)
	}

	return g, nil
}

// Apply runs constructors against an existing store. Unlike BuildGraph it
// leaves whatever was added before the failing constructor in place.
func Apply(g *Graph, opts []Option, cons ...Constructor) error {
	if g == nil {
		return fmt.Errorf("nil graph: %w", ErrConstructFailed)
	}
	cfg := newBuilderConfig(opts...)

	for i, fn := range cons {
		if fn == nil {
			return fmt.Errorf("nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return err
		}
	}
	cfg.logger.Debug("builder: applied constructors",
		"constructors", len(cons), "nodes", g.NodeCount(), "edges", g.EdgeCount())

	return nil
}

// =============================================================================
// Factories - implemented in impl_*.go and feed.go
// =============================================================================
//
// FromFeed(feed Feed) Constructor
//     Replays node and edge records in order (feed.go).
//
// Grid(cols, rows int) Constructor
//     cols×rows coordinate grid "x,y", 4-neighbourhood, edges both ways.
//
// Path(points ...compass.Point) Constructor
//     Chain of coordinate points, one edge per consecutive pair.
//
// Scatter(n int, p float64) Constructor
//     n random lattice points, each ordered pair joined with probability p.
