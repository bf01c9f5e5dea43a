// SPDX-License-Identifier: MIT
// Package: lvroute/builder
//
// options.go — functional options for the builder package.
//
// Contract:
//   • Options are functional (type Option func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Constructors themselves never panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import (
	"log/slog"
	"math/rand"
)

// Option customizes constructor behavior by mutating a builderConfig before
// construction begins.
type Option func(*builderConfig)

// WithWeightFn overrides how edge weights are derived from endpoint
// coordinates. Panics on nil.
func WithWeightFn(fn WeightFn) Option {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}
	return func(c *builderConfig) {
		c.weightFn = fn
	}
}

// WithAutoNodes registers edge endpoints on first mention instead of
// rejecting the record with ErrUnknownNode.
func WithAutoNodes() Option {
	return func(c *builderConfig) {
		c.autoNodes = true
	}
}

// WithBidirectional inserts every feed and path edge in both directions.
// Grid edges are always bidirectional.
func WithBidirectional() Option {
	return func(c *builderConfig) {
		c.bidirectional = true
	}
}

// WithRand provides an explicit RNG for stochastic constructors.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed.
func WithSeed(seed int64) Option {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithLogger routes debug traces (skipped duplicates, auto-registered nodes)
// to l. A nil l keeps the discard logger.
func WithLogger(l *slog.Logger) Option {
	return func(c *builderConfig) {
		if l != nil {
			c.logger = l
		}
	}
}
