// SPDX-License-Identifier: MIT
// Package: lvroute/builder
//
// config.go — internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • weightFn      = EuclideanWeightFn
//   • rng           = nil     (pure/deterministic unless seeded)
//   • autoNodes     = false   (edges to unknown nodes fail)
//   • bidirectional = false   (feed and path edges are one-way)
//   • logger        = discard

package builder

import (
	"log/slog"
	"math/rand"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	// weightFn prices an edge from its endpoint coordinates.
	weightFn WeightFn
	// rng for stochastic constructors; nil means “no randomness”.
	rng *rand.Rand
	// autoNodes registers unknown edge endpoints instead of failing.
	autoNodes bool
	// bidirectional inserts every feed/path edge in both directions.
	bidirectional bool
	// logger receives debug traces of skipped records.
	logger *slog.Logger
}

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order (last wins).
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...Option) builderConfig {
	cfg := builderConfig{
		weightFn: EuclideanWeightFn,
		logger:   slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
