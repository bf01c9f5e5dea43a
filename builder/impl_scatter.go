// SPDX-License-Identifier: MIT
// Package: lvroute/builder
//
// impl_scatter.go — implementation of Scatter(n, p) constructor.
//
// Model:
//   • n distinct integer lattice points drawn without replacement from a
//     side×side box, side = 2·⌈√n⌉, registered under their "x,y" IDs.
//   • Every ordered pair (i, j), i≠j, in index order, gets an edge with
//     independent probability p, priced by cfg.weightFn. With
//     WithBidirectional only i<j pairs are drawn and each edge goes both ways.
//
// Contract:
//   • n ≥ 2 (else ErrTooFewNodes); p ∈ [0,1] (else ErrInvalidProbability).
//   • Requires cfg.rng (else ErrNeedRandSource); point placement is random
//     even for p ∈ {0, 1}.
//
// Determinism:
//   • Fixed seed + options ⇒ identical store.
//
// Complexity:
//   • Time: O(n² log V) pair draws.
//   • Space: O(side²) for the placement permutation.

package builder

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvroute/compass"
)

// Scatter returns a Constructor that samples a random geometric digraph.
func Scatter(n int, p float64) Constructor {
	return func(g *Graph, cfg builderConfig) error {
		if err := validateMin(methodScatter, "n", n, minScatterNodes); err != nil {
			return err
		}
		if err := validateProbability(methodScatter, p); err != nil {
			return err
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", methodScatter, ErrNeedRandSource)
		}
		rng := cfg.rng

		side := 2 * int(math.Ceil(math.Sqrt(float64(n))))
		cells := rng.Perm(side * side)[:n]
		points := make([]compass.Point, n)
		for i, c := range cells {
			points[i] = compass.Point{X: float64(c % side), Y: float64(c / side)}
			addNodes(g, points[i].ID())
		}

		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if i == j || (cfg.bidirectional && j < i) {
					continue
				}
				if rng.Float64() >= p {
					continue
				}
				a, b := points[i], points[j]
				if err := addEdge(g, cfg, methodScatter, a.ID(), b.ID(), cfg.weightFn(a, b), cfg.bidirectional); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
