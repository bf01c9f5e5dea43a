// SPDX-License-Identifier: MIT
// Package: lvroute/builder
//
// impl_path.go - implementation of Path(points...) constructor.
//
// Contract:
//   - len(points) ≥ 2 (else ErrTooFewNodes).
//   - Registers every point under its "x,y" ID, in order.
//   - Emits edges points[i-1] → points[i] for i=1..n-1, priced by cfg.weightFn;
//     with WithBidirectional the reverse edge is added as well.
//   - Consecutive equal points yield a self-loop; repeated points reuse the node.
//
// Complexity:
//   - Time: O(n log V).
//   - Space: O(1) extra.

package builder

import (
	"github.com/katalvlaran/lvroute/compass"
)

// Path returns a Constructor that lays out a chain through points.
func Path(points ...compass.Point) Constructor {
	return func(g *Graph, cfg builderConfig) error {
		if err := validateMin(methodPath, "points", len(points), minPathPoints); err != nil {
			return err
		}

		for _, p := range points {
			addNodes(g, p.ID())
		}
		for i := 1; i < len(points); i++ {
			a, b := points[i-1], points[i]
			if err := addEdge(g, cfg, methodPath, a.ID(), b.ID(), cfg.weightFn(a, b), cfg.bidirectional); err != nil {
				return err
			}
		}

		return nil
	}
}
