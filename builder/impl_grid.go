// SPDX-License-Identifier: MIT
// Package: lvroute/builder
//
// impl_grid.go — implementation of Grid(cols, rows) constructor.
//
// Canonical model:
//   • 2D orthogonal grid with 4-neighbourhood.
//   • Node IDs are coordinates "x,y" with x∈[0..cols-1], y∈[0..rows-1],
//     so compass headings along the grid are exactly E/W/N/S.
//
// Contract:
//   • cols ≥ 1 and rows ≥ 1 (else ErrTooFewNodes).
//   • Adds nodes in row-major order (y asc, then x asc).
//   • For each cell emits Right then Down edges, each in both directions,
//     priced by cfg.weightFn (Euclidean default: 1 per step).
//
// Complexity:
//   • Time: O(cols*rows * log V).
//   • Space: O(1) extra.

package builder

import (
	"github.com/katalvlaran/lvroute/compass"
)

// Grid returns a Constructor that builds a cols×rows coordinate grid.
func Grid(cols, rows int) Constructor {
	return func(g *Graph, cfg builderConfig) error {
		if err := validateMin(methodGrid, "cols", cols, minGridDim); err != nil {
			return err
		}
		if err := validateMin(methodGrid, "rows", rows, minGridDim); err != nil {
			return err
		}

		for y := 0; y < rows; y++ {
			for x := 0; x < cols; x++ {
				addNodes(g, gridPoint(x, y).ID())
			}
		}

		for y := 0; y < rows; y++ {
			for x := 0; x < cols; x++ {
				u := gridPoint(x, y)
				if x+1 < cols {
					if err := gridEdge(g, cfg, u, gridPoint(x+1, y)); err != nil {
						return err
					}
				}
				if y+1 < rows {
					if err := gridEdge(g, cfg, u, gridPoint(x, y+1)); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}

func gridPoint(x, y int) compass.Point {
	return compass.Point{X: float64(x), Y: float64(y)}
}

func gridEdge(g *Graph, cfg builderConfig, a, b compass.Point) error {
	return addEdge(g, cfg, methodGrid, a.ID(), b.ID(), cfg.weightFn(a, b), true)
}
