// SPDX-License-Identifier: MIT
// Package builder provides the edge-weight policies used by the coordinate
// constructors.
package builder

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvroute/compass"
)

// WeightFn prices the edge a→b from its endpoint coordinates. It must be
// pure and must not return NaN.
type WeightFn func(a, b compass.Point) float64

// EuclideanWeightFn returns the straight-line distance between a and b.
// It is the default policy.
func EuclideanWeightFn(a, b compass.Point) float64 {
	return a.Distance(b)
}

// ManhattanWeightFn returns |dx| + |dy|.
func ManhattanWeightFn(a, b compass.Point) float64 {
	return math.Abs(b.X-a.X) + math.Abs(b.Y-a.Y)
}

// ConstantWeightFn returns a WeightFn that always yields value.
// Panics if value is negative or NaN.
func ConstantWeightFn(value float64) WeightFn {
	if value < 0 || math.IsNaN(value) {
		panic(fmt.Sprintf("ConstantWeightFn: value must be ≥ 0, got %g", value))
	}

	return func(_, _ compass.Point) float64 {
		return value
	}
}

// ScaledWeightFn multiplies fn's result by k, e.g. to turn grid units into
// feet. Panics if fn is nil or k is negative or NaN.
func ScaledWeightFn(fn WeightFn, k float64) WeightFn {
	if fn == nil {
		panic("ScaledWeightFn: nil fn")
	}
	if k < 0 || math.IsNaN(k) {
		panic(fmt.Sprintf("ScaledWeightFn: k must be ≥ 0, got %g", k))
	}

	return func(a, b compass.Point) float64 {
		return k * fn(a, b)
	}
}

// WithConstantWeight sets a fixed edge weight via ConstantWeightFn.
func WithConstantWeight(w float64) Option {
	return WithWeightFn(ConstantWeightFn(w))
}
