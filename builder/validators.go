// SPDX-License-Identifier: MIT
// Package builder provides validation helpers to enforce parameter
// contracts in Constructor factories.
package builder

import "fmt"

// Method tags prefix constructor errors.
const (
	methodFeed    = "FromFeed"
	methodGrid    = "Grid"
	methodPath    = "Path"
	methodScatter = "Scatter"
)

// Minimum sizes.
const (
	minGridDim      = 1
	minPathPoints   = 2
	minScatterNodes = 2
	minProbability  = 0.0
	maxProbability  = 1.0
)

// validateMin ensures that got ≥ min.
func validateMin(method, name string, got, min int) error {
	if got < min {
		return fmt.Errorf("%s: %s=%d < min=%d: %w", method, name, got, min, ErrTooFewNodes)
	}

	return nil
}

// validateProbability enforces p ∈ [0, 1].
func validateProbability(method string, p float64) error {
	if !(p >= minProbability && p <= maxProbability) {
		return fmt.Errorf("%s: p=%g not in [%.1f,%.1f]: %w",
			method, p, minProbability, maxProbability, ErrInvalidProbability)
	}

	return nil
}
