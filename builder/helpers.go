// SPDX-License-Identifier: MIT
// Package builder provides internal helpers shared by the constructors.
package builder

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvroute/compass"
)

// addNodes registers ids in order. Re-registering an existing ID is a no-op.
func addNodes(g *Graph, ids ...string) {
	for _, id := range ids {
		g.AddNode(id)
	}
}

// addEdge inserts from→to (and to→from when both is set) with weight w.
// NaN is rejected; an edge already present with the same weight is skipped.
func addEdge(g *Graph, cfg builderConfig, method, from, to string, w float64, both bool) error {
	if math.IsNaN(w) {
		return fmt.Errorf("%s: edge %s→%s: NaN weight: %w", method, from, to, ErrInvalidRecord)
	}
	var added bool
	if both {
		added = g.AddBidirectionalEdge(from, to, w)
	} else {
		added = g.AddDirectedEdge(from, to, w)
	}
	if !added {
		cfg.logger.Debug("builder: duplicate edge skipped",
			"method", method, "from", from, "to", to, "weight", w)
	}

	return nil
}

// derivedWeight prices from→to with cfg.weightFn; both IDs must be "x,y".
func derivedWeight(cfg builderConfig, method, from, to string) (float64, error) {
	a, err := compass.ParsePoint(from)
	if err != nil {
		return 0, fmt.Errorf("%s: derive weight %s→%s: %w: %w", method, from, to, ErrInvalidRecord, err)
	}
	b, err := compass.ParsePoint(to)
	if err != nil {
		return 0, fmt.Errorf("%s: derive weight %s→%s: %w: %w", method, from, to, ErrInvalidRecord, err)
	}

	return cfg.weightFn(a, b), nil
}
