// SPDX-License-Identifier: MIT
// Package core defines the Multigraph store, its Edge record and the
// type constraints shared by the search packages.
//
// This file declares Weight, Edge, Multigraph, sentinel errors, and the
// NewMultigraph constructor.
//
// Errors:
//
//	ErrInvariantViolated - CheckInvariants found an inconsistent store.
package core

import (
	"cmp"
	"errors"
	"sync"

	"github.com/tidwall/btree"
)

// ErrInvariantViolated indicates that CheckInvariants detected an
// inconsistent internal representation.
var ErrInvariantViolated = errors.New("core: representation invariant violated")

// Weight is the set of numeric types accepted as edge weights.
// Negative values may be stored; search packages reject them at query time.
type Weight interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 | ~float32 | ~float64
}

// Edge is a flattened (From, To, Weight) triple returned by Edges.
type Edge[N cmp.Ordered, W Weight] struct {
	// From is the source node ID.
	From N

	// To is the destination node ID.
	To N

	// Weight is one distinct weight of the From→To edge collection.
	Weight W
}

// Multigraph is a weighted, directed multigraph.
//
// Node IDs are opaque, totally ordered values; nodes carry no payload.
// Between any ordered pair of nodes there may be several edges as long as
// their weights differ.
type Multigraph[N cmp.Ordered, W Weight] struct {
	mu sync.RWMutex // guards nodes and edgeCount

	// nodes[u] maps each neighbour v of u to the u→v EdgeCollection;
	// never nil for a registered node.
	nodes btree.Map[N, *btree.Map[N, *EdgeCollection[W]]]

	// edgeCount is the total number of distinct (u, v, w) triples.
	edgeCount int
}

// NewMultigraph creates an empty Multigraph.
// Complexity: O(1)
func NewMultigraph[N cmp.Ordered, W Weight]() *Multigraph[N, W] {
	return &Multigraph[N, W]{}
}

// isNaN reports whether w is a floating-point NaN. NaN has no place in an
// ordered collection, so the store refuses it like any other invalid input.
func isNaN[W Weight](w W) bool {
	return w != w
}
