// SPDX-License-Identifier: MIT
//
// File: edge_collection.go
// Role: Ordered, duplicate-free bundle of weights for one ordered node pair.
//
// Determinism:
//   - Weights() and All() always yield ascending order, independent of insertion order.
//
// Concurrency:
//   - EdgeCollection has no lock of its own. Collections stored inside a
//     Multigraph are guarded by the graph; collections returned to callers are copies.
package core

import (
	"iter"

	"github.com/tidwall/btree"
)

// EdgeCollection is an ordered set of distinct edge weights.
//
// The zero value is an empty, ready-to-use collection.
type EdgeCollection[W Weight] struct {
	set btree.Set[W]
}

// NewEdgeCollection returns a collection holding the given weights.
// Duplicates and NaN values are dropped.
func NewEdgeCollection[W Weight](weights ...W) *EdgeCollection[W] {
	c := &EdgeCollection[W]{}
	for _, w := range weights {
		c.Add(w)
	}

	return c
}

// Add inserts w in sorted position.
// Returns false without mutation if w is already present (or is NaN).
// Complexity: O(log k).
func (c *EdgeCollection[W]) Add(w W) bool {
	if isNaN(w) || c.set.Contains(w) {
		return false
	}
	c.set.Insert(w)

	return true
}

// Remove deletes w if present and reports whether a removal happened.
// Removing an absent weight is a no-op.
// Complexity: O(log k).
func (c *EdgeCollection[W]) Remove(w W) bool {
	if !c.set.Contains(w) {
		return false
	}
	c.set.Delete(w)

	return true
}

// Contains reports whether w is present.
func (c *EdgeCollection[W]) Contains(w W) bool {
	return c.set.Contains(w)
}

// Len returns the number of distinct weights.
func (c *EdgeCollection[W]) Len() int {
	return c.set.Len()
}

// Min returns the smallest weight. ok is false for an empty collection.
func (c *EdgeCollection[W]) Min() (w W, ok bool) {
	c.set.Scan(func(k W) bool {
		w, ok = k, true
		return false
	})

	return w, ok
}

// Weights returns an ascending snapshot of the collection.
// Later mutations of c do not affect the returned slice.
// Complexity: O(k).
func (c *EdgeCollection[W]) Weights() []W {
	out := make([]W, 0, c.set.Len())
	c.set.Scan(func(k W) bool {
		out = append(out, k)
		return true
	})

	return out
}

// All returns a restartable ascending iterator over a snapshot taken at call time.
func (c *EdgeCollection[W]) All() iter.Seq[W] {
	snapshot := c.Weights()

	return func(yield func(W) bool) {
		for _, w := range snapshot {
			if !yield(w) {
				return
			}
		}
	}
}

// Clone returns an independent copy of c.
func (c *EdgeCollection[W]) Clone() *EdgeCollection[W] {
	out := &EdgeCollection[W]{}
	c.set.Scan(func(k W) bool {
		out.set.Insert(k)
		return true
	})

	return out
}

// ascending verifies the strict-ascending invariant over the stored order.
func (c *EdgeCollection[W]) ascending() bool {
	first := true
	var prev W
	ok := true
	c.set.Scan(func(k W) bool {
		if !first && !(prev < k) {
			ok = false
			return false
		}
		first, prev = false, k
		return true
	})

	return ok
}
