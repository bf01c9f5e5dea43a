// SPDX-License-Identifier: MIT
//
// File: methods_clone.go
// Role: Cloning, clearing and invariant verification of Multigraph instances.
//
// Concurrency:
//   - Clone and CheckInvariants take the read lock only; Clear takes the write lock.
package core

import (
	"fmt"

	"github.com/tidwall/btree"
)

// Clone returns a deep copy of the graph: nodes, adjacency and every
// EdgeCollection. Later mutations of either graph do not affect the other.
//
// Complexity: O(V + E).
func (g *Multigraph[N, W]) Clone() *Multigraph[N, W] {
	g.mu.RLock()
	defer g.mu.RUnlock()

	clone := NewMultigraph[N, W]()
	g.nodes.Scan(func(id N, adj *btree.Map[N, *EdgeCollection[W]]) bool {
		cadj := &btree.Map[N, *EdgeCollection[W]]{}
		adj.Scan(func(to N, ec *EdgeCollection[W]) bool {
			cadj.Set(to, ec.Clone())
			return true
		})
		clone.nodes.Set(id, cadj)
		return true
	})
	clone.edgeCount = g.edgeCount

	return clone
}

// Clear removes every node and edge.
// Complexity: O(1).
func (g *Multigraph[N, W]) Clear() {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.nodes = btree.Map[N, *btree.Map[N, *EdgeCollection[W]]]{}
	g.edgeCount = 0
}

// CheckInvariants verifies the representation invariants of the store:
//
//   - every adjacency target is a registered node;
//   - every stored EdgeCollection is non-empty and strictly ascending;
//   - the cached edge count equals the number of stored weights.
//
// Returns nil for a consistent store, otherwise an error wrapping
// ErrInvariantViolated that names the first offending pair.
//
// Complexity: O(V + E·log V).
func (g *Multigraph[N, W]) CheckInvariants() error {
	g.mu.RLock()
	defer g.mu.RUnlock()

	registered := func(id N) bool {
		_, ok := g.nodes.Get(id)
		return ok
	}

	var err error
	total := 0
	g.nodes.Scan(func(from N, adj *btree.Map[N, *EdgeCollection[W]]) bool {
		if adj == nil {
			err = fmt.Errorf("%w: node %v has nil adjacency", ErrInvariantViolated, from)
			return false
		}
		adj.Scan(func(to N, ec *EdgeCollection[W]) bool {
			switch {
			case !registered(to):
				err = fmt.Errorf("%w: edge %v→%v targets an unregistered node", ErrInvariantViolated, from, to)
			case ec == nil || ec.Len() == 0:
				err = fmt.Errorf("%w: empty edge collection kept for %v→%v", ErrInvariantViolated, from, to)
			case !ec.ascending():
				err = fmt.Errorf("%w: weights of %v→%v are not strictly ascending", ErrInvariantViolated, from, to)
			default:
				total += ec.Len()
				return true
			}
			return false
		})
		return err == nil
	})
	if err != nil {
		return err
	}
	if total != g.edgeCount {
		return fmt.Errorf("%w: edge count %d, stored weights %d", ErrInvariantViolated, g.edgeCount, total)
	}

	return nil
}
