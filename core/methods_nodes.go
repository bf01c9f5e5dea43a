// SPDX-License-Identifier: MIT
//
// File: methods_nodes.go
// Role: Node lifecycle & queries.
//
// Determinism:
//   - Nodes() returns IDs in ascending order.
//
// Concurrency:
//   - Mutations under the write lock, queries under the read lock.
package core

import "github.com/tidwall/btree"

// AddNode registers id if absent.
//
// Returns false (and changes nothing) when id is already registered.
// Existing adjacency is never touched.
//
// Complexity: O(log V).
func (g *Multigraph[N, W]) AddNode(id N) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, exists := g.nodes.Get(id); exists {
		return false
	}
	g.nodes.Set(id, &btree.Map[N, *EdgeCollection[W]]{})

	return true
}

// HasNode reports whether id is registered.
// Complexity: O(log V).
func (g *Multigraph[N, W]) HasNode(id N) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.nodes.Get(id)

	return ok
}

// DeleteNode removes id together with its outgoing adjacency and every
// adjacency entry of other nodes that points at it.
//
// Returns whether id existed.
//
// Complexity: O(V·log d) for purging incoming references.
func (g *Multigraph[N, W]) DeleteNode(id N) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	adj, exists := g.nodes.Get(id)
	if !exists {
		return false
	}

	// Outgoing edges disappear with the node.
	adj.Scan(func(_ N, ec *EdgeCollection[W]) bool {
		g.edgeCount -= ec.Len()
		return true
	})
	g.nodes.Delete(id)

	// Purge incoming references from every other node.
	g.nodes.Scan(func(_ N, other *btree.Map[N, *EdgeCollection[W]]) bool {
		if ec, ok := other.Delete(id); ok {
			g.edgeCount -= ec.Len()
		}
		return true
	})

	return true
}

// Nodes returns every registered node ID in ascending order.
// Complexity: O(V).
func (g *Multigraph[N, W]) Nodes() []N {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]N, 0, g.nodes.Len())
	g.nodes.Scan(func(id N, _ *btree.Map[N, *EdgeCollection[W]]) bool {
		out = append(out, id)
		return true
	})

	return out
}

// NodeCount returns the number of registered nodes.
func (g *Multigraph[N, W]) NodeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.nodes.Len()
}
