// SPDX-License-Identifier: MIT
//
// File: methods_adjacent.go
// Role: Adjacency queries: Neighbors, ScanNeighbors, OutDegree and the
//       textual listings ListNodes/ListChildren.
//
// Determinism:
//   - Neighbors are enumerated in ascending ID order; each bundle's weights ascending.
package core

import (
	"fmt"
	"strings"
)

// Neighbors returns the distinct outgoing neighbours of id in ascending order.
// The result is empty when id has no outgoing edges or is not registered.
// Complexity: O(d).
func (g *Multigraph[N, W]) Neighbors(id N) []N {
	g.mu.RLock()
	defer g.mu.RUnlock()

	adj, ok := g.nodes.Get(id)
	if !ok {
		return []N{}
	}
	out := make([]N, 0, adj.Len())
	adj.Scan(func(to N, _ *EdgeCollection[W]) bool {
		out = append(out, to)
		return true
	})

	return out
}

// ScanNeighbors calls fn for every outgoing neighbour of id in ascending
// order, stopping early when fn returns false.
//
// The EdgeCollection passed to fn is the live bundle. fn must treat it as
// read-only, must not retain it, and must not call mutating methods of g
// (the read lock is held for the whole scan).
//
// Returns false when id is not registered.
func (g *Multigraph[N, W]) ScanNeighbors(id N, fn func(to N, edges *EdgeCollection[W]) bool) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	adj, ok := g.nodes.Get(id)
	if !ok {
		return false
	}
	adj.Scan(fn)

	return true
}

// OutDegree returns the number of distinct outgoing neighbours of id and the
// total number of outgoing edges (parallel edges counted separately).
// Both are zero for an unregistered id.
func (g *Multigraph[N, W]) OutDegree(id N) (neighbors, edges int) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	adj, ok := g.nodes.Get(id)
	if !ok {
		return 0, 0
	}
	adj.Scan(func(_ N, ec *EdgeCollection[W]) bool {
		edges += ec.Len()
		return true
	})

	return adj.Len(), edges
}

// ListNodes renders every node ID, ascending, separated by single spaces.
func (g *Multigraph[N, W]) ListNodes() string {
	nodes := g.Nodes()
	parts := make([]string, len(nodes))
	for i, id := range nodes {
		parts[i] = fmt.Sprint(id)
	}

	return strings.Join(parts, " ")
}

// ListChildren renders every outgoing edge of id as "child(weight)",
// ascending by child and then by weight, separated by single spaces.
// An unregistered id yields the empty string.
func (g *Multigraph[N, W]) ListChildren(id N) string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	adj, ok := g.nodes.Get(id)
	if !ok {
		return ""
	}

	var sb strings.Builder
	adj.Scan(func(to N, ec *EdgeCollection[W]) bool {
		ec.set.Scan(func(w W) bool {
			if sb.Len() > 0 {
				sb.WriteByte(' ')
			}
			fmt.Fprintf(&sb, "%v(%v)", to, w)
			return true
		})
		return true
	})

	return sb.String()
}
