// SPDX-License-Identifier: MIT
//
// File: methods_edges.go
// Role: Edge lifecycle & queries: AddDirectedEdge/AddBidirectionalEdge,
//       DeleteDirectedEdge/DeleteEdgeBothDirections, FindEdges/MinWeight,
//       Edges/EdgeCount.
//
// Determinism:
//   - Edges() returns triples sorted by (From, To, Weight) ascending.
//
// Concurrency:
//   - Mutations under the write lock; read queries under the read lock.
//
// Notes:
//   - No operation creates nodes implicitly; unknown endpoints yield false.
//   - Negative weights are stored as given; only search rejects them.
package core

import "github.com/tidwall/btree"

// AddDirectedEdge inserts weight w into the src→dst EdgeCollection, creating
// the collection on first use.
//
// Returns false without mutation when src or dst is not registered, when w is
// already present for this pair, or when w is NaN.
//
// Complexity: O(log V + log d + log k).
func (g *Multigraph[N, W]) AddDirectedEdge(src, dst N, w W) bool {
	if isNaN(w) {
		return false
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	return g.addDirectedLocked(src, dst, w)
}

// addDirectedLocked is AddDirectedEdge without locking. Caller holds g.mu.
func (g *Multigraph[N, W]) addDirectedLocked(src, dst N, w W) bool {
	adj, ok := g.nodes.Get(src)
	if !ok {
		return false
	}
	if _, ok = g.nodes.Get(dst); !ok {
		return false
	}

	ec, ok := adj.Get(dst)
	if !ok {
		ec = &EdgeCollection[W]{}
		adj.Set(dst, ec)
	}
	if !ec.Add(w) {
		return false
	}
	g.edgeCount++

	return true
}

// AddBidirectionalEdge adds w in both directions between a and b.
//
// Returns true if at least one direction gained a new edge, so re-adding an
// edge that already exists one way still completes the pair.
func (g *Multigraph[N, W]) AddBidirectionalEdge(a, b N, w W) bool {
	if isNaN(w) {
		return false
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	forward := g.addDirectedLocked(a, b, w)
	backward := g.addDirectedLocked(b, a, w)

	return forward || backward
}

// DeleteDirectedEdge removes weight w from the src→dst collection.
//
// When the collection becomes empty the src→dst adjacency entry is dropped,
// so FindEdges(src, dst) reports the pair as absent afterwards.
// Returns whether a weight was removed.
//
// Complexity: O(log V + log d + log k).
func (g *Multigraph[N, W]) DeleteDirectedEdge(src, dst N, w W) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.deleteDirectedLocked(src, dst, w)
}

// deleteDirectedLocked is DeleteDirectedEdge without locking. Caller holds g.mu.
func (g *Multigraph[N, W]) deleteDirectedLocked(src, dst N, w W) bool {
	adj, ok := g.nodes.Get(src)
	if !ok {
		return false
	}
	if _, ok = g.nodes.Get(dst); !ok {
		return false
	}
	ec, ok := adj.Get(dst)
	if !ok {
		return false
	}

	removed := ec.Remove(w)
	if removed {
		g.edgeCount--
	}
	if ec.Len() == 0 {
		adj.Delete(dst)
	}

	return removed
}

// DeleteEdgeBothDirections removes w from a→b and from b→a.
// Returns true if either removal succeeded.
func (g *Multigraph[N, W]) DeleteEdgeBothDirections(a, b N, w W) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	forward := g.deleteDirectedLocked(a, b, w)
	backward := g.deleteDirectedLocked(b, a, w)

	return forward || backward
}

// FindEdges returns a copy of the src→dst EdgeCollection.
//
// ok is false when no src→dst adjacency exists, including when src itself is
// not registered. A returned collection is never empty: an empty bundle is
// removed from the adjacency as soon as it empties.
//
// Complexity: O(log V + log d + k).
func (g *Multigraph[N, W]) FindEdges(src, dst N) (*EdgeCollection[W], bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	adj, ok := g.nodes.Get(src)
	if !ok {
		return nil, false
	}
	ec, ok := adj.Get(dst)
	if !ok {
		return nil, false
	}

	return ec.Clone(), true
}

// HasEdge reports whether at least one src→dst edge exists.
func (g *Multigraph[N, W]) HasEdge(src, dst N) bool {
	_, ok := g.MinWeight(src, dst)

	return ok
}

// MinWeight returns the smallest src→dst weight without copying the bundle.
// ok is false when no src→dst adjacency exists.
func (g *Multigraph[N, W]) MinWeight(src, dst N) (W, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	var zero W
	adj, ok := g.nodes.Get(src)
	if !ok {
		return zero, false
	}
	ec, ok := adj.Get(dst)
	if !ok {
		return zero, false
	}

	return ec.Min()
}

// Edges returns every (From, To, Weight) triple, ascending by From, then To,
// then Weight.
// Complexity: O(E).
func (g *Multigraph[N, W]) Edges() []Edge[N, W] {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge[N, W], 0, g.edgeCount)
	g.nodes.Scan(func(from N, adj *btree.Map[N, *EdgeCollection[W]]) bool {
		adj.Scan(func(to N, ec *EdgeCollection[W]) bool {
			ec.set.Scan(func(w W) bool {
				out = append(out, Edge[N, W]{From: from, To: to, Weight: w})
				return true
			})
			return true
		})
		return true
	})

	return out
}

// EdgeCount returns the number of distinct (From, To, Weight) triples.
func (g *Multigraph[N, W]) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeCount
}
