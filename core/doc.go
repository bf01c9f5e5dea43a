// SPDX-License-Identifier: MIT
// Package core provides the in-memory weighted, directed multigraph store used
// by every other lvroute package.
//
// The store G = (V, E) keeps, for each ordered node pair (u, v), an ordered
// set of distinct weights (an EdgeCollection). Two edges u→v with equal weight
// collapse into one; edges with distinct weights are kept side by side as
// parallel edges.
//
//	nodes[u]            = adjacency of u (ordered by neighbour id)
//	nodes[u][v]         = EdgeCollection of u→v (ordered by weight)
//
// Invariants:
//
//   - Every adjacency key and every adjacency target is a registered node.
//   - An adjacency entry (u, v) exists iff its EdgeCollection is non-empty.
//   - EdgeCollection entries are strictly ascending (no duplicates).
//
// Undirected connections are expressed as two directed edges
// (AddBidirectionalEdge / DeleteEdgeBothDirections).
//
// Core Methods:
//
//	// Node lifecycle
//	AddNode(id N) bool                      // O(log V)
//	HasNode(id N) bool                      // O(log V)
//	DeleteNode(id N) bool                   // O(V·log d)
//
//	// Edge lifecycle
//	AddDirectedEdge(src, dst N, w W) bool   // O(log V + log d + log k)
//	AddBidirectionalEdge(a, b N, w W) bool
//	DeleteDirectedEdge(src, dst N, w W) bool
//	DeleteEdgeBothDirections(a, b N, w W) bool
//
//	// Query
//	FindEdges(src, dst N) (*EdgeCollection[W], bool) // copy; ok=false ⇒ no adjacency pair
//	MinWeight(src, dst N) (W, bool)
//	Neighbors(id N) []N                     // ascending
//	Nodes() []N                             // ascending
//	Edges() []Edge[N, W]                    // ascending by (From, To, Weight)
//
// Ordering is provided by github.com/tidwall/btree: the node registry, every
// adjacency map and every EdgeCollection are B-trees, so sorted enumeration
// never needs an extra sort pass.
//
// Concurrency: a single sync.RWMutex guards the store. Mutations take the write
// lock and queries the read lock, so concurrent read-only path queries over a
// store that is not being mutated are safe.
//
// Structural misuse (unknown node, duplicate weight, absent edge) is reported
// through boolean results, never through errors or panics.
package core
