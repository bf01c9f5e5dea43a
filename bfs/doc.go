// SPDX-License-Identifier: MIT
// Package bfs provides breadth-first search over a core.Multigraph,
// returning hop distances, parent links, and visit order.
//
// Edge weights are ignored: every directed edge is one hop, and a bundle of
// parallel edges between the same pair is followed once. The route engine
// answers "how cheap"; BFS answers "what is reachable at all", which is what
// callers report when a route query comes back empty.
//
// Determinism
//
//	core.Multigraph.Neighbors returns IDs in ascending order and BFS enqueues
//	them in that order, so the visit sequence is fully reproducible.
//
// Options
//
//   - WithContext:        cancellation, checked once per dequeued node.
//   - WithMaxDepth:       d > 0 limits depth; 0 means no limit; d < 0 → ErrOptionViolation.
//   - WithOnVisit:        hook per visited node; an error aborts the search.
//   - WithFilterNeighbor: prune curr→neighbor pairs.
//
// Complexity (V = nodes, E = distinct neighbor pairs)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
package bfs
