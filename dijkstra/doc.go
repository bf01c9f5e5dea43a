// SPDX-License-Identifier: MIT
// Package dijkstra answers single-pair shortest-route queries over a
// core.Multigraph and reconstructs the route with per-hop compass headings.
//
// Overview:
//
//   - FindPath runs a uniform-cost search from source and stops on the first
//     extraction of destination.
//   - Between two nodes only the cheapest parallel edge matters; the engine
//     prices each hop with the minimum of the ascending edge collection.
//   - Negative weights may be stored in the multigraph but abort any query
//     that reaches them, with a *NegativeEdgeError naming the pair.
//   - Unknown or unreachable endpoints are not errors: the Route reports
//     Found == false.
//
// Determinism:
//
// The frontier orders entries by (cumulative cost, node ID, discovery order).
// When several minimum-cost routes exist, the one whose chain was discovered
// and extracted first under that order is returned, so repeated queries on
// the same store produce identical routes.
//
// Headings:
//
// Every segment carries a compass.Direction computed from "x,y" node IDs.
// A failure to classify is kept on the segment (Segment.DirectionErr) unless
// WithStrictDirections is given, in which case it fails the query.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E) for the entry arena, the settled set and the heap.
//
// Errors (sentinel):
//
//   - ErrNilGraph       nil store.
//   - ErrNegativeWeight matched by *NegativeEdgeError.
//   - ErrCostOverflow   destination unreached and an integer cost wrapped.
//   - ErrBadMaxCost     (via panic) negative or NaN WithMaxCost.
//
// Example usage:
//
//	route, err := dijkstra.FindPath(g, "0,0", "2,0", dijkstra.WithLogger(logger))
//	if err != nil {
//	    return err
//	}
//	if !route.Found {
//	    fmt.Println("no path")
//	}
package dijkstra
