// SPDX-License-Identifier: MIT
// Package builder populates core.Multigraph stores for route queries.
//
// It is the boundary between raw map data and the store: whatever parses a
// map file produces a Feed of node and edge records, and FromFeed replays it
// into a store. Coordinate constructors (Grid, Path, Scatter) produce the same
// kind of store directly, for tests, benchmarks and demos.
//
// The package offers:
//
//   - Orchestration:
//     – BuildGraph(opts, cons...) creates a store and runs constructors in order.
//     – Apply(g, opts, cons...) runs constructors against an existing store.
//   - Feed boundary:
//     – Record / NodeRecord / EdgeRecord / DerivedEdgeRecord.
//     – Feed (iter.Seq[Record]) and Records(...) to adapt a slice.
//     – FromFeed(feed) constructor.
//     – DecodeYAML(r) reads a YAML feed document.
//   - Coordinate constructors:
//     – Grid(cols, rows): 4-neighbour grid, edges both ways.
//     – Path(points...):  chain through the given points.
//     – Scatter(n, p):    random lattice points, edges with probability p.
//   - Options:
//     – WithWeightFn / WithConstantWeight: edge pricing from coordinates
//       (EuclideanWeightFn by default).
//     – WithAutoNodes: register unknown edge endpoints on first mention.
//     – WithBidirectional: insert feed/path/scatter edges both ways.
//     – WithSeed / WithRand: randomness for Scatter.
//     – WithLogger: debug traces.
//
// Node IDs produced by the coordinate constructors are "x,y" strings
// (compass.Point.ID), so every route segment over them has a heading.
//
// Guarantees:
//
//   - Idempotent replays: applying the same constructor twice does not
//     duplicate nodes or edges.
//   - Fast-fail on invalid option parameters via panics in option constructors.
//   - Sentinel errors wrapped with the constructor name for errors.Is.
package builder
