// SPDX-License-Identifier: MIT
// Package lvroute is an in-memory route finder over weighted, directed
// multigraphs whose node IDs are map coordinates.
//
// What is in the box:
//
//	core/      — Multigraph store and ordered EdgeCollection (parallel edges, thread-safe)
//	dijkstra/  — single-pair shortest route with deterministic tie-breaking
//	compass/   — eight-way compass heading between two "x,y" node IDs
//	bfs/       — hop-count reachability
//	builder/   — record feeds, YAML feed decoding, grid/path/scatter constructors
//	metrics/   — Prometheus collector for route queries
//	cmd/routefind — command-line driver
//
// A typical flow: decode a feed, build the store, ask for a route.
//
//	recs, _ := builder.DecodeYAML(f)
//	g, _ := builder.BuildGraph(nil, builder.FromFeed(builder.Records(recs...)))
//	route, err := dijkstra.FindPath(g, "0,0", "4,3")
//
// Each route segment carries its incremental cost and a compass heading.
// Negative weights may be stored but fail any query that reaches them.
package lvroute
