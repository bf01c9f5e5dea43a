// SPDX-License-Identifier: MIT
// Command routefind loads a YAML feed into a multigraph and prints the
// cheapest route between two nodes.
//
// Usage:
//
//	routefind -graph campus.yaml -from 0,0 -to 4,3 [-bidirectional] [-auto-nodes]
//	          [-strict] [-metrics] [-log-level debug] [-log-format json]
//	routefind -graph campus.yaml -from Library -to Gym
//	routefind -graph campus.yaml -places
//
// -from and -to accept either node IDs or names from the feed's places
// section.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"

	"github.com/katalvlaran/lvroute/bfs"
	"github.com/katalvlaran/lvroute/builder"
	"github.com/katalvlaran/lvroute/dijkstra"
	"github.com/katalvlaran/lvroute/metrics"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

type config struct {
	graph         string
	from, to      string
	bidirectional bool
	autoNodes     bool
	strict        bool
	metrics       bool
	places        bool
	logLevel      string
	logFormat     string
}

func parseFlags(args []string, stderr io.Writer) (config, error) {
	var cfg config
	fs := flag.NewFlagSet("routefind", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&cfg.graph, "graph", "", "path to the YAML feed document (required)")
	fs.StringVar(&cfg.from, "from", "", "source node ID or place name")
	fs.StringVar(&cfg.to, "to", "", "destination node ID or place name")
	fs.BoolVar(&cfg.bidirectional, "bidirectional", false, "insert every feed edge in both directions")
	fs.BoolVar(&cfg.autoNodes, "auto-nodes", false, "register edge endpoints missing from the node list")
	fs.BoolVar(&cfg.strict, "strict", false, "fail when a segment has no compass heading")
	fs.BoolVar(&cfg.metrics, "metrics", false, "print query metrics in Prometheus text format")
	fs.BoolVar(&cfg.places, "places", false, "list the feed's place names and exit")
	fs.StringVar(&cfg.logLevel, "log-level", "info", "log level: debug, info, warn, error")
	fs.StringVar(&cfg.logFormat, "log-format", "text", "log format: text or json")
	if err := fs.Parse(args); err != nil {
		return cfg, err
	}
	if cfg.graph == "" {
		return cfg, errors.New("-graph is required")
	}
	if !cfg.places && (cfg.from == "" || cfg.to == "") {
		return cfg, errors.New("-from and -to are required")
	}

	return cfg, nil
}

func run(args []string, stdout, stderr io.Writer) int {
	cfg, err := parseFlags(args, stderr)
	if err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintf(stderr, "routefind: %v\n", err)
		}
		return 1
	}
	logger := newLogger(stderr, cfg.logLevel, cfg.logFormat)

	g, doc, err := loadGraph(cfg, logger)
	if err != nil {
		logger.Error("load graph failed", "path", cfg.graph, "error", err)
		return 1
	}
	logger.Info("graph loaded", "path", cfg.graph,
		"nodes", g.NodeCount(), "edges", g.EdgeCount(), "places", len(doc.Places))

	if cfg.places {
		for _, name := range doc.PlaceNames() {
			fmt.Fprintf(stdout, "%s\t%s\n", name, doc.Places[name])
		}
		return 0
	}
	from, to := doc.Resolve(cfg.from), doc.Resolve(cfg.to)

	reg := prometheus.NewRegistry()
	opts := []dijkstra.Option{
		dijkstra.WithLogger(logger),
		dijkstra.WithObserver(metrics.NewCollector(reg)),
	}
	if cfg.strict {
		opts = append(opts, dijkstra.WithStrictDirections())
	}

	route, err := dijkstra.FindPath(g, from, to, opts...)
	if err != nil {
		logger.Error("route query failed", "from", from, "to", to, "error", err)
		return 1
	}

	if route.Found {
		fmt.Fprintln(stdout, route)
	} else {
		fmt.Fprintf(stdout, "no path from %s to %s\n", from, to)
		if res, err := bfs.BFS(g, from); err == nil {
			fmt.Fprintf(stdout, "%d node(s) reachable from %s\n", len(res.Order), from)
		}
	}

	if cfg.metrics {
		if err := writeMetrics(stdout, reg); err != nil {
			logger.Error("write metrics failed", "error", err)
			return 1
		}
	}

	return 0
}

func loadGraph(cfg config, logger *slog.Logger) (*builder.Graph, *builder.Document, error) {
	f, err := os.Open(cfg.graph)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	doc, err := builder.DecodeDocument(f)
	if err != nil {
		return nil, nil, err
	}
	opts := []builder.Option{builder.WithLogger(logger)}
	if cfg.bidirectional {
		opts = append(opts, builder.WithBidirectional())
	}
	if cfg.autoNodes {
		opts = append(opts, builder.WithAutoNodes())
	}

	g, err := builder.BuildGraph(opts, builder.FromFeed(builder.Records(doc.Records...)))
	if err != nil {
		return nil, nil, err
	}

	return g, doc, nil
}

func writeMetrics(w io.Writer, g prometheus.Gatherer) error {
	mfs, err := g.Gather()
	if err != nil {
		return err
	}
	for _, mf := range mfs {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return err
		}
	}

	return nil
}

// newLogger builds a slog.Logger writing to w at the given level and format.
func newLogger(w io.Writer, level, format string) *slog.Logger {
	opts := &slog.HandlerOptions{Level: parseLevel(level)}

	var handler slog.Handler
	if strings.EqualFold(format, "json") {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	return slog.New(handler)
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
