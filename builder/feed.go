// SPDX-License-Identifier: MIT
// Package: lvroute/builder
//
// feed.go — the graph-construction feed: a sequence of node and edge records
// replayed into a store.
//
// Contract:
//   • Records are applied strictly in feed order.
//   • Node records register the ID (re-registration is a no-op).
//   • Edge records need both endpoints registered, unless WithAutoNodes is
//     set, in which case missing endpoints are registered first.
//   • An edge record without an explicit weight is priced by cfg.weightFn
//     from its "x,y" endpoint IDs.
//   • Duplicate (from, to, weight) edges are skipped, not errors.

package builder

import (
	"fmt"
	"iter"
	"slices"
)

// RecordKind distinguishes node from edge records.
type RecordKind int

// Record kinds.
const (
	NodeRecordKind RecordKind = iota
	EdgeRecordKind
)

// Record is one feed tuple: a node registration or a (from, to, weight) edge.
type Record struct {
	Kind RecordKind

	// ID is the node to register (NodeRecordKind only).
	ID string

	// From, To and Weight describe an edge (EdgeRecordKind only).
	From, To string
	Weight   float64

	// HasWeight is false when Weight must be derived from coordinates.
	HasWeight bool
}

// NodeRecord returns a record registering id.
func NodeRecord(id string) Record {
	return Record{Kind: NodeRecordKind, ID: id}
}

// EdgeRecord returns a record adding from→to with weight w.
func EdgeRecord(from, to string, w float64) Record {
	return Record{Kind: EdgeRecordKind, From: from, To: to, Weight: w, HasWeight: true}
}

// DerivedEdgeRecord returns a record adding from→to priced by the
// configured WeightFn.
func DerivedEdgeRecord(from, to string) Record {
	return Record{Kind: EdgeRecordKind, From: from, To: to}
}

// Feed yields records in application order.
type Feed = iter.Seq[Record]

// Records adapts a slice to a Feed.
func Records(rs ...Record) Feed {
	return slices.Values(rs)
}

// FromFeed returns a Constructor replaying feed into the store.
// Complexity: O(R log V) for R records.
func FromFeed(feed Feed) Constructor {
	return func(g *Graph, cfg builderConfig) error {
		if feed == nil {
			return nil
		}
		i := 0
		for rec := range feed {
			if err := applyRecord(g, cfg, rec); err != nil {
				return fmt.Errorf("record %d: %w", i, err)
			}
			i++
		}

		return nil
	}
}

func applyRecord(g *Graph, cfg builderConfig, rec Record) error {
	switch rec.Kind {
	case NodeRecordKind:
		if rec.ID == "" {
			return fmt.Errorf("%s: empty node ID: %w", methodFeed, ErrInvalidRecord)
		}
		g.AddNode(rec.ID)

		return nil

	case EdgeRecordKind:
		if rec.From == "" || rec.To == "" {
			return fmt.Errorf("%s: edge %q→%q: empty endpoint: %w", methodFeed, rec.From, rec.To, ErrInvalidRecord)
		}
		if err := ensureEndpoints(g, cfg, rec.From, rec.To); err != nil {
			return err
		}
		w := rec.Weight
		if !rec.HasWeight {
			var err error
			if w, err = derivedWeight(cfg, methodFeed, rec.From, rec.To); err != nil {
				return err
			}
		}

		return addEdge(g, cfg, methodFeed, rec.From, rec.To, w, cfg.bidirectional)

	default:
		return fmt.Errorf("%s: unknown record kind %d: %w", methodFeed, rec.Kind, ErrInvalidRecord)
	}
}

func ensureEndpoints(g *Graph, cfg builderConfig, ids ...string) error {
	for _, id := range ids {
		if g.HasNode(id) {
			continue
		}
		if !cfg.autoNodes {
			return fmt.Errorf("%s: %q: %w", methodFeed, id, ErrUnknownNode)
		}
		g.AddNode(id)
		cfg.logger.Debug("builder: node registered from edge", "id", id)
	}

	return nil
}
