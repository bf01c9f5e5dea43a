// SPDX-License-Identifier: MIT
package builder

import (
	"errors"
	"fmt"
	"io"
	"maps"
	"slices"

	"gopkg.in/yaml.v3"
)

// feedDocument is the YAML layout of a feed:
//
//	places: {Library: "0,0", Gym: "1,0"}  # optional display names
//	nodes: ["0,0", "1,0"]
//	edges:
//	  - {from: "0,0", to: "1,0", weight: 1}
//	  - {from: "1,0", to: "0,0"}          # weight derived from coordinates
type feedDocument struct {
	Places map[string]string `yaml:"places"`
	Nodes  []string          `yaml:"nodes"`
	Edges  []feedEdge        `yaml:"edges"`
}

type feedEdge struct {
	From   string   `yaml:"from"`
	To     string   `yaml:"to"`
	Weight *float64 `yaml:"weight"`
}

// Document is a decoded feed: its records plus the named places that map
// human-readable names onto node IDs.
type Document struct {
	Records []Record
	Places  map[string]string
}

// Resolve returns the node ID for name, or name itself when it is not a
// known place.
func (d *Document) Resolve(name string) string {
	if id, ok := d.Places[name]; ok {
		return id
	}

	return name
}

// PlaceNames returns the place names in ascending order.
func (d *Document) PlaceNames() []string {
	return slices.Sorted(maps.Keys(d.Places))
}

// DecodeYAML reads one feed document from r using strict field checking and
// returns its records: every node first, then every edge, in document order.
// An empty document yields no records.
func DecodeYAML(r io.Reader) ([]Record, error) {
	doc, err := DecodeDocument(r)
	if err != nil {
		return nil, err
	}

	return doc.Records, nil
}

// DecodeDocument is DecodeYAML keeping the places section. Place names and
// IDs must be non-empty; IDs need not be registered nodes.
func DecodeDocument(r io.Reader) (*Document, error) {
	var doc feedDocument
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return &Document{Records: []Record{}, Places: map[string]string{}}, nil
		}
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}

	places := make(map[string]string, len(doc.Places))
	for name, id := range doc.Places {
		if name == "" || id == "" {
			return nil, fmt.Errorf("%w: places: %q: empty name or ID", ErrDecode, name)
		}
		places[name] = id
	}

	out := make([]Record, 0, len(doc.Nodes)+len(doc.Edges))
	for i, id := range doc.Nodes {
		if id == "" {
			return nil, fmt.Errorf("%w: nodes[%d]: empty ID", ErrDecode, i)
		}
		out = append(out, NodeRecord(id))
	}
	for i, e := range doc.Edges {
		if e.From == "" || e.To == "" {
			return nil, fmt.Errorf("%w: edges[%d]: from and to are required", ErrDecode, i)
		}
		if e.Weight == nil {
			out = append(out, DerivedEdgeRecord(e.From, e.To))
			continue
		}
		out = append(out, EdgeRecord(e.From, e.To, *e.Weight))
	}

	return &Document{Records: out, Places: places}, nil
}
