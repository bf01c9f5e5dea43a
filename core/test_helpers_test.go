// SPDX-License-Identifier: MIT
// Package core_test contains test helpers for lvroute/core.
//
// Purpose:
//   - Provide small, deterministic fixtures and assertion utilities for core.Multigraph.
//   - Keep the method-contract tests stdlib-only; suites use testify.
package core_test

import (
	"slices"
	"testing"

	"github.com/katalvlaran/lvroute/core"
)

// Common node IDs used across core tests.
const (
	NodeA = "A"
	NodeB = "B"
	NodeC = "C"
	NodeD = "D"

	NodeX = "X"
	NodeY = "Y"
)

// Common weights used across core tests (avoid magic numbers in test bodies).
const (
	Weight1 = 1.0
	Weight2 = 2.0
	Weight3 = 3.0
	Weight5 = 5.0
	Weight7 = 7.0
)

// Common concurrency sizes.
const (
	NReaders = 50
	NCloners = 20
	NWriters = 100
)

// NewGraphABC RETURNS a float-weighted multigraph with nodes A, B, C and the
// edges A→B {1, 3}, B→C {2}, A→C {5}.
func NewGraphABC(t *testing.T) *core.Multigraph[string, float64] {
	t.Helper()
	g := core.NewMultigraph[string, float64]()
	for _, id := range []string{NodeA, NodeB, NodeC} {
		MustTrue(t, g.AddNode(id), "AddNode("+id+")")
	}
	MustTrue(t, g.AddDirectedEdge(NodeA, NodeB, Weight1), "AddDirectedEdge(A,B,1)")
	MustTrue(t, g.AddDirectedEdge(NodeA, NodeB, Weight3), "AddDirectedEdge(A,B,3)")
	MustTrue(t, g.AddDirectedEdge(NodeB, NodeC, Weight2), "AddDirectedEdge(B,C,2)")
	MustTrue(t, g.AddDirectedEdge(NodeA, NodeC, Weight5), "AddDirectedEdge(A,C,5)")

	return g
}

// MustTrue FAILS the test immediately when cond is false.
func MustTrue(t *testing.T, cond bool, op string) {
	t.Helper()
	if !cond {
		t.Fatalf("%s: expected true, got false", op)
	}
}

// MustFalse FAILS the test immediately when cond is true.
func MustFalse(t *testing.T, cond bool, op string) {
	t.Helper()
	if cond {
		t.Fatalf("%s: expected false, got true", op)
	}
}

// MustEqualInt FAILS the test immediately when got != want.
func MustEqualInt(t *testing.T, got, want int, op string) {
	t.Helper()
	if got != want {
		t.Fatalf("%s: got %d, want %d", op, got, want)
	}
}

// MustEqualString FAILS the test immediately when got != want.
func MustEqualString(t *testing.T, got, want string, op string) {
	t.Helper()
	if got != want {
		t.Fatalf("%s: got %q, want %q", op, got, want)
	}
}

// MustEqualStrings FAILS the test immediately when the slices differ.
func MustEqualStrings(t *testing.T, got, want []string, op string) {
	t.Helper()
	if !slices.Equal(got, want) {
		t.Fatalf("%s: got %v, want %v", op, got, want)
	}
}

// MustEqualWeights FAILS the test immediately when the weight slices differ.
func MustEqualWeights(t *testing.T, got, want []float64, op string) {
	t.Helper()
	if !slices.Equal(got, want) {
		t.Fatalf("%s: got %v, want %v", op, got, want)
	}
}

// MustConsistent FAILS the test when the store reports an invariant violation.
func MustConsistent(t *testing.T, g *core.Multigraph[string, float64], op string) {
	t.Helper()
	if err := g.CheckInvariants(); err != nil {
		t.Fatalf("%s: %v", op, err)
	}
}
