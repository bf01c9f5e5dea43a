// SPDX-License-Identifier: MIT
// Package core_test verifies that core.Multigraph tolerates concurrent use.
package core_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvroute/core"
)

// TestConcurrentAddDirectedEdge ensures concurrent inserts of distinct
// parallel edges are all retained.
func TestConcurrentAddDirectedEdge(t *testing.T) {
	g := core.NewMultigraph[string, float64]()
	g.AddNode(NodeX)
	g.AddNode(NodeY)

	var wg sync.WaitGroup
	wg.Add(NWriters)
	for i := 0; i < NWriters; i++ {
		go func(w int) {
			defer wg.Done()
			g.AddDirectedEdge(NodeX, NodeY, float64(w))
		}(i)
	}
	wg.Wait()

	ec, ok := g.FindEdges(NodeX, NodeY)
	require.True(t, ok)
	require.Equal(t, NWriters, ec.Len())
	require.NoError(t, g.CheckInvariants())
}

// TestConcurrentReadersAndCloners validates concurrent reads and clones of a
// store that is not being mutated.
func TestConcurrentReadersAndCloners(t *testing.T) {
	g := core.NewMultigraph[string, float64]()
	g.AddNode(NodeA)
	for i := 0; i < 50; i++ {
		id := fmt.Sprintf("N%02d", i)
		g.AddNode(id)
		g.AddDirectedEdge(NodeA, id, float64(i))
	}

	var wg sync.WaitGroup
	wg.Add(NReaders + NCloners)
	results := make(chan int, NReaders)
	for i := 0; i < NReaders; i++ {
		go func() {
			defer wg.Done()
			results <- len(g.Neighbors(NodeA))
		}()
	}
	for i := 0; i < NCloners; i++ {
		go func() {
			defer wg.Done()
			_ = g.Clone()
		}()
	}
	wg.Wait()
	close(results)

	for n := range results {
		require.Equal(t, 50, n)
	}
}
