// SPDX-License-Identifier: MIT
package core_test

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvroute/core"
)

func TestEdgeCollection_ZeroValue(t *testing.T) {
	var ec core.EdgeCollection[float64]

	assert.Equal(t, 0, ec.Len())
	assert.Empty(t, ec.Weights())
	_, ok := ec.Min()
	assert.False(t, ok, "Min of empty collection")
	assert.False(t, ec.Remove(1), "Remove from empty collection is a no-op")
}

func TestEdgeCollection_AddRemoveContains(t *testing.T) {
	ec := core.NewEdgeCollection(3.5, 1.0)

	require.True(t, ec.Add(2.0))
	require.False(t, ec.Add(2.0), "duplicate weight must be refused")
	require.Equal(t, 3, ec.Len())
	require.True(t, ec.Contains(3.5))
	require.False(t, ec.Contains(4.0))

	require.True(t, ec.Remove(1.0))
	require.False(t, ec.Remove(1.0), "second removal is a no-op")
	require.Equal(t, []float64{2.0, 3.5}, ec.Weights())

	lo, ok := ec.Min()
	require.True(t, ok)
	require.Equal(t, 2.0, lo)
}

// TestEdgeCollection_AscendingRegardlessOfOrder inserts shuffled weights (with
// duplicates) and checks the strictly ascending, duplicate-free enumeration.
func TestEdgeCollection_AscendingRegardlessOfOrder(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for round := 0; round < 50; round++ {
		n := 1 + rng.Intn(40)
		weights := make([]int, 0, 2*n)
		for i := 0; i < n; i++ {
			w := rng.Intn(25) - 5
			weights = append(weights, w, w) // every weight twice
		}
		rng.Shuffle(len(weights), func(i, j int) { weights[i], weights[j] = weights[j], weights[i] })

		ec := core.NewEdgeCollection[int]()
		for _, w := range weights {
			ec.Add(w)
		}

		want := slices.Clone(weights)
		slices.Sort(want)
		want = slices.Compact(want)
		require.Equal(t, want, ec.Weights(), "round %d", round)
	}
}

func TestEdgeCollection_SnapshotIteration(t *testing.T) {
	ec := core.NewEdgeCollection[int64](5, 1, 3)
	seq := ec.All()

	// Mutation after All() does not affect the snapshot.
	ec.Add(0)
	ec.Remove(5)

	var first, second []int64
	for w := range seq {
		first = append(first, w)
	}
	for w := range seq {
		second = append(second, w)
	}
	assert.Equal(t, []int64{1, 3, 5}, first)
	assert.Equal(t, first, second, "iterator must be restartable")

	var partial []int64
	for w := range ec.All() {
		partial = append(partial, w)
		if len(partial) == 2 {
			break
		}
	}
	assert.Equal(t, []int64{0, 1}, partial)
}

func TestEdgeCollection_Clone(t *testing.T) {
	ec := core.NewEdgeCollection(1.0, 2.0)
	cp := ec.Clone()
	cp.Add(3.0)
	cp.Remove(1.0)

	assert.Equal(t, []float64{1.0, 2.0}, ec.Weights())
	assert.Equal(t, []float64{2.0, 3.0}, cp.Weights())
}
