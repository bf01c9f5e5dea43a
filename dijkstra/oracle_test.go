// SPDX-License-Identifier: MIT
package dijkstra_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/graph/path"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/lvroute/core"
	"github.com/katalvlaran/lvroute/dijkstra"
)

// TestFindPath_MatchesGonum cross-checks route costs against gonum's
// Dijkstra on random multigraphs. Gonum holds a single edge per pair, so it
// receives the cheapest parallel weight. Weights are small integers stored
// as floats, keeping every sum exact.
func TestFindPath_MatchesGonum(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for round := 0; round < 60; round++ {
		n := 2 + rng.Intn(25)
		edges := rng.Intn(n * 4)

		g := core.NewMultigraph[int, float64]()
		for i := 0; i < n; i++ {
			g.AddNode(i)
		}
		for k := 0; k < edges; k++ {
			u, v := rng.Intn(n), rng.Intn(n)
			if u == v {
				continue
			}
			g.AddDirectedEdge(u, v, float64(rng.Intn(20)))
		}

		oracle := simple.NewWeightedDirectedGraph(0, math.Inf(1))
		for i := 0; i < n; i++ {
			oracle.AddNode(simple.Node(i))
		}
		for _, e := range g.Edges() {
			w, _ := g.MinWeight(e.From, e.To)
			oracle.SetWeightedEdge(oracle.NewWeightedEdge(simple.Node(e.From), simple.Node(e.To), w))
		}

		src := rng.Intn(n)
		shortest := path.DijkstraFrom(simple.Node(src), oracle)

		for dst := 0; dst < n; dst++ {
			route, err := dijkstra.FindPath(g, src, dst)
			require.NoError(t, err)

			want := shortest.WeightTo(int64(dst))
			if math.IsInf(want, 1) {
				require.False(t, route.Found, "round %d: %d→%d should be unreachable", round, src, dst)
				continue
			}
			require.True(t, route.Found, "round %d: %d→%d", round, src, dst)
			require.Equal(t, want, route.Total, "round %d: %d→%d", round, src, dst)

			// Segments chain from src to dst and each hop costs the bundle minimum.
			var sum float64
			at := src
			for _, s := range route.Segments {
				require.Equal(t, at, s.From)
				w, ok := g.MinWeight(s.From, s.To)
				require.True(t, ok)
				require.Equal(t, w, s.Cost)
				sum += s.Cost
				at = s.To
			}
			require.Equal(t, dst, at)
			require.Equal(t, route.Total, sum)
			require.Equal(t, len(route.Segments), route.Hops)
		}
	}
}
