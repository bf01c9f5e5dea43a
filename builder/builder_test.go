// SPDX-License-Identifier: MIT
package builder_test

import (
	"bytes"
	"log/slog"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvroute/builder"
	"github.com/katalvlaran/lvroute/compass"
)

func TestBuildGraph_NilConstructor(t *testing.T) {
	_, err := builder.BuildGraph(nil, builder.Grid(1, 1), nil)
	assert.ErrorIs(t, err, builder.ErrConstructFailed)

	assert.ErrorIs(t, builder.Apply(nil, nil, builder.Grid(1, 1)), builder.ErrConstructFailed)
}

func TestGrid(t *testing.T) {
	g, err := builder.BuildGraph(nil, builder.Grid(3, 2))
	require.NoError(t, err)

	assert.Equal(t, 6, g.NodeCount())
	// 2 rows × 2 horizontal + 3 cols × 1 vertical, both ways.
	assert.Equal(t, 2*(2*2+3*1), g.EdgeCount())
	assert.Equal(t, []string{"0,0", "0,1", "1,0", "1,1", "2,0", "2,1"}, g.Nodes())
	assert.Equal(t, []string{"0,1", "1,0"}, g.Neighbors("0,0"))

	w, ok := g.MinWeight("1,1", "1,0")
	require.True(t, ok)
	assert.Equal(t, 1.0, w)
	require.NoError(t, g.CheckInvariants())
}

func TestGrid_Idempotent(t *testing.T) {
	g, err := builder.BuildGraph(nil, builder.Grid(4, 4), builder.Grid(4, 4))
	require.NoError(t, err)
	assert.Equal(t, 16, g.NodeCount())
	assert.Equal(t, 2*(4*3*2), g.EdgeCount())
}

func TestGrid_TooSmall(t *testing.T) {
	for _, dims := range [][2]int{{0, 1}, {1, 0}, {-1, 3}} {
		_, err := builder.BuildGraph(nil, builder.Grid(dims[0], dims[1]))
		assert.ErrorIs(t, err, builder.ErrTooFewNodes, dims)
	}
}

func TestPath(t *testing.T) {
	pts := []compass.Point{{X: 0, Y: 0}, {X: 3, Y: 4}, {X: 3, Y: 5}}

	g, err := builder.BuildGraph(nil, builder.Path(pts...))
	require.NoError(t, err)
	assert.Equal(t, 3, g.NodeCount())
	assert.Equal(t, 2, g.EdgeCount())
	w, _ := g.MinWeight("0,0", "3,4")
	assert.Equal(t, 5.0, w)
	assert.False(t, g.HasEdge("3,4", "0,0"))

	g, err = builder.BuildGraph([]builder.Option{builder.WithBidirectional(), builder.WithWeightFn(builder.ManhattanWeightFn)},
		builder.Path(pts...))
	require.NoError(t, err)
	assert.Equal(t, 4, g.EdgeCount())
	w, _ = g.MinWeight("3,4", "0,0")
	assert.Equal(t, 7.0, w)

	_, err = builder.BuildGraph(nil, builder.Path(compass.Point{}))
	assert.ErrorIs(t, err, builder.ErrTooFewNodes)
}

func TestScatter(t *testing.T) {
	_, err := builder.BuildGraph(nil, builder.Scatter(10, 0.3))
	assert.ErrorIs(t, err, builder.ErrNeedRandSource)

	_, err = builder.BuildGraph([]builder.Option{builder.WithSeed(1)}, builder.Scatter(10, 1.5))
	assert.ErrorIs(t, err, builder.ErrInvalidProbability)

	_, err = builder.BuildGraph([]builder.Option{builder.WithSeed(1)}, builder.Scatter(1, 0.5))
	assert.ErrorIs(t, err, builder.ErrTooFewNodes)

	a, err := builder.BuildGraph([]builder.Option{builder.WithSeed(7)}, builder.Scatter(20, 0.2))
	require.NoError(t, err)
	b, err := builder.BuildGraph([]builder.Option{builder.WithSeed(7)}, builder.Scatter(20, 0.2))
	require.NoError(t, err)
	assert.Equal(t, 20, a.NodeCount())
	assert.Equal(t, a.Edges(), b.Edges(), "same seed, same store")

	full, err := builder.BuildGraph([]builder.Option{builder.WithSeed(3)}, builder.Scatter(5, 1))
	require.NoError(t, err)
	assert.Equal(t, 5*4, full.EdgeCount())
	for _, id := range full.Nodes() {
		_, err := compass.ParsePoint(id)
		assert.NoError(t, err, id)
	}
}

func TestWithLogger_TracesDuplicates(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	feed := builder.Records(
		builder.NodeRecord("a"), builder.NodeRecord("b"),
		builder.EdgeRecord("a", "b", 1), builder.EdgeRecord("a", "b", 1),
	)
	g, err := builder.BuildGraph([]builder.Option{builder.WithLogger(logger)}, builder.FromFeed(feed))
	require.NoError(t, err)
	assert.Equal(t, 1, g.EdgeCount())
	assert.Contains(t, buf.String(), "builder: duplicate edge skipped")
}

func TestWeightFns(t *testing.T) {
	a, b := compass.Point{X: 1, Y: 1}, compass.Point{X: 4, Y: 5}
	assert.Equal(t, 5.0, builder.EuclideanWeightFn(a, b))
	assert.Equal(t, 7.0, builder.ManhattanWeightFn(a, b))
	assert.Equal(t, 2.5, builder.ConstantWeightFn(2.5)(a, b))
	assert.Equal(t, 10.0, builder.ScaledWeightFn(builder.EuclideanWeightFn, 2)(a, b))

	assert.Panics(t, func() { builder.ConstantWeightFn(-1) })
	assert.Panics(t, func() { builder.ConstantWeightFn(math.NaN()) })
	assert.Panics(t, func() { builder.ScaledWeightFn(nil, 1) })
	assert.Panics(t, func() { builder.ScaledWeightFn(builder.EuclideanWeightFn, -1) })
	assert.Panics(t, func() { builder.WithWeightFn(nil) })
	assert.Panics(t, func() { builder.WithRand(nil) })
}
