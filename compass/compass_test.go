// SPDX-License-Identifier: MIT
package compass_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvroute/compass"
)

func TestClassify_UnitDeltas(t *testing.T) {
	cases := []struct {
		to   string
		want compass.Direction
	}{
		{"1,0", compass.East},
		{"1,1", compass.SouthEast},
		{"0,1", compass.South},
		{"-1,1", compass.SouthWest},
		{"-1,0", compass.West},
		{"-1,-1", compass.NorthWest},
		{"0,-1", compass.North},
		{"1,-1", compass.NorthEast},
		{"0,0", compass.East}, // zero vector: atan2(0,0) == 0
	}
	for _, tc := range cases {
		got, err := compass.Classify("0,0", tc.to)
		require.NoError(t, err, tc.to)
		assert.Equal(t, tc.want, got, "0,0 → %s", tc.to)
	}
}

func TestClassify_OffsetOrigin(t *testing.T) {
	got, err := compass.Classify("10.5, 20", "12.5,18")
	require.NoError(t, err)
	assert.Equal(t, compass.NorthEast, got)
}

// TestFromAngle_Boundaries pins the order-dependent resolution of exact
// sector boundaries.
func TestFromAngle_Boundaries(t *testing.T) {
	e := math.Pi / 8
	cases := []struct {
		angle float64
		want  compass.Direction
	}{
		{-e, compass.East},
		{e, compass.SouthEast},
		{3 * e, compass.SouthEast},
		{5 * e, compass.South},
		{7 * e, compass.SouthWest},
		{math.Pi, compass.West},
		{-math.Pi, compass.West},
		{-7 * e, compass.West},
		{-5 * e, compass.NorthWest},
		{-3 * e, compass.North},
		{-2 * e, compass.NorthEast},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, compass.FromAngle(tc.angle), "angle %v", tc.angle)
	}
}

func TestFromAngle_CoversEverySector(t *testing.T) {
	seen := map[compass.Direction]bool{}
	for i := -180; i <= 180; i++ {
		seen[compass.FromAngle(float64(i)*math.Pi/180)] = true
	}
	for _, d := range compass.Directions() {
		assert.True(t, seen[d], "sector %s never produced", d)
	}
}

func TestClassify_Malformed(t *testing.T) {
	for _, bad := range []string{"", "1", "1,2,3", "a,1", "1,b", "Kane Hall"} {
		_, err := compass.Classify(bad, "0,0")
		assert.ErrorIs(t, err, compass.ErrMalformedCoordinate, "from=%q", bad)
		_, err = compass.Classify("0,0", bad)
		assert.ErrorIs(t, err, compass.ErrMalformedCoordinate, "to=%q", bad)
	}
}

func TestPoint_IDAndDistance(t *testing.T) {
	p, err := compass.ParsePoint("3,4")
	require.NoError(t, err)
	assert.Equal(t, "3,4", p.ID())
	assert.Equal(t, "1.5,-2", compass.Point{X: 1.5, Y: -2}.ID())
	assert.InDelta(t, 5.0, compass.Point{}.Distance(p), 1e-12)
}
