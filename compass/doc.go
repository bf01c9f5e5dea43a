// SPDX-License-Identifier: MIT
// Package compass classifies the heading between two coordinate-bearing node
// IDs into one of eight compass labels.
//
// Node IDs carry coordinates as "x,y" (two numeric fields separated by a
// comma). The y axis grows downwards, as on a map image: a step to a larger y
// heads South.
//
// Classification:
//
//	angle = atan2(dy, dx)   with dx, dy the deltas from the first to the second point
//
// The circle is split into eight π/4-wide sectors centred on
// E (0), SE (π/4), S (π/2), SW (3π/4), W (±π), NW (-3π/4), N (-π/2), NE (-π/4).
// Sectors are tested in the fixed order E, SE, S, SW, W, NW, N and NE last.
// The E sector is half-open [-π/8, π/8); every other test is inclusive at both
// ends, so an angle lying exactly on a boundary resolves to whichever sector is
// tested first:
//
//	π/8 → SE,  3π/8 → SE,  5π/8 → S,  7π/8 → SW,
//	-7π/8 → W, -5π/8 → NW, -3π/8 → N, -π/8 → E
//
// The rule is deterministic but not symmetric around each boundary; callers
// that compare outputs across implementations must keep the same order.
//
// Errors:
//
//	ErrMalformedCoordinate - an ID is not two comma-separated numbers.
package compass
