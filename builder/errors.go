// SPDX-License-Identifier: MIT
// Package: lvroute/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context using `%w`.
//   • Constructors never panic; validation panics are confined to option
//     constructors (WithX...).

package builder

import "errors"

// ErrTooFewNodes indicates that a size parameter (cols, rows, point count)
// is smaller than the allowed minimum for the requested constructor.
var ErrTooFewNodes = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates that a probability value is outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic constructor requires a
// *rand.Rand (WithSeed/WithRand must be set).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates a programmer error at the orchestration level
// (nil graph, nil constructor).
var ErrConstructFailed = errors.New("builder: construction failed")

// ErrUnknownNode indicates that an edge record names an endpoint that was
// never registered and WithAutoNodes is not in effect.
var ErrUnknownNode = errors.New("builder: unknown node")

// ErrInvalidRecord indicates a feed record that cannot be applied: empty
// IDs, a NaN weight, or a derived weight between non-coordinate IDs.
var ErrInvalidRecord = errors.New("builder: invalid record")

// ErrDecode indicates that a YAML feed document could not be decoded.
var ErrDecode = errors.New("builder: decode feed")
