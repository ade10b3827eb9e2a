// SPDX-License-Identifier: MIT
// Package: netresil/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context with `%w`, e.g.
//     fmt.Errorf("%s: n=%d < min=%d: %w", MethodCycle, n, min, ErrTooFewVertices).
//   • Constructors never panic; validation panics are confined to WithX option
//     constructors.
//
// Priority when several validations fail: size first, then probability, then
// RNG presence, then graph mode, then ErrConstructFailed.

package builder

import "errors"

// ErrTooFewVertices indicates that a numeric parameter (n, m) is smaller than
// the allowed minimum for the requested constructor.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates that a probability value is outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic constructor requires a non-nil
// *rand.Rand in the resolved builderConfig (WithSeed/WithRand must be set).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrUnsupportedGraphMode indicates the invoked constructor is incompatible with
// the current core.Graph mode (e.g., BarabasiAlbert on a directed graph).
var ErrUnsupportedGraphMode = errors.New("builder: unsupported graph mode")

// ErrConstructFailed indicates that construction could not complete, for
// example a nil constructor passed to BuildGraph.
var ErrConstructFailed = errors.New("builder: construction failed")
