// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for the determinant/inverse chain.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that applies setters in order.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Options fields are unexported; public APIs consume ...Option.
//
// Notes:
//   - Parallel expansion only changes scheduling. Integer sums are exact, so
//     the determinant is bit-identical to the sequential path.
//   - Precision is the number of decimal digits kept by Inverse.
package matrix

import (
	"fmt"
	"math"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultPrecision is the number of decimal digits Inverse rounds to.
	DefaultPrecision = 3

	// MaxPrecision bounds WithPrecision; float64 carries ~15-17 significant digits.
	MaxPrecision = 15

	// DefaultParallel controls whether Laplace expansion fans out the
	// top-level terms across goroutines.
	DefaultParallel = false

	// DefaultEpsilon is the absolute tolerance VerifyInverse applies to each
	// cell of a·inv. It only absorbs float noise; rounded inverses need a
	// looser WithEpsilon.
	DefaultEpsilon = 1e-9
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicPrecisionInvalid = "matrix: WithPrecision: digits must be in [0, %d], got %d"
	panicEpsilonInvalid   = "matrix: WithEpsilon: eps must be finite, non-negative"
)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	precision int     // decimal digits kept by Inverse
	parallel  bool    // fan out Laplace terms
	eps       float64 // tolerance for approximate identity checks
}

// WithPrecision sets the number of decimal digits Inverse keeps.
// Panics when digits is outside [0, MaxPrecision].
func WithPrecision(digits int) Option {
	if digits < 0 || digits > MaxPrecision {
		panic(fmt.Sprintf(panicPrecisionInvalid, MaxPrecision, digits))
	}

	return func(o *Options) { o.precision = digits }
}

// WithParallel evaluates the top-level Laplace terms concurrently.
//
// Notes:
//   - Only the first expansion level is fanned out; nested minors run
//     sequentially inside each worker to keep goroutine count at n.
//
// AI-Hints:
//   - Worth enabling from about 8×8 upward; below that goroutine overhead dominates.
func WithParallel() Option {
	return func(o *Options) { o.parallel = true }
}

// WithSequential restores the default single-goroutine expansion.
func WithSequential() Option {
	return func(o *Options) { o.parallel = false }
}

// WithEpsilon sets the per-cell tolerance used by VerifyInverse.
// Panics when eps is negative, NaN or ±Inf.
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// Precision reports the configured number of decimal digits.
func (o Options) Precision() int { return o.precision }

// Parallel reports whether top-level Laplace terms run concurrently.
func (o Options) Parallel() bool { return o.parallel }

// Epsilon reports the configured approximate-comparison tolerance.
func (o Options) Epsilon() float64 { return o.eps }

// NewOptions resolves the given setters against the defaults.
// Exposed so callers can inspect the effective configuration.
func NewOptions(opts ...Option) Options { return gatherOptions(opts...) }

// gatherOptions applies user setters over the documented defaults in order
// (last writer wins).
func gatherOptions(user ...Option) Options {
	o := Options{
		precision: DefaultPrecision,
		parallel:  DefaultParallel,
		eps:       DefaultEpsilon,
	}
	for _, set := range user {
		if set != nil {
			set(&o)
		}
	}

	return o
}
