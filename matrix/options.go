// SPDX-License-Identifier: MIT

// Package matrix: functional configuration of the numeric comparison policy.
// This file defines:
//   - Option (functional options over an internal Tolerance),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - NewTolerance, the single resolver that applies options over defaults.
//
// Design goals:
//   - No global state: every stochasticity check receives a Tolerance value.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//   - Deterministic: the same options always yield the same policy.
//
// Notes:
//   - Re-estimated probabilities accumulate rounding error proportional to the
//     number of states and sequence length; the ULP budget is the knob for that.
//   - Epsilon is an optional absolute slack on top of the ULP policy; it is 0
//     by default so comparisons stay scale-aware.
package matrix

import (
	"math"

	"gonum.org/v1/gonum/floats/scalar"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultULPs is the maximum distance, in units in the last place, at which
	// two float64 values still compare equal.
	DefaultULPs uint = 4096

	// DefaultEpsilon is the absolute slack added on top of the ULP policy.
	// Zero disables the absolute check.
	DefaultEpsilon = 0.0
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicEpsilonInvalid = "matrix: WithEpsilon: eps must be finite, non-negative"
)

// Option mutates a Tolerance under construction. Safe to apply repeatedly.
type Option func(*Tolerance)

// Tolerance is the floating-point comparison policy used by stochasticity
// checks and approximate equality. The zero value compares exactly.
type Tolerance struct {
	ULPs    uint    // max ULP distance; DefaultULPs
	Epsilon float64 // >= 0 absolute slack; DefaultEpsilon
}

// WithULPs sets the ULP budget used by Equal.
//
// AI-Hints:
//   - Raise it for long training runs over many states; 0 demands bit-exact sums.
func WithULPs(n uint) Option {
	return func(t *Tolerance) { t.ULPs = n }
}

// WithEpsilon sets the absolute tolerance eps used by Equal.
// Implementation:
//   - Stage 1: validate eps is finite and ≥ 0.
//   - Stage 2: return a setter that writes eps into the Tolerance.
//
// Errors:
//   - Panics with a stable message when eps is invalid.
//
// Complexity:
//   - Time O(1), Space O(1).
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	// Assign validated epsilon
	return func(t *Tolerance) { t.Epsilon = eps }
}

// NewTolerance applies opts over the documented defaults, last-writer-wins.
func NewTolerance(opts ...Option) Tolerance {
	t := Tolerance{
		ULPs:    DefaultULPs,
		Epsilon: DefaultEpsilon,
	}
	for _, set := range opts {
		set(&t) // apply in order
	}

	return t
}

// Equal reports whether a and b agree within t.
// a and b are equal when they are within t.ULPs units in the last place, or,
// when t.Epsilon > 0, within t.Epsilon of each other. NaN never equals anything.
func (t Tolerance) Equal(a, b float64) bool {
	if math.IsNaN(a) || math.IsNaN(b) {
		return false
	}
	if scalar.EqualWithinULP(a, b, t.ULPs) {
		return true
	}

	return t.Epsilon > 0 && scalar.EqualWithinAbs(a, b, t.Epsilon)
}
