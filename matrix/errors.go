// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors and the typed
// stochasticity error. All constructors and validators MUST return these
// sentinels (possibly wrapped) and tests MUST check them via errors.Is.
// No function panics on user-triggered error conditions; panics are reserved
// for nonsensical option values (programmer error).

package matrix

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Call sites wrap with an operation tag
// (matrixErrorf / denseErrorf) so errors.Is keeps matching the sentinel.

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are negative.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be >= 0")

	// ErrOutOfRange indicates that an index (layer, row or column) is outside valid bounds.
	// Public indexers (At/Set/Row/Layer) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrRagged signals that input rows do not share a common length.
	ErrRagged = errors.New("matrix: ragged rows")

	// ErrNotStochastic signals that a row (or vector) does not sum to 1 within tolerance.
	ErrNotStochastic = errors.New("matrix: not row stochastic")

	// ErrNilMatrix indicates that a nil matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")
)

// matrixErrorf wraps an underlying error with the given operation tag.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// StochasticError reports which row failed a stochasticity check and what it summed to.
// Row is -1 for a plain vector check.
type StochasticError struct {
	Row int
	Sum float64
}

// Error implements error.
func (e *StochasticError) Error() string {
	if e.Row < 0 {
		return fmt.Sprintf("matrix: vector sums to %v; need 1", e.Sum)
	}

	return fmt.Sprintf("matrix: row %d sums to %v; need 1", e.Row, e.Sum)
}

// Is lets errors.Is(err, ErrNotStochastic) match a *StochasticError.
func (e *StochasticError) Is(target error) bool { return target == ErrNotStochastic }
