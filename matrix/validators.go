// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels minimal by delegating shape/nil/stochasticity checks here.
//  - Return sentinel errors wrapped with a validator tag so call sites can wrap uniformly.
//
// Determinism & Performance:
//  - All checks are pure and deterministic; stochasticity checks run O(r*c).
//
// Note:
//  - Each composite validator follows a fixed sequence (NotNil → Shape → Values).
//  - Stochasticity is judged with an explicit Tolerance, never a hidden constant.

package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// Complexity: O(1).
func ValidateNotNil[T Numeric](m *Dense[T]) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateShape checks that m is exactly rows×cols.
// Errors: ErrDimensionMismatch with observed and required shape.
// Complexity: O(1).
func ValidateShape(m Shaped, rows, cols int) error {
	r, c := m.Dims()
	if r != rows || c != cols {
		return validatorErrorf(fmt.Sprintf("ValidateShape: got %dx%d, need %dx%d", r, c, rows, cols), ErrDimensionMismatch)
	}

	return nil
}

// ValidateSameShape checks that a and b have identical dimensions.
// Complexity: O(1).
func ValidateSameShape(a, b Shaped) error {
	ar, ac := a.Dims()
	br, bc := b.Dims()
	if ar != br {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if ac != bc {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// VectorStochastic reports whether v sums to 1 within tol.
// An empty vector sums to 0 and is therefore not stochastic.
// Complexity: O(n).
func VectorStochastic(v []float64, tol Tolerance) bool {
	return tol.Equal(floats.Sum(v), 1)
}

// ValidateVectorStochastic is VectorStochastic returning a *StochasticError (Row=-1).
func ValidateVectorStochastic(v []float64, tol Tolerance) error {
	if s := floats.Sum(v); !tol.Equal(s, 1) {
		return &StochasticError{Row: -1, Sum: s}
	}

	return nil
}

// RowStochastic reports whether every row of m sums to 1 within tol.
// A matrix with no rows is vacuously stochastic; nil is not.
// Complexity: O(r*c).
func RowStochastic(m *Dense[float64], tol Tolerance) bool {
	return ValidateRowStochastic(m, tol) == nil
}

// ValidateRowStochastic checks every row of m in order and reports the first
// offending row as a *StochasticError (matches ErrNotStochastic).
// Errors: ErrNilMatrix for nil m.
// Complexity: O(r*c).
func ValidateRowStochastic(m *Dense[float64], tol Tolerance) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	var i int
	for i = 0; i < m.r; i++ {
		s := floats.Sum(m.data[i*m.c : (i+1)*m.c])
		if !tol.Equal(s, 1) {
			return &StochasticError{Row: i, Sum: s}
		}
	}

	return nil
}
