// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Turn non-negative count tables into probability tables (L1 row normalization).
//   - Keep the degenerate-row policy in one place: rows summing to 0 are left
//     unchanged rather than divided into NaN.
//
// Exposed API:
//   - Normalize(v)      -> (sum)  // in-place L1 normalization of a vector
//   - NormalizeRows(X)  -> (Y, sums) // copy with each row L1-normalized
//
// Determinism & Performance:
//   - Fixed i→j traversal; sums via gonum floats.Sum, scaling via floats.Scale.

package matrix

import "gonum.org/v1/gonum/floats"

// Operation name constants for unified error wrapping.
const (
	opNormalizeRows = "NormalizeRows"
)

// Normalize divides v by its sum in place and returns the original sum.
// Implementation:
//   - Stage 1: s = Σ v.
//   - Stage 2: if s > 0 scale v by 1/s; otherwise leave v untouched.
//
// Notes:
//   - Intended for non-negative counts; negative entries are not rejected.
//
// Complexity:
//   - Time O(n), Space O(1).
func Normalize(v []float64) float64 {
	s := floats.Sum(v)
	if s > 0 {
		floats.Scale(1/s, v)
	}

	return s
}

// NormalizeRows returns a copy of X whose rows each sum to 1, plus the original row sums.
// Implementation:
//   - Stage 1: validate X (non-nil).
//   - Stage 2: clone X.
//   - Stage 3: Normalize each row of the clone.
//
// Behavior highlights:
//   - Degenerate rows (sum==0) are left unchanged (stable policy).
//   - Zero-size matrices are returned as a clone with an empty sums slice.
//
// Errors:
//   - ErrNilMatrix from validation.
//
// Complexity:
//   - Time O(r*c), Space O(r*c) (+ O(r) sums).
func NormalizeRows(X *Dense[float64]) (*Dense[float64], []float64, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, nil, matrixErrorf(opNormalizeRows, err)
	}
	Y := X.Clone()
	sums := make([]float64, Y.r)
	var i int
	for i = 0; i < Y.r; i++ {
		sums[i] = Normalize(Y.data[i*Y.c : (i+1)*Y.c])
	}

	return Y, sums, nil
}
