// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set/Row return errors instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//   - Offer no-copy row views (Row, RowsView) so numeric kernels can loop over
//     plain slices once shapes have been validated.
//
// AI-Hints:
//   - Validate shapes once, then take RowsView() and index [t][i] in hot loops.
//   - Use FromRows to ingest [][]T literals; ragged input is rejected, never padded.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set/Row: O(1); RowsView: O(r); Clone: O(r*c).

package matrix

import (
	"fmt"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt       = "At"       // method tag used in error wrappers
	ctxSet      = "Set"      // method tag used in error wrappers
	ctxRow      = "Row"      // method tag used in error wrappers
	ctxNewDense = "NewDense" // ctor tag
	ctxFromRows = "FromRows" // ctor tag
)

// ---------- Formatting literals  ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// Implementation:
//   - Stage 1: format "Dense.<method>(row,col): %w".
//   - Stage 2: return wrapped error.
//
// Behavior highlights:
//   - Stable, human-friendly messages; preserves sentinel via %w.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix.
//   - r,c hold dimensions (rows, cols).
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
type Dense[T Numeric] struct {
	r, c int // row and column counts (>=0)
	data []T // contiguous row-major storage (len == r*c)
}

// Compile-time assertions for interface conformance.
var (
	_ Shaped       = (*Dense[float64])(nil)
	_ fmt.Stringer = (*Dense[float64])(nil)
)

// NewDense creates an r×c zero matrix using row-major storage.
// Implementation:
//   - Stage 1: validate rows>=0 && cols>=0; else ErrInvalidDimensions.
//   - Stage 2: allocate zero-filled buffer.
//
// Behavior highlights:
//   - A matrix with no rows or no columns is legal; Dims reports (0,0) when empty.
//
// Errors:
//   - ErrInvalidDimensions (shape contract violation).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense[T Numeric](rows, cols int) (*Dense[T], error) {
	// Validate shape.
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("%s(%d,%d): %w", ctxNewDense, rows, cols, ErrInvalidDimensions)
	}
	if rows == 0 {
		cols = 0 // an empty matrix has no columns either
	}

	// Allocate a contiguous flat buffer; make() zero-fills it deterministically.
	return &Dense[T]{r: rows, c: cols, data: make([]T, rows*cols)}, nil
}

// FromRows copies rows into a new Dense.
// Implementation:
//   - Stage 1: take the first row's length as the column count.
//   - Stage 2: reject any row of a different length with ErrRagged.
//   - Stage 3: copy row by row into the flat buffer.
//
// Behavior highlights:
//   - nil or empty input yields a 0×0 matrix.
//   - The input slices are never aliased.
//
// Errors:
//   - ErrRagged wrapped with the offending row index and both lengths.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func FromRows[T Numeric](rows [][]T) (*Dense[T], error) {
	r := len(rows)
	if r == 0 {
		return &Dense[T]{}, nil
	}
	c := len(rows[0])
	m := &Dense[T]{r: r, c: c, data: make([]T, r*c)}
	for i, row := range rows {
		if len(row) != c {
			return nil, fmt.Errorf("%s: row %d has %d values, want %d: %w", ctxFromRows, i, len(row), c, ErrRagged)
		}
		copy(m.data[i*c:(i+1)*c], row)
	}

	return m, nil
}

// Rows returns the row count. No side effects.
// Complexity: O(1).
func (m *Dense[T]) Rows() int { return m.r }

// Cols returns the column count. No side effects.
// Complexity: O(1).
func (m *Dense[T]) Cols() int { return m.c }

// Dims packs Rows() and Cols() into a single call.
// Complexity: O(1).
func (m *Dense[T]) Dims() (rows, cols int) { return m.r, m.c }

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
func (m *Dense[T]) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}

	return row*m.c + col, nil
}

// At returns the value at (row, col) or ErrOutOfRange.
// Complexity: O(1).
func (m *Dense[T]) At(row, col int) (T, error) {
	idx, err := m.indexOf(ctxAt, row, col)
	if err != nil {
		var zero T

		return zero, err
	}

	return m.data[idx], nil
}

// Set stores v at (row, col) or returns ErrOutOfRange.
// Complexity: O(1).
func (m *Dense[T]) Set(row, col int, v T) error {
	idx, err := m.indexOf(ctxSet, row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v

	return nil
}

// Row returns a no-copy view of row i; writes through the slice mutate m.
// Complexity: O(1).
func (m *Dense[T]) Row(i int) ([]T, error) {
	if i < 0 || i >= m.r {
		return nil, denseErrorf(ctxRow, i, 0, ErrOutOfRange)
	}

	return m.data[i*m.c : (i+1)*m.c : (i+1)*m.c], nil
}

// RowsView returns one no-copy slice per row, sharing storage with m.
// Each row slice is capacity-capped so appends never spill into the next row.
// Complexity: O(r).
func (m *Dense[T]) RowsView() [][]T {
	out := make([][]T, m.r)
	for i := 0; i < m.r; i++ {
		out[i] = m.data[i*m.c : (i+1)*m.c : (i+1)*m.c]
	}

	return out
}

// ToRows returns a deep copy of m as [][]T.
// Complexity: O(r*c).
func (m *Dense[T]) ToRows() [][]T {
	out := make([][]T, m.r)
	for i := 0; i < m.r; i++ {
		out[i] = append([]T(nil), m.data[i*m.c:(i+1)*m.c]...)
	}

	return out
}

// Clone returns a deep copy (new buffer).
// Complexity: O(r*c).
func (m *Dense[T]) Clone() *Dense[T] {
	buf := make([]T, len(m.data))
	copy(buf, m.data)

	return &Dense[T]{r: m.r, c: m.c, data: buf}
}

// Fill sets every element to v.
// Complexity: O(r*c).
func (m *Dense[T]) Fill(v T) {
	for k := range m.data {
		m.data[k] = v
	}
}

// Do visits each element (i,j) in row-major order and calls f(i,j,v).
// Iteration stops early when f returns false.
// Complexity: O(r*c).
func (m *Dense[T]) Do(f func(i, j int, v T) bool) {
	var i, j int
	for i = 0; i < m.r; i++ {
		base := i * m.c
		for j = 0; j < m.c; j++ {
			if !f(i, j, m.data[base+j]) {
				return
			}
		}
	}
}

// Apply replaces each element with f(i,j,v) in-place, row-major.
// Complexity: O(r*c).
func (m *Dense[T]) Apply(f func(i, j int, v T) T) {
	var i, j int
	for i = 0; i < m.r; i++ {
		base := i * m.c
		for j = 0; j < m.c; j++ {
			m.data[base+j] = f(i, j, m.data[base+j])
		}
	}
}

// String HUMAN-READABLE dump of rows for diagnostics.
// Complexity: O(r*c).
func (m *Dense[T]) String() string {
	var sb strings.Builder
	var i, j int
	for i = 0; i < m.r; i++ {
		sb.WriteString(_fmtRowOpen)
		for j = 0; j < m.c; j++ {
			if j > 0 {
				sb.WriteString(_fmtSep)
			}
			fmt.Fprintf(&sb, "%v", m.data[i*m.c+j])
		}
		sb.WriteString(_fmtRowClose)
	}

	return sb.String()
}
