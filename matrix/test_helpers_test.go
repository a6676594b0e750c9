// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic test fixtures and utilities.
//   • Keep all data finite and well-formed.

package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvhmm/matrix"
)

// MustDense ALLOCATES an r×c float64 Dense or fails the test.
func MustDense(t *testing.T, r, c int) *matrix.Dense[float64] {
	t.Helper()
	m, err := matrix.NewDense[float64](r, c)
	require.NoError(t, err, "NewDense(%d,%d)", r, c)

	return m
}

// MustRows BUILDS a float64 Dense from row literals or fails the test.
func MustRows(t *testing.T, rows [][]float64) *matrix.Dense[float64] {
	t.Helper()
	m, err := matrix.FromRows(rows)
	require.NoError(t, err, "FromRows")

	return m
}

// MustAt READS (i,j) or fails the test.
func MustAt(t *testing.T, m *matrix.Dense[float64], i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err, "At(%d,%d)", i, j)

	return v
}
