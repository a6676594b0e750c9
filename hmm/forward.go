// SPDX-License-Identifier: MIT
// Package hmm: scaled forward pass and likelihood.
//
// Implementation:
//   - Stage 1: alpha[0][i] = start(i)·emit(i, o₀).
//   - Stage 2: alpha[t][i] = (Σⱼ alpha[t-1][j]·trans(j,i))·emit(i, oₜ),
//     computed from the already-scaled previous row.
//   - Stage 3: after each row, coef[t] = 1/Σᵢ alpha[t][i] and the row is
//     multiplied by coef[t], so every stored row sums to 1.
//
// When a row sums to zero (no state can emit oₜ) coef[t] is +Inf, that row
// and every later one become NaN, and Likelihood reports 0. No error is raised.
//
// Complexity: O(T·N²) time, O(T·N) memory.

package hmm

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/lvhmm/matrix"
)

// Alpha is the result of the scaled forward pass.
type Alpha struct {
	// Scaled is T×N; every row sums to 1.
	Scaled *matrix.Dense[float64]
	// Coefs holds the T per-step scaling factors (inverse row sums).
	Coefs []float64
}

// Forward runs the scaled forward algorithm over obs.
func Forward[S, O comparable](obs []O, m *Model[S, O]) (*Alpha, error) {
	if err := checkModel("Forward", m, obs); err != nil {
		return nil, err
	}
	T, n := len(obs), m.N()

	alpha, err := matrix.NewDense[float64](T, n)
	if err != nil {
		return nil, hmmErrorf("Forward", err)
	}
	rows := alpha.RowsView()
	trans := m.transP.RowsView()
	coefs := make([]float64, T)
	e := make([]float64, n)

	// Stage 1: initial row.
	if err = m.emitInto(e, obs[0]); err != nil {
		return nil, hmmErrorf("Forward", err)
	}
	floats.MulTo(rows[0], m.startP, e)
	coefs[0] = scaleRow(rows[0])

	// Stage 2: induction.
	for t := 1; t < T; t++ {
		if err = m.emitInto(e, obs[t]); err != nil {
			return nil, hmmErrorf("Forward", err)
		}
		prev, cur := rows[t-1], rows[t]
		for i := 0; i < n; i++ {
			var acc float64
			for j := 0; j < n; j++ {
				acc += prev[j] * trans[j][i]
			}
			cur[i] = acc * e[i]
		}
		coefs[t] = scaleRow(cur)
	}

	return &Alpha{Scaled: alpha, Coefs: coefs}, nil
}

// scaleRow multiplies row by the inverse of its sum and returns that factor.
func scaleRow(row []float64) float64 {
	c := 1 / floats.Sum(row)
	floats.Scale(c, row)

	return c
}

// Likelihood converts forward scaling coefficients into P(observations | model):
// 2^(−Σ log₂ coef[t]). An infinite coefficient (a zero-probability step) yields 0
// even though the rows after it are NaN.
func Likelihood(coefs []float64) float64 {
	var s float64
	for _, c := range coefs {
		if math.IsInf(c, 1) {
			return 0
		}
		s += math.Log2(c)
	}

	return math.Exp2(-s)
}

// LogLikelihood is the natural log of Likelihood, computed without leaving
// the log domain, so it stays finite for long sequences that underflow Likelihood.
func LogLikelihood(coefs []float64) float64 {
	var s float64
	for _, c := range coefs {
		if math.IsInf(c, 1) {
			return math.Inf(-1)
		}
		s -= math.Log(c)
	}

	return s
}
