// SPDX-License-Identifier: MIT

package hmm

import (
	"github.com/katalvlaran/lvhmm/matrix"
)

// Backward runs the backward pass scaled by the forward coefficients, so the
// result is directly comparable with Alpha.Scaled:
//
//	beta[T-1][i] = coef[T-1]
//	beta[t][i]   = coef[t] · Σⱼ trans(i,j)·emit(j, oₜ₊₁)·beta[t+1][j]
//
// coefs must come from Forward over the same observations and model.
func Backward[S, O comparable](obs []O, m *Model[S, O], coefs []float64) (*matrix.Dense[float64], error) {
	if err := checkModel("Backward", m, obs); err != nil {
		return nil, err
	}
	T, n := len(obs), m.N()
	if len(coefs) != T {
		return nil, hmmErrorf("Backward", &LengthError{What: "scaling coefficients", Got: len(coefs), Want: T})
	}

	beta, err := matrix.NewDense[float64](T, n)
	if err != nil {
		return nil, hmmErrorf("Backward", err)
	}
	rows := beta.RowsView()
	trans := m.transP.RowsView()
	e := make([]float64, n)

	for i := range rows[T-1] {
		rows[T-1][i] = coefs[T-1]
	}
	for t := T - 2; t >= 0; t-- {
		if err = m.emitInto(e, obs[t+1]); err != nil {
			return nil, hmmErrorf("Backward", err)
		}
		next, cur := rows[t+1], rows[t]
		for i := 0; i < n; i++ {
			var acc float64
			for j := 0; j < n; j++ {
				acc += trans[i][j] * e[j] * next[j]
			}
			cur[i] = coefs[t] * acc
		}
	}

	return beta, nil
}
