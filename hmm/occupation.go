// SPDX-License-Identifier: MIT
// Package hmm: state and transition occupation posteriors.
//
// Implementation:
//   - Stage 1: For every gap t ∈ [0, T-2] compute
//     gapGamma[t][i][j] ∝ alpha[t][i]·trans(i,j)·emit(j, oₜ₊₁)·beta[t+1][j],
//     normalized over all (i,j) for that t.
//   - Stage 2: gamma[t][i] = Σⱼ gapGamma[t][i][j] for t ∈ [0, T-2].
//   - Stage 3: gamma[T-1] is the last alpha row normalized to sum 1; no gap
//     follows the final step, so it cannot come from gapGamma.
//
// A zero normalizer (an impossible step) produces NaN entries; they are
// propagated rather than reported.
//
// Complexity: O(T·N²) time and memory.

package hmm

import (
	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/lvhmm/matrix"
)

// Occupation holds the per-gap transition posteriors and per-step state posteriors.
type Occupation struct {
	// GapGamma has depth T-1; layer t is the N×N posterior of the transition taken between t and t+1.
	GapGamma *matrix.Cube[float64]
	// Gamma is T×N; Gamma[t][i] is the posterior of being in state i at t.
	Gamma *matrix.Dense[float64]
}

// T is the number of observations the statistics cover.
func (o *Occupation) T() int { return o.Gamma.Rows() }

// ComputeOccupation derives gap-gamma and gamma from the scaled forward and
// backward tables of the same observations.
func ComputeOccupation[S, O comparable](obs []O, m *Model[S, O], alpha, beta *matrix.Dense[float64]) (*Occupation, error) {
	if err := checkModel("ComputeOccupation", m, obs); err != nil {
		return nil, err
	}
	T, n := len(obs), m.N()
	for _, d := range []*matrix.Dense[float64]{alpha, beta} {
		if err := matrix.ValidateNotNil(d); err != nil {
			return nil, hmmErrorf("ComputeOccupation", err)
		}
	}
	if err := matrix.ValidateShape(alpha, T, n); err != nil {
		return nil, hmmErrorf("ComputeOccupation", shapeFrom("alpha", alpha, T, n))
	}
	if err := matrix.ValidateSameShape(alpha, beta); err != nil {
		return nil, hmmErrorf("ComputeOccupation", shapeFrom("beta", beta, T, n))
	}

	gap, err := matrix.NewCube[float64](n, n, T-1)
	if err != nil {
		return nil, hmmErrorf("ComputeOccupation", err)
	}
	gamma, err := matrix.NewDense[float64](T, n)
	if err != nil {
		return nil, hmmErrorf("ComputeOccupation", err)
	}
	a, b, g := alpha.RowsView(), beta.RowsView(), gamma.RowsView()
	trans := m.transP.RowsView()
	e := make([]float64, n)

	// Stages 1 and 2.
	for t := 0; t < T-1; t++ {
		if err = m.emitInto(e, obs[t+1]); err != nil {
			return nil, hmmErrorf("ComputeOccupation", err)
		}
		layer, _ := gap.Layer(t)
		lr := layer.RowsView()
		var denom float64
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				v := a[t][i] * trans[i][j] * e[j] * b[t+1][j]
				lr[i][j] = v
				denom += v
			}
		}
		for i := 0; i < n; i++ {
			floats.Scale(1/denom, lr[i])
			g[t][i] = floats.Sum(lr[i])
		}
	}

	// Stage 3.
	copy(g[T-1], a[T-1])
	floats.Scale(1/floats.Sum(g[T-1]), g[T-1])

	return &Occupation{GapGamma: gap, Gamma: gamma}, nil
}
