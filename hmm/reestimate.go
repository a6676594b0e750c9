// SPDX-License-Identifier: MIT
// Package hmm: Baum-Welch re-estimation.
//
// Implementation:
//   - Start:      start'(i)   = gamma[0][i]
//   - Transition: trans'(i,j) = Σ_{t<T-1} gapGamma[t][i][j] / Σ_{t<T-1} gamma[t][i]
//   - Emission:   emit'(i,o)  = Σ_{t: oₜ=o} gamma[t][i] / Σ_t gamma[t][i]
//
// Each step is one EM iteration; callers loop and decide convergence
// themselves. A state with zero occupancy divides by zero and the resulting
// NaN row is rejected (dist.ErrInvalidProbability or ErrNotStochastic)
// before a new Model is returned.

package hmm

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/lvhmm/dist"
	"github.com/katalvlaran/lvhmm/matrix"
)

// EmissionEstimate is a re-estimated emission table restricted to the
// symbols that actually occur in the observations.
type EmissionEstimate[O comparable] struct {
	// Symbols lists distinct observations in order of first appearance.
	Symbols []O
	// Probs is N×len(Symbols); Probs[i][k] = P(Symbols[k] | state i).
	Probs *matrix.Dense[float64]
}

// Iteration reports the fit of the model an EM step started from.
type Iteration struct {
	Likelihood    float64
	LogLikelihood float64
}

// ReestimateStart returns the new start vector gamma[0].
func ReestimateStart(occ *Occupation) []float64 {
	row, _ := occ.Gamma.Row(0)

	return append([]float64(nil), row...)
}

// ReestimateTrans returns the new N×N transition table.
// Errors: ErrSequenceTooShort when the statistics cover fewer than two steps.
func ReestimateTrans(occ *Occupation) (*matrix.Dense[float64], error) {
	T := occ.T()
	if T < 2 {
		return nil, fmt.Errorf("ReestimateTrans: got %d observations: %w", T, ErrSequenceTooShort)
	}
	n := occ.Gamma.Cols()
	out, err := matrix.NewDense[float64](n, n)
	if err != nil {
		return nil, hmmErrorf("ReestimateTrans", err)
	}
	num := out.RowsView()
	g := occ.Gamma.RowsView()
	den := make([]float64, n)
	for t := 0; t < T-1; t++ {
		layer, _ := occ.GapGamma.Layer(t)
		lr := layer.RowsView()
		for i := 0; i < n; i++ {
			den[i] += g[t][i]
			for j := 0; j < n; j++ {
				num[i][j] += lr[i][j]
			}
		}
	}
	out.Apply(func(i, _ int, v float64) float64 { return v / den[i] })

	return out, nil
}

// ReestimateEmit returns the new emission table over the observed symbols.
func ReestimateEmit[O comparable](obs []O, occ *Occupation) (*EmissionEstimate[O], error) {
	T := occ.T()
	if len(obs) != T {
		return nil, hmmErrorf("ReestimateEmit", &LengthError{What: "observations", Got: len(obs), Want: T})
	}
	idx := make(map[O]int)
	var symbols []O
	for _, o := range obs {
		if _, ok := idx[o]; !ok {
			idx[o] = len(symbols)
			symbols = append(symbols, o)
		}
	}
	n := occ.Gamma.Cols()
	probs, err := matrix.NewDense[float64](n, len(symbols))
	if err != nil {
		return nil, hmmErrorf("ReestimateEmit", err)
	}
	num := probs.RowsView()
	g := occ.Gamma.RowsView()
	den := make([]float64, n)
	for t, o := range obs {
		k := idx[o]
		for i := 0; i < n; i++ {
			num[i][k] += g[t][i]
			den[i] += g[t][i]
		}
	}
	probs.Apply(func(i, _ int, v float64) float64 { return v / den[i] })

	return &EmissionEstimate[O]{Symbols: symbols, Probs: probs}, nil
}

// Reestimate performs one Baum-Welch update of m from obs and their
// occupation statistics. The result uses hash-keyed components over m's
// states; symbols absent from obs get emission probability 0.
func Reestimate[S, O comparable](obs []O, m *Model[S, O], occ *Occupation) (*Model[S, O], error) {
	if err := checkModel("Reestimate", m, obs); err != nil {
		return nil, err
	}
	if occ == nil {
		return nil, hmmErrorf("Reestimate", matrix.ErrNilMatrix)
	}
	if occ.Gamma.Cols() != m.N() {
		return nil, hmmErrorf("Reestimate", &ShapeError{What: "gamma", GotRows: occ.T(), GotCols: occ.Gamma.Cols(), WantRows: len(obs), WantCols: m.N()})
	}

	startP := ReestimateStart(occ)
	transP, err := ReestimateTrans(occ)
	if err != nil {
		return nil, hmmErrorf("Reestimate", err)
	}
	em, err := ReestimateEmit(obs, occ)
	if err != nil {
		return nil, hmmErrorf("Reestimate", err)
	}

	start := dist.NewSparseStart[S]()
	trans := dist.NewSparseTrans[S]()
	emit := dist.NewSparseEmit[S, O]()
	tr, ep := transP.RowsView(), em.Probs.RowsView()
	for i, s := range m.states {
		if err = start.Set(s, startP[i]); err != nil {
			return nil, hmmErrorf("Reestimate", err)
		}
		trans.AddState(s)
		emit.AddState(s)
		for j, to := range m.states {
			if err = trans.Set(s, to, tr[i][j]); err != nil {
				return nil, hmmErrorf("Reestimate", err)
			}
		}
		for k, o := range em.Symbols {
			if err = emit.Set(s, o, ep[i][k]); err != nil {
				return nil, hmmErrorf("Reestimate", err)
			}
		}
	}

	return New[S, O](start, emit, trans, m.opts.asOptions()...)
}

// ReestimateDense is the integer-indexed form of Reestimate: the result is a
// dense model over symbols 0..symbols-1, with 0 for symbols absent from obs.
func ReestimateDense(obs []int, occ *Occupation, symbols int, opts ...Option) (*Model[int, int], error) {
	if occ == nil {
		return nil, hmmErrorf("ReestimateDense", matrix.ErrNilMatrix)
	}
	for t, o := range obs {
		if o < 0 || o >= symbols {
			return nil, fmt.Errorf("ReestimateDense: obs[%d]=%d of %d symbols: %w", t, o, symbols, dist.ErrUnknownObservation)
		}
	}
	transP, err := ReestimateTrans(occ)
	if err != nil {
		return nil, hmmErrorf("ReestimateDense", err)
	}
	em, err := ReestimateEmit(obs, occ)
	if err != nil {
		return nil, hmmErrorf("ReestimateDense", err)
	}

	n := occ.Gamma.Cols()
	emit, err := matrix.NewDense[float64](n, symbols)
	if err != nil {
		return nil, hmmErrorf("ReestimateDense", err)
	}
	dst, src := emit.RowsView(), em.Probs.RowsView()
	for i := 0; i < n; i++ {
		for k, o := range em.Symbols {
			dst[i][o] = src[i][k]
		}
	}

	return FromDense(ReestimateStart(occ), transP.ToRows(), emit.ToRows(), opts...)
}

// BaumWelch runs forward, backward, occupation and re-estimation once.
// The returned Iteration describes how well m (not the new model) explains obs.
func BaumWelch[S, O comparable](obs []O, m *Model[S, O]) (*Model[S, O], *Iteration, error) {
	alpha, err := Forward(obs, m)
	if err != nil {
		return nil, nil, hmmErrorf("BaumWelch", err)
	}
	beta, err := Backward(obs, m, alpha.Coefs)
	if err != nil {
		return nil, nil, hmmErrorf("BaumWelch", err)
	}
	occ, err := ComputeOccupation(obs, m, alpha.Scaled, beta)
	if err != nil {
		return nil, nil, hmmErrorf("BaumWelch", err)
	}
	it := &Iteration{Likelihood: Likelihood(alpha.Coefs), LogLikelihood: LogLikelihood(alpha.Coefs)}
	m.opts.logger.Debug("hmm: baum-welch step",
		zap.Int("observations", len(obs)),
		zap.Float64("log_likelihood", it.LogLikelihood),
	)

	next, err := Reestimate(obs, m, occ)
	if err != nil {
		return nil, it, hmmErrorf("BaumWelch", err)
	}

	return next, it, nil
}
