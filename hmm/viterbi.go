// SPDX-License-Identifier: MIT
// Package hmm: most likely hidden state sequence (Viterbi) in the log₂ domain.
//
// Implementation:
//   - Stage 1: score[i] = log₂ start(i) + log₂ emit(i, o₀); zero probabilities map to −Inf.
//   - Stage 2: for each t ≥ 1 and each state i choose the predecessor j that
//     maximizes score[j] + log₂ trans(j,i). Comparison is strict ">", so the
//     lowest-index predecessor wins ties. Predecessors whose score is −Inf
//     are skipped; if none qualifies the choice defaults to state 0 with −Inf.
//   - Stage 3: update each state's history: when the chosen predecessor is the
//     state itself its history is extended in place; otherwise it is replaced
//     by a copy of the predecessor's history plus the predecessor. Every copy
//     is taken from the histories of step t-1 before any in-place extension.
//   - Stage 4: the terminal state with the highest score (same tie rule)
//     is appended to its history to form the path.
//
// Complexity: O(T·N²) time, O(T·N) memory for the histories.

package hmm

import (
	"fmt"
	"math"
)

// Viterbi returns the most likely hidden state sequence for obs.
//
// Errors: ErrEmptySequence, ErrZeroLikelihood when every path has
// probability 0, or an error from the emitter.
func Viterbi[S, O comparable](obs []O, m *Model[S, O]) ([]S, error) {
	if err := checkModel("Viterbi", m, obs); err != nil {
		return nil, err
	}
	T, n := len(obs), m.N()

	logTrans := m.transP.Clone()
	logTrans.Apply(func(_, _ int, v float64) float64 { return log2Prob(v) })
	lt := logTrans.RowsView()

	e := make([]float64, n)
	scores := make([]float64, n)
	next := make([]float64, n)
	choice := make([]int, n)
	hist := make([][]int, n)
	fresh := make([][]int, n)

	// Stage 1.
	if err := m.emitInto(e, obs[0]); err != nil {
		return nil, hmmErrorf("Viterbi", err)
	}
	for i := range scores {
		scores[i] = log2Prob(m.startP[i]) + log2Prob(e[i])
		hist[i] = make([]int, 0, T)
	}

	for t := 1; t < T; t++ {
		if err := m.emitInto(e, obs[t]); err != nil {
			return nil, hmmErrorf("Viterbi", err)
		}

		// Stage 2: every choice reads the scores of step t-1.
		for i := 0; i < n; i++ {
			le := log2Prob(e[i])
			j, best := argmaxFinite(scores, func(j int, s float64) float64 { return s + lt[j][i] + le })
			choice[i], next[i] = j, best
		}

		// Stage 3: replacements copy step t-1 histories before extensions mutate them.
		for i, j := range choice {
			fresh[i] = nil
			if j != i {
				h := make([]int, len(hist[j]), T)
				copy(h, hist[j])
				fresh[i] = append(h, j)
			}
		}
		for i, j := range choice {
			if j == i {
				hist[i] = append(hist[i], i)
			} else {
				hist[i] = fresh[i]
			}
		}
		scores, next = next, scores
	}

	// Stage 4.
	last, best := argmaxFinite(scores, func(_ int, s float64) float64 { return s })
	if math.IsInf(best, -1) {
		return nil, fmt.Errorf("Viterbi: %d observations: %w", T, ErrZeroLikelihood)
	}

	path := make([]S, 0, T)
	for _, i := range hist[last] {
		path = append(path, m.states[i])
	}

	return append(path, m.states[last]), nil
}

// argmaxFinite returns the index maximizing score(j, scores[j]) over the
// finite entries of scores. Ties keep the lowest index. When nothing
// qualifies it returns (0, −Inf).
func argmaxFinite(scores []float64, score func(j int, s float64) float64) (int, float64) {
	best, bestScore := 0, math.Inf(-1)
	for j, s := range scores {
		if math.IsInf(s, -1) {
			continue
		}
		if c := score(j, s); c > bestScore {
			best, bestScore = j, c
		}
	}

	return best, bestScore
}

// log2Prob maps a probability into the log₂ domain with log₂ 0 = −Inf.
func log2Prob(p float64) float64 {
	if p == 0 {
		return math.Inf(-1)
	}

	return math.Log2(p)
}
