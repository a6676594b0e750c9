package hmm_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvhmm/hmm"
)

// pathProb is P(path, obs | m).
func pathProb(m *hmm.Model[int, int], path, obs []int) float64 {
	p := m.StartP(path[0])
	for t, s := range path {
		if t > 0 {
			p *= m.TransP(path[t-1], s)
		}
		e, _ := m.EmitP(s, obs[t])
		p *= e
	}

	return p
}

func TestViterbi_KnownPath(t *testing.T) {
	m := weatherModel(t)
	path, err := hmm.Viterbi([]int{0, 1, 0, 2}, m)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 1, 1, 0}, path)
}

// TestViterbi_MaximizesPathProbability compares against every path of length 5.
func TestViterbi_MaximizesPathProbability(t *testing.T) {
	m := weatherModel(t)
	obs := []int{2, 0, 1, 1, 0}
	got, err := hmm.Viterbi(obs, m)
	require.NoError(t, err)
	require.Len(t, got, len(obs))

	best := 0.0
	path := make([]int, len(obs))
	for code := 0; code < 1<<len(obs); code++ {
		for t := range path {
			path[t] = (code >> t) & 1
		}
		if p := pathProb(m, path, obs); p > best {
			best = p
		}
	}
	assert.InDelta(t, best, pathProb(m, got, obs), 1e-15)
}

// TestViterbi_TiesPreferLowestIndex: with a uniform model every path ties.
func TestViterbi_TiesPreferLowestIndex(t *testing.T) {
	m, err := hmm.FromDense(
		[]float64{0.5, 0.5},
		[][]float64{{0.5, 0.5}, {0.5, 0.5}},
		[][]float64{{0.5, 0.5}, {0.5, 0.5}},
	)
	require.NoError(t, err)
	path, err := hmm.Viterbi([]int{0, 1, 0}, m)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 0, 0}, path)
}

// TestViterbi_ForcedAlternation routes through zero-probability transitions.
func TestViterbi_ForcedAlternation(t *testing.T) {
	m, err := hmm.FromDense(
		[]float64{1, 0},
		[][]float64{{0, 1}, {1, 0}},
		[][]float64{{0.5, 0.5}, {0.5, 0.5}},
	)
	require.NoError(t, err)
	path, err := hmm.Viterbi([]int{0, 0, 0, 0}, m)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 0, 1}, path)
}

func TestViterbi_SingleObservation(t *testing.T) {
	m := weatherModel(t)
	path, err := hmm.Viterbi([]int{0}, m)
	require.NoError(t, err)
	// 0.6·0.1 = 0.06 < 0.4·0.7 = 0.28
	assert.Equal(t, []int{1}, path)
}

func TestViterbi_Errors(t *testing.T) {
	m, err := hmm.FromDense(weatherStart, weatherTrans, [][]float64{{0.5, 0.5, 0}, {0.5, 0.5, 0}})
	require.NoError(t, err)

	_, err = hmm.Viterbi([]int{0, 2}, m)
	require.ErrorIs(t, err, hmm.ErrZeroLikelihood)

	_, err = hmm.Viterbi([]int{}, m)
	require.ErrorIs(t, err, hmm.ErrEmptySequence)
}
