package hmm_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvhmm/hmm"
	"github.com/katalvlaran/lvhmm/matrix"
)

// weatherStart, weatherTrans and weatherEmit form the two-state, three-symbol
// model most tests run against.
var (
	weatherStart = []float64{0.6, 0.4}
	weatherTrans = [][]float64{{0.7, 0.3}, {0.4, 0.6}}
	weatherEmit  = [][]float64{{0.1, 0.4, 0.5}, {0.7, 0.2, 0.1}}
)

// weatherModel builds the shared dense model or fails the test.
func weatherModel(t testing.TB, opts ...hmm.Option) *hmm.Model[int, int] {
	t.Helper()
	m, err := hmm.FromDense(weatherStart, weatherTrans, weatherEmit, opts...)
	require.NoError(t, err)

	return m
}

// requireStochastic asserts that m's start vector and transition rows sum to 1.
func requireStochastic[S, O comparable](t testing.TB, m *hmm.Model[S, O]) {
	t.Helper()
	n := m.N()
	start := make([]float64, n)
	for i := 0; i < n; i++ {
		start[i] = m.StartP(i)
	}
	require.True(t, matrix.VectorStochastic(start, m.Tolerance()), "start %v", start)

	trans, err := matrix.NewDense[float64](n, n)
	require.NoError(t, err)
	trans.Apply(func(i, j int, _ float64) float64 { return m.TransP(i, j) })
	require.True(t, matrix.RowStochastic(trans, m.Tolerance()), "transitions\n%v", trans)
}
