package hmm_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/lvhmm/dist"
	"github.com/katalvlaran/lvhmm/hmm"
	"github.com/katalvlaran/lvhmm/matrix"
)

func TestFromDense_Valid(t *testing.T) {
	m := weatherModel(t)
	assert.Equal(t, 2, m.N())
	assert.Equal(t, []int{0, 1}, m.States())
	assert.Equal(t, 0.6, m.StartP(0))
	assert.Equal(t, 0.3, m.TransP(0, 1))

	p, err := m.EmitP(1, 0)
	require.NoError(t, err)
	assert.Equal(t, 0.7, p)

	requireStochastic(t, m)
}

func TestNew_Errors(t *testing.T) {
	tests := []struct {
		name  string
		start []float64
		trans [][]float64
		emit  [][]float64
		want  error
	}{
		{"single state", []float64{1}, [][]float64{{1}}, [][]float64{{1}}, hmm.ErrTooFewStates},
		{"no states", nil, nil, nil, hmm.ErrTooFewStates},
		{"transition not square", []float64{0.5, 0.5}, [][]float64{{0.5, 0.5}, {0.5, 0.5}, {0.5, 0.5}}, weatherEmit, hmm.ErrShape},
		{"emission rows", []float64{0.5, 0.5}, weatherTrans, [][]float64{{1}}, hmm.ErrShape},
		{"single symbol", weatherStart, weatherTrans, [][]float64{{1}, {1}}, hmm.ErrShape},
		{"start sum", []float64{0.5, 0.4}, weatherTrans, weatherEmit, hmm.ErrNotStochastic},
		{"transition row sum", weatherStart, [][]float64{{0.7, 0.3}, {0.4, 0.5}}, weatherEmit, hmm.ErrNotStochastic},
		{"emission row sum", weatherStart, weatherTrans, [][]float64{{0.1, 0.4, 0.5}, {0.7, 0.2, 0.2}}, hmm.ErrNotStochastic},
		{"negative probability", []float64{1.5, -0.5}, weatherTrans, weatherEmit, dist.ErrInvalidProbability},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := hmm.FromDense(tc.start, tc.trans, tc.emit)
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestNew_StochasticErrorNamesRow(t *testing.T) {
	_, err := hmm.FromDense(weatherStart, [][]float64{{0.7, 0.3}, {0.4, 0.5}}, weatherEmit)
	var se *hmm.StochasticError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, "transition", se.Which)
	assert.Equal(t, 1, se.Row)
	assert.InDelta(t, 0.9, se.Sum, 1e-15)
	assert.ErrorIs(t, err, matrix.ErrNotStochastic)

	_, err = hmm.FromDense([]float64{0.5, 0.4}, weatherTrans, weatherEmit)
	require.True(t, errors.As(err, &se))
	assert.Equal(t, "start", se.Which)
	assert.Equal(t, -1, se.Row)
}

// TestFromDense_ShapeErrorFields: the reported requirement is the one that failed.
func TestFromDense_ShapeErrorFields(t *testing.T) {
	tests := []struct {
		name  string
		trans [][]float64
		emit  [][]float64
		want  hmm.ShapeError
	}{
		{"transition rows", [][]float64{{1, 0}}, weatherEmit, hmm.ShapeError{What: "transition dist", GotRows: 1, GotCols: 2, WantRows: 2, WantCols: 2}},
		{"single symbol", weatherTrans, [][]float64{{1}, {1}}, hmm.ShapeError{What: "emission dist", GotRows: 2, GotCols: 1, WantRows: 2, WantCols: 2}},
		{"emission rows", weatherTrans, [][]float64{{0.5, 0.5}}, hmm.ShapeError{What: "emission dist", GotRows: 1, GotCols: 2, WantRows: 2, WantCols: 2}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := hmm.FromDense(weatherStart, tc.trans, tc.emit)
			var se *hmm.ShapeError
			require.True(t, errors.As(err, &se))
			assert.Equal(t, tc.want, *se)
		})
	}

	m, err := hmm.FromDense(weatherStart, weatherTrans, [][]float64{{1, 0}, {0, 1}})
	require.NoError(t, err, "two symbols is the minimum alphabet")
	assert.Equal(t, 2, m.N())
}

// TestNew_ToleranceOption: a sum 1e-7 short of 1 is rejected by default and
// accepted once an absolute epsilon is configured.
func TestNew_ToleranceOption(t *testing.T) {
	start := []float64{0.5, 0.4999999}
	_, err := hmm.FromDense(start, weatherTrans, weatherEmit)
	require.ErrorIs(t, err, hmm.ErrNotStochastic)

	m, err := hmm.FromDense(start, weatherTrans, weatherEmit,
		hmm.WithTolerance(matrix.NewTolerance(matrix.WithEpsilon(1e-6))))
	require.NoError(t, err)
	assert.Equal(t, 1e-6, m.Tolerance().Epsilon)
}

func TestNew_SparseComponents(t *testing.T) {
	start := dist.NewSparseStart[string]()
	require.NoError(t, start.Set("rain", 0.6))
	require.NoError(t, start.Set("sun", 0.4))

	trans := dist.NewSparseTrans[string]()
	require.NoError(t, trans.Set("rain", "rain", 0.7))
	require.NoError(t, trans.Set("rain", "sun", 0.3))
	require.NoError(t, trans.Set("sun", "rain", 0.4))
	require.NoError(t, trans.Set("sun", "sun", 0.6))

	emit := dist.NewSparseEmit[string, string]()
	require.NoError(t, emit.Set("rain", "umbrella", 0.9))
	require.NoError(t, emit.Set("sun", "umbrella", 0.2))

	m, err := hmm.New[string, string](start, emit, trans)
	require.NoError(t, err)
	assert.Equal(t, []string{"rain", "sun"}, m.States())
	i, ok := m.Index("sun")
	require.True(t, ok)
	assert.Equal(t, 1, i)

	// Missing start entry for a state the transitions know about.
	partial := dist.NewSparseStart[string]()
	require.NoError(t, partial.Set("rain", 1))
	_, err = hmm.New[string, string](partial, emit, trans)
	require.ErrorIs(t, err, dist.ErrUnknownState)
}

func TestNew_NilComponent(t *testing.T) {
	_, err := hmm.New[int, int](nil, nil, nil)
	require.ErrorIs(t, err, hmm.ErrNilModel)
}

func TestNew_LogsConstruction(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	weatherModel(t, hmm.WithLogger(zap.New(core)))

	entries := logs.FilterMessage("hmm: model constructed").All()
	require.Len(t, entries, 1)
	assert.Equal(t, int64(2), entries[0].ContextMap()["states"])
}
