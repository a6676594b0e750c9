package dist_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvhmm/dist"
	"github.com/katalvlaran/lvhmm/matrix"
)

func TestVector(t *testing.T) {
	v, err := dist.NewVector([]float64{0.6, 0.4})
	require.NoError(t, err)
	assert.Equal(t, 2, v.Len())

	p, err := v.Start(1)
	require.NoError(t, err)
	assert.Equal(t, 0.4, p)

	_, err = v.Start(2)
	require.ErrorIs(t, err, dist.ErrUnknownState)

	_, err = dist.NewVector([]float64{1.5, -0.5})
	require.ErrorIs(t, err, dist.ErrInvalidProbability)
}

func TestTable(t *testing.T) {
	tab, err := dist.NewTable([][]float64{{0.1, 0.4, 0.5}, {0.7, 0.2, 0.1}})
	require.NoError(t, err)

	r, c := tab.Dims()
	assert.Equal(t, [2]int{2, 3}, [2]int{r, c})
	assert.Equal(t, []int{0, 1}, tab.States())

	p, err := tab.Emit(1, 0)
	require.NoError(t, err)
	assert.Equal(t, 0.7, p)

	_, err = tab.Emit(2, 0)
	require.ErrorIs(t, err, dist.ErrUnknownState)
	_, err = tab.Emit(0, 3)
	require.ErrorIs(t, err, dist.ErrUnknownObservation)
	_, err = tab.Trans(0, 5)
	require.ErrorIs(t, err, dist.ErrUnknownState)

	_, err = dist.NewTable([][]float64{{0.5, 0.5}, {1}})
	require.ErrorIs(t, err, matrix.ErrRagged)
}

func TestTableCopiesInput(t *testing.T) {
	m, err := matrix.FromRows([][]float64{{0.5, 0.5}})
	require.NoError(t, err)
	tab, err := dist.TableFrom(m)
	require.NoError(t, err)

	require.NoError(t, m.Set(0, 0, 1))
	p, err := tab.Trans(0, 0)
	require.NoError(t, err)
	assert.Equal(t, 0.5, p)

	_, err = dist.TableFrom(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestSparseTrans_ZeroVersusUnknown: known source with unseen target is 0, unknown source errors.
func TestSparseTrans_ZeroVersusUnknown(t *testing.T) {
	tr := dist.NewSparseTrans[string]()
	require.NoError(t, tr.Set("coding", "coding", 0.9))
	require.NoError(t, tr.Set("coding", "noncoding", 0.1))
	tr.AddState("intron")

	p, err := tr.Trans("coding", "intron")
	require.NoError(t, err)
	assert.Equal(t, 0.0, p)

	p, err = tr.Trans("intron", "coding")
	require.NoError(t, err, "a registered state without outgoing transitions is still known")
	assert.Equal(t, 0.0, p)

	_, err = tr.Trans("exon", "coding")
	require.ErrorIs(t, err, dist.ErrUnknownState)
	assert.Contains(t, err.Error(), "exon")

	assert.Equal(t, []string{"coding", "noncoding", "intron"}, tr.States())
}

func TestSparseEmit_ZeroVersusUnknown(t *testing.T) {
	em := dist.NewSparseEmit[string, rune]()
	require.NoError(t, em.Set("coding", 'A', 0.25))

	p, err := em.Emit("coding", 'G')
	require.NoError(t, err)
	assert.Equal(t, 0.0, p)

	_, err = em.Emit("noncoding", 'A')
	require.ErrorIs(t, err, dist.ErrUnknownState)

	require.ErrorIs(t, em.Set("coding", 'C', 2), dist.ErrInvalidProbability)
}

func TestSparseStart(t *testing.T) {
	st := dist.NewSparseStart[int]()
	require.NoError(t, st.Set(7, 1))
	require.NoError(t, st.Set(3, 0))

	p, err := st.Start(7)
	require.NoError(t, err)
	assert.Equal(t, 1.0, p)

	_, err = st.Start(4)
	require.ErrorIs(t, err, dist.ErrUnknownState)
	assert.Equal(t, []int{7, 3}, st.States())
}

// TestStatesReturnsCopy guards the insertion-order slice against caller mutation.
func TestStatesReturnsCopy(t *testing.T) {
	tr := dist.NewSparseTrans[string]()
	require.NoError(t, tr.Set("a", "b", 1))
	s := tr.States()
	s[0] = "z"
	assert.Equal(t, []string{"a", "b"}, tr.States())
}
