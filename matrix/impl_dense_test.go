// Package matrix_test contains unit tests for the generic Dense container.
package matrix_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvhmm/matrix"
)

// TestNewDenseInvalidDimensions ensures that NewDense rejects negative dimensions.
func TestNewDenseInvalidDimensions(t *testing.T) {
	_, err := matrix.NewDense[float64](-1, 5)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewDense[float64](5, -1)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

// TestEmptyDims verifies an empty matrix reports (0,0).
func TestEmptyDims(t *testing.T) {
	m, err := matrix.NewDense[float64](0, 7)
	require.NoError(t, err)
	r, c := m.Dims()
	require.Equal(t, 0, r)
	require.Equal(t, 0, c)

	e, err := matrix.FromRows[int](nil)
	require.NoError(t, err)
	r, c = e.Dims()
	require.Equal(t, [2]int{0, 0}, [2]int{r, c})
}

// TestRowsCols verifies that Rows() and Cols() return correct dimension values.
func TestRowsCols(t *testing.T) {
	rows, cols := 3, 4
	m, err := matrix.NewDense[int](rows, cols)
	require.NoError(t, err)

	require.Equal(t, rows, m.Rows())
	require.Equal(t, cols, m.Cols())
}

// TestAtSetOutOfBounds ensures At() and Set() return ErrOutOfRange on invalid access.
func TestAtSetOutOfBounds(t *testing.T) {
	m := MustDense(t, 2, 2)

	_, err := m.At(-1, 0) // negative row index
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	_, err = m.At(0, 2) // column index out of range
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	require.Contains(t, err.Error(), "Dense.At(0,2)")

	err = m.Set(2, 0, 1.23)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	_, err = m.Row(2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

// TestSetGet validates Set followed by At on valid indices.
func TestSetGet(t *testing.T) {
	m := MustDense(t, 2, 3)
	require.NoError(t, m.Set(1, 2, 4.5))
	require.Equal(t, 4.5, MustAt(t, m, 1, 2))
	require.Equal(t, 0.0, MustAt(t, m, 0, 0))
}

// TestFromRowsRagged ensures ragged input is rejected with row context.
func TestFromRowsRagged(t *testing.T) {
	_, err := matrix.FromRows([][]float64{{1, 2}, {3}})
	require.ErrorIs(t, err, matrix.ErrRagged)
	require.Contains(t, err.Error(), "row 1 has 1 values, want 2")
}

// TestFromRowsCopies ensures FromRows never aliases its input.
func TestFromRowsCopies(t *testing.T) {
	src := [][]float64{{1, 2}, {3, 4}}
	m := MustRows(t, src)
	src[0][0] = 99
	require.Equal(t, 1.0, MustAt(t, m, 0, 0))
	require.Equal(t, [][]float64{{1, 2}, {3, 4}}, m.ToRows())
}

// TestRowViewsShareStorage checks Row/RowsView write through and stay capacity-capped.
func TestRowViewsShareStorage(t *testing.T) {
	m := MustRows(t, [][]float64{{1, 2}, {3, 4}})

	row, err := m.Row(0)
	require.NoError(t, err)
	row[1] = 20
	require.Equal(t, 20.0, MustAt(t, m, 0, 1))
	require.Equal(t, 2, cap(row))

	view := m.RowsView()
	view[1][0] = 30
	require.Equal(t, 30.0, MustAt(t, m, 1, 0))

	// appending to a row view must not clobber the next row
	_ = append(view[0], 100)
	require.Equal(t, 30.0, MustAt(t, m, 1, 0))
}

// TestCloneIndependent verifies Clone yields an independent buffer.
func TestCloneIndependent(t *testing.T) {
	m := MustRows(t, [][]float64{{1, 2}})
	c := m.Clone()
	require.NoError(t, c.Set(0, 0, 7))
	require.Equal(t, 1.0, MustAt(t, m, 0, 0))
	require.Equal(t, 7.0, MustAt(t, c, 0, 0))
}

// TestFillDoApply exercises the bulk visitors in row-major order.
func TestFillDoApply(t *testing.T) {
	m := MustDense(t, 2, 2)
	m.Fill(1)
	m.Apply(func(i, j int, v float64) float64 { return v + float64(i*2+j) })
	require.Equal(t, [][]float64{{1, 2}, {3, 4}}, m.ToRows())

	var seen []float64
	m.Do(func(_, _ int, v float64) bool {
		seen = append(seen, v)

		return v < 2 // stop after the second element
	})
	require.Equal(t, []float64{1, 2}, seen)
}

// TestString produces one bracketed line per row.
func TestString(t *testing.T) {
	m, err := matrix.FromRows([][]int{{1, 2}, {3, 4}})
	require.NoError(t, err)
	require.Equal(t, "[1, 2]\n[3, 4]\n", m.String())
	require.Equal(t, 2, strings.Count(m.String(), "\n"))
}
