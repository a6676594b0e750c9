package dist

import (
	"fmt"

	"github.com/katalvlaran/lvhmm/matrix"
)

// Compile-time assertions for capability conformance.
var (
	_ Starter[int]      = (*Vector)(nil)
	_ Emitter[int, int] = (*Table)(nil)
	_ Transor[int]      = (*Table)(nil)
	_ matrix.Shaped     = (*Table)(nil)
)

// Vector is a dense start distribution over states 0..Len()-1.
type Vector struct {
	p []float64
}

// NewVector copies p into a Vector. Every entry must be a probability.
func NewVector(p []float64) (*Vector, error) {
	for i, v := range p {
		if err := checkProb(fmt.Sprintf("NewVector[%d]", i), v); err != nil {
			return nil, err
		}
	}

	return &Vector{p: append([]float64(nil), p...)}, nil
}

// Start returns p[s], or ErrUnknownState when s is out of range.
func (v *Vector) Start(s int) (float64, error) {
	if s < 0 || s >= len(v.p) {
		return 0, unknownState("Vector.Start", s)
	}

	return v.p[s], nil
}

// Len is the number of states covered.
func (v *Vector) Len() int { return len(v.p) }

// Values returns a copy of the probabilities.
func (v *Vector) Values() []float64 { return append([]float64(nil), v.p...) }

// Table is a dense row-per-state probability table. As an Emitter its columns
// are observation symbols; as a Transor its columns are destination states.
type Table struct {
	m *matrix.Dense[float64]
}

// NewTable builds a Table from row literals. Ragged rows and non-probabilities are rejected.
func NewTable(rows [][]float64) (*Table, error) {
	m, err := matrix.FromRows(rows)
	if err != nil {
		return nil, fmt.Errorf("NewTable: %w", err)
	}

	return TableFrom(m)
}

// TableFrom wraps a copy of m.
func TableFrom(m *matrix.Dense[float64]) (*Table, error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return nil, fmt.Errorf("TableFrom: %w", err)
	}
	var bad error
	m.Do(func(i, j int, v float64) bool {
		bad = checkProb(fmt.Sprintf("TableFrom[%d][%d]", i, j), v)

		return bad == nil
	})
	if bad != nil {
		return nil, bad
	}

	return &Table{m: m.Clone()}, nil
}

// Dims returns (states, columns).
func (t *Table) Dims() (rows, cols int) { return t.m.Dims() }

// Emit returns the probability of state s emitting symbol o.
func (t *Table) Emit(s, o int) (float64, error) {
	if s < 0 || s >= t.m.Rows() {
		return 0, unknownState("Table.Emit", s)
	}
	if o < 0 || o >= t.m.Cols() {
		return 0, fmt.Errorf("Table.Emit(%d,%d): %w", s, o, ErrUnknownObservation)
	}

	return t.m.At(s, o)
}

// Trans returns the probability of moving from state from to state to.
func (t *Table) Trans(from, to int) (float64, error) {
	if from < 0 || from >= t.m.Rows() {
		return 0, unknownState("Table.Trans", from)
	}
	if to < 0 || to >= t.m.Cols() {
		return 0, unknownState("Table.Trans", to)
	}

	return t.m.At(from, to)
}

// States returns 0..Rows()-1.
func (t *Table) States() []int {
	out := make([]int, t.m.Rows())
	for i := range out {
		out[i] = i
	}

	return out
}

// Matrix returns a copy of the underlying table.
func (t *Table) Matrix() *matrix.Dense[float64] { return t.m.Clone() }
