// SPDX-License-Identifier: MIT
// Package hmm: Model construction and probability accessors.
//
// Implementation:
//   - Stage 1: Enumerate hidden states from the transition component
//     (first occurrence wins, duplicates dropped).
//   - Stage 2: Reject N < 2 and, when the transition component reports a
//     shape, anything other than N×N.
//   - Stage 3: Query every start and transition probability once, cache them
//     densely, and validate the start vector and every transition row
//     against the configured Tolerance.
//
// Emission is queried lazily by the algorithms because its observation
// alphabet is open-ended; an emitter that errors surfaces that error from
// the algorithm that asked.
//
// Complexity: O(N²) Start/Trans calls and O(N²) memory.

package hmm

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/lvhmm/dist"
	"github.com/katalvlaran/lvhmm/matrix"
)

// Model is a validated, immutable hidden Markov model. It is safe for
// concurrent use by the read-only algorithms provided its components are.
type Model[S, O comparable] struct {
	start dist.Starter[S]
	emit  dist.Emitter[S, O]
	trans dist.Transor[S]

	states []S
	index  map[S]int

	startP []float64              // startP[i] = P(states[i] at t=0)
	transP *matrix.Dense[float64] // transP[i][j] = P(states[i] → states[j])

	opts Options
}

// New validates the three components and bundles them into a Model.
//
// Errors: ErrTooFewStates, ErrShape (*ShapeError), ErrNotStochastic
// (*StochasticError naming "start" or "transition"), or whatever a component
// returned while being queried.
func New[S, O comparable](start dist.Starter[S], emit dist.Emitter[S, O], trans dist.Transor[S], opts ...Option) (*Model[S, O], error) {
	if start == nil || emit == nil || trans == nil {
		return nil, hmmErrorf("New", ErrNilModel)
	}
	o := gatherOptions(opts...)

	// Stage 1: states.
	m := &Model[S, O]{start: start, emit: emit, trans: trans, index: make(map[S]int), opts: o}
	for _, s := range trans.States() {
		if _, dup := m.index[s]; dup {
			continue
		}
		m.index[s] = len(m.states)
		m.states = append(m.states, s)
	}
	n := len(m.states)

	// Stage 2: cardinality and shape.
	if n < 2 {
		return nil, fmt.Errorf("New: got %d hidden states: %w", n, ErrTooFewStates)
	}
	if sh, ok := trans.(matrix.Shaped); ok {
		if err := matrix.ValidateShape(sh, n, n); err != nil {
			return nil, hmmErrorf("New", shapeFrom("transition dist", sh, n, n))
		}
	}

	// Stage 3: cache and validate.
	var err error
	m.startP = make([]float64, n)
	for i, s := range m.states {
		if m.startP[i], err = start.Start(s); err != nil {
			return nil, hmmErrorf("New", err)
		}
	}
	if err = matrix.ValidateVectorStochastic(m.startP, o.tol); err != nil {
		return nil, hmmErrorf("New", stochasticFrom("start", err))
	}

	if m.transP, err = matrix.NewDense[float64](n, n); err != nil {
		return nil, hmmErrorf("New", err)
	}
	rows := m.transP.RowsView()
	for i, from := range m.states {
		for j, to := range m.states {
			if rows[i][j], err = trans.Trans(from, to); err != nil {
				return nil, hmmErrorf("New", err)
			}
		}
	}
	if err = matrix.ValidateRowStochastic(m.transP, o.tol); err != nil {
		return nil, hmmErrorf("New", stochasticFrom("transition", err))
	}

	o.logger.Debug("hmm: model constructed", zap.Int("states", n))

	return m, nil
}

// FromDense builds a Model over integer states 0..N-1 and symbols 0..M-1 from
// plain row literals. Unlike New it also checks that emit is N×M with M ≥ 2
// and that every emission row is stochastic.
func FromDense(start []float64, trans, emit [][]float64, opts ...Option) (*Model[int, int], error) {
	if len(start) < 2 {
		return nil, fmt.Errorf("FromDense: got %d hidden states: %w", len(start), ErrTooFewStates)
	}
	sv, err := dist.NewVector(start)
	if err != nil {
		return nil, hmmErrorf("FromDense", err)
	}
	tt, err := dist.NewTable(trans)
	if err != nil {
		return nil, hmmErrorf("FromDense", err)
	}
	et, err := dist.NewTable(emit)
	if err != nil {
		return nil, hmmErrorf("FromDense", err)
	}

	n := len(start)
	if err = matrix.ValidateShape(tt, n, n); err != nil {
		return nil, hmmErrorf("FromDense", shapeFrom("transition dist", tt, n, n))
	}
	// At least two symbols; a single-symbol alphabet carries no information.
	_, ec := et.Dims()
	if err = matrix.ValidateShape(et, n, max(ec, 2)); err != nil {
		return nil, hmmErrorf("FromDense", shapeFrom("emission dist", et, n, max(ec, 2)))
	}

	m, err := New[int, int](sv, et, tt, opts...)
	if err != nil {
		return nil, err
	}
	if err = matrix.ValidateRowStochastic(et.Matrix(), m.opts.tol); err != nil {
		return nil, hmmErrorf("FromDense", stochasticFrom("emission", err))
	}

	return m, nil
}

// States returns the hidden states in model order (a copy).
func (m *Model[S, O]) States() []S { return append([]S(nil), m.states...) }

// N is the number of hidden states.
func (m *Model[S, O]) N() int { return len(m.states) }

// Index returns the model-order position of s.
func (m *Model[S, O]) Index(s S) (int, bool) {
	i, ok := m.index[s]

	return i, ok
}

// StartP returns the cached P(start = states[i]).
func (m *Model[S, O]) StartP(i int) float64 { return m.startP[i] }

// TransP returns the cached P(states[i] → states[j]).
func (m *Model[S, O]) TransP(i, j int) float64 {
	v, _ := m.transP.At(i, j)

	return v
}

// EmitP queries the emitter for P(o | states[i]).
func (m *Model[S, O]) EmitP(i int, o O) (float64, error) {
	return m.emit.Emit(m.states[i], o)
}

// Starter exposes the start component the model was built from.
func (m *Model[S, O]) Starter() dist.Starter[S] { return m.start }

// Emitter exposes the emission component.
func (m *Model[S, O]) Emitter() dist.Emitter[S, O] { return m.emit }

// Transor exposes the transition component.
func (m *Model[S, O]) Transor() dist.Transor[S] { return m.trans }

// Tolerance is the stochasticity policy the model was validated with.
func (m *Model[S, O]) Tolerance() matrix.Tolerance { return m.opts.tol }

// emitInto fills dst[i] with P(o | states[i]).
func (m *Model[S, O]) emitInto(dst []float64, o O) error {
	for i, s := range m.states {
		p, err := m.emit.Emit(s, o)
		if err != nil {
			return err
		}
		dst[i] = p
	}

	return nil
}

// checkModel guards the entry points against nil models and empty input.
func checkModel[S, O comparable](op string, m *Model[S, O], obs []O) error {
	if m == nil {
		return hmmErrorf(op, ErrNilModel)
	}
	if len(obs) == 0 {
		return hmmErrorf(op, ErrEmptySequence)
	}

	return nil
}
