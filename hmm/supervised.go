// SPDX-License-Identifier: MIT
// Package hmm: supervised estimation from labeled (state, observation) paths.
//
// Implementation:
//   - Stage 1: Discover states and symbols in order of first appearance.
//   - Stage 2: Count path starts, emissions and within-path transitions.
//     Each path starts a fresh chain; the last point of one path is never
//     linked to the first point of the next.
//   - Stage 3: Normalize every count vector to frequencies.
//   - Stage 4: Apply transition overrides. An override fixes one cell; the
//     learned cells left in that row are rescaled to share what remains.
//   - Stage 5: Build the Model; unseen (state, symbol) pairs and unseen
//     transitions from known states have probability 0.
//
// A state that never transitions out of any path (it only ever ends one)
// has an all-zero row and the construction fails with ErrNotStochastic,
// unless overrides complete that row.

package hmm

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/lvhmm/dist"
	"github.com/katalvlaran/lvhmm/matrix"
)

// Point is one labeled step of a training path.
type Point[S, O comparable] struct {
	State S
	Obs   O
}

// TrainOption configures Train and TrainDense.
type TrainOption[S comparable] func(*trainConfig[S])

type override[S comparable] struct {
	from, to S
	p        float64
}

type trainConfig[S comparable] struct {
	overrides []override[S]
	model     []Option
}

// WithOverride pins P(to | from) = p in the learned model. The pin is applied
// after normalization; the remaining learned cells of the from row are then
// rescaled to share 1 − Σpinned in their learned proportions. A row with no
// learned mass keeps only its pins.
func WithOverride[S comparable](from, to S, p float64) TrainOption[S] {
	return func(c *trainConfig[S]) { c.overrides = append(c.overrides, override[S]{from: from, to: to, p: p}) }
}

// WithModelOptions forwards construction options (tolerance, logger) to the learned model.
func WithModelOptions[S comparable](opts ...Option) TrainOption[S] {
	return func(c *trainConfig[S]) { c.model = append(c.model, opts...) }
}

// counts is the dense tally shared by both trainers.
type counts struct {
	start []float64
	trans *matrix.Dense[float64]
	emit  *matrix.Dense[float64]
}

func newCounts(n, m int) (*counts, error) {
	trans, err := matrix.NewDense[float64](n, n)
	if err != nil {
		return nil, err
	}
	emit, err := matrix.NewDense[float64](n, m)
	if err != nil {
		return nil, err
	}

	return &counts{start: make([]float64, n), trans: trans, emit: emit}, nil
}

// tally counts one path given already-resolved indices.
func (c *counts) tally(states, symbols []int) {
	tr, em := c.trans.RowsView(), c.emit.RowsView()
	c.start[states[0]]++
	for k, s := range states {
		em[s][symbols[k]]++
		if k > 0 {
			tr[states[k-1]][s]++
		}
	}
}

// normalize turns every count vector into frequencies. All-zero rows stay zero.
func (c *counts) normalize() error {
	matrix.Normalize(c.start)
	var err error
	if c.trans, _, err = matrix.NormalizeRows(c.trans); err != nil {
		return err
	}
	c.emit, _, err = matrix.NormalizeRows(c.emit)

	return err
}

// applyOverrides pins the requested cells and rescales the learned remainder of each touched row.
func applyOverrides[S comparable](trans *matrix.Dense[float64], ovs []override[S], index func(S) (int, bool)) error {
	rows := trans.RowsView()
	pinned := make(map[int]map[int]bool)
	for _, ov := range ovs {
		if !(ov.p >= 0 && ov.p <= 1) {
			return fmt.Errorf("override(%v,%v): %v: %w", ov.from, ov.to, ov.p, dist.ErrInvalidProbability)
		}
		i, ok := index(ov.from)
		if !ok {
			return fmt.Errorf("override(%v,%v): from: %w", ov.from, ov.to, dist.ErrUnknownState)
		}
		j, ok := index(ov.to)
		if !ok {
			return fmt.Errorf("override(%v,%v): to: %w", ov.from, ov.to, dist.ErrUnknownState)
		}
		if pinned[i] == nil {
			pinned[i] = make(map[int]bool)
		}
		pinned[i][j] = true
		rows[i][j] = ov.p
	}

	for i, cols := range pinned {
		var fixed, free float64
		for j, v := range rows[i] {
			if cols[j] {
				fixed += v
			} else {
				free += v
			}
		}
		if free == 0 {
			continue
		}
		scale := (1 - fixed) / free
		for j := range rows[i] {
			if !cols[j] {
				rows[i][j] *= scale
			}
		}
	}

	return nil
}

// Train estimates a Model from labeled paths over arbitrary state and
// observation types. Empty paths are ignored; ErrEmptySequence is returned
// when nothing remains.
func Train[S, O comparable](paths [][]Point[S, O], opts ...TrainOption[S]) (*Model[S, O], error) {
	var cfg trainConfig[S]
	for _, set := range opts {
		set(&cfg)
	}

	// Stage 1.
	stateIdx, symIdx := make(map[S]int), make(map[O]int)
	var states []S
	var symbols []O
	nonEmpty := 0
	for _, path := range paths {
		if len(path) > 0 {
			nonEmpty++
		}
		for _, pt := range path {
			if _, ok := stateIdx[pt.State]; !ok {
				stateIdx[pt.State] = len(states)
				states = append(states, pt.State)
			}
			if _, ok := symIdx[pt.Obs]; !ok {
				symIdx[pt.Obs] = len(symbols)
				symbols = append(symbols, pt.Obs)
			}
		}
	}
	if nonEmpty == 0 {
		return nil, fmt.Errorf("Train: %d paths: %w", len(paths), ErrEmptySequence)
	}

	// Stages 2 and 3.
	c, err := newCounts(len(states), len(symbols))
	if err != nil {
		return nil, hmmErrorf("Train", err)
	}
	var si, oi []int
	for _, path := range paths {
		if len(path) == 0 {
			continue
		}
		si, oi = si[:0], oi[:0]
		for _, pt := range path {
			si = append(si, stateIdx[pt.State])
			oi = append(oi, symIdx[pt.Obs])
		}
		c.tally(si, oi)
	}
	if err = c.normalize(); err != nil {
		return nil, hmmErrorf("Train", err)
	}

	// Stage 4.
	err = applyOverrides(c.trans, cfg.overrides, func(s S) (int, bool) {
		i, ok := stateIdx[s]

		return i, ok
	})
	if err != nil {
		return nil, hmmErrorf("Train", err)
	}

	// Stage 5.
	start := dist.NewSparseStart[S]()
	trans := dist.NewSparseTrans[S]()
	emit := dist.NewSparseEmit[S, O]()
	tr, em := c.trans.RowsView(), c.emit.RowsView()
	for _, s := range states {
		trans.AddState(s)
	}
	for i, s := range states {
		if err = start.Set(s, c.start[i]); err != nil {
			return nil, hmmErrorf("Train", err)
		}
		emit.AddState(s)
		for j, to := range states {
			if tr[i][j] == 0 {
				continue
			}
			if err = trans.Set(s, to, tr[i][j]); err != nil {
				return nil, hmmErrorf("Train", err)
			}
		}
		for k, o := range symbols {
			if em[i][k] == 0 {
				continue
			}
			if err = emit.Set(s, o, em[i][k]); err != nil {
				return nil, hmmErrorf("Train", err)
			}
		}
	}

	m, err := New[S, O](start, emit, trans, cfg.model...)
	if err != nil {
		return nil, hmmErrorf("Train", err)
	}
	m.opts.logger.Debug("hmm: supervised estimate",
		zap.Int("paths", nonEmpty),
		zap.Int("states", len(states)),
		zap.Int("symbols", len(symbols)),
		zap.Int("overrides", len(cfg.overrides)),
	)

	return m, nil
}

// TrainDense estimates a dense Model over states 0..n-1 and symbols 0..m-1.
// Out-of-range labels are rejected with dist.ErrUnknownState or dist.ErrUnknownObservation.
func TrainDense(n, m int, paths [][]Point[int, int], opts ...TrainOption[int]) (*Model[int, int], error) {
	var cfg trainConfig[int]
	for _, set := range opts {
		set(&cfg)
	}

	c, err := newCounts(n, m)
	if err != nil {
		return nil, hmmErrorf("TrainDense", err)
	}
	var si, oi []int
	nonEmpty := 0
	for p, path := range paths {
		if len(path) == 0 {
			continue
		}
		nonEmpty++
		si, oi = si[:0], oi[:0]
		for k, pt := range path {
			if pt.State < 0 || pt.State >= n {
				return nil, fmt.Errorf("TrainDense: path %d point %d: state %d: %w", p, k, pt.State, dist.ErrUnknownState)
			}
			if pt.Obs < 0 || pt.Obs >= m {
				return nil, fmt.Errorf("TrainDense: path %d point %d: obs %d: %w", p, k, pt.Obs, dist.ErrUnknownObservation)
			}
			si = append(si, pt.State)
			oi = append(oi, pt.Obs)
		}
		c.tally(si, oi)
	}
	if nonEmpty == 0 {
		return nil, fmt.Errorf("TrainDense: %d paths: %w", len(paths), ErrEmptySequence)
	}
	if err = c.normalize(); err != nil {
		return nil, hmmErrorf("TrainDense", err)
	}

	err = applyOverrides(c.trans, cfg.overrides, func(s int) (int, bool) { return s, s >= 0 && s < n })
	if err != nil {
		return nil, hmmErrorf("TrainDense", err)
	}

	return FromDense(c.start, c.trans.ToRows(), c.emit.ToRows(), cfg.model...)
}
