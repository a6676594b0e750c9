// SPDX-License-Identifier: MIT
// Package hmm: sentinel errors and typed diagnostics.
// Every message is prefixed with "hmm: ...". Typed errors carry the observed
// and required values and match their sentinel through errors.Is, so callers
// branch on the sentinel and print the typed error.

package hmm

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvhmm/matrix"
)

var (
	// ErrTooFewStates is returned when a model would have fewer than two hidden states.
	ErrTooFewStates = errors.New("hmm: need more than one hidden state")

	// ErrShape is returned when a table or buffer has the wrong dimensions.
	ErrShape = errors.New("hmm: shape mismatch")

	// ErrNotStochastic is returned when a start vector or transition row does not sum to 1.
	ErrNotStochastic = errors.New("hmm: distribution is not stochastic")

	// ErrEmptySequence is returned when an algorithm receives no observations (or no labeled points).
	ErrEmptySequence = errors.New("hmm: empty observation sequence")

	// ErrSequenceTooShort is returned when transition re-estimation sees fewer than two observations.
	ErrSequenceTooShort = errors.New("hmm: sequence too short to re-estimate transitions")

	// ErrLengthMismatch is returned when parallel inputs disagree in length.
	ErrLengthMismatch = errors.New("hmm: length mismatch")

	// ErrZeroLikelihood is returned by Viterbi when no state path can produce the observations.
	ErrZeroLikelihood = errors.New("hmm: no state path is consistent with the observations")

	// ErrNilModel is returned when a nil *Model is passed in.
	ErrNilModel = errors.New("hmm: nil model")
)

// hmmErrorf wraps an underlying error with the given operation tag.
func hmmErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}

// ShapeError reports the observed versus required shape of a named table.
type ShapeError struct {
	What               string
	GotRows, GotCols   int
	WantRows, WantCols int
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("hmm: got %dx%d %s; need %dx%d", e.GotRows, e.GotCols, e.What, e.WantRows, e.WantCols)
}

// Is lets errors.Is(err, ErrShape) match.
func (e *ShapeError) Is(target error) bool { return target == ErrShape }

// shapeFrom describes a table that failed matrix.ValidateShape.
func shapeFrom(what string, sh matrix.Shaped, rows, cols int) *ShapeError {
	r, c := sh.Dims()

	return &ShapeError{What: what, GotRows: r, GotCols: c, WantRows: rows, WantCols: cols}
}

// StochasticError reports which distribution failed the sum-to-one check.
// Row is -1 for the start vector.
type StochasticError struct {
	Which string
	Row   int
	Sum   float64
}

func (e *StochasticError) Error() string {
	if e.Row < 0 {
		return fmt.Sprintf("hmm: %s dist sums to %v; need 1", e.Which, e.Sum)
	}

	return fmt.Sprintf("hmm: %s dist row %d sums to %v; need 1", e.Which, e.Row, e.Sum)
}

// Is matches both ErrNotStochastic and matrix.ErrNotStochastic.
func (e *StochasticError) Is(target error) bool {
	return target == ErrNotStochastic || target == matrix.ErrNotStochastic
}

// LengthError reports mismatched sequence lengths.
type LengthError struct {
	What      string
	Got, Want int
}

func (e *LengthError) Error() string {
	return fmt.Sprintf("hmm: got %d %s; need %d", e.Got, e.What, e.Want)
}

// Is lets errors.Is(err, ErrLengthMismatch) match.
func (e *LengthError) Is(target error) bool { return target == ErrLengthMismatch }

// stochasticFrom converts a matrix-level check failure into a named StochasticError.
func stochasticFrom(which string, err error) error {
	var se *matrix.StochasticError
	if errors.As(err, &se) {
		return &StochasticError{Which: which, Row: se.Row, Sum: se.Sum}
	}

	return err
}
