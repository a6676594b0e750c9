package dist

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownState is returned when a queried state is outside the distribution's domain.
	ErrUnknownState = errors.New("dist: unknown state")

	// ErrUnknownObservation is returned by dense emitters for an observation index out of range.
	ErrUnknownObservation = errors.New("dist: unknown observation")

	// ErrInvalidProbability is returned when a stored value is outside [0,1] or NaN.
	ErrInvalidProbability = errors.New("dist: probability outside [0,1]")
)

// Starter gives the probability of starting in a state.
type Starter[S comparable] interface {
	Start(s S) (float64, error)
}

// Emitter gives the probability of a state emitting an observation.
type Emitter[S, O comparable] interface {
	Emit(s S, o O) (float64, error)
}

// Transor gives transition probabilities and enumerates every state.
type Transor[S comparable] interface {
	Trans(from, to S) (float64, error)
	States() []S
}

// unknownState wraps ErrUnknownState with the offending value.
func unknownState[S any](op string, s S) error {
	return fmt.Errorf("%s(%v): %w", op, s, ErrUnknownState)
}

// checkProb rejects NaN and values outside [0,1].
func checkProb(op string, p float64) error {
	if !(p >= 0 && p <= 1) {
		return fmt.Errorf("%s: %v: %w", op, p, ErrInvalidProbability)
	}

	return nil
}
