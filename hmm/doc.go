// Package hmm implements inference and training for discrete hidden Markov
// models over caller-supplied start, emission and transition components.
//
// Overview:
//
//   - New validates a Starter, Emitter and Transor (see package dist) into an
//     immutable Model: more than one hidden state, N×N transitions when the
//     transition component reports a shape, and a stochastic start vector
//     and transition rows under a configurable matrix.Tolerance.
//   - Forward computes the scaled forward table and per-step coefficients;
//     Likelihood and LogLikelihood turn the coefficients into P(obs | model).
//   - Backward reuses the forward coefficients; ComputeOccupation derives
//     the per-gap transition posteriors (gap-gamma) and state posteriors (gamma).
//   - Reestimate and BaumWelch perform one expectation-maximization step.
//     There is no built-in convergence loop.
//   - Viterbi returns the most likely hidden state path, computed in the
//     log₂ domain with a deterministic lowest-index tie-break.
//   - Train and TrainDense estimate a model from labeled (state, observation)
//     paths by frequency counting, with optional pinned transitions.
//
// Error handling (sentinel errors):
//
//   - ErrTooFewStates, ErrShape, ErrNotStochastic: construction failures.
//     *ShapeError and *StochasticError carry the offending values.
//   - ErrEmptySequence, ErrSequenceTooShort, ErrLengthMismatch: bad input sizes.
//   - ErrZeroLikelihood: Viterbi found no path with non-zero probability.
//   - Component errors (dist.ErrUnknownState, dist.ErrUnknownObservation)
//     are wrapped and returned unchanged in kind.
//
// Numerical notes:
//
//   - A zero-probability step in Forward is not an error: its coefficient is
//     +Inf and Likelihood reports 0.
//   - Occupation statistics divide by the per-step normalizer; zero
//     normalizers propagate NaN.
//
// Concurrency: a Model is read-only after New; the algorithms allocate their
// own buffers and may run concurrently on one Model as long as its
// components tolerate concurrent reads (all dist types do).
//
// Logging: construction, re-estimation and training emit zap debug entries
// to the logger set with WithLogger (no-op by default).
package hmm
