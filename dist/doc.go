// Package dist defines the three probability-distribution capabilities an
// HMM is composed of, and two interchangeable backends for each.
//
// Capabilities:
//
//	Starter[S]   — state → start probability
//	Emitter[S,O] — state × observation → emission probability
//	Transor[S]   — state × state → transition probability, plus States()
//
// Backends:
//
//   - Dense, integer-indexed (Vector, Table): states and observations are
//     small ints; storage is a matrix.Dense[float64]. Fast path for discrete
//     numeric alphabets such as codon positions.
//   - Sparse, hash-keyed (SparseStart, SparseEmit, SparseTrans): states and
//     observations are any comparable type, e.g. DNA bases or gene labels.
//
// Query contract:
//
//	A query for a state outside the distribution's domain returns an error
//	(ErrUnknownState / ErrUnknownObservation). A sparse distribution asked
//	about a known source state and an unseen target or observation returns
//	0 with no error: a legal zero-probability outcome.
//
// States() order:
//
//	Sparse backends return states in insertion order so results are
//	reproducible, but algorithms must index through the returned slice and
//	never assume a fixed integer range.
package dist
