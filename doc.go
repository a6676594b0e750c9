// Package lvhmm is an inference and training engine for discrete hidden
// Markov models, written in plain Go on top of a small matrix layer.
//
// 🚀 What is in the box?
//
//	• matrix/ — Dense[T] tables, Cube[T] stacks, tolerance-aware stochastic checks
//	• dist/   — start / emission / transition components, dense and hash-keyed
//	• hmm/    — Model, scaled forward & backward, occupation statistics,
//	            Baum-Welch re-estimation, log-domain Viterbi, supervised training
//	• genome/ — DNA bases, codon labels, gene annotations → labeled training paths
//
// ✨ Why lvhmm?
//
//   - Generic over state and observation types: ints for dense tables,
//     strings, runes or structs for hash-keyed ones.
//   - Numerically careful: per-step scaling in forward/backward, log₂ in
//     Viterbi, and an explicit ULP/epsilon tolerance for "sums to one".
//   - Deterministic: Viterbi breaks ties towards the lowest state index and
//     supervised training orders states by first appearance.
//   - Quiet by default, observable on demand via a zap logger option.
//
// Quick example:
//
//	m, _ := hmm.FromDense(
//		[]float64{0.6, 0.4},
//		[][]float64{{0.7, 0.3}, {0.4, 0.6}},
//		[][]float64{{0.1, 0.4, 0.5}, {0.7, 0.2, 0.1}},
//	)
//	path, _ := hmm.Viterbi([]int{0, 1, 0, 2}, m) // [1 1 1 0]
//
// See examples/ for end-to-end scenarios (weather decoding, a dishonest
// casino trained with Baum-Welch, and a toy gene finder).
//
//	go get github.com/katalvlaran/lvhmm
package lvhmm
