// Package matrix provides the dense numeric containers used by the HMM engine.
//
// The matrix package provides:
//
//   - Dense[T]: a row-major two-dimensional buffer with bounds-checked
//     accessors and no-copy row views for hot loops.
//   - Cube[T]: a stack of equally shaped Dense layers, indexed as
//     [layer][row][col]; used for pairwise state-occupation statistics.
//   - Tolerance: an explicit, caller-tunable floating-point comparison policy
//     (ULP distance, optional absolute epsilon) threaded into every
//     stochasticity check instead of a process-wide constant.
//   - Validators and row normalization for probability tables.
//
// Containers are owned by whichever structure allocates them; nothing in this
// package shares buffers across calls or synchronizes access.
//
// See the examples in this package for usage patterns.
package matrix
