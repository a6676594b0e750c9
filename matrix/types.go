// SPDX-License-Identifier: MIT

// Package matrix: element constraint and the shape-only interface shared by
// Dense and external table types.
package matrix

// Numeric is the set of element types a Dense or Cube may hold.
type Numeric interface {
	~int | ~int32 | ~int64 | ~float32 | ~float64
}

// Shaped is implemented by anything that exposes a two-dimensional shape.
// Validators accept Shaped so probability tables backed by Dense can be
// checked without exposing their storage.
type Shaped interface {
	// Dims returns (rows, cols). An empty matrix reports (0, 0).
	// Complexity: O(1).
	Dims() (rows, cols int)
}
