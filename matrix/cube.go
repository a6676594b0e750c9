// SPDX-License-Identifier: MIT

// Package matrix - Cube: a stack of equally shaped Dense layers.
//
// Layout:
//   - k layers, each an i×j Dense; element (layer, row, col).
//   - The HMM engine stores gap-gamma as layer t = time step, row i = state at t,
//     col j = state at t+1.

package matrix

import "fmt"

const (
	ctxCubeAt  = "Cube.At"
	ctxCubeSet = "Cube.Set"
	ctxCubeLay = "Cube.Layer"
	ctxNewCube = "NewCube"
)

// Cube is an ordered stack of Dense layers of identical shape.
type Cube[T Numeric] struct {
	i, j   int         // shared layer shape
	layers []*Dense[T] // len == depth
}

// NewCube allocates k zeroed layers of shape i×j.
// Errors: ErrInvalidDimensions when any dimension is negative.
// Complexity: O(i*j*k).
func NewCube[T Numeric](i, j, k int) (*Cube[T], error) {
	if i < 0 || j < 0 || k < 0 {
		return nil, fmt.Errorf("%s(%d,%d,%d): %w", ctxNewCube, i, j, k, ErrInvalidDimensions)
	}
	layers := make([]*Dense[T], k)
	for t := range layers {
		d, err := NewDense[T](i, j)
		if err != nil {
			return nil, matrixErrorf(ctxNewCube, err)
		}
		layers[t] = d
	}
	ri, rj := i, j
	if i == 0 {
		rj = 0
	}

	return &Cube[T]{i: ri, j: rj, layers: layers}, nil
}

// Dims returns (rows per layer, cols per layer, layer count).
// Complexity: O(1).
func (c *Cube[T]) Dims() (i, j, k int) { return c.i, c.j, len(c.layers) }

// Depth returns the number of layers.
func (c *Cube[T]) Depth() int { return len(c.layers) }

// Layer returns layer k (shared, not copied).
func (c *Cube[T]) Layer(k int) (*Dense[T], error) {
	if k < 0 || k >= len(c.layers) {
		return nil, fmt.Errorf("%s(%d): %w", ctxCubeLay, k, ErrOutOfRange)
	}

	return c.layers[k], nil
}

// At returns element (k, i, j).
func (c *Cube[T]) At(k, i, j int) (T, error) {
	l, err := c.Layer(k)
	if err != nil {
		var zero T

		return zero, matrixErrorf(ctxCubeAt, err)
	}
	v, err := l.At(i, j)
	if err != nil {
		return v, matrixErrorf(ctxCubeAt, err)
	}

	return v, nil
}

// Set stores v at (k, i, j).
func (c *Cube[T]) Set(k, i, j int, v T) error {
	l, err := c.Layer(k)
	if err != nil {
		return matrixErrorf(ctxCubeSet, err)
	}
	if err = l.Set(i, j, v); err != nil {
		return matrixErrorf(ctxCubeSet, err)
	}

	return nil
}
