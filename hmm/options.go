// SPDX-License-Identifier: MIT

// Package hmm: functional configuration shared by model construction,
// re-estimation and supervised training.
//
// Design goals:
//   - No global state: the numeric tolerance travels with each Model, so
//     re-estimated models are validated with the policy their parent used.
//   - Quiet by default: the logger is a no-op unless the caller supplies one.

package hmm

import (
	"go.uber.org/zap"

	"github.com/katalvlaran/lvhmm/matrix"
)

// Option mutates Options. Safe to apply repeatedly (last writer wins).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	tol    matrix.Tolerance // matrix.NewTolerance()
	logger *zap.Logger      // zap.NewNop()
}

// WithTolerance sets the stochasticity tolerance used at construction.
func WithTolerance(tol matrix.Tolerance) Option {
	return func(o *Options) { o.tol = tol }
}

// WithLogger routes construction and training diagnostics to l.
// A nil logger restores the no-op default.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l == nil {
			l = zap.NewNop()
		}
		o.logger = l
	}
}

// gatherOptions applies user-provided setters on top of defaults.
func gatherOptions(user ...Option) Options {
	o := Options{
		tol:    matrix.NewTolerance(),
		logger: zap.NewNop(),
	}
	for _, set := range user {
		set(&o)
	}

	return o
}

// asOptions re-expresses o as setters, so derived models inherit their parent's policy.
func (o Options) asOptions() []Option {
	return []Option{WithTolerance(o.tol), WithLogger(o.logger)}
}
