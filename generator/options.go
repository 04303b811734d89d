// SPDX-License-Identifier: MIT
// Package: numbra/generator
//
// options.go — functional options for Generator.
//
// Contract:
//   • Option constructors validate and panic on nil or meaningless input.
//   • Generation itself never panics; it returns sentinel-wrapped errors.
//   • Determinism is explicit: WithSeed or WithRand, nothing time-based.

package generator

import (
	"io"
	"log/slog"
	"math/rand"
	"runtime"

	"github.com/katalvlaran/numbra/constant"
	"github.com/katalvlaran/numbra/convert"
	"github.com/katalvlaran/numbra/numeric"
)

// ApproximationFunc supplies the input value of a transcendental record:
// the approximation of c at the given precision that the record checks.
type ApproximationFunc func(c constant.Constant, base, precision int) (numeric.Value, error)

type options struct {
	seed    int64
	rng     *rand.Rand
	conv    *convert.Converter
	logger  *slog.Logger
	workers int
	approx  ApproximationFunc
}

// Option customizes a Generator.
type Option func(*options)

// WithSeed fixes the seed of the per-run RNG streams. Seed 0 selects the
// package's fixed default seed (same policy as an unseeded run).
func WithSeed(seed int64) Option {
	return func(o *options) { o.seed = seed }
}

// WithRand derives the per-run streams from r instead of a seed. r is read
// once per Generate call. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("generator: WithRand(nil)")
	}
	return func(o *options) { o.rng = r }
}

// WithConverter sets the converter (and thus the ceilings) used for
// expected values. Panics on nil.
func WithConverter(c *convert.Converter) Option {
	if c == nil {
		panic("generator: WithConverter(nil)")
	}
	return func(o *options) { o.conv = c }
}

// WithLogger sets the structured logger. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("generator: WithLogger(nil)")
	}
	return func(o *options) { o.logger = l }
}

// WithWorkers bounds the goroutines Complete uses. Panics if n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic("generator: WithWorkers(n < 1)")
	}
	return func(o *options) { o.workers = n }
}

// WithApproximation replaces the default transcendental input (the guarded
// truncation the expected value is rounded from). Panics on nil.
func WithApproximation(fn ApproximationFunc) Option {
	if fn == nil {
		panic("generator: WithApproximation(nil)")
	}
	return func(o *options) { o.approx = fn }
}

func newOptions(opts ...Option) options {
	o := options{
		conv:    convert.Default(),
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
		workers: runtime.GOMAXPROCS(0),
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
