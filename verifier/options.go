// SPDX-License-Identifier: MIT
// Package: numbra/verifier
//
// options.go — functional options for Verifier.

package verifier

import (
	"io"
	"log/slog"
	"runtime"

	"github.com/katalvlaran/numbra/convert"
)

type options struct {
	conv    *convert.Converter
	logger  *slog.Logger
	workers int
}

// Option customizes a Verifier.
type Option func(*options)

// WithConverter sets the converter used to recompute values. Panics on nil.
func WithConverter(c *convert.Converter) Option {
	if c == nil {
		panic("verifier: WithConverter(nil)")
	}
	return func(o *options) { o.conv = c }
}

// WithLogger sets the structured logger. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("verifier: WithLogger(nil)")
	}
	return func(o *options) { o.logger = l }
}

// WithWorkers bounds the goroutines of batch verification. Panics if n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic("verifier: WithWorkers(n < 1)")
	}
	return func(o *options) { o.workers = n }
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
