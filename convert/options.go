// SPDX-License-Identifier: MIT
// Package: numbra/convert
//
// options.go — functional options for Converter.
//
// Option constructors panic on meaningless values; Convert itself never panics.

package convert

// Default ceilings. They cover the binary64 decimal range
// (precision ≤ 324, |exponent| ≤ 324) and 1..1000 sweeps.
const (
	DefaultPrecisionCeiling = 1 << 16
	DefaultExponentCeiling  = 1 << 16
)

type config struct {
	precisionCeiling int
	exponentCeiling  int
}

// Option customizes a Converter.
type Option func(*config)

// WithPrecisionCeiling sets the largest precision Convert accepts.
// Panics if n < 1.
func WithPrecisionCeiling(n int) Option {
	if n < 1 {
		panic("convert: WithPrecisionCeiling(n < 1)")
	}
	return func(c *config) { c.precisionCeiling = n }
}

// WithExponentCeiling sets the largest |exponent| Convert accepts on input.
// Panics if n < 0.
func WithExponentCeiling(n int) Option {
	if n < 0 {
		panic("convert: WithExponentCeiling(n < 0)")
	}
	return func(c *config) { c.exponentCeiling = n }
}

func newConfig(opts ...Option) config {
	cfg := config{
		precisionCeiling: DefaultPrecisionCeiling,
		exponentCeiling:  DefaultExponentCeiling,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
