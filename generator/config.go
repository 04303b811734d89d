// SPDX-License-Identifier: MIT
// Package: numbra/generator
//
// config.go — generation knobs, defaults and validation.

package generator

import (
	"fmt"

	"github.com/katalvlaran/numbra/constant"
	"github.com/katalvlaran/numbra/convert"
	"github.com/katalvlaran/numbra/numeric"
)

// Defaults span the binary64 decimal range.
const (
	DefaultMinPrecision = 1
	DefaultMaxPrecision = 324
	DefaultMinExponent  = -324
	DefaultMaxExponent  = 308
	DefaultCount        = 1
	DefaultConstant     = "pi"

	// GuardDigits is the initial number of digits beyond the requested
	// precision used to round a constant; constant.Rounded widens it when
	// the digits below stay ambiguous.
	GuardDigits = 10

	// subnormalDigits is the working precision of subnormal cases before
	// clamping to [MinPrecision, MaxPrecision]: binary64's 17 decimal digits.
	subnormalDigits = 17
)

// Config selects categories and ranges for a generation run.
//
// Fields:
//   - MinPrecision/MaxPrecision — inclusive range of significant digits.
//   - MinExponent/MaxExponent   — inclusive range of exponents.
//   - Radix                     — copied into records (input layout only).
//   - Base                      — numeral system of generated values.
//   - IncludeSpecial/Edge/Subnormal — enable fixed categories.
//   - IncludePi                 — N > 0 adds the constant at precisions 1..N.
//   - Constant                  — registry name for IncludePi ("pi", "e", "sqrt2").
//   - Count                     — number of random records.
type Config struct {
	MinPrecision     int
	MaxPrecision     int
	MinExponent      int
	MaxExponent      int
	Radix            int
	Base             int
	IncludeSpecial   bool
	IncludeEdge      bool
	IncludeSubnormal bool
	IncludePi        int
	Constant         string
	Count            int
}

// DefaultConfig returns the command-line defaults: one random case,
// precision 1..324, exponent −324..308, base 10, no optional categories.
func DefaultConfig() Config {
	return Config{
		MinPrecision: DefaultMinPrecision,
		MaxPrecision: DefaultMaxPrecision,
		MinExponent:  DefaultMinExponent,
		MaxExponent:  DefaultMaxExponent,
		Base:         numeric.DefaultBase,
		Constant:     DefaultConstant,
		Count:        DefaultCount,
	}
}

// Validate checks c against the ceilings of conv (convert.Default() if nil).
//
// Errors: ErrInvalidConfig (wrapping numeric.ErrUnsupportedBase or
// constant.ErrUnknownConstant where that is the cause).
func (c Config) Validate(conv *convert.Converter) error {
	if conv == nil {
		conv = convert.Default()
	}
	if err := numeric.CheckBase(c.Base); err != nil {
		return fmt.Errorf("Config.Base: %w: %w", ErrInvalidConfig, err)
	}
	if c.MinPrecision < 1 {
		return configErrorf("Config.MinPrecision %d < 1", c.MinPrecision)
	}
	if c.MaxPrecision < c.MinPrecision {
		return configErrorf("Config.MaxPrecision %d < MinPrecision %d", c.MaxPrecision, c.MinPrecision)
	}
	if c.MaxPrecision > conv.PrecisionCeiling() {
		return configErrorf("Config.MaxPrecision %d > ceiling %d", c.MaxPrecision, conv.PrecisionCeiling())
	}
	if c.MaxExponent < c.MinExponent {
		return configErrorf("Config.MaxExponent %d < MinExponent %d", c.MaxExponent, c.MinExponent)
	}
	limit := conv.ExponentCeiling()
	if c.MaxExponent > limit || c.MinExponent < -limit {
		return configErrorf("Config exponent range [%d, %d] exceeds ±%d", c.MinExponent, c.MaxExponent, limit)
	}
	if c.IncludeSubnormal && c.MinExponent-c.subnormalPrecision() < -limit {
		return configErrorf("Config.MinExponent %d leaves no room for subnormal shifts", c.MinExponent)
	}
	if c.Radix < 0 {
		return configErrorf("Config.Radix %d < 0", c.Radix)
	}
	if c.Count < 0 {
		return configErrorf("Config.Count %d < 0", c.Count)
	}
	if c.IncludePi < 0 {
		return configErrorf("Config.IncludePi %d < 0", c.IncludePi)
	}
	if c.IncludePi > 0 {
		if c.IncludePi+GuardDigits > conv.PrecisionCeiling() {
			return configErrorf("Config.IncludePi %d exceeds ceiling", c.IncludePi)
		}
		if _, err := constant.Lookup(c.constantName()); err != nil {
			return fmt.Errorf("Config.Constant: %w: %w", ErrInvalidConfig, err)
		}
	}
	return nil
}

func (c Config) constantName() string {
	if c.Constant == "" {
		return DefaultConstant
	}
	return c.Constant
}

// subnormalPrecision is the working precision of subnormal cases.
func (c Config) subnormalPrecision() int {
	p := subnormalDigits
	if p > c.MaxPrecision {
		p = c.MaxPrecision
	}
	if p < c.MinPrecision {
		p = c.MinPrecision
	}
	return p
}
