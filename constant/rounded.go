// SPDX-License-Identifier: MIT
// Package: numbra/constant
//
// rounded.go — correctly rounded constants.

package constant

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/katalvlaran/numbra/convert"
	"github.com/katalvlaran/numbra/numeric"
)

// MaxGuardDigits bounds the guard band Rounded widens to.
const MaxGuardDigits = 1 << 12

// ErrRoundingUnresolved indicates a constant whose enclosing interval still
// straddles a rounding boundary at MaxGuardDigits.
var ErrRoundingUnresolved = errors.New("constant: rounding unresolved")

// Rounded returns c rounded half to even to precision digits in base, and
// a truncation of c to precision+g significant digits that rounds to the
// same value.
//
// With n = precision+g, c lies in [T, Q+2 ulp) where T is the n-digit
// truncation and Q the floor of c at scale B^n. Starting at g = guard (at
// least 1), g doubles until both ends of that interval round alike, so the
// result does not depend on digits below the guard band.
//
// Errors: numeric.ErrUnsupportedBase, convert.ErrInvalidPrecision,
// convert.ErrPrecisionTooLarge from conv, ErrRoundingUnresolved.
func Rounded(c Constant, base, precision, guard int, conv *convert.Converter) (rounded, truncated numeric.Value, err error) {
	if err := numeric.CheckBase(base); err != nil {
		return numeric.Value{}, numeric.Value{}, fmt.Errorf("Rounded %s: %w", c.Name(), err)
	}
	if precision < 1 {
		return numeric.Value{}, numeric.Value{}, fmt.Errorf("Rounded %s: precision %d: %w", c.Name(), precision, convert.ErrInvalidPrecision)
	}
	if conv == nil {
		conv = convert.Default()
	}
	if guard < 1 {
		guard = 1
	}

	for g := guard; g <= MaxGuardDigits; g *= 2 {
		n := precision + g
		q := scaledFloor(c, base, n)
		lo, err := numeric.FromInt(q, -n, base)
		if err != nil {
			return numeric.Value{}, numeric.Value{}, err
		}
		hi, err := numeric.FromInt(new(big.Int).Add(q, big.NewInt(2)), -n, base)
		if err != nil {
			return numeric.Value{}, numeric.Value{}, err
		}
		tr, err := convert.Truncate(lo, n)
		if err != nil {
			return numeric.Value{}, numeric.Value{}, err
		}
		rlo, err := conv.Convert(tr, base, precision)
		if err != nil {
			return numeric.Value{}, numeric.Value{}, fmt.Errorf("Rounded %s: %w", c.Name(), err)
		}
		rhi, err := conv.Convert(hi, base, precision)
		if err != nil {
			return numeric.Value{}, numeric.Value{}, fmt.Errorf("Rounded %s: %w", c.Name(), err)
		}
		if rlo.Equal(rhi) {
			return rlo, tr, nil
		}
	}
	return numeric.Value{}, numeric.Value{}, fmt.Errorf("Rounded %s precision %d: %w", c.Name(), precision, ErrRoundingUnresolved)
}
