// SPDX-License-Identifier: MIT
// Package: numbra/numeric
//
// errors.go — sentinel errors for the numeric package.
//
// Callers branch with errors.Is; call sites attach the offending token or
// base via %w wrapping, never inside the sentinel text.

package numeric

import (
	"errors"
	"fmt"
)

// ErrMalformedNumber indicates a textual numeral that cannot be parsed:
// characters outside the base's alphabet, repeated exponent markers or
// decimal points, a missing mantissa or exponent, or an exponent outside
// the int32 range.
var ErrMalformedNumber = errors.New("numeric: malformed number")

// ErrUnsupportedBase indicates a base outside [MinBase, MaxBase].
var ErrUnsupportedBase = errors.New("numeric: unsupported base")

// ErrPlainRange indicates a value too far from the radix point for
// positional rendering; see MaxPlainExponent.
var ErrPlainRange = errors.New("numeric: exponent out of plain range")

// malformedf wraps ErrMalformedNumber with the offending token and a reason.
func malformedf(token, format string, args ...interface{}) error {
	return fmt.Errorf("%q: %s: %w", token, fmt.Sprintf(format, args...), ErrMalformedNumber)
}

// CheckBase returns a wrapped ErrUnsupportedBase when base is outside
// [MinBase, MaxBase], and nil otherwise.
func CheckBase(base int) error {
	if base < MinBase || base > MaxBase {
		return fmt.Errorf("base %d: %w", base, ErrUnsupportedBase)
	}
	return nil
}
