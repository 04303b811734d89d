// SPDX-License-Identifier: MIT
// Package: numbra/numeric
//
// digits.go — digit symbol alphabet shared by Parse, Render and FromInt.

package numeric

const symbols = "0123456789abcdefghijklmnopqrstuvwxyz"

// Symbol returns the lowercase symbol for digit value d (0..35).
// Callers guarantee d < MaxBase.
func Symbol(d byte) byte { return symbols[d] }

// digitValue maps '0'-'9', 'a'-'z', 'A'-'Z' to 0..35 and anything else to -1.
func digitValue(c byte) int {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0')
	case c >= 'a' && c <= 'z':
		return int(c-'a') + 10
	case c >= 'A' && c <= 'Z':
		return int(c-'A') + 10
	default:
		return -1
	}
}

// ExponentMarker returns the exponent marker used for base: 'e' up to
// base 10, '@' above (where 'e' is itself a digit).
func ExponentMarker(base int) byte {
	if base > 10 {
		return '@'
	}
	return 'e'
}

// Symbols renders v.Digits as symbol text without sign, point or exponent.
func (v Value) Symbols() string {
	buf := make([]byte, len(v.Digits))
	for i, d := range v.Digits {
		buf[i] = Symbol(d)
	}
	return string(buf)
}
