// SPDX-License-Identifier: MIT
// Package: numbra/numeric
//
// render.go — Value → canonical and positional text.

package numeric

import (
	"fmt"
	"strconv"
	"strings"
)

// Render returns the canonical text of v:
//
//	[-]d0[.d1…dn]<marker><exponent>
//
// where marker is ExponentMarker(v.Base) and exponent is decimal. A single
// digit is written without a point ("1e0"). Zero renders as "0e0" or
// "-0e0"; specials render as "inf", "-inf", "nan".
//
// Render is the exact inverse of ParseBase(·, v.Base) for finite values.
//
// Errors: ErrUnsupportedBase; ErrMalformedNumber for a finite value whose
// digits violate the base.
func Render(v Value) (string, error) {
	if err := CheckBase(v.Base); err != nil {
		return "", err
	}
	switch v.Category {
	case Infinity:
		return "inf", nil
	case NegativeInfinity:
		return "-inf", nil
	case NaN:
		return "nan", nil
	}
	if len(v.Digits) == 0 {
		return "", fmt.Errorf("Render: finite value without digits: %w", ErrMalformedNumber)
	}

	var b strings.Builder
	b.Grow(len(v.Digits) + 16)
	if v.Sign == Negative {
		b.WriteByte('-')
	}
	for i, d := range v.Digits {
		if int(d) >= v.Base {
			return "", fmt.Errorf("Render: digit %d exceeds base %d: %w", d, v.Base, ErrMalformedNumber)
		}
		if i == 1 {
			b.WriteByte('.')
		}
		b.WriteByte(Symbol(d))
	}
	exp := v.Exponent
	if v.Category == Zero {
		exp = 0
	}
	b.WriteByte(ExponentMarker(v.Base))
	b.WriteString(strconv.Itoa(exp))
	return b.String(), nil
}

// MaxPlainExponent bounds |exponent| for Plain, which pads with that many
// zeros.
const MaxPlainExponent = 1 << 16

// Plain returns v in positional notation without an exponent, e.g.
// "0.00000123456789" or "-1230000". Trailing fractional zeros are dropped
// but at least one fractional digit is kept ("12.0").
//
// Errors: as Render; ErrPlainRange when a finite non-zero value has
// |exponent| > MaxPlainExponent.
func Plain(v Value) (string, error) {
	if err := CheckBase(v.Base); err != nil {
		return "", err
	}
	if v.Category.IsFinite() && v.Category != Zero && (v.Exponent > MaxPlainExponent || v.Exponent < -MaxPlainExponent) {
		return "", fmt.Errorf("Plain: exponent %d: %w", v.Exponent, ErrPlainRange)
	}
	if v.Category.IsSpecial() {
		return Render(v)
	}
	if v.Category == Zero {
		if v.Sign == Negative {
			return "-0.0", nil
		}
		return "0.0", nil
	}
	if len(v.Digits) == 0 {
		return "", fmt.Errorf("Plain: finite value without digits: %w", ErrMalformedNumber)
	}

	sym := v.Symbols()
	var intPart, fracPart string
	switch {
	case v.Exponent < 0:
		intPart = "0"
		fracPart = strings.Repeat("0", -v.Exponent-1) + sym
	case v.Exponent+1 >= len(sym):
		intPart = sym + strings.Repeat("0", v.Exponent+1-len(sym))
	default:
		intPart = sym[:v.Exponent+1]
		fracPart = sym[v.Exponent+1:]
	}
	fracPart = strings.TrimRight(fracPart, "0")
	if fracPart == "" {
		fracPart = "0"
	}

	out := intPart + "." + fracPart
	if v.Sign == Negative {
		out = "-" + out
	}
	return out, nil
}
