// SPDX-License-Identifier: MIT
// Package: numbra/numeric
//
// parse.go — textual numeral → Value.

package numeric

import (
	"math"
	"strconv"
	"strings"
)

// Parse reads a decimal token such as "-1.23e10", ".5", "7E-3", "inf",
// "-inf" or "nan". It is ParseBase(token, DefaultBase).
func Parse(token string) (Value, error) {
	return ParseBase(token, DefaultBase)
}

// ParseBase reads a token written in base (2..36).
//
// Grammar (surrounding whitespace ignored):
//
//	token    = [sign] mantissa [marker [sign] decimal]
//	mantissa = digits ["." [digits]] | "." digits
//	marker   = 'e' | 'E'   (base ≤ 10)
//	         | '@'         (base > 10)
//
// The exponent is always written in decimal. Leading zeros are dropped,
// trailing zeros are kept as significant digits; Precision is the number
// of significant digits in the token. An all-zero mantissa yields a Zero
// value that keeps the parsed sign.
//
// Errors: ErrUnsupportedBase; ErrMalformedNumber for characters outside
// the base alphabet, more than one marker or point, an empty mantissa
// or exponent, or an exponent beyond the int32 range.
func ParseBase(token string, base int) (Value, error) {
	if err := CheckBase(base); err != nil {
		return Value{}, err
	}
	s := strings.TrimSpace(token)
	if s == "" {
		return Value{}, malformedf(token, "empty token")
	}
	if v, ok := parseSpecial(s, base); ok {
		return v, nil
	}

	sign := Positive
	switch s[0] {
	case '-':
		sign = Negative
		s = s[1:]
	case '+':
		s = s[1:]
	}

	mantissa, expText, hasExp, err := splitExponent(token, s, base)
	if err != nil {
		return Value{}, err
	}

	exp := 0
	if hasExp {
		if exp, err = parseExponent(token, expText); err != nil {
			return Value{}, err
		}
	}

	intPart, fracPart, err := splitPoint(token, mantissa)
	if err != nil {
		return Value{}, err
	}
	if intPart == "" && fracPart == "" {
		return Value{}, malformedf(token, "no mantissa digits")
	}

	all := intPart + fracPart
	digits := make([]byte, len(all))
	for i := 0; i < len(all); i++ {
		d := digitValue(all[i])
		if d < 0 || d >= base {
			return Value{}, malformedf(token, "invalid digit %q for base %d", all[i], base)
		}
		digits[i] = byte(d)
	}

	lz := 0
	for lz < len(digits) && digits[lz] == 0 {
		lz++
	}
	if lz == len(digits) {
		return ZeroValue(sign, base, 1), nil
	}

	kept := digits[lz:]
	return Value{
		Sign:      sign,
		Digits:    kept,
		Exponent:  exp + len(intPart) - lz - 1,
		Base:      base,
		Precision: len(kept),
		Category:  Normal,
	}, nil
}

// parseSpecial recognizes inf/-inf/+inf/infinity/nan, case-insensitive.
func parseSpecial(s string, base int) (Value, bool) {
	switch strings.ToLower(s) {
	case "inf", "+inf", "infinity", "+infinity":
		return Inf(Positive, base, 1), true
	case "-inf", "-infinity":
		return Inf(Negative, base, 1), true
	case "nan", "+nan", "-nan":
		return NaNValue(base, 1), true
	}
	return Value{}, false
}

// splitExponent separates mantissa and exponent text around the single
// allowed marker for base.
func splitExponent(token, s string, base int) (mantissa, exp string, ok bool, err error) {
	var markers string
	if base > 10 {
		markers = "@"
	} else {
		markers = "eE"
	}
	idx := -1
	for i := 0; i < len(s); i++ {
		if strings.IndexByte(markers, s[i]) < 0 {
			continue
		}
		if idx >= 0 {
			return "", "", false, malformedf(token, "more than one exponent marker")
		}
		idx = i
	}
	if idx < 0 {
		return s, "", false, nil
	}
	return s[:idx], s[idx+1:], true, nil
}

// splitPoint separates integer and fractional digits around at most one '.'.
func splitPoint(token, mantissa string) (intPart, fracPart string, err error) {
	first := strings.IndexByte(mantissa, '.')
	if first < 0 {
		return mantissa, "", nil
	}
	if strings.IndexByte(mantissa[first+1:], '.') >= 0 {
		return "", "", malformedf(token, "more than one decimal point")
	}
	return mantissa[:first], mantissa[first+1:], nil
}

// parseExponent reads a signed decimal exponent limited to the int32 range.
func parseExponent(token, text string) (int, error) {
	if text == "" || text == "+" || text == "-" {
		return 0, malformedf(token, "missing exponent digits")
	}
	body := text
	if body[0] == '+' || body[0] == '-' {
		body = body[1:]
	}
	for i := 0; i < len(body); i++ {
		if body[i] < '0' || body[i] > '9' {
			return 0, malformedf(token, "invalid exponent character %q", body[i])
		}
	}
	n, err := strconv.ParseInt(text, 10, 32)
	if err != nil {
		return 0, malformedf(token, "exponent out of range")
	}
	if n > math.MaxInt32/2 || n < math.MinInt32/2 {
		return 0, malformedf(token, "exponent out of range")
	}
	return int(n), nil
}
