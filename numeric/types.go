// SPDX-License-Identifier: MIT
// Package: numbra/numeric
//
// types.go — Value, Sign, Category and the constructors that keep their
// invariants.
//
// Invariants (enforced by constructors and Validate):
//   • Digits hold digit values in [0, Base), most significant first.
//   • Normal/Subnormal values have a non-zero leading digit.
//   • Zero values have Digits == [0] and Exponent == 0.
//   • Infinity, NegativeInfinity and NaN have empty Digits; Exponent unused.
//   • Precision ≥ 1 for every category, specials included.

package numeric

import (
	"fmt"
	"math/big"
)

// Base bounds and defaults.
const (
	MinBase     = 2  // smallest positional base
	MaxBase     = 36 // 0-9 then a-z
	DefaultBase = 10 // base used by Parse
)

// Sign of a Value. The zero value is Positive.
type Sign int8

const (
	// Positive sign (also used for +0 and NaN).
	Positive Sign = iota
	// Negative sign.
	Negative
)

// String returns "+" or "-".
func (s Sign) String() string {
	if s == Negative {
		return "-"
	}
	return "+"
}

// Category tags the kind of number a Value describes.
type Category int

const (
	// Normal is a finite non-zero number.
	Normal Category = iota
	// Zero is ±0.
	Zero
	// Infinity is +∞.
	Infinity
	// NegativeInfinity is −∞.
	NegativeInfinity
	// NaN is not-a-number.
	NaN
	// Subnormal is a finite non-zero number positioned at or below a
	// configured minimum exponent. Arithmetically it behaves like Normal.
	Subnormal
)

var categoryNames = [...]string{
	Normal:           "normal",
	Zero:             "zero",
	Infinity:         "infinity",
	NegativeInfinity: "negative-infinity",
	NaN:              "nan",
	Subnormal:        "subnormal",
}

// String returns the lowercase category name.
func (c Category) String() string {
	if c < 0 || int(c) >= len(categoryNames) {
		return fmt.Sprintf("category(%d)", int(c))
	}
	return categoryNames[c]
}

// IsSpecial reports whether c is one of the non-finite categories.
func (c Category) IsSpecial() bool {
	return c == Infinity || c == NegativeInfinity || c == NaN
}

// IsFinite reports whether c carries digits (Normal, Subnormal, Zero).
func (c Category) IsFinite() bool {
	return c == Normal || c == Subnormal || c == Zero
}

// Value is a precision-tagged representation of a real number in a given base.
//
//	value = ±Digits[0].Digits[1]… × Base^Exponent
//
// Value is a plain value type; methods never mutate the receiver and
// Clone produces an independent Digits slice.
type Value struct {
	Sign      Sign
	Digits    []byte // digit values in [0, Base)
	Exponent  int
	Base      int
	Precision int // significant digits the value is meant to carry
	Category  Category
}

// New builds a finite Value from digit values. Leading zeros are stripped
// (adjusting the exponent); an all-zero sequence yields a Zero value.
// Precision is set to the number of digits kept (at least 1).
//
// Errors: ErrUnsupportedBase, ErrMalformedNumber (empty digits or a digit ≥ base).
func New(sign Sign, digits []byte, exponent, base int) (Value, error) {
	if err := CheckBase(base); err != nil {
		return Value{}, err
	}
	if len(digits) == 0 {
		return Value{}, fmt.Errorf("New: empty digit sequence: %w", ErrMalformedNumber)
	}
	for i, d := range digits {
		if int(d) >= base {
			return Value{}, fmt.Errorf("New: digit %d at position %d exceeds base %d: %w", d, i, base, ErrMalformedNumber)
		}
	}
	lz := 0
	for lz < len(digits) && digits[lz] == 0 {
		lz++
	}
	if lz == len(digits) {
		return ZeroValue(sign, base, 1), nil
	}
	kept := make([]byte, len(digits)-lz)
	copy(kept, digits[lz:])
	return Value{
		Sign:      sign,
		Digits:    kept,
		Exponent:  exponent - lz,
		Base:      base,
		Precision: len(kept),
		Category:  Normal,
	}, nil
}

// ZeroValue returns ±0 in the given base. Precision below 1 is raised to 1.
func ZeroValue(sign Sign, base, precision int) Value {
	if precision < 1 {
		precision = 1
	}
	return Value{Sign: sign, Digits: []byte{0}, Base: base, Precision: precision, Category: Zero}
}

// Inf returns +∞ for Positive and −∞ for Negative.
func Inf(sign Sign, base, precision int) Value {
	if precision < 1 {
		precision = 1
	}
	c := Infinity
	if sign == Negative {
		c = NegativeInfinity
	}
	return Value{Sign: sign, Base: base, Precision: precision, Category: c}
}

// NaNValue returns a not-a-number Value.
func NaNValue(base, precision int) Value {
	if precision < 1 {
		precision = 1
	}
	return Value{Sign: Positive, Base: base, Precision: precision, Category: NaN}
}

// FromInt returns the finite Value m × base^scale with sign taken from m.
// Digits are the base representation of |m|; Precision is their count.
//
// Errors: ErrUnsupportedBase.
func FromInt(m *big.Int, scale, base int) (Value, error) {
	if err := CheckBase(base); err != nil {
		return Value{}, err
	}
	sign := Positive
	if m.Sign() < 0 {
		sign = Negative
	}
	if m.Sign() == 0 {
		return ZeroValue(sign, base, 1), nil
	}
	text := new(big.Int).Abs(m).Text(base)
	digits := make([]byte, len(text))
	for i := 0; i < len(text); i++ {
		digits[i] = byte(digitValue(text[i]))
	}
	return Value{
		Sign:      sign,
		Digits:    digits,
		Exponent:  scale + len(digits) - 1,
		Base:      base,
		Precision: len(digits),
		Category:  Normal,
	}, nil
}

// IsSpecial reports whether v is ±∞ or NaN.
func (v Value) IsSpecial() bool { return v.Category.IsSpecial() }

// IsZero reports whether v is ±0.
func (v Value) IsZero() bool { return v.Category == Zero }

// Clone returns a deep copy of v.
func (v Value) Clone() Value {
	out := v
	if v.Digits != nil {
		out.Digits = append([]byte(nil), v.Digits...)
	}
	return out
}

// Negate returns v with its sign flipped. ±∞ swap categories; NaN is unchanged.
func (v Value) Negate() Value {
	out := v.Clone()
	switch v.Category {
	case NaN:
		return out
	case Infinity:
		out.Category = NegativeInfinity
	case NegativeInfinity:
		out.Category = Infinity
	}
	if v.Sign == Negative {
		out.Sign = Positive
	} else {
		out.Sign = Negative
	}
	return out
}

// WithPrecision returns a copy of v tagged with precision p (p < 1 becomes 1).
// Digits are not touched; use the convert package to round.
func (v Value) WithPrecision(p int) Value {
	out := v.Clone()
	if p < 1 {
		p = 1
	}
	out.Precision = p
	return out
}

// Equal reports whether v and o have the same sign, category, base,
// exponent and digits. Precision is a tag and is not compared.
// NaN equals NaN here: this is structural equality, not IEEE comparison.
func (v Value) Equal(o Value) bool {
	if v.Category.IsSpecial() || o.Category.IsSpecial() {
		return v.Category == o.Category && v.Base == o.Base
	}
	if v.Sign != o.Sign || v.Base != o.Base || v.Exponent != o.Exponent {
		return false
	}
	if (v.Category == Zero) != (o.Category == Zero) {
		return false
	}
	if len(v.Digits) != len(o.Digits) {
		return false
	}
	for i := range v.Digits {
		if v.Digits[i] != o.Digits[i] {
			return false
		}
	}
	return true
}

// Validate checks the invariants listed at the top of this file.
//
// Errors: ErrUnsupportedBase, ErrMalformedNumber.
func (v Value) Validate() error {
	if err := CheckBase(v.Base); err != nil {
		return err
	}
	if v.Precision < 1 {
		return fmt.Errorf("precision %d: %w", v.Precision, ErrMalformedNumber)
	}
	switch v.Category {
	case Infinity, NegativeInfinity, NaN:
		if len(v.Digits) != 0 {
			return fmt.Errorf("%s with digits: %w", v.Category, ErrMalformedNumber)
		}
		return nil
	case Zero:
		if len(v.Digits) != 1 || v.Digits[0] != 0 || v.Exponent != 0 {
			return fmt.Errorf("zero must be [0]e0: %w", ErrMalformedNumber)
		}
		return nil
	case Normal, Subnormal:
		if len(v.Digits) == 0 {
			return fmt.Errorf("%s without digits: %w", v.Category, ErrMalformedNumber)
		}
		if v.Digits[0] == 0 {
			return fmt.Errorf("leading zero digit: %w", ErrMalformedNumber)
		}
		for i, d := range v.Digits {
			if int(d) >= v.Base {
				return fmt.Errorf("digit %d at position %d exceeds base %d: %w", d, i, v.Base, ErrMalformedNumber)
			}
		}
		return nil
	default:
		return fmt.Errorf("unknown category %d: %w", int(v.Category), ErrMalformedNumber)
	}
}

// String renders v in canonical form; on an invalid base it falls back
// to a diagnostic string instead of failing.
func (v Value) String() string {
	s, err := Render(v)
	if err != nil {
		return fmt.Sprintf("<invalid: %v>", err)
	}
	return s
}
