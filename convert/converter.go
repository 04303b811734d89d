// SPDX-License-Identifier: MIT
// Package: numbra/convert
//
// converter.go — exact base/precision conversion of numeric.Value.

package convert

import (
	"fmt"
	"math"
	"math/big"

	"github.com/katalvlaran/numbra/numeric"
)

// Converter converts values between bases under fixed ceilings.
// A Converter is immutable and safe for concurrent use.
type Converter struct {
	cfg config
}

// New returns a Converter with default ceilings overridden by opts.
func New(opts ...Option) *Converter {
	return &Converter{cfg: newConfig(opts...)}
}

var defaultConverter = New()

// Default returns the shared Converter with default ceilings.
func Default() *Converter { return defaultConverter }

// PrecisionCeiling returns the largest precision c accepts.
func (c *Converter) PrecisionCeiling() int { return c.cfg.precisionCeiling }

// ExponentCeiling returns the largest |exponent| c accepts.
func (c *Converter) ExponentCeiling() int { return c.cfg.exponentCeiling }

// Convert is Default().Convert.
func Convert(v numeric.Value, base, precision int) (numeric.Value, error) {
	return defaultConverter.Convert(v, base, precision)
}

// Convert returns v expressed in base with exactly precision significant
// digits, rounded half to even. Special values pass through with the new
// base and precision tag; zero stays [0]e0 with its sign. A Subnormal
// source keeps its category.
//
// Complexity: O(M(n)·log) big-integer work where n ≈ precision + |exponent|
// digits; the ceilings bound n.
func (c *Converter) Convert(v numeric.Value, base, precision int) (numeric.Value, error) {
	if err := numeric.CheckBase(base); err != nil {
		return numeric.Value{}, fmt.Errorf("Convert: %w", err)
	}
	if err := c.checkPrecision(precision); err != nil {
		return numeric.Value{}, err
	}

	switch v.Category {
	case numeric.Infinity, numeric.NegativeInfinity:
		return numeric.Inf(v.Sign, base, precision), nil
	case numeric.NaN:
		return numeric.NaNValue(base, precision), nil
	case numeric.Zero:
		return numeric.ZeroValue(v.Sign, base, precision), nil
	}

	num, den, err := c.ratio(v)
	if err != nil {
		return numeric.Value{}, err
	}
	if num.Sign() == 0 {
		return numeric.ZeroValue(v.Sign, base, precision), nil
	}

	digits, exp := roundDigits(num, den, base, precision)

	out := numeric.Value{
		Sign:      v.Sign,
		Digits:    digits,
		Exponent:  exp,
		Base:      base,
		Precision: precision,
		Category:  numeric.Normal,
	}
	if v.Category == numeric.Subnormal {
		out.Category = numeric.Subnormal
	}
	return out, nil
}

func (c *Converter) checkPrecision(precision int) error {
	if precision < 1 {
		return fmt.Errorf("Convert: precision %d: %w", precision, ErrInvalidPrecision)
	}
	if precision > c.cfg.precisionCeiling {
		return fmt.Errorf("Convert: precision %d > %d: %w", precision, c.cfg.precisionCeiling, ErrPrecisionTooLarge)
	}
	return nil
}

// ratio returns |v| as num/den with den > 0.
func (c *Converter) ratio(v numeric.Value) (num, den *big.Int, err error) {
	if v.Base < numeric.MinBase {
		return nil, nil, fmt.Errorf("Convert: source base %d: %w", v.Base, ErrDivisionDegenerate)
	}
	if v.Base > numeric.MaxBase {
		return nil, nil, fmt.Errorf("Convert: source base %d: %w", v.Base, numeric.ErrUnsupportedBase)
	}
	if len(v.Digits) == 0 {
		return nil, nil, fmt.Errorf("Convert: finite value without digits: %w", numeric.ErrMalformedNumber)
	}
	if v.Exponent > c.cfg.exponentCeiling || v.Exponent < -c.cfg.exponentCeiling {
		return nil, nil, fmt.Errorf("Convert: exponent %d: %w", v.Exponent, ErrExponentOutOfRange)
	}

	b := big.NewInt(int64(v.Base))
	m := new(big.Int)
	for i, d := range v.Digits {
		if int(d) >= v.Base {
			return nil, nil, fmt.Errorf("Convert: digit %d at position %d exceeds base %d: %w", d, i, v.Base, numeric.ErrMalformedNumber)
		}
		m.Mul(m, b)
		m.Add(m, big.NewInt(int64(d)))
	}

	// value = m × B^(exponent − (n−1))
	shift := v.Exponent - (len(v.Digits) - 1)
	den = big.NewInt(1)
	if shift >= 0 {
		m.Mul(m, pow(b, shift))
	} else {
		den = pow(b, -shift)
	}
	if den.Sign() == 0 {
		return nil, nil, fmt.Errorf("Convert: zero denominator: %w", ErrDivisionDegenerate)
	}
	return m, den, nil
}

// roundDigits returns the precision most significant base digits of
// num/den (num, den > 0) rounded half to even, and the exponent of the first.
func roundDigits(num, den *big.Int, base, precision int) ([]byte, int) {
	b := big.NewInt(int64(base))
	e := leadingExponent(num, den, b, base)

	// q, r = num·B^(P−1−e) divmod den (moving negative powers to den).
	s := precision - 1 - e
	n := new(big.Int).Set(num)
	d := new(big.Int).Set(den)
	if s >= 0 {
		n.Mul(n, pow(b, s))
	} else {
		d.Mul(d, pow(b, -s))
	}
	q, r := new(big.Int).QuoRem(n, d, new(big.Int))

	// Round half to even.
	r.Lsh(r, 1)
	switch r.Cmp(d) {
	case 1:
		q.Add(q, bigOne)
	case 0:
		if q.Bit(0) == 1 {
			q.Add(q, bigOne)
		}
	}

	// Carry out of the top digit: B^P → B^(P−1), one position up.
	if q.Cmp(pow(b, precision)) == 0 {
		q.Quo(q, b)
		e++
	}

	text := q.Text(base)
	digits := make([]byte, len(text))
	for i := 0; i < len(text); i++ {
		digits[i] = digitOf(text[i])
	}
	return digits, e
}

// leadingExponent returns e with B^e ≤ num/den < B^(e+1).
func leadingExponent(num, den, b *big.Int, base int) int {
	bits := num.BitLen() - den.BitLen()
	e := int(math.Floor(float64(bits) / math.Log2(float64(base))))
	for !atLeast(num, den, b, e) {
		e--
	}
	for atLeast(num, den, b, e+1) {
		e++
	}
	return e
}

// atLeast reports num/den ≥ B^e.
func atLeast(num, den, b *big.Int, e int) bool {
	if e >= 0 {
		rhs := new(big.Int).Mul(den, pow(b, e))
		return num.Cmp(rhs) >= 0
	}
	lhs := new(big.Int).Mul(num, pow(b, -e))
	return lhs.Cmp(den) >= 0
}

var bigOne = big.NewInt(1)

func pow(b *big.Int, e int) *big.Int {
	return new(big.Int).Exp(b, big.NewInt(int64(e)), nil)
}

func digitOf(c byte) byte {
	if c >= '0' && c <= '9' {
		return c - '0'
	}
	return c - 'a' + 10
}
