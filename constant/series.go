// SPDX-License-Identifier: MIT
// Package: numbra/constant
//
// series.go — integer digit procedures for π, e and √2.

package constant

import "math/big"

// Pi is π via Machin's formula.
type Pi struct{}

// Name returns "pi".
func (Pi) Name() string { return "pi" }

// Scaled returns ⌊π · scale⌋ within a few units.
//
// Complexity: O(k) big divisions with k ≈ log(scale)/log(25) terms.
func (Pi) Scaled(scale *big.Int) *big.Int {
	a := arctanInv(5, scale)
	a.Mul(a, big.NewInt(16))
	b := arctanInv(239, scale)
	b.Mul(b, big.NewInt(4))
	return a.Sub(a, b)
}

// arctanInv returns ⌊atan(1/x) · scale⌋ within one unit per term:
//
//	atan(1/x) = Σ (−1)^n / ((2n+1)·x^(2n+1))
func arctanInv(x int64, scale *big.Int) *big.Int {
	xx := big.NewInt(x * x)
	power := new(big.Int).Quo(scale, big.NewInt(x)) // scale / x^(2n+1)
	sum := new(big.Int).Set(power)
	term := new(big.Int)
	for n := int64(1); ; n++ {
		power.Quo(power, xx)
		if power.Sign() == 0 {
			break
		}
		term.Quo(power, big.NewInt(2*n+1))
		if n%2 == 1 {
			sum.Sub(sum, term)
		} else {
			sum.Add(sum, term)
		}
	}
	return sum
}

// E is Euler's number.
type E struct{}

// Name returns "e".
func (E) Name() string { return "e" }

// Scaled returns ⌊e · scale⌋ within a few units.
func (E) Scaled(scale *big.Int) *big.Int {
	sum := new(big.Int).Set(scale)
	term := new(big.Int).Set(scale)
	for n := int64(1); ; n++ {
		term.Quo(term, big.NewInt(n))
		if term.Sign() == 0 {
			break
		}
		sum.Add(sum, term)
	}
	return sum
}

// Sqrt2 is √2.
type Sqrt2 struct{}

// Name returns "sqrt2".
func (Sqrt2) Name() string { return "sqrt2" }

// Scaled returns ⌊√2 · scale⌋ exactly.
func (Sqrt2) Scaled(scale *big.Int) *big.Int {
	sq := new(big.Int).Mul(scale, scale)
	sq.Lsh(sq, 1)
	return sq.Sqrt(sq)
}
