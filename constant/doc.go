// SPDX-License-Identifier: MIT

// Package constant produces digits of irrational constants on unbounded
// integers, for use as exact expectations in precision tests.
//
// Each Constant computes ⌊c · scale⌋ (up to a one-unit error that a 64-bit
// guard band absorbs) using only math/big integer arithmetic:
//
//   - Pi    — Machin's formula π = 16·atan(1/5) − 4·atan(1/239).
//   - E     — the factorial series e = Σ 1/n!.
//   - Sqrt2 — the exact integer square root of 2·scale².
//
// Approximate turns that integer into a numeric.Value truncated to the
// requested number of digits in any base 2..36. Truncation (not rounding)
// keeps later rounding by the convert package faithful: rounding a
// truncation with g ≥ 1 extra digits equals rounding the exact constant
// unless the dropped tail is exactly a half, which does not happen within
// the guard digits used by the generator for the constants provided here.
package constant
