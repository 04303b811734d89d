// SPDX-License-Identifier: MIT

// Package numeric defines the precision-tagged representation of a real
// number used by every other numbra package, together with its canonical
// text form.
//
// A Value is a sign, a most-significant-first digit sequence in an arbitrary
// base (2..36), and an exponent that positions the radix point immediately
// after the first digit:
//
//	value = ±d0.d1d2…dn × base^exponent
//
// Values are plain data. They never carry floating-point state, so a Value
// can describe a number to any number of significant digits.
//
// Text form:
//
//   - Parse accepts decimal tokens such as "-1.23e10", "0.5", "7E-3" and the
//     special tokens "inf", "-inf", "nan" (case-insensitive).
//   - ParseBase accepts tokens in any base 2..36. Bases above 10 use '@' as
//     the exponent marker because 'e' is a digit there.
//   - Render is the exact inverse of ParseBase for normal and zero values:
//     sign, first digit, '.', remaining digits, marker, decimal exponent.
//   - Plain writes positional (non-scientific) notation.
//
// Errors:
//
//   - ErrMalformedNumber — the token cannot be read as a numeral.
//   - ErrUnsupportedBase — base outside [MinBase, MaxBase].
package numeric
