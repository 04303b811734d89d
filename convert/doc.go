// SPDX-License-Identifier: MIT

// Package convert re-expresses a numeric.Value in another base at a
// requested precision using exact rational arithmetic.
//
// Algorithm (Convert):
//  1. Turn the value into an exact rational num/den with math/big integers:
//     m × B₁^(exponent−len(digits)+1).
//  2. Find e with B₂^e ≤ |x| < B₂^(e+1). A float estimate from bit lengths
//     seeds the search; exact big-integer comparisons settle it.
//  3. Scale by B₂^(P−1−e) and take quotient q and remainder r.
//  4. Round half to even on r/den; a carry to B₂^P bumps e.
//  5. q written in base B₂ gives exactly P digits.
//
// No floating-point value ever reaches the digits, so the result is the
// correctly rounded P-digit representation for every P up to the ceiling.
//
// The result always carries exactly P digits: an expansion that terminates
// early is padded with zeros, so Convert(v, v.Base, len(v.Digits)) == v.
//
// Errors:
//   - numeric.ErrUnsupportedBase — target base outside 2..36.
//   - ErrInvalidPrecision        — precision < 1.
//   - ErrPrecisionTooLarge       — precision above the configured ceiling.
//   - ErrExponentOutOfRange      — |exponent| above the configured ceiling.
//   - ErrDivisionDegenerate      — the source value has base < 2 (an internal
//     invariant violation; never expected from parsed values).
//   - numeric.ErrMalformedNumber — the source digits violate their base.
package convert
