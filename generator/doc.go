// SPDX-License-Identifier: MIT

// Package generator produces precision test cases (testcase.Record) for
// five categories and completes partially populated records read from files.
//
// Categories are a closed strategy table, run in this fixed order when
// enabled by Config:
//
//	random         — Count values with uniformly drawn precision, exponent,
//	                 digits and sign; expected = Convert(self, Base, precision).
//	edge           — ±0, smallest/largest magnitudes at the configured
//	                 precision and exponent bounds, precision-boundary values,
//	                 and (base 10) the binary64 landmarks inside the window.
//	special        — +∞, −∞, NaN; expected equals input.
//	subnormal      — values shifted below MinExponent whose expected value
//	                 keeps only the digits above the fixed quantum.
//	transcendental — a constant (π by default) at precisions 1..IncludePi;
//	                 the input is a guarded truncation, the expected value
//	                 the correctly rounded constant.
//
// Determinism: each Generate call derives one independent RNG stream per
// strategy from the seed (WithSeed) or from a caller RNG (WithRand), so the
// same Config and seed always yield the same records, and toggling one
// category never changes another category's values.
//
// Complete resolves file requests and fills in missing expected values on a
// bounded worker pool. Per-record failures are reported in the returned
// outcomes; the batch is never aborted.
//
// Errors:
//   - ErrInvalidConfig — a Config field is out of range (wraps the cause).
//   - constant.ErrUnknownConstant — Config.Constant is not registered.
package generator
