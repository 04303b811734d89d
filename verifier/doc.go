// SPDX-License-Identifier: MIT

// Package verifier checks test-case records: it recomputes the expected
// representation from a record's input and compares it, digit by digit,
// with the expected value the record carries.
//
// Comparison rules:
//   - The computed value is Convert(Input, Expected.Base, Expected.Precision).
//   - Specials (+∞, −∞, NaN) match iff the categories are identical; the
//     requested precision is irrelevant for them.
//   - Finite values match iff sign, exponent and every digit agree. Expected
//     digits missing past the end count as zeros.
//   - On mismatch, DiscrepancyDigits is the 0-based index of the first
//     differing digit (0 for sign, exponent or category disagreement) and
//     Notes says which check failed.
//
// A mismatch is a normal outcome, not an error. Verify only fails for a
// record that has no expected value (ErrMissingExpected), an invalid base
// (numeric.ErrUnsupportedBase), or a converter ceiling.
//
// VerifyBatch and VerifyRequests fan records out over a bounded errgroup
// and report one Outcome per record; one failure never aborts the batch.
package verifier
