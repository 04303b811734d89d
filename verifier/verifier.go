// SPDX-License-Identifier: MIT
// Package: numbra/verifier
//
// verifier.go — single-record verification.

package verifier

import (
	"fmt"

	"github.com/katalvlaran/numbra/numeric"
	"github.com/katalvlaran/numbra/testcase"
)

// Verifier checks records with a fixed converter. It holds no mutable state
// and is safe for concurrent use.
type Verifier struct {
	opts options
}

// New returns a Verifier configured by opts.
func New(opts ...Option) *Verifier {
	return &Verifier{opts: newOptions(opts...)}
}

var defaultVerifier = New()

// Verify is New().Verify.
func Verify(rec testcase.Record) (Result, error) {
	return defaultVerifier.Verify(rec)
}

// Verify recomputes rec's expected value from its input and compares.
// The record is not modified.
//
// Errors: ErrMissingExpected, numeric.ErrUnsupportedBase, and the
// converter's ceiling errors.
func (v *Verifier) Verify(rec testcase.Record) (Result, error) {
	if !rec.HasExpected() {
		return Result{}, fmt.Errorf("Verify line %d: %w", rec.Line, ErrMissingExpected)
	}
	exp := *rec.Expected
	if err := numeric.CheckBase(exp.Base); err != nil {
		return Result{}, fmt.Errorf("Verify line %d: expected: %w", rec.Line, err)
	}

	precision := exp.Precision
	if precision < 1 {
		precision = rec.RequestedPrecision
	}
	computed, err := v.opts.conv.Convert(rec.Input, exp.Base, precision)
	if err != nil {
		return Result{}, fmt.Errorf("Verify line %d: %w", rec.Line, err)
	}

	res := Result{Record: rec, Computed: computed}
	res.Matched, res.DiscrepancyDigits, res.Notes = compare(computed, exp)
	if !res.Matched {
		v.opts.logger.Debug("record mismatch",
			"origin", string(rec.Origin),
			"line", rec.Line,
			"expected", exp.String(),
			"computed", computed.String(),
			"notes", res.Notes)
	}
	return res, nil
}

// compare reports whether computed equals expected and, if not, the first
// divergent digit position and a note.
func compare(computed, expected numeric.Value) (bool, int, string) {
	if computed.Category.IsSpecial() || expected.Category.IsSpecial() {
		if computed.Category == expected.Category {
			return true, 0, ""
		}
		return false, 0, NoteCategoryMismatch
	}
	if (computed.Category == numeric.Zero) != (expected.Category == numeric.Zero) {
		return false, 0, NoteCategoryMismatch
	}
	if computed.Sign != expected.Sign {
		return false, 0, NoteSignMismatch
	}
	if computed.Category == numeric.Zero {
		return true, 0, ""
	}
	if computed.Exponent != expected.Exponent {
		return false, 0, NoteExponentMismatch
	}

	n := len(computed.Digits)
	if len(expected.Digits) > n {
		n = len(expected.Digits)
	}
	for i := 0; i < n; i++ {
		if digitAt(computed.Digits, i) != digitAt(expected.Digits, i) {
			return false, i, fmt.Sprintf("digit divergence at position %d", i)
		}
	}
	return true, 0, ""
}

// digitAt returns d[i], or 0 past the end.
func digitAt(d []byte, i int) byte {
	if i < len(d) {
		return d[i]
	}
	return 0
}
