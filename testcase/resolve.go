// SPDX-License-Identifier: MIT
// Package: numbra/testcase
//
// resolve.go — Request → Record.

package testcase

import (
	"fmt"

	"github.com/katalvlaran/numbra/numeric"
)

// Resolve parses req into a Record with OriginFile.
//
// Num is read in InputBase (default 10); Base (default 10) selects the
// numeral system the expected value is written and compared in. An Expected
// token is parsed in that base and tagged with ExpectedPrecision, or with
// Precision when none is given; the verifier rounds to that tag.
//
// Errors: req.Err as-is; ErrInvalidRequest for precision < 1;
// numeric.ErrUnsupportedBase; numeric.ErrMalformedNumber for bad tokens.
func Resolve(req Request) (Record, error) {
	if req.Err != nil {
		return Record{}, req.Err
	}
	if req.Precision < 1 {
		return Record{}, fmt.Errorf("Resolve line %d: precision %d: %w", req.Line, req.Precision, ErrInvalidRequest)
	}
	if req.ExpectedPrecision < 0 {
		return Record{}, fmt.Errorf("Resolve line %d: expected precision %d: %w", req.Line, req.ExpectedPrecision, ErrInvalidRequest)
	}
	base, err := baseOrDefault(req.Base)
	if err != nil {
		return Record{}, fmt.Errorf("Resolve line %d: %w", req.Line, err)
	}
	inputBase, err := baseOrDefault(req.InputBase)
	if err != nil {
		return Record{}, fmt.Errorf("Resolve line %d: input: %w", req.Line, err)
	}

	in, err := numeric.ParseBase(req.Num, inputBase)
	if err != nil {
		return Record{}, fmt.Errorf("Resolve line %d: input: %w", req.Line, err)
	}

	rec := Record{
		Input:              in,
		RequestedPrecision: req.Precision,
		Radix:              req.Radix,
		Base:               base,
		Origin:             OriginFile,
		Token:              req.Num,
		Line:               req.Line,
	}
	if req.Expected == "" {
		return rec, nil
	}

	exp, err := numeric.ParseBase(req.Expected, base)
	if err != nil {
		return Record{}, fmt.Errorf("Resolve line %d: expected: %w", req.Line, err)
	}
	tag := req.Precision
	if req.ExpectedPrecision > 0 {
		tag = req.ExpectedPrecision
	}
	return rec.WithExpected(exp.WithPrecision(tag)), nil
}

func baseOrDefault(base int) (int, error) {
	if base == 0 {
		return numeric.DefaultBase, nil
	}
	if err := numeric.CheckBase(base); err != nil {
		return 0, err
	}
	return base, nil
}
