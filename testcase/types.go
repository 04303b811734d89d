// SPDX-License-Identifier: MIT
// Package: numbra/testcase
//
// types.go — Request, Record, Origin, Outcome.

package testcase

import (
	"errors"

	"github.com/katalvlaran/numbra/numeric"
)

// ErrInvalidRequest indicates a request that cannot become a Record for a
// reason other than an unparsable numeral (e.g. precision < 1, or a line a
// reader could not split into fields).
var ErrInvalidRequest = errors.New("testcase: invalid request")

// Origin names the producer of a Record.
type Origin string

// Record origins. Generator strategies run in the order listed after OriginFile.
const (
	OriginFile           Origin = "file"
	OriginRandom         Origin = "random"
	OriginEdge           Origin = "edge"
	OriginSpecial        Origin = "special"
	OriginSubnormal      Origin = "subnormal"
	OriginTranscendental Origin = "transcendental"
)

// Request is a partially populated record as read from a file.
// Zero Radix/Base/InputBase/ExpectedPrecision mean "not given"; empty
// Expected means "compute it".
type Request struct {
	Num       string
	Precision int
	Radix     int
	Base      int
	Expected  string

	// InputBase is the numeral system Num is written in (default 10).
	InputBase int
	// ExpectedPrecision tags Expected when it carries fewer digits than
	// Precision (subnormal records); zero means Precision.
	ExpectedPrecision int

	// Line is the 1-based source position, for diagnostics. Zero if unknown.
	Line int
	// Err is set by a reader that could not decode the entry; Resolve
	// reports it instead of guessing values.
	Err error
}

// Record is one test case: an input value, the precision and numeral
// system it is requested in, and (once known) the expected representation.
//
// Records are value objects: producers build them once and consumers never
// mutate them.
type Record struct {
	Input              numeric.Value
	RequestedPrecision int
	Radix              int // input layout knob; carried, never used for conversion
	Base               int // numeral system of Expected
	Expected           *numeric.Value

	Origin Origin
	// Token is the verbatim input text when the record came from a file.
	Token string
	// Label is a short free-form tag (e.g. the constant name).
	Label string
	Line  int
}

// HasExpected reports whether r carries an expected value.
func (r Record) HasExpected() bool { return r.Expected != nil }

// WithExpected returns a copy of r whose Expected is a clone of v.
func (r Record) WithExpected(v numeric.Value) Record {
	c := v.Clone()
	r.Expected = &c
	return r
}

// InputText returns the verbatim token, or the canonical rendering of Input.
func (r Record) InputText() string {
	if r.Token != "" {
		return r.Token
	}
	return r.Input.String()
}

// ExpectedText returns the canonical rendering of Expected, or "" if absent.
func (r Record) ExpectedText() string {
	if r.Expected == nil {
		return ""
	}
	return r.Expected.String()
}

// Outcome is the per-record result of a batch step: Record is meaningful
// when Err is nil.
type Outcome struct {
	Index  int
	Record Record
	Err    error
}

// Failed reports whether the outcome carries an error.
func (o Outcome) Failed() bool { return o.Err != nil }
