// SPDX-License-Identifier: MIT
// Package: numbra/verifier
//
// result.go — per-record verification results and batch summaries.

package verifier

import (
	"github.com/katalvlaran/numbra/numeric"
	"github.com/katalvlaran/numbra/testcase"
)

// Notes written into Result.Notes.
const (
	NoteSignMismatch     = "sign mismatch"
	NoteExponentMismatch = "exponent mismatch"
	NoteCategoryMismatch = "category mismatch"
)

// Result is the outcome of checking one record. Record is the verified
// record as given; Computed is what the converter produced from its input.
type Result struct {
	Record            testcase.Record
	Computed          numeric.Value
	Matched           bool
	DiscrepancyDigits int
	Notes             string
}

// Outcome is one slot of a batch: Result is meaningful when Err is nil.
type Outcome struct {
	Index  int
	Result Result
	Err    error
}

// Failed reports whether the record could not be verified at all.
func (o Outcome) Failed() bool { return o.Err != nil }

// Summary counts batch outcomes.
type Summary struct {
	Total      int
	Matched    int
	Mismatched int
	Failed     int
}

// OK reports whether every record was verified and matched.
func (s Summary) OK() bool { return s.Mismatched == 0 && s.Failed == 0 }

// Summarize tallies outcomes.
func Summarize(outcomes []Outcome) Summary {
	s := Summary{Total: len(outcomes)}
	for _, o := range outcomes {
		switch {
		case o.Failed():
			s.Failed++
		case o.Result.Matched:
			s.Matched++
		default:
			s.Mismatched++
		}
	}
	return s
}
