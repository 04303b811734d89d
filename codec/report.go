// SPDX-License-Identifier: MIT
// Package: numbra/codec
//
// report.go — human-readable verification report.

package codec

import (
	"bufio"
	"fmt"
	"io"

	"github.com/katalvlaran/numbra/verifier"
)

// WriteReport prints one block per outcome and a closing summary:
//
//	PASS: <input>                  (only when verbose)
//	FAIL: <input>
//	Expected: <expected>
//	Actual: <computed>
//	Notes: <notes>
//	ERROR: record <n>: <err>
//
// and returns the summary it printed.
func WriteReport(w io.Writer, outcomes []verifier.Outcome, verbose bool) (verifier.Summary, error) {
	bw := bufio.NewWriter(w)
	for _, o := range outcomes {
		if o.Failed() {
			fmt.Fprintf(bw, "ERROR: record %d: %v\n", o.Index+1, o.Err)
			continue
		}
		res := o.Result
		if res.Matched {
			if verbose {
				fmt.Fprintf(bw, "PASS: %s\n", res.Record.InputText())
			}
			continue
		}
		fmt.Fprintf(bw, "FAIL: %s\n", res.Record.InputText())
		fmt.Fprintf(bw, "Expected: %s\n", res.Record.ExpectedText())
		fmt.Fprintf(bw, "Actual: %s\n", res.Computed)
		fmt.Fprintf(bw, "Notes: %s\n", res.Notes)
	}
	s := verifier.Summarize(outcomes)
	fmt.Fprintf(bw, "verified %d record(s): %d passed, %d failed, %d error(s)\n",
		s.Total, s.Matched, s.Mismatched, s.Failed)
	return s, bw.Flush()
}
