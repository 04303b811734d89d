// SPDX-License-Identifier: MIT

// Package testcase holds the immutable records exchanged between the file
// collaborators (package codec), the generator and the verifier.
//
// A Request is what a reader hands over: raw tokens and integers exactly as
// they appeared in a file. Resolve turns it into a Record, parsing tokens
// into numeric.Value. A Record whose Expected is nil still needs its
// expectation computed (generation mode); one with Expected set can be
// verified. Outcome pairs a record with its per-record error so batch
// operations report failures without discarding siblings.
package testcase
