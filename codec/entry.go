// SPDX-License-Identifier: MIT
// Package: numbra/codec
//
// entry.go — the flat record shape shared by every file format.

package codec

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/katalvlaran/numbra/numeric"
	"github.com/katalvlaran/numbra/testcase"
)

// Entry is one test case as written to a file. Zero integer fields are
// omitted.
//
// InputBase names the numeral system of NumStr when it is not decimal.
// ExpectedPrecision is the precision Expected was rounded to when it
// differs from Precision (subnormal records).
type Entry struct {
	NumStr            string `json:"num_str" toml:"num_str" yaml:"num_str"`
	Precision         int    `json:"precision" toml:"precision" yaml:"precision"`
	Expected          string `json:"expected,omitempty" toml:"expected,omitempty" yaml:"expected,omitempty"`
	Radix             int    `json:"radix,omitempty" toml:"radix,omitempty" yaml:"radix,omitempty"`
	Base              int    `json:"base,omitempty" toml:"base,omitempty" yaml:"base,omitempty"`
	InputBase         int    `json:"input_base,omitempty" toml:"input_base,omitempty" yaml:"input_base,omitempty"`
	ExpectedPrecision int    `json:"expected_precision,omitempty" toml:"expected_precision,omitempty" yaml:"expected_precision,omitempty"`
}

// EntryFromRecord flattens rec with the expected value written in notation
// n. Base is kept only when it is not the default or a radix is present, so
// plain decimal runs stay terse.
func EntryFromRecord(rec testcase.Record, n Notation) Entry {
	e := Entry{
		NumStr:    rec.InputText(),
		Precision: rec.RequestedPrecision,
		Expected:  n.expected(rec),
		Radix:     rec.Radix,
	}
	if rec.Base != numeric.DefaultBase || rec.Radix != 0 {
		e.Base = rec.Base
	}
	if rec.Input.Base != 0 && rec.Input.Base != numeric.DefaultBase {
		e.InputBase = rec.Input.Base
	}
	if rec.Expected != nil && rec.Expected.Precision != rec.RequestedPrecision {
		e.ExpectedPrecision = rec.Expected.Precision
	}
	return e
}

// EntriesFromRecords maps EntryFromRecord over recs.
func EntriesFromRecords(recs []testcase.Record, n Notation) []Entry {
	out := make([]Entry, len(recs))
	for i, r := range recs {
		out[i] = EntryFromRecord(r, n)
	}
	return out
}

// inEntry is the decoding shape: it also accepts "num" for the input and
// bare numbers where strings are expected.
type inEntry struct {
	NumStr    token `json:"num_str" toml:"num_str" yaml:"num_str"`
	Num       token `json:"num" toml:"num" yaml:"num"`
	Precision int   `json:"precision" toml:"precision" yaml:"precision"`
	Expected  token `json:"expected" toml:"expected" yaml:"expected"`
	Radix     int   `json:"radix" toml:"radix" yaml:"radix"`
	Base      int   `json:"base" toml:"base" yaml:"base"`

	InputBase         int `json:"input_base" toml:"input_base" yaml:"input_base"`
	ExpectedPrecision int `json:"expected_precision" toml:"expected_precision" yaml:"expected_precision"`
}

func (e inEntry) request(line int) testcase.Request {
	num := e.NumStr
	if num == "" {
		num = e.Num
	}
	req := testcase.Request{
		Num:       strings.TrimSpace(string(num)),
		Precision: e.Precision,
		Radix:     e.Radix,
		Base:      e.Base,
		Expected:  strings.TrimSpace(string(e.Expected)),
		Line:      line,

		InputBase:         e.InputBase,
		ExpectedPrecision: e.ExpectedPrecision,
	}
	if req.Num == "" {
		req.Err = badRecordf(line, "missing num_str")
	}
	return req
}

// token is a numeral that may be written as a JSON string or number.
type token string

func (t *token) UnmarshalJSON(b []byte) error {
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*t = token(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("numeral %s: %w", b, err)
	}
	*t = token(n.String())
	return nil
}
