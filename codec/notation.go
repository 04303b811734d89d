// SPDX-License-Identifier: MIT
// Package: numbra/codec
//
// notation.go — how expected values are spelled in output files.

package codec

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/numbra/numeric"
	"github.com/katalvlaran/numbra/testcase"
)

// Notation selects the spelling of expected values on write.
type Notation string

const (
	// NotationScientific writes numeric.Render text ("1.25e-3").
	NotationScientific Notation = "scientific"
	// NotationPlain writes numeric.Plain text ("0.00125"). Values whose
	// exponent exceeds numeric.MaxPlainExponent stay scientific.
	NotationPlain Notation = "plain"
)

// ParseNotation maps a flag value to a Notation; "" is scientific.
//
// Errors: ErrUnknownNotation.
func ParseNotation(s string) (Notation, error) {
	switch Notation(strings.ToLower(strings.TrimSpace(s))) {
	case "", NotationScientific:
		return NotationScientific, nil
	case NotationPlain:
		return NotationPlain, nil
	}
	return "", fmt.Errorf("ParseNotation %q: %w", s, ErrUnknownNotation)
}

func (n Notation) expected(rec testcase.Record) string {
	if rec.Expected == nil || n != NotationPlain {
		return rec.ExpectedText()
	}
	s, err := numeric.Plain(*rec.Expected)
	if err != nil {
		return rec.ExpectedText()
	}
	return s
}
