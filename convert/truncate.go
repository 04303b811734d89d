// SPDX-License-Identifier: MIT
// Package: numbra/convert
//
// truncate.go — digit truncation without rounding.

package convert

import (
	"fmt"

	"github.com/katalvlaran/numbra/numeric"
)

// Truncate returns v cut to at most precision digits (toward zero) in its
// own base, tagged with that precision. Shorter values are returned with
// the new tag and their digits untouched. Specials and zero only change tag.
//
// Truncate is used to publish approximations whose later rounding must
// agree with rounding of the exact value (see the constant package).
func Truncate(v numeric.Value, precision int) (numeric.Value, error) {
	if precision < 1 {
		return numeric.Value{}, fmt.Errorf("Truncate: precision %d: %w", precision, ErrInvalidPrecision)
	}
	out := v.Clone()
	out.Precision = precision
	if !v.Category.IsFinite() || v.Category == numeric.Zero {
		return out, nil
	}
	if len(out.Digits) > precision {
		out.Digits = out.Digits[:precision]
	}
	return out, nil
}
