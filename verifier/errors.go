// SPDX-License-Identifier: MIT
// Package: numbra/verifier
//
// errors.go — sentinel errors for the verifier package.

package verifier

import (
	"fmt"

	"github.com/katalvlaran/numbra/numeric"
)

// ErrMissingExpected indicates a record without an expected value. It wraps
// numeric.ErrMalformedNumber, so callers that only branch on malformed
// input treat both the same way.
var ErrMissingExpected = fmt.Errorf("verifier: missing expected value: %w", numeric.ErrMalformedNumber)
