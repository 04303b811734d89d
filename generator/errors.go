// SPDX-License-Identifier: MIT
// Package: numbra/generator
//
// errors.go — sentinel errors for the generator package.

package generator

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig indicates a Config that cannot drive generation:
// inverted or empty ranges, negative counts, precisions above the
// converter ceiling, or an unsupported base.
var ErrInvalidConfig = errors.New("generator: invalid config")

// configErrorf wraps ErrInvalidConfig with a field-level message.
func configErrorf(format string, args ...interface{}) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrInvalidConfig)
}
