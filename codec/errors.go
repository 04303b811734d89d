// SPDX-License-Identifier: MIT
// Package: numbra/codec
//
// errors.go — sentinel errors for the codec package.

package codec

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownFormat indicates a format name or file extension with no codec.
	ErrUnknownFormat = errors.New("codec: unknown format")

	// ErrBadRecord indicates a line or entry that cannot become a request.
	ErrBadRecord = errors.New("codec: bad record")

	// ErrUnknownNotation indicates a notation name other than plain or scientific.
	ErrUnknownNotation = errors.New("codec: unknown notation")
)

func badRecordf(line int, format string, args ...interface{}) error {
	return fmt.Errorf("line %d: %s: %w", line, fmt.Sprintf(format, args...), ErrBadRecord)
}
