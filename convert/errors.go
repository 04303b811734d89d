// SPDX-License-Identifier: MIT
// Package: numbra/convert
//
// errors.go — sentinel errors for the convert package.

package convert

import "errors"

var (
	// ErrPrecisionTooLarge indicates a requested precision above the
	// converter's ceiling. The ceiling bounds memory and time spent on a
	// single garbled or hostile request.
	ErrPrecisionTooLarge = errors.New("convert: precision exceeds ceiling")

	// ErrInvalidPrecision indicates a requested precision below 1.
	ErrInvalidPrecision = errors.New("convert: precision must be at least 1")

	// ErrExponentOutOfRange indicates a source exponent whose magnitude
	// exceeds the converter's exponent ceiling.
	ErrExponentOutOfRange = errors.New("convert: exponent out of range")

	// ErrDivisionDegenerate signals a broken arithmetic invariant: a source
	// base below 2 or a zero denominator. It indicates a programming error.
	ErrDivisionDegenerate = errors.New("convert: degenerate division")
)
