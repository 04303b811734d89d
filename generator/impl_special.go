// SPDX-License-Identifier: MIT
// Package: numbra/generator
//
// impl_special.go — +∞, −∞, NaN.

package generator

import (
	"github.com/katalvlaran/numbra/numeric"
	"github.com/katalvlaran/numbra/testcase"
)

// buildSpecial emits +∞, −∞ and NaN tagged with MinPrecision. These are
// round-trip invariant, so the expected value is the input itself.
func buildSpecial(r *run) ([]testcase.Record, error) {
	cfg := r.cfg
	values := []numeric.Value{
		numeric.Inf(numeric.Positive, cfg.Base, cfg.MinPrecision),
		numeric.Inf(numeric.Negative, cfg.Base, cfg.MinPrecision),
		numeric.NaNValue(cfg.Base, cfg.MinPrecision),
	}
	out := make([]testcase.Record, 0, len(values))
	for _, v := range values {
		rec := testcase.Record{
			Input:              v,
			RequestedPrecision: cfg.MinPrecision,
			Radix:              cfg.Radix,
			Base:               cfg.Base,
			Origin:             testcase.OriginSpecial,
		}
		out = append(out, rec.WithExpected(v))
	}
	return out, nil
}
