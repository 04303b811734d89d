// SPDX-License-Identifier: MIT
// Package: numbra/generator
//
// impl_transcendental.go — constant approximations at increasing precision.

package generator

import (
	"fmt"

	"github.com/katalvlaran/numbra/constant"
	"github.com/katalvlaran/numbra/testcase"
)

// buildTranscendental emits one record per precision p = 1..IncludePi.
// Expected is the constant correctly rounded to p digits in Base by
// constant.Rounded, starting from a GuardDigits guard band. Input is the
// run's ApproximationFunc at p, or by default the guarded truncation
// Expected was rounded from.
//
// Complexity: O(IncludePi) constant evaluations at about IncludePi+GuardDigits digits.
func buildTranscendental(r *run) ([]testcase.Record, error) {
	cfg := r.cfg
	out := make([]testcase.Record, 0, cfg.IncludePi)
	for p := 1; p <= cfg.IncludePi; p++ {
		expected, in, err := constant.Rounded(r.constant, cfg.Base, p, GuardDigits, r.conv)
		if err != nil {
			return nil, fmt.Errorf("%s precision %d: %w", r.constant.Name(), p, err)
		}
		if r.approx != nil {
			if in, err = r.approx(r.constant, cfg.Base, p); err != nil {
				return nil, fmt.Errorf("%s approximation %d: %w", r.constant.Name(), p, err)
			}
		}
		rec := testcase.Record{
			Input:              in,
			RequestedPrecision: p,
			Radix:              cfg.Radix,
			Base:               cfg.Base,
			Origin:             testcase.OriginTranscendental,
			Label:              r.constant.Name(),
		}
		out = append(out, rec.WithExpected(expected))
	}
	return out, nil
}
