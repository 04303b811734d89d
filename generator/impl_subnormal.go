// SPDX-License-Identifier: MIT
// Package: numbra/generator
//
// impl_subnormal.go — values below the minimum exponent.
//
// Model: a format with precision P and minimum exponent Emin has a fixed
// quantum B^(Emin−P+1). A value at exponent Emin−k keeps only P−k digits
// above that quantum (at least one), just as IEEE subnormals lose bits.

package generator

import (
	"github.com/katalvlaran/numbra/numeric"
	"github.com/katalvlaran/numbra/testcase"
)

// binary64MinSubnormal is added in base 10 when it sits at or below MinExponent.
const binary64MinSubnormal = "4.9406564584124654e-324"

// buildSubnormal emits P-digit values (P = 17 clamped to the precision range)
// at exponents MinExponent−k for k ∈ {0, 1, P/2, P−1}, deduplicated and
// ascending. Digits cycle 1, 2, …, B−1. Each record requests P digits while
// its expected value carries max(1, P−k): fewer significant digits than
// requested is the behavior under test.
func buildSubnormal(r *run) ([]testcase.Record, error) {
	cfg := r.cfg
	p := cfg.subnormalPrecision()

	var shifts []int
	for _, k := range []int{0, 1, p / 2, p - 1} {
		if len(shifts) == 0 || k > shifts[len(shifts)-1] {
			shifts = append(shifts, k)
		}
	}

	inputs := make([]numeric.Value, 0, len(shifts)+1)
	for _, k := range shifts {
		d := make([]byte, p)
		for i := range d {
			d[i] = byte(i%(cfg.Base-1) + 1)
		}
		inputs = append(inputs, numeric.Value{
			Digits:    d,
			Exponent:  cfg.MinExponent - k,
			Base:      cfg.Base,
			Precision: p,
			Category:  numeric.Subnormal,
		})
	}
	if cfg.Base == numeric.DefaultBase {
		v, err := numeric.Parse(binary64MinSubnormal)
		if err != nil {
			return nil, err
		}
		if v.Exponent <= cfg.MinExponent {
			v.Category = numeric.Subnormal
			inputs = append(inputs, v)
		}
	}

	out := make([]testcase.Record, 0, len(inputs))
	for _, in := range inputs {
		rec, err := r.record(testcase.OriginSubnormal, in, p, retained(p, cfg.MinExponent-in.Exponent))
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, nil
}

// retained is the number of digits a P-digit value keeps k positions below
// the minimum exponent.
func retained(p, k int) int {
	if k < 0 {
		k = 0
	}
	if p-k < 1 {
		return 1
	}
	return p - k
}
