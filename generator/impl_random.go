// SPDX-License-Identifier: MIT
// Package: numbra/generator
//
// impl_random.go — uniformly drawn values.

package generator

import (
	"github.com/katalvlaran/numbra/numeric"
	"github.com/katalvlaran/numbra/testcase"
)

// buildRandom draws Count values. For each: precision ∈ [MinPrecision,
// MaxPrecision], exponent ∈ [MinExponent, MaxExponent], precision digits in
// [0, Base) with a non-zero leader, sign by coin flip. Zero is never drawn.
// The expected value is the value converted to its own base and precision,
// a self-consistent baseline.
//
// Complexity: O(Count · MaxPrecision) draws plus one conversion per record.
func buildRandom(r *run) ([]testcase.Record, error) {
	cfg := r.cfg
	out := make([]testcase.Record, 0, cfg.Count)
	for i := 0; i < cfg.Count; i++ {
		precision := intRange(r.rng, cfg.MinPrecision, cfg.MaxPrecision)
		exponent := intRange(r.rng, cfg.MinExponent, cfg.MaxExponent)

		digits := make([]byte, precision)
		digits[0] = byte(intRange(r.rng, 1, cfg.Base-1))
		for j := 1; j < precision; j++ {
			digits[j] = byte(r.rng.Intn(cfg.Base))
		}
		sign := numeric.Positive
		if r.rng.Intn(2) == 1 {
			sign = numeric.Negative
		}

		in := numeric.Value{
			Sign:      sign,
			Digits:    digits,
			Exponent:  exponent,
			Base:      cfg.Base,
			Precision: precision,
			Category:  numeric.Normal,
		}
		rec, err := r.record(testcase.OriginRandom, in, precision, precision)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, nil
}
