// SPDX-License-Identifier: MIT
// Package: numbra/generator
//
// impl_edge.go — deterministic boundary values.

package generator

import (
	"github.com/katalvlaran/numbra/numeric"
	"github.com/katalvlaran/numbra/testcase"
)

// binary64 landmarks added in base 10 when their exponent is in range.
var binary64Landmarks = []string{
	"1.7976931348623157e308",  // largest finite
	"2.2250738585072014e-308", // smallest normal
}

// buildEdge emits, in order:
//
//	0
//	1.00…0 × B^MinExponent       (MinPrecision digits; smallest magnitude)
//	(B−1).(B−1)… × B^MaxExponent (MaxPrecision digits; largest magnitude)
//	1.0…01 × B^e                 (exactly MinPrecision significant digits)
//	1.0…01 × B^e                 (exactly MaxPrecision significant digits)
//	binary64 landmarks           (base 10, exponent within range)
//
// where e is 0 clamped to [MinExponent, MaxExponent], followed by the
// negation of each, in the same order. Expected values are
// the inputs converted at their own precision (clamped to the configured
// range for landmarks).
func buildEdge(r *run) ([]testcase.Record, error) {
	cfg := r.cfg
	type edge struct {
		v         numeric.Value
		precision int
	}

	mid := clamp(0, cfg.MinExponent, cfg.MaxExponent)
	edges := []edge{
		{numeric.ZeroValue(numeric.Positive, cfg.Base, cfg.MinPrecision), cfg.MinPrecision},
		{leadingOne(cfg.MinPrecision, cfg.MinExponent, cfg.Base), cfg.MinPrecision},
		{allMax(cfg.MaxPrecision, cfg.MaxExponent, cfg.Base), cfg.MaxPrecision},
		{boundary(cfg.MinPrecision, mid, cfg.Base), cfg.MinPrecision},
		{boundary(cfg.MaxPrecision, mid, cfg.Base), cfg.MaxPrecision},
	}
	if cfg.Base == numeric.DefaultBase {
		for _, tok := range binary64Landmarks {
			v, err := numeric.Parse(tok)
			if err != nil {
				return nil, err
			}
			if v.Exponent < cfg.MinExponent || v.Exponent > cfg.MaxExponent {
				continue
			}
			edges = append(edges, edge{v, clamp(len(v.Digits), cfg.MinPrecision, cfg.MaxPrecision)})
		}
	}

	out := make([]testcase.Record, 0, 2*len(edges))
	for _, negate := range []bool{false, true} {
		for _, e := range edges {
			v := e.v
			if negate {
				v = v.Negate()
			}
			rec, err := r.record(testcase.OriginEdge, v, e.precision, e.precision)
			if err != nil {
				return nil, err
			}
			out = append(out, rec)
		}
	}
	return out, nil
}

// leadingOne is 1 followed by n−1 zeros at exponent e.
func leadingOne(n, e, base int) numeric.Value {
	d := make([]byte, n)
	d[0] = 1
	return finite(d, e, base)
}

// allMax is n digits of base−1 at exponent e.
func allMax(n, e, base int) numeric.Value {
	d := make([]byte, n)
	for i := range d {
		d[i] = byte(base - 1)
	}
	return finite(d, e, base)
}

// boundary is 1.0…01 at exponent e with exactly n significant digits
// (1 when n == 1).
func boundary(n, e, base int) numeric.Value {
	d := make([]byte, n)
	d[0] = 1
	d[n-1] = 1
	return finite(d, e, base)
}

func finite(d []byte, e, base int) numeric.Value {
	return numeric.Value{Digits: d, Exponent: e, Base: base, Precision: len(d), Category: numeric.Normal}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
