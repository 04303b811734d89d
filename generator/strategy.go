// SPDX-License-Identifier: MIT
// Package: numbra/generator
//
// strategy.go — the closed table of generation strategies.
//
// Each strategy is independent: it reads the Config and its own RNG
// stream, and returns records in a stable order. Generate concatenates
// enabled strategies in table order.

package generator

import (
	"fmt"
	"log/slog"
	"math/rand"

	"github.com/katalvlaran/numbra/constant"
	"github.com/katalvlaran/numbra/convert"
	"github.com/katalvlaran/numbra/numeric"
	"github.com/katalvlaran/numbra/testcase"
)

// run carries the resolved state one strategy needs.
type run struct {
	cfg      Config
	conv     *convert.Converter
	rng      *rand.Rand
	constant constant.Constant
	approx   ApproximationFunc
	logger   *slog.Logger
}

// strategy pairs an origin with its enable predicate and builder.
type strategy struct {
	origin  testcase.Origin
	enabled func(Config) bool
	build   func(r *run) ([]testcase.Record, error)
}

// strategies is ordered: random, edge, special, subnormal, transcendental.
// The index doubles as the RNG stream id, so entries must only be appended.
var strategies = [...]strategy{
	{testcase.OriginRandom, func(c Config) bool { return c.Count > 0 }, buildRandom},
	{testcase.OriginEdge, func(c Config) bool { return c.IncludeEdge }, buildEdge},
	{testcase.OriginSpecial, func(c Config) bool { return c.IncludeSpecial }, buildSpecial},
	{testcase.OriginSubnormal, func(c Config) bool { return c.IncludeSubnormal }, buildSubnormal},
	{testcase.OriginTranscendental, func(c Config) bool { return c.IncludePi > 0 }, buildTranscendental},
}

// record builds a Record whose expected value is in converted to the run's
// base at the given precision.
func (r *run) record(origin testcase.Origin, in numeric.Value, requested, expectedPrecision int) (testcase.Record, error) {
	exp, err := r.conv.Convert(in, r.cfg.Base, expectedPrecision)
	if err != nil {
		return testcase.Record{}, fmt.Errorf("%s %v: %w", origin, in, err)
	}
	rec := testcase.Record{
		Input:              in,
		RequestedPrecision: requested,
		Radix:              r.cfg.Radix,
		Base:               r.cfg.Base,
		Origin:             origin,
	}
	return rec.WithExpected(exp), nil
}
