// SPDX-License-Identifier: MIT
// Package: numbra/generator
//
// api.go — Generator construction and the Generate entry point.

package generator

import (
	"fmt"

	"github.com/katalvlaran/numbra/constant"
	"github.com/katalvlaran/numbra/testcase"
)

// Generator produces records for a validated Config. It holds no mutable
// state: every Generate call builds fresh RNG streams, so a Generator may
// be used from several goroutines.
type Generator struct {
	cfg  Config
	opts options
}

// New validates cfg against the configured converter and returns a Generator.
//
// Errors: ErrInvalidConfig.
func New(cfg Config, opts ...Option) (*Generator, error) {
	o := newOptions(opts...)
	if err := cfg.Validate(o.conv); err != nil {
		return nil, fmt.Errorf("generator.New: %w", err)
	}
	return &Generator{cfg: cfg, opts: o}, nil
}

// Config returns the generator's configuration.
func (g *Generator) Config() Config { return g.cfg }

// Generate runs every enabled strategy in table order and concatenates
// their records. Equal Config and seed produce equal output.
//
// Errors: only internal conversion failures, which Validate rules out for
// well-formed configs.
func (g *Generator) Generate() ([]testcase.Record, error) {
	parent := parentSeed(g.opts.seed, g.opts.rng)

	var c constant.Constant
	if g.cfg.IncludePi > 0 {
		var err error
		if c, err = constant.Lookup(g.cfg.constantName()); err != nil {
			return nil, fmt.Errorf("Generate: %w", err)
		}
	}

	var out []testcase.Record
	for i, s := range strategies {
		if !s.enabled(g.cfg) {
			continue
		}
		r := &run{
			cfg:      g.cfg,
			conv:     g.opts.conv,
			rng:      deriveRNG(parent, uint64(i)),
			constant: c,
			approx:   g.opts.approx,
			logger:   g.opts.logger,
		}
		recs, err := s.build(r)
		if err != nil {
			return nil, fmt.Errorf("Generate %s: %w", s.origin, err)
		}
		g.opts.logger.Debug("strategy finished", "origin", string(s.origin), "records", len(recs))
		out = append(out, recs...)
	}
	return out, nil
}

// Generate is New(cfg, opts...) followed by Generate.
func Generate(cfg Config, opts ...Option) ([]testcase.Record, error) {
	g, err := New(cfg, opts...)
	if err != nil {
		return nil, err
	}
	return g.Generate()
}
