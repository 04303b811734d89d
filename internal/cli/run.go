// SPDX-License-Identifier: MIT
// Package: numbra/internal/cli
//
// run.go — the generate/verify pipeline behind the command.

package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/katalvlaran/numbra/codec"
	"github.com/katalvlaran/numbra/generator"
	"github.com/katalvlaran/numbra/testcase"
	"github.com/katalvlaran/numbra/verifier"
)

// Process exit codes.
const (
	ExitOK       = 0
	ExitFailures = 1
	ExitUsage    = 2
	ExitError    = 3
)

// Execute parses args and runs the command, returning the exit code.
func Execute(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cfg, err := ParseConfig(args, stderr)
	switch {
	case errors.Is(err, flag.ErrHelp):
		return ExitOK
	case errors.Is(err, ErrUsage):
		fmt.Fprintf(stderr, "numbra: %v\n", err)
		return ExitUsage
	case err != nil:
		fmt.Fprintf(stderr, "numbra: %v\n", err)
		return ExitError
	}
	return Run(ctx, cfg, stdout, stderr)
}

// Run executes a parsed configuration. Records come from -f (completed
// when generating) followed by generated records; -gen writes them to the
// output file, -ver checks them and prints a report to stdout. Logs go to
// stderr.
func Run(ctx context.Context, cfg Config, stdout, stderr io.Writer) int {
	logger := newLogger(stderr, cfg.Verbose)
	runner, err := newRunner(cfg, logger)
	if err != nil {
		logger.Error("invalid configuration", "error", err)
		return ExitError
	}

	code := ExitOK
	var recs []testcase.Record
	if cfg.Generate {
		var failed int
		recs, failed, err = runner.generate(ctx)
		if err != nil {
			logger.Error("generation failed", "error", err)
			return ExitError
		}
		if failed > 0 {
			code = ExitFailures
		}
	}
	if cfg.Verify {
		ok, err := runner.verify(ctx, recs, stdout)
		if err != nil {
			logger.Error("verification failed", "error", err)
			return ExitError
		}
		if !ok {
			code = ExitFailures
		}
	}
	return code
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})).
		With("run_id", uuid.NewString())
}

// runner holds the wired components of one invocation.
type runner struct {
	cfg    Config
	logger *slog.Logger
	gen    *generator.Generator
	ver    *verifier.Verifier
}

func newRunner(cfg Config, logger *slog.Logger) (*runner, error) {
	conv := cfg.converter()
	vopts := []verifier.Option{verifier.WithConverter(conv), verifier.WithLogger(logger)}
	gopts := []generator.Option{
		generator.WithConverter(conv),
		generator.WithLogger(logger),
		generator.WithSeed(cfg.Seed),
	}
	if cfg.Workers > 0 {
		vopts = append(vopts, verifier.WithWorkers(cfg.Workers))
		gopts = append(gopts, generator.WithWorkers(cfg.Workers))
	}

	r := &runner{cfg: cfg, logger: logger, ver: verifier.New(vopts...)}
	if cfg.Generate {
		g, err := generator.New(cfg.generatorConfig(), gopts...)
		if err != nil {
			return nil, err
		}
		r.gen = g
	}
	return r, nil
}

// generate completes the input file, appends generated records, and writes
// the output file. It returns the records written and the number of file
// records that could not be completed.
func (r *runner) generate(ctx context.Context) ([]testcase.Record, int, error) {
	var recs []testcase.Record
	failed := 0
	if r.cfg.File != "" {
		reqs, err := codec.ReadFile(r.cfg.File)
		if err != nil {
			return nil, 0, err
		}
		r.logger.Info("read test cases", "path", r.cfg.File, "records", len(reqs))
		for _, o := range r.gen.Complete(ctx, reqs) {
			if o.Failed() {
				failed++
				continue
			}
			recs = append(recs, o.Record)
		}
	}

	generated, err := r.gen.Generate()
	if err != nil {
		return nil, 0, err
	}
	recs = append(recs, generated...)

	format, err := codec.ParseFormat(r.cfg.Type)
	if err != nil {
		return nil, 0, err
	}
	notation, err := codec.ParseNotation(r.cfg.Notation)
	if err != nil {
		return nil, 0, err
	}
	path := outputPath(r.cfg.Output, format)
	if err := codec.WriteFile(path, format, codec.EntriesFromRecords(recs, notation)); err != nil {
		return nil, 0, err
	}
	r.logger.Info("wrote test cases", "path", path, "records", len(recs), "failed", failed)
	for _, rec := range recs {
		r.logger.Debug("test case",
			"origin", string(rec.Origin),
			"num_str", rec.InputText(),
			"precision", rec.RequestedPrecision,
			"expected", rec.ExpectedText())
	}
	return recs, failed, nil
}

// verify checks recs, or the input file when there are none, and prints the
// report. It reports whether every record matched.
func (r *runner) verify(ctx context.Context, recs []testcase.Record, stdout io.Writer) (bool, error) {
	var outcomes []verifier.Outcome
	if r.cfg.Generate {
		outcomes = r.ver.VerifyBatch(ctx, recs)
	} else {
		reqs, err := codec.ReadFile(r.cfg.File)
		if err != nil {
			return false, err
		}
		r.logger.Info("read test cases", "path", r.cfg.File, "records", len(reqs))
		outcomes = r.ver.VerifyRequests(ctx, reqs)
	}

	s, err := codec.WriteReport(stdout, outcomes, r.cfg.Verbose)
	if err != nil {
		return false, err
	}
	r.logger.Info("verification finished",
		"records", s.Total, "matched", s.Matched, "mismatched", s.Mismatched, "failed", s.Failed)
	return s.OK(), nil
}

// outputPath replaces the extension of name with the one of f.
func outputPath(name string, f codec.Format) string {
	return strings.TrimSuffix(name, filepath.Ext(name)) + f.Ext()
}
