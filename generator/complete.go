// SPDX-License-Identifier: MIT
// Package: numbra/generator
//
// complete.go — fill in expected values for records read from files.

package generator

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/numbra/testcase"
)

// Complete resolves reqs and computes the expected value of every record
// that lacks one, converting its input to the record's base at the
// requested precision. Records that already carry an expected value pass
// through unchanged.
//
// Requests are processed on at most WithWorkers goroutines; each one only
// touches its own slot of the result. Failures (parse errors, ceilings,
// cancellation) are reported per outcome and never stop the batch.
func (g *Generator) Complete(ctx context.Context, reqs []testcase.Request) []testcase.Outcome {
	out := make([]testcase.Outcome, len(reqs))

	var eg errgroup.Group
	eg.SetLimit(g.opts.workers)
	for i := range reqs {
		i := i
		eg.Go(func() error {
			out[i] = g.completeOne(ctx, i, reqs[i])
			return nil
		})
	}
	eg.Wait() // tasks report through their slot, never through the group

	failed := 0
	for _, o := range out {
		if o.Failed() {
			failed++
			g.opts.logger.Warn("record not completed", "index", o.Index, "line", reqs[o.Index].Line, "error", o.Err)
		}
	}
	g.opts.logger.Debug("completion finished", "records", len(out), "failed", failed)
	return out
}

func (g *Generator) completeOne(ctx context.Context, i int, req testcase.Request) testcase.Outcome {
	if err := ctx.Err(); err != nil {
		return testcase.Outcome{Index: i, Err: err}
	}
	rec, err := testcase.Resolve(req)
	if err != nil {
		return testcase.Outcome{Index: i, Err: err}
	}
	if rec.HasExpected() {
		return testcase.Outcome{Index: i, Record: rec}
	}
	exp, err := g.opts.conv.Convert(rec.Input, rec.Base, rec.RequestedPrecision)
	if err != nil {
		return testcase.Outcome{Index: i, Err: fmt.Errorf("Complete line %d: %w", req.Line, err)}
	}
	return testcase.Outcome{Index: i, Record: rec.WithExpected(exp)}
}
