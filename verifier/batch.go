// SPDX-License-Identifier: MIT
// Package: numbra/verifier
//
// batch.go — concurrent verification of many records.

package verifier

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/numbra/testcase"
)

// VerifyBatch verifies recs on at most WithWorkers goroutines. The result
// has one Outcome per record, in input order. Cancellation of ctx fails the
// records not yet started with ctx.Err(); the others are unaffected.
func (v *Verifier) VerifyBatch(ctx context.Context, recs []testcase.Record) []Outcome {
	out := make([]Outcome, len(recs))
	v.fanOut(len(recs), func(i int) {
		if err := ctx.Err(); err != nil {
			out[i] = Outcome{Index: i, Err: err}
			return
		}
		res, err := v.Verify(recs[i])
		out[i] = Outcome{Index: i, Result: res, Err: err}
	})
	v.logSummary(out)
	return out
}

// VerifyRequests resolves reqs and verifies the resulting records. A
// request that fails to resolve (malformed numeral, missing expected value)
// is reported in its own Outcome.
func (v *Verifier) VerifyRequests(ctx context.Context, reqs []testcase.Request) []Outcome {
	out := make([]Outcome, len(reqs))
	v.fanOut(len(reqs), func(i int) {
		if err := ctx.Err(); err != nil {
			out[i] = Outcome{Index: i, Err: err}
			return
		}
		rec, err := testcase.Resolve(reqs[i])
		if err != nil {
			out[i] = Outcome{Index: i, Err: err}
			return
		}
		res, err := v.Verify(rec)
		out[i] = Outcome{Index: i, Result: res, Err: err}
	})
	v.logSummary(out)
	return out
}

// VerifyBatch is New().VerifyBatch.
func VerifyBatch(ctx context.Context, recs []testcase.Record) []Outcome {
	return defaultVerifier.VerifyBatch(ctx, recs)
}

// VerifyRequests is New().VerifyRequests.
func VerifyRequests(ctx context.Context, reqs []testcase.Request) []Outcome {
	return defaultVerifier.VerifyRequests(ctx, reqs)
}

// fanOut calls fn(i) for i in [0, n) on a bounded errgroup. Each call writes
// only its own slot, so no further synchronization is needed.
func (v *Verifier) fanOut(n int, fn func(i int)) {
	var eg errgroup.Group
	eg.SetLimit(v.opts.workers)
	for i := 0; i < n; i++ {
		i := i
		eg.Go(func() error {
			fn(i)
			return nil
		})
	}
	eg.Wait() // tasks report through their slot, never through the group
}

func (v *Verifier) logSummary(out []Outcome) {
	for _, o := range out {
		if o.Failed() {
			v.opts.logger.Warn("record not verified", "index", o.Index, "error", o.Err)
		}
	}
	s := Summarize(out)
	v.opts.logger.Debug("verification finished",
		"records", s.Total, "matched", s.Matched, "mismatched", s.Mismatched, "failed", s.Failed)
}
