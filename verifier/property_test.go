package verifier_test

import (
	"testing"

	"pgregory.net/rapid"

	"github.com/katalvlaran/numbra/generator"
	"github.com/katalvlaran/numbra/numeric"
	"github.com/katalvlaran/numbra/testcase"
	"github.com/katalvlaran/numbra/verifier"
)

// Every random record agrees with its own recomputation.
func TestProperty_RandomRecordsVerify(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		cfg := generator.DefaultConfig()
		cfg.Base = rapid.IntRange(numeric.MinBase, numeric.MaxBase).Draw(t, "base")
		cfg.MinPrecision = rapid.IntRange(1, 40).Draw(t, "minP")
		cfg.MaxPrecision = rapid.IntRange(cfg.MinPrecision, 80).Draw(t, "maxP")
		cfg.MinExponent = rapid.IntRange(-400, 400).Draw(t, "minE")
		cfg.MaxExponent = rapid.IntRange(cfg.MinExponent, 400).Draw(t, "maxE")
		cfg.Count = rapid.IntRange(1, 8).Draw(t, "count")
		seed := rapid.Int64().Draw(t, "seed")

		recs, err := generator.Generate(cfg, generator.WithSeed(seed))
		if err != nil {
			t.Fatalf("Generate: %v", err)
		}
		for _, rec := range recs {
			res, err := verifier.Verify(rec)
			if err != nil {
				t.Fatalf("Verify %s: %v", rec.InputText(), err)
			}
			if !res.Matched {
				t.Fatalf("%s did not match: %s", rec.InputText(), res.Notes)
			}
		}
	})
}

// Specials match regardless of the requested precision or base.
func TestProperty_SpecialsAlwaysMatch(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		base := rapid.IntRange(numeric.MinBase, numeric.MaxBase).Draw(t, "base")
		precision := rapid.IntRange(1, 5000).Draw(t, "precision")
		v := rapid.SampledFrom([]numeric.Value{
			numeric.Inf(numeric.Positive, 10, 1),
			numeric.Inf(numeric.Negative, 10, 1),
			numeric.NaNValue(10, 1),
		}).Draw(t, "special")

		expected := v
		expected.Base, expected.Precision = base, precision
		rec := testcase.Record{Input: v, RequestedPrecision: precision, Base: base}.WithExpected(expected)
		res, err := verifier.Verify(rec)
		if err != nil {
			t.Fatalf("Verify: %v", err)
		}
		if !res.Matched {
			t.Fatalf("%s at precision %d: %s", v, precision, res.Notes)
		}
	})
}
