// SPDX-License-Identifier: MIT

// Package numbra generates and verifies test cases for arbitrary-precision
// number formatting: a value, the precision and numeral base it must be
// printed in, and the exact expected digits.
//
// 🚀 What is numbra?
//
//	A small engine with exact big-integer arithmetic throughout:
//		• Value model: parse & render signed digit strings in bases 2..36
//		• Converter: base/precision conversion with round-half-to-even
//		• Constants: π, e, √2 to any number of digits
//		• Generator: random, edge, special, subnormal and constant cases
//		• Verifier: digit-by-digit comparison with divergence reporting
//		• Codecs: text, JSON, TOML, YAML and CSV in; JSON, CSV, TOML, YAML and C out
//
// ✨ Guarantees
//
//   - No floating point on the value path: every digit comes from math/big
//   - Reproducible: the same seed yields the same cases
//   - Batch friendly: one bad record never discards the rest
//   - Bounded: precision and exponent ceilings cap the work per record
//
// Packages:
//
//	numeric/    — Value, Parse, Render
//	convert/    — Converter, Convert, Truncate
//	constant/   — Constant registry, Approximate and Rounded
//	testcase/   — Request, Record, Resolve
//	generator/  — Config, Generate, Complete
//	verifier/   — Verify, VerifyBatch, Summarize
//	codec/      — file readers and writers, verification report
//	cmd/numbra/ — the command-line tool
//
// Quick start:
//
//	recs, _ := generator.Generate(generator.DefaultConfig(), generator.WithSeed(1))
//	res, _ := verifier.Verify(recs[0])
//	fmt.Println(res.Matched) // true
package numbra
