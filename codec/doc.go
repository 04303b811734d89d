// SPDX-License-Identifier: MIT

// Package codec moves test cases between files and the core types.
//
// Readers turn a file into []testcase.Request:
//
//	text  value precision [radix [base]] per line; blank and '#' lines skipped
//	json  array of objects, or {"test_cases": [...]}
//	toml  [[test_cases]] (or [[testcase]]) tables
//	yaml  sequence of mappings, or test_cases: [...]
//	csv   header row naming the columns
//
// Objects use the keys num_str (or num), precision, expected, radix, base,
// input_base and expected_precision. input_base is the numeral system of
// num_str (default 10); expected_precision is the precision expected was
// rounded to when it is below precision. CSV uses the same names as columns.
// A line or entry the reader cannot decode becomes a Request whose Err
// wraps ErrBadRecord; it is reported downstream and never dropped silently.
// Only a file that cannot be decoded as a whole fails the read.
//
// Writers emit []Entry as JSON, CSV, TOML, YAML or a C struct array
// (struct TestCase test_cases[] = {...};). WriteReport renders verifier
// outcomes as PASS/FAIL lines with a summary.
package codec
