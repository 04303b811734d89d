// SPDX-License-Identifier: MIT
// Package: numbra/codec
//
// write.go — serializers for generated test cases.

package codec

import (
	"bufio"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// csvHeader is the fixed column order of CSV output.
var csvHeader = []string{"num_str", "precision", "expected", "radix", "base", "input_base", "expected_precision"}

// outDocument wraps entries for TOML and YAML.
type outDocument struct {
	TestCases []Entry `toml:"test_cases" yaml:"test_cases"`
}

// WriteFile creates path and writes entries in format f.
//
// Errors: ErrUnknownFormat, I/O errors.
func WriteFile(path string, f Format, entries []Entry) (err error) {
	if !f.CanWrite() {
		return fmt.Errorf("WriteFile %q: %w", f, ErrUnknownFormat)
	}
	fh, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("WriteFile: %w", err)
	}
	defer func() {
		if cerr := fh.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("WriteFile: %w", cerr)
		}
	}()

	bw := bufio.NewWriter(fh)
	if err = Write(bw, f, entries); err != nil {
		return err
	}
	return bw.Flush()
}

// Write encodes entries to w in format f.
//
// Errors: ErrUnknownFormat for read-only formats; encoder and I/O errors.
func Write(w io.Writer, f Format, entries []Entry) error {
	if entries == nil {
		entries = []Entry{}
	}
	var err error
	switch f {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		err = enc.Encode(entries)
	case FormatCSV:
		err = writeCSV(w, entries)
	case FormatTOML:
		err = toml.NewEncoder(w).Encode(outDocument{TestCases: entries})
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err = enc.Encode(outDocument{TestCases: entries}); err == nil {
			err = enc.Close()
		}
	case FormatC:
		err = writeC(w, entries)
	default:
		return fmt.Errorf("Write %q: %w", f, ErrUnknownFormat)
	}
	if err != nil {
		return fmt.Errorf("Write %s: %w", f, err)
	}
	return nil
}

func writeCSV(w io.Writer, entries []Entry) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, e := range entries {
		row := []string{
			e.NumStr, strconv.Itoa(e.Precision), e.Expected,
			optInt(e.Radix), optInt(e.Base), optInt(e.InputBase), optInt(e.ExpectedPrecision),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// writeC emits a C initializer. Radix and base trail the three mandatory
// fields when either is set; a missing radix is written as 0. The C layout
// has no slot for input_base or expected_precision.
func writeC(w io.Writer, entries []Entry) error {
	bw := bufio.NewWriter(w)
	bw.WriteString("struct TestCase test_cases[] = {\n")
	for _, e := range entries {
		fmt.Fprintf(bw, "    {%s, %d, %s", strconv.Quote(e.NumStr), e.Precision, strconv.Quote(e.Expected))
		if e.Radix != 0 || e.Base != 0 {
			fmt.Fprintf(bw, ", %d", e.Radix)
			if e.Base != 0 {
				fmt.Fprintf(bw, ", %d", e.Base)
			}
		}
		bw.WriteString("},\n")
	}
	bw.WriteString("};\n")
	return bw.Flush()
}

func optInt(n int) string {
	if n == 0 {
		return ""
	}
	return strconv.Itoa(n)
}
