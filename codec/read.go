// SPDX-License-Identifier: MIT
// Package: numbra/codec
//
// read.go — file readers producing testcase.Request values.

package codec

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/numbra/testcase"
)

// maxLineBytes bounds a single text line; precisions run to tens of
// thousands of digits.
const maxLineBytes = 16 << 20

// ReadFile reads path with the format implied by its extension.
//
// Errors: ErrUnknownFormat, I/O errors, and whole-file decode errors.
func ReadFile(path string) ([]testcase.Request, error) {
	f, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	fh, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("ReadFile: %w", err)
	}
	defer fh.Close()

	reqs, err := Read(fh, f)
	if err != nil {
		return nil, fmt.Errorf("ReadFile %s: %w", path, err)
	}
	return reqs, nil
}

// Read decodes r as format f. Undecodable lines or entries come back as
// requests with Err set.
//
// Errors: ErrUnknownFormat for write-only formats; decode errors that
// affect the whole input.
func Read(r io.Reader, f Format) ([]testcase.Request, error) {
	switch f {
	case FormatText:
		return readText(r)
	case FormatJSON:
		return readJSON(r)
	case FormatTOML:
		return readTOML(r)
	case FormatYAML:
		return readYAML(r)
	case FormatCSV:
		return readCSV(r)
	}
	return nil, fmt.Errorf("Read %q: %w", f, ErrUnknownFormat)
}

// readText parses "value precision [radix [base]]" lines.
func readText(r io.Reader) ([]testcase.Request, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	var out []testcase.Request
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		out = append(out, textRequest(strings.Fields(text), line))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("readText line %d: %w", line+1, err)
	}
	return out, nil
}

func textRequest(fields []string, line int) testcase.Request {
	req := testcase.Request{Line: line}
	if len(fields) < 2 {
		req.Err = badRecordf(line, "want value and precision, got %d field(s)", len(fields))
		return req
	}
	if len(fields) > 4 {
		req.Err = badRecordf(line, "want at most 4 fields, got %d", len(fields))
		return req
	}
	req.Num = fields[0]

	ints := []*int{&req.Precision, &req.Radix, &req.Base}
	names := []string{"precision", "radix", "base"}
	for i, f := range fields[1:] {
		n, err := strconv.Atoi(f)
		if err != nil {
			req.Err = badRecordf(line, "%s %q is not an integer", names[i], f)
			return req
		}
		*ints[i] = n
	}
	return req
}

// document is the wrapped form of JSON, TOML and YAML inputs.
type document struct {
	TestCases []inEntry `json:"test_cases" toml:"test_cases" yaml:"test_cases"`
	Testcase  []inEntry `json:"testcase" toml:"testcase" yaml:"testcase"`
}

func (d document) entries() []inEntry {
	return append(append([]inEntry(nil), d.TestCases...), d.Testcase...)
}

func requests(entries []inEntry) []testcase.Request {
	out := make([]testcase.Request, len(entries))
	for i, e := range entries {
		out[i] = e.request(i + 1)
	}
	return out
}

func readJSON(r io.Reader) ([]testcase.Request, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("readJSON: %w", err)
	}
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil, nil
	}
	if data[0] == '[' {
		var entries []inEntry
		if err := json.Unmarshal(data, &entries); err != nil {
			return nil, fmt.Errorf("readJSON: %w", err)
		}
		return requests(entries), nil
	}
	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("readJSON: %w", err)
	}
	return requests(doc.entries()), nil
}

func readTOML(r io.Reader) ([]testcase.Request, error) {
	var doc document
	if _, err := toml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("readTOML: %w", err)
	}
	return requests(doc.entries()), nil
}

func readYAML(r io.Reader) ([]testcase.Request, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("readYAML: %w", err)
	}
	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		return nil, fmt.Errorf("readYAML: %w", err)
	}
	if len(node.Content) == 0 {
		return nil, nil
	}
	if node.Content[0].Kind == yaml.SequenceNode {
		var entries []inEntry
		if err := node.Decode(&entries); err != nil {
			return nil, fmt.Errorf("readYAML: %w", err)
		}
		return requests(entries), nil
	}
	var doc document
	if err := node.Decode(&doc); err != nil {
		return nil, fmt.Errorf("readYAML: %w", err)
	}
	return requests(doc.entries()), nil
}

// readCSV expects a header row; num may be spelled num_str or num.
func readCSV(r io.Reader) ([]testcase.Request, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("readCSV header: %w", err)
	}
	col := map[string]int{}
	for i, h := range header {
		col[strings.ToLower(strings.TrimSpace(h))] = i
	}
	if _, ok := col["num_str"]; !ok {
		if i, ok := col["num"]; ok {
			col["num_str"] = i
		} else {
			return nil, fmt.Errorf("readCSV: header lacks num_str: %w", ErrBadRecord)
		}
	}

	var out []testcase.Request
	for line := 2; ; line++ {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			return out, nil
		}
		if err != nil {
			return nil, fmt.Errorf("readCSV: %w", err)
		}
		out = append(out, csvRequest(row, col, line))
	}
}

func csvRequest(row []string, col map[string]int, line int) testcase.Request {
	cell := func(name string) string {
		i, ok := col[name]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}
	req := testcase.Request{Num: cell("num_str"), Expected: cell("expected"), Line: line}
	if req.Num == "" {
		req.Err = badRecordf(line, "missing num_str")
		return req
	}
	ints := []*int{&req.Precision, &req.Radix, &req.Base, &req.InputBase, &req.ExpectedPrecision}
	for i, name := range []string{"precision", "radix", "base", "input_base", "expected_precision"} {
		v := cell(name)
		if v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			req.Err = badRecordf(line, "%s %q is not an integer", name, v)
			return req
		}
		*ints[i] = n
	}
	return req
}
