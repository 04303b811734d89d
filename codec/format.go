// SPDX-License-Identifier: MIT
// Package: numbra/codec
//
// format.go — format names and extension mapping.

package codec

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Format names a file encoding.
type Format string

// Supported formats. FormatText is read-only; FormatC is write-only.
const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
	FormatCSV  Format = "csv"
	FormatC    Format = "c"
)

// ParseFormat maps a user-supplied name ("json", "yml", "txt", …) to a Format.
//
// Errors: ErrUnknownFormat.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(name, ".")) {
	case "text", "txt", "":
		return FormatText, nil
	case "json":
		return FormatJSON, nil
	case "toml":
		return FormatTOML, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "csv":
		return FormatCSV, nil
	case "c", "h":
		return FormatC, nil
	}
	return "", fmt.Errorf("ParseFormat %q: %w", name, ErrUnknownFormat)
}

// FormatFromPath picks the format from path's extension; no extension
// means text.
//
// Errors: ErrUnknownFormat.
func FormatFromPath(path string) (Format, error) {
	return ParseFormat(filepath.Ext(path))
}

// Ext returns the file extension written for f, with the leading dot.
func (f Format) Ext() string {
	if f == FormatText {
		return ".txt"
	}
	return "." + string(f)
}

// CanRead reports whether Read supports f.
func (f Format) CanRead() bool { return f != FormatC }

// CanWrite reports whether Write supports f.
func (f Format) CanWrite() bool { return f != FormatText }
