package payload

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/ohler55/ojg/jp"
	"github.com/ohler55/ojg/oj"

	"github.com/getmockd/fixturegen/pkg/model"
)

// Format is an output encoding.
type Format string

// Supported formats.
const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatXML  Format = "xml"
)

// Formats lists the supported formats.
var Formats = []Format{FormatJSON, FormatYAML, FormatXML}

// ParseFormat parses a format name, case-insensitively. "yml" is accepted
// for YAML.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "xml":
		return FormatXML, nil
	}
	return "", fmt.Errorf("unknown output format %q (want json, yaml or xml)", s)
}

// RenderOptions tune Render.
type RenderOptions struct {
	// Indent is the JSON indentation; empty means compact.
	Indent string
	// RootName names the XML document element.
	RootName string
}

// Render writes tree in the given format.
func Render(w io.Writer, format Format, tree *model.Value, opts RenderOptions) error {
	switch format {
	case FormatJSON, "":
		return WriteJSON(w, tree, opts.Indent)
	case FormatYAML:
		return WriteYAML(w, tree)
	case FormatXML:
		return WriteXML(w, tree, opts.RootName)
	}
	return fmt.Errorf("unknown output format %q", format)
}

// Query evaluates a JSONPath expression against a JSON document and returns
// every match.
func Query(jsonData []byte, path string) ([]any, error) {
	x, err := jp.ParseString(path)
	if err != nil {
		return nil, fmt.Errorf("invalid JSONPath %q: %w", path, err)
	}
	data, err := oj.Parse(jsonData)
	if err != nil {
		return nil, fmt.Errorf("parse JSON: %w", err)
	}
	return x.Get(data), nil
}

// QueryTree renders tree as JSON and queries it. The tree must hold plain
// values, for example after resolution.
func QueryTree(tree *model.Value, path string) ([]any, error) {
	var buf bytes.Buffer
	if err := WriteJSON(&buf, tree, ""); err != nil {
		return nil, err
	}
	return Query(buf.Bytes(), path)
}
