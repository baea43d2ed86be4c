package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"gopkg.in/yaml.v3"

	"github.com/getmockd/fixturegen/pkg/openapi"
	"github.com/getmockd/fixturegen/pkg/schema"
)

// ErrNoInput is returned when neither --input nor config names an input.
var ErrNoInput = errors.New("no input given - pass --input or set input in .fixturegen.yaml")

// source is a loaded input: the definitions table and, for schema bundles,
// an optional root schema.
type source struct {
	Path        string
	Kind        string
	Title       string
	Definitions schema.Definitions
	Root        *schema.Schema
}

// target is one schema to generate, named for output and logs.
type target struct {
	Name   string
	Schema *schema.Schema
}

// Input kinds.
const (
	kindOpenAPI = "openapi"
	kindBundle  = "bundle"
)

func isURL(path string) bool {
	return strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://")
}

// loadSource reads an API description or schema bundle.
func loadSource(path string) (*source, error) {
	if path == "" {
		return nil, ErrNoInput
	}
	if isURL(path) {
		doc, err := openapi.LoadURL(path)
		if err != nil {
			return nil, err
		}
		return &source{Path: path, Kind: kindOpenAPI, Title: doc.Title, Definitions: doc.Definitions}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}

	if isAPIDocument(data) {
		doc, err := openapi.LoadFile(path)
		if err != nil {
			return nil, err
		}
		log.Debug("loaded API description", "path", path, "title", doc.Title, "schemas", len(doc.Definitions))
		return &source{Path: path, Kind: kindOpenAPI, Title: doc.Title, Definitions: doc.Definitions}, nil
	}

	bundle, err := schema.LoadBundle(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	log.Debug("loaded schema bundle", "path", path, "schemas", len(bundle.Definitions), "root", bundle.Schema != nil)
	return &source{Path: path, Kind: kindBundle, Definitions: bundle.Definitions, Root: bundle.Schema}, nil
}

// isAPIDocument reports whether data has a top-level openapi or swagger key.
func isAPIDocument(data []byte) bool {
	var head struct {
		OpenAPI string `yaml:"openapi"`
		Swagger string `yaml:"swagger"`
	}
	if err := yaml.Unmarshal(data, &head); err != nil {
		return false
	}
	return head.OpenAPI != "" || head.Swagger != ""
}

// targets selects the schemas to generate. Patterns are doublestar globs
// matched against definition names; each must match at least one. Without
// patterns the bundle root is used, or else every definition.
func (s *source) targets(patterns []string) ([]target, error) {
	names := s.Definitions.Names()

	if len(patterns) == 0 {
		if s.Root != nil {
			return []target{{Name: "schema", Schema: s.Root}}, nil
		}
		if len(names) == 0 {
			return nil, fmt.Errorf("%s: no schemas defined", s.Path)
		}
		patterns = []string{"*"}
	}

	seen := make(map[string]bool)
	var out []target
	for _, pattern := range patterns {
		if !doublestar.ValidatePattern(pattern) {
			return nil, fmt.Errorf("invalid schema pattern %q", pattern)
		}
		matched := false
		for _, name := range names {
			ok, err := doublestar.Match(pattern, name)
			if err != nil {
				return nil, fmt.Errorf("invalid schema pattern %q: %w", pattern, err)
			}
			if !ok {
				continue
			}
			matched = true
			if seen[name] {
				continue
			}
			seen[name] = true
			out = append(out, target{Name: name, Schema: &schema.Schema{Ref: schema.ComponentRef(name)}})
		}
		if !matched {
			return nil, fmt.Errorf("no schema in %s matches %q", s.Path, pattern)
		}
	}
	return out, nil
}
