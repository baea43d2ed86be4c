package schema

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Bundle is a standalone schema file: a definitions table and an optional
// root schema.
type Bundle struct {
	Definitions Definitions `yaml:"definitions"`
	Schema      *Schema     `yaml:"schema"`
}

// LoadBundle decodes a YAML or JSON schema bundle.
func LoadBundle(data []byte) (*Bundle, error) {
	var b Bundle
	if err := yaml.Unmarshal(data, &b); err != nil {
		return nil, fmt.Errorf("failed to parse schema bundle: %w", err)
	}
	if len(b.Definitions) == 0 && b.Schema == nil {
		return nil, fmt.Errorf("schema bundle has neither definitions nor schema")
	}
	return &b, nil
}

// LoadBundleFile reads and decodes a schema bundle from disk.
func LoadBundleFile(path string) (*Bundle, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read schema bundle %s: %w", path, err)
	}
	b, err := LoadBundle(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return b, nil
}
