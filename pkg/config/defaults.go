package config

import (
	"github.com/getmockd/fixturegen/pkg/generator"
	"github.com/getmockd/fixturegen/pkg/payload"
)

// DefaultIndent is the default JSON indentation width.
const DefaultIndent = 2

// NewDefault creates a Config with default values.
func NewDefault() *Config {
	cfg := &Config{
		MinItems:  generator.DefaultMinItems,
		MaxItems:  generator.DefaultMaxItems,
		Format:    string(payload.FormatJSON),
		Indent:    DefaultIndent,
		RootName:  payload.DefaultRootName,
		LogLevel:  "warn",
		LogFormat: "text",
		Sources:   make(map[string]string),
	}
	for _, key := range []string{"minItems", "maxItems", "format", "indent", "rootName", "logLevel", "logFormat"} {
		cfg.Sources[key] = SourceDefault
	}
	return cfg
}
