package config

import (
	"fmt"
	"strings"

	"github.com/getmockd/fixturegen/pkg/payload"
)

// Config is the complete configuration of the CLI.
type Config struct {
	// Input is the OpenAPI, Swagger or schema bundle file to read.
	Input string `yaml:"input,omitempty" json:"input,omitempty"`
	// Schemas are glob patterns selecting definitions to generate.
	Schemas []string `yaml:"schemas,omitempty" json:"schemas,omitempty"`

	// Generation settings
	Optional bool   `yaml:"optional" json:"optional"`
	Seed     uint64 `yaml:"seed,omitempty" json:"seed,omitempty"`
	MinItems int    `yaml:"minItems" json:"minItems"`
	MaxItems int    `yaml:"maxItems" json:"maxItems"`

	// Output settings
	Format   string `yaml:"format" json:"format"`
	Indent   int    `yaml:"indent" json:"indent"`
	RootName string `yaml:"rootName" json:"rootName"`
	Resolve  bool   `yaml:"resolve" json:"resolve"`

	// Logging settings
	LogLevel  string `yaml:"logLevel" json:"logLevel"`
	LogFormat string `yaml:"logFormat" json:"logFormat"`

	// Sources tracks where each value came from.
	Sources map[string]string `yaml:"-" json:"-"`
	// SetFields holds the keys present in a loaded file, so an explicit
	// false can override a true from a lower layer.
	SetFields map[string]bool `yaml:"-" json:"-"`
}

// Value sources.
const (
	SourceDefault = "default"
	SourceGlobal  = "global"
	SourceLocal   = "local"
	SourceFile    = "file"
	SourceEnv     = "env"
	SourceFlag    = "flag"
)

// Validate checks value ranges.
func (c *Config) Validate() error {
	var problems []string
	if _, err := payload.ParseFormat(c.Format); err != nil {
		problems = append(problems, err.Error())
	}
	if c.MinItems < 0 {
		problems = append(problems, fmt.Sprintf("minItems %d must not be negative", c.MinItems))
	}
	if c.MaxItems < 0 {
		problems = append(problems, fmt.Sprintf("maxItems %d must not be negative", c.MaxItems))
	}
	if c.MaxItems > 0 && c.MinItems > c.MaxItems {
		problems = append(problems, fmt.Sprintf("minItems %d exceeds maxItems %d", c.MinItems, c.MaxItems))
	}
	if c.Indent < 0 || c.Indent > 8 {
		problems = append(problems, fmt.Sprintf("indent %d is out of range (0-8)", c.Indent))
	}
	if len(problems) > 0 {
		return fmt.Errorf("invalid configuration: %s", strings.Join(problems, "; "))
	}
	return nil
}

// IndentString returns the JSON indentation unit.
func (c *Config) IndentString() string {
	return strings.Repeat(" ", c.Indent)
}
