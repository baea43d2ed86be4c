package generator

import (
	"slices"

	"github.com/getmockd/fixturegen/pkg/schema"
)

// Generator produces the tree content for one schema shape.
type Generator interface {
	// Handles reports whether the generator applies to s. It returns false
	// for a nil schema.
	Handles(s *schema.Schema) bool
	// Generate writes the content for s into the context's builder.
	Generate(ctx *Context, s *schema.Schema) error
}

// Noop is returned by a registry when no generator applies.
var Noop Generator = noop{}

type noop struct{}

func (noop) Handles(*schema.Schema) bool              { return false }
func (noop) Generate(*Context, *schema.Schema) error { return nil }

// Func adapts a predicate and a production function to a Generator.
type Func struct {
	HandlesFunc  func(s *schema.Schema) bool
	GenerateFunc func(ctx *Context, s *schema.Schema) error
}

// Handles implements Generator.
func (f Func) Handles(s *schema.Schema) bool {
	return s != nil && f.HandlesFunc != nil && f.HandlesFunc(s)
}

// Generate implements Generator.
func (f Func) Generate(ctx *Context, s *schema.Schema) error {
	if f.GenerateFunc == nil {
		return nil
	}
	return f.GenerateFunc(ctx, s)
}

// Any is the wildcard for a Match field.
const Any = "$ANY$"

// AnyEnum is the wildcard for Match.Enum.
var AnyEnum = []string{Any}

// Match is a declarative predicate on type, format, pattern and enum. Each
// field either equals the schema's value or is the wildcard.
type Match struct {
	Type    string
	Format  string
	Pattern string
	// Enum must equal the schema's enum list. A nil Enum matches only
	// schemas without one; AnyEnum matches every schema.
	Enum []string
}

// Matches reports whether s satisfies every field.
func (m Match) Matches(s *schema.Schema) bool {
	if s == nil {
		return false
	}
	return matchField(m.Type, s.Type) &&
		matchField(m.Format, s.Format) &&
		matchField(m.Pattern, s.Pattern) &&
		m.matchEnum(s.Enum)
}

func matchField(want, got string) bool {
	return want == Any || want == got
}

func (m Match) matchEnum(got []string) bool {
	if len(m.Enum) == 1 && m.Enum[0] == Any {
		return true
	}
	if (m.Enum == nil) != (got == nil) {
		return false
	}
	return slices.Equal(m.Enum, got)
}

// NewMatchGenerator returns a generator that handles the schemas m matches.
func NewMatchGenerator(m Match, produce func(ctx *Context, s *schema.Schema) error) Generator {
	return Func{HandlesFunc: m.Matches, GenerateFunc: produce}
}
