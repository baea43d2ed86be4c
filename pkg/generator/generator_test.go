package generator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/getmockd/fixturegen/pkg/model"
	"github.com/getmockd/fixturegen/pkg/schema"
)

func ptr[T any](v T) *T { return &v }

// generateLeaf runs s through a fresh context and returns the root leaf.
func generateLeaf(t *testing.T, s *schema.Schema, opts ...ContextOption) model.Leaf {
	t.Helper()
	tree, err := Fixture(s, append([]ContextOption{WithSeed(1)}, opts...)...)
	require.NoError(t, err)
	leaf, ok := tree.Payload().(model.Leaf)
	require.True(t, ok, "payload is %T", tree.Payload())
	return leaf
}

func TestRegistry_ResolveFallsBackToNoop(t *testing.T) {
	r := DefaultRegistry()
	assert.Equal(t, Noop, r.Resolve(nil))
	assert.Equal(t, Noop, r.Resolve(&schema.Schema{}))
	assert.Equal(t, Noop, r.Resolve(&schema.Schema{Type: "null"}))
	assert.Equal(t, Noop, NewRegistry().Resolve(&schema.Schema{Type: schema.TypeString}))
}

func TestRegistry_Order(t *testing.T) {
	r := DefaultRegistry()
	tests := []struct {
		name   string
		schema *schema.Schema
		want   Generator
	}{
		{"composite beats object", &schema.Schema{Type: schema.TypeObject, AllOf: []*schema.Schema{{}}}, CompositeGenerator{}},
		{"array", &schema.Schema{Type: schema.TypeArray}, ArrayGenerator{}},
		{"object", &schema.Schema{Type: schema.TypeObject}, ObjectGenerator{}},
		{"untyped with properties", &schema.Schema{Properties: schema.Properties{{Name: "a"}}}, ObjectGenerator{}},
		{"enum beats string", &schema.Schema{Type: schema.TypeString, Enum: []string{"a"}}, EnumGenerator{}},
		{"enum beats object", &schema.Schema{Type: schema.TypeObject, Enum: []string{"x"}}, EnumGenerator{}},
		{"enum beats array", &schema.Schema{Type: schema.TypeArray, Enum: []string{"[]"}}, EnumGenerator{}},
		{"composite beats enum", &schema.Schema{Enum: []string{"a"}, OneOf: []*schema.Schema{{}}}, CompositeGenerator{}},
		{"empty enum", &schema.Schema{Type: schema.TypeInteger, Enum: []string{}}, EnumGenerator{}},
		{"plain string", &schema.Schema{Type: schema.TypeString}, StringGenerator{}},
		{"unknown format string", &schema.Schema{Type: schema.TypeString, Format: "password"}, StringGenerator{}},
		{"integer", &schema.Schema{Type: schema.TypeInteger}, NumberGenerator{}},
		{"number", &schema.Schema{Type: schema.TypeNumber, Format: schema.FormatDouble}, NumberGenerator{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, r.Resolve(tt.schema))
		})
	}
}

func TestRegistry_Prepend(t *testing.T) {
	custom := Func{
		HandlesFunc:  func(s *schema.Schema) bool { return s.Type == schema.TypeString },
		GenerateFunc: func(ctx *Context, _ *schema.Schema) error { return ctx.Builder().AppendQuoted("custom") },
	}
	r := DefaultRegistry()
	n := r.Len()
	r.Prepend(custom)
	assert.Equal(t, n+1, r.Len())

	leaf := generateLeaf(t, &schema.Schema{Type: schema.TypeString}, WithRegistry(r))
	assert.Equal(t, model.Leaf{Expr: "custom", Quoted: true}, leaf)
}

func TestMatch(t *testing.T) {
	tests := []struct {
		name   string
		match  Match
		schema *schema.Schema
		want   bool
	}{
		{"exact", Match{Type: "string", Format: "uuid"}, &schema.Schema{Type: "string", Format: "uuid"}, true},
		{"format differs", Match{Type: "string", Format: "uuid"}, &schema.Schema{Type: "string"}, false},
		{"wildcards", Match{Type: "string", Format: Any, Pattern: Any, Enum: AnyEnum}, &schema.Schema{Type: "string", Format: "x", Pattern: "y", Enum: []string{"z"}}, true},
		{"nil enum rejects present enum", Match{Type: "string"}, &schema.Schema{Type: "string", Enum: []string{}}, false},
		{"enum equality", Match{Type: Any, Enum: []string{"a", "b"}}, &schema.Schema{Type: "string", Enum: []string{"a", "b"}}, true},
		{"enum mismatch", Match{Type: Any, Enum: []string{"a"}}, &schema.Schema{Type: "string", Enum: []string{"b"}}, false},
		{"nil schema", Match{Type: Any, Format: Any, Pattern: Any, Enum: AnyEnum}, nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.match.Matches(tt.schema))
			assert.Equal(t, tt.want, NewMatchGenerator(tt.match, nil).Handles(tt.schema))
		})
	}
}

func TestGenerators_HandleNil(t *testing.T) {
	for _, g := range DefaultRegistry().generators {
		assert.False(t, g.Handles(nil), "%T", g)
	}
	assert.False(t, Noop.Handles(nil))
}

func TestStringGenerator(t *testing.T) {
	tests := []struct {
		name   string
		schema *schema.Schema
		want   string
	}{
		{"bounds", &schema.Schema{Type: "string", MinLength: ptr(3), MaxLength: ptr(8)}, "randomString(8, MIXED, true, 3)"},
		{"defaults", &schema.Schema{Type: "string"}, "randomString(10, MIXED, true, 1)"},
		{"zero is unset", &schema.Schema{Type: "string", MinLength: ptr(0), MaxLength: ptr(0)}, "randomString(10, MIXED, true, 1)"},
		{"negative is unset", &schema.Schema{Type: "string", MaxLength: ptr(-4)}, "randomString(10, MIXED, true, 1)"},
		{"lone large minLength", &schema.Schema{Type: "string", MinLength: ptr(20)}, "randomString(20, MIXED, true, 20)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, model.Leaf{Expr: tt.want, Quoted: true}, generateLeaf(t, tt.schema))
		})
	}
}

func TestNumberGenerator(t *testing.T) {
	tests := []struct {
		name   string
		schema *schema.Schema
		want   string
	}{
		{"defaults", &schema.Schema{Type: "number"}, "randomNumberGenerator(2, -1000, 1000, false, false)"},
		{"only minimum", &schema.Schema{Type: "integer", Minimum: ptr(5.0)}, "randomNumberGenerator(0, 5, 1005, false, false)"},
		{"only maximum", &schema.Schema{Type: "integer", Maximum: ptr(15.0)}, "randomNumberGenerator(0, -985, 15, false, false)"},
		{"large minimum doubles", &schema.Schema{Type: "integer", Minimum: ptr(800.0)}, "randomNumberGenerator(0, 800, 2400, false, false)"},
		{"large negative minimum keeps default spread", &schema.Schema{Type: "integer", Minimum: ptr(-5000.0)}, "randomNumberGenerator(0, -5000, -4000, false, false)"},
		{"integer ignores fractional bounds", &schema.Schema{Type: "integer", Minimum: ptr(1.5), Maximum: ptr(9.25)}, "randomNumberGenerator(0, 1.5, 9.25, false, false)"},
		{"exclusive flags", &schema.Schema{Type: "number", Minimum: ptr(0.0), Maximum: ptr(1.0), ExclusiveMinimum: true, ExclusiveMaximum: true}, "randomNumberGenerator(2, 0, 1, true, true)"},
		{"multipleOf sets places and spread", &schema.Schema{Type: "number", Minimum: ptr(10.0), MultipleOf: ptr(0.50)}, "randomNumberGenerator(1, 10, 60, false, false, 0.5)"},
		{"multipleOf below maximum", &schema.Schema{Type: "number", Maximum: ptr(3.0), MultipleOf: ptr(-0.25)}, "randomNumberGenerator(2, -22, 3, false, false, -0.25)"},
		{"integer multipleOf", &schema.Schema{Type: "integer", Minimum: ptr(0.0), Maximum: ptr(100.0), MultipleOf: ptr(5.0)}, "randomNumberGenerator(0, 0, 100, false, false, 5)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, model.Leaf{Expr: tt.want}, generateLeaf(t, tt.schema))
		})
	}
}

func TestEnumGenerator(t *testing.T) {
	leaf := generateLeaf(t, &schema.Schema{Type: "string", Enum: []string{"a", "b", "c"}})
	assert.Equal(t, model.Leaf{Expr: "randomEnumValue('a','b','c')", Quoted: true}, leaf)

	leaf = generateLeaf(t, &schema.Schema{Enum: []string{}})
	assert.Equal(t, model.Leaf{Expr: "randomEnumValue()", Quoted: true}, leaf)

	// An enum constrains structured types too.
	leaf = generateLeaf(t, &schema.Schema{Type: "object", Enum: []string{"x"}})
	assert.Equal(t, model.Leaf{Expr: "randomEnumValue('x')", Quoted: true}, leaf)

	// Called directly on a schema without an enum, the generator is a no-op.
	ctx := NewContext()
	require.NoError(t, ctx.Run(EnumGenerator{}, &schema.Schema{Type: "string"}))
	assert.True(t, ctx.Builder().Tree().IsEmpty())
}

func TestFormatGenerators(t *testing.T) {
	tests := []struct {
		name   string
		schema *schema.Schema
		want   model.Leaf
	}{
		{"boolean", &schema.Schema{Type: "boolean"}, model.Leaf{Expr: "randomEnumValue('true','false')"}},
		{"date", &schema.Schema{Type: "string", Format: "date"}, model.Leaf{Expr: "currentDate('yyyy-MM-dd')", Quoted: true}},
		{"date-time", &schema.Schema{Type: "string", Format: "date-time"}, model.Leaf{Expr: "currentDate('yyyy-MM-ddTHH:mm:ssXXX')", Quoted: true}},
		{"uuid", &schema.Schema{Type: "string", Format: "uuid"}, model.Leaf{Expr: "randomUUID()", Quoted: true}},
		{"pattern", &schema.Schema{Type: "string", Pattern: `^\d{3}$`}, model.Leaf{Expr: `randomValue('^\\d{3}$')`, Quoted: true}},
		{"email", &schema.Schema{Type: "string", Format: "email"}, model.Leaf{Expr: `randomValue('[a-z]{5,10}@[a-z]{4,8}\\.(com|org|net)')`, Quoted: true}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, generateLeaf(t, tt.schema))
		})
	}
}
