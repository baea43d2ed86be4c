package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRefName(t *testing.T) {
	tests := []struct {
		ref  string
		want string
	}{
		{"#/components/schemas/Pet", "Pet"},
		{"#/definitions/Pet", "Pet"},
		{"#/$defs/Pet", "Pet"},
		{"Pet", "Pet"},
		{"other.yaml#/Pet", "other.yaml#/Pet"},
	}

	for _, tt := range tests {
		t.Run(tt.ref, func(t *testing.T) {
			assert.Equal(t, tt.want, RefName(tt.ref))
		})
	}
}

func TestDefinitions_Lookup(t *testing.T) {
	pet := &Schema{Type: TypeObject}
	defs := Definitions{"Pet": pet, "Broken": nil}

	got, ok := defs.Lookup("#/components/schemas/Pet")
	require.True(t, ok)
	assert.Same(t, pet, got)

	_, ok = defs.Lookup("#/components/schemas/Missing")
	assert.False(t, ok)

	_, ok = defs.Lookup("#/components/schemas/Broken")
	assert.False(t, ok, "nil definitions must not resolve")

	var empty Definitions
	_, ok = empty.Lookup("#/definitions/Pet")
	assert.False(t, ok)
}

func TestSchema_Predicates(t *testing.T) {
	var nilSchema *Schema
	assert.False(t, nilSchema.IsComposite())
	assert.False(t, nilSchema.HasEnum())
	assert.False(t, nilSchema.IsObject())
	assert.False(t, nilSchema.IsRequired("a"))

	assert.True(t, (&Schema{Enum: []string{}}).HasEnum())
	assert.False(t, (&Schema{}).HasEnum())

	assert.True(t, (&Schema{OneOf: []*Schema{{}}}).IsComposite())
	assert.True(t, (&Schema{Properties: Properties{{Name: "a", Schema: &Schema{}}}}).IsObject())
	assert.False(t, (&Schema{Type: TypeString, Properties: Properties{{Name: "a"}}}).IsObject())

	s := &Schema{Required: []string{"id"}}
	assert.True(t, s.IsRequired("id"))
	assert.False(t, s.IsRequired("name"))
}

func TestSchema_String(t *testing.T) {
	assert.Equal(t, "$ref:#/definitions/Pet", (&Schema{Ref: "#/definitions/Pet"}).String())
	assert.Equal(t, "string/uuid", (&Schema{Type: TypeString, Format: FormatUUID}).String())
	assert.Equal(t, "any oneOf[2]", (&Schema{OneOf: []*Schema{{}, {}}}).String())
}

func TestLoadBundle(t *testing.T) {
	data := []byte(`
definitions:
  Pet:
    type: object
    required: [name]
    properties:
      name: {type: string, minLength: 3, maxLength: 8}
      age: {type: integer, minimum: 0}
      kind: {type: string, enum: [cat, dog]}
      nicknames: {type: string, enum: []}
      tags:
        type: array
        minItems: 2
        items: {type: string}
      pair:
        type: array
        items:
          - {type: string}
          - {type: integer}
schema:
  $ref: '#/definitions/Pet'
`)

	b, err := LoadBundle(data)
	require.NoError(t, err)
	require.NotNil(t, b.Schema)
	assert.Equal(t, "#/definitions/Pet", b.Schema.Ref)

	pet, ok := b.Definitions.Lookup(b.Schema.Ref)
	require.True(t, ok)
	assert.Equal(t, []string{"name", "age", "kind", "nicknames", "tags", "pair"}, pet.Properties.Names())
	assert.True(t, pet.IsRequired("name"))

	name, _ := pet.Properties.Get("name")
	require.NotNil(t, name.MinLength)
	assert.Equal(t, 3, *name.MinLength)
	assert.Equal(t, 8, *name.MaxLength)

	kind, _ := pet.Properties.Get("kind")
	assert.Equal(t, []string{"cat", "dog"}, kind.Enum)

	nicknames, _ := pet.Properties.Get("nicknames")
	assert.NotNil(t, nicknames.Enum)
	assert.Empty(t, nicknames.Enum)

	age, _ := pet.Properties.Get("age")
	assert.Nil(t, age.Enum)
	require.NotNil(t, age.Minimum)
	assert.Zero(t, *age.Minimum)

	tags, _ := pet.Properties.Get("tags")
	require.NotNil(t, tags.Items)
	assert.Equal(t, TypeString, tags.Items.Type)
	assert.Equal(t, 2, *tags.MinItems)

	pair, _ := pet.Properties.Get("pair")
	assert.Nil(t, pair.Items)
	assert.Len(t, pair.Tuple, 2)
}

func TestLoadBundle_Errors(t *testing.T) {
	_, err := LoadBundle([]byte("foo: bar\n"))
	assert.Error(t, err)

	_, err = LoadBundle([]byte("schema:\n  type: array\n  items: 5\n"))
	assert.Error(t, err)

	_, err = LoadBundle([]byte("schema:\n  properties: [a, b]\n"))
	assert.Error(t, err)

	_, err = LoadBundle([]byte("definitions: [\n"))
	assert.Error(t, err)
}
