package openapi

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/getmockd/fixturegen/pkg/generator"
	"github.com/getmockd/fixturegen/pkg/model"
	"github.com/getmockd/fixturegen/pkg/schema"
)

const petstoreV3 = `
openapi: 3.0.3
info:
  title: Petstore
  version: 1.2.0
paths: {}
components:
  schemas:
    Pet:
      type: object
      required: [id, name]
      properties:
        name:
          type: string
          minLength: 2
          maxLength: 20
        id:
          type: integer
          format: int64
          minimum: 1
        status:
          type: string
          enum: [available, pending, sold]
        category:
          $ref: '#/components/schemas/Category'
        tags:
          type: array
          maxItems: 3
          items:
            type: string
    Category:
      type: object
      properties:
        id:
          type: integer
        weight:
          type: number
          minimum: 0
          exclusiveMinimum: true
          multipleOf: 0.25
    Node:
      type: object
      properties:
        value:
          type: string
        next:
          $ref: '#/components/schemas/Node'
    Animal:
      oneOf:
        - $ref: '#/components/schemas/Pet'
        - $ref: '#/components/schemas/Category'
`

const petstoreV2 = `
swagger: "2.0"
info:
  title: Legacy
  version: "0.9"
paths: {}
definitions:
  Order:
    type: object
    required: [id]
    properties:
      id:
        type: string
        format: uuid
      parent:
        $ref: '#/definitions/Order'
`

func TestLoadData_OpenAPI3(t *testing.T) {
	doc, err := LoadData([]byte(petstoreV3))
	require.NoError(t, err)

	assert.Equal(t, "Petstore", doc.Title)
	assert.Equal(t, "1.2.0", doc.Version)
	assert.Equal(t, []string{"Animal", "Category", "Node", "Pet"}, doc.Names())

	pet := doc.Definitions["Pet"]
	require.NotNil(t, pet)
	assert.Equal(t, schema.TypeObject, pet.Type)
	assert.Equal(t, []string{"name", "id", "status", "category", "tags"}, pet.Properties.Names())
	assert.Equal(t, []string{"id", "name"}, pet.Required)

	name, _ := pet.Properties.Get("name")
	require.NotNil(t, name.MinLength)
	assert.Equal(t, 2, *name.MinLength)
	assert.Equal(t, 20, *name.MaxLength)

	id, _ := pet.Properties.Get("id")
	assert.Equal(t, schema.TypeInteger, id.Type)
	assert.Equal(t, 1.0, *id.Minimum)

	status, _ := pet.Properties.Get("status")
	assert.Equal(t, []string{"available", "pending", "sold"}, status.Enum)

	category, _ := pet.Properties.Get("category")
	assert.Equal(t, "#/components/schemas/Category", category.Ref)

	tags, _ := pet.Properties.Get("tags")
	assert.Nil(t, tags.MinItems)
	assert.Equal(t, 3, *tags.MaxItems)
	assert.Equal(t, schema.TypeString, tags.Items.Type)

	weight, _ := doc.Definitions["Category"].Properties.Get("weight")
	assert.True(t, weight.ExclusiveMinimum)
	assert.Equal(t, 0.25, *weight.MultipleOf)

	next, _ := doc.Definitions["Node"].Properties.Get("next")
	assert.Equal(t, "#/components/schemas/Node", next.Ref)

	assert.Len(t, doc.Definitions["Animal"].OneOf, 2)
}

func TestLoadData_Swagger2(t *testing.T) {
	doc, err := LoadData([]byte(petstoreV2))
	require.NoError(t, err)

	assert.Equal(t, "Legacy", doc.Title)
	order := doc.Definitions["Order"]
	require.NotNil(t, order)
	parent, _ := order.Properties.Get("parent")
	assert.Equal(t, "#/components/schemas/Order", parent.Ref)
	id, _ := order.Properties.Get("id")
	assert.Equal(t, schema.FormatUUID, id.Format)
}

func TestLoadData_Invalid(t *testing.T) {
	_, err := LoadData([]byte("openapi: [unclosed"))
	assert.Error(t, err)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "petstore.yaml")
	require.NoError(t, os.WriteFile(path, []byte(petstoreV3), 0o600))

	doc, err := LoadFile(path)
	require.NoError(t, err)
	assert.Contains(t, doc.Definitions, "Pet")

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestDocument_Schema(t *testing.T) {
	doc, err := LoadData([]byte(petstoreV3))
	require.NoError(t, err)

	root, err := doc.Schema("Pet")
	require.NoError(t, err)
	assert.Equal(t, "#/components/schemas/Pet", root.Ref)

	_, err = doc.Schema("Unicorn")
	assert.Error(t, err)
}

func TestLoadedDocumentGenerates(t *testing.T) {
	doc, err := LoadData([]byte(petstoreV3))
	require.NoError(t, err)

	for _, name := range doc.Names() {
		root, err := doc.Schema(name)
		require.NoError(t, err)
		tree, err := generator.Fixture(root,
			generator.WithDefinitions(doc.Definitions),
			generator.WithOptions(generator.Options{GenerateOptionalFields: true}),
			generator.WithSeed(5),
		)
		require.NoError(t, err, name)
		_, ok := tree.Payload().(*model.Object)
		assert.True(t, ok, name)
	}
}

func TestConverter_InlineCycleKeepsIdentity(t *testing.T) {
	node := &openapi3.Schema{Type: &openapi3.Types{"object"}}
	node.Properties = openapi3.Schemas{
		"self": &openapi3.SchemaRef{Value: node},
	}

	out := NewConverter().Convert(node)
	self, ok := out.Properties.Get("self")
	require.True(t, ok)
	assert.Same(t, out, self)

	tree, err := generator.Fixture(out, generator.WithOptions(generator.Options{GenerateOptionalFields: true}))
	require.NoError(t, err)
	obj := tree.Payload().(*model.Object)
	v, _ := obj.Get("self")
	assert.True(t, v.(*model.Value).IsEmpty())
}

func TestLoadData_PropertyDeclarationOrder(t *testing.T) {
	doc, err := LoadData([]byte(`
openapi: 3.0.3
info: {title: Order, version: "1"}
paths: {}
components:
  schemas:
    Ref:
      type: string
    Item:
      type: object
      properties:
        zeta: {type: string}
        alpha: {$ref: '#/components/schemas/Ref'}
        mid: {type: integer}
    Flow:
      type: object
      properties: {b: {type: string}, a: {type: string}}
`))
	require.NoError(t, err)

	assert.Equal(t, []string{"zeta", "alpha", "mid"}, doc.Definitions["Item"].Properties.Names())
	assert.Equal(t, []string{"b", "a"}, doc.Definitions["Flow"].Properties.Names())

	tree, err := generator.Fixture(&schema.Schema{Ref: "#/components/schemas/Item"},
		generator.WithDefinitions(doc.Definitions),
		generator.WithOptions(generator.Options{GenerateOptionalFields: true}),
	)
	require.NoError(t, err)
	obj := tree.Payload().(*model.Object)
	assert.Equal(t, []string{"zeta", "alpha", "mid"}, obj.Keys())
}

func TestPropertyOrder_WithoutOriginsIsSorted(t *testing.T) {
	props := openapi3.Schemas{
		"zeta":  &openapi3.SchemaRef{Value: &openapi3.Schema{}},
		"alpha": &openapi3.SchemaRef{Value: &openapi3.Schema{}},
	}
	assert.Equal(t, []string{"alpha", "zeta"}, propertyOrder(props))
}

func TestConverter_Types(t *testing.T) {
	c := NewConverter()
	assert.Equal(t, "string", c.Convert(&openapi3.Schema{Type: &openapi3.Types{"null", "string"}}).Type)
	assert.Equal(t, "", c.Convert(&openapi3.Schema{}).Type)
	assert.Nil(t, c.Convert(&openapi3.Schema{}).Enum)
	assert.Equal(t, []string{}, c.Convert(&openapi3.Schema{Enum: []any{}}).Enum)
	assert.Equal(t, []string{"1", "true", "null"}, c.Convert(&openapi3.Schema{Enum: []any{1.0, true, nil}}).Enum)
	assert.Nil(t, c.Convert(nil))
}
