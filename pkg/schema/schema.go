package schema

import (
	"fmt"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

// Schema types.
const (
	TypeObject  = "object"
	TypeArray   = "array"
	TypeString  = "string"
	TypeInteger = "integer"
	TypeNumber  = "number"
	TypeBoolean = "boolean"
)

// String formats with dedicated generators.
const (
	FormatDate     = "date"
	FormatDateTime = "date-time"
	FormatUUID     = "uuid"
	FormatEmail    = "email"
	FormatURI      = "uri"
	FormatHostname = "hostname"
	FormatIPv4     = "ipv4"
	FormatIPv6     = "ipv6"
	FormatInt32    = "int32"
	FormatInt64    = "int64"
	FormatFloat    = "float"
	FormatDouble   = "double"
)

// Schema is a node of an API description.
//
// Pointer fields are nil when the keyword is absent. Enum distinguishes an
// absent list (nil) from an empty one.
type Schema struct {
	Type    string   `json:"type,omitempty" yaml:"type,omitempty"`
	Format  string   `json:"format,omitempty" yaml:"format,omitempty"`
	Pattern string   `json:"pattern,omitempty" yaml:"pattern,omitempty"`
	Enum    []string `json:"enum,omitempty" yaml:"enum,omitempty"`

	Minimum          *float64 `json:"minimum,omitempty" yaml:"minimum,omitempty"`
	Maximum          *float64 `json:"maximum,omitempty" yaml:"maximum,omitempty"`
	ExclusiveMinimum bool     `json:"exclusiveMinimum,omitempty" yaml:"exclusiveMinimum,omitempty"`
	ExclusiveMaximum bool     `json:"exclusiveMaximum,omitempty" yaml:"exclusiveMaximum,omitempty"`
	MultipleOf       *float64 `json:"multipleOf,omitempty" yaml:"multipleOf,omitempty"`

	MinLength *int `json:"minLength,omitempty" yaml:"minLength,omitempty"`
	MaxLength *int `json:"maxLength,omitempty" yaml:"maxLength,omitempty"`

	MinItems *int    `json:"minItems,omitempty" yaml:"minItems,omitempty"`
	MaxItems *int    `json:"maxItems,omitempty" yaml:"maxItems,omitempty"`
	Items    *Schema `json:"items,omitempty" yaml:"-"`
	// Tuple holds positional item schemas when items was given as a list.
	// The generator rejects such arrays.
	Tuple []*Schema `json:"-" yaml:"-"`

	Properties Properties `json:"properties,omitempty" yaml:"-"`
	Required   []string   `json:"required,omitempty" yaml:"required,omitempty"`

	AllOf []*Schema `json:"allOf,omitempty" yaml:"allOf,omitempty"`
	AnyOf []*Schema `json:"anyOf,omitempty" yaml:"anyOf,omitempty"`
	OneOf []*Schema `json:"oneOf,omitempty" yaml:"oneOf,omitempty"`

	Ref string `json:"$ref,omitempty" yaml:"$ref,omitempty"`
}

// Property is a named object member.
type Property struct {
	Name   string
	Schema *Schema
}

// Properties is an ordered list of object members.
type Properties []Property

// Get returns the schema of the named property.
func (p Properties) Get(name string) (*Schema, bool) {
	for _, prop := range p {
		if prop.Name == name {
			return prop.Schema, true
		}
	}
	return nil, false
}

// Names returns the property names in declaration order.
func (p Properties) Names() []string {
	names := make([]string, len(p))
	for i, prop := range p {
		names[i] = prop.Name
	}
	return names
}

// IsRequired reports whether name is listed in the required set.
func (s *Schema) IsRequired(name string) bool {
	if s == nil {
		return false
	}
	return slices.Contains(s.Required, name)
}

// IsComposite reports whether the schema carries allOf, anyOf or oneOf.
func (s *Schema) IsComposite() bool {
	if s == nil {
		return false
	}
	return len(s.AllOf) > 0 || len(s.AnyOf) > 0 || len(s.OneOf) > 0
}

// HasEnum reports whether the schema carries an enum list, even an empty one.
func (s *Schema) HasEnum() bool {
	return s != nil && s.Enum != nil
}

// IsReference reports whether the schema is a $ref pointer.
func (s *Schema) IsReference() bool {
	return s != nil && s.Ref != ""
}

// IsObject reports whether the schema describes an object. Schemas without a
// type that declare properties count as objects.
func (s *Schema) IsObject() bool {
	if s == nil {
		return false
	}
	return s.Type == TypeObject || (s.Type == "" && len(s.Properties) > 0)
}

// IsNumeric reports whether the schema is of integer or number type.
func (s *Schema) IsNumeric() bool {
	return s != nil && (s.Type == TypeInteger || s.Type == TypeNumber)
}

// String returns a short description for log output.
func (s *Schema) String() string {
	if s == nil {
		return "<nil>"
	}
	if s.Ref != "" {
		return "$ref:" + s.Ref
	}
	var b strings.Builder
	b.WriteString(s.Type)
	if b.Len() == 0 {
		b.WriteString("any")
	}
	if s.Format != "" {
		b.WriteString("/" + s.Format)
	}
	switch {
	case len(s.AllOf) > 0:
		fmt.Fprintf(&b, " allOf[%d]", len(s.AllOf))
	case len(s.AnyOf) > 0:
		fmt.Fprintf(&b, " anyOf[%d]", len(s.AnyOf))
	case len(s.OneOf) > 0:
		fmt.Fprintf(&b, " oneOf[%d]", len(s.OneOf))
	}
	return b.String()
}

// UnmarshalYAML decodes a schema node, keeping the declaration order of
// properties and accepting both the single-schema and the list form of items.
func (s *Schema) UnmarshalYAML(node *yaml.Node) error {
	type plain Schema
	var aux struct {
		plain      `yaml:",inline"`
		Items      yaml.Node `yaml:"items"`
		Properties yaml.Node `yaml:"properties"`
	}
	if err := node.Decode(&aux); err != nil {
		return err
	}
	*s = Schema(aux.plain)

	switch aux.Items.Kind {
	case 0:
	case yaml.MappingNode:
		s.Items = &Schema{}
		if err := aux.Items.Decode(s.Items); err != nil {
			return err
		}
	case yaml.SequenceNode:
		if err := aux.Items.Decode(&s.Tuple); err != nil {
			return err
		}
	default:
		return fmt.Errorf("line %d: items must be a schema or a list of schemas", aux.Items.Line)
	}

	switch aux.Properties.Kind {
	case 0:
	case yaml.MappingNode:
		content := aux.Properties.Content
		s.Properties = make(Properties, 0, len(content)/2)
		for i := 0; i+1 < len(content); i += 2 {
			prop := &Schema{}
			if err := content[i+1].Decode(prop); err != nil {
				return err
			}
			s.Properties = append(s.Properties, Property{Name: content[i].Value, Schema: prop})
		}
	default:
		return fmt.Errorf("line %d: properties must be a mapping", aux.Properties.Line)
	}
	return nil
}
