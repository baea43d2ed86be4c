package openapi

import (
	"fmt"
	"sort"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/getmockd/fixturegen/pkg/schema"
)

const componentPrefix = "#/components/schemas/"

// Converter maps kin-openapi schemas onto schema.Schema. References to
// components stay $ref pointers; any other reference is inlined. Each
// source schema is converted once, so inlined cycles keep their identity
// and the generator's recursion guard still sees them.
type Converter struct {
	seen map[*openapi3.Schema]*schema.Schema
}

// NewConverter returns a converter with an empty memo.
func NewConverter() *Converter {
	return &Converter{seen: make(map[*openapi3.Schema]*schema.Schema)}
}

// Convert maps s.
func (c *Converter) Convert(s *openapi3.Schema) *schema.Schema {
	if s == nil {
		return nil
	}
	if out, ok := c.seen[s]; ok {
		return out
	}
	out := &schema.Schema{}
	c.seen[s] = out

	out.Type = primaryType(s.Type)
	out.Format = s.Format
	out.Pattern = s.Pattern
	out.Enum = enumStrings(s.Enum)

	out.Minimum = s.Min
	out.Maximum = s.Max
	out.ExclusiveMinimum = s.ExclusiveMin
	out.ExclusiveMaximum = s.ExclusiveMax
	out.MultipleOf = s.MultipleOf

	out.MinLength = optionalInt(s.MinLength)
	out.MaxLength = pointerInt(s.MaxLength)
	out.MinItems = optionalInt(s.MinItems)
	out.MaxItems = pointerInt(s.MaxItems)
	out.Items = c.ref(s.Items)

	for _, name := range propertyOrder(s.Properties) {
		out.Properties = append(out.Properties, schema.Property{Name: name, Schema: c.ref(s.Properties[name])})
	}
	out.Required = append([]string(nil), s.Required...)

	out.AllOf = c.refs(s.AllOf)
	out.AnyOf = c.refs(s.AnyOf)
	out.OneOf = c.refs(s.OneOf)
	return out
}

func (c *Converter) ref(r *openapi3.SchemaRef) *schema.Schema {
	if r == nil {
		return nil
	}
	if strings.HasPrefix(r.Ref, componentPrefix) {
		return &schema.Schema{Ref: r.Ref}
	}
	return c.Convert(r.Value)
}

func (c *Converter) refs(rs openapi3.SchemaRefs) []*schema.Schema {
	if len(rs) == 0 {
		return nil
	}
	out := make([]*schema.Schema, 0, len(rs))
	for _, r := range rs {
		if s := c.ref(r); s != nil {
			out = append(out, s)
		}
	}
	return out
}

// propertyOrder returns the property names in declaration order when the
// loader recorded where each key sits, and in name order otherwise.
func propertyOrder(props openapi3.Schemas) []string {
	names := make([]string, 0, len(props))
	locations := make(map[string]openapi3.Location, len(props))
	for name, ref := range props {
		names = append(names, name)
		if loc, ok := keyLocation(ref); ok {
			locations[name] = loc
		}
	}
	sort.Strings(names)
	if len(locations) != len(names) {
		return names
	}
	sort.SliceStable(names, func(i, j int) bool {
		a, b := locations[names[i]], locations[names[j]]
		if a.Line != b.Line {
			return a.Line < b.Line
		}
		return a.Column < b.Column
	})
	return names
}

// keyLocation reports where the property key of r was declared. A $ref
// carries its own origin; an inline schema records it on the value.
func keyLocation(r *openapi3.SchemaRef) (openapi3.Location, bool) {
	if r == nil {
		return openapi3.Location{}, false
	}
	origin := r.Origin
	if r.Ref == "" && r.Value != nil {
		origin = r.Value.Origin
	}
	if origin == nil || origin.Key == nil {
		return openapi3.Location{}, false
	}
	return *origin.Key, true
}

// primaryType returns the first type other than null.
func primaryType(t *openapi3.Types) string {
	if t == nil {
		return ""
	}
	for _, name := range t.Slice() {
		if name != "null" {
			return name
		}
	}
	return ""
}

func enumStrings(values []any) []string {
	if values == nil {
		return nil
	}
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v == nil {
			out = append(out, "null")
			continue
		}
		out = append(out, fmt.Sprint(v))
	}
	return out
}

// optionalInt maps kin-openapi's zero-means-absent lower bounds.
func optionalInt(v uint64) *int {
	if v == 0 {
		return nil
	}
	n := int(v)
	return &n
}

func pointerInt(v *uint64) *int {
	if v == nil {
		return nil
	}
	n := int(*v)
	return &n
}
