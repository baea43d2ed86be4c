package schema

import (
	"sort"
	"strings"
)

// Reference prefixes stripped by RefName.
var refPrefixes = []string{
	"#/components/schemas/",
	"#/definitions/",
	"#/$defs/",
}

// RefName returns the definition name a $ref points to.
// Unknown prefixes are kept so that lookups fail loudly instead of matching
// the wrong definition.
func RefName(ref string) string {
	for _, prefix := range refPrefixes {
		if name, ok := strings.CutPrefix(ref, prefix); ok {
			return name
		}
	}
	return ref
}

// ComponentRef returns the OpenAPI 3 reference for a component schema name.
func ComponentRef(name string) string {
	return "#/components/schemas/" + name
}

// Definitions maps reference names to schemas. It is treated as immutable
// for the duration of a generation run.
type Definitions map[string]*Schema

// Lookup resolves a $ref against the table.
func (d Definitions) Lookup(ref string) (*Schema, bool) {
	if d == nil {
		return nil, false
	}
	s, ok := d[RefName(ref)]
	return s, ok && s != nil
}

// Names returns the definition names in lexical order.
func (d Definitions) Names() []string {
	names := make([]string, 0, len(d))
	for name := range d {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
