package generator

import (
	"github.com/getmockd/fixturegen/pkg/functions"
	"github.com/getmockd/fixturegen/pkg/schema"
)

// EnumGenerator emits randomEnumValue over the schema's enum list.
type EnumGenerator struct{}

// Handles implements Generator.
func (EnumGenerator) Handles(s *schema.Schema) bool {
	return s.HasEnum()
}

// Generate implements Generator. A schema without an enum list produces
// nothing.
func (EnumGenerator) Generate(ctx *Context, s *schema.Schema) error {
	if !s.HasEnum() {
		return nil
	}
	return ctx.Builder().AppendQuoted(functions.RandomEnumValue(s.Enum...))
}
