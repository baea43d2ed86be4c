package generator

import (
	"fmt"
	"slices"

	"github.com/getmockd/fixturegen/pkg/schema"
)

// Scratch keys of the recursion guards. Objects keep their own stack so a
// composite or array that wraps an object does not hide its properties.
const (
	ObjectStackKey    = "generator.objectStack"
	ExpansionStackKey = "generator.expansionStack"
)

// SchemaStack holds the schemas being expanded, compared by identity.
type SchemaStack struct {
	schemas []*schema.Schema
}

// Contains reports whether s is being expanded.
func (st *SchemaStack) Contains(s *schema.Schema) bool {
	return slices.Contains(st.schemas, s)
}

// Push marks s as being expanded.
func (st *SchemaStack) Push(s *schema.Schema) {
	st.schemas = append(st.schemas, s)
}

// Pop removes the most recent schema.
func (st *SchemaStack) Pop() {
	if len(st.schemas) > 0 {
		st.schemas = st.schemas[:len(st.schemas)-1]
	}
}

// Len returns the stack depth.
func (st *SchemaStack) Len() int {
	return len(st.schemas)
}

// objectStack returns the run's object recursion guard.
func objectStack(ctx *Context) *SchemaStack {
	return Scratch(ctx, ObjectStackKey, func() *SchemaStack { return &SchemaStack{} })
}

// expansionStack returns the run's guard for arrays and composites.
func expansionStack(ctx *Context) *SchemaStack {
	return Scratch(ctx, ExpansionStackKey, func() *SchemaStack { return &SchemaStack{} })
}

// ObjectGenerator emits an object with the schema's properties.
type ObjectGenerator struct{}

// Handles implements Generator.
func (ObjectGenerator) Handles(s *schema.Schema) bool {
	return s.IsObject()
}

// Generate implements Generator. A schema already being expanded further up
// the tree contributes nothing.
func (ObjectGenerator) Generate(ctx *Context, s *schema.Schema) error {
	stack := objectStack(ctx)
	if stack.Contains(s) {
		ctx.Logger().Debug("truncated recursive object", "schema", s.String(), "depth", stack.Len())
		return nil
	}
	stack.Push(s)
	defer stack.Pop()

	b := ctx.Builder()
	optional := ctx.Options().GenerateOptionalFields
	return b.Object(func() error {
		for _, prop := range s.Properties {
			if !optional && !s.IsRequired(prop.Name) {
				continue
			}
			err := b.Property(prop.Name, func() error {
				return ctx.Generate(prop.Schema)
			})
			if err != nil {
				return fmt.Errorf("property %s: %w", prop.Name, err)
			}
		}
		return nil
	})
}
