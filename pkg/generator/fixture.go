package generator

import (
	"github.com/getmockd/fixturegen/pkg/model"
	"github.com/getmockd/fixturegen/pkg/schema"
)

// Fixture generates the element tree for s in a fresh context.
func Fixture(s *schema.Schema, opts ...ContextOption) (*model.Value, error) {
	ctx := NewContext(opts...)
	if err := ctx.Generate(s); err != nil {
		return nil, err
	}
	return ctx.Builder().Tree(), nil
}
