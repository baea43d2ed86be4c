package generator

import (
	"github.com/getmockd/fixturegen/pkg/functions"
	"github.com/getmockd/fixturegen/pkg/schema"
)

// String length bounds used when the schema sets none.
const (
	DefaultMaxLength = 10
	DefaultMinLength = 1
)

// StringGenerator emits randomString for string schemas that no format
// generator claimed.
type StringGenerator struct{}

var stringMatch = Match{Type: schema.TypeString, Format: Any, Pattern: Any, Enum: AnyEnum}

// Handles implements Generator.
func (StringGenerator) Handles(s *schema.Schema) bool {
	return stringMatch.Matches(s)
}

// Generate implements Generator.
func (StringGenerator) Generate(ctx *Context, s *schema.Schema) error {
	maxLength := positiveOr(s.MaxLength, DefaultMaxLength)
	minLength := positiveOr(s.MinLength, DefaultMinLength)
	if minLength > maxLength && positiveOr(s.MaxLength, 0) == 0 {
		maxLength = minLength
	}
	return ctx.Builder().AppendQuoted(functions.RandomString(maxLength, functions.Mixed, true, minLength))
}

// positiveOr returns *v, or def when v is nil or not positive.
func positiveOr(v *int, def int) int {
	if v == nil || *v <= 0 {
		return def
	}
	return *v
}
