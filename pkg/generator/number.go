package generator

import (
	"math"

	"github.com/getmockd/fixturegen/pkg/functions"
	"github.com/getmockd/fixturegen/pkg/schema"
)

// Number range defaults.
const (
	DefaultMinimum       = -1000.0
	DefaultMaximum       = 1000.0
	DefaultDecimalPlaces = 2
	minimumSpread        = 1000.0
	multipleOfSpread     = 100.0
)

// NumberGenerator emits randomNumberGenerator for integer and number schemas.
type NumberGenerator struct{}

// Handles implements Generator.
func (NumberGenerator) Handles(s *schema.Schema) bool {
	return s.IsNumeric()
}

// Generate implements Generator.
func (NumberGenerator) Generate(ctx *Context, s *schema.Schema) error {
	return ctx.Builder().AppendSimple(functions.RandomNumber(NumberRange(s)))
}

// NumberRange infers the arguments of randomNumberGenerator from s.
//
// A missing bound is derived from the other one by a spread of
// 100 × |multipleOf|, or max(2 × bound, 1000) without multipleOf. With
// neither bound the range is [-1000, 1000].
func NumberRange(s *schema.Schema) functions.NumberRange {
	r := functions.NumberRange{
		DecimalPlaces: decimalPlaces(s),
		ExclusiveMin:  s.ExclusiveMinimum,
		ExclusiveMax:  s.ExclusiveMaximum,
		MultipleOf:    s.MultipleOf,
	}

	switch {
	case s.Minimum != nil && s.Maximum != nil:
		r.Min, r.Max = *s.Minimum, *s.Maximum
	case s.Minimum != nil:
		r.Min = *s.Minimum
		r.Max = r.Min + spread(r.Min, s.MultipleOf)
	case s.Maximum != nil:
		r.Max = *s.Maximum
		r.Min = r.Max - spread(r.Max, s.MultipleOf)
	default:
		r.Min, r.Max = DefaultMinimum, DefaultMaximum
	}
	return r
}

func decimalPlaces(s *schema.Schema) int {
	switch {
	case s.Type == schema.TypeInteger:
		return 0
	case s.MultipleOf != nil:
		return functions.LeastSignificantDecimalPlace(*s.MultipleOf)
	default:
		return DefaultDecimalPlaces
	}
}

func spread(bound float64, multipleOf *float64) float64 {
	if multipleOf != nil {
		return multipleOfSpread * math.Abs(*multipleOf)
	}
	return math.Max(2*bound, minimumSpread)
}
