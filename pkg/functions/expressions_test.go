package functions

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRandomString(t *testing.T) {
	assert.Equal(t, "randomString(10, MIXED, true, 1)", RandomString(10, Mixed, true, 1))
}

func TestRandomNumber(t *testing.T) {
	half := 0.5
	tests := []struct {
		name string
		in   NumberRange
		want string
	}{
		{
			name: "defaults",
			in:   NumberRange{DecimalPlaces: 2, Min: -1000, Max: 1000},
			want: "randomNumberGenerator(2, -1000, 1000, false, false)",
		},
		{
			name: "exclusive with multipleOf",
			in:   NumberRange{DecimalPlaces: 1, Min: 0, Max: 50, ExclusiveMin: true, MultipleOf: &half},
			want: "randomNumberGenerator(1, 0, 50, true, false, 0.5)",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RandomNumber(tt.in))
		})
	}
}

func TestRandomEnumValue(t *testing.T) {
	assert.Equal(t, "randomEnumValue('a','b','c')", RandomEnumValue("a", "b", "c"))
	assert.Equal(t, "randomEnumValue()", RandomEnumValue())
	assert.Equal(t, `randomEnumValue('it\'s','a\\b')`, RandomEnumValue("it's", `a\b`))
}

func TestOtherExpressions(t *testing.T) {
	assert.Equal(t, "randomUUID()", RandomUUID())
	assert.Equal(t, "currentDate('yyyy-MM-dd')", CurrentDate(DatePattern))
	assert.Equal(t, `randomValue('\\d{3}')`, RandomValue(`\d{3}`))
}

func TestLeastSignificantDecimalPlace(t *testing.T) {
	tests := []struct {
		in   float64
		want int
	}{
		{123.5, 1},
		{123.50, 1},
		{123.0, 0},
		{0.25, 2},
		{0.001, 3},
		{-2.125, 3},
		{100, 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, LeastSignificantDecimalPlace(tt.in), "value %v", tt.in)
	}
}

func TestFormatNumber(t *testing.T) {
	assert.Equal(t, "1000", FormatNumber(1000))
	assert.Equal(t, "-0.5", FormatNumber(-0.5))
	assert.Equal(t, "1000000000", FormatNumber(1e9))
}
