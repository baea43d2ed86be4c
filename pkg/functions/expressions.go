package functions

import (
	"fmt"
	"strconv"
	"strings"
)

// Function names.
const (
	RandomStringFunc    = "randomString"
	RandomNumberFunc    = "randomNumberGenerator"
	RandomEnumValueFunc = "randomEnumValue"
	RandomUUIDFunc      = "randomUUID"
	CurrentDateFunc     = "currentDate"
	RandomValueFunc     = "randomValue"
)

// Character notations accepted by randomString.
const (
	Mixed     = "MIXED"
	Uppercase = "UPPERCASE"
	Lowercase = "LOWERCASE"
)

// Date patterns used for the date and date-time string formats.
const (
	DatePattern     = "yyyy-MM-dd"
	DateTimePattern = "yyyy-MM-ddTHH:mm:ssXXX"
)

// RandomString returns a randomString expression.
func RandomString(maxLength int, notation string, includeNumbers bool, minLength int) string {
	return fmt.Sprintf("%s(%d, %s, %t, %d)", RandomStringFunc, maxLength, notation, includeNumbers, minLength)
}

// NumberRange holds the arguments of a randomNumberGenerator expression.
type NumberRange struct {
	DecimalPlaces int
	Min           float64
	Max           float64
	ExclusiveMin  bool
	ExclusiveMax  bool
	// MultipleOf is appended as a last argument when set.
	MultipleOf *float64
}

// RandomNumber returns a randomNumberGenerator expression.
func RandomNumber(r NumberRange) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s(%d, %s, %s, %t, %t", RandomNumberFunc,
		r.DecimalPlaces, FormatNumber(r.Min), FormatNumber(r.Max), r.ExclusiveMin, r.ExclusiveMax)
	if r.MultipleOf != nil {
		b.WriteString(", " + FormatNumber(*r.MultipleOf))
	}
	b.WriteString(")")
	return b.String()
}

// RandomEnumValue returns a randomEnumValue expression listing every value
// as its own quoted argument.
func RandomEnumValue(values ...string) string {
	quoted := make([]string, len(values))
	for i, v := range values {
		quoted[i] = QuoteArg(v)
	}
	return RandomEnumValueFunc + "(" + strings.Join(quoted, ",") + ")"
}

// RandomUUID returns a randomUUID expression.
func RandomUUID() string {
	return RandomUUIDFunc + "()"
}

// CurrentDate returns a currentDate expression for a Java-style pattern.
func CurrentDate(pattern string) string {
	return CurrentDateFunc + "(" + QuoteArg(pattern) + ")"
}

// RandomValue returns a randomValue expression producing strings that match
// the regular expression.
func RandomValue(pattern string) string {
	return RandomValueFunc + "(" + QuoteArg(pattern) + ")"
}

// QuoteArg wraps s in single quotes, escaping backslashes and single quotes.
func QuoteArg(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `'`, `\'`)
	return "'" + s + "'"
}

// FormatNumber renders v in plain decimal notation with the shortest exact
// representation.
func FormatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// LeastSignificantDecimalPlace returns the number of significant fractional
// digits of v, ignoring trailing zeros: 123.50 yields 1, 123.0 yields 0.
func LeastSignificantDecimalPlace(v float64) int {
	s := FormatNumber(v)
	_, frac, found := strings.Cut(s, ".")
	if !found {
		return 0
	}
	return len(strings.TrimRight(frac, "0"))
}
