package generator

import (
	"github.com/getmockd/fixturegen/pkg/functions"
	"github.com/getmockd/fixturegen/pkg/schema"
)

// Patterns backing the string formats that have no dedicated function.
const (
	EmailPattern    = `[a-z]{5,10}@[a-z]{4,8}\.(com|org|net)`
	URIPattern      = `https://[a-z]{4,10}\.(com|org|net)/[a-z]{3,8}`
	HostnamePattern = `[a-z]{4,10}\.(example|test)\.(com|org)`
	IPv4Pattern     = `(25[0-5]|2[0-4][0-9]|1[0-9]{2}|[1-9]?[0-9])(\.(25[0-5]|2[0-4][0-9]|1[0-9]{2}|[1-9]?[0-9])){3}`
	IPv6Pattern     = `[0-9a-f]{1,4}(:[0-9a-f]{1,4}){7}`
)

// stringFormat matches string schemas of one format.
func stringFormat(format string) Match {
	return Match{Type: schema.TypeString, Format: format, Pattern: Any, Enum: AnyEnum}
}

// quoted returns a production that appends expr as a quoted leaf.
func quoted(expr string) func(*Context, *schema.Schema) error {
	return func(ctx *Context, _ *schema.Schema) error {
		return ctx.Builder().AppendQuoted(expr)
	}
}

// BooleanGenerator emits an unquoted true or false.
func BooleanGenerator() Generator {
	m := Match{Type: schema.TypeBoolean, Format: Any, Pattern: Any, Enum: AnyEnum}
	return NewMatchGenerator(m, func(ctx *Context, _ *schema.Schema) error {
		return ctx.Builder().AppendSimple(functions.RandomEnumValue("true", "false"))
	})
}

// DateGenerator emits the current date for format date.
func DateGenerator() Generator {
	return NewMatchGenerator(stringFormat(schema.FormatDate), quoted(functions.CurrentDate(functions.DatePattern)))
}

// DateTimeGenerator emits the current timestamp for format date-time.
func DateTimeGenerator() Generator {
	return NewMatchGenerator(stringFormat(schema.FormatDateTime), quoted(functions.CurrentDate(functions.DateTimePattern)))
}

// PatternGenerator emits randomValue for string schemas with a pattern.
func PatternGenerator() Generator {
	return Func{
		HandlesFunc: func(s *schema.Schema) bool {
			return s.Type == schema.TypeString && s.Pattern != ""
		},
		GenerateFunc: func(ctx *Context, s *schema.Schema) error {
			return ctx.Builder().AppendQuoted(functions.RandomValue(s.Pattern))
		},
	}
}

// UUIDGenerator emits randomUUID for format uuid.
func UUIDGenerator() Generator {
	return NewMatchGenerator(stringFormat(schema.FormatUUID), quoted(functions.RandomUUID()))
}

// EmailGenerator emits an address for format email.
func EmailGenerator() Generator {
	return NewMatchGenerator(stringFormat(schema.FormatEmail), quoted(functions.RandomValue(EmailPattern)))
}

// URIGenerator emits an https URL for format uri.
func URIGenerator() Generator {
	return NewMatchGenerator(stringFormat(schema.FormatURI), quoted(functions.RandomValue(URIPattern)))
}

// HostnameGenerator emits a host name for format hostname.
func HostnameGenerator() Generator {
	return NewMatchGenerator(stringFormat(schema.FormatHostname), quoted(functions.RandomValue(HostnamePattern)))
}

// IPv4Generator emits a dotted quad for format ipv4.
func IPv4Generator() Generator {
	return NewMatchGenerator(stringFormat(schema.FormatIPv4), quoted(functions.RandomValue(IPv4Pattern)))
}

// IPv6Generator emits a full eight-group address for format ipv6.
func IPv6Generator() Generator {
	return NewMatchGenerator(stringFormat(schema.FormatIPv6), quoted(functions.RandomValue(IPv6Pattern)))
}
