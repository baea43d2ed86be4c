package functions

import "strings"

// layoutReplacer maps Java-style date pattern tokens to Go layout tokens.
// Longer tokens come first so yyyy wins over yy.
var layoutReplacer = strings.NewReplacer(
	"yyyy", "2006",
	"yy", "06",
	"MM", "01",
	"dd", "02",
	"HH", "15",
	"hh", "03",
	"mm", "04",
	"ss", "05",
	"SSS", "000",
	"XXX", "Z07:00",
	"Z", "-0700",
)

// goLayout converts a pattern like yyyy-MM-ddTHH:mm:ssXXX to a time layout.
func goLayout(pattern string) string {
	return layoutReplacer.Replace(pattern)
}
