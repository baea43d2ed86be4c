package functions

import (
	"fmt"
	mathrand "math/rand/v2"
	"regexp/syntax"
	"strings"
)

// maxRepeat bounds unbounded quantifiers such as * and +.
const maxRepeat = 10

const (
	printableLow  = 0x20
	printableHigh = 0x7e
)

// matchingString produces a random string matched by pattern. Anchors and
// word boundaries emit nothing.
func matchingString(rng *mathrand.Rand, pattern string) (string, error) {
	re, err := syntax.Parse(pattern, syntax.Perl)
	if err != nil {
		return "", fmt.Errorf("%w: pattern %q: %v", ErrInvalidArgument, pattern, err)
	}
	var b strings.Builder
	writeMatch(&b, rng, re.Simplify())
	return b.String(), nil
}

func writeMatch(b *strings.Builder, rng *mathrand.Rand, re *syntax.Regexp) {
	switch re.Op {
	case syntax.OpLiteral:
		for _, r := range re.Rune {
			b.WriteRune(r)
		}
	case syntax.OpCharClass:
		b.WriteRune(runeInClass(rng, re.Rune))
	case syntax.OpAnyChar, syntax.OpAnyCharNotNL:
		b.WriteRune(rune(printableLow + rngIntN(rng, printableHigh-printableLow+1)))
	case syntax.OpCapture:
		writeMatch(b, rng, re.Sub[0])
	case syntax.OpConcat:
		for _, sub := range re.Sub {
			writeMatch(b, rng, sub)
		}
	case syntax.OpAlternate:
		writeMatch(b, rng, re.Sub[rngIntN(rng, len(re.Sub))])
	case syntax.OpStar:
		repeatMatch(b, rng, re.Sub[0], 0, maxRepeat)
	case syntax.OpPlus:
		repeatMatch(b, rng, re.Sub[0], 1, 1+maxRepeat)
	case syntax.OpQuest:
		repeatMatch(b, rng, re.Sub[0], 0, 1)
	case syntax.OpRepeat:
		hi := re.Max
		if hi < 0 {
			hi = re.Min + maxRepeat
		}
		repeatMatch(b, rng, re.Sub[0], re.Min, hi)
	}
}

func repeatMatch(b *strings.Builder, rng *mathrand.Rand, re *syntax.Regexp, lo, hi int) {
	n := lo + rngIntN(rng, hi-lo+1)
	for range n {
		writeMatch(b, rng, re)
	}
}

// runeInClass picks a rune from a class given as inclusive range pairs.
// Printable ASCII members are preferred so negated classes stay readable.
func runeInClass(rng *mathrand.Rand, ranges []rune) rune {
	if len(ranges) == 0 {
		return 0
	}
	if r, ok := pickInRanges(rng, ranges, printableLow, printableHigh); ok {
		return r
	}
	return ranges[0] + rune(rngIntN(rng, int(ranges[1]-ranges[0])+1))
}

// pickInRanges picks uniformly among the class members inside [lo, hi].
func pickInRanges(rng *mathrand.Rand, ranges []rune, lo, hi rune) (rune, bool) {
	total := 0
	for i := 0; i+1 < len(ranges); i += 2 {
		from, to := max(ranges[i], lo), min(ranges[i+1], hi)
		if from <= to {
			total += int(to-from) + 1
		}
	}
	if total == 0 {
		return 0, false
	}
	n := rngIntN(rng, total)
	for i := 0; i+1 < len(ranges); i += 2 {
		from, to := max(ranges[i], lo), min(ranges[i+1], hi)
		if from > to {
			continue
		}
		size := int(to-from) + 1
		if n < size {
			return from + rune(n), true
		}
		n -= size
	}
	return 0, false
}
