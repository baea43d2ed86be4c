package functions

import (
	mathrand "math/rand/v2"

	"github.com/google/uuid"
)

const (
	upperLetters = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	lowerLetters = "abcdefghijklmnopqrstuvwxyz"
	digits       = "0123456789"
)

// rngIntN returns a random int in [0, n) using the provided RNG if non-nil,
// otherwise falls back to the global math/rand/v2 source.
func rngIntN(rng *mathrand.Rand, n int) int {
	if n <= 0 {
		return 0
	}
	if rng != nil {
		return rng.IntN(n)
	}
	return mathrand.IntN(n)
}

// rngInt64N is rngIntN for int64 spans.
func rngInt64N(rng *mathrand.Rand, n int64) int64 {
	if n <= 0 {
		return 0
	}
	if rng != nil {
		return rng.Int64N(n)
	}
	return mathrand.Int64N(n)
}

func rngFloat64(rng *mathrand.Rand) float64 {
	if rng != nil {
		return rng.Float64()
	}
	return mathrand.Float64()
}

// rngReader adapts the RNG to io.Reader so uuid can draw from it.
type rngReader struct {
	rng *mathrand.Rand
}

func (r rngReader) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = byte(rngIntN(r.rng, 256))
	}
	return len(p), nil
}

// rngUUID generates a version 4 UUID. A seeded RNG yields deterministic
// output; a nil RNG uses crypto/rand.
func rngUUID(rng *mathrand.Rand) (string, error) {
	if rng == nil {
		return uuid.NewString(), nil
	}
	id, err := uuid.NewRandomFromReader(rngReader{rng: rng})
	if err != nil {
		return "", err
	}
	return id.String(), nil
}

// alphabet returns the characters randomString draws from.
func alphabet(notation string, includeNumbers bool) string {
	var chars string
	switch notation {
	case Uppercase:
		chars = upperLetters
	case Lowercase:
		chars = lowerLetters
	default:
		chars = upperLetters + lowerLetters
	}
	if includeNumbers {
		chars += digits
	}
	return chars
}

func randomChars(rng *mathrand.Rand, chars string, n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = chars[rngIntN(rng, len(chars))]
	}
	return string(b)
}
