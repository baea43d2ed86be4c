package functions

import (
	"regexp"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/getmockd/fixturegen/pkg/model"
)

func TestResolver_RandomString(t *testing.T) {
	r := NewResolver(WithSeed(1))
	alnum := regexp.MustCompile(`^[A-Za-z0-9]*$`)
	upper := regexp.MustCompile(`^[A-Z]*$`)

	for range 200 {
		s, err := r.Eval(RandomString(10, Mixed, true, 1))
		require.NoError(t, err)
		assert.GreaterOrEqual(t, len(s), 1)
		assert.LessOrEqual(t, len(s), 10)
		assert.Regexp(t, alnum, s)

		u, err := r.Eval(RandomString(5, Uppercase, false, 5))
		require.NoError(t, err)
		assert.Len(t, u, 5)
		assert.Regexp(t, upper, u)
	}
}

func TestResolver_RandomStringShortForm(t *testing.T) {
	r := NewResolver(WithSeed(1))
	s, err := r.Eval("randomString(7)")
	require.NoError(t, err)
	assert.Len(t, s, 7)
}

func TestResolver_RandomNumber(t *testing.T) {
	tests := []struct {
		name   string
		in     NumberRange
		places int
		check  func(t *testing.T, v float64)
	}{
		{
			name:   "inclusive",
			in:     NumberRange{DecimalPlaces: 2, Min: -1000, Max: 1000},
			places: 2,
			check: func(t *testing.T, v float64) {
				assert.GreaterOrEqual(t, v, -1000.0)
				assert.LessOrEqual(t, v, 1000.0)
			},
		},
		{
			name:   "exclusive integer",
			in:     NumberRange{Min: 0, Max: 2, ExclusiveMin: true, ExclusiveMax: true},
			places: 0,
			check: func(t *testing.T, v float64) {
				assert.Equal(t, 1.0, v)
			},
		},
		{
			name:   "multipleOf",
			in:     NumberRange{DecimalPlaces: 1, Min: 0, Max: 10, MultipleOf: ptr(2.5)},
			places: 1,
			check: func(t *testing.T, v float64) {
				assert.Contains(t, []float64{0, 2.5, 5, 7.5, 10}, v)
			},
		},
		{
			name:   "multipleOf exclusive",
			in:     NumberRange{Min: 0, Max: 10, ExclusiveMin: true, ExclusiveMax: true, MultipleOf: ptr(5.0)},
			places: 0,
			check: func(t *testing.T, v float64) {
				assert.Equal(t, 5.0, v)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewResolver(WithSeed(7))
			for range 100 {
				s, err := r.Eval(RandomNumber(tt.in))
				require.NoError(t, err)
				v, err := strconv.ParseFloat(s, 64)
				require.NoError(t, err, s)
				assert.Equal(t, tt.places, decimalsIn(s), s)
				tt.check(t, v)
			}
		})
	}
}

func TestResolver_RandomNumberEmptyRange(t *testing.T) {
	r := NewResolver(WithSeed(1))
	_, err := r.Eval(RandomNumber(NumberRange{Min: 1, Max: 1, ExclusiveMin: true}))
	assert.ErrorIs(t, err, ErrEmptyRange)

	_, err = r.Eval(RandomNumber(NumberRange{Min: 1, Max: 2, MultipleOf: ptr(5.0)}))
	assert.ErrorIs(t, err, ErrEmptyRange)

	_, err = r.Eval(RandomNumber(NumberRange{Min: 1, Max: 2, MultipleOf: ptr(0.0)}))
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestResolver_RandomEnumValue(t *testing.T) {
	r := NewResolver(WithSeed(3))
	seen := map[string]bool{}
	for range 100 {
		v, err := r.Eval(RandomEnumValue("red", "green", "it's"))
		require.NoError(t, err)
		seen[v] = true
	}
	assert.Equal(t, map[string]bool{"red": true, "green": true, "it's": true}, seen)

	v, err := r.Eval(RandomEnumValue(`C:\temp`))
	require.NoError(t, err)
	assert.Equal(t, `C:\temp`, v)

	v, err = r.Eval(RandomEnumValue())
	require.NoError(t, err)
	assert.Empty(t, v)
}

func TestResolver_RandomUUIDIsSeeded(t *testing.T) {
	a, err := NewResolver(WithSeed(9)).Eval(RandomUUID())
	require.NoError(t, err)
	b, err := NewResolver(WithSeed(9)).Eval(RandomUUID())
	require.NoError(t, err)

	assert.Equal(t, a, b)
	id, err := uuid.Parse(a)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(4), id.Version())
}

func TestResolver_CurrentDate(t *testing.T) {
	fixed := time.Date(2024, 3, 9, 7, 5, 1, 0, time.FixedZone("", 2*3600))
	r := NewResolver(WithClock(func() time.Time { return fixed }))

	d, err := r.Eval(CurrentDate(DatePattern))
	require.NoError(t, err)
	assert.Equal(t, "2024-03-09", d)

	dt, err := r.Eval(CurrentDate(DateTimePattern))
	require.NoError(t, err)
	assert.Equal(t, "2024-03-09T07:05:01+02:00", dt)
}

func TestResolver_RandomValue(t *testing.T) {
	patterns := []string{
		`^[A-Z]{2}-\d{4}$`,
		`[a-z]+@[a-z]+\.(com|org)`,
		`[^0-9]{3}`,
		`x?y*z+`,
		`it's`,
	}
	r := NewResolver(WithSeed(11))
	for _, p := range patterns {
		re := regexp.MustCompile(`^(?:` + strings.TrimSuffix(strings.TrimPrefix(p, "^"), "$") + `)$`)
		for range 50 {
			v, err := r.Eval(RandomValue(p))
			require.NoError(t, err, p)
			assert.Regexp(t, re, v, p)
		}
	}

	_, err := r.Eval(RandomValue("[unclosed"))
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestResolver_Errors(t *testing.T) {
	r := NewResolver()

	_, err := r.Eval("randomThing(1)")
	assert.ErrorIs(t, err, ErrUnknownFunction)

	_, err = r.Eval("randomString('x')")
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, err = r.Eval("randomNumberGenerator(1, 2)")
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestResolver_EvalLiteral(t *testing.T) {
	v, err := NewResolver().Eval("42")
	require.NoError(t, err)
	assert.Equal(t, "42", v)
	assert.False(t, IsCall("42"))
	assert.True(t, IsCall("randomUUID()"))
}

func TestResolver_Deterministic(t *testing.T) {
	exprs := []string{
		RandomString(10, Mixed, true, 1),
		RandomNumber(NumberRange{DecimalPlaces: 2, Min: -1000, Max: 1000}),
		RandomEnumValue("a", "b", "c"),
		RandomValue(`[a-f0-9]{8}`),
	}
	run := func() []string {
		r := NewResolver(WithSeed(42))
		out := make([]string, 0, len(exprs))
		for _, e := range exprs {
			v, err := r.Eval(e)
			require.NoError(t, err)
			out = append(out, v)
		}
		return out
	}
	assert.Equal(t, run(), run())
}

func TestResolver_Resolve(t *testing.T) {
	b := model.NewBuilder()
	err := b.Object(func() error {
		if err := b.Property("id", func() error { return b.AppendQuoted(RandomUUID()) }); err != nil {
			return err
		}
		return b.Property("tags", func() error {
			return b.Array(func() error {
				if err := b.AppendQuoted(RandomEnumValue("x")); err != nil {
					return err
				}
				return b.AppendSimple("7")
			})
		})
	})
	require.NoError(t, err)

	out, err := NewResolver(WithSeed(1)).Resolve(b.Tree())
	require.NoError(t, err)

	obj := out.Payload().(*model.Object)
	assert.Equal(t, []string{"id", "tags"}, obj.Keys())

	id, _ := obj.Get("id")
	leaf := id.(*model.Value).Payload().(model.Leaf)
	assert.True(t, leaf.Quoted)
	_, err = uuid.Parse(leaf.Expr)
	assert.NoError(t, err)

	tags, _ := obj.Get("tags")
	list := tags.(*model.Value).Payload().(*model.List)
	assert.Equal(t, []any{model.Leaf{Expr: "x", Quoted: true}, model.Leaf{Expr: "7"}}, list.Items())

	// The source tree is left untouched.
	srcID, _ := b.Tree().Payload().(*model.Object).Get("id")
	assert.Equal(t, RandomUUID(), srcID.(*model.Value).Payload().(model.Leaf).Expr)
}

func TestGoLayout(t *testing.T) {
	assert.Equal(t, "2006-01-02", goLayout(DatePattern))
	assert.Equal(t, "2006-01-02T15:04:05Z07:00", goLayout(DateTimePattern))
	assert.Equal(t, "02/01/06 03:04:05.000", goLayout("dd/MM/yy hh:mm:ss.SSS"))
}

func ptr[T any](v T) *T { return &v }

func decimalsIn(s string) int {
	_, frac, ok := strings.Cut(s, ".")
	if !ok {
		return 0
	}
	return len(frac)
}
