package functions

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	mathrand "math/rand/v2"
	"regexp"
	"strconv"
	"time"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/getmockd/fixturegen/pkg/logging"
	"github.com/getmockd/fixturegen/pkg/model"
)

// Evaluation errors.
var (
	ErrUnknownFunction  = errors.New("unknown function")
	ErrInvalidArgument  = errors.New("invalid argument")
	ErrEmptyRange       = errors.New("empty number range")
	errTooManyArguments = fmt.Errorf("%w: too many arguments", ErrInvalidArgument)
)

// callPattern matches expressions that invoke a function.
var callPattern = regexp.MustCompile(`^\s*([A-Za-z_]\w*)\s*\(`)

// Resolver evaluates function expressions. It is not safe for concurrent
// use because it shares one random source.
type Resolver struct {
	rng      *mathrand.Rand
	now      func() time.Time
	log      *slog.Logger
	programs map[string]*vm.Program
	env      map[string]any
	options  []expr.Option
}

// ResolverOption configures a Resolver.
type ResolverOption func(*Resolver)

// WithRand sets the random source. A nil source uses the global one.
func WithRand(rng *mathrand.Rand) ResolverOption {
	return func(r *Resolver) { r.rng = rng }
}

// WithSeed sets a deterministic random source.
func WithSeed(seed uint64) ResolverOption {
	return func(r *Resolver) { r.rng = mathrand.New(mathrand.NewPCG(seed, seed)) }
}

// WithClock overrides the time source used by currentDate.
func WithClock(now func() time.Time) ResolverOption {
	return func(r *Resolver) { r.now = now }
}

// WithLogger sets the logger.
func WithLogger(log *slog.Logger) ResolverOption {
	return func(r *Resolver) { r.log = log }
}

// NewResolver creates a resolver.
func NewResolver(opts ...ResolverOption) *Resolver {
	r := &Resolver{
		now:      time.Now,
		log:      logging.Nop(),
		programs: make(map[string]*vm.Program),
	}
	for _, opt := range opts {
		opt(r)
	}
	r.env = map[string]any{
		Mixed:     Mixed,
		Uppercase: Uppercase,
		Lowercase: Lowercase,
	}
	r.options = []expr.Option{
		expr.Env(r.env),
		expr.Function(RandomStringFunc, r.randomString),
		expr.Function(RandomNumberFunc, r.randomNumber),
		expr.Function(RandomEnumValueFunc, r.randomEnumValue),
		expr.Function(RandomUUIDFunc, r.randomUUID),
		expr.Function(CurrentDateFunc, r.currentDate),
		expr.Function(RandomValueFunc, r.randomValue),
	}
	return r
}

var knownFunctions = map[string]bool{
	RandomStringFunc:    true,
	RandomNumberFunc:    true,
	RandomEnumValueFunc: true,
	RandomUUIDFunc:      true,
	CurrentDateFunc:     true,
	RandomValueFunc:     true,
}

// IsCall reports whether expression invokes a function.
func IsCall(expression string) bool {
	return callPattern.MatchString(expression)
}

// Eval evaluates a single expression. Expressions that are not function
// calls are returned unchanged.
func (r *Resolver) Eval(expression string) (string, error) {
	m := callPattern.FindStringSubmatch(expression)
	if m == nil {
		return expression, nil
	}
	if !knownFunctions[m[1]] {
		return "", fmt.Errorf("%w: %s", ErrUnknownFunction, m[1])
	}

	program, ok := r.programs[expression]
	if !ok {
		var err error
		program, err = expr.Compile(expression, r.options...)
		if err != nil {
			return "", fmt.Errorf("compile %q: %w", expression, err)
		}
		r.programs[expression] = program
	}

	out, err := expr.Run(program, r.env)
	if err != nil {
		return "", fmt.Errorf("evaluate %q: %w", expression, err)
	}
	r.log.Debug("evaluated expression", "expression", expression, "result", out)
	return fmt.Sprint(out), nil
}

// Resolve returns a copy of tree in which every leaf holds its evaluated
// value. The quoting of each leaf is preserved.
func (r *Resolver) Resolve(tree *model.Value) (*model.Value, error) {
	out := model.NewValue()
	if tree == nil || tree.IsEmpty() {
		return out, nil
	}
	payload, err := r.resolveNode(tree.Payload())
	if err != nil {
		return nil, err
	}
	if err := out.Push(payload); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *Resolver) resolveNode(node any) (any, error) {
	switch n := node.(type) {
	case model.Leaf:
		v, err := r.Eval(n.Expr)
		if err != nil {
			return nil, err
		}
		return model.Leaf{Expr: v, Quoted: n.Quoted}, nil
	case *model.Value:
		return r.Resolve(n)
	case *model.Object:
		obj := model.NewObject()
		for _, key := range n.Keys() {
			child, _ := n.Get(key)
			resolved, err := r.resolveNode(child)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", key, err)
			}
			if err := obj.PushKeyed(key, resolved); err != nil {
				return nil, err
			}
		}
		return obj, nil
	case *model.List:
		list := model.NewList()
		for i, item := range n.Items() {
			resolved, err := r.resolveNode(item)
			if err != nil {
				return nil, fmt.Errorf("[%d]: %w", i, err)
			}
			if err := list.Push(resolved); err != nil {
				return nil, err
			}
		}
		return list, nil
	default:
		return nil, fmt.Errorf("unexpected node %T", node)
	}
}

// randomString(maxLength[, notation[, includeNumbers[, minLength]]])
func (r *Resolver) randomString(params ...any) (any, error) {
	if len(params) == 0 {
		return nil, fmt.Errorf("%w: %s requires a length", ErrInvalidArgument, RandomStringFunc)
	}
	if len(params) > 4 {
		return nil, errTooManyArguments
	}
	maxLength, err := intArg(params, 0)
	if err != nil {
		return nil, err
	}
	notation := Mixed
	if len(params) > 1 {
		if notation, err = stringArg(params, 1); err != nil {
			return nil, err
		}
	}
	includeNumbers := false
	if len(params) > 2 {
		if includeNumbers, err = boolArg(params, 2); err != nil {
			return nil, err
		}
	}
	minLength := maxLength
	if len(params) > 3 {
		if minLength, err = intArg(params, 3); err != nil {
			return nil, err
		}
	}
	if maxLength < 0 || minLength < 0 {
		return nil, fmt.Errorf("%w: negative string length", ErrInvalidArgument)
	}

	length := maxLength
	if minLength < maxLength {
		length = minLength + rngIntN(r.rng, maxLength-minLength+1)
	}
	return randomChars(r.rng, alphabet(notation, includeNumbers), length), nil
}

// randomNumberGenerator(decimalPlaces, min, max, exclusiveMin, exclusiveMax[, multipleOf])
func (r *Resolver) randomNumber(params ...any) (any, error) {
	if len(params) < 5 || len(params) > 6 {
		return nil, fmt.Errorf("%w: %s takes 5 or 6 arguments, got %d", ErrInvalidArgument, RandomNumberFunc, len(params))
	}
	places, err := intArg(params, 0)
	if err != nil {
		return nil, err
	}
	if places < 0 {
		return nil, fmt.Errorf("%w: negative decimal places", ErrInvalidArgument)
	}
	var nr NumberRange
	nr.DecimalPlaces = places
	if nr.Min, err = floatArg(params, 1); err != nil {
		return nil, err
	}
	if nr.Max, err = floatArg(params, 2); err != nil {
		return nil, err
	}
	if nr.ExclusiveMin, err = boolArg(params, 3); err != nil {
		return nil, err
	}
	if nr.ExclusiveMax, err = boolArg(params, 4); err != nil {
		return nil, err
	}
	if len(params) == 6 {
		m, err := floatArg(params, 5)
		if err != nil {
			return nil, err
		}
		nr.MultipleOf = &m
	}
	return randomNumberIn(r.rng, nr)
}

// randomNumberIn draws a number from the range on a grid of either
// multipleOf or 10^-decimalPlaces.
func randomNumberIn(rng *mathrand.Rand, nr NumberRange) (string, error) {
	step := math.Pow10(-nr.DecimalPlaces)
	places := nr.DecimalPlaces
	if nr.MultipleOf != nil {
		step = math.Abs(*nr.MultipleOf)
		if step == 0 {
			return "", fmt.Errorf("%w: multipleOf must not be zero", ErrInvalidArgument)
		}
		places = LeastSignificantDecimalPlace(step)
	}

	lo := math.Ceil(nr.Min/step - gridTolerance)
	hi := math.Floor(nr.Max/step + gridTolerance)
	if nr.ExclusiveMin && onGrid(lo*step, nr.Min) {
		lo++
	}
	if nr.ExclusiveMax && onGrid(hi*step, nr.Max) {
		hi--
	}
	if lo > hi {
		return "", fmt.Errorf("%w: [%s, %s]", ErrEmptyRange, FormatNumber(nr.Min), FormatNumber(nr.Max))
	}

	var k float64
	if span := hi - lo; span < 1<<62 {
		k = lo + float64(rngInt64N(rng, int64(span)+1))
	} else {
		k = math.Floor(lo + rngFloat64(rng)*span)
	}
	return strconv.FormatFloat(k*step, 'f', places, 64), nil
}

const gridTolerance = 1e-9

func onGrid(v, bound float64) bool {
	return math.Abs(v-bound) <= gridTolerance*math.Max(1, math.Abs(bound))
}

// randomEnumValue('a', 'b', ...)
func (r *Resolver) randomEnumValue(params ...any) (any, error) {
	if len(params) == 0 {
		return "", nil
	}
	i := rngIntN(r.rng, len(params))
	return stringArg(params, i)
}

// randomUUID()
func (r *Resolver) randomUUID(params ...any) (any, error) {
	if len(params) != 0 {
		return nil, errTooManyArguments
	}
	return rngUUID(r.rng)
}

// currentDate(['pattern'])
func (r *Resolver) currentDate(params ...any) (any, error) {
	pattern := DateTimePattern
	switch len(params) {
	case 0:
	case 1:
		p, err := stringArg(params, 0)
		if err != nil {
			return nil, err
		}
		pattern = p
	default:
		return nil, errTooManyArguments
	}
	return r.now().Format(goLayout(pattern)), nil
}

// randomValue('regex')
func (r *Resolver) randomValue(params ...any) (any, error) {
	if len(params) != 1 {
		return nil, fmt.Errorf("%w: %s takes one pattern", ErrInvalidArgument, RandomValueFunc)
	}
	pattern, err := stringArg(params, 0)
	if err != nil {
		return nil, err
	}
	return matchingString(r.rng, pattern)
}

func intArg(params []any, i int) (int, error) {
	switch v := params[i].(type) {
	case int:
		return v, nil
	case int64:
		return int(v), nil
	case float64:
		if v == math.Trunc(v) {
			return int(v), nil
		}
	}
	return 0, fmt.Errorf("%w: argument %d: want integer, got %v", ErrInvalidArgument, i+1, params[i])
}

func floatArg(params []any, i int) (float64, error) {
	switch v := params[i].(type) {
	case int:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case float64:
		return v, nil
	}
	return 0, fmt.Errorf("%w: argument %d: want number, got %v", ErrInvalidArgument, i+1, params[i])
}

func boolArg(params []any, i int) (bool, error) {
	switch v := params[i].(type) {
	case bool:
		return v, nil
	case string:
		if b, err := strconv.ParseBool(v); err == nil {
			return b, nil
		}
	}
	return false, fmt.Errorf("%w: argument %d: want boolean, got %v", ErrInvalidArgument, i+1, params[i])
}

func stringArg(params []any, i int) (string, error) {
	if s, ok := params[i].(string); ok {
		return s, nil
	}
	return "", fmt.Errorf("%w: argument %d: want string, got %v", ErrInvalidArgument, i+1, params[i])
}
