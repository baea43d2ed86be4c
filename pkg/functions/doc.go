// Package functions defines the generator-function expressions embedded in
// fixtures and evaluates them into concrete values.
//
// # Grammar
//
//   - randomString(maxLength, MIXED|UPPERCASE|LOWERCASE, includeNumbers, minLength)
//   - randomNumberGenerator(decimalPlaces, min, max, exclusiveMin, exclusiveMax[, multipleOf])
//   - randomEnumValue('v1', 'v2', ...)
//   - randomUUID()
//   - currentDate('yyyy-MM-dd')
//   - randomValue('[a-z]{3}')
//
// String arguments are single-quoted; single quotes and backslashes inside
// them are escaped with a backslash.
//
// # Evaluation
//
// A Resolver compiles expressions with expr-lang/expr and runs them against
// its own random source:
//
//	r := functions.NewResolver(functions.WithSeed(42))
//	v, err := r.Eval("randomString(8, MIXED, true, 3)")
//	resolved, err := r.Resolve(tree)
//
// Resolve returns a copy of a model tree whose leaves hold the evaluated
// values. Leaves that are not function calls are copied verbatim.
package functions
