// Package generator turns schemas into element trees of generator-function
// expressions.
//
// A Context drives one generation run. It resolves $ref pointers through a
// definitions table, dispatches each schema through a Registry to the first
// Generator that handles it, and exposes the model Builder the generators
// write into:
//
//	tree, err := generator.Fixture(root,
//		generator.WithDefinitions(defs),
//		generator.WithOptions(generator.Options{GenerateOptionalFields: true}),
//		generator.WithSeed(42),
//	)
//
// The default registry tries generators in this order: Composite, Array,
// Object, Enum, Boolean, Date, DateTime, Pattern, UUID, Email, URI, Hostname,
// IPv4, IPv6, String, Number. Custom shapes are added with Registry.Prepend.
//
// Self-referential object schemas terminate: the object generator keeps the
// schemas it is expanding on a stack in the run's scratch cache and skips a
// schema that is already on it.
package generator
