package generator

import "github.com/getmockd/fixturegen/pkg/schema"

// Registry is an ordered list of generators. The first generator that
// handles a schema wins.
type Registry struct {
	generators []Generator
}

// NewRegistry creates a registry trying gs in order.
func NewRegistry(gs ...Generator) *Registry {
	return &Registry{generators: append([]Generator(nil), gs...)}
}

// DefaultRegistry returns a registry with every built-in generator.
func DefaultRegistry() *Registry {
	return NewRegistry(
		CompositeGenerator{},
		EnumGenerator{},
		ArrayGenerator{},
		ObjectGenerator{},
		BooleanGenerator(),
		DateGenerator(),
		DateTimeGenerator(),
		PatternGenerator(),
		UUIDGenerator(),
		EmailGenerator(),
		URIGenerator(),
		HostnameGenerator(),
		IPv4Generator(),
		IPv6Generator(),
		StringGenerator{},
		NumberGenerator{},
	)
}

// Register appends generators after the existing ones.
func (r *Registry) Register(gs ...Generator) {
	r.generators = append(r.generators, gs...)
}

// Prepend places generators ahead of the existing ones.
func (r *Registry) Prepend(gs ...Generator) {
	r.generators = append(append([]Generator(nil), gs...), r.generators...)
}

// Len returns the number of registered generators.
func (r *Registry) Len() int {
	return len(r.generators)
}

// Resolve returns the first generator that handles s, or Noop.
func (r *Registry) Resolve(s *schema.Schema) Generator {
	if s == nil {
		return Noop
	}
	for _, g := range r.generators {
		if g.Handles(s) {
			return g
		}
	}
	return Noop
}
