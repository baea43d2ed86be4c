package generator

import (
	"fmt"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/getmockd/fixturegen/pkg/logging"
	"github.com/getmockd/fixturegen/pkg/model"
	"github.com/getmockd/fixturegen/pkg/schema"
)

// Context holds the state of one generation run. It is not safe for
// concurrent use; create one Context per run.
type Context struct {
	registry    *Registry
	definitions schema.Definitions
	builder     *model.Builder
	options     Options
	rng         *rand.Rand
	log         *slog.Logger
	scratch     map[string]any
}

// ContextOption configures a Context.
type ContextOption func(*Context)

// WithRegistry replaces the default registry.
func WithRegistry(r *Registry) ContextOption {
	return func(c *Context) { c.registry = r }
}

// WithDefinitions sets the table used to resolve $ref pointers.
func WithDefinitions(defs schema.Definitions) ContextOption {
	return func(c *Context) { c.definitions = defs }
}

// WithOptions sets the generation options. Zero item bounds fall back to
// the defaults.
func WithOptions(o Options) ContextOption {
	return func(c *Context) { c.options = o.withDefaults() }
}

// WithRand sets the random source.
func WithRand(rng *rand.Rand) ContextOption {
	return func(c *Context) {
		if rng != nil {
			c.rng = rng
		}
	}
}

// WithSeed sets a deterministic random source.
func WithSeed(seed uint64) ContextOption {
	return func(c *Context) { c.rng = rand.New(rand.NewPCG(seed, seed)) }
}

// WithLogger sets the logger.
func WithLogger(log *slog.Logger) ContextOption {
	return func(c *Context) {
		if log != nil {
			c.log = log
		}
	}
}

// WithBuilder makes the context write into an existing builder.
func WithBuilder(b *model.Builder) ContextOption {
	return func(c *Context) {
		if b != nil {
			c.builder = b
		}
	}
}

// NewContext creates a context with a fresh builder, the default registry
// and a time-seeded random source unless options say otherwise.
func NewContext(opts ...ContextOption) *Context {
	seed := uint64(time.Now().UnixNano())
	c := &Context{
		registry: DefaultRegistry(),
		builder:  model.NewBuilder(),
		options:  DefaultOptions(),
		rng:      rand.New(rand.NewPCG(seed, seed>>1)),
		log:      logging.Nop(),
		scratch:  make(map[string]any),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Generate resolves s, looks up its generator and runs it.
func (c *Context) Generate(s *schema.Schema) error {
	target, err := c.Deref(s)
	if err != nil {
		return err
	}
	return c.Run(c.registry.Resolve(target), target)
}

// Run invokes g on s without resolution.
func (c *Context) Run(g Generator, s *schema.Schema) error {
	return g.Generate(c, s)
}

// Deref follows $ref pointers until it reaches a schema that is not a
// reference.
func (c *Context) Deref(s *schema.Schema) (*schema.Schema, error) {
	for hops := 0; s.IsReference(); hops++ {
		if hops > len(c.definitions) {
			return nil, fmt.Errorf("%w: reference loop at %s", ErrUsage, s.Ref)
		}
		def, ok := c.definitions.Lookup(s.Ref)
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingDefinition, s.Ref)
		}
		c.log.Debug("resolved schema reference", "ref", s.Ref)
		s = def
	}
	return s, nil
}

// Get returns the scratch value stored under key, creating it with supplier
// on first access.
func (c *Context) Get(key string, supplier func() any) any {
	if v, ok := c.scratch[key]; ok {
		return v
	}
	v := supplier()
	c.scratch[key] = v
	return v
}

// Scratch is a typed Get. It panics if key already holds a value of another
// type.
func Scratch[T any](c *Context, key string, supplier func() T) T {
	return c.Get(key, func() any { return supplier() }).(T)
}

// Builder returns the builder generators write into.
func (c *Context) Builder() *model.Builder {
	return c.builder
}

// Options returns the generation options.
func (c *Context) Options() Options {
	return c.options
}

// Rand returns the run's random source.
func (c *Context) Rand() *rand.Rand {
	return c.rng
}

// Logger returns the run's logger.
func (c *Context) Logger() *slog.Logger {
	return c.log
}

// Registry returns the registry used for dispatch.
func (c *Context) Registry() *Registry {
	return c.registry
}
