package generator

// Default array bounds used when a schema sets neither minItems nor maxItems.
const (
	DefaultMinItems = 1
	DefaultMaxItems = 9
)

// Options tune a generation run.
type Options struct {
	// GenerateOptionalFields includes object properties that are not
	// required.
	GenerateOptionalFields bool
	// MinItems and MaxItems bound arrays without explicit bounds.
	MinItems int
	MaxItems int
}

// DefaultOptions returns the options used when none are given.
func DefaultOptions() Options {
	return Options{MinItems: DefaultMinItems, MaxItems: DefaultMaxItems}
}

func (o Options) withDefaults() Options {
	if o.MinItems <= 0 {
		o.MinItems = DefaultMinItems
	}
	if o.MaxItems <= 0 {
		o.MaxItems = DefaultMaxItems
	}
	return o
}
