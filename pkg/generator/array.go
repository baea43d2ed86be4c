package generator

import (
	"fmt"

	"github.com/getmockd/fixturegen/pkg/schema"
)

// ArrayGenerator emits a list of generated items.
type ArrayGenerator struct{}

// Handles implements Generator.
func (ArrayGenerator) Handles(s *schema.Schema) bool {
	return s != nil && s.Type == schema.TypeArray
}

// Generate implements Generator. An array nested inside itself comes out
// empty.
func (ArrayGenerator) Generate(ctx *Context, s *schema.Schema) error {
	if len(s.Tuple) > 0 {
		return fmt.Errorf("%w: got %d positional schemas", ErrUnsupportedItems, len(s.Tuple))
	}
	b := ctx.Builder()
	stack := expansionStack(ctx)
	if stack.Contains(s) {
		ctx.Logger().Debug("truncated recursive array", "schema", s.String(), "depth", stack.Len())
		return b.Array(func() error { return nil })
	}

	lo, hi, err := ItemBounds(ctx.Options(), s)
	if err != nil {
		return err
	}
	n := lo + ctx.Rand().IntN(hi-lo+1)

	stack.Push(s)
	defer stack.Pop()
	return b.Array(func() error {
		for i := range n {
			if err := ctx.Generate(s.Items); err != nil {
				return fmt.Errorf("item %d: %w", i, err)
			}
		}
		return nil
	})
}

// ItemBounds returns the inclusive item count range for s. Bounds the
// schema leaves unset come from opts; a lone minItems above the default
// maximum becomes the maximum too.
func ItemBounds(opts Options, s *schema.Schema) (lo, hi int, err error) {
	opts = opts.withDefaults()
	if (s.MinItems != nil && *s.MinItems < 0) || (s.MaxItems != nil && *s.MaxItems < 0) {
		return 0, 0, fmt.Errorf("%w: negative item bound", ErrUsage)
	}

	switch {
	case s.MinItems != nil && s.MaxItems != nil:
		lo, hi = *s.MinItems, *s.MaxItems
	case s.MinItems != nil:
		lo, hi = *s.MinItems, max(*s.MinItems, opts.MaxItems)
	case s.MaxItems != nil:
		lo, hi = min(opts.MinItems, *s.MaxItems), *s.MaxItems
	default:
		lo, hi = opts.MinItems, opts.MaxItems
	}

	if lo > hi {
		return 0, 0, fmt.Errorf("%w: minItems %d exceeds maxItems %d", ErrUsage, lo, hi)
	}
	return lo, hi, nil
}
