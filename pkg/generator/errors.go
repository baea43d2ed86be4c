package generator

import (
	"errors"
	"fmt"
)

var (
	// ErrUsage reports a schema the generators cannot work with.
	ErrUsage = errors.New("invalid schema usage")

	// ErrUnsupportedItems reports an array whose items keyword is not a
	// single schema.
	ErrUnsupportedItems = fmt.Errorf("%w: items must be a single schema", ErrUsage)

	// ErrMissingDefinition reports a $ref with no entry in the definitions.
	ErrMissingDefinition = errors.New("missing schema definition")
)
