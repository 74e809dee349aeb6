package reduce

import "github.com/pkg/errors"

// Errors returned by the generator. They are raised before any kernel source is built
// and are wrapped with context, so match them with errors.Is.
var (
	ErrInvalidInputCount = errors.New("reduce op requires 1 or 2 inputs")
	ErrInvalidInputShape = errors.New("invalid axes input dims")
	ErrInvalidInputType  = errors.New("invalid input type")
	ErrInvalidAxis       = errors.New("invalid axis")
	ErrUnknownKind       = errors.New("unknown reduction kind")
)
