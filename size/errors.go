package size

import "github.com/pkg/errors"

// The two failure kinds. Everything Parse rejects wraps ErrMalformedInput.
// Format only fails on non-finite input, wrapping ErrInvalidValue.
var (
	ErrMalformedInput = errors.New("malformed size")
	ErrInvalidValue   = errors.New("value is not a finite number")
)
