package kwargs

import "errors"

var (
	// ErrNotStruct indicates that StructParams or Bind got something other
	// than a struct (or a non-nil pointer to one).
	ErrNotStruct = errors.New("kwargs: target must be a struct or pointer to struct")

	// ErrDecode indicates that filtered args could not be decoded into the target.
	ErrDecode = errors.New("kwargs: decode failed")

	// ErrInvalid wraps a Validator failure.
	ErrInvalid = errors.New("kwargs: validation failed")
)
