package cfgtree

import "errors"

var (
	// ErrNotMapping indicates that a document's root (or a tagged node) is not a mapping.
	ErrNotMapping = errors.New("cfgtree: not a mapping")

	// ErrUnsupportedType indicates a Go value FromAny cannot represent.
	ErrUnsupportedType = errors.New("cfgtree: unsupported value type")

	// ErrSyntax indicates malformed input text.
	ErrSyntax = errors.New("cfgtree: syntax error")

	// ErrBadTag indicates a malformed !series or !table node.
	ErrBadTag = errors.New("cfgtree: malformed tagged node")
)
