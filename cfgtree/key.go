package cfgtree

import (
	"fmt"
	"strconv"
	"strings"
)

// Key is a mapping key: either a string or an int. The zero Key is the
// empty string key.
type Key struct {
	s     string
	i     int
	isInt bool
}

// StrKey returns a string key.
func StrKey(s string) Key { return Key{s: s} }

// IntKey returns an integer key.
func IntKey(i int) Key { return Key{i: i, isInt: true} }

// IsInt reports whether k is an integer key.
func (k Key) IsInt() bool { return k.isInt }

// Int returns the integer form of an integer key.
func (k Key) Int() (int, bool) { return k.i, k.isInt }

// Name returns the string form of a string key.
func (k Key) Name() (string, bool) { return k.s, !k.isInt }

// AsInt returns k as an int, accepting integer-like string keys such as "3".
func (k Key) AsInt() (int, error) {
	if k.isInt {
		return k.i, nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(k.s))
	if err != nil {
		return 0, fmt.Errorf("key %q is not an integer: %w", k.s, err)
	}
	return n, nil
}

// HasSuffix reports whether k is a string key ending in suffix. Integer keys
// never match.
func (k Key) HasSuffix(suffix string) bool {
	return !k.isInt && strings.HasSuffix(k.s, suffix)
}

// String renders the key; string keys are not quoted.
func (k Key) String() string {
	if k.isInt {
		return strconv.Itoa(k.i)
	}
	return k.s
}

// less orders int keys before string keys, each ascending.
func (k Key) less(o Key) bool {
	if k.isInt != o.isInt {
		return k.isInt
	}
	if k.isInt {
		return k.i < o.i
	}
	return k.s < o.s
}
