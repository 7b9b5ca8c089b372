// Package noop provides placeholder callables for hook points that must be
// filled with something.
package noop

import "github.com/katalvlaran/cmcutils/kwargs"

// Pass returns its single argument unchanged, or all of them as a []any
// when called with zero or several.
func Pass(args ...any) any {
	if len(args) == 1 {
		return args[0]
	}
	if args == nil {
		return []any{}
	}
	return args
}

// PassKw is Pass with a named-argument bag, which is discarded.
func PassKw(_ kwargs.Args, args ...any) any {
	return Pass(args...)
}

// Nothing discards its arguments.
func Nothing(...any) {}

// NothingKw discards its arguments.
func NothingKw(kwargs.Args, ...any) {}
