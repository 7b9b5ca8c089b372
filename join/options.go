package join

import "fmt"

// OnUnmatched selects what PreprocessingParams does with a colliding key
// that has no merge rule.
type OnUnmatched uint8

const (
	// OnUnmatchedSkip keeps the existing value (default).
	OnUnmatchedSkip OnUnmatched = iota
	// OnUnmatchedOverwrite replaces the existing value with the incoming one.
	OnUnmatchedOverwrite
	// OnUnmatchedError fails with ErrUnmatchedKey.
	OnUnmatchedError
)

func (p OnUnmatched) String() string {
	switch p {
	case OnUnmatchedSkip:
		return "skip"
	case OnUnmatchedOverwrite:
		return "overwrite"
	case OnUnmatchedError:
		return "error"
	}
	return fmt.Sprintf("OnUnmatched(%d)", uint8(p))
}

// ParseOnUnmatched maps "skip", "overwrite" and "error" to a policy.
func ParseOnUnmatched(s string) (OnUnmatched, error) {
	switch s {
	case "", "skip":
		return OnUnmatchedSkip, nil
	case "overwrite":
		return OnUnmatchedOverwrite, nil
	case "error":
		return OnUnmatchedError, nil
	}
	return OnUnmatchedSkip, fmt.Errorf("join: unknown on-unmatched policy %q", s)
}

// Option customizes PreprocessingParams.
type Option func(*options)

type options struct {
	onUnmatched OnUnmatched
}

func defaultOptions() options {
	return options{onUnmatched: OnUnmatchedSkip}
}

// WithOnUnmatched sets the unmatched-key policy. Panics on unknown values.
func WithOnUnmatched(p OnUnmatched) Option {
	if p > OnUnmatchedError {
		panic("join: WithOnUnmatched: unknown policy")
	}
	return func(o *options) { o.onUnmatched = p }
}
