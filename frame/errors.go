package frame

import "errors"

var (
	// ErrLengthMismatch indicates that labels and values disagree in length.
	ErrLengthMismatch = errors.New("frame: length mismatch")

	// ErrDuplicateIndex indicates that tables with different, non-unique
	// indexes cannot be aligned.
	ErrDuplicateIndex = errors.New("frame: cannot align non-unique index")

	// ErrNilFrame indicates that a nil Series or Table was supplied.
	ErrNilFrame = errors.New("frame: nil series or table")
)
