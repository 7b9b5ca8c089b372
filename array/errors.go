// SPDX-License-Identifier: MIT
// Package array: sentinel error set.
//
// Every message is prefixed with "array: ..." for consistency. Callers match
// with errors.Is; errors carry the failing call and coordinates.

package array

import "errors"

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are negative.
	ErrInvalidDimensions = errors.New("array: dimensions must be >= 0")

	// ErrIndexOutOfBounds indicates that a row or column index is outside valid range.
	ErrIndexOutOfBounds = errors.New("array: index out of bounds")

	// ErrDimensionMismatch indicates incompatible shapes between stacked operands.
	ErrDimensionMismatch = errors.New("array: dimension mismatch")

	// ErrNilMatrix indicates that a nil *Dense was passed where a matrix is required.
	ErrNilMatrix = errors.New("array: nil matrix")

	// ErrNilRand indicates that Random was called without a generator.
	ErrNilRand = errors.New("array: nil random generator")
)
