// SPDX-License-Identifier: MIT

// Package array is the numeric-array layer of cmcutils: a row-major float64
// Dense matrix with safe accessors, row/column stacking and seeded random
// fills.
//
// What it is for:
//
//	• backing storage for frame.Table (one column per matrix column)
//	• the "numeric generator" consumer of package seed: Random draws from
//	  an explicit *rand.Rand, never from a hidden global source
//
// Guarantees:
//   - At/Set return sentinel errors (ErrIndexOutOfBounds), they never panic.
//   - Zero-sized shapes are allowed (an empty table still has a shape);
//     negative dimensions are rejected with ErrInvalidDimensions.
//   - HStack/VStack never alias their inputs.
//
// Complexity quicksheet:
//   - NewDense: O(r*c); At/Set: O(1); Clone: O(r*c); HStack/VStack: O(r*c).
package array
