// Package frame provides the small labelled containers that preprocessing
// parameters are made of: Series (one labelled column of float64) and Table
// (labelled rows × labelled columns over an array.Dense).
//
// Only the two concatenations the joiners need are implemented:
//
//	ConcatSeries    row-wise append, labels kept (duplicates allowed)
//	ConcatColumns   column-wise glue, rows outer-aligned on index labels,
//	                missing cells filled with NaN
//
// Values are immutable from the outside: accessors return copies and the
// concatenations always build new containers.
package frame
