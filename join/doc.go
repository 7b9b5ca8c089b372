// Package join merges the per-fold / per-split mappings an experiment
// produces into one.
//
//	Dictionaries          generic merge: series append, tables glue
//	                      column-wise, mappings recurse, everything else
//	                      is added (+)
//	PreprocessingParams   merge of preprocessing parameter sets; keys
//	                      ending in "columns" are column-index mappings
//	Columns               column-index merge that re-numbers colliding keys
//
// All three walk the inputs in argument order and each mapping in
// insertion order, so results are deterministic.
package join
