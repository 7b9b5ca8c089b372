// Package cfgtree models experiment configuration as a typed, ordered tree
// and implements the two recursive walks the training code relies on:
// Substitute (overwrite leaves by key, in place) and Search (first leaf
// under a key, depth first).
//
// 🌳 Shape
//
//	Mapping    insertion-ordered Key → Value
//	Key        a string or an int (YAML configs use both)
//	Value      closed variant: Null, Bool, Int, Float, String, Sequence,
//	           Mapping, Series, Table
//
// Mappings are reference values: a Value holding a Mapping shares it, so
// in-place walks reach every level of the tree they were given.
//
// ⚙️ Sources
//
//	ParseYAML   yaml.v3 node tree, document order kept, !series / !table tags
//	ParseJSON   gjson, document order kept
//	ParseTOML   go-toml/v2, keys sorted (TOML tables decode unordered)
//	FromAny     plain Go values; map keys sorted
//
// Walk order is the mapping's insertion order, which makes Search's "first
// match" well defined.
package cfgtree
