package cfgtree_test

import (
	"fmt"

	"github.com/katalvlaran/cmcutils/cfgtree"
)

// ExampleSubstitute overrides a nested leaf in place.
func ExampleSubstitute() {
	cfg := cfgtree.Of("x", cfgtree.Of("y", 1), "z", 2)
	cfgtree.Substitute(cfg, cfgtree.Of("y", 9))
	fmt.Println(cfg)
	// Output: {"x": {"y": 9}, "z": 2}
}

// ExampleSearch finds the first leaf under a key.
func ExampleSearch() {
	cfg := cfgtree.Of("a", cfgtree.Of("b", 5))

	v, ok := cfgtree.Search(cfg, cfgtree.StrKey("b"))
	fmt.Println(v, ok)

	v, ok = cfgtree.Search(cfg, cfgtree.StrKey("q"))
	fmt.Println(v, ok)
	// Output:
	// 5 true
	// null false
}
