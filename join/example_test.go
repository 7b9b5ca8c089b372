package join_test

import (
	"fmt"

	"github.com/katalvlaran/cmcutils/cfgtree"
	"github.com/katalvlaran/cmcutils/join"
)

func ExampleDictionaries() {
	merged, _ := join.Dictionaries(
		cfgtree.Of("n", 1, "d", cfgtree.Of("x", 1)),
		cfgtree.Of("n", 2, "d", cfgtree.Of("x", 2)),
	)
	fmt.Println(merged)
	// Output: {"n": 3, "d": {"x": 3}}
}

func ExampleColumns() {
	merged, _ := join.Columns(cfgtree.Of(0, "a", 1, "b"), cfgtree.Of(0, "c"))
	fmt.Println(merged)
	// Output: {0: "a", 1: "b", 2: "c"}
}
