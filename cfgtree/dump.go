package cfgtree

import "github.com/davecgh/go-spew/spew"

var dumpConfig = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

// Dump renders m as plain Go values with spew, for debug logs and test
// failure messages.
func Dump(m *Mapping) string {
	return dumpConfig.Sdump(MappingToAny(m))
}
