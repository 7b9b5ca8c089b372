package cfgtree

import (
	"fmt"

	"github.com/pelletier/go-toml/v2"
)

// ParseTOML decodes a TOML document. TOML tables decode into Go maps, so
// keys come back sorted rather than in document order; dates and times
// become strings.
func ParseTOML(data []byte) (*Mapping, error) {
	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSyntax, err)
	}
	if raw == nil {
		return NewMapping(), nil
	}
	return MappingFromAny(raw)
}
