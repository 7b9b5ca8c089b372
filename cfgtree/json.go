package cfgtree

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"
)

// ParseJSON decodes a JSON object, keeping member order. Integral numbers
// without a fraction or exponent that fit in int64 become Int values.
func ParseJSON(data []byte) (*Mapping, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("%w: invalid json", ErrSyntax)
	}
	root := gjson.ParseBytes(data)
	if !root.IsObject() {
		return nil, fmt.Errorf("json root is %s: %w", root.Type, ErrNotMapping)
	}
	v := fromResult(root)
	m, _ := v.AsMapping()
	return m, nil
}

func fromResult(r gjson.Result) Value {
	switch {
	case r.IsObject():
		m := NewMapping()
		r.ForEach(func(k, v gjson.Result) bool {
			m.Set(StrKey(k.String()), fromResult(v))
			return true
		})
		return Nested(m)
	case r.IsArray():
		elems := r.Array()
		out := make([]Value, len(elems))
		for i := range elems {
			out[i] = fromResult(elems[i])
		}
		return Seq(out...)
	}

	switch r.Type {
	case gjson.True:
		return Bool(true)
	case gjson.False:
		return Bool(false)
	case gjson.String:
		return String(r.Str)
	case gjson.Number:
		raw := strings.TrimSpace(r.Raw)
		if !strings.ContainsAny(raw, ".eE") {
			if i, err := strconv.ParseInt(raw, 10, 64); err == nil {
				return Int(i)
			}
		}
		return Float(r.Num)
	}
	return Null()
}
