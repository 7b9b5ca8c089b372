package cfgtree

import (
	"fmt"
	"strings"
)

// Mapping is an insertion-ordered Key → Value map. Overwriting an existing
// key keeps its position. A nil *Mapping reads as empty.
type Mapping struct {
	keys []Key
	vals map[Key]Value
}

// NewMapping returns an empty mapping.
func NewMapping() *Mapping {
	return &Mapping{vals: make(map[Key]Value)}
}

// Of builds a mapping from alternating key, value arguments. Keys must be
// string or int (or Key); values go through FromAny. It panics on malformed
// arguments and is meant for literals in code and tests.
func Of(kv ...any) *Mapping {
	if len(kv)%2 != 0 {
		panic("cfgtree: Of needs key/value pairs")
	}
	m := NewMapping()
	for i := 0; i < len(kv); i += 2 {
		var k Key
		switch kk := kv[i].(type) {
		case string:
			k = StrKey(kk)
		case int:
			k = IntKey(kk)
		case Key:
			k = kk
		default:
			panic(fmt.Sprintf("cfgtree: Of key %v has type %T", kv[i], kv[i]))
		}
		v, err := FromAny(kv[i+1])
		if err != nil {
			panic(fmt.Sprintf("cfgtree: Of value for %s: %v", k, err))
		}
		m.Set(k, v)
	}
	return m
}

// Len returns the number of entries.
func (m *Mapping) Len() int {
	if m == nil {
		return 0
	}
	return len(m.keys)
}

// Keys returns the keys in insertion order.
func (m *Mapping) Keys() []Key {
	if m == nil {
		return nil
	}
	return append([]Key(nil), m.keys...)
}

// Get returns the value stored under k.
func (m *Mapping) Get(k Key) (Value, bool) {
	if m == nil {
		return Null(), false
	}
	v, ok := m.vals[k]
	return v, ok
}

// Has reports whether k is present.
func (m *Mapping) Has(k Key) bool {
	_, ok := m.Get(k)
	return ok
}

// Set stores v under k and returns m.
func (m *Mapping) Set(k Key, v Value) *Mapping {
	if m.vals == nil {
		m.vals = make(map[Key]Value)
	}
	if _, ok := m.vals[k]; !ok {
		m.keys = append(m.keys, k)
	}
	m.vals[k] = v
	return m
}

// Delete removes k and reports whether it was present.
func (m *Mapping) Delete(k Key) bool {
	if m == nil {
		return false
	}
	if _, ok := m.vals[k]; !ok {
		return false
	}
	delete(m.vals, k)
	for i := range m.keys {
		if m.keys[i] == k {
			m.keys = append(m.keys[:i], m.keys[i+1:]...)
			break
		}
	}
	return true
}

// Range calls fn for each entry in insertion order until fn returns false.
// Entries added during iteration are not visited.
func (m *Mapping) Range(fn func(k Key, v Value) bool) {
	if m == nil {
		return
	}
	for _, k := range m.Keys() {
		v, ok := m.vals[k]
		if !ok { // deleted by fn
			continue
		}
		if !fn(k, v) {
			return
		}
	}
}

// Clone returns a deep copy.
func (m *Mapping) Clone() *Mapping {
	out := NewMapping()
	m.Range(func(k Key, v Value) bool {
		out.Set(k, v.Clone())
		return true
	})
	return out
}

// Equal reports whether both mappings hold equal values under the same keys.
// Key order is not compared.
func (m *Mapping) Equal(o *Mapping) bool {
	if m.Len() != o.Len() {
		return false
	}
	eq := true
	m.Range(func(k Key, v Value) bool {
		ov, ok := o.Get(k)
		eq = ok && v.Equal(ov)
		return eq
	})
	return eq
}

// String renders the mapping as {k: v, ...} in insertion order.
func (m *Mapping) String() string {
	var sb strings.Builder
	sb.WriteString("{")
	first := true
	m.Range(func(k Key, v Value) bool {
		if !first {
			sb.WriteString(", ")
		}
		first = false
		if k.IsInt() {
			sb.WriteString(k.String())
		} else {
			fmt.Fprintf(&sb, "%q", k.String())
		}
		sb.WriteString(": ")
		sb.WriteString(v.String())
		return true
	})
	sb.WriteString("}")
	return sb.String()
}
