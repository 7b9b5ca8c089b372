package cfgtree

import (
	"fmt"
	"math"
	"reflect"
	"sort"

	"github.com/katalvlaran/cmcutils/frame"
)

// FromAny converts a plain Go value into a Value.
//
// Supported: nil, bool, all int/uint/float kinds, string, Value, *Mapping,
// *frame.Series, *frame.Table, slices/arrays of supported values and maps
// keyed by strings or integers. Go maps are unordered, so their keys are
// sorted (ints first, then strings). Values implementing fmt.Stringer
// (e.g. decoded TOML dates) become strings.
func FromAny(x any) (Value, error) {
	switch v := x.(type) {
	case nil:
		return Null(), nil
	case Value:
		return v, nil
	case *Mapping:
		return Nested(v), nil
	case *frame.Series:
		return FromSeries(v), nil
	case *frame.Table:
		return FromTable(v), nil
	case bool:
		return Bool(v), nil
	case string:
		return String(v), nil
	case int:
		return Int(int64(v)), nil
	case int64:
		return Int(v), nil
	case float64:
		return Float(v), nil
	}

	rv := reflect.ValueOf(x)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return Int(rv.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		u := rv.Uint()
		if u > math.MaxInt64 {
			return Null(), fmt.Errorf("%d overflows int64: %w", u, ErrUnsupportedType)
		}
		return Int(int64(u)), nil
	case reflect.Float32, reflect.Float64:
		return Float(rv.Float()), nil
	case reflect.Bool:
		return Bool(rv.Bool()), nil
	case reflect.String:
		return String(rv.String()), nil
	case reflect.Slice, reflect.Array:
		out := make([]Value, rv.Len())
		for i := range out {
			ev, err := FromAny(rv.Index(i).Interface())
			if err != nil {
				return Null(), fmt.Errorf("[%d]: %w", i, err)
			}
			out[i] = ev
		}
		return Seq(out...), nil
	case reflect.Map:
		m, err := mappingFromMap(rv)
		if err != nil {
			return Null(), err
		}
		return Nested(m), nil
	case reflect.Pointer:
		if rv.IsNil() {
			return Null(), nil
		}
		if _, ok := x.(fmt.Stringer); !ok {
			return FromAny(rv.Elem().Interface())
		}
	}

	if s, ok := x.(fmt.Stringer); ok {
		return String(s.String()), nil
	}
	return Null(), fmt.Errorf("%T: %w", x, ErrUnsupportedType)
}

// MappingFromAny converts a Go map into a *Mapping.
func MappingFromAny(x any) (*Mapping, error) {
	v, err := FromAny(x)
	if err != nil {
		return nil, err
	}
	m, ok := v.AsMapping()
	if !ok {
		return nil, fmt.Errorf("%T: %w", x, ErrNotMapping)
	}
	return m, nil
}

func mappingFromMap(rv reflect.Value) (*Mapping, error) {
	type entry struct {
		k Key
		v reflect.Value
	}
	entries := make([]entry, 0, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		k, err := keyFromAny(iter.Key().Interface())
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry{k: k, v: iter.Value()})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].k.less(entries[j].k) })

	m := NewMapping()
	for _, e := range entries {
		v, err := FromAny(e.v.Interface())
		if err != nil {
			return nil, fmt.Errorf("%s: %w", e.k, err)
		}
		m.Set(e.k, v)
	}
	return m, nil
}

func keyFromAny(x any) (Key, error) {
	switch k := x.(type) {
	case Key:
		return k, nil
	case string:
		return StrKey(k), nil
	}
	rv := reflect.ValueOf(x)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return IntKey(int(rv.Int())), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32:
		return IntKey(int(rv.Uint())), nil
	case reflect.String:
		return StrKey(rv.String()), nil
	}
	return Key{}, fmt.Errorf("map key %T: %w", x, ErrUnsupportedType)
}

// ToAny converts v back to plain Go values: nil, bool, int64, float64,
// string, []any, map[string]any (map[any]any when an int key is present),
// *frame.Series, *frame.Table.
func ToAny(v Value) any {
	switch v.kind {
	case KindBool:
		return v.b
	case KindInt:
		return v.i
	case KindFloat:
		return v.f
	case KindString:
		return v.s
	case KindSequence:
		out := make([]any, len(v.seq))
		for i := range v.seq {
			out[i] = ToAny(v.seq[i])
		}
		return out
	case KindMapping:
		return MappingToAny(v.m)
	case KindSeries:
		return v.series
	case KindTable:
		return v.table
	}
	return nil
}

// MappingToAny converts m to map[string]any, or map[any]any (int keys as
// int) when m has any integer key.
func MappingToAny(m *Mapping) any {
	hasInt := false
	for _, k := range m.Keys() {
		if k.IsInt() {
			hasInt = true
			break
		}
	}
	if hasInt {
		out := make(map[any]any, m.Len())
		m.Range(func(k Key, v Value) bool {
			if i, ok := k.Int(); ok {
				out[i] = ToAny(v)
			} else {
				out[k.String()] = ToAny(v)
			}
			return true
		})
		return out
	}
	out := make(map[string]any, m.Len())
	m.Range(func(k Key, v Value) bool {
		out[k.String()] = ToAny(v)
		return true
	})
	return out
}
