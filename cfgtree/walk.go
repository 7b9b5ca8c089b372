package cfgtree

import "github.com/katalvlaran/cmcutils/internal/logx"

// Substitute walks m depth first and, for every non-mapping entry whose key
// appears in subs, overwrites the value with subs' value. Mapping-valued
// entries are always descended into and never replaced themselves.
//
// m is modified IN PLACE, including every nested mapping it shares with
// other trees; Clone first when the original must survive. Only the top
// level of subs is consulted. Returns m.
func Substitute(m *Mapping, subs *Mapping) *Mapping {
	if m == nil {
		return nil
	}
	m.Range(func(k Key, v Value) bool {
		if nested, ok := v.AsMapping(); ok {
			Substitute(nested, subs)
			return true
		}
		if repl, ok := subs.Get(k); ok {
			logx.For("cfgtree").WithField("key", k.String()).Trace("substituted")
			m.Set(k, repl)
		}
		return true
	})
	return m
}

// Search returns the first value stored under key, walking m depth first in
// insertion order. For each entry, a mapping value is searched recursively
// (its own key is not compared); any other value matches when its key equals
// key. The walk stops at the first match. Returns (Null, false) when nothing
// matches. m is not modified.
func Search(m *Mapping, key Key) (Value, bool) {
	var (
		found Value
		ok    bool
	)
	m.Range(func(k Key, v Value) bool {
		if nested, isMap := v.AsMapping(); isMap {
			found, ok = Search(nested, key)
		} else if k == key {
			found, ok = v, true
		}
		return !ok
	})
	if !ok {
		return Null(), false
	}
	return found, true
}

// SearchPath is like Search but also returns the path of keys leading to
// the match, outermost first.
func SearchPath(m *Mapping, key Key) ([]Key, Value, bool) {
	var (
		path  []Key
		found Value
		ok    bool
	)
	m.Range(func(k Key, v Value) bool {
		if nested, isMap := v.AsMapping(); isMap {
			var sub []Key
			sub, found, ok = SearchPath(nested, key)
			if ok {
				path = append([]Key{k}, sub...)
			}
		} else if k == key {
			path, found, ok = []Key{k}, v, true
		}
		return !ok
	})
	if !ok {
		return nil, Null(), false
	}
	return path, found, true
}
