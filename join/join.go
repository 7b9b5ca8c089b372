package join

import (
	"fmt"

	"github.com/katalvlaran/cmcutils/cfgtree"
	"github.com/katalvlaran/cmcutils/frame"
	"github.com/katalvlaran/cmcutils/internal/logx"
)

// Dictionaries merges ms into a new mapping. For each key, in argument
// order: a new key is inserted as is; on collision the incoming value
// decides the rule:
//
//	Series  → rows appended (frame.ConcatSeries)
//	Table   → columns glued (frame.ConcatColumns)
//	Mapping → merged recursively with this same rule
//	other   → existing + incoming (see add)
//
// The first occurrence of a value is stored by reference, so nested
// mappings of the inputs may end up shared with the result. Nil mappings
// are skipped.
//
// Complexity: O(total entries) for scalar collisions; series and table
// collisions add the cost of copying the concatenated data.
func Dictionaries(ms ...*cfgtree.Mapping) (*cfgtree.Mapping, error) {
	result := cfgtree.NewMapping()
	for _, d := range ms {
		var err error
		d.Range(func(k cfgtree.Key, v cfgtree.Value) bool {
			cur, exists := result.Get(k)
			if !exists {
				result.Set(k, v)
				return true
			}
			var merged cfgtree.Value
			merged, err = combine(cur, v)
			if err != nil {
				err = fmt.Errorf("key %s: %w", k, err)
				return false
			}
			result.Set(k, merged)
			return true
		})
		if err != nil {
			return nil, err
		}
	}
	return result, nil
}

func combine(cur, v cfgtree.Value) (cfgtree.Value, error) {
	switch v.Kind() {
	case cfgtree.KindSeries:
		return concatSeries(cur, v)
	case cfgtree.KindTable:
		return concatTables(cur, v)
	case cfgtree.KindMapping:
		cm, ok := cur.AsMapping()
		if !ok {
			return cfgtree.Null(), fmt.Errorf("%s with mapping: %w", cur.Kind(), ErrUnsupportedOperand)
		}
		vm, _ := v.AsMapping()
		m, err := Dictionaries(cm, vm)
		if err != nil {
			return cfgtree.Null(), err
		}
		return cfgtree.Nested(m), nil
	}
	return add(cur, v)
}

func concatSeries(cur, v cfgtree.Value) (cfgtree.Value, error) {
	cs, ok := cur.AsSeries()
	if !ok {
		return cfgtree.Null(), fmt.Errorf("%s with series: %w", cur.Kind(), ErrUnsupportedOperand)
	}
	vs, _ := v.AsSeries()
	s, err := frame.ConcatSeries(cs, vs)
	if err != nil {
		return cfgtree.Null(), err
	}
	return cfgtree.FromSeries(s), nil
}

func concatTables(cur, v cfgtree.Value) (cfgtree.Value, error) {
	ct, ok := cur.AsTable()
	if !ok {
		return cfgtree.Null(), fmt.Errorf("%s with table: %w", cur.Kind(), ErrUnsupportedOperand)
	}
	vt, _ := v.AsTable()
	t, err := frame.ConcatColumns(ct, vt)
	if err != nil {
		return cfgtree.Null(), err
	}
	return cfgtree.FromTable(t), nil
}

// ColumnsSuffix marks keys PreprocessingParams merges with Columns.
const ColumnsSuffix = "columns"

// PreprocessingParams merges preprocessing parameter sets. The result starts
// as a deep copy of params[0]; later sets are folded in key by key:
//
//	new key               → inserted
//	Series value          → rows appended
//	Table value           → columns glued
//	key ends in "columns" → Columns(existing, incoming)
//	anything else         → the OnUnmatched policy (skip by default)
//
// params[0] is never modified. A "columns" mapping first inserted from a
// later set is shared with the result and is modified by any further
// column merges under the same key.
//
// Complexity: O(size of params[0]) for the clone plus O(entries) over the
// later sets, plus concatenation copies.
func PreprocessingParams(params []*cfgtree.Mapping, opts ...Option) (*cfgtree.Mapping, error) {
	if len(params) == 0 {
		return nil, ErrNoInput
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	lg := logx.For("join")

	result := params[0].Clone()
	for _, d := range params[1:] {
		var err error
		d.Range(func(k cfgtree.Key, v cfgtree.Value) bool {
			cur, exists := result.Get(k)
			switch {
			case !exists:
				result.Set(k, v)
			case v.Kind() == cfgtree.KindSeries:
				var merged cfgtree.Value
				if merged, err = concatSeries(cur, v); err == nil {
					result.Set(k, merged)
				}
			case v.Kind() == cfgtree.KindTable:
				var merged cfgtree.Value
				if merged, err = concatTables(cur, v); err == nil {
					result.Set(k, merged)
				}
			case k.HasSuffix(ColumnsSuffix):
				err = joinColumnsValue(result, k, cur, v)
			default:
				switch o.onUnmatched {
				case OnUnmatchedOverwrite:
					result.Set(k, v)
				case OnUnmatchedError:
					err = ErrUnmatchedKey
				default:
					lg.WithField("key", k.String()).Debug("no merge rule, key skipped")
				}
			}
			if err != nil {
				err = fmt.Errorf("key %s: %w", k, err)
				return false
			}
			return true
		})
		if err != nil {
			return nil, err
		}
	}
	return result, nil
}

func joinColumnsValue(result *cfgtree.Mapping, k cfgtree.Key, cur, v cfgtree.Value) error {
	cm, ok := cur.AsMapping()
	vm, ok2 := v.AsMapping()
	if !ok || !ok2 {
		return fmt.Errorf("%s with %s: %w", cur.Kind(), v.Kind(), ErrUnsupportedOperand)
	}
	m, err := Columns(cm, vm)
	if err != nil {
		return err
	}
	result.Set(k, cfgtree.Nested(m))
	return nil
}

// Columns merges column-index mappings into ms[0], which is modified and
// returned. maxKey is one past the largest key of ms[0] (0 when empty) and
// is computed once, up front. For each later entry, a key already present
// in the accumulator is re-inserted under maxKey+key; other keys are kept.
//
// Because maxKey is not recomputed, two later mappings that collide on the
// same key land on the same re-numbered key and the last one wins.
//
// Accumulator keys may be integers or integer-like strings; colliding keys
// must be integers. Otherwise ErrNonIntegerKey.
//
// Complexity: O(len(ms[0]) + Σ len(ms[i])), map-backed lookups.
func Columns(ms ...*cfgtree.Mapping) (*cfgtree.Mapping, error) {
	if len(ms) == 0 {
		return nil, ErrNoInput
	}
	acc := ms[0]
	if acc == nil {
		acc = cfgtree.NewMapping()
	}

	maxKey := 0
	for i, k := range acc.Keys() {
		n, err := k.AsInt()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrNonIntegerKey, err)
		}
		if i == 0 || n+1 > maxKey {
			maxKey = n + 1
		}
	}

	for _, d := range ms[1:] {
		var err error
		d.Range(func(k cfgtree.Key, v cfgtree.Value) bool {
			if !acc.Has(k) {
				acc.Set(k, v)
				return true
			}
			n, ok := k.Int()
			if !ok {
				err = fmt.Errorf("colliding key %q: %w", k.String(), ErrNonIntegerKey)
				return false
			}
			acc.Set(cfgtree.IntKey(maxKey+n), v)
			return true
		})
		if err != nil {
			return nil, err
		}
	}
	return acc, nil
}
