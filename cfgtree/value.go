package cfgtree

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/katalvlaran/cmcutils/frame"
)

// Kind tags the variant held by a Value.
type Kind uint8

const (
	KindNull Kind = iota
	KindBool
	KindInt
	KindFloat
	KindString
	KindSequence
	KindMapping
	KindSeries
	KindTable
)

var kindNames = [...]string{"null", "bool", "int", "float", "string", "sequence", "mapping", "series", "table"}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// Value is a closed tagged variant. The zero Value is Null.
type Value struct {
	kind   Kind
	b      bool
	i      int64
	f      float64
	s      string
	seq    []Value
	m      *Mapping
	series *frame.Series
	table  *frame.Table
}

// Null returns the null value.
func Null() Value { return Value{} }

// Bool wraps a bool.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// Int wraps an integer.
func Int(i int64) Value { return Value{kind: KindInt, i: i} }

// Float wraps a float.
func Float(f float64) Value { return Value{kind: KindFloat, f: f} }

// String wraps a string.
func String(s string) Value { return Value{kind: KindString, s: s} }

// Seq wraps a sequence. The slice is not copied.
func Seq(vs ...Value) Value { return Value{kind: KindSequence, seq: vs} }

// Nested wraps a mapping. A nil mapping becomes an empty one.
func Nested(m *Mapping) Value {
	if m == nil {
		m = NewMapping()
	}
	return Value{kind: KindMapping, m: m}
}

// FromSeries wraps a series. A nil series is Null.
func FromSeries(s *frame.Series) Value {
	if s == nil {
		return Null()
	}
	return Value{kind: KindSeries, series: s}
}

// FromTable wraps a table. A nil table is Null.
func FromTable(t *frame.Table) Value {
	if t == nil {
		return Null()
	}
	return Value{kind: KindTable, table: t}
}

// Kind returns the variant tag.
func (v Value) Kind() Kind { return v.kind }

// IsNull reports whether v is Null.
func (v Value) IsNull() bool { return v.kind == KindNull }

// IsMapping reports whether v holds a nested mapping.
func (v Value) IsMapping() bool { return v.kind == KindMapping }

func (v Value) AsBool() (bool, bool)     { return v.b, v.kind == KindBool }
func (v Value) AsInt() (int64, bool)     { return v.i, v.kind == KindInt }
func (v Value) AsFloat() (float64, bool) { return v.f, v.kind == KindFloat }
func (v Value) AsString() (string, bool) { return v.s, v.kind == KindString }
func (v Value) AsSeq() ([]Value, bool)   { return v.seq, v.kind == KindSequence }

// AsMapping returns the nested mapping (shared, not copied).
func (v Value) AsMapping() (*Mapping, bool) { return v.m, v.kind == KindMapping }

func (v Value) AsSeries() (*frame.Series, bool) { return v.series, v.kind == KindSeries }
func (v Value) AsTable() (*frame.Table, bool)   { return v.table, v.kind == KindTable }

// Number returns v as float64 for Bool, Int and Float values.
func (v Value) Number() (float64, bool) {
	switch v.kind {
	case KindBool:
		if v.b {
			return 1, true
		}
		return 0, true
	case KindInt:
		return float64(v.i), true
	case KindFloat:
		return v.f, true
	}
	return 0, false
}

// Clone returns a deep copy. Series and tables are copied too.
func (v Value) Clone() Value {
	switch v.kind {
	case KindSequence:
		out := make([]Value, len(v.seq))
		for i := range v.seq {
			out[i] = v.seq[i].Clone()
		}
		return Seq(out...)
	case KindMapping:
		return Nested(v.m.Clone())
	case KindSeries:
		return FromSeries(v.series.Clone())
	case KindTable:
		return FromTable(v.table.Clone())
	}
	return v
}

// Equal reports deep equality. Int and Float never compare equal to each
// other; NaN floats compare equal.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindNull:
		return true
	case KindBool:
		return v.b == o.b
	case KindInt:
		return v.i == o.i
	case KindFloat:
		return v.f == o.f || (math.IsNaN(v.f) && math.IsNaN(o.f))
	case KindString:
		return v.s == o.s
	case KindSequence:
		if len(v.seq) != len(o.seq) {
			return false
		}
		for i := range v.seq {
			if !v.seq[i].Equal(o.seq[i]) {
				return false
			}
		}
		return true
	case KindMapping:
		return v.m.Equal(o.m)
	case KindSeries:
		return v.series.Equal(o.series)
	case KindTable:
		return v.table.Equal(o.table)
	}
	return false
}

// String renders v compactly: strings quoted, mappings as {k: v}.
func (v Value) String() string {
	switch v.kind {
	case KindNull:
		return "null"
	case KindBool:
		return strconv.FormatBool(v.b)
	case KindInt:
		return strconv.FormatInt(v.i, 10)
	case KindFloat:
		return strconv.FormatFloat(v.f, 'g', -1, 64)
	case KindString:
		return strconv.Quote(v.s)
	case KindSequence:
		parts := make([]string, len(v.seq))
		for i := range v.seq {
			parts[i] = v.seq[i].String()
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case KindMapping:
		return v.m.String()
	case KindSeries:
		return v.series.String()
	case KindTable:
		return strings.TrimRight(v.table.String(), "\n")
	}
	return fmt.Sprintf("<%s>", v.kind)
}
