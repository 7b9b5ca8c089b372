package frame

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/cmcutils/array"
)

// Series is a named, labelled column of float64 values.
type Series struct {
	name  string
	index []string
	data  *array.Dense // n×1
}

// NewSeries builds a Series. A nil index yields positional labels "0".."n-1".
func NewSeries(name string, index []string, values []float64) (*Series, error) {
	if index == nil {
		index = RangeIndex(len(values))
	}
	if len(index) != len(values) {
		return nil, fmt.Errorf("NewSeries %q: %d labels for %d values: %w", name, len(index), len(values), ErrLengthMismatch)
	}
	data, err := array.FromColumns(len(values), [][]float64{values})
	if err != nil {
		return nil, err
	}

	return &Series{name: name, index: append([]string(nil), index...), data: data}, nil
}

// RangeIndex returns the positional labels "0".."n-1".
func RangeIndex(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = strconv.Itoa(i)
	}
	return out
}

// Name returns the series name; empty when concatenated series disagreed.
func (s *Series) Name() string { return s.name }

// Len returns the number of values.
func (s *Series) Len() int { return len(s.index) }

// Index returns a copy of the labels.
func (s *Series) Index() []string { return append([]string(nil), s.index...) }

// Values returns a copy of the values.
func (s *Series) Values() []float64 {
	v, _ := s.data.Col(0)
	return v
}

// Get returns the value under the first occurrence of label.
func (s *Series) Get(label string) (float64, bool) {
	for i, l := range s.index {
		if l == label {
			v, _ := s.data.At(i, 0)
			return v, true
		}
	}
	return 0, false
}

// Clone returns a deep copy.
func (s *Series) Clone() *Series {
	return &Series{name: s.name, index: s.Index(), data: s.data.Clone()}
}

// Equal reports whether both series carry the same name, labels and values.
func (s *Series) Equal(o *Series) bool {
	if s == nil || o == nil {
		return s == o
	}
	if s.name != o.name || len(s.index) != len(o.index) {
		return false
	}
	for i := range s.index {
		if s.index[i] != o.index[i] {
			return false
		}
	}
	return s.data.Equal(o.data)
}

func (s *Series) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Series(%s)", s.name)
	vals := s.Values()
	for i, l := range s.index {
		fmt.Fprintf(&sb, " %s=%g", l, vals[i])
	}
	return sb.String()
}

// ConcatSeries appends ss row-wise. The name survives only when every
// operand has the same name.
func ConcatSeries(ss ...*Series) (*Series, error) {
	if len(ss) == 0 {
		return NewSeries("", nil, nil)
	}
	var (
		index []string
		parts = make([]*array.Dense, 0, len(ss))
		name  string
	)
	for k, s := range ss {
		if s == nil {
			return nil, fmt.Errorf("ConcatSeries: operand %d: %w", k, ErrNilFrame)
		}
		if k == 0 {
			name = s.name
		} else if s.name != name {
			name = ""
		}
		index = append(index, s.index...)
		parts = append(parts, s.data)
	}
	data, err := array.VStack(parts...)
	if err != nil {
		return nil, err
	}

	return &Series{name: name, index: index, data: data}, nil
}
