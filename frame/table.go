package frame

import (
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/cmcutils/array"
)

// Table is a two-dimensional labelled container: one row per index label,
// one column per column name. Column names need not be unique.
type Table struct {
	index   []string
	columns []string
	data    *array.Dense // len(index) × len(columns)
}

// NewTable builds a Table from column vectors. A nil index yields positional
// labels.
func NewTable(index, columns []string, cols [][]float64) (*Table, error) {
	if len(columns) != len(cols) {
		return nil, fmt.Errorf("NewTable: %d names for %d columns: %w", len(columns), len(cols), ErrLengthMismatch)
	}
	rows := len(index)
	if index == nil {
		if len(cols) > 0 {
			rows = len(cols[0])
		}
		index = RangeIndex(rows)
	}
	data, err := array.FromColumns(rows, cols)
	if err != nil {
		return nil, fmt.Errorf("NewTable: %w", err)
	}

	return &Table{
		index:   append([]string(nil), index...),
		columns: append([]string(nil), columns...),
		data:    data,
	}, nil
}

// Shape returns (rows, cols).
func (t *Table) Shape() (int, int) { return t.data.Rows(), t.data.Cols() }

// Index returns a copy of the row labels.
func (t *Table) Index() []string { return append([]string(nil), t.index...) }

// Columns returns a copy of the column names.
func (t *Table) Columns() []string { return append([]string(nil), t.columns...) }

// At returns the cell at (row, col) positions.
func (t *Table) At(row, col int) (float64, error) { return t.data.At(row, col) }

// Column returns the first column named name.
func (t *Table) Column(name string) ([]float64, bool) {
	for j, c := range t.columns {
		if c == name {
			v, _ := t.data.Col(j)
			return v, true
		}
	}
	return nil, false
}

// ColumnAt returns the column at position j.
func (t *Table) ColumnAt(j int) ([]float64, error) { return t.data.Col(j) }

// Clone returns a deep copy.
func (t *Table) Clone() *Table {
	return &Table{index: t.Index(), columns: t.Columns(), data: t.data.Clone()}
}

// Equal compares labels and cells; NaN cells compare equal.
func (t *Table) Equal(o *Table) bool {
	if t == nil || o == nil {
		return t == o
	}
	return sameLabels(t.index, o.index) && sameLabels(t.columns, o.columns) && t.data.Equal(o.data)
}

func (t *Table) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Table%v\n", t.columns)
	for i, l := range t.index {
		row, _ := t.data.Row(i)
		fmt.Fprintf(&sb, "%s %v\n", l, row)
	}
	return sb.String()
}

// ConcatColumns glues ts side by side. When every index is identical the
// matrices are stacked directly; otherwise rows are outer-aligned on the
// union of labels (first-seen order) and missing cells are NaN. Alignment
// needs unique labels in every operand.
func ConcatColumns(ts ...*Table) (*Table, error) {
	if len(ts) == 0 {
		return NewTable(nil, nil, nil)
	}
	var columns []string
	for k, t := range ts {
		if t == nil {
			return nil, fmt.Errorf("ConcatColumns: operand %d: %w", k, ErrNilFrame)
		}
		columns = append(columns, t.columns...)
	}

	aligned := true
	for _, t := range ts[1:] {
		if !sameLabels(ts[0].index, t.index) {
			aligned = false
			break
		}
	}
	if aligned {
		parts := make([]*array.Dense, len(ts))
		for k, t := range ts {
			parts[k] = t.data
		}
		data, err := array.HStack(parts...)
		if err != nil {
			return nil, err
		}
		return &Table{index: ts[0].Index(), columns: columns, data: data}, nil
	}

	pos := make(map[string]int)
	var index []string
	for k, t := range ts {
		seen := make(map[string]struct{}, len(t.index))
		for _, l := range t.index {
			if _, dup := seen[l]; dup {
				return nil, fmt.Errorf("ConcatColumns: operand %d label %q: %w", k, l, ErrDuplicateIndex)
			}
			seen[l] = struct{}{}
			if _, ok := pos[l]; !ok {
				pos[l] = len(index)
				index = append(index, l)
			}
		}
	}

	data, err := array.NewFilled(len(index), len(columns), math.NaN())
	if err != nil {
		return nil, err
	}
	off := 0
	for _, t := range ts {
		rows, cols := t.Shape()
		for i := 0; i < rows; i++ {
			r := pos[t.index[i]]
			for j := 0; j < cols; j++ {
				v, _ := t.data.At(i, j)
				_ = data.Set(r, off+j, v) // in bounds by construction
			}
		}
		off += cols
	}

	return &Table{index: index, columns: columns, data: data}, nil
}

func sameLabels(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
