// SPDX-License-Identifier: MIT

// Package array - Dense storage and element access.

package array

import (
	"fmt"
	"math/rand"
	"strings"
)

// boundsErr tags an out-of-range access with the method and coordinates.
func boundsErr(op string, row, col int) error {
	return fmt.Errorf("%s(%d,%d): %w", op, row, col, ErrIndexOutOfBounds)
}

// Dense is a rows×cols block of float64 laid out row after row in vals.
// Zero-sized shapes are allowed.
type Dense struct {
	rows, cols int
	vals       []float64 // len == rows*cols
}

// NewDense returns a zeroed rows×cols Dense.
// Complexity: O(rows*cols).
func NewDense(rows, cols int) (*Dense, error) {
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("NewDense(%d,%d): %w", rows, cols, ErrInvalidDimensions)
	}
	return &Dense{rows: rows, cols: cols, vals: make([]float64, rows*cols)}, nil
}

// NewFilled returns a rows×cols Dense holding v everywhere.
func NewFilled(rows, cols int, v float64) (*Dense, error) {
	d, err := NewDense(rows, cols)
	if err == nil {
		d.Fill(v)
	}
	return d, err
}

// FromColumns lays the column vectors cols side by side. Each vector must
// hold exactly rows values.
func FromColumns(rows int, cols [][]float64) (*Dense, error) {
	d, err := NewDense(rows, len(cols))
	if err != nil {
		return nil, err
	}
	for j, col := range cols {
		if len(col) != rows {
			return nil, fmt.Errorf("FromColumns: column %d has %d rows, want %d: %w",
				j, len(col), rows, ErrDimensionMismatch)
		}
		for i, v := range col {
			d.vals[i*d.cols+j] = v
		}
	}
	return d, nil
}

// Random fills a rows×cols Dense with rng.Float64 draws, row by row, so the
// same seed always yields the same matrix.
func Random(rows, cols int, rng *rand.Rand) (*Dense, error) {
	if rng == nil {
		return nil, ErrNilRand
	}
	d, err := NewDense(rows, cols)
	if err != nil {
		return nil, err
	}
	for k := range d.vals {
		d.vals[k] = rng.Float64()
	}
	return d, nil
}

// Rows is the row count.
func (d *Dense) Rows() int { return d.rows }

// Cols is the column count.
func (d *Dense) Cols() int { return d.cols }

func (d *Dense) offset(op string, row, col int) (int, error) {
	if row < 0 || row >= d.rows || col < 0 || col >= d.cols {
		return -1, boundsErr(op, row, col)
	}
	return row*d.cols + col, nil
}

// At reads the cell at (row, col).
func (d *Dense) At(row, col int) (float64, error) {
	k, err := d.offset("At", row, col)
	if err != nil {
		return 0, err
	}
	return d.vals[k], nil
}

// Set writes v into the cell at (row, col).
func (d *Dense) Set(row, col int, v float64) error {
	k, err := d.offset("Set", row, col)
	if err == nil {
		d.vals[k] = v
	}
	return err
}

// Fill overwrites every cell with v.
func (d *Dense) Fill(v float64) {
	for k := range d.vals {
		d.vals[k] = v
	}
}

// Row copies out row i.
func (d *Dense) Row(i int) ([]float64, error) {
	if i < 0 || i >= d.rows {
		return nil, boundsErr("Row", i, 0)
	}
	return append([]float64(nil), d.vals[i*d.cols:(i+1)*d.cols]...), nil
}

// Col copies out column j.
// Complexity: O(rows).
func (d *Dense) Col(j int) ([]float64, error) {
	if j < 0 || j >= d.cols {
		return nil, boundsErr("Col", 0, j)
	}
	out := make([]float64, d.rows)
	for i := range out {
		out[i] = d.vals[i*d.cols+j]
	}
	return out, nil
}

// Clone returns an independent copy.
func (d *Dense) Clone() *Dense {
	return &Dense{rows: d.rows, cols: d.cols, vals: append([]float64(nil), d.vals...)}
}

// Equal reports whether d and o have the same shape and cells. NaN cells
// match each other, so NaN-padded tables compare equal.
func (d *Dense) Equal(o *Dense) bool {
	if d == nil || o == nil {
		return d == o
	}
	if d.rows != o.rows || d.cols != o.cols {
		return false
	}
	for k, a := range d.vals {
		b := o.vals[k]
		if a != b && !(a != a && b != b) { // x != x only for NaN
			return false
		}
	}
	return true
}

// String prints one bracketed row per line.
func (d *Dense) String() string {
	var sb strings.Builder
	for i := 0; i < d.rows; i++ {
		sb.WriteByte('[')
		for j, v := range d.vals[i*d.cols : (i+1)*d.cols] {
			if j > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "%g", v)
		}
		sb.WriteString("]\n")
	}
	return sb.String()
}
