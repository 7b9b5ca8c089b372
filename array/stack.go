// SPDX-License-Identifier: MIT

// Package array - row/column concatenation.
//
// HStack glues matrices side by side (same row count); VStack stacks them
// top to bottom (same column count).
//
// Guarantees:
//   - The result is freshly allocated; operands are never aliased or modified.
//   - Operand order is preserved: left to right, top to bottom.
//   - Nil operands fail with ErrNilMatrix, shape disagreements with
//     ErrDimensionMismatch naming the offending operand.
//
// Concurrency:
//   - Read-only on the operands; safe to call concurrently on shared inputs
//     as long as nobody Sets them meanwhile.

package array

import "fmt"

// shape checks ms for nil operands and a shared dimension. same picks the
// dimension that must match; grow the one that is summed.
func shape(op string, ms []*Dense, same, grow func(*Dense) int) (fixed, total int, err error) {
	for k, m := range ms {
		if m == nil {
			return 0, 0, fmt.Errorf("%s: operand %d: %w", op, k, ErrNilMatrix)
		}
		if k == 0 {
			fixed = same(m)
		} else if same(m) != fixed {
			return 0, 0, fmt.Errorf("%s: operand %d is %dx%d, want %d shared: %w",
				op, k, m.rows, m.cols, fixed, ErrDimensionMismatch)
		}
		total += grow(m)
	}
	return fixed, total, nil
}

func rowsOf(m *Dense) int { return m.rows }
func colsOf(m *Dense) int { return m.cols }

// HStack concatenates ms column-wise. With no operands it returns 0×0.
// Complexity: O(rows * Σcols).
func HStack(ms ...*Dense) (*Dense, error) {
	rows, cols, err := shape("HStack", ms, rowsOf, colsOf)
	if err != nil {
		return nil, err
	}
	out, err := NewDense(rows, cols)
	if err != nil {
		return nil, err
	}
	off := 0
	for _, m := range ms {
		for i := 0; i < rows; i++ {
			copy(out.vals[i*cols+off:], m.vals[i*m.cols:(i+1)*m.cols])
		}
		off += m.cols
	}
	return out, nil
}

// VStack concatenates ms row-wise. With no operands it returns 0×0.
// Complexity: O(Σrows * cols).
func VStack(ms ...*Dense) (*Dense, error) {
	cols, rows, err := shape("VStack", ms, colsOf, rowsOf)
	if err != nil {
		return nil, err
	}
	vals := make([]float64, 0, rows*cols)
	for _, m := range ms {
		vals = append(vals, m.vals...)
	}
	return &Dense{rows: rows, cols: cols, vals: vals}, nil
}
