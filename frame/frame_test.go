package frame_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cmcutils/frame"
)

func TestNewSeries_LengthMismatch(t *testing.T) {
	_, err := frame.NewSeries("x", []string{"a"}, []float64{1, 2})
	require.ErrorIs(t, err, frame.ErrLengthMismatch)
}

func TestNewSeries_DefaultIndex(t *testing.T) {
	s, err := frame.NewSeries("x", nil, []float64{4, 5})
	require.NoError(t, err)
	assert.Equal(t, []string{"0", "1"}, s.Index())

	v, ok := s.Get("1")
	assert.True(t, ok)
	assert.Equal(t, 5.0, v)

	_, ok = s.Get("9")
	assert.False(t, ok)
}

func TestConcatSeries_AppendsRows(t *testing.T) {
	a, _ := frame.NewSeries("mean", []string{"age"}, []float64{31})
	b, _ := frame.NewSeries("mean", []string{"bmi", "age"}, []float64{24.5, 40})

	got, err := frame.ConcatSeries(a, b)
	require.NoError(t, err)
	assert.Equal(t, "mean", got.Name())
	assert.Equal(t, []string{"age", "bmi", "age"}, got.Index())
	assert.Equal(t, []float64{31, 24.5, 40}, got.Values())

	// inputs untouched
	assert.Equal(t, 1, a.Len())

	c, _ := frame.NewSeries("std", nil, []float64{1})
	got, err = frame.ConcatSeries(a, c)
	require.NoError(t, err)
	assert.Empty(t, got.Name(), "differing names are dropped")

	_, err = frame.ConcatSeries(a, nil)
	require.ErrorIs(t, err, frame.ErrNilFrame)
}

func TestConcatColumns_SameIndex(t *testing.T) {
	a, err := frame.NewTable([]string{"r0", "r1"}, []string{"x"}, [][]float64{{1, 2}})
	require.NoError(t, err)
	b, err := frame.NewTable([]string{"r0", "r1"}, []string{"y", "z"}, [][]float64{{3, 4}, {5, 6}})
	require.NoError(t, err)

	got, err := frame.ConcatColumns(a, b)
	require.NoError(t, err)
	rows, cols := got.Shape()
	assert.Equal(t, 2, rows)
	assert.Equal(t, 3, cols)
	assert.Equal(t, []string{"x", "y", "z"}, got.Columns())

	z, ok := got.Column("z")
	require.True(t, ok)
	assert.Equal(t, []float64{5, 6}, z)
}

func TestConcatColumns_OuterAlign(t *testing.T) {
	a, _ := frame.NewTable([]string{"r0", "r1"}, []string{"x"}, [][]float64{{1, 2}})
	b, _ := frame.NewTable([]string{"r1", "r2"}, []string{"y"}, [][]float64{{3, 4}})

	got, err := frame.ConcatColumns(a, b)
	require.NoError(t, err)
	assert.Equal(t, []string{"r0", "r1", "r2"}, got.Index())

	x, _ := got.Column("x")
	y, _ := got.Column("y")
	assert.Equal(t, 1.0, x[0])
	assert.Equal(t, 2.0, x[1])
	assert.True(t, math.IsNaN(x[2]))
	assert.True(t, math.IsNaN(y[0]))
	assert.Equal(t, []float64{3, 4}, y[1:])
}

func TestConcatColumns_DuplicateIndex(t *testing.T) {
	a, _ := frame.NewTable([]string{"r0", "r0"}, []string{"x"}, [][]float64{{1, 2}})
	b, _ := frame.NewTable([]string{"r1"}, []string{"y"}, [][]float64{{3}})

	_, err := frame.ConcatColumns(a, b)
	require.ErrorIs(t, err, frame.ErrDuplicateIndex)
}

func TestTable_CloneEqual(t *testing.T) {
	a, _ := frame.NewTable(nil, []string{"x"}, [][]float64{{1, math.NaN()}})
	b := a.Clone()
	assert.True(t, a.Equal(b))
	assert.Equal(t, []string{"0", "1"}, b.Index())

	_, err := frame.NewTable(nil, []string{"x", "y"}, [][]float64{{1}})
	require.ErrorIs(t, err, frame.ErrLengthMismatch)
}
