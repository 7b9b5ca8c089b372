// Package array_test contains unit tests for the Dense matrix.
package array_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cmcutils/array"
)

// TestNewDenseInvalidDimensions ensures that NewDense rejects negative dimensions
// and accepts empty shapes.
func TestNewDenseInvalidDimensions(t *testing.T) {
	_, err := array.NewDense(-1, 5)
	require.ErrorIs(t, err, array.ErrInvalidDimensions)

	_, err = array.NewDense(5, -1)
	require.ErrorIs(t, err, array.ErrInvalidDimensions)

	m, err := array.NewDense(0, 3) // empty table shape
	require.NoError(t, err)
	require.Equal(t, 0, m.Rows())
	require.Equal(t, 3, m.Cols())
}

// TestAtSetOutOfBounds ensures At() and Set() return ErrIndexOutOfBounds on invalid access.
func TestAtSetOutOfBounds(t *testing.T) {
	m, err := array.NewDense(2, 2)
	require.NoError(t, err)

	_, err = m.At(-1, 0)
	require.ErrorIs(t, err, array.ErrIndexOutOfBounds)

	_, err = m.At(0, 2)
	require.ErrorIs(t, err, array.ErrIndexOutOfBounds)

	err = m.Set(2, 0, 1.23)
	require.ErrorIs(t, err, array.ErrIndexOutOfBounds)

	_, err = m.Row(5)
	require.ErrorIs(t, err, array.ErrIndexOutOfBounds)

	_, err = m.Col(-1)
	require.ErrorIs(t, err, array.ErrIndexOutOfBounds)
}

// TestSetGetClone validates Set/At and that Clone does not alias.
func TestSetGetClone(t *testing.T) {
	m, err := array.NewDense(2, 3)
	require.NoError(t, err)
	require.NoError(t, m.Set(1, 2, 7.89))

	c := m.Clone()
	require.NoError(t, m.Set(1, 2, 0))

	v, err := c.At(1, 2)
	require.NoError(t, err)
	require.Equal(t, 7.89, v)
}

// TestFromColumns checks column placement and ragged-column rejection.
func TestFromColumns(t *testing.T) {
	m, err := array.FromColumns(2, [][]float64{{1, 2}, {3, 4}, {5, 6}})
	require.NoError(t, err)

	row, err := m.Row(1)
	require.NoError(t, err)
	require.Equal(t, []float64{2, 4, 6}, row)

	col, err := m.Col(2)
	require.NoError(t, err)
	require.Equal(t, []float64{5, 6}, col)

	_, err = array.FromColumns(2, [][]float64{{1, 2}, {3}})
	require.ErrorIs(t, err, array.ErrDimensionMismatch)
}

// TestHStackVStack verifies both concatenation directions and shape checks.
func TestHStackVStack(t *testing.T) {
	a, _ := array.FromColumns(2, [][]float64{{1, 2}})
	b, _ := array.FromColumns(2, [][]float64{{3, 4}, {5, 6}})

	h, err := array.HStack(a, b)
	require.NoError(t, err)
	require.Equal(t, 2, h.Rows())
	require.Equal(t, 3, h.Cols())
	row, _ := h.Row(0)
	require.Equal(t, []float64{1, 3, 5}, row)

	v, err := array.VStack(b, b)
	require.NoError(t, err)
	require.Equal(t, 4, v.Rows())
	col, _ := v.Col(0)
	require.Equal(t, []float64{3, 4, 3, 4}, col)

	_, err = array.VStack(a, b)
	require.ErrorIs(t, err, array.ErrDimensionMismatch)

	c, _ := array.NewDense(3, 1)
	_, err = array.HStack(a, c)
	require.ErrorIs(t, err, array.ErrDimensionMismatch)

	_, err = array.HStack(a, nil)
	require.ErrorIs(t, err, array.ErrNilMatrix)

	empty, err := array.HStack()
	require.NoError(t, err)
	require.Equal(t, 0, empty.Rows())
}

// TestRandomDeterministic locks the seeded fill order.
func TestRandomDeterministic(t *testing.T) {
	a, err := array.Random(3, 2, rand.New(rand.NewSource(42)))
	require.NoError(t, err)
	b, err := array.Random(3, 2, rand.New(rand.NewSource(42)))
	require.NoError(t, err)
	require.True(t, a.Equal(b))

	_, err = array.Random(1, 1, nil)
	require.ErrorIs(t, err, array.ErrNilRand)
}

// TestEqualNaN treats NaN padding as equal.
func TestEqualNaN(t *testing.T) {
	a, _ := array.NewFilled(1, 2, math.NaN())
	b, _ := array.NewFilled(1, 2, math.NaN())
	require.True(t, a.Equal(b))

	require.NoError(t, b.Set(0, 1, 1))
	require.False(t, a.Equal(b))
	require.Equal(t, "[NaN, NaN]\n", a.String())
}
