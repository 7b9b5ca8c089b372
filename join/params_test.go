package join_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cmcutils/cfgtree"
	"github.com/katalvlaran/cmcutils/join"
)

func foldParams(t *testing.T, mean float64, col string) *cfgtree.Mapping {
	t.Helper()
	return cfgtree.Of(
		"mean", mustSeries(t, "mean", []string{col}, mean),
		"categorical_columns", cfgtree.Of(0, col),
		"method", "zscore",
	)
}

func TestPreprocessingParams_Rules(t *testing.T) {
	first := foldParams(t, 30, "age")
	second := foldParams(t, 25, "bmi")
	second.Set(cfgtree.StrKey("extra"), cfgtree.Int(1))

	got, err := join.PreprocessingParams([]*cfgtree.Mapping{first, second})
	require.NoError(t, err)

	mv, _ := got.Get(cfgtree.StrKey("mean"))
	s, ok := mv.AsSeries()
	require.True(t, ok)
	assert.Equal(t, []float64{30, 25}, s.Values())

	cv, _ := got.Get(cfgtree.StrKey("categorical_columns"))
	cols, _ := cv.AsMapping()
	assert.True(t, cfgtree.Of(0, "age", 1, "bmi").Equal(cols), "got %s", cols)

	method, _ := got.Get(cfgtree.StrKey("method"))
	assert.Equal(t, cfgtree.String("zscore"), method, "unmatched key skipped")

	extra, _ := got.Get(cfgtree.StrKey("extra"))
	assert.Equal(t, cfgtree.Int(1), extra, "new keys are inserted")

	// first input is resolved to a copy and left alone
	fc, _ := first.Get(cfgtree.StrKey("categorical_columns"))
	fcm, _ := fc.AsMapping()
	assert.Equal(t, 1, fcm.Len())
}

func TestPreprocessingParams_Policies(t *testing.T) {
	a := cfgtree.Of("method", "zscore", 7, 1)
	b := cfgtree.Of("method", "minmax", 7, 2)

	got, err := join.PreprocessingParams([]*cfgtree.Mapping{a, b}, join.WithOnUnmatched(join.OnUnmatchedOverwrite))
	require.NoError(t, err)
	m, _ := got.Get(cfgtree.StrKey("method"))
	assert.Equal(t, cfgtree.String("minmax"), m)
	i, _ := got.Get(cfgtree.IntKey(7))
	assert.Equal(t, cfgtree.Int(2), i)

	_, err = join.PreprocessingParams([]*cfgtree.Mapping{a, b}, join.WithOnUnmatched(join.OnUnmatchedError))
	assert.ErrorIs(t, err, join.ErrUnmatchedKey)

	got, err = join.PreprocessingParams([]*cfgtree.Mapping{a, b})
	require.NoError(t, err)
	i, _ = got.Get(cfgtree.IntKey(7))
	assert.Equal(t, cfgtree.Int(1), i, "integer keys never take the columns rule")
}

func TestPreprocessingParams_Errors(t *testing.T) {
	_, err := join.PreprocessingParams(nil)
	assert.ErrorIs(t, err, join.ErrNoInput)

	_, err = join.PreprocessingParams([]*cfgtree.Mapping{
		cfgtree.Of("columns", "age"),
		cfgtree.Of("columns", cfgtree.Of(0, "bmi")),
	})
	assert.ErrorIs(t, err, join.ErrUnsupportedOperand)

	assert.Panics(t, func() { join.WithOnUnmatched(join.OnUnmatched(9)) })
}

func TestParseOnUnmatched(t *testing.T) {
	for _, p := range []join.OnUnmatched{join.OnUnmatchedSkip, join.OnUnmatchedOverwrite, join.OnUnmatchedError} {
		got, err := join.ParseOnUnmatched(p.String())
		require.NoError(t, err)
		assert.Equal(t, p, got)
	}
	_, err := join.ParseOnUnmatched("merge")
	assert.Error(t, err)
}
