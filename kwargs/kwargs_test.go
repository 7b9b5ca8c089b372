package kwargs_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cmcutils/kwargs"
)

func TestFilter_KeepsDeclaredOnly(t *testing.T) {
	got := kwargs.Filter(kwargs.Params("a", "b"), kwargs.Args{"a": 1, "b": 2, "c": 3})
	assert.Equal(t, kwargs.Args{"a": 1, "b": 2}, got)
}

func TestFilter_SubsetOfBoth(t *testing.T) {
	in := kwargs.Args{"a": 1, "z": 26}
	got := kwargs.Filter(kwargs.Params("a", "b"), in)
	assert.Equal(t, kwargs.Args{"a": 1}, got, "declared but absent names are not invented")
	assert.Len(t, in, 2, "input untouched")

	assert.Empty(t, kwargs.Filter(nil, in))
}

type scheduler struct {
	Warmup   int     `yaml:"warmup"`
	MaxLR    float64 `yaml:"max_lr"`
	Gamma    float64
	internal string
	Skipped  bool `yaml:"-"`
}

func TestStructParams(t *testing.T) {
	names, err := kwargs.StructParams(&scheduler{})
	require.NoError(t, err)
	assert.Equal(t, kwargs.ParamList{"warmup", "max_lr", "gamma"}, names)

	_, err = kwargs.StructParams(42)
	assert.ErrorIs(t, err, kwargs.ErrNotStruct)
}

type base struct {
	Seed int `yaml:"seed"`
}

type trainer struct {
	base   `yaml:",inline"`
	Epochs int `yaml:"epochs"`
}

func (c *trainer) Validate() error {
	if c.Epochs <= 0 {
		return errors.New("epochs must be positive")
	}
	return nil
}

func TestStructParams_Inline(t *testing.T) {
	names, err := kwargs.StructParams(trainer{})
	require.NoError(t, err)
	assert.Equal(t, kwargs.ParamList{"epochs"}, names, "unexported embedded struct is skipped")
}

type Common struct {
	Seed int `yaml:"seed"`
}

type job struct {
	Common `yaml:",inline"`
	Name   string `yaml:"name"`
}

func TestStructParams_ExportedInline(t *testing.T) {
	names, err := kwargs.StructParams(job{})
	require.NoError(t, err)
	assert.Equal(t, kwargs.ParamList{"seed", "name"}, names)
}

func TestBind_DecodesAndKeepsDefaults(t *testing.T) {
	cfg := scheduler{Warmup: 100, Gamma: 0.9}
	err := kwargs.Bind(kwargs.Args{"max_lr": 0.3, "epochs": 5, "gamma": 0.5}, &cfg)
	require.NoError(t, err)
	assert.Equal(t, 100, cfg.Warmup)
	assert.Equal(t, 0.3, cfg.MaxLR)
	assert.Equal(t, 0.5, cfg.Gamma)
}

func TestBind_Validates(t *testing.T) {
	var cfg trainer
	err := kwargs.Bind(kwargs.Args{"epochs": 0}, &cfg)
	assert.ErrorIs(t, err, kwargs.ErrInvalid)

	require.NoError(t, kwargs.Bind(kwargs.Args{"epochs": 3}, &cfg))
	assert.Equal(t, 3, cfg.Epochs)
}

func TestBind_Errors(t *testing.T) {
	assert.ErrorIs(t, kwargs.Bind(kwargs.Args{}, scheduler{}), kwargs.ErrNotStruct)

	var cfg scheduler
	err := kwargs.Bind(kwargs.Args{"warmup": "soon"}, &cfg)
	assert.ErrorIs(t, err, kwargs.ErrDecode)
}
