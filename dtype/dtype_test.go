package dtype

import (
	"errors"
	"math"
	"testing"

	"github.com/nozzle/nprand/randerr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want DType
	}{
		{"float32", Float32},
		{"np.float64", Float64},
		{"double", Float64},
		{"bool_", Bool},
		{"UINT8", Uint8},
		{" int16 ", Int16},
		{"int", Int64},
		{"uint64", Uint64},
	}
	for _, tt := range tests {
		got, err := Parse(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	_, err := Parse("complex128")
	assert.True(t, errors.Is(err, randerr.ErrUnsupportedDType))
}

func TestStringRoundTrip(t *testing.T) {
	for d := Bool; d <= Float64; d++ {
		got, err := Parse(d.String())
		require.NoError(t, err)
		assert.Equal(t, d, got)
	}
	assert.Equal(t, "invalid", Invalid.String())
}

func TestCategories(t *testing.T) {
	for d := Bool; d <= Uint64; d++ {
		assert.True(t, d.IsInteger(), d.String())
		assert.False(t, d.IsFloat(), d.String())
	}
	assert.True(t, Float32.IsFloat())
	assert.True(t, Float64.IsFloat())
	assert.False(t, Float64.IsInteger())
	assert.False(t, Invalid.IsInteger())
}

func TestIntInfo(t *testing.T) {
	tests := []struct {
		d    DType
		want Info
	}{
		{Bool, Info{Bits: 1, Min: 0, Max: 1}},
		{Int8, Info{Bits: 8, Signed: true, Min: -128, Max: 127}},
		{Uint8, Info{Bits: 8, Min: 0, Max: 255}},
		{Int16, Info{Bits: 16, Signed: true, Min: -32768, Max: 32767}},
		{Uint16, Info{Bits: 16, Min: 0, Max: 65535}},
		{Int32, Info{Bits: 32, Signed: true, Min: math.MinInt32, Max: math.MaxInt32}},
		{Uint32, Info{Bits: 32, Min: 0, Max: math.MaxUint32}},
		{Int64, Info{Bits: 64, Signed: true, Min: math.MinInt64, Max: math.MaxInt64}},
		{Uint64, Info{Bits: 64, Min: 0, Max: math.MaxUint64}},
	}
	for _, tt := range tests {
		got, err := IntInfo(tt.d)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, tt.d.String())
	}

	for _, d := range []DType{Float32, Float64, Invalid} {
		_, err := IntInfo(d)
		assert.True(t, errors.Is(err, randerr.ErrUnsupportedDType), d.String())
	}
}

func TestOf(t *testing.T) {
	assert.Equal(t, Bool, Of[bool]())
	assert.Equal(t, Int8, Of[int8]())
	assert.Equal(t, Uint16, Of[uint16]())
	assert.Equal(t, Uint64, Of[uint64]())
	assert.Equal(t, Float32, Of[float32]())
	assert.Equal(t, Float64, Of[float64]())
}
