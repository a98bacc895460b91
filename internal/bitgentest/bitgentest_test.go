package bitgentest

import (
	"testing"

	"github.com/nozzle/nprand/bitgen"
	"github.com/stretchr/testify/assert"
)

var (
	_ bitgen.Source = (*Script)(nil)
	_ bitgen.Source = (*Counter)(nil)
	_ bitgen.Source = (*Sequence)(nil)
)

func TestScript(t *testing.T) {
	s := &Script{U32: []uint32{7}, F64: []float64{0.5}}
	assert.Equal(t, 2, s.Remaining())
	assert.Equal(t, uint32(7), s.Uint32())
	assert.Equal(t, 0.5, s.Float64())
	assert.Zero(t, s.Remaining())
	assert.Panics(t, func() { s.Uint64() })
}

func TestCounterForwards(t *testing.T) {
	c := &Counter{Src: &Script{
		U32: []uint32{1},
		U64: []uint64{2, 3},
		F32: []float32{0.25},
		F64: []float64{0.75},
	}}
	assert.Equal(t, uint32(1), c.Uint32())
	assert.Equal(t, uint64(2), c.Uint64())
	assert.Equal(t, uint64(3), c.Uint64())
	assert.Equal(t, float32(0.25), c.Float32())
	assert.Equal(t, 0.75, c.Float64())

	assert.Equal(t, 5, c.Total())
	assert.Equal(t, "u32=1 u64=2 f32=1 f64=1", c.String())
}

func TestSequenceSharesOneCounter(t *testing.T) {
	var s Sequence
	assert.Equal(t, uint32(0), s.Uint32())
	assert.Equal(t, uint64(1), s.Uint64())
	assert.Equal(t, float32(2)/1024, s.Float32())
	assert.Equal(t, 3.0/1024, s.Float64())
}
