// Package bitgentest provides scripted and counting bit sources for tests.
package bitgentest

import (
	"fmt"

	"github.com/nozzle/nprand/bitgen"
)

// Script replays fixed raw words.  Each accessor panics once its queue is
// exhausted so an unexpected extra draw fails the test loudly.
type Script struct {
	U32 []uint32
	U64 []uint64
	F32 []float32
	F64 []float64
}

// Uint32 pops the next scripted 32-bit word.
func (s *Script) Uint32() uint32 {
	if len(s.U32) == 0 {
		panic("bitgentest: Uint32 script exhausted")
	}
	v := s.U32[0]
	s.U32 = s.U32[1:]
	return v
}

// Uint64 pops the next scripted 64-bit word.
func (s *Script) Uint64() uint64 {
	if len(s.U64) == 0 {
		panic("bitgentest: Uint64 script exhausted")
	}
	v := s.U64[0]
	s.U64 = s.U64[1:]
	return v
}

// Float32 pops the next scripted float32.
func (s *Script) Float32() float32 {
	if len(s.F32) == 0 {
		panic("bitgentest: Float32 script exhausted")
	}
	v := s.F32[0]
	s.F32 = s.F32[1:]
	return v
}

// Float64 pops the next scripted float64.
func (s *Script) Float64() float64 {
	if len(s.F64) == 0 {
		panic("bitgentest: Float64 script exhausted")
	}
	v := s.F64[0]
	s.F64 = s.F64[1:]
	return v
}

// Remaining reports how many scripted values have not been consumed.
func (s *Script) Remaining() int {
	return len(s.U32) + len(s.U64) + len(s.F32) + len(s.F64)
}

// Counter wraps a Source and counts calls per accessor.
type Counter struct {
	Src bitgen.Source

	U32, U64, F32, F64 int
}

// Total returns the number of draws of any kind.
func (c *Counter) Total() int {
	return c.U32 + c.U64 + c.F32 + c.F64
}

// Uint32 counts the call and forwards it to Src.
func (c *Counter) Uint32() uint32 {
	c.U32++
	return c.Src.Uint32()
}

// Uint64 counts the call and forwards it to Src.
func (c *Counter) Uint64() uint64 {
	c.U64++
	return c.Src.Uint64()
}

// Float32 counts the call and forwards it to Src.
func (c *Counter) Float32() float32 {
	c.F32++
	return c.Src.Float32()
}

// Float64 counts the call and forwards it to Src.
func (c *Counter) Float64() float64 {
	c.F64++
	return c.Src.Float64()
}

// String summarizes the counts.
func (c *Counter) String() string {
	return fmt.Sprintf("u32=%d u64=%d f32=%d f64=%d", c.U32, c.U64, c.F32, c.F64)
}

// Sequence yields 0, 1, 2, ... from every accessor, scaled into [0, 1) for
// the float accessors.  It makes draw order visible in array outputs.
type Sequence struct {
	n uint64
}

func (s *Sequence) next() uint64 {
	v := s.n
	s.n++
	return v
}

// Uint32 returns the next value truncated to 32 bits.
func (s *Sequence) Uint32() uint32 { return uint32(s.next()) }

// Uint64 returns the next value.
func (s *Sequence) Uint64() uint64 { return s.next() }

// Float32 returns the next value divided by 1024.
func (s *Sequence) Float32() float32 { return float32(s.next()) / 1024 }

// Float64 returns the next value divided by 1024.
func (s *Sequence) Float64() float64 { return float64(s.next()) / 1024 }
