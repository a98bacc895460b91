// Package bounded draws unbiased integers from closed ranges of every
// integer width and bool.
//
// Sampling uses masked rejection: each raw word is ANDed with the smallest
// all-ones mask covering the range and redrawn while the result exceeds it.
// No modulo reduction is ever applied.  The word sizes, the buffering of
// narrow widths and the draw order all follow NumPy's Generator.integers so
// that equal seeds give equal streams.
package bounded

import (
	"math"
	"math/bits"

	"github.com/nozzle/nprand/bitgen"
	"github.com/nozzle/nprand/dtype"
	"github.com/nozzle/nprand/fill"
	"github.com/nozzle/nprand/randerr"
	"github.com/nozzle/nprand/shape"
)

// Range is a validated request: draw Off + v for v uniform in [0, Rng].
// Off is the low bound in two's complement.
type Range struct {
	Off   uint64
	Rng   uint64
	DType dtype.DType
}

// Normalize validates low and high against the width dt and returns the
// closed range to sample.  With endpoint false, high is exclusive and is
// made closed by subtracting one before any check.
func Normalize(low, high Bound, endpoint bool, dt dtype.DType) (Range, error) {
	info, err := dtype.IntInfo(dt)
	if err != nil {
		return Range{}, err
	}

	closed := high
	if !endpoint {
		var ok bool
		if closed, ok = high.pred(); !ok {
			return Range{}, randerr.Newf(randerr.ErrInvalidRange,
				"high is out of bounds for %s", dt)
		}
	}

	if low.Cmp(Int(info.Min)) < 0 {
		return Range{}, randerr.Newf(randerr.ErrInvalidRange,
			"low is out of bounds for %s", dt)
	}
	if closed.Cmp(Uint(info.Max)) > 0 {
		return Range{}, randerr.Newf(randerr.ErrInvalidRange,
			"high is out of bounds for %s", dt)
	}
	if low.Cmp(closed) > 0 {
		if endpoint {
			return Range{}, randerr.Newf(randerr.ErrInvalidRange,
				"low > high (%s > %s)", low, high)
		}
		return Range{}, randerr.Newf(randerr.ErrInvalidRange,
			"low >= high (%s >= %s)", low, high)
	}

	return Range{
		Off:   low.bits(),
		Rng:   closed.bits() - low.bits(),
		DType: dt,
	}, nil
}

// mask returns the smallest 2^k-1 that is >= rng.
func mask(rng uint64) uint64 {
	if rng == 0 {
		return 0
	}
	return ^uint64(0) >> bits.LeadingZeros64(rng)
}

// Interval returns a uniform value in [0, high].  It reads 32-bit words when
// high fits in 32 bits and 64-bit words otherwise.
func Interval(src bitgen.Source, high uint64) uint64 {
	if high == 0 {
		return 0
	}
	m := mask(high)
	if high <= math.MaxUint32 {
		for {
			if v := uint64(src.Uint32()) & m; v <= high {
				return v
			}
		}
	}
	for {
		if v := src.Uint64() & m; v <= high {
			return v
		}
	}
}

// word64 draws from [0, rng] for 64-bit widths.  Ranges that fit in 32 bits
// consume 32-bit words.
func word64(src bitgen.Source, rng, m uint64) uint64 {
	switch {
	case rng == 0:
		return 0
	case rng == math.MaxUint32:
		return uint64(src.Uint32())
	case rng < math.MaxUint32:
		return uint64(word32(src, uint32(rng), uint32(m)))
	case rng == math.MaxUint64:
		return src.Uint64()
	}
	for {
		if v := src.Uint64() & m; v <= rng {
			return v
		}
	}
}

// word32 draws from [0, rng] using 32-bit words.
func word32(src bitgen.Source, rng, m uint32) uint32 {
	switch rng {
	case 0:
		return 0
	case math.MaxUint32:
		return src.Uint32()
	}
	for {
		if v := src.Uint32() & m; v <= rng {
			return v
		}
	}
}

// chunked splits each 32-bit word into width-bit chunks consumed low first.
// The buffer lives for one Fill call, so a scalar request always starts on
// a fresh word.
type chunked struct {
	width uint
	per   int
	rng   uint32
	mask  uint32

	buf uint32
	cnt int
}

func newChunked(width uint, rng uint64) *chunked {
	return &chunked{
		width: width,
		per:   32 / int(width),
		rng:   uint32(rng),
		mask:  uint32(mask(rng)),
	}
}

func (c *chunked) chunk(src bitgen.Source) uint32 {
	if c.cnt == 0 {
		c.buf = src.Uint32()
		c.cnt = c.per - 1
	} else {
		c.buf >>= c.width
		c.cnt--
	}
	return c.buf
}

func (c *chunked) next(src bitgen.Source) uint32 {
	if c.rng == 0 {
		return 0
	}
	for {
		if v := c.chunk(src) & c.mask; v <= c.rng {
			return v
		}
	}
}

// Fill draws one value (scalar size) or an array of values from r in
// row-major order.  r must come from Normalize and size must be valid.
func Fill(src bitgen.Source, r Range, size shape.Size) fill.Sample {
	off, rng := r.Off, r.Rng
	m := mask(rng)

	switch r.DType {
	case dtype.Int64:
		return fill.Run(src, size, func(src bitgen.Source) int64 {
			return int64(off + word64(src, rng, m))
		})
	case dtype.Uint64:
		return fill.Run(src, size, func(src bitgen.Source) uint64 {
			return off + word64(src, rng, m)
		})
	case dtype.Int32:
		return fill.Run(src, size, func(src bitgen.Source) int32 {
			return int32(uint32(off) + word32(src, uint32(rng), uint32(m)))
		})
	case dtype.Uint32:
		return fill.Run(src, size, func(src bitgen.Source) uint32 {
			return uint32(off) + word32(src, uint32(rng), uint32(m))
		})
	case dtype.Int16:
		c := newChunked(16, rng)
		return fill.Run(src, size, func(src bitgen.Source) int16 {
			return int16(uint16(off) + uint16(c.next(src)))
		})
	case dtype.Uint16:
		c := newChunked(16, rng)
		return fill.Run(src, size, func(src bitgen.Source) uint16 {
			return uint16(off) + uint16(c.next(src))
		})
	case dtype.Int8:
		c := newChunked(8, rng)
		return fill.Run(src, size, func(src bitgen.Source) int8 {
			return int8(uint8(off) + uint8(c.next(src)))
		})
	case dtype.Uint8:
		c := newChunked(8, rng)
		return fill.Run(src, size, func(src bitgen.Source) uint8 {
			return uint8(off) + uint8(c.next(src))
		})
	case dtype.Bool:
		c := newChunked(1, rng)
		return fill.Run(src, size, func(src bitgen.Source) bool {
			return off+uint64(c.next(src)) != 0
		})
	}
	panic("bounded: range with unsupported dtype " + r.DType.String())
}
