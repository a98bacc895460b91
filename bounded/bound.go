package bounded

import (
	"fmt"
	"math"
)

// Bound is an integer endpoint wide enough to hold both the most negative
// int64 and the largest uint64, so a single argument type serves every
// output width.
type Bound struct {
	neg bool
	mag uint64
}

// Int returns the bound v.
func Int(v int64) Bound {
	if v < 0 {
		return Bound{neg: true, mag: uint64(-(v + 1)) + 1}
	}
	return Bound{mag: uint64(v)}
}

// Uint returns the bound v.
func Uint(v uint64) Bound {
	return Bound{mag: v}
}

// Cmp returns -1, 0 or +1 as b is less than, equal to, or greater than c.
func (b Bound) Cmp(c Bound) int {
	switch {
	case b.neg && !c.neg:
		return -1
	case !b.neg && c.neg:
		return 1
	}
	r := 0
	switch {
	case b.mag < c.mag:
		r = -1
	case b.mag > c.mag:
		r = 1
	}
	if b.neg {
		return -r
	}
	return r
}

// pred returns b-1.  ok is false when the result is below -2^64.
func (b Bound) pred() (Bound, bool) {
	switch {
	case b.neg && b.mag == math.MaxUint64:
		return Bound{}, false
	case b.neg:
		return Bound{neg: true, mag: b.mag + 1}, true
	case b.mag == 0:
		return Bound{neg: true, mag: 1}, true
	}
	return Bound{mag: b.mag - 1}, true
}

// bits returns b in 64-bit two's complement.
func (b Bound) bits() uint64 {
	if b.neg {
		return -b.mag
	}
	return b.mag
}

// String formats b in base 10.
func (b Bound) String() string {
	if b.neg {
		return fmt.Sprintf("-%d", b.mag)
	}
	return fmt.Sprintf("%d", b.mag)
}
