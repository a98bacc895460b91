package bitgen

import (
	"encoding/binary"
	"errors"
	"math/rand/v2"
)

// PCG64DXSM is the 128-bit PCG generator with the DXSM output function, the
// same core as numpy.random.PCG64DXSM.  32-bit outputs are buffered the way
// NumPy does it: each 64-bit output serves two Uint32 calls, low half first.
//
// Seeding expands a single 64-bit seed with splitmix64 and does not
// reproduce NumPy's SeedSequence.
type PCG64DXSM struct {
	pcg       *rand.PCG
	hasUint32 bool
	uinteger  uint32
}

// NewPCG64DXSM creates a generator from a 64-bit seed.
func NewPCG64DXSM(seed uint64) *PCG64DXSM {
	x := seed ^ 0x9e3779b97f4a7c15
	hi := splitmix64(x)
	lo := splitmix64(x ^ 0xda942042e4dd58b5)
	return &PCG64DXSM{pcg: rand.NewPCG(hi, lo)}
}

// NewPCG64DXSMState creates a generator from a raw 128-bit state.
func NewPCG64DXSMState(hi, lo uint64) *PCG64DXSM {
	return &PCG64DXSM{pcg: rand.NewPCG(hi, lo)}
}

// splitmix64 mixes the input into a well distributed 64-bit value for seed
// expansion.
func splitmix64(x uint64) uint64 {
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	return x ^ (x >> 31)
}

// Uint64 returns the next 64-bit output.
func (p *PCG64DXSM) Uint64() uint64 {
	return p.pcg.Uint64()
}

// Uint32 returns the buffered high half of the previous 64-bit output if one
// is pending, otherwise the low half of a fresh one.
func (p *PCG64DXSM) Uint32() uint32 {
	if p.hasUint32 {
		p.hasUint32 = false
		return p.uinteger
	}
	next := p.pcg.Uint64()
	p.hasUint32 = true
	p.uinteger = uint32(next >> 32)
	return uint32(next)
}

// Float32 returns a float32 in [0, 1).
func (p *PCG64DXSM) Float32() float32 {
	return float32From(p.Uint32())
}

// Float64 returns a float64 in [0, 1).
func (p *PCG64DXSM) Float64() float64 {
	return float64From(p.pcg.Uint64())
}

// MarshalBinary snapshots the generator, including any buffered half word.
func (p *PCG64DXSM) MarshalBinary() ([]byte, error) {
	state, err := p.pcg.MarshalBinary()
	if err != nil {
		return nil, err
	}
	buf := make([]byte, 0, len(state)+5)
	buf = append(buf, state...)
	if p.hasUint32 {
		buf = append(buf, 1)
	} else {
		buf = append(buf, 0)
	}
	return binary.LittleEndian.AppendUint32(buf, p.uinteger), nil
}

// UnmarshalBinary restores a snapshot taken by MarshalBinary.
func (p *PCG64DXSM) UnmarshalBinary(data []byte) error {
	if len(data) < 5 {
		return errors.New("bitgen: PCG64DXSM snapshot too short")
	}
	n := len(data) - 5
	if p.pcg == nil {
		p.pcg = new(rand.PCG)
	}
	if err := p.pcg.UnmarshalBinary(data[:n]); err != nil {
		return err
	}
	p.hasUint32 = data[n] == 1
	p.uinteger = binary.LittleEndian.Uint32(data[n+1:])
	return nil
}
