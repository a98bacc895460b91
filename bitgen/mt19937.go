package bitgen

// This implements the Mersenne Twister (MT19937) algorithm for exact
// reproducibility with numpy.random.MT19937 and RandomState when seeded with
// an integer.

const (
	mtN        = 624
	mtM        = 397
	matrixA    = 0x9908b0df
	upperMask  = 0x80000000
	lowerMask  = 0x7fffffff
	temperingB = 0x9d2c5680
	temperingC = 0xefc60000
)

// MT19937 is a Mersenne Twister random number generator compatible with NumPy.
type MT19937 struct {
	mt  [mtN]uint32
	mti int
}

// NewMT19937 creates a new Mersenne Twister with the given seed.
// This matches numpy.random.RandomState(seed).
func NewMT19937(seed uint32) *MT19937 {
	mt := &MT19937{}
	mt.Seed(seed)
	return mt
}

// Seed initializes the generator with a seed.
// This matches NumPy's legacy integer seeding (init_genrand).
func (mt *MT19937) Seed(seed uint32) {
	mt.mt[0] = seed
	for i := 1; i < mtN; i++ {
		mt.mt[i] = 1812433253*(mt.mt[i-1]^(mt.mt[i-1]>>30)) + uint32(i)
	}
	mt.mti = mtN
}

// generate refills the state vector, N words at a time.
func (mt *MT19937) generate() {
	var y uint32
	mag01 := [2]uint32{0, matrixA}

	var kk int
	for kk = 0; kk < mtN-mtM; kk++ {
		y = (mt.mt[kk] & upperMask) | (mt.mt[kk+1] & lowerMask)
		mt.mt[kk] = mt.mt[kk+mtM] ^ (y >> 1) ^ mag01[y&1]
	}
	for ; kk < mtN-1; kk++ {
		y = (mt.mt[kk] & upperMask) | (mt.mt[kk+1] & lowerMask)
		mt.mt[kk] = mt.mt[kk+(mtM-mtN)] ^ (y >> 1) ^ mag01[y&1]
	}
	y = (mt.mt[mtN-1] & upperMask) | (mt.mt[0] & lowerMask)
	mt.mt[mtN-1] = mt.mt[mtM-1] ^ (y >> 1) ^ mag01[y&1]
	mt.mti = 0
}

// Uint32 generates a random uint32.
func (mt *MT19937) Uint32() uint32 {
	if mt.mti >= mtN {
		mt.generate()
	}

	y := mt.mt[mt.mti]
	mt.mti++

	// Tempering
	y ^= y >> 11
	y ^= (y << 7) & temperingB
	y ^= (y << 15) & temperingC
	y ^= y >> 18

	return y
}

// Uint64 joins two consecutive 32-bit outputs, the first one high.
func (mt *MT19937) Uint64() uint64 {
	hi := uint64(mt.Uint32())
	return hi<<32 | uint64(mt.Uint32())
}

// Float32 generates a random float32 in [0, 1) from one 32-bit output.
func (mt *MT19937) Float32() float32 {
	return float32From(mt.Uint32())
}

// Float64 generates a random float64 in [0, 1).
// This matches numpy's random_sample(): 27 bits from the first output and 26
// bits from the second give 53 bits of precision.
func (mt *MT19937) Float64() float64 {
	a := mt.Uint32() >> 5
	b := mt.Uint32() >> 6
	return (float64(a)*67108864.0 + float64(b)) * float64Unit
}
