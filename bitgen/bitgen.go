// Package bitgen defines the raw bit source consumed by every nprand sampler
// and provides NumPy-compatible implementations of it.
//
// A Source is not safe for concurrent use.  Callers that need parallel
// sampling must give each goroutine its own Source.
package bitgen

// Source is a stateful producer of uniform random bits.
//
// Any Source also satisfies math/rand/v2.Source, which lets gonum's distuv
// distributions draw from it directly.
type Source interface {
	// Uint32 returns 32 uniformly distributed bits.
	Uint32() uint32
	// Uint64 returns 64 uniformly distributed bits.
	Uint64() uint64
	// Float32 returns a float32 in [0, 1) with 24 bits of precision.
	Float32() float32
	// Float64 returns a float64 in [0, 1) with 53 bits of precision.
	Float64() float64
}

const (
	float32Unit = 1.0 / 16777216.0
	float64Unit = 1.0 / 9007199254740992.0
)

// float32From converts the top 24 bits of a 32-bit word into [0, 1).
func float32From(u uint32) float32 {
	return float32(u>>8) * float32Unit
}

// float64From converts the top 53 bits of a 64-bit word into [0, 1).
func float64From(u uint64) float64 {
	return float64(u>>11) * float64Unit
}
