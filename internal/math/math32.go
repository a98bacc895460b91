// Package math provides float32 math utilities for the single precision
// sampling kernels.
package math

import "math"

// Sqrt32 computes the square root of a float32.
func Sqrt32(x float32) float32 {
	return float32(math.Sqrt(float64(x)))
}

// Pow32 computes x^y for float32.
func Pow32(x, y float32) float32 {
	return float32(math.Pow(float64(x), float64(y)))
}

// Log32 computes natural log of x for float32.
func Log32(x float32) float32 {
	return float32(math.Log(float64(x)))
}

// Log1p32 computes log(1 + x) for float32, accurate for x near zero.
func Log1p32(x float32) float32 {
	return float32(math.Log1p(float64(x)))
}
