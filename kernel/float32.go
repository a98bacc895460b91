package kernel

import (
	"github.com/nozzle/nprand/bitgen"
	m "github.com/nozzle/nprand/internal/math"
)

func standardExponentialInv32(src bitgen.Source, _ Params) float32 {
	return -m.Log1p32(-src.Float32())
}

// standardGamma32 is the single precision gamma variate: Marsaglia and
// Tsang's squeeze for shape > 1 and Johnk-style rejection below one, all in
// float32 arithmetic.
func standardGamma32(src bitgen.Source, p Params) float32 {
	shape := float32(p[0])
	switch {
	case shape == 1:
		return float32(stdExponential(src))
	case shape == 0:
		return 0
	case shape < 1:
		for {
			u := src.Float32()
			v := float32(stdExponential(src))
			if u <= 1-shape {
				x := m.Pow32(u, 1/shape)
				if x <= v {
					return x
				}
			} else {
				y := -m.Log32((1 - u) / shape)
				x := m.Pow32(1-shape+shape*y, 1/shape)
				if x <= v+y {
					return x
				}
			}
		}
	}

	b := shape - 1.0/3.0
	c := 1 / m.Sqrt32(9*b)
	for {
		var x, v float32
		for {
			x = float32(stdNormal(src))
			v = 1 + c*x
			if v > 0 {
				break
			}
		}
		v = v * v * v
		u := src.Float32()
		if u < 1-0.0331*(x*x)*(x*x) {
			return b * v
		}
		if m.Log32(u) < 0.5*x*x+b*(1-v+m.Log32(v)) {
			return b * v
		}
	}
}
