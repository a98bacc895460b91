package kernel

import (
	"math"

	"github.com/nozzle/nprand/bitgen"
	"gonum.org/v1/gonum/stat/distuv"
)

// Every bitgen.Source is also a math/rand/v2 Source, so distuv draws its
// uniforms straight from the caller's generator.

func random32(src bitgen.Source, _ Params) float32 { return src.Float32() }
func random64(src bitgen.Source, _ Params) float64 { return src.Float64() }

func stdNormal(src bitgen.Source) float64 {
	return distuv.Normal{Mu: 0, Sigma: 1, Src: src}.Rand()
}

func stdExponential(src bitgen.Source) float64 {
	return distuv.Exponential{Rate: 1, Src: src}.Rand()
}

// stdGamma is the unit-scale gamma variate.  gonum handles every shape > 0;
// shape 0 is the degenerate distribution at zero.
func stdGamma(src bitgen.Source, shape float64) float64 {
	switch shape {
	case 0:
		return 0
	case 1:
		return stdExponential(src)
	}
	return distuv.Gamma{Alpha: shape, Beta: 1, Src: src}.Rand()
}

func standardNormal32(src bitgen.Source, _ Params) float32 { return float32(stdNormal(src)) }
func standardNormal64(src bitgen.Source, _ Params) float64 { return stdNormal(src) }

func standardExponential32(src bitgen.Source, _ Params) float32 {
	return float32(stdExponential(src))
}

func standardExponential64(src bitgen.Source, _ Params) float64 {
	return stdExponential(src)
}

// Inversion: -log(1 - U) with one uniform per sample.
func standardExponentialInv64(src bitgen.Source, _ Params) float64 {
	return -math.Log1p(-src.Float64())
}

func standardGamma64(src bitgen.Source, p Params) float64 {
	return stdGamma(src, p[0])
}

func normal(src bitgen.Source, p Params) float64 {
	return distuv.Normal{Mu: p[0], Sigma: p[1], Src: src}.Rand()
}

func uniform(src bitgen.Source, p Params) float64 {
	low, high := p[0], p[1]
	return low + (high-low)*src.Float64()
}

func exponential(src bitgen.Source, p Params) float64 {
	return p[0] * stdExponential(src)
}

func gamma(src bitgen.Source, p Params) float64 {
	return p[1] * stdGamma(src, p[0])
}

func beta(src bitgen.Source, p Params) float64 {
	a, b := p[0], p[1]
	if a <= 1 && b <= 1 {
		return johnk(src, a, b)
	}
	return distuv.Beta{Alpha: a, Beta: b, Src: src}.Rand()
}

// johnk is Johnk's rejection algorithm for a, b <= 1.  The gamma ratio
// underflows to 0/0 there.  When X and Y both underflow the ratio is
// rebuilt in log space.
func johnk(src bitgen.Source, a, b float64) float64 {
	for {
		u := src.Float64()
		v := src.Float64()
		x := math.Pow(u, 1/a)
		y := math.Pow(v, 1/b)
		xpy := x + y
		if xpy > 1 || u+v <= 0 {
			continue
		}
		if xpy > 0 {
			return x / xpy
		}
		logX := math.Log(u) / a
		logY := math.Log(v) / b
		logM := math.Max(logX, logY)
		logX -= logM
		logY -= logM
		return math.Exp(logX - math.Log(math.Exp(logX)+math.Exp(logY)))
	}
}

func f(src bitgen.Source, p Params) float64 {
	return distuv.F{D1: p[0], D2: p[1], Src: src}.Rand()
}

func chiSquare(src bitgen.Source, p Params) float64 {
	return distuv.ChiSquared{K: p[0], Src: src}.Rand()
}

func standardCauchy(src bitgen.Source, _ Params) float64 {
	return stdNormal(src) / stdNormal(src)
}

// pareto is the Lomax (Pareto II) form NumPy uses: shifted so its support
// starts at zero.
func pareto(src bitgen.Source, p Params) float64 {
	return math.Expm1(stdExponential(src) / p[0])
}

func weibull(src bitgen.Source, p Params) float64 {
	if p[0] == 0 {
		return 0
	}
	return distuv.Weibull{K: p[0], Lambda: 1, Src: src}.Rand()
}

func power(src bitgen.Source, p Params) float64 {
	return math.Pow(-math.Expm1(-stdExponential(src)), 1/p[0])
}

func laplace(src bitgen.Source, p Params) float64 {
	if p[1] == 0 {
		return p[0]
	}
	return distuv.Laplace{Mu: p[0], Scale: p[1], Src: src}.Rand()
}

func logistic(src bitgen.Source, p Params) float64 {
	u := src.Float64()
	for u <= 0 {
		u = src.Float64()
	}
	return p[0] + p[1]*math.Log(u/(1-u))
}

func logNormal(src bitgen.Source, p Params) float64 {
	return distuv.LogNormal{Mu: p[0], Sigma: p[1], Src: src}.Rand()
}

func rayleigh(src bitgen.Source, p Params) float64 {
	return p[0] * math.Sqrt(2*stdExponential(src))
}

func standardT(src bitgen.Source, p Params) float64 {
	return distuv.StudentsT{Mu: 0, Sigma: 1, Nu: p[0], Src: src}.Rand()
}

// wald draws an inverse Gaussian variate by the transformation-with-rejection
// method of Michael, Schucany and Haas.
func wald(src bitgen.Source, p Params) float64 {
	mean, scale := p[0], p[1]
	mu2l := mean / (2 * scale)
	y := stdNormal(src)
	y = mean * y * y
	x := mean + mu2l*(y-math.Sqrt(4*scale*y+y*y))
	u := src.Float64()
	if u <= mean/(mean+x) {
		return x
	}
	return mean * mean / x
}

func triangular(src bitgen.Source, p Params) float64 {
	left, mode, right := p[0], p[1], p[2]
	base := right - left
	leftBase := mode - left
	ratio := leftBase / base
	leftProd := leftBase * base
	rightProd := (right - mode) * base

	u := src.Float64()
	if u <= ratio {
		return left + math.Sqrt(u*leftProd)
	}
	return right - math.Sqrt((1-u)*rightProd)
}
