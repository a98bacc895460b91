package kernel

import (
	"math"

	"github.com/nozzle/nprand/bitgen"
	"gonum.org/v1/gonum/stat/distuv"
)

// geometricSearchCutoff is the success probability above which a linear
// search over the CDF beats inversion.
const geometricSearchCutoff = 0.333333333333333333333333

// int64Limit is 2^63 as a float64, the smallest float that does not convert
// to an int64.  math.MaxInt64 rounds up to this value.
const int64Limit = 9.223372036854776e18

func geometric(src bitgen.Source, p Params) int64 {
	prob := p[0]
	if prob >= geometricSearchCutoff {
		x := int64(1)
		sum, prod := prob, prob
		q := 1 - prob
		u := src.Float64()
		for u > sum {
			prod *= q
			sum += prod
			x++
		}
		return x
	}
	return geometricInversion(stdExponential(src), prob)
}

// geometricInversion maps a standard exponential variate to a trial count,
// saturating at math.MaxInt64 for tiny success probabilities.
func geometricInversion(e, prob float64) int64 {
	z := math.Ceil(-e / math.Log1p(-prob))
	if z >= int64Limit {
		return math.MaxInt64
	}
	return int64(z)
}

// positiveInt64 reports whether the integral float x converts to a positive
// int64 without overflow.
func positiveInt64(x float64) bool {
	return x >= 1 && x < int64Limit
}

// zipf uses the rejection algorithm of Devroye, "Non-Uniform Random Variate
// Generation", p. 551.
func zipf(src bitgen.Source, p Params) int64 {
	am1 := p[0] - 1
	b := math.Pow(2, am1)
	for {
		u := 1 - src.Float64()
		v := src.Float64()
		x := math.Floor(math.Pow(u, -1/am1))
		// Values outside int64 are rejected rather than clipped, which keeps
		// the accepted draws exactly distributed.
		if !positiveInt64(x) {
			continue
		}
		t := math.Pow(1+1/x, am1)
		if v*x*(t-1)/(b-1) <= t/b {
			return int64(x)
		}
	}
}

func poissonDraw(src bitgen.Source, lam float64) int64 {
	if lam == 0 {
		return 0
	}
	return int64(distuv.Poisson{Lambda: lam, Src: src}.Rand())
}

func poisson(src bitgen.Source, p Params) int64 {
	return poissonDraw(src, p[0])
}

// negativeBinomial draws a gamma-mixed Poisson variate.
func negativeBinomial(src bitgen.Source, p Params) int64 {
	n, prob := p[0], p[1]
	y := stdGamma(src, n) * (1 - prob) / prob
	return poissonDraw(src, y)
}
