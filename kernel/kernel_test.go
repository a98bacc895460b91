package kernel

import (
	"errors"
	"math"
	"testing"

	"github.com/nozzle/nprand/bitgen"
	"github.com/nozzle/nprand/dtype"
	"github.com/nozzle/nprand/internal/bitgentest"
	"github.com/nozzle/nprand/randerr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat"
)

func TestSelect(t *testing.T) {
	tests := []struct {
		family Family
		dt     dtype.DType
		ok     bool
	}{
		{Random, dtype.Float32, true},
		{Random, dtype.Float64, true},
		{Random, dtype.Int64, false},
		{StandardNormal, dtype.Float32, true},
		{StandardGamma, dtype.Float32, true},
		{StandardExponentialInv, dtype.Float32, true},
		{Normal, dtype.Float64, true},
		{Normal, dtype.Float32, false},
		{Beta, dtype.Uint8, false},
		{Poisson, dtype.Int64, true},
		{Poisson, dtype.Float64, false},
		{Family(999), dtype.Float64, false},
	}
	for _, tt := range tests {
		ref, err := Select(tt.family, tt.dt)
		if !tt.ok {
			assert.True(t, errors.Is(err, randerr.ErrUnsupportedDType), "%v %v", tt.family, tt.dt)
			continue
		}
		require.NoError(t, err)
		assert.Equal(t, tt.family, ref.Family())
		assert.Equal(t, tt.dt, ref.DType())
	}
}

func TestRefAccessorsMatchWidth(t *testing.T) {
	ref, err := Select(Random, dtype.Float32)
	require.NoError(t, err)
	assert.NotNil(t, ref.Float32())
	assert.Nil(t, ref.Float64())
	assert.Nil(t, ref.Int64())

	ref, err = Select(Geometric, dtype.Int64)
	require.NoError(t, err)
	assert.Nil(t, ref.Float64())
	assert.NotNil(t, ref.Int64())
}

func TestRegistryIsComplete(t *testing.T) {
	for f := Random; f <= NegativeBinomial; f++ {
		require.NotEqual(t, "unknown", f.String(), "family %d missing", f)
		assert.NotEmpty(t, DTypes(f), f.String())

		got, ok := Lookup(f.String())
		assert.True(t, ok)
		assert.Equal(t, f, got)
	}
	assert.Len(t, Names(), len(registry))
	assert.Equal(t, "unknown", Family(0).String())
	assert.Nil(t, DTypes(Family(0)))
	assert.Nil(t, ParamNames(Family(0)))
}

func TestRegistryAccessorsReturnCopies(t *testing.T) {
	assert.Equal(t, []dtype.DType{dtype.Float32, dtype.Float64}, DTypes(StandardNormal))
	assert.Equal(t, []dtype.DType{dtype.Int64}, DTypes(Poisson))

	names := ParamNames(Triangular)
	assert.Equal(t, []string{"left", "mode", "right"}, names)
	names[0] = "changed"
	assert.Equal(t, "left", ParamNames(Triangular)[0])
	assert.Empty(t, ParamNames(Random))
}

func TestValidate(t *testing.T) {
	tests := []struct {
		family Family
		params Params
		ok     bool
	}{
		{Random, nil, true},
		{Random, Params{1}, false},
		{Normal, Params{0, 1}, true},
		{Normal, Params{0, 0}, true},
		{Normal, Params{0, -1}, false},
		{Normal, Params{0, math.NaN()}, false},
		{Normal, Params{0}, false},
		{StandardGamma, Params{0}, true},
		{StandardGamma, Params{-0.5}, false},
		{Uniform, Params{-math.MaxFloat64, math.MaxFloat64}, false},
		{Uniform, Params{5, 1}, true},
		{Beta, Params{0.5, 0}, false},
		{Geometric, Params{1}, true},
		{Geometric, Params{0}, false},
		{Geometric, Params{1.5}, false},
		{Zipf, Params{1}, false},
		{Zipf, Params{2}, true},
		{Triangular, Params{0, 0.5, 1}, true},
		{Triangular, Params{0, 2, 1}, false},
		{Triangular, Params{1, 1, 1}, false},
		{Poisson, Params{0}, true},
		{Poisson, Params{1e19}, false},
		{NegativeBinomial, Params{5, 0.5}, true},
		{NegativeBinomial, Params{0, 0.5}, false},
		{NegativeBinomial, Params{5, 0}, false},
		{Wald, Params{1, 0}, false},
		{Weibull, Params{0}, true},
	}
	for _, tt := range tests {
		dts := DTypes(tt.family)
		ref, err := Select(tt.family, dts[len(dts)-1])
		require.NoError(t, err)
		err = ref.Validate(tt.params)
		if tt.ok {
			assert.NoError(t, err, "%v %v", tt.family, tt.params)
		} else {
			assert.True(t, errors.Is(err, randerr.ErrInvalidParameter), "%v %v: %v", tt.family, tt.params, err)
		}
	}

	assert.True(t, errors.Is(Ref{}.Validate(nil), randerr.ErrUnsupportedDType))
}

func TestValidateDoesNotDraw(t *testing.T) {
	src := &bitgentest.Script{}
	ref, err := Select(Normal, dtype.Float64)
	require.NoError(t, err)
	assert.Error(t, ref.Validate(Params{0, -1}))
	assert.Zero(t, src.Remaining())
}

func TestRandomUsesOneUniform(t *testing.T) {
	src := &bitgentest.Script{F32: []float32{0.25}, F64: []float64{0.75}}
	assert.Equal(t, float32(0.25), random32(src, nil))
	assert.Equal(t, 0.75, random64(src, nil))
	assert.Zero(t, src.Remaining())
}

func TestExactTransforms(t *testing.T) {
	src := &bitgentest.Script{F64: []float64{0.5, 0.25, 0.5, 0.5}}

	assert.Equal(t, 2+(10-2)*0.5, uniform(src, Params{2, 10}))
	assert.InDelta(t, -math.Log1p(-0.25), standardExponentialInv64(src, nil), 1e-15)
	// logistic at u = 1/2 is the location
	assert.Equal(t, 3.0, logistic(src, Params{3, 2}))
	// triangular with u equal to the mode ratio lands on the mode
	assert.InDelta(t, 0.5, triangular(src, Params{0, 0.5, 1}), 1e-12)
	assert.Zero(t, src.Remaining())
}

func TestLogisticRejectsZero(t *testing.T) {
	src := &bitgentest.Script{F64: []float64{0, 0, 0.5}}
	assert.Equal(t, 0.0, logistic(src, Params{0, 1}))
	assert.Zero(t, src.Remaining())
}

func TestGeometricSearch(t *testing.T) {
	// p = 0.5: CDF is 0.5, 0.75, 0.875...
	src := &bitgentest.Script{F64: []float64{0.4, 0.6, 0.8}}
	assert.Equal(t, int64(1), geometric(src, Params{0.5}))
	assert.Equal(t, int64(2), geometric(src, Params{0.5}))
	assert.Equal(t, int64(3), geometric(src, Params{0.5}))
}

func TestGeometricTinyProbability(t *testing.T) {
	src := bitgen.NewPCG64DXSM(11)
	for range 10000 {
		require.GreaterOrEqual(t, geometric(src, Params{1e-19}), int64(1))
	}

	// 1/p is past 2^63, so the trial count saturates instead of wrapping.
	assert.Equal(t, int64(math.MaxInt64), geometricInversion(1, 1e-19))
	assert.Equal(t, int64(math.MaxInt64), geometricInversion(math.MaxFloat64, 0.2))
	assert.Equal(t, int64(10), geometricInversion(1, 0.1))
}

func TestZipfRejectsOverflow(t *testing.T) {
	assert.False(t, positiveInt64(int64Limit))
	assert.False(t, positiveInt64(float64(math.MaxInt64)))
	assert.False(t, positiveInt64(math.Inf(1)))
	assert.False(t, positiveInt64(0))
	assert.True(t, positiveInt64(1))
	assert.True(t, positiveInt64(math.Nextafter(int64Limit, 0)))
}

func TestBetaSmallShapes(t *testing.T) {
	src := bitgen.NewPCG64DXSM(9)
	for _, p := range []Params{{1e-3, 1e-3}, {1e-3, 0.5}, {1, 1}} {
		for range 10000 {
			v := beta(src, p)
			require.False(t, math.IsNaN(v), "beta%v", p)
			require.GreaterOrEqual(t, v, 0.0)
			require.LessOrEqual(t, v, 1.0)
		}
	}

	// Both powers underflow; the ratio comes out of log space as
	// 0.1^1000 / (0.1^1000 + 0.2^1000) ~ 2^-1000.
	script := &bitgentest.Script{F64: []float64{0.1, 0.2}}
	assert.InEpsilon(t, math.Pow(0.5, 1000), beta(script, Params{1e-3, 1e-3}), 1e-9)
	assert.Zero(t, script.Remaining())
}

func TestDegenerateParameters(t *testing.T) {
	src := &bitgentest.Script{}
	assert.Equal(t, 0.0, standardGamma64(src, Params{0}))
	assert.Equal(t, float32(0), standardGamma32(src, Params{0}))
	assert.Equal(t, 0.0, weibull(src, Params{0}))
	assert.Equal(t, 1.5, laplace(src, Params{1.5, 0}))
	assert.Equal(t, int64(0), poisson(src, Params{0}))
	assert.Zero(t, src.Remaining())
}

// moments draws n samples of a float64 kernel and returns mean and variance.
func moments(src bitgen.Source, fn Func[float64], p Params, n int) (mean, variance float64) {
	xs := make([]float64, n)
	for i := range xs {
		xs[i] = fn(src, p)
	}
	return stat.MeanVariance(xs, nil)
}

func TestMoments(t *testing.T) {
	const n = 200000
	tests := []struct {
		name     string
		fn       Func[float64]
		params   Params
		mean     float64
		variance float64
	}{
		{"standard_normal", standardNormal64, nil, 0, 1},
		{"standard_exponential", standardExponential64, nil, 1, 1},
		{"standard_exponential_inv", standardExponentialInv64, nil, 1, 1},
		{"standard_gamma", standardGamma64, Params{3}, 3, 3},
		{"standard_gamma small", standardGamma64, Params{0.5}, 0.5, 0.5},
		{"normal", normal, Params{5, 2}, 5, 4},
		{"uniform", uniform, Params{-1, 3}, 1, 16.0 / 12},
		{"exponential", exponential, Params{2}, 2, 4},
		{"gamma", gamma, Params{2, 3}, 6, 18},
		{"beta", beta, Params{2, 5}, 2.0 / 7, 10.0 / (49 * 8)},
		{"chisquare", chiSquare, Params{4}, 4, 8},
		{"laplace", laplace, Params{1, 2}, 1, 8},
		{"logistic", logistic, Params{1, 2}, 1, 4 * math.Pi * math.Pi / 3},
		{"rayleigh", rayleigh, Params{2}, 2 * math.Sqrt(math.Pi/2), (4 - math.Pi) / 2 * 4},
		{"wald", wald, Params{2, 4}, 2, 2},
		{"triangular", triangular, Params{0, 1, 4}, 5.0 / 3, (16 + 1 - 4) / 18.0},
		{"power", power, Params{2}, 2.0 / 3, 2.0 / (9 * 4)},
		{"pareto", pareto, Params{10}, 1.0 / 9, 10.0 / (81 * 8)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := bitgen.NewPCG64DXSM(2024)
			mean, variance := moments(src, tt.fn, tt.params, n)
			se := math.Sqrt(tt.variance / n)
			assert.InDelta(t, tt.mean, mean, 6*se, "mean")
			assert.InEpsilon(t, tt.variance, variance, 0.05, "variance")
		})
	}
}

func TestFloat32Moments(t *testing.T) {
	const n = 200000
	tests := []struct {
		name   string
		fn     Func[float32]
		params Params
		mean   float64
	}{
		{"random", random32, nil, 0.5},
		{"standard_normal", standardNormal32, nil, 0},
		{"standard_exponential", standardExponential32, nil, 1},
		{"standard_exponential_inv", standardExponentialInv32, nil, 1},
		{"standard_gamma large", standardGamma32, Params{4}, 4},
		{"standard_gamma small", standardGamma32, Params{0.3}, 0.3},
		{"standard_gamma one", standardGamma32, Params{1}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := bitgen.NewMT19937(7)
			xs := make([]float64, n)
			for i := range xs {
				xs[i] = float64(tt.fn(src, tt.params))
			}
			mean, variance := stat.MeanVariance(xs, nil)
			se := math.Sqrt(variance / n)
			assert.InDelta(t, tt.mean, mean, 6*se+1e-6)
		})
	}
}

func TestDiscreteMoments(t *testing.T) {
	const n = 100000
	tests := []struct {
		name   string
		fn     Func[int64]
		params Params
		mean   float64
	}{
		{"geometric search", geometric, Params{0.5}, 2},
		{"geometric inversion", geometric, Params{0.1}, 10},
		{"poisson", poisson, Params{4}, 4},
		{"negative_binomial", negativeBinomial, Params{5, 0.5}, 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := bitgen.NewPCG64DXSM(11)
			xs := make([]float64, n)
			for i := range xs {
				v := tt.fn(src, tt.params)
				require.GreaterOrEqual(t, v, int64(0))
				xs[i] = float64(v)
			}
			mean, variance := stat.MeanVariance(xs, nil)
			se := math.Sqrt(variance / n)
			assert.InDelta(t, tt.mean, mean, 6*se)
		})
	}
}

func TestZipfSupport(t *testing.T) {
	src := bitgen.NewPCG64DXSM(5)
	ones := 0
	for range 10000 {
		v := zipf(src, Params{2})
		require.GreaterOrEqual(t, v, int64(1))
		if v == 1 {
			ones++
		}
	}
	// P(X = 1) = 1/zeta(2) = 6/pi^2 ~ 0.608
	assert.InDelta(t, 6/(math.Pi*math.Pi), float64(ones)/10000, 0.03)
}

func TestHeavyTailedFamiliesAreFinite(t *testing.T) {
	src := bitgen.NewPCG64DXSM(3)
	for range 1000 {
		for _, v := range []float64{
			standardCauchy(src, nil),
			f(src, Params{5, 10}),
			standardT(src, Params{3}),
			logNormal(src, Params{0, 1}),
			weibull(src, Params{1.5}),
		} {
			require.False(t, math.IsNaN(v))
		}
	}
	assert.Greater(t, logNormal(src, Params{0, 1}), 0.0)
}
