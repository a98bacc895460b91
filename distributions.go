package nprand

import (
	"github.com/nozzle/nprand/dtype"
	"github.com/nozzle/nprand/kernel"
	"github.com/nozzle/nprand/randerr"
	"github.com/nozzle/nprand/shape"
)

// Random draws floats from [0, 1).
func (g *Generator) Random(size shape.Size, dt dtype.DType) (Sample, error) {
	return g.Draw(kernel.Random, size, dt)
}

// StandardNormal draws from the normal distribution with mean 0 and
// standard deviation 1.
func (g *Generator) StandardNormal(size shape.Size, dt dtype.DType) (Sample, error) {
	return g.Draw(kernel.StandardNormal, size, dt)
}

// StandardExponential draws from the exponential distribution with scale 1.
// method is "zig" for the ziggurat sampler or "inv" for inversion.
func (g *Generator) StandardExponential(size shape.Size, dt dtype.DType, method string) (Sample, error) {
	var family kernel.Family
	switch method {
	case "zig", "":
		family = kernel.StandardExponential
	case "inv":
		family = kernel.StandardExponentialInv
	default:
		err := randerr.Newf(randerr.ErrInvalidRange,
			"method must be either 'inv' or 'zig', got %q", method)
		log.Debugf("Rejected standard_exponential: %v", err)
		return Sample{}, err
	}
	return g.Draw(family, size, dt)
}

// StandardGamma draws from the gamma distribution with unit scale.
func (g *Generator) StandardGamma(shapeParam float64, size shape.Size, dt dtype.DType) (Sample, error) {
	return g.Draw(kernel.StandardGamma, size, dt, shapeParam)
}

// Normal draws from the normal distribution with mean loc and standard
// deviation scale.
func (g *Generator) Normal(loc, scale float64, size shape.Size) (Sample, error) {
	return g.Draw(kernel.Normal, size, dtype.Float64, loc, scale)
}

// Uniform draws from [low, high).
func (g *Generator) Uniform(low, high float64, size shape.Size) (Sample, error) {
	return g.Draw(kernel.Uniform, size, dtype.Float64, low, high)
}

// Exponential draws from the exponential distribution with the given scale.
func (g *Generator) Exponential(scale float64, size shape.Size) (Sample, error) {
	return g.Draw(kernel.Exponential, size, dtype.Float64, scale)
}

// Gamma draws from the gamma distribution with shape and scale.
func (g *Generator) Gamma(shapeParam, scale float64, size shape.Size) (Sample, error) {
	return g.Draw(kernel.Gamma, size, dtype.Float64, shapeParam, scale)
}

// Beta draws from the beta distribution on [0, 1].
func (g *Generator) Beta(a, b float64, size shape.Size) (Sample, error) {
	return g.Draw(kernel.Beta, size, dtype.Float64, a, b)
}

// F draws from the F distribution with dfnum and dfden degrees of freedom.
func (g *Generator) F(dfnum, dfden float64, size shape.Size) (Sample, error) {
	return g.Draw(kernel.F, size, dtype.Float64, dfnum, dfden)
}

// ChiSquare draws from the chi-square distribution with df degrees of
// freedom.
func (g *Generator) ChiSquare(df float64, size shape.Size) (Sample, error) {
	return g.Draw(kernel.ChiSquare, size, dtype.Float64, df)
}

// StandardCauchy draws from the Cauchy distribution with mode 0.
func (g *Generator) StandardCauchy(size shape.Size) (Sample, error) {
	return g.Draw(kernel.StandardCauchy, size, dtype.Float64)
}

// Pareto draws from the Pareto II (Lomax) distribution, whose support
// starts at zero.  Add one and multiply by the scale for the classical
// Pareto.
func (g *Generator) Pareto(a float64, size shape.Size) (Sample, error) {
	return g.Draw(kernel.Pareto, size, dtype.Float64, a)
}

// Weibull draws from the Weibull distribution with shape a and unit scale.
func (g *Generator) Weibull(a float64, size shape.Size) (Sample, error) {
	return g.Draw(kernel.Weibull, size, dtype.Float64, a)
}

// Power draws from [0, 1] with density a*x^(a-1).
func (g *Generator) Power(a float64, size shape.Size) (Sample, error) {
	return g.Draw(kernel.Power, size, dtype.Float64, a)
}

// Laplace draws from the double exponential distribution.
func (g *Generator) Laplace(loc, scale float64, size shape.Size) (Sample, error) {
	return g.Draw(kernel.Laplace, size, dtype.Float64, loc, scale)
}

// Logistic draws from the logistic distribution.
func (g *Generator) Logistic(loc, scale float64, size shape.Size) (Sample, error) {
	return g.Draw(kernel.Logistic, size, dtype.Float64, loc, scale)
}

// LogNormal draws exp(X) for X normal with the given mean and sigma.
func (g *Generator) LogNormal(mean, sigma float64, size shape.Size) (Sample, error) {
	return g.Draw(kernel.LogNormal, size, dtype.Float64, mean, sigma)
}

// Rayleigh draws from the Rayleigh distribution with the given scale.
func (g *Generator) Rayleigh(scale float64, size shape.Size) (Sample, error) {
	return g.Draw(kernel.Rayleigh, size, dtype.Float64, scale)
}

// StandardT draws from Student's t distribution with df degrees of freedom.
func (g *Generator) StandardT(df float64, size shape.Size) (Sample, error) {
	return g.Draw(kernel.StandardT, size, dtype.Float64, df)
}

// Wald draws from the inverse Gaussian distribution.
func (g *Generator) Wald(mean, scale float64, size shape.Size) (Sample, error) {
	return g.Draw(kernel.Wald, size, dtype.Float64, mean, scale)
}

// Geometric draws the number of trials up to and including the first
// success.
func (g *Generator) Geometric(p float64, size shape.Size) (Sample, error) {
	return g.Draw(kernel.Geometric, size, dtype.Int64, p)
}

// Zipf draws from the Zipf distribution over the positive integers.  a
// must be greater than 1.
func (g *Generator) Zipf(a float64, size shape.Size) (Sample, error) {
	return g.Draw(kernel.Zipf, size, dtype.Int64, a)
}

// Triangular draws from the triangular distribution over [left, right]
// peaking at mode.
func (g *Generator) Triangular(left, mode, right float64, size shape.Size) (Sample, error) {
	return g.Draw(kernel.Triangular, size, dtype.Float64, left, mode, right)
}

// Poisson draws from the Poisson distribution with rate lam.
func (g *Generator) Poisson(lam float64, size shape.Size) (Sample, error) {
	return g.Draw(kernel.Poisson, size, dtype.Int64, lam)
}

// NegativeBinomial draws the number of failures before the n-th success.
func (g *Generator) NegativeBinomial(n, p float64, size shape.Size) (Sample, error) {
	return g.Draw(kernel.NegativeBinomial, size, dtype.Int64, n, p)
}
