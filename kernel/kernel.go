// Package kernel holds the table of sampling kernels, one per distribution
// family and output width, and the selector that resolves a request against
// it.
//
// The table is built once at package initialization and never mutated.
// Selecting a kernel performs no draws; all parameter checks happen in
// Ref.Validate before the caller starts filling an output.
package kernel

import (
	"slices"
	"sort"

	"github.com/nozzle/nprand/bitgen"
	"github.com/nozzle/nprand/dtype"
	"github.com/nozzle/nprand/randerr"
)

// Params are the numeric parameters of one distribution call, in the order
// listed by ParamNames.
type Params []float64

// Func draws one sample from src.
type Func[T float32 | float64 | int64] func(src bitgen.Source, p Params) T

// Family identifies a distribution.
type Family int

const (
	Random Family = iota + 1
	StandardExponential
	StandardExponentialInv
	StandardNormal
	StandardGamma
	Normal
	Uniform
	Exponential
	Gamma
	Beta
	F
	ChiSquare
	StandardCauchy
	Pareto
	Weibull
	Power
	Laplace
	Logistic
	LogNormal
	Rayleigh
	StandardT
	Wald
	Geometric
	Zipf
	Triangular
	Poisson
	NegativeBinomial
)

// entry describes one family: its name, its parameters and the kernel for
// every width it supports.
type entry struct {
	Name   string
	Params []string

	Float32 Func[float32]
	Float64 Func[float64]
	Int64   Func[int64]

	// Check validates parameter domains; nil when any values are accepted.
	Check func(p Params, names []string) error
}

func (s *entry) dtypes() []dtype.DType {
	var out []dtype.DType
	if s.Float32 != nil {
		out = append(out, dtype.Float32)
	}
	if s.Float64 != nil {
		out = append(out, dtype.Float64)
	}
	if s.Int64 != nil {
		out = append(out, dtype.Int64)
	}
	return out
}

// registry maps families to their kernels.  It is read-only after package
// initialization; callers see it through Select, DTypes and ParamNames.
var registry = map[Family]*entry{
	Random: {
		Name:    "random",
		Float32: random32,
		Float64: random64,
	},
	StandardExponential: {
		Name:    "standard_exponential",
		Float32: standardExponential32,
		Float64: standardExponential64,
	},
	StandardExponentialInv: {
		Name:    "standard_exponential_inv",
		Float32: standardExponentialInv32,
		Float64: standardExponentialInv64,
	},
	StandardNormal: {
		Name:    "standard_normal",
		Float32: standardNormal32,
		Float64: standardNormal64,
	},
	StandardGamma: {
		Name:    "standard_gamma",
		Params:  []string{"shape"},
		Float32: standardGamma32,
		Float64: standardGamma64,
		Check:   nonNegative(0),
	},
	Normal: {
		Name:    "normal",
		Params:  []string{"loc", "scale"},
		Float64: normal,
		Check:   nonNegative(1),
	},
	Uniform: {
		Name:    "uniform",
		Params:  []string{"low", "high"},
		Float64: uniform,
		Check:   finiteRange,
	},
	Exponential: {
		Name:    "exponential",
		Params:  []string{"scale"},
		Float64: exponential,
		Check:   nonNegative(0),
	},
	Gamma: {
		Name:    "gamma",
		Params:  []string{"shape", "scale"},
		Float64: gamma,
		Check:   nonNegative(0, 1),
	},
	Beta: {
		Name:    "beta",
		Params:  []string{"a", "b"},
		Float64: beta,
		Check:   positive(0, 1),
	},
	F: {
		Name:    "f",
		Params:  []string{"dfnum", "dfden"},
		Float64: f,
		Check:   positive(0, 1),
	},
	ChiSquare: {
		Name:    "chisquare",
		Params:  []string{"df"},
		Float64: chiSquare,
		Check:   positive(0),
	},
	StandardCauchy: {
		Name:    "standard_cauchy",
		Float64: standardCauchy,
	},
	Pareto: {
		Name:    "pareto",
		Params:  []string{"a"},
		Float64: pareto,
		Check:   positive(0),
	},
	Weibull: {
		Name:    "weibull",
		Params:  []string{"a"},
		Float64: weibull,
		Check:   nonNegative(0),
	},
	Power: {
		Name:    "power",
		Params:  []string{"a"},
		Float64: power,
		Check:   positive(0),
	},
	Laplace: {
		Name:    "laplace",
		Params:  []string{"loc", "scale"},
		Float64: laplace,
		Check:   nonNegative(1),
	},
	Logistic: {
		Name:    "logistic",
		Params:  []string{"loc", "scale"},
		Float64: logistic,
		Check:   nonNegative(1),
	},
	LogNormal: {
		Name:    "lognormal",
		Params:  []string{"mean", "sigma"},
		Float64: logNormal,
		Check:   nonNegative(1),
	},
	Rayleigh: {
		Name:    "rayleigh",
		Params:  []string{"scale"},
		Float64: rayleigh,
		Check:   nonNegative(0),
	},
	StandardT: {
		Name:    "standard_t",
		Params:  []string{"df"},
		Float64: standardT,
		Check:   positive(0),
	},
	Wald: {
		Name:    "wald",
		Params:  []string{"mean", "scale"},
		Float64: wald,
		Check:   positive(0, 1),
	},
	Geometric: {
		Name:   "geometric",
		Params: []string{"p"},
		Int64:  geometric,
		Check:  probability(0),
	},
	Zipf: {
		Name:   "zipf",
		Params: []string{"a"},
		Int64:  zipf,
		Check:  zipfParam,
	},
	Triangular: {
		Name:    "triangular",
		Params:  []string{"left", "mode", "right"},
		Float64: triangular,
		Check:   triangularParams,
	},
	Poisson: {
		Name:   "poisson",
		Params: []string{"lam"},
		Int64:  poisson,
		Check:  poissonLam,
	},
	NegativeBinomial: {
		Name:   "negative_binomial",
		Params: []string{"n", "p"},
		Int64:  negativeBinomial,
		Check:  negativeBinomialParams,
	},
}

// byName is the reverse index of registry.
var byName = func() map[string]Family {
	m := make(map[string]Family, len(registry))
	for f, s := range registry {
		m[s.Name] = f
	}
	return m
}()

// Lookup resolves a family by its NumPy method name.
func Lookup(name string) (Family, bool) {
	f, ok := byName[name]
	return f, ok
}

// Names returns every registered family name in sorted order.
func Names() []string {
	out := make([]string, 0, len(byName))
	for name := range byName {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// String returns the NumPy method name of the family.
func (f Family) String() string {
	if s, ok := registry[f]; ok {
		return s.Name
	}
	return "unknown"
}

// DTypes lists the output widths family supports, nil for an unknown
// family.
func DTypes(family Family) []dtype.DType {
	if s, ok := registry[family]; ok {
		return s.dtypes()
	}
	return nil
}

// ParamNames returns the parameter names of family in call order.
func ParamNames(family Family) []string {
	if s, ok := registry[family]; ok {
		return slices.Clone(s.Params)
	}
	return nil
}

// Ref is a resolved (family, width) kernel.
type Ref struct {
	family Family
	dt     dtype.DType
	e      *entry
}

// Select resolves the kernel for family at width dt.  It is a pure table
// lookup and never draws.
func Select(family Family, dt dtype.DType) (Ref, error) {
	e, ok := registry[family]
	if !ok {
		return Ref{}, randerr.Newf(randerr.ErrUnsupportedDType,
			"no kernels registered for family %d", int(family))
	}
	if dts := e.dtypes(); !slices.Contains(dts, dt) {
		return Ref{}, randerr.Newf(randerr.ErrUnsupportedDType,
			"%s does not support dtype %s, expected one of %v", e.Name, dt, dts)
	}
	return Ref{family: family, dt: dt, e: e}, nil
}

// Family returns the resolved family.
func (r Ref) Family() Family { return r.family }

// DType returns the resolved output width.
func (r Ref) DType() dtype.DType { return r.dt }

// Float32 returns the kernel when the width is float32, nil otherwise.
func (r Ref) Float32() Func[float32] {
	if r.dt != dtype.Float32 {
		return nil
	}
	return r.e.Float32
}

// Float64 returns the kernel when the width is float64, nil otherwise.
func (r Ref) Float64() Func[float64] {
	if r.dt != dtype.Float64 {
		return nil
	}
	return r.e.Float64
}

// Int64 returns the kernel when the width is int64, nil otherwise.
func (r Ref) Int64() Func[int64] {
	if r.dt != dtype.Int64 {
		return nil
	}
	return r.e.Int64
}

// Validate checks parameter count and domain.
func (r Ref) Validate(p Params) error {
	if r.e == nil {
		return randerr.New(randerr.ErrUnsupportedDType, "kernel reference is not resolved")
	}
	if len(p) != len(r.e.Params) {
		return randerr.Newf(randerr.ErrInvalidParameter,
			"%s takes %d parameters %v, got %d", r.e.Name, len(r.e.Params), r.e.Params, len(p))
	}
	if r.e.Check == nil {
		return nil
	}
	if err := r.e.Check(p, r.e.Params); err != nil {
		return randerr.Newf(randerr.ErrInvalidParameter, "%s: %v", r.e.Name, err)
	}
	return nil
}
