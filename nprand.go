// Package nprand implements NumPy Generator-compatible random sampling on
// top of a pluggable bit generator.
//
// Every sampling call accepts a size, which is either shape.Scalar() for a
// single value or shape.Of(dims...) for a dense row-major array, and most
// accept an output dtype.  All arguments are validated before the first draw,
// so a call that returns an error leaves the bit generator untouched.
//
// Basic usage:
//
//	g := nprand.Default(42)
//	x, err := g.StandardNormal(shape.Of(3, 4), dtype.Float64)
//	k, err := g.Integers(0, 10, shape.Scalar(), dtype.Int64, false)
//
// A Generator is not safe for concurrent use.  Give each goroutine its own
// Generator over its own bit generator.
package nprand

import (
	"math"
	"strings"

	"github.com/nozzle/nprand/bitgen"
	"github.com/nozzle/nprand/bounded"
	"github.com/nozzle/nprand/dtype"
	"github.com/nozzle/nprand/fill"
	"github.com/nozzle/nprand/kernel"
	"github.com/nozzle/nprand/ndarray"
	"github.com/nozzle/nprand/randerr"
	"github.com/nozzle/nprand/shape"
	"github.com/nozzle/nprand/shuffle"
)

// Sample is the result of a sampling call: a scalar or an array.
type Sample = fill.Sample

// Bit generator names accepted by Config.
const (
	MT19937   = "mt19937"
	PCG64DXSM = "pcg64dxsm"
)

// Config configures NewFromConfig.
type Config struct {
	// BitGenerator selects the bit generator.
	// Options: "pcg64dxsm", "mt19937"
	// Default: "pcg64dxsm"
	BitGenerator string

	// Seed for the bit generator.  MT19937 takes 32-bit seeds only.
	// Default: 42
	Seed uint64
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		BitGenerator: PCG64DXSM,
		Seed:         42,
	}
}

// Generator exposes every sampling operation over one bit generator.
type Generator struct {
	src bitgen.Source
}

// New wraps an existing bit generator.  The Generator does not own src; any
// other user of src shares its stream.
func New(src bitgen.Source) *Generator {
	return &Generator{src: src}
}

// NewMT19937 returns a Generator over an MT19937 seeded the way NumPy's
// RandomState(seed) is.
func NewMT19937(seed uint32) *Generator {
	return New(bitgen.NewMT19937(seed))
}

// NewPCG64DXSM returns a Generator over a PCG64DXSM seeded from seed.
func NewPCG64DXSM(seed uint64) *Generator {
	return New(bitgen.NewPCG64DXSM(seed))
}

// Default returns the recommended Generator, currently PCG64DXSM.
func Default(seed uint64) *Generator {
	return NewPCG64DXSM(seed)
}

// NewFromConfig builds a Generator from cfg.
func NewFromConfig(cfg Config) (*Generator, error) {
	switch strings.ToLower(cfg.BitGenerator) {
	case "", PCG64DXSM:
		return NewPCG64DXSM(cfg.Seed), nil
	case MT19937:
		if cfg.Seed > math.MaxUint32 {
			return nil, randerr.Newf(randerr.ErrInvalidParameter,
				"mt19937 seed must be between 0 and 2**32 - 1, got %d", cfg.Seed)
		}
		return NewMT19937(uint32(cfg.Seed)), nil
	}
	return nil, randerr.Newf(randerr.ErrInvalidParameter,
		"unknown bit generator %q, expected %q or %q", cfg.BitGenerator, PCG64DXSM, MT19937)
}

// BitGenerator returns the underlying bit generator.
func (g *Generator) BitGenerator() bitgen.Source {
	return g.src
}

// Draw samples family at width dt.  params are the family's parameters in
// the order kernel.ParamNames lists them.
func (g *Generator) Draw(family kernel.Family, size shape.Size, dt dtype.DType, params ...float64) (Sample, error) {
	if err := size.Validate(); err != nil {
		log.Debugf("Rejected %s: %v", family, err)
		return Sample{}, err
	}
	ref, err := kernel.Select(family, dt)
	if err != nil {
		log.Debugf("Rejected %s: %v", family, err)
		return Sample{}, err
	}
	p := kernel.Params(params)
	if err := ref.Validate(p); err != nil {
		log.Debugf("Rejected %s: %v", family, err)
		return Sample{}, err
	}

	log.Tracef("Drawing %s%v size %s dtype %s", family, params, size, dt)
	return fill.Distribution(g.src, size, ref, p), nil
}

// Integers draws integers from [low, high), or [low, high] when endpoint is
// true, at width dt.
func (g *Generator) Integers(low, high int64, size shape.Size, dt dtype.DType, endpoint bool) (Sample, error) {
	return g.IntegersBound(bounded.Int(low), bounded.Int(high), size, dt, endpoint)
}

// IntegersBound is Integers for bounds outside int64, such as uint64
// ranges above 2**63.
func (g *Generator) IntegersBound(low, high bounded.Bound, size shape.Size, dt dtype.DType, endpoint bool) (Sample, error) {
	if err := size.Validate(); err != nil {
		log.Debugf("Rejected integers: %v", err)
		return Sample{}, err
	}
	r, err := bounded.Normalize(low, high, endpoint, dt)
	if err != nil {
		log.Debugf("Rejected integers: %v", err)
		return Sample{}, err
	}

	log.Tracef("Drawing integers [%s, %s] endpoint %v size %s dtype %s",
		low, high, endpoint, size, dt)
	return bounded.Fill(g.src, r, size), nil
}

// Shuffle permutes x in place along axis.
func (g *Generator) Shuffle(x ndarray.Interface, axis int) error {
	if err := shuffle.Shuffle(g.src, x, axis); err != nil {
		log.Debugf("Rejected shuffle: %v", err)
		return err
	}
	return nil
}

// Permutation returns a copy of x shuffled along axis.
func (g *Generator) Permutation(x ndarray.Interface, axis int) (ndarray.Interface, error) {
	p, err := shuffle.Permutation(g.src, x, axis)
	if err != nil {
		log.Debugf("Rejected permutation: %v", err)
	}
	return p, err
}

// PermutationN returns a random ordering of 0, 1, ..., n-1.
func (g *Generator) PermutationN(n int) (*ndarray.Array[int64], error) {
	p, err := shuffle.PermutationN(g.src, n)
	if err != nil {
		log.Debugf("Rejected permutation: %v", err)
	}
	return p, err
}
