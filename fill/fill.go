// Package fill turns a per-element sampler into a scalar or an N-dimensional
// array according to a requested size.
//
// Elements are produced in row-major order, last axis fastest.  That order
// is part of the reproducibility contract: the same seed and size always
// yield the same array.
package fill

import (
	"fmt"

	"github.com/nozzle/nprand/bitgen"
	"github.com/nozzle/nprand/dtype"
	"github.com/nozzle/nprand/kernel"
	"github.com/nozzle/nprand/ndarray"
	"github.com/nozzle/nprand/shape"
)

// Sample is the result of one sampling call: either a single value or an
// array, tagged with its element type.
type Sample struct {
	dt     dtype.DType
	scalar any
	array  ndarray.Interface
}

// DType returns the element type.
func (s Sample) DType() dtype.DType { return s.dt }

// IsScalar reports whether the call was made without a size.
func (s Sample) IsScalar() bool { return s.array == nil }

// Scalar returns the single value of a scalar sample, nil otherwise.
func (s Sample) Scalar() any { return s.scalar }

// Array returns the array of an array sample, nil otherwise.
func (s Sample) Array() ndarray.Interface { return s.array }

// Shape returns the dimensions of an array sample; scalar samples report
// nil.
func (s Sample) Shape() []int {
	if s.array == nil {
		return nil
	}
	return s.array.Shape()
}

// String renders the value or array.
func (s Sample) String() string {
	if s.array == nil {
		return fmt.Sprint(s.scalar)
	}
	return fmt.Sprint(s.array)
}

// Value returns the scalar value of s as a T.  ok is false when s is an
// array or holds another element type.
func Value[T dtype.Element](s Sample) (v T, ok bool) {
	v, ok = s.scalar.(T)
	return v, ok
}

// ArrayOf returns the typed array of s.  ok is false when s is a scalar or
// holds another element type.
func ArrayOf[T dtype.Element](s Sample) (*ndarray.Array[T], bool) {
	a, ok := s.array.(*ndarray.Array[T])
	return a, ok
}

// Scalar wraps v as a scalar sample.
func Scalar[T dtype.Element](v T) Sample {
	return Sample{dt: dtype.Of[T](), scalar: v}
}

// Wrap wraps an existing array as a sample.
func Wrap[T dtype.Element](a *ndarray.Array[T]) Sample {
	return Sample{dt: dtype.Of[T](), array: a}
}

// Run calls next once for a scalar size, or once per element of a newly
// allocated array in row-major order.  size must already be validated.
func Run[T dtype.Element](src bitgen.Source, size shape.Size, next func(bitgen.Source) T) Sample {
	if size.IsScalar() {
		return Scalar(next(src))
	}
	a := ndarray.New[T](size.Dims()...)
	data := a.Data()
	for i := range data {
		data[i] = next(src)
	}
	return Wrap(a)
}

// Distribution fills size from a resolved kernel.  Parameters must already
// have passed ref.Validate.
func Distribution(src bitgen.Source, size shape.Size, ref kernel.Ref, p kernel.Params) Sample {
	switch ref.DType() {
	case dtype.Float32:
		fn := ref.Float32()
		return Run(src, size, func(src bitgen.Source) float32 { return fn(src, p) })
	case dtype.Float64:
		fn := ref.Float64()
		return Run(src, size, func(src bitgen.Source) float64 { return fn(src, p) })
	case dtype.Int64:
		fn := ref.Int64()
		return Run(src, size, func(src bitgen.Source) int64 { return fn(src, p) })
	}
	panic(fmt.Sprintf("fill: kernel reference with unsupported dtype %s", ref.DType()))
}
