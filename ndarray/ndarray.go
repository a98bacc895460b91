// Package ndarray provides the dense, row-major N-dimensional arrays that
// sampling calls fill and that shuffles permute.
package ndarray

import (
	"fmt"

	"github.com/nozzle/nprand/dtype"
	"github.com/nozzle/nprand/randerr"
)

// Interface is the element-type erased view of an Array used by the
// dispatch layer and by shuffles.
type Interface interface {
	// DType returns the element type.
	DType() dtype.DType
	// Shape returns a copy of the dimensions.
	Shape() []int
	// Ndim returns the rank.
	Ndim() int
	// Len returns the number of elements.
	Len() int
	// Flat returns the element at row-major position i.
	Flat(i int) any
	// Copy returns a deep copy.
	Copy() Interface
	// Swapper returns a function exchanging the rank-(Ndim-1) slices at two
	// indices along axis.  Every call of the returned function reuses one
	// scratch buffer sized to a single slice.
	Swapper(axis int) (func(i, j int), error)
}

// Array is a dense row-major array: the last dimension varies fastest.
type Array[T dtype.Element] struct {
	shape []int
	data  []T
}

// New allocates a zeroed array of the given shape.  New() is a zero-rank
// array holding exactly one element.
func New[T dtype.Element](dims ...int) *Array[T] {
	n := 1
	for _, d := range dims {
		if d < 0 {
			panic(fmt.Sprintf("ndarray: negative dimension %d", d))
		}
		n *= d
	}
	s := make([]int, len(dims))
	copy(s, dims)
	return &Array[T]{shape: s, data: make([]T, n)}
}

// FromSlice wraps data, without copying, as an array of the given shape.
func FromSlice[T dtype.Element](data []T, dims ...int) (*Array[T], error) {
	n := 1
	for _, d := range dims {
		if d < 0 {
			return nil, randerr.Newf(randerr.ErrInvalidShape,
				"negative dimensions are not allowed: %v", dims)
		}
		n *= d
	}
	if n != len(data) {
		return nil, randerr.Newf(randerr.ErrInvalidShape,
			"cannot reshape %d elements into shape %v", len(data), dims)
	}
	s := make([]int, len(dims))
	copy(s, dims)
	return &Array[T]{shape: s, data: data}, nil
}

// Vector wraps data as a one dimensional array.
func Vector[T dtype.Element](data []T) *Array[T] {
	return &Array[T]{shape: []int{len(data)}, data: data}
}

// Arange returns the one dimensional array 0, 1, ..., n-1.
func Arange(n int) *Array[int64] {
	a := New[int64](n)
	for i := range a.data {
		a.data[i] = int64(i)
	}
	return a
}

// DType returns the element type.
func (a *Array[T]) DType() dtype.DType {
	return dtype.Of[T]()
}

// Shape returns a copy of the dimensions.
func (a *Array[T]) Shape() []int {
	s := make([]int, len(a.shape))
	copy(s, a.shape)
	return s
}

// Ndim returns the rank.
func (a *Array[T]) Ndim() int {
	return len(a.shape)
}

// Len returns the number of elements.
func (a *Array[T]) Len() int {
	return len(a.data)
}

// Data returns the backing slice in row-major order.
func (a *Array[T]) Data() []T {
	return a.data
}

// Flat returns the element at row-major position i.
func (a *Array[T]) Flat(i int) any {
	return a.data[i]
}

// Strides returns the element stride of every dimension.
func (a *Array[T]) Strides() []int {
	strides := make([]int, len(a.shape))
	step := 1
	for i := len(a.shape) - 1; i >= 0; i-- {
		strides[i] = step
		step *= a.shape[i]
	}
	return strides
}

// offset converts a coordinate into a row-major position.
func (a *Array[T]) offset(idx []int) int {
	if len(idx) != len(a.shape) {
		panic(fmt.Sprintf("ndarray: %d indices for array of rank %d", len(idx), len(a.shape)))
	}
	off := 0
	for i, x := range idx {
		if x < 0 || x >= a.shape[i] {
			panic(fmt.Sprintf("ndarray: index %d out of range for axis %d with size %d", x, i, a.shape[i]))
		}
		off = off*a.shape[i] + x
	}
	return off
}

// At returns the element at the given coordinate.
func (a *Array[T]) At(idx ...int) T {
	return a.data[a.offset(idx)]
}

// Set stores v at the given coordinate.
func (a *Array[T]) Set(v T, idx ...int) {
	a.data[a.offset(idx)] = v
}

// Clone returns a deep copy with the concrete element type.
func (a *Array[T]) Clone() *Array[T] {
	c := &Array[T]{
		shape: make([]int, len(a.shape)),
		data:  make([]T, len(a.data)),
	}
	copy(c.shape, a.shape)
	copy(c.data, a.data)
	return c
}

// Copy returns a deep copy.
func (a *Array[T]) Copy() Interface {
	return a.Clone()
}

// Swapper returns a function exchanging the slices at two indices along
// axis.  All other axes are left in place: for every combination of leading
// indices, the contiguous run of trailing elements at i trades places with
// the run at j.
func (a *Array[T]) Swapper(axis int) (func(i, j int), error) {
	if axis < 0 || axis >= len(a.shape) {
		return nil, randerr.Newf(randerr.ErrAxisOutOfRange,
			"axis %d is out of bounds for array of dimension %d", axis, len(a.shape))
	}
	outer := 1
	for _, d := range a.shape[:axis] {
		outer *= d
	}
	inner := 1
	for _, d := range a.shape[axis+1:] {
		inner *= d
	}
	n := a.shape[axis]
	block := n * inner
	scratch := make([]T, outer*inner)

	return func(i, j int) {
		// slice j -> scratch
		for o := 0; o < outer; o++ {
			base := o * block
			copy(scratch[o*inner:(o+1)*inner], a.data[base+j*inner:base+(j+1)*inner])
		}
		// slice i -> slot j
		for o := 0; o < outer; o++ {
			base := o * block
			copy(a.data[base+j*inner:base+(j+1)*inner], a.data[base+i*inner:base+(i+1)*inner])
		}
		// scratch -> slot i
		for o := 0; o < outer; o++ {
			base := o * block
			copy(a.data[base+i*inner:base+(i+1)*inner], scratch[o*inner:(o+1)*inner])
		}
	}, nil
}

// String renders small arrays for debugging.
func (a *Array[T]) String() string {
	return fmt.Sprintf("Array%v%v", a.shape, a.data)
}
