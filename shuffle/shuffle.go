// Package shuffle permutes arrays along one axis with the Fisher-Yates
// algorithm.
//
// Indices are visited from n-1 down to 1 and each swap partner is drawn
// with bounded.Interval, so the draw sequence matches NumPy's
// Generator.shuffle for the same bit generator state.
package shuffle

import (
	"github.com/nozzle/nprand/bitgen"
	"github.com/nozzle/nprand/bounded"
	"github.com/nozzle/nprand/ndarray"
	"github.com/nozzle/nprand/randerr"
)

// Shuffle permutes x in place along axis.  Only the order of the slices
// along axis changes; each slice keeps its contents.  An invalid axis is
// reported before any draw.
func Shuffle(src bitgen.Source, x ndarray.Interface, axis int) error {
	swap, err := x.Swapper(axis)
	if err != nil {
		return err
	}
	n := x.Shape()[axis]
	for i := n - 1; i > 0; i-- {
		j := int(bounded.Interval(src, uint64(i)))
		if i == j {
			continue
		}
		swap(i, j)
	}
	return nil
}

// Permutation returns a shuffled copy of x, leaving x untouched.
func Permutation(src bitgen.Source, x ndarray.Interface, axis int) (ndarray.Interface, error) {
	if axis < 0 || axis >= x.Ndim() {
		return nil, randerr.Newf(randerr.ErrAxisOutOfRange,
			"axis %d is out of bounds for array of dimension %d", axis, x.Ndim())
	}
	c := x.Copy()
	if err := Shuffle(src, c, axis); err != nil {
		return nil, err
	}
	return c, nil
}

// PermutationN returns a random ordering of 0, 1, ..., n-1.
func PermutationN(src bitgen.Source, n int) (*ndarray.Array[int64], error) {
	if n < 0 {
		return nil, randerr.Newf(randerr.ErrInvalidShape,
			"negative dimensions are not allowed: %d", n)
	}
	a := ndarray.Arange(n)
	if err := Shuffle(src, a, 0); err != nil {
		return nil, err
	}
	return a, nil
}
