package ndarray

import (
	"github.com/nozzle/nprand/randerr"
	"gonum.org/v1/gonum/mat"
)

// Dense copies a two dimensional float64 array into a gonum matrix.
func Dense(a *Array[float64]) (*mat.Dense, error) {
	if a.Ndim() != 2 {
		return nil, randerr.Newf(randerr.ErrInvalidShape,
			"need a 2-D array for a matrix, got shape %v", a.shape)
	}
	r, c := a.shape[0], a.shape[1]
	if r == 0 || c == 0 {
		return nil, randerr.Newf(randerr.ErrInvalidShape,
			"cannot build a matrix from empty shape %v", a.shape)
	}
	data := make([]float64, len(a.data))
	copy(data, a.data)
	return mat.NewDense(r, c, data), nil
}

// FromDense copies any gonum matrix into a two dimensional array.
func FromDense(m mat.Matrix) *Array[float64] {
	r, c := m.Dims()
	out := New[float64](r, c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			out.data[i*c+j] = m.At(i, j)
		}
	}
	return out
}
