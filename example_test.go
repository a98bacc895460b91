package nprand_test

import (
	"fmt"
	"slices"

	"github.com/nozzle/nprand"
	"github.com/nozzle/nprand/dtype"
	"github.com/nozzle/nprand/kernel"
	"github.com/nozzle/nprand/shape"
)

func ExampleGenerator_StandardNormal() {
	g := nprand.Default(42)
	x, err := g.StandardNormal(shape.Of(3, 4), dtype.Float32)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(x.Shape(), x.DType())
	// Output: [3 4] float32
}

func ExampleGenerator_Integers() {
	g := nprand.Default(42)
	_, err := g.Integers(5, 5, shape.Scalar(), dtype.Int64, false)
	fmt.Println(err)

	x, _ := g.Integers(5, 5, shape.Scalar(), dtype.Int64, true)
	fmt.Println(x.Scalar())
	// Output:
	// low >= high (5 >= 5)
	// 5
}

func ExampleGenerator_Draw() {
	g := nprand.NewMT19937(42)
	family, _ := kernel.Lookup("gamma")
	x, err := g.Draw(family, shape.Of(2), dtype.Float64, 2, 0.5)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(x.Shape(), x.DType())

	_, err = g.Draw(family, shape.Of(2), dtype.Float64, -2, 0.5)
	fmt.Println(err)
	// Output:
	// [2] float64
	// gamma: shape < 0 or is NaN
}

func ExampleGenerator_PermutationN() {
	g := nprand.Default(1)
	p, _ := g.PermutationN(5)
	sorted := slices.Clone(p.Data())
	slices.Sort(sorted)
	fmt.Println(sorted)
	// Output: [0 1 2 3 4]
}
