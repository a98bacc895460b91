package kernel

import (
	"fmt"
	"math"
)

// poissonLamMax keeps the normal approximation of the Poisson tail inside
// int64: int64 max minus ten standard deviations.
var poissonLamMax = float64(math.MaxInt64) - math.Sqrt(float64(math.MaxInt64))*10

func nonNegative(idx ...int) func(Params, []string) error {
	return func(p Params, names []string) error {
		for _, i := range idx {
			if math.IsNaN(p[i]) || p[i] < 0 {
				return fmt.Errorf("%s < 0 or is NaN", names[i])
			}
		}
		return nil
	}
}

func positive(idx ...int) func(Params, []string) error {
	return func(p Params, names []string) error {
		for _, i := range idx {
			if math.IsNaN(p[i]) || p[i] <= 0 {
				return fmt.Errorf("%s <= 0 or is NaN", names[i])
			}
		}
		return nil
	}
}

func probability(idx ...int) func(Params, []string) error {
	return func(p Params, names []string) error {
		for _, i := range idx {
			if math.IsNaN(p[i]) || p[i] <= 0 || p[i] > 1 {
				return fmt.Errorf("%s <= 0, %s > 1 or %s is NaN", names[i], names[i], names[i])
			}
		}
		return nil
	}
}

func finiteRange(p Params, _ []string) error {
	if math.IsInf(p[1]-p[0], 0) || math.IsNaN(p[1]-p[0]) {
		return fmt.Errorf("range exceeds valid bounds")
	}
	return nil
}

func zipfParam(p Params, _ []string) error {
	if math.IsNaN(p[0]) || p[0] <= 1 {
		return fmt.Errorf("a <= 1 or is NaN")
	}
	return nil
}

func triangularParams(p Params, _ []string) error {
	left, mode, right := p[0], p[1], p[2]
	switch {
	case math.IsNaN(left) || math.IsNaN(mode) || math.IsNaN(right):
		return fmt.Errorf("parameters contain NaN")
	case left > mode:
		return fmt.Errorf("left > mode")
	case mode > right:
		return fmt.Errorf("mode > right")
	case left == right:
		return fmt.Errorf("left == right")
	}
	return nil
}

func poissonLam(p Params, _ []string) error {
	lam := p[0]
	if math.IsNaN(lam) || lam < 0 {
		return fmt.Errorf("lam < 0 or is NaN")
	}
	if lam >= poissonLamMax {
		return fmt.Errorf("lam value too large")
	}
	return nil
}

func negativeBinomialParams(p Params, names []string) error {
	if math.IsNaN(p[0]) || p[0] <= 0 {
		return fmt.Errorf("n <= 0 or is NaN")
	}
	return probability(1)(p, names)
}
