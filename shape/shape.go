// Package shape resolves the size argument of sampling calls.
//
// A Size is either Scalar, meaning one bare value is returned, or an array
// shape.  The empty shape Of() is a zero-rank array holding one element and
// is distinct from Scalar.
package shape

import (
	"math"
	"math/bits"
	"reflect"
	"strconv"
	"strings"

	"github.com/nozzle/nprand/randerr"
)

// Size is the resolved shape of a sampling request.
type Size struct {
	dims  []int
	array bool
}

// Scalar returns the Size requesting a single bare value.
func Scalar() Size {
	return Size{}
}

// Of returns an array Size with the given dimensions.  It does not validate
// them; see Validate.
func Of(dims ...int) Size {
	d := make([]int, len(dims))
	copy(d, dims)
	return Size{dims: d, array: true}
}

// IsScalar reports whether s requests a bare value.
func (s Size) IsScalar() bool {
	return !s.array
}

// Dims returns a copy of the array dimensions, nil for Scalar.
func (s Size) Dims() []int {
	if !s.array {
		return nil
	}
	d := make([]int, len(s.dims))
	copy(d, s.dims)
	return d
}

// Ndim returns the array rank, 0 for Scalar and for the zero-rank array.
func (s Size) Ndim() int {
	return len(s.dims)
}

// Len returns the number of elements: 1 for Scalar and zero-rank arrays,
// otherwise the product of the dimensions.
func (s Size) Len() int {
	n := 1
	for _, d := range s.dims {
		n *= d
	}
	return n
}

// Validate checks that every dimension is non-negative and that the total
// element count fits in an int.
func (s Size) Validate() error {
	n := uint64(1)
	for i, d := range s.dims {
		if d < 0 {
			return randerr.Newf(randerr.ErrInvalidShape,
				"negative dimensions are not allowed: dim %d is %d", i, d)
		}
		hi, lo := bits.Mul64(n, uint64(d))
		if hi != 0 || lo > math.MaxInt {
			return randerr.Newf(randerr.ErrInvalidShape,
				"array of shape %v is too big", s.dims)
		}
		n = lo
	}
	return nil
}

// String renders s like a tuple: "()", "(5,)", "(3, 4)", or "None".
func (s Size) String() string {
	if !s.array {
		return "None"
	}
	if len(s.dims) == 1 {
		return "(" + strconv.Itoa(s.dims[0]) + ",)"
	}
	parts := make([]string, len(s.dims))
	for i, d := range s.dims {
		parts[i] = strconv.Itoa(d)
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

// Resolve normalizes a dynamically typed size argument.  nil resolves to
// Scalar, a Go integer n to Of(n), and a slice or array of Go integers to an
// array of those dimensions.  A Size is returned as is after validation.
// Anything else, and any negative value, fails with ErrInvalidShape.
func Resolve(v any) (Size, error) {
	switch t := v.(type) {
	case nil:
		return Scalar(), nil
	case Size:
		return t, t.Validate()
	case []int:
		s := Of(t...)
		return s, s.Validate()
	}

	rv := reflect.ValueOf(v)
	if n, ok := intValue(rv); ok {
		s := Of(n)
		return s, s.Validate()
	}
	if rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array {
		dims := make([]int, rv.Len())
		for i := range dims {
			n, ok := intValue(rv.Index(i))
			if !ok {
				return Size{}, randerr.Newf(randerr.ErrInvalidShape,
					"size element %d is not an integer: %v", i, rv.Index(i))
			}
			dims[i] = n
		}
		s := Of(dims...)
		return s, s.Validate()
	}
	return Size{}, randerr.Newf(randerr.ErrInvalidShape,
		"size must be an integer, a tuple of integers or None, got %T", v)
}

// intValue extracts an int from any integer kind, rejecting negatives and
// values that do not fit.
func intValue(rv reflect.Value) (int, bool) {
	if rv.Kind() == reflect.Interface && !rv.IsNil() {
		rv = rv.Elem()
	}
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n := rv.Int()
		if n < math.MinInt || n > math.MaxInt {
			return -1, true
		}
		return int(n), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		n := rv.Uint()
		if n > math.MaxInt {
			return -1, true
		}
		return int(n), true
	}
	return 0, false
}

// Parse reads a size from text.  The empty string and "None" mean Scalar,
// "()" the zero-rank array, and "5", "3,4", "(3, 4)" or "3x4" array shapes.
func Parse(s string) (Size, error) {
	s = strings.TrimSpace(s)
	if s == "" || s == "None" {
		return Scalar(), nil
	}
	inner := s
	if strings.HasPrefix(inner, "(") || strings.HasPrefix(inner, "[") {
		if len(inner) < 2 || !strings.ContainsAny(inner[len(inner)-1:], ")]") {
			return Size{}, randerr.Newf(randerr.ErrInvalidShape, "unbalanced size %q", s)
		}
		inner = inner[1 : len(inner)-1]
	}
	inner = strings.TrimSpace(inner)
	if inner == "" {
		return Of(), nil
	}

	fields := strings.FieldsFunc(inner, func(r rune) bool {
		return r == ',' || r == 'x'
	})
	dims := make([]int, 0, len(fields))
	for _, f := range fields {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		n, err := strconv.Atoi(f)
		if err != nil {
			return Size{}, randerr.Newf(randerr.ErrInvalidShape,
				"size element %q is not an integer", f)
		}
		dims = append(dims, n)
	}
	if len(dims) == 0 {
		return Size{}, randerr.Newf(randerr.ErrInvalidShape, "invalid size %q", s)
	}
	out := Of(dims...)
	return out, out.Validate()
}
