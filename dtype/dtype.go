// Package dtype describes the output element types nprand can produce.
//
// The integer limits are spelled out per width rather than derived from
// host integer introspection, so the accepted range of every bounded
// sampling request is fixed and platform independent.
package dtype

import (
	"math"
	"strings"

	"github.com/nozzle/nprand/randerr"
)

// DType identifies the numeric category and width of an output element.
type DType int

const (
	// Invalid is the zero value and is never accepted by a kernel.
	Invalid DType = iota
	Bool
	Int8
	Uint8
	Int16
	Uint16
	Int32
	Uint32
	Int64
	Uint64
	Float32
	Float64
)

// Element is the set of Go types an output array can hold.
type Element interface {
	bool | int8 | uint8 | int16 | uint16 | int32 | uint32 | int64 | uint64 | float32 | float64
}

var names = map[DType]string{
	Bool:    "bool",
	Int8:    "int8",
	Uint8:   "uint8",
	Int16:   "int16",
	Uint16:  "uint16",
	Int32:   "int32",
	Uint32:  "uint32",
	Int64:   "int64",
	Uint64:  "uint64",
	Float32: "float32",
	Float64: "float64",
}

// aliases maps accepted spellings, including NumPy's, to a DType.
var aliases = map[string]DType{
	"bool":    Bool,
	"bool_":   Bool,
	"int8":    Int8,
	"uint8":   Uint8,
	"int16":   Int16,
	"uint16":  Uint16,
	"int32":   Int32,
	"uint32":  Uint32,
	"int64":   Int64,
	"int":     Int64,
	"uint64":  Uint64,
	"float32": Float32,
	"single":  Float32,
	"float64": Float64,
	"float":   Float64,
	"double":  Float64,
}

// String returns the canonical name of the type.
func (d DType) String() string {
	if s, ok := names[d]; ok {
		return s
	}
	return "invalid"
}

// Parse resolves a type name such as "float32" or "np.uint8".
func Parse(s string) (DType, error) {
	key := strings.TrimPrefix(strings.ToLower(strings.TrimSpace(s)), "np.")
	if d, ok := aliases[key]; ok {
		return d, nil
	}
	return Invalid, randerr.Newf(randerr.ErrUnsupportedDType, "unknown dtype %q", s)
}

// IsFloat reports whether d is one of the floating point widths.
func (d DType) IsFloat() bool {
	return d == Float32 || d == Float64
}

// IsInteger reports whether d is bool or one of the integer widths.
func (d DType) IsInteger() bool {
	return d >= Bool && d <= Uint64
}

// Info holds the representable range of an integer width.
type Info struct {
	Bits   int
	Signed bool
	Min    int64
	Max    uint64
}

var intInfo = map[DType]Info{
	Bool:   {Bits: 1, Min: 0, Max: 1},
	Int8:   {Bits: 8, Signed: true, Min: math.MinInt8, Max: math.MaxInt8},
	Uint8:  {Bits: 8, Min: 0, Max: math.MaxUint8},
	Int16:  {Bits: 16, Signed: true, Min: math.MinInt16, Max: math.MaxInt16},
	Uint16: {Bits: 16, Min: 0, Max: math.MaxUint16},
	Int32:  {Bits: 32, Signed: true, Min: math.MinInt32, Max: math.MaxInt32},
	Uint32: {Bits: 32, Min: 0, Max: math.MaxUint32},
	Int64:  {Bits: 64, Signed: true, Min: math.MinInt64, Max: math.MaxInt64},
	Uint64: {Bits: 64, Min: 0, Max: math.MaxUint64},
}

// IntInfo returns the representable range of an integer or bool width.
func IntInfo(d DType) (Info, error) {
	info, ok := intInfo[d]
	if !ok {
		return Info{}, randerr.Newf(randerr.ErrUnsupportedDType,
			"dtype %s is not one of bool, int8, uint8, int16, uint16, int32, uint32, int64, uint64", d)
	}
	return info, nil
}

// Of returns the DType corresponding to the Go type T.
func Of[T Element]() DType {
	var zero T
	switch any(zero).(type) {
	case bool:
		return Bool
	case int8:
		return Int8
	case uint8:
		return Uint8
	case int16:
		return Int16
	case uint16:
		return Uint16
	case int32:
		return Int32
	case uint32:
		return Uint32
	case int64:
		return Int64
	case uint64:
		return Uint64
	case float32:
		return Float32
	case float64:
		return Float64
	}
	return Invalid
}
