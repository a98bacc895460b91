// Package randerr defines the error kinds returned by every nprand package.
//
// All validation in nprand happens before the first bit generator draw, so a
// returned error always means the generator state was left untouched.
package randerr

import "fmt"

// ErrorKind identifies a kind of error.  It has full support for errors.Is
// and errors.As, so the caller can directly check against an error kind when
// determining the reason for an error.
type ErrorKind string

// These constants are used to identify a specific Error.
const (
	// ErrInvalidShape indicates a size argument that is not absent, a
	// non-negative integer, or a sequence of non-negative integers.
	ErrInvalidShape = ErrorKind("ErrInvalidShape")

	// ErrUnsupportedDType indicates an output width the requested family
	// does not implement.
	ErrUnsupportedDType = ErrorKind("ErrUnsupportedDType")

	// ErrInvalidRange indicates an empty or inverted integer range, bounds
	// outside the representable range of the output width, or an unknown
	// method selector.
	ErrInvalidRange = ErrorKind("ErrInvalidRange")

	// ErrAxisOutOfRange indicates a shuffle or permutation axis outside
	// [0, rank).
	ErrAxisOutOfRange = ErrorKind("ErrAxisOutOfRange")

	// ErrInvalidParameter indicates a distribution parameter outside its
	// domain, such as a negative scale or a probability above one.
	ErrInvalidParameter = ErrorKind("ErrInvalidParameter")
)

// Error satisfies the error interface and prints human-readable errors.
func (e ErrorKind) Error() string {
	return string(e)
}

// Error identifies an nprand error.  It has full support for errors.Is and
// errors.As, so the caller can ascertain the specific reason for the error by
// checking the underlying error.
type Error struct {
	Err         error
	Description string
}

// Error satisfies the error interface and prints human-readable errors.
func (e Error) Error() string {
	return e.Description
}

// Unwrap returns the underlying wrapped error.
func (e Error) Unwrap() error {
	return e.Err
}

// New creates an Error given a set of arguments.
func New(kind ErrorKind, desc string) Error {
	return Error{Err: kind, Description: desc}
}

// Newf creates an Error with a formatted description.
func Newf(kind ErrorKind, format string, args ...any) Error {
	return Error{Err: kind, Description: fmt.Sprintf(format, args...)}
}
