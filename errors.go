package vc

import (
	"errors"
	"fmt"

	"github.com/gogpu/vc/internal/cpu"
)

var (
	// ErrReleased is wrapped by the panic raised when an object is used
	// after Destroy, including a second Destroy.
	ErrReleased = errors.New("vc: object used after Destroy")

	// ErrDimensionMismatch is wrapped by the panic raised when a context
	// renders into a pixmap of a different size.
	ErrDimensionMismatch = cpu.ErrDimensionMismatch

	// ErrDataLength is returned when pixel data does not hold exactly
	// width*height*4 bytes.
	ErrDataLength = errors.New("vc: pixel data length does not match dimensions")

	// ErrNilArgument is wrapped by the panic raised when a required object
	// argument is nil.
	ErrNilArgument = errors.New("vc: nil argument")
)

// violation panics with err wrapped in a formatted message. Contract
// violations are programmer errors: they are never returned.
func violation(err error, format string, args ...any) {
	panic(fmt.Errorf("%w: "+format, append([]any{err}, args...)...))
}

// checkNil panics with ErrNilArgument if v is nil.
func checkNil[T any](v *T, what string) {
	if v == nil {
		violation(ErrNilArgument, "%s", what)
	}
}
