// Package errors provides comprehensive error handling utilities for goaccord.
//
// This file contains panic recovery utilities that convert panics raised by
// user supplied callbacks (learners, loss functions, models) into structured
// errors carrying the stack trace at the panic site.

package errors

import (
	"fmt"
	"runtime/debug"

	"github.com/cockroachdb/errors"
)

// PanicError represents an error that was created from a recovered panic.
type PanicError struct {
	// PanicValue is the original value passed to panic()
	PanicValue interface{}

	// StackTrace contains the stack trace at the time of panic
	StackTrace string

	// Operation identifies where the panic was recovered
	Operation string
}

// Error implements the error interface for PanicError.
func (e *PanicError) Error() string {
	return fmt.Sprintf("panic in %s: %v", e.Operation, e.PanicValue)
}

// Unwrap returns the panic value when it is itself an error.
func (e *PanicError) Unwrap() error {
	if err, ok := e.PanicValue.(error); ok {
		return err
	}
	return nil
}

// String provides detailed information including stack trace.
func (e *PanicError) String() string {
	return fmt.Sprintf("panic in %s: %v\nStack trace:\n%s",
		e.Operation, e.PanicValue, e.StackTrace)
}

// NewPanicError creates a new PanicError with the given operation context and panic value.
func NewPanicError(operation string, panicValue interface{}) *PanicError {
	return &PanicError{
		PanicValue: panicValue,
		StackTrace: string(debug.Stack()),
		Operation:  operation,
	}
}

// Recover is meant to be deferred with a pointer to the named error result
// of the enclosing function.
//
//	func SomeMethod() (err error) {
//	    defer errors.Recover(&err, "SomeMethod")
//	    ...
//	}
//
// A recovered panic becomes a *PanicError. If the function had already set an
// error, that error is kept as the cause and the panic is added as context.
func Recover(err *error, operation string) {
	r := recover()
	if r == nil {
		return
	}
	panicErr := NewPanicError(operation, r)
	if *err != nil {
		*err = errors.WithSecondaryError(errors.Wrapf(*err, "panic in %s: %v", operation, r), panicErr)
		return
	}
	*err = panicErr
}

// SafeExecute executes fn and converts any panic to a *PanicError.
//
//	err := errors.SafeExecute("fold 3", func() error {
//	    return model.Fit(X, y)
//	})
func SafeExecute(operation string, fn func() error) (err error) {
	defer Recover(&err, operation)
	return fn()
}

// SafeCall is SafeExecute for functions that also return a value. On panic the
// zero value of T is returned.
func SafeCall[T any](operation string, fn func() (T, error)) (result T, err error) {
	defer Recover(&err, operation)
	return fn()
}
