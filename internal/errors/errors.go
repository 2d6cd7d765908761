// Package errors wraps github.com/pkg/errors with the stack-trace helpers
// the rest of this module uses, plus a Fatal error class for conditions
// that a caller should never retry (bad configuration, not a transient
// failure).
package errors

import (
	"errors"
	"fmt"

	pkgerrors "github.com/pkg/errors"
)

// New, Errorf, Wrap, Wrapf, WithStack and Cause re-export github.com/pkg/errors
// so that every package in this module imports exactly one errors package.
func New(s string) error { return pkgerrors.New(s) }

func Errorf(format string, args ...interface{}) error { return pkgerrors.Errorf(format, args...) }

func Wrap(err error, message string) error { return pkgerrors.Wrap(err, message) }

func Wrapf(err error, format string, args ...interface{}) error {
	return pkgerrors.Wrapf(err, format, args...)
}

func WithStack(err error) error { return pkgerrors.WithStack(err) }

func Cause(err error) error { return pkgerrors.Cause(err) }

// As and Is defer to the standard library so callers can match the typed
// errors declared in the s3sig package (*ConfigError, *ParamError, ...)
// without importing both errors packages.
func As(err error, target interface{}) bool { return errors.As(err, target) }

func Is(err, target error) bool { return errors.Is(err, target) }

// fatalError marks an error that signing can never recover from given the
// same inputs; retrying without changing the inputs is pointless.
type fatalError struct {
	s string
}

func (e *fatalError) Error() string { return e.s }

// Fatal creates an error that IsFatal reports true for.
func Fatal(s string) error {
	return &fatalError{s}
}

// Fatalf creates a Fatal error with a formatted message.
func Fatalf(format string, args ...interface{}) error {
	return &fatalError{fmt.Sprintf(format, args...)}
}

// IsFatal returns whether err was created by Fatal or Fatalf.
func IsFatal(err error) bool {
	_, ok := err.(*fatalError)
	return ok
}
