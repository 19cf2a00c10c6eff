package augment

import (
	"github.com/pkg/errors"
)

// ConfigError reports a malformed constructor argument: wrong type,
// out-of-range probability or scale, mismatched range specification.
// It is thrown (as a panic) eagerly at construction time, never at apply
// time, so a malformed pipeline fails before consuming any batch.
type ConfigError struct {
	err error
}

func (e ConfigError) Error() string { return e.err.Error() }

// Unwrap returns the underlying error, with its stack trace.
func (e ConfigError) Unwrap() error { return e.err }

// ThrowConfigf throws a ConfigError with a formatted message.
func ThrowConfigf(format string, args ...any) {
	panic(ConfigError{err: errors.Errorf(format, args...)})
}

// InputError reports an invalid input batch: nil, non-positive dimensions or
// a pixel buffer whose length disagrees with the declared geometry. It is
// thrown by the shared base validation before any child augmenter executes.
type InputError struct {
	err error
}

func (e InputError) Error() string { return e.err.Error() }

// Unwrap returns the underlying error, with its stack trace.
func (e InputError) Unwrap() error { return e.err }

// ThrowInputf throws an InputError with a formatted message.
func ThrowInputf(format string, args ...any) {
	panic(InputError{err: errors.Errorf(format, args...)})
}

// AssertionError reports a violated user-supplied predicate or shape check.
// Axis identifies the failed batch axis for shape assertions, or is -1 for
// predicate assertions.
type AssertionError struct {
	Axis int
	err  error
}

func (e AssertionError) Error() string { return e.err.Error() }

// Unwrap returns the underlying error, with its stack trace.
func (e AssertionError) Unwrap() error { return e.err }

// ThrowAssertionf throws an AssertionError for the given axis (-1 if the
// assertion is not about a specific axis) with a formatted message.
func ThrowAssertionf(axis int, format string, args ...any) {
	panic(AssertionError{Axis: axis, err: errors.Errorf(format, args...)})
}
