// Package errors is the single import for error handling: stdlib matching plus
// pkg/errors wrapping, so every wrap records where it happened.
package errors

import (
	stderrors "errors"
	"fmt"

	pkgerrors "github.com/pkg/errors"
)

// New returns an error that formats as the given text.
func New(text string) error {
	return stderrors.New(text)
}

// Is reports whether any error in err's tree matches target.
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// As finds the first error in err's tree that matches target.
func As(err error, target any) bool {
	return stderrors.As(err, target)
}

// Join returns an error that wraps the given errors.
func Join(errs ...error) error {
	return stderrors.Join(errs...)
}

// Wrap annotates err with a stack trace and message. A nil err stays nil.
func Wrap(err error, message string) error {
	return pkgerrors.Wrap(err, message)
}

// Wrapf is Wrap with a format specifier.
func Wrapf(err error, format string, args ...any) error {
	return pkgerrors.Wrapf(err, format, args...)
}

// WithStack annotates err with a stack trace at the point WithStack was called.
func WithStack(err error) error {
	return pkgerrors.WithStack(err)
}

// Errorf formats a new error carrying a stack trace.
func Errorf(format string, args ...any) error {
	return pkgerrors.Errorf(format, args...)
}

type stackTracer interface {
	StackTrace() pkgerrors.StackTrace
}

// Stack returns the deepest stack trace recorded in err's chain, one frame per line,
// or "" when nothing in the chain carries one.
func Stack(err error) string {
	var deepest pkgerrors.StackTrace
	for err != nil {
		if st, ok := err.(stackTracer); ok {
			deepest = st.StackTrace()
		}
		err = stderrors.Unwrap(err)
	}
	if deepest == nil {
		return ""
	}

	return fmt.Sprintf("%+v", deepest)
}
