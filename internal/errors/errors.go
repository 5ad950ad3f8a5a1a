// Package errors is the single import for error handling across dealfinder.
// Sentinels and matching come from the standard library, annotation and
// stack capture from pkg/errors.
package errors

import (
	stderrors "errors"
	"fmt"

	pkgerrors "github.com/pkg/errors"
)

func New(text string) error {
	return stderrors.New(text)
}

func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

func As(err error, target any) bool {
	return stderrors.As(err, target)
}

// AsType returns the first error in err's chain of type T.
func AsType[T error](err error) (T, bool) {
	var target T
	ok := stderrors.As(err, &target)

	return target, ok
}

// Wrap annotates err with message and the caller's stack. A nil err stays nil.
func Wrap(err error, message string) error {
	return pkgerrors.Wrap(err, message)
}

func Wrapf(err error, format string, args ...any) error {
	return pkgerrors.Wrapf(err, format, args...)
}

func WithStack(err error) error {
	return pkgerrors.WithStack(err)
}

func Errorf(format string, args ...any) error {
	return pkgerrors.Errorf(format, args...)
}

type stackTracer interface {
	StackTrace() pkgerrors.StackTrace
}

// Origin names the frame where err was first annotated, as "func (file:line)".
// It is empty when nothing in the chain carries a stack.
func Origin(err error) string {
	var (
		frame pkgerrors.Frame
		found bool
	)
	for e := err; e != nil; e = stderrors.Unwrap(e) {
		if st, ok := e.(stackTracer); ok && len(st.StackTrace()) > 0 {
			frame, found = st.StackTrace()[0], true
		}
	}
	if !found {
		return ""
	}

	return fmt.Sprintf("%n (%s:%d)", frame, frame, frame)
}
