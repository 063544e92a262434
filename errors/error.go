// Package errors personalizes the errors stdlib to prepend the calling function's name to errors for simpler, smaller traces.
// Example error message from this module:
// main.buildReport main.parseGroups expected key=values
package errors

import (
	"errors"
	"fmt"
	"path"
	"runtime"
)

// New creates a new error with the package.func of it's caller prepended.
func New(text string) error {
	return errors.New(prependCaller(text, 3))
}

// Errorf is like fmt.Errorf with the "package.func" of it's caller prepended.
func Errorf(format string, a ...any) error {
	return fmt.Errorf(prependCaller(format, 3), a...)
}

// Wrap wraps an error with the caller's package.func prepended.
// Similar to github.com/pkg/errors.Wrap it also returns nil if err is nil, unlike fmt.Errorf.
func Wrap(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf(prependCaller("%w", 3), err)
}

// Wrapf wraps an error with the caller's package.func prepended.
// Similar to github.com/pkg/errors.Wrap it also returns nil if err is nil, unlike fmt.Errorf.
func Wrapf(err error, format string, a ...any) error {
	if err == nil {
		return nil
	}
	a = append(a, err)
	return fmt.Errorf(prependCaller(format+" %w", 3), a...)
}

func prependCaller(text string, skip int) string {
	var pcs [1]uintptr
	if runtime.Callers(skip, pcs[:]) == 0 {
		return text
	}
	f := runtime.FuncForPC(pcs[0])
	if f == nil {
		return text
	}
	// f.Name() gives back something like github.com/danlock/collections/seqs.MinBy[...].
	// with just the package name and the func name, nested errors look more readable by default.
	// We also avoid the ugly giant stack trace cluttering logs and looking similar to panics.
	_, fName := path.Split(f.Name())
	return fmt.Sprint(fName, " ", text)
}

// Into finds the first error in err's chain that matches target type T, and if so, returns it.
//
// Into is a type-safe alternative to As.
func Into[T error](err error) (val T, ok bool) {
	return val, errors.As(err, &val)
}

// The following simply call the stdlib so users don't need to include both errors packages.

// As calls stdlib errors.As
func As(err error, target any) bool {
	return errors.As(err, target)
}

// Is calls stdlib errors.Is
func Is(err error, target error) bool {
	return errors.Is(err, target)
}

// Join calls stdlib errors.Join
func Join(errs ...error) error {
	return errors.Join(errs...)
}

// Unwrap calls stdlib errors.Unwrap
func Unwrap(err error) error {
	return errors.Unwrap(err)
}
