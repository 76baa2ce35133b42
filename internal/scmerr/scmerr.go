// Package scmerr defines the four error categories surfaced across a turn:
// SyntaxError, NameError, RuntimeError, and the catch-all Unknown.
package scmerr

import (
	"fmt"

	"github.com/pkg/errors"
)

// Category is one of the four error kinds the shell distinguishes.
type Category string

const (
	Syntax  Category = "SyntaxError"
	Name    Category = "NameError"
	Runtime Category = "RuntimeError"
	Unknown Category = "Unknown"
)

// Error is a category-tagged failure raised during parsing or evaluation.
// It formats as "<Category>: <message>" so a shell can split on ": " or
// just print it verbatim as a category-prefixed line.
type Error struct {
	Category Category
	Message  string
	cause    error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Category, e.Message)
}

// Cause lets errors.Cause (github.com/pkg/errors) unwrap to whatever the
// builtin that raised this error wrapped, so tests can assert on the root
// failure instead of the category wrapper.
func (e *Error) Cause() error { return e.cause }

// Unwrap supports the standard library's errors.Is/errors.As as well.
func (e *Error) Unwrap() error { return e.cause }

func newf(cat Category, format string, args ...any) *Error {
	return &Error{Category: cat, Message: fmt.Sprintf(format, args...)}
}

// Syntaxf builds a SyntaxError: malformed input (unbalanced parens, stray
// dot, bad token, empty top-level expression).
func Syntaxf(format string, args ...any) *Error { return newf(Syntax, format, args...) }

// Namef builds a NameError: set! on an unbound name, or lookup of one.
func Namef(format string, args ...any) *Error { return newf(Name, format, args...) }

// Runtimef builds a RuntimeError: type mismatches, wrong arity, index out of
// range, division by zero, and the no-argument forms of -, /, max, min, abs.
func Runtimef(format string, args ...any) *Error { return newf(Runtime, format, args...) }

// Wrap attaches cat to cause, preserving cause for errors.Cause/errors.As.
// Used when a builtin's own failure is really a lower-level cause (e.g. a
// RuntimeError produced while evaluating an argument) that should still be
// inspectable by callers and tests.
func Wrap(cat Category, cause error, format string, args ...any) *Error {
	return &Error{Category: cat, Message: fmt.Sprintf(format, args...), cause: errors.WithStack(cause)}
}

// FromRecover turns a recovered panic value into an Unknown error. This is
// the only place the interpreter recovers: every foreseen failure is raised
// as one of the three named categories above instead.
func FromRecover(r any) *Error {
	if err, ok := r.(error); ok {
		return &Error{Category: Unknown, Message: err.Error(), cause: err}
	}
	return newf(Unknown, "%v", r)
}

// Is reports whether err (or something it wraps) belongs to cat.
func Is(err error, cat Category) bool {
	var se *Error
	if errors.As(err, &se) {
		return se.Category == cat
	}
	return false
}
