package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for broad classification.
var (
	ErrAlreadyExists   = errors.New("already exists")
	ErrNotFound        = errors.New("not found")
	ErrConfiguration   = errors.New("configuration error")
	ErrInvalidArgument = errors.New("invalid argument")
)

// ErrorKind is a coarse-grained categorization for errors.
type ErrorKind string

const (
	KindAlreadyExists   ErrorKind = "already_exists"
	KindNotFound        ErrorKind = "not_found"
	KindConfiguration   ErrorKind = "configuration"
	KindInvalidArgument ErrorKind = "invalid_argument"
	KindExecution       ErrorKind = "execution"
)

// Error is a user-facing failure. Msg is what the command line prints.
type Error struct {
	Kind  ErrorKind
	Msg   string
	Cause error
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Msg != "" {
		return e.Msg
	}
	if e.Cause != nil {
		return e.Cause.Error()
	}
	return string(e.Kind)
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

// AlreadyExists reports that a generator target is already on disk.
func AlreadyExists(format string, args ...any) *Error {
	return &Error{Kind: KindAlreadyExists, Msg: fmt.Sprintf(format, args...), Cause: ErrAlreadyExists}
}

// NotFound reports that a unit lookup matched nothing.
func NotFound(format string, args ...any) *Error {
	return &Error{Kind: KindNotFound, Msg: fmt.Sprintf(format, args...), Cause: ErrNotFound}
}

// OpError wraps an underlying error with operation context and a kind.
type OpError struct {
	Op   string
	Kind ErrorKind
	Path string // Optional: relevant file path
	Err  error
}

func (e *OpError) Error() string {
	if e == nil {
		return "<nil>"
	}

	base := fmt.Sprintf("%s: %s", e.Op, e.Kind)
	if e.Path != "" {
		base += fmt.Sprintf(" (path=%s)", e.Path)
	}
	if e.Err != nil {
		base += fmt.Sprintf(": %v", e.Err)
	}
	return base
}

func (e *OpError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// IsKind helps callers classify errors without depending on infra packages.
// The outermost classified error wins.
func IsKind(err error, kind ErrorKind) bool {
	for err != nil {
		switch e := err.(type) {
		case *Error:
			return e.Kind == kind
		case *OpError:
			return e.Kind == kind
		}
		err = errors.Unwrap(err)
	}
	return false
}
