package pool

import (
	"errors"
	"fmt"
)

// ErrorKind categorizes contract violations detected at the call boundary.
type ErrorKind int

const (
	// InvalidArgument covers inconsistent geometry and wrongly sized buffers.
	InvalidArgument ErrorKind = iota
	// Unsupported covers element type and execution strategy combinations
	// that a device cannot run.
	Unsupported
)

// String returns the kind as a string.
func (k ErrorKind) String() string {
	switch k {
	case InvalidArgument:
		return "InvalidArgument"
	case Unsupported:
		return "Unsupported"
	default:
		return "Unknown"
	}
}

// Error is a precondition violation reported before any kernel is dispatched.
type Error struct {
	Kind    ErrorKind
	Op      string // Operation that rejected the call
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("maxpool2d %s error in %s: %s", e.Kind, e.Op, e.Message)
}

// Is reports whether target is an *Error of the same kind, so that
// errors.Is(err, ErrUnsupported) matches any unsupported-combination error.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return t.Op == "" && t.Message == "" && t.Kind == e.Kind
}

// ErrUnsupported matches every Unsupported error via errors.Is.
var ErrUnsupported error = &Error{Kind: Unsupported}

// ErrInvalidArgument matches every InvalidArgument error via errors.Is.
var ErrInvalidArgument error = &Error{Kind: InvalidArgument}

// NewInvalidArgError creates an invalid argument error.
func NewInvalidArgError(op, format string, args ...any) error {
	return &Error{
		Kind:    InvalidArgument,
		Op:      op,
		Message: fmt.Sprintf(format, args...),
	}
}

// NewUnsupportedError creates an unsupported combination error.
func NewUnsupportedError(op, format string, args ...any) error {
	return &Error{
		Kind:    Unsupported,
		Op:      op,
		Message: fmt.Sprintf(format, args...),
	}
}

// IsInvalidArg checks if an error is an invalid argument error.
func IsInvalidArg(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == InvalidArgument
}

// IsUnsupported checks if an error is an unsupported combination error.
func IsUnsupported(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == Unsupported
}
