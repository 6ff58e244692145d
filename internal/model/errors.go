package model

import (
	"errors"
	"fmt"
	"time"

	goerrors "github.com/go-errors/errors"
)

// HTTPError wraps an HTTP status code so retry logic can inspect it.
type HTTPError struct {
	StatusCode int
	RetryAfter time.Duration // from Retry-After header, zero if absent
	Err        error
}

func (e *HTTPError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("HTTP %d: %v", e.StatusCode, e.Err)
	}
	return fmt.Sprintf("HTTP %d", e.StatusCode)
}

func (e *HTTPError) Unwrap() error {
	return e.Err
}

// ErrorKind classifies failures the CLI reports differently.
type ErrorKind string

const (
	KindUsage       ErrorKind = "usage"
	KindNotFound    ErrorKind = "not_found"
	KindInvalid     ErrorKind = "invalid"
	KindUnavailable ErrorKind = "unavailable"
)

// Error is a classified failure carrying the stack where it was raised.
type Error struct {
	Kind    ErrorKind
	Message string
	Err     error
	Stack   []byte
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// StackTrace returns the goroutine stack captured when the error was built.
func (e *Error) StackTrace() []byte {
	return e.Stack
}

// NewError builds a classified error. The stack is taken from err when it
// already carries one.
func NewError(kind ErrorKind, message string, err error) *Error {
	var stack []byte
	if err != nil {
		var ge *goerrors.Error
		if errors.As(err, &ge) {
			stack = ge.Stack()
		} else {
			stack = goerrors.Wrap(err, 2).Stack()
		}
	} else {
		stack = goerrors.New(message).Stack()
	}
	return &Error{Kind: kind, Message: message, Err: err, Stack: stack}
}

// UsageError reports a missing or malformed command-line argument.
func UsageError(format string, args ...any) *Error {
	return NewError(KindUsage, fmt.Sprintf(format, args...), nil)
}

func NotFoundError(message string, err error) *Error {
	return NewError(KindNotFound, message, err)
}

func InvalidError(message string, err error) *Error {
	return NewError(KindInvalid, message, err)
}

func UnavailableError(message string, err error) *Error {
	return NewError(KindUnavailable, message, err)
}

// IsKind reports whether any error in err's chain is a classified error of kind.
func IsKind(err error, kind ErrorKind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}
