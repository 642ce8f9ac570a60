package errors

import (
	"errors"
	"fmt"
	"maps"
)

// Error is the error type returned across the explorer. Code drives the
// HTTP status, the gRPC code and the fetch failure Kind; Message is safe to
// show to a user.
type Error struct {
	Code    Code           `json:"code"`
	Message string         `json:"message"`
	Cause   error          `json:"-"`
	Meta    map[string]any `json:"meta,omitempty"`
}

func (e *Error) Error() string {
	if e.Cause == nil {
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Is matches any *Error carrying the same code, so errors.Is(err,
// errors.NotFound("")) holds for every not found error in a chain.
func (e *Error) Is(target error) bool {
	var other *Error
	return errors.As(target, &other) && other.Code == e.Code
}

// Kind reports how a failed fetch should be presented.
func (e *Error) Kind() Kind {
	return kindForCode(e.Code)
}

// WithMeta attaches a key/value pair for logs and returns the error.
func (e *Error) WithMeta(key string, value any) *Error {
	if e.Meta == nil {
		e.Meta = make(map[string]any, 1)
	}
	e.Meta[key] = value
	return e
}

// New creates an error with the given code.
func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Newf creates an error with the given code and a formatted message.
func Newf(code Code, format string, args ...any) *Error {
	return New(code, fmt.Sprintf(format, args...))
}

// Wrap adds context to err. The code and metadata of an *Error cause are
// carried over; any other cause becomes Internal.
func Wrap(err error, message string) *Error {
	if err == nil {
		return nil
	}
	code := CodeInternal
	if cause, ok := asError(err); ok {
		code = cause.Code
	}
	return wrap(err, code, message)
}

// Wrapf is Wrap with a formatted message.
func Wrapf(err error, format string, args ...any) *Error {
	return Wrap(err, fmt.Sprintf(format, args...))
}

// WrapWithCode adds context to err and reclassifies it under code.
func WrapWithCode(err error, code Code, message string) *Error {
	if err == nil {
		return nil
	}
	return wrap(err, code, message)
}

// WrapWithCodef is WrapWithCode with a formatted message.
func WrapWithCodef(err error, code Code, format string, args ...any) *Error {
	return WrapWithCode(err, code, fmt.Sprintf(format, args...))
}

// wrap copies the cause's metadata so later WithMeta calls on the wrapper
// never write into the cause.
func wrap(err error, code Code, message string) *Error {
	wrapped := &Error{Code: code, Message: message, Cause: err}
	if cause, ok := asError(err); ok && len(cause.Meta) > 0 {
		wrapped.Meta = maps.Clone(cause.Meta)
	}
	return wrapped
}

// NotFound reports a record the catalog does not have.
func NotFound(message string) *Error { return New(CodeNotFound, message) }

// NotFoundf is NotFound with a formatted message.
func NotFoundf(format string, args ...any) *Error { return Newf(CodeNotFound, format, args...) }

// InvalidArgument reports caller input that can never succeed.
func InvalidArgument(message string) *Error { return New(CodeInvalidArgument, message) }

// InvalidArgumentf is InvalidArgument with a formatted message.
func InvalidArgumentf(format string, args ...any) *Error {
	return Newf(CodeInvalidArgument, format, args...)
}

// Internal reports a bug or an unexpected local failure.
func Internal(message string) *Error { return New(CodeInternal, message) }

// Internalf is Internal with a formatted message.
func Internalf(format string, args ...any) *Error { return Newf(CodeInternal, format, args...) }

// Unavailable reports an upstream that could not be reached or answered
// with a failure status.
func Unavailable(message string) *Error { return New(CodeUnavailable, message) }

// Unavailablef is Unavailable with a formatted message.
func Unavailablef(format string, args ...any) *Error {
	return Newf(CodeUnavailable, format, args...)
}

// DataLoss reports an upstream payload that cannot be understood.
func DataLoss(message string) *Error { return New(CodeDataLoss, message) }

// DataLossf is DataLoss with a formatted message.
func DataLossf(format string, args ...any) *Error { return Newf(CodeDataLoss, format, args...) }
