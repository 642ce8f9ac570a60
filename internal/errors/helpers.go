package errors

import (
	"errors"
)

// As finds the first *Error in err's chain.
func As(err error, target **Error) bool {
	return errors.As(err, target)
}

func asError(err error) (*Error, bool) {
	var e *Error
	if err == nil || !errors.As(err, &e) {
		return nil, false
	}
	return e, true
}

// GetCode returns the code of the outermost *Error in err's chain. Plain
// errors are Internal and nil is OK.
func GetCode(err error) Code {
	if err == nil {
		return CodeOK
	}
	if e, ok := asError(err); ok {
		return e.Code
	}
	return CodeInternal
}

// GetMessage returns the outermost *Error message, or err.Error() for plain
// errors.
func GetMessage(err error) string {
	if err == nil {
		return ""
	}
	if e, ok := asError(err); ok {
		return e.Message
	}
	return err.Error()
}

// GetMeta returns the metadata of the outermost *Error, if any.
func GetMeta(err error) map[string]any {
	if e, ok := asError(err); ok {
		return e.Meta
	}
	return nil
}

// HasCode reports whether err carries code.
func HasCode(err error, code Code) bool {
	return err != nil && GetCode(err) == code
}

func IsNotFound(err error) bool        { return HasCode(err, CodeNotFound) }
func IsInvalidArgument(err error) bool { return HasCode(err, CodeInvalidArgument) }
func IsUnavailable(err error) bool     { return HasCode(err, CodeUnavailable) }
func IsDataLoss(err error) bool        { return HasCode(err, CodeDataLoss) }
