package cipher

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Error codes
const (
	ErrCodeFunctionNotFound      = "FUNCTION_NOT_FOUND"
	ErrCodeTransformObjNotFound  = "TRANSFORM_OBJECT_NOT_FOUND"
	ErrCodeBodyUnparsable        = "FUNCTION_BODY_UNPARSABLE"
	ErrCodeCipherDataInvalid     = "CIPHER_DATA_INVALID"
	ErrCodeSessionNotInitialized = "SESSION_NOT_INITIALIZED"
)

// Error represents a structured error with code and details
type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Details != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Details)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// MarshalJSON implements json.Marshaler
func (e *Error) MarshalJSON() ([]byte, error) {
	type Alias Error
	return json.Marshal(&struct {
		*Alias
		Error string `json:"error"`
	}{
		Alias: (*Alias)(e),
		Error: e.Error(),
	})
}

// NewError creates a new Error with the given code and message
func NewError(code string, message string, details ...any) *Error {
	e := &Error{
		Code:    code,
		Message: message,
	}
	if len(details) > 0 {
		e.Details = details[0]
	}
	return e
}

// codeOf unwraps err down to a *Error and returns its code.
func codeOf(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// IsNotFound returns true if err reports a missing transform function or
// transform object.
func IsNotFound(err error) bool {
	code := codeOf(err)
	return code == ErrCodeFunctionNotFound || code == ErrCodeTransformObjNotFound
}

// IsUnparsable returns true if err reports a body extraction or plan build
// failure.
func IsUnparsable(err error) bool {
	return codeOf(err) == ErrCodeBodyUnparsable
}

// IsCipherDataInvalid returns true if err reports a malformed cipher blob.
func IsCipherDataInvalid(err error) bool {
	return codeOf(err) == ErrCodeCipherDataInvalid
}

// IsSessionNotInitialized returns true if err reports use of a session that
// was never built.
func IsSessionNotInitialized(err error) bool {
	return codeOf(err) == ErrCodeSessionNotInitialized
}
