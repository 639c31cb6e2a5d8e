package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrMissingFile indicates that a request expected an uploaded file and none was provided.
var ErrMissingFile = errors.New("no file uploaded")

// ErrMalformedXML indicates that an uploaded document could not be parsed as XML
// or lacked the expected root element.
var ErrMalformedXML = errors.New("malformed xml input")

// AppError is an error that carries the HTTP status the boundary should answer
// with. Wrapped sentinel errors stay reachable through errors.Is/errors.As.
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates an AppError with the given HTTP status code and message.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}
