package usecase

import (
	"errors"
	"fmt"

	"shopadmin/internal/validator"
)

type HTTPError struct {
	Status  int
	Message string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%d: %s", e.Status, e.Message)
}

func NewHTTPError(status int, message string) error {
	return &HTTPError{
		Status:  status,
		Message: message,
	}
}

func AsHTTPError(err error) (*HTTPError, bool) {
	var he *HTTPError
	ok := errors.As(err, &he)
	return he, ok
}

// ValidationError aggregates per-field messages. Handlers render it as 422
// with a fields map; nothing is committed when it is returned.
type ValidationError struct {
	Fields validator.FieldErrors
}

func (e *ValidationError) Error() string {
	return "validation failed: " + e.Fields.Error()
}

func NewValidationError(fields validator.FieldErrors) error {
	return &ValidationError{Fields: fields}
}

func NewFieldError(field string, message string) error {
	return &ValidationError{Fields: validator.FieldErrors{{Field: field, Message: message}}}
}

func AsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	ok := errors.As(err, &ve)
	return ve, ok
}
