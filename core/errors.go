package core

import "github.com/pkg/errors"

// FieldError is used to indicate an error with a specific struct field.
type FieldError struct {
	Field string
	Error string
}

type ValidationError struct {
	Err    error
	Fields []FieldError
}

func NewValidationError(err error, flds ...FieldError) error {
	return &ValidationError{err, flds}
}

func (err ValidationError) Error() string {
	if err.Err == nil {
		return ""
	}
	return err.Err.Error()
}

// configuration indicates an invalid startup configuration (malformed grade
// scale table, impossible weight bounds, ...); not recoverable per-call.
type configuration struct {
	message string
}

func NewConfigurationError(msg string) error {
	return &configuration{message: msg}
}

func (c configuration) Error() string {
	return c.message
}

func IsConfigurationError(err error) bool {
	_, ok := errors.Cause(err).(*configuration)
	return ok
}
