package core

import "github.com/pkg/errors"

// FieldError names one invalid field and the message reported for it.
type FieldError struct {
	Field string
	Error string
}

// ValidationError carries a domain validation failure out of core services.
// The HTTP error handler renders it as a 400, as a per-field map when Fields
// is set and as a single message otherwise.
type ValidationError struct {
	Err    error
	Fields []FieldError
}

func NewValidationError(err error, flds ...FieldError) error {
	return &ValidationError{Err: err, Fields: flds}
}

func (err ValidationError) Error() string {
	if err.Err == nil {
		return ""
	}
	return err.Err.Error()
}

// shutdown marks an error as unrecoverable. The server drains and exits
// instead of answering further requests.
type shutdown struct {
	message string
}

func NewShutdownError(msg string) error {
	return &shutdown{message: msg}
}

func (s shutdown) Error() string {
	return s.message
}

// IsShutdown reports whether err, unwrapped, is a shutdown error.
func IsShutdown(err error) bool {
	_, ok := errors.Cause(err).(*shutdown)
	return ok
}
