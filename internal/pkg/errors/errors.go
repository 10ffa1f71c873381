package errors

import (
	"errors"
	"fmt"
)

var (
	// ErrRecordNotFound means the content record does not exist; no field
	// operation against it is meaningful.
	ErrRecordNotFound = errors.New("record not found")
	// ErrFieldNotConfigured is a catalog lookup miss. Callers pass field
	// names from code, so hitting this is a programmer error.
	ErrFieldNotConfigured = errors.New("field not configured")
	// ErrStoreUnavailable means a store adapter could not reach its backend.
	ErrStoreUnavailable = errors.New("store unavailable")
)

// ValidationError reports one field value that failed catalog constraints.
// It is collected per field and never aborts a group operation.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed for %q: %s", e.Field, e.Reason)
}

func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

// AsValidation unwraps err into a *ValidationError when possible.
func AsValidation(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
