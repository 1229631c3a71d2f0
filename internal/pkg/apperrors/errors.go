package apperrors

import "errors"

// Common errors
var (
	// Resource errors
	ErrResourceNotFound = errors.New("resource not found")
	ErrConflict         = errors.New("conflict")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")

	// Authorization errors
	ErrUnauthorized = errors.New("unauthorized")
)

// Course errors
var (
	ErrCourseNotFound = errors.New("course not found or inactive")
)

// Application errors
var (
	ErrApplicationNotFound = errors.New("application not found")
	ErrApplicationExists   = errors.New("an application already exists for this staff number")
	ErrCategoryMismatch    = errors.New("course category does not match the selected course")
	ErrStaffNumberMismatch = errors.New("staff number in path must match request body")
)

// Form status errors
var (
	ErrFormClosed = errors.New("the application form is currently closed")
)

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
}

// Error implements error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap interface
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewCustomError creates a CustomError with underlying error
func NewCustomError(err error, message string) *CustomError {
	return &CustomError{
		Err:     err,
		Message: message,
	}
}
