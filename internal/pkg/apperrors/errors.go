package apperrors

import "errors"

// Failure kinds surfaced by the entity services. Every service operation
// returns either a success value or an error wrapping one of these.
var (
	// ErrNotFound is returned when a referenced Student, Course or Enrollment
	// id does not exist.
	ErrNotFound = errors.New("resource not found")

	// ErrConflict is returned when a uniqueness constraint would be violated:
	// duplicate student email, duplicate course name or duplicate
	// (student, course) enrollment pair.
	ErrConflict = errors.New("conflict")

	// ErrInvalidArgument is returned when caller-supplied data is structurally
	// invalid for the operation.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrStorageFailure is returned when the store is unreachable or rejects a
	// write the service did not pre-validate.
	ErrStorageFailure = errors.New("storage failure")
)

// Authentication errors
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("invalid token")
	ErrPermissionDenied   = errors.New("permission denied")
)

// CustomError carries a human-readable message on top of one of the sentinel
// errors above, so callers can still match with errors.Is.
type CustomError struct {
	Err     error
	Message string
}

// Error implements the error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements the errors.Unwrap interface
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewNotFoundError creates a not-found error with a message
func NewNotFoundError(message string) error {
	return &CustomError{Err: ErrNotFound, Message: message}
}

// NewConflictError creates a conflict error with a message
func NewConflictError(message string) error {
	return &CustomError{Err: ErrConflict, Message: message}
}

// NewInvalidArgumentError creates an invalid-argument error with a message
func NewInvalidArgumentError(message string) error {
	return &CustomError{Err: ErrInvalidArgument, Message: message}
}

// NewStorageError wraps an unexpected store-level failure with a message
func NewStorageError(message string) error {
	return &CustomError{Err: ErrStorageFailure, Message: message}
}
