package domain

import (
	"errors"
	"fmt"
)

// Predefined domain errors.
var (
	// ErrNotFound resource does not exist
	ErrNotFound = errors.New("resource not found")
	// ErrAlreadyExists resource already exists
	ErrAlreadyExists = errors.New("resource already exists")
	// ErrInvalidInput invalid input
	ErrInvalidInput = errors.New("invalid input")
	// ErrConflict resource conflict (version mismatch)
	ErrConflict = errors.New("resource conflict")
	// ErrUnauthorized unauthorized
	ErrUnauthorized = errors.New("unauthorized")
	// ErrForbidden access forbidden
	ErrForbidden = errors.New("forbidden")
	// ErrModelUnavailable no viable provider/model for the request
	ErrModelUnavailable = errors.New("model unavailable")
	// ErrInternal internal error
	ErrInternal = errors.New("internal error")
)

// DomainError carries a stable code plus a user-safe message.
type DomainError struct {
	Code    string
	Message string
	Err     error
}

// Error implements the error interface (used for logs and internal wrapping).
func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// UserMessage returns the user-facing message without internal detail.
func (e *DomainError) UserMessage() string {
	return e.Message
}

// Unwrap returns the wrapped error.
func (e *DomainError) Unwrap() error {
	return e.Err
}

// NewNotFoundError creates a resource-not-found error.
func NewNotFoundError(resourceType, name string) error {
	return &DomainError{
		Code:    "NOT_FOUND",
		Message: fmt.Sprintf("%s '%s' not found", resourceType, name),
		Err:     ErrNotFound,
	}
}

// NewAlreadyExistsError creates a resource-already-exists error.
func NewAlreadyExistsError(resourceType, name string) error {
	return &DomainError{
		Code:    "ALREADY_EXISTS",
		Message: fmt.Sprintf("%s '%s' already exists", resourceType, name),
		Err:     ErrAlreadyExists,
	}
}

// NewInvalidInputError creates an invalid-input error.
func NewInvalidInputError(message string) error {
	return &DomainError{
		Code:    "INVALID_INPUT",
		Message: message,
		Err:     ErrInvalidInput,
	}
}

// NewModelUnavailableError creates a resolution error for requests no
// provider/model combination can serve.
func NewModelUnavailableError(message string) error {
	return &DomainError{
		Code:    "MODEL_UNAVAILABLE",
		Message: message,
		Err:     ErrModelUnavailable,
	}
}

// NewConflictError creates a resource-conflict error.
func NewConflictError(message string) error {
	return &DomainError{
		Code:    "CONFLICT",
		Message: message,
		Err:     ErrConflict,
	}
}

// NewInternalError creates an internal error without exposing detail.
func NewInternalError(err error) error {
	return &DomainError{
		Code:    "INTERNAL_ERROR",
		Message: "an internal error occurred",
		Err:     fmt.Errorf("%w: %v", ErrInternal, err),
	}
}

// IsNotFound reports whether err is a resource-not-found error.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsAlreadyExists reports whether err is an already-exists error.
func IsAlreadyExists(err error) bool {
	return errors.Is(err, ErrAlreadyExists)
}

// IsInvalidInput reports whether err is an invalid-input error.
func IsInvalidInput(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

// IsModelUnavailable reports whether err is a model-resolution error.
func IsModelUnavailable(err error) bool {
	return errors.Is(err, ErrModelUnavailable)
}

// IsConflict reports whether err is a resource-conflict error.
func IsConflict(err error) bool {
	return errors.Is(err, ErrConflict)
}

// IsInternalError reports whether err is an internal error.
func IsInternalError(err error) bool {
	return errors.Is(err, ErrInternal)
}
