package errors

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/feral-file/ff-crm/internal/domain"
)

// ErrorCode represents a standardized error code
type ErrorCode string

const (
	// Client errors (4xx)
	ErrCodeBadRequest       ErrorCode = "bad_request"
	ErrCodeNotFound         ErrorCode = "not_found"
	ErrCodeValidationFailed ErrorCode = "validation_failed"
	ErrCodeUnauthorized     ErrorCode = "unauthorized"
	ErrCodeTooManyRequests  ErrorCode = "too_many_requests"

	// Server errors (5xx)
	ErrCodeInternalError ErrorCode = "internal_error"
	ErrCodeDatabaseError ErrorCode = "database_error"
)

// APIError represents a structured API error that carries error code and details
type APIError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Details string    `json:"details,omitempty"`
}

func (e *APIError) Error() string {
	jsonErr, _ := json.Marshal(e)
	return string(jsonErr)
}

// Error constructors for common error types
func NewBadRequestError(message string, details ...string) *APIError {
	return &APIError{
		Code:    ErrCodeBadRequest,
		Message: message,
		Details: strings.Join(details, ", "),
	}
}

func NewNotFoundError(message string, details ...string) *APIError {
	return &APIError{
		Code:    ErrCodeNotFound,
		Message: message,
		Details: strings.Join(details, ", "),
	}
}

func NewValidationError(details ...string) *APIError {
	return &APIError{
		Code:    ErrCodeValidationFailed,
		Message: "Validation failed",
		Details: strings.Join(details, ", "),
	}
}

func NewUnauthorizedError(message string, details ...string) *APIError {
	return &APIError{
		Code:    ErrCodeUnauthorized,
		Message: message,
		Details: strings.Join(details, ", "),
	}
}

func NewTooManyRequestsError(message string, details ...string) *APIError {
	return &APIError{
		Code:    ErrCodeTooManyRequests,
		Message: message,
		Details: strings.Join(details, ", "),
	}
}

func NewInternalError(message string, details ...string) *APIError {
	return &APIError{
		Code:    ErrCodeInternalError,
		Message: message,
		Details: strings.Join(details, ", "),
	}
}

func NewDatabaseError(message string, details ...string) *APIError {
	return &APIError{
		Code:    ErrCodeDatabaseError,
		Message: message,
		Details: strings.Join(details, ", "),
	}
}

// FromDomain maps a service error onto an HTTP status and API error.
// Server-side failures never expose the underlying error text.
func FromDomain(err error) (int, *APIError) {
	var validationErr *domain.ValidationError
	switch {
	case errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized, NewUnauthorizedError("Authentication required")
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, NewNotFoundError("Resource not found")
	case errors.As(err, &validationErr):
		if validationErr.Field != "" {
			return http.StatusBadRequest, NewValidationError(validationErr.Field + ": " + validationErr.Message)
		}
		return http.StatusBadRequest, NewValidationError(validationErr.Message)
	case errors.Is(err, domain.ErrInvalidArgument):
		return http.StatusBadRequest, NewBadRequestError("Invalid argument", err.Error())
	case domain.IsStoreError(err):
		return http.StatusInternalServerError, NewDatabaseError("Database operation failed")
	default:
		return http.StatusInternalServerError, NewInternalError("Internal server error")
	}
}
