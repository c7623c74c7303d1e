package errors

import (
	"net/http"

	"wick/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Session and identity errors. None of these are fatal: the worst
	// degraded state is an unauthenticated-but-ready session.
	ErrIdentityInit = NewBaseError(
		http.StatusServiceUnavailable,
		"IDENTITY_INIT_FAILED",
		"Identity service is unreachable or misconfigured",
		"",
	)

	ErrSignInFailed = NewBaseError(
		http.StatusServiceUnavailable,
		"SIGN_IN_FAILED",
		"Sign-in attempt failed",
		"",
	)

	// Submission errors.
	ErrNotReady = NewBaseError(
		http.StatusServiceUnavailable,
		"NOT_READY",
		"Database not ready or user not authenticated. Please refresh and try again.",
		"",
	)

	ErrSubmissionRejected = NewBaseError(
		http.StatusBadGateway,
		"SUBMISSION_REJECTED",
		"Failed to submit listing",
		"",
	)

	ErrInvalidListing = NewBaseError(
		http.StatusBadRequest,
		"INVALID_LISTING",
		"Listing draft failed validation",
		"",
	)

	// Directory errors.
	ErrSubscriptionFailed = NewBaseError(
		http.StatusServiceUnavailable,
		"SUBSCRIPTION_FAILED",
		"Live directory query failed or was denied",
		"",
	)

	// Contact errors.
	ErrInvalidContact = NewBaseError(
		http.StatusBadRequest,
		"INVALID_CONTACT",
		"Contact request failed validation",
		"",
	)

	// Generic errors.
	ErrInvalidInput = NewBaseError(
		http.StatusBadRequest,
		"INVALID_INPUT",
		"Invalid input",
		"",
	)

	ErrInternal = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)
)
