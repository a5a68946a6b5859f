package errors

import (
	"net/http"

	"courtcrowd/internal/errors"
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
	// Court-related errors
	ErrCourtNotFound = NewBaseError(
		http.StatusNotFound,
		"COURT_NOT_FOUND",
		"Court not found",
		"",
	)

	// Presence-related errors
	ErrPresenceConflict = NewBaseError(
		http.StatusConflict,
		"PRESENCE_CONFLICT",
		"Presence record conflicts with an open check-in",
		"",
	)

	ErrPresenceWriteFailed = NewBaseError(
		http.StatusInternalServerError,
		"PRESENCE_WRITE_FAILED",
		"Failed to update presence",
		"",
	)

	// Geofencing session errors
	ErrSessionNotFound = NewBaseError(
		http.StatusNotFound,
		"GEOFENCING_SESSION_NOT_FOUND",
		"No geofencing session for this user, start one first",
		"",
	)

	// Device-related errors
	ErrDeviceNotFound = NewBaseError(
		http.StatusNotFound,
		"DEVICE_NOT_FOUND",
		"Device not found",
		"",
	)

	ErrDeviceRegistrationFailed = NewBaseError(
		http.StatusInternalServerError,
		"DEVICE_REGISTRATION_FAILED",
		"Failed to register device",
		"",
	)

	// Webhook-related errors
	ErrWebhookSignatureInvalid = NewBaseError(
		http.StatusUnauthorized,
		"WEBHOOK_SIGNATURE_INVALID",
		"Invalid webhook signature",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed",
		"",
	)

	// Transaction-related errors
	ErrTransactionFailed = NewBaseError(
		http.StatusInternalServerError,
		"TRANSACTION_FAILED",
		"Database transaction failed",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Resource not found",
		"",
	)
)

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "Database execution failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}

// Unwrap returns the underlying driver error
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}
