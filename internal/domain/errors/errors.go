// Package errors defines the application error taxonomy shared by use cases and the HTTP boundary.
package errors

import (
	"net/http"

	"github.com/pkg/errors"
)

// Kind classifies an application error.
type Kind string

const (
	KindValidation Kind = "ValidationError"
	KindAuth       Kind = "AuthError"
	KindNotFound   Kind = "NotFoundError"
	KindConflict   Kind = "ConflictError"
	KindInternal   Kind = "InternalError"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
	Kind() Kind
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	kind      Kind
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, kind Kind, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		kind:      kind,
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

// Kind returns the taxonomy bucket of the error.
func (e *BaseError) Kind() Kind {
	return e.kind
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		kind:      e.kind,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// WithMessage returns a copy of the error carrying a different user-facing message.
func (e *BaseError) WithMessage(message string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		kind:      e.kind,
		errorCode: e.errorCode,
		message:   message,
		details:   e.details,
	}
}

// Business failures answer with 200 and {success:false}; only the session gates answer 401.
// Clients depend on this split, keep it.
var (
	// Validation-related errors
	ErrMissingDetails = NewBaseError(
		http.StatusOK,
		KindValidation,
		"MISSING_DETAILS",
		"Missing Details",
		"",
	)

	ErrMissingCredentials = NewBaseError(
		http.StatusOK,
		KindValidation,
		"MISSING_CREDENTIALS",
		"Email and password are required",
		"",
	)

	ErrValidationFailed = NewBaseError(
		http.StatusOK,
		KindValidation,
		"VALIDATION_FAILED",
		"Invalid input",
		"",
	)

	// User-related errors
	ErrUserNotFound = NewBaseError(
		http.StatusOK,
		KindNotFound,
		"USER_NOT_FOUND",
		"User not found",
		"",
	)

	ErrUserAlreadyExists = NewBaseError(
		http.StatusOK,
		KindConflict,
		"USER_ALREADY_EXISTS",
		"User already exists",
		"",
	)

	ErrUserCreationFailed = NewBaseError(
		http.StatusOK,
		KindInternal,
		"USER_CREATION_FAILED",
		"Failed to create user",
		"",
	)

	ErrUserUpdateFailed = NewBaseError(
		http.StatusOK,
		KindInternal,
		"USER_UPDATE_FAILED",
		"Failed to update user",
		"",
	)

	// Authentication-related errors
	ErrInvalidCredentials = NewBaseError(
		http.StatusOK,
		KindAuth,
		"INVALID_CREDENTIALS",
		"Invalid email or password",
		"",
	)

	ErrInvalidSellerCredentials = NewBaseError(
		http.StatusOK,
		KindAuth,
		"INVALID_SELLER_CREDENTIALS",
		"Invalid Credentials",
		"",
	)

	ErrNotAuthenticated = NewBaseError(
		http.StatusOK,
		KindAuth,
		"NOT_AUTHENTICATED",
		"User not authenticated",
		"",
	)

	ErrPasswordHashFailed = NewBaseError(
		http.StatusOK,
		KindInternal,
		"PASSWORD_HASH_FAILED",
		"Failed to process password",
		"",
	)

	ErrTokenIssueFailed = NewBaseError(
		http.StatusOK,
		KindInternal,
		"TOKEN_ISSUE_FAILED",
		"Failed to issue session token",
		"",
	)

	// Gate rejections are the only 401s.
	ErrNotAuthorized = NewBaseError(
		http.StatusUnauthorized,
		KindAuth,
		"NOT_AUTHORIZED",
		"Not Authorized",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusOK,
		KindInternal,
		"INTERNAL_ERROR",
		"Internal server error",
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

// Unwrap exposes the driver error.
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusOK
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

// Kind returns the taxonomy bucket of the error.
func (e *DatabaseExecuteError) Kind() Kind {
	return KindInternal
}
