// Package errors defines the application error taxonomy. Every error the
// delivery layer can surface implements AppError, which carries the HTTP
// status plus a stable business error code.
package errors

import (
	"fmt"
	"net/http"

	"ishop/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-safe error message
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

// Message returns the user-safe error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// Is matches on the business error code, so detailed copies made with
// WithDetails still compare equal to the predefined value.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)

	return ok && t.errorCode == e.errorCode && t.httpCode == e.httpCode
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
	// Authentication-related errors
	ErrUnauthorized = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHORIZED",
		"You are not logged in, please log in",
		"",
	)

	ErrInvalidToken = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_TOKEN",
		"Invalid or expired token",
		"",
	)

	ErrStaleToken = NewBaseError(
		http.StatusUnauthorized,
		"STALE_TOKEN",
		"User changed their password, please log in again",
		"",
	)

	ErrAccountNotActivated = NewBaseError(
		http.StatusUnauthorized,
		"ACCOUNT_NOT_ACTIVATED",
		"Account not verified, please verify your email",
		"",
	)

	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Invalid email or password",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"You are not allowed to access this route",
		"",
	)

	// Sign-up / password reset flow errors
	ErrEmailAlreadyRegistered = NewBaseError(
		http.StatusConflict,
		"EMAIL_ALREADY_REGISTERED",
		"This email is already registered",
		"",
	)

	ErrCodeInvalidOrExpired = NewBaseError(
		http.StatusBadRequest,
		"CODE_INVALID_OR_EXPIRED",
		"Code invalid or expired",
		"",
	)

	ErrResetNotVerified = NewBaseError(
		http.StatusBadRequest,
		"RESET_NOT_VERIFIED",
		"Reset code not verified",
		"",
	)

	ErrNoUserWithEmail = NewBaseError(
		http.StatusBadRequest,
		"NO_USER_WITH_EMAIL",
		"There is no user with this email",
		"",
	)

	ErrEmailDelivery = NewBaseError(
		http.StatusInternalServerError,
		"EMAIL_DELIVERY_FAILED",
		"There is an error in sending email",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed",
		"",
	)

	ErrIncompleteAddress = NewBaseError(
		http.StatusBadRequest,
		"INCOMPLETE_ADDRESS",
		"Please fill all the required address fields",
		"",
	)

	// Basket / order domain errors
	ErrBasketEmpty = NewBaseError(
		http.StatusBadRequest,
		"BASKET_EMPTY",
		"Basket is empty",
		"",
	)

	ErrOrderNotCancellable = NewBaseError(
		http.StatusBadRequest,
		"ORDER_NOT_CANCELLABLE",
		"Order can no longer be cancelled",
		"",
	)

	ErrInvalidStatusTransition = NewBaseError(
		http.StatusBadRequest,
		"INVALID_STATUS_TRANSITION",
		"Order status transition is not permitted",
		"",
	)

	// Wishlist errors
	ErrAlreadyInWishlist = NewBaseError(
		http.StatusConflict,
		"ALREADY_IN_WISHLIST",
		"Product already in wishlist",
		"",
	)

	ErrNotInWishlist = NewBaseError(
		http.StatusNotFound,
		"NOT_IN_WISHLIST",
		"Product not found in wishlist",
		"",
	)

	// General errors
	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Resource not found",
		"",
	)

	ErrConflict = NewBaseError(
		http.StatusConflict,
		"CONFLICT",
		"Resource conflict",
		"",
	)

	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)
)

// NewNotFoundError builds the parameterized not-found error used by the
// generic CRUD operations, naming the entity kind and the missing id.
func NewNotFoundError(kind string, id any) *BaseError {
	return NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		fmt.Sprintf("No %s for this id %v", kind, id),
		"",
	)
}

// IsNotFound reports whether err is, or wraps, a not-found AppError.
func IsNotFound(err error) bool {
	var appErr AppError

	return errors.As(err, &appErr) && appErr.HTTPCode() == http.StatusNotFound
}

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

// Message returns the user-safe error message
func (e *DatabaseExecuteError) Message() string {
	return "Database execution failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
