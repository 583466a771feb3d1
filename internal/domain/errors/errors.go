package errors

import (
	"net/http"

	"hostelhub/internal/errors"
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
	// Account-related errors
	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"User not found",
		"",
	)

	ErrUserAlreadyExists = NewBaseError(
		http.StatusConflict,
		"USER_ALREADY_EXISTS",
		"This email is already registered",
		"",
	)

	ErrHostelNotFound = NewBaseError(
		http.StatusNotFound,
		"HOSTEL_NOT_FOUND",
		"Hostel not found",
		"",
	)

	ErrHostelAlreadyExists = NewBaseError(
		http.StatusConflict,
		"HOSTEL_ALREADY_EXISTS",
		"This email is already registered as a hostel",
		"",
	)

	ErrAdminNotFound = NewBaseError(
		http.StatusNotFound,
		"ADMIN_NOT_FOUND",
		"Admin not found",
		"",
	)

	// Authentication-related errors
	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Incorrect email or password",
		"",
	)

	ErrPasswordHashFailed = NewBaseError(
		http.StatusInternalServerError,
		"PASSWORD_HASH_FAILED",
		"Failed to process password",
		"",
	)

	// Verification-challenge errors
	ErrChallengeNotFound = NewBaseError(
		http.StatusNotFound,
		"CHALLENGE_NOT_FOUND",
		"No verification code found for this email",
		"",
	)

	ErrChallengeExpired = NewBaseError(
		http.StatusBadRequest,
		"CHALLENGE_EXPIRED",
		"Verification code has expired",
		"",
	)

	ErrChallengeMismatch = NewBaseError(
		http.StatusBadRequest,
		"CHALLENGE_MISMATCH",
		"Invalid verification code",
		"",
	)

	ErrMailDispatch = NewBaseError(
		http.StatusBadGateway,
		"MAIL_DISPATCH_FAILED",
		"Failed to send verification email",
		"",
	)

	// Booking-related errors
	ErrBookingNotFound = NewBaseError(
		http.StatusNotFound,
		"BOOKING_NOT_FOUND",
		"Booking not found",
		"",
	)

	ErrInvalidDateRange = NewBaseError(
		http.StatusBadRequest,
		"INVALID_DATE_RANGE",
		"Check-out must be after check-in",
		"",
	)

	ErrInvalidBookingStatus = NewBaseError(
		http.StatusBadRequest,
		"INVALID_BOOKING_STATUS",
		"Invalid status value. Use 0 = Pending, 1 = Confirmed, 2 = Cancelled",
		"",
	)

	// Feedback-related errors
	ErrInvalidRating = NewBaseError(
		http.StatusBadRequest,
		"INVALID_RATING",
		"Rating must be between 1 and 5",
		"",
	)

	ErrDescriptionNotFound = NewBaseError(
		http.StatusNotFound,
		"DESCRIPTION_NOT_FOUND",
		"No description found for this hostel",
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

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"Access denied",
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
