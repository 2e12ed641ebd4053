package errors

import (
	"net/http"

	"github.com/Ellis-Ayikwei/waste-wise-sub006/internal/errors"
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
	// Journey-related errors
	ErrInvalidJourney = NewBaseError(
		http.StatusBadRequest,
		"INVALID_JOURNEY",
		"The journey is not valid",
		"",
	)

	ErrStopNotFound = NewBaseError(
		http.StatusNotFound,
		"STOP_NOT_FOUND",
		"Stop not found",
		"",
	)

	ErrStopIndexOutOfRange = NewBaseError(
		http.StatusBadRequest,
		"STOP_INDEX_OUT_OF_RANGE",
		"Stop index is out of range",
		"",
	)

	ErrNotDropoffStop = NewBaseError(
		http.StatusBadRequest,
		"NOT_DROPOFF_STOP",
		"Items can only be linked to a dropoff stop",
		"",
	)

	// Item linkage errors
	ErrItemNotFound = NewBaseError(
		http.StatusNotFound,
		"ITEM_NOT_FOUND",
		"Item is not collected at any pickup stop",
		"",
	)

	ErrItemAlreadyLinked = NewBaseError(
		http.StatusConflict,
		"ITEM_ALREADY_LINKED",
		"Item is already linked to another dropoff",
		"",
	)

	ErrLinkConflict = NewBaseError(
		http.StatusConflict,
		"LINK_CONFLICT",
		"Some items are linked to more than one dropoff or to no pickup item",
		"",
	)

	// Draft-related errors
	ErrDraftNotFound = NewBaseError(
		http.StatusNotFound,
		"DRAFT_NOT_FOUND",
		"No saved draft",
		"",
	)

	ErrInvalidStep = NewBaseError(
		http.StatusBadRequest,
		"INVALID_STEP",
		"Step must be a positive number",
		"",
	)

	ErrStepSubmitFailed = NewBaseError(
		http.StatusBadGateway,
		"STEP_SUBMIT_FAILED",
		"Submitting the step failed, your draft is kept, please retry",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
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
