package errors

import (
	"fmt"
	"net/http"
	"time"
)

// AppError là custom error type cho application
type AppError struct {
	Raw       error
	HTTPCode  int
	Code      ErrorCode
	Message   string
	Details   map[string]string
	Timestamp time.Time
}

// Error implements error interface
func (e AppError) Error() string {
	if e.Raw != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code.String(), e.Message, e.Raw)
	}
	return fmt.Sprintf("[%s] %s", e.Code.String(), e.Message)
}

// Unwrap returns the underlying error
func (e AppError) Unwrap() error {
	return e.Raw
}

// WithDetail adds a detail to the error
func (e AppError) WithDetail(key, value string) AppError {
	if e.Details == nil {
		e.Details = make(map[string]string)
	}
	e.Details[key] = value
	return e
}

// General Errors
func ErrInternal(err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusInternalServerError,
		Code:     ErrorCode_INTERNAL,
		Message:  "Internal server error",
	}
}

func ErrInvalidArgument(message string) AppError {
	return AppError{
		HTTPCode: http.StatusBadRequest,
		Code:     ErrorCode_INVALID_ARGUMENT,
		Message:  message,
	}
}

// Event Errors
func ErrEventNotFound(eventID string) AppError {
	return AppError{
		HTTPCode: http.StatusNotFound,
		Code:     ErrorCode_EVENT_NOT_FOUND,
		Message:  "Event not found",
	}.WithDetail("event_id", eventID)
}

func ErrEventInvalidConfig(eventID string, err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusUnprocessableEntity,
		Code:     ErrorCode_EVENT_INVALID_CONFIG,
		Message:  "Event configuration cannot produce assignments",
	}.WithDetail("event_id", eventID)
}

func ErrAutoAssignmentDisabled(eventID string) AppError {
	return AppError{
		HTTPCode: http.StatusForbidden,
		Code:     ErrorCode_EVENT_AUTO_ASSIGNMENT_OFF,
		Message:  "Automatic assignment is disabled for this event",
	}.WithDetail("event_id", eventID)
}

func ErrNoEligibleSnapshot(eventID string, err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusUnprocessableEntity,
		Code:     ErrorCode_EVENT_NO_ELIGIBLE_SNAPSHOT,
		Message:  "Event has no eligible participants or topics",
	}.WithDetail("event_id", eventID)
}

// Assignment Errors
func ErrGenerationInProgress(eventID string) AppError {
	return AppError{
		HTTPCode: http.StatusConflict,
		Code:     ErrorCode_ASSIGNMENT_IN_PROGRESS,
		Message:  "Assignment generation already in progress",
	}.WithDetail("event_id", eventID)
}

func ErrAssignmentsNotFound(eventID string) AppError {
	return AppError{
		HTTPCode: http.StatusNotFound,
		Code:     ErrorCode_ASSIGNMENT_NOT_FOUND,
		Message:  "No assignments generated for this event",
	}.WithDetail("event_id", eventID)
}

func ErrStatisticsNotFound(eventID string) AppError {
	return AppError{
		HTTPCode: http.StatusNotFound,
		Code:     ErrorCode_ASSIGNMENT_STATISTICS_MISSING,
		Message:  "No assignment statistics stored for this event",
	}.WithDetail("event_id", eventID)
}

func ErrExportFailed(format string, err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusInternalServerError,
		Code:     ErrorCode_ASSIGNMENT_EXPORT_FAILED,
		Message:  "Failed to export assignments",
	}.WithDetail("format", format)
}

// Integration Errors
func ErrCacheFailed(operation string, err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusInternalServerError,
		Code:     ErrorCode_INTEGRATION_CACHE_FAILED,
		Message:  fmt.Sprintf("Cache operation failed: %s", operation),
	}
}

// Database Errors
func ErrDBQueryFailed(operation string, err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusInternalServerError,
		Code:     ErrorCode_DB_QUERY_FAILED,
		Message:  "Database query failed",
	}.WithDetail("operation", operation)
}

func ErrDBTransactionFailed(err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusInternalServerError,
		Code:     ErrorCode_DB_TRANSACTION_FAILED,
		Message:  "Database transaction failed",
	}
}
