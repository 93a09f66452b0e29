package errors

import (
	"encoding/json"
	"strings"
)

// ErrorCode represents a standardized error code
type ErrorCode string

const (
	// Client errors (4xx)
	ErrCodeBadRequest      ErrorCode = "bad_request"
	ErrCodeMissingField    ErrorCode = "missing_field"
	ErrCodeInvalidDate     ErrorCode = "invalid_date"
	ErrCodeInvalidAmount   ErrorCode = "invalid_amount"
	ErrCodeDuplicateKey    ErrorCode = "duplicate_key"
	ErrCodeDuplicatePeriod ErrorCode = "duplicate_period"
	ErrCodeOwnerNotFound   ErrorCode = "owner_not_found"
	ErrCodeNotFound        ErrorCode = "not_found"

	// Server errors (5xx)
	ErrCodeInternalError ErrorCode = "internal_error"
	ErrCodeDatabaseError ErrorCode = "database_error"
)

// APIError represents a structured API error that carries error code and
// details across the API boundary
type APIError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Details string    `json:"details,omitempty"`
	// Conflicting carries the existing record on duplicate-period conflicts
	// so clients can display what is already stored
	Conflicting any `json:"conflicting,omitempty"`
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

func NewMissingFieldError(fields ...string) *APIError {
	return &APIError{
		Code:    ErrCodeMissingField,
		Message: "Missing required fields: " + strings.Join(fields, ", "),
	}
}

func NewInvalidDateError(details string) *APIError {
	return &APIError{
		Code:    ErrCodeInvalidDate,
		Message: "Invalid date format. Use YYYY-MM-DD, YYYY-MM, or ISO string",
		Details: details,
	}
}

func NewInvalidAmountError(details string) *APIError {
	return &APIError{
		Code:    ErrCodeInvalidAmount,
		Message: "Amount must be a number",
		Details: details,
	}
}

func NewDuplicateKeyError(field string) *APIError {
	return &APIError{
		Code:    ErrCodeDuplicateKey,
		Message: field + " already exists",
	}
}

func NewDuplicatePeriodError(conflicting any) *APIError {
	return &APIError{
		Code:        ErrCodeDuplicatePeriod,
		Message:     "Payment already exists for this month",
		Conflicting: conflicting,
	}
}

func NewOwnerNotFoundError() *APIError {
	return &APIError{
		Code:    ErrCodeOwnerNotFound,
		Message: "User not found",
	}
}

func NewNotFoundError(message string, details ...string) *APIError {
	return &APIError{
		Code:    ErrCodeNotFound,
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
