package errors

import (
	"encoding/json"
	"strings"
)

// ErrorCode represents a standardized error code
type ErrorCode string

const (
	// Client errors (4xx)
	ErrCodeBadRequest           ErrorCode = "bad_request"
	ErrCodeNotFound             ErrorCode = "not_found"
	ErrCodeValidationFailed     ErrorCode = "validation_failed"
	ErrCodeUnauthorized         ErrorCode = "unauthorized"
	ErrCodeForbidden            ErrorCode = "forbidden"
	ErrCodeRateLimited          ErrorCode = "rate_limited"
	ErrCodeNoTrustline          ErrorCode = "no_trustline"
	ErrCodeNothingToWithdraw    ErrorCode = "nothing_to_withdraw"
	ErrCodeAlreadyTipped        ErrorCode = "already_tipped"
	ErrCodeSelfTip              ErrorCode = "self_tip"
	ErrCodeCooldown             ErrorCode = "cooldown"
	ErrCodeMergeInProgress      ErrorCode = "merge_in_progress"
	ErrCodeAddressAlreadyLinked ErrorCode = "address_already_linked"
	ErrCodeInsufficientFunds    ErrorCode = "insufficient_funds"

	// Server errors (5xx)
	ErrCodeInternalError ErrorCode = "internal_error"
	ErrCodeStoreError    ErrorCode = "store_error"
	ErrCodeServiceError  ErrorCode = "service_error"
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

// New creates an APIError with an arbitrary code
func New(code ErrorCode, message string, details ...string) *APIError {
	return &APIError{
		Code:    code,
		Message: message,
		Details: strings.Join(details, ", "),
	}
}

// Error constructors for common error types
func NewBadRequestError(message string, details ...string) *APIError {
	return New(ErrCodeBadRequest, message, details...)
}

func NewNotFoundError(message string, details ...string) *APIError {
	return New(ErrCodeNotFound, message, details...)
}

func NewValidationError(details ...string) *APIError {
	return New(ErrCodeValidationFailed, "Validation failed", details...)
}

func NewUnauthorizedError(message string, details ...string) *APIError {
	return New(ErrCodeUnauthorized, message, details...)
}

func NewRateLimitedError(message string, details ...string) *APIError {
	return New(ErrCodeRateLimited, message, details...)
}

func NewInternalError(message string, details ...string) *APIError {
	return New(ErrCodeInternalError, message, details...)
}

func NewStoreError(message string, details ...string) *APIError {
	return New(ErrCodeStoreError, message, details...)
}

func NewServiceError(message string, details ...string) *APIError {
	return New(ErrCodeServiceError, message, details...)
}
