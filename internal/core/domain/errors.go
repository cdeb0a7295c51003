package domain

import (
	"errors"
	"fmt"
)

// DomainError represents a business logic error
type DomainError struct {
	Code    string
	Message string
	Err     error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for errors.Is/As support
func (e *DomainError) Unwrap() error {
	return e.Err
}

const (
	ErrCodeValidation          = "VALIDATION_ERROR"
	ErrCodeMissingParameter    = "MISSING_PARAMETER"
	ErrCodeGatewayError        = "GATEWAY_ERROR"
	ErrCodeMalformedEvent      = "MALFORMED_EVENT"
	ErrCodeUnauthorizedWebhook = "UNAUTHORIZED_WEBHOOK"
	ErrCodeInternal            = "INTERNAL_ERROR"
)

func NewValidationError(message string) *DomainError {
	return &DomainError{
		Code:    ErrCodeValidation,
		Message: message,
	}
}

func NewMissingParameterError(param string) *DomainError {
	return &DomainError{
		Code:    ErrCodeMissingParameter,
		Message: fmt.Sprintf("%s is required", param),
	}
}

func NewGatewayError(message string, err error) *DomainError {
	return &DomainError{
		Code:    ErrCodeGatewayError,
		Message: message,
		Err:     err,
	}
}

func NewMalformedEventError(err error) *DomainError {
	return &DomainError{
		Code:    ErrCodeMalformedEvent,
		Message: "could not parse webhook event",
		Err:     err,
	}
}

// IsErrorCode reports whether err is a DomainError carrying the given code.
func IsErrorCode(err error, code string) bool {
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr.Code == code
	}
	return false
}
