package gateway

import (
	"errors"
	"fmt"
)

const (
	// ErrCodeConnection marks transport-level failures. The processor's
	// own refusals carry ErrCodeRefused with its message verbatim.
	ErrCodeConnection = "CONNECTION_ERROR"
	ErrCodeRefused    = "GATEWAY_REFUSED"
)

// Error is the uniform failure shape of the gateway client. Callers decide
// the HTTP status; Message is safe to forward to the storefront.
type Error struct {
	Code       string
	Message    string
	StatusCode int
	Err        error
}

type errorResponse struct {
	Err     string `json:"error"`
	Message string `json:"message"`
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("gateway error [%s]: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("gateway error [%s]: %s (status: %d)", e.Code, e.Message, e.StatusCode)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func IsGatewayError(err error) (*Error, bool) {
	var gwErr *Error
	ok := errors.As(err, &gwErr)
	return gwErr, ok
}

func newConnectionError(err error) *Error {
	return &Error{
		Code:    ErrCodeConnection,
		Message: "could not reach the payment gateway",
		Err:     err,
	}
}
