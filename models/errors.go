package models

import (
	"errors"
	"fmt"
)

// Sentinel errors for comparison with errors.Is. Service-layer failures wrap
// one of these so callers can branch on the kind without string matching.
var (
	ErrValidation          = errors.New("validation failed")
	ErrNetwork             = errors.New("network request failed")
	ErrAuthExpired         = errors.New("authentication expired")
	ErrPaymentVerification = errors.New("payment verification failed")
	ErrPaymentFailed       = errors.New("payment failed or was cancelled")
	ErrSubmitInFlight      = errors.New("submission already in flight")
	ErrNotCancellable      = errors.New("order can no longer be cancelled")
	ErrItemNotFound        = errors.New("cart item not found")
	ErrForbidden           = errors.New("insufficient role")
)

// APIError carries structured context about a failed operation.
type APIError struct {
	Op      string // operation that failed, e.g. "cart.UpdateQuantity"
	Field   string // offending field for validation failures
	Message string
	Err     error // sentinel or transport error being wrapped
}

func (e *APIError) Error() string {
	switch {
	case e.Field != "":
		return fmt.Sprintf("%s: %s: %s", e.Op, e.Field, e.Message)
	case e.Message != "":
		return fmt.Sprintf("%s: %s", e.Op, e.Message)
	default:
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
}

func (e *APIError) Unwrap() error { return e.Err }

// ValidationError reports a field-level failure detected before any network
// call is made.
func ValidationError(op, field, message string) error {
	return &APIError{Op: op, Field: field, Message: message, Err: ErrValidation}
}

// NetworkError wraps a transport or server failure.
func NetworkError(op string, err error) error {
	return &APIError{Op: op, Message: "request failed", Err: fmt.Errorf("%w: %v", ErrNetwork, err)}
}

// IsRetryable reports whether the failure is transient and the user may
// simply try again. Validation and policy failures are not.
func IsRetryable(err error) bool {
	return errors.Is(err, ErrNetwork)
}
