package domain

import "errors"

var (
	// ErrNotConfigured indicates that a remote client was never injected into the gateway.
	ErrNotConfigured = errors.New("client is not configured")
	// ErrNotFound indicates that the remote service reported no match.
	ErrNotFound = errors.New("not found")
	// ErrDomainRejected indicates a business rule violation detected locally.
	ErrDomainRejected = errors.New("rejected by business rule")
	// ErrTransport indicates a generic network or HTTP failure.
	ErrTransport = errors.New("transport failure")
	// ErrNoActivePayment indicates that there is no initiated transfer to act upon.
	ErrNoActivePayment = errors.New("not found payment")
	// ErrStepMismatch indicates that the action is not available in the current step.
	ErrStepMismatch = errors.New("action is not available in the current step")
	// ErrProviderInactive indicates that the chosen payment provider is inactive.
	ErrProviderInactive = errors.New("payment provider is inactive")
	// ErrInvalidAmount indicates that the amount is missing or out of the allowed range.
	ErrInvalidAmount = errors.New("invalid amount")
	// ErrInvalidDetails indicates that the recipient details form is invalid.
	ErrInvalidDetails = errors.New("invalid transfer details")
)

// MessageError carries a user facing message on top of one of the error kinds above.
type MessageError struct {
	Kind    error
	Message string
}

// NewMessageError returns a MessageError of the given kind.
func NewMessageError(kind error, message string) *MessageError {
	return &MessageError{Kind: kind, Message: message}
}

func (e *MessageError) Error() string {
	return e.Message
}

func (e *MessageError) Unwrap() error {
	return e.Kind
}
