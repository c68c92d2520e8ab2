package sessionstore

import (
	"github.com/go-petr/pet-transfer/internal/domain"
)

// CallState is the bookkeeping of one asynchronous operation.
//
// Busy and Err are never set at the same time.
type CallState struct {
	Busy bool
	Err  error
}

// Slot is a CallState with the last successful result of the operation.
type Slot[T any] struct {
	CallState
	Result T
}

// State is a snapshot of the session.
type State struct {
	SearchRecipient   Slot[*domain.Recipient]
	InitTransfer      CallState
	AuthorizeTransfer CallState
	ResendOtp         CallState
	Contacts          Slot[[]domain.Recipient]
	AddContact        CallState
	PaymentMethods    Slot[[]domain.PaymentMethod]
	EBanks            Slot[[]domain.EBank]

	// TransferResponse is the transfer initiated in this session, if any.
	TransferResponse *domain.TransferResponse
	// PaymentMethod is the payment method chosen by the user.
	PaymentMethod *domain.PaymentMethod
}

// Recipient returns the found recipient or nil.
func (s State) Recipient() *domain.Recipient {
	return s.SearchRecipient.Result
}

// TransferID returns the identifier of the current transfer or an empty string.
func (s State) TransferID() string {
	if s.TransferResponse == nil {
		return ""
	}

	return s.TransferResponse.TransferID
}

// Busy reports whether any operation is in flight.
func (s State) Busy() bool {
	for _, c := range s.calls() {
		if c.Busy {
			return true
		}
	}

	return false
}

// Errors returns the errors currently set, keyed by operation name.
func (s State) Errors() map[string]error {
	errs := make(map[string]error)

	names := []string{
		"searchRecipient", "initTransfer", "authorizeTransfer", "resendOtp",
		"contacts", "addContact", "paymentMethods", "eBanks",
	}

	for i, c := range s.calls() {
		if c.Err != nil {
			errs[names[i]] = c.Err
		}
	}

	return errs
}

func (s State) calls() []CallState {
	return []CallState{
		s.SearchRecipient.CallState,
		s.InitTransfer,
		s.AuthorizeTransfer,
		s.ResendOtp,
		s.Contacts.CallState,
		s.AddContact,
		s.PaymentMethods.CallState,
		s.EBanks.CallState,
	}
}
