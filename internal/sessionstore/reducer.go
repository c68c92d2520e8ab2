package sessionstore

import (
	"github.com/go-petr/pet-transfer/internal/domain"
)

type action interface {
	isAction()
}

type (
	searchRecipientStarted   struct{}
	searchRecipientSucceeded struct{ recipient domain.Recipient }
	searchRecipientFailed    struct{ err error }
	recipientCleared         struct{}

	initTransferStarted   struct{}
	initTransferSucceeded struct{ response domain.TransferResponse }
	initTransferFailed    struct{ err error }

	authorizeStarted   struct{}
	authorizeSucceeded struct {
		transferID    string
		authorization domain.Authorization
	}
	authorizeFailed struct {
		transferID string
		err        error
	}

	resendOtpStarted   struct{}
	resendOtpSucceeded struct{ transferID string }
	resendOtpFailed    struct {
		transferID string
		err        error
	}

	contactsStarted   struct{}
	contactsSucceeded struct{ contacts []domain.Recipient }
	contactsFailed    struct{ err error }

	addContactStarted   struct{}
	addContactSucceeded struct{}
	addContactFailed    struct{ err error }

	paymentMethodsStarted   struct{}
	paymentMethodsSucceeded struct{ methods []domain.PaymentMethod }
	paymentMethodsFailed    struct{ err error }
	paymentMethodSelected   struct{ method domain.PaymentMethod }

	eBanksStarted   struct{}
	eBanksSucceeded struct{ banks []domain.EBank }
	eBanksFailed    struct{ err error }

	errorsCleared           struct{}
	transferResponseCleared struct{}
)

func (searchRecipientStarted) isAction()   {}
func (searchRecipientSucceeded) isAction() {}
func (searchRecipientFailed) isAction()    {}
func (recipientCleared) isAction()         {}
func (initTransferStarted) isAction()      {}
func (initTransferSucceeded) isAction()    {}
func (initTransferFailed) isAction()       {}
func (authorizeStarted) isAction()         {}
func (authorizeSucceeded) isAction()       {}
func (authorizeFailed) isAction()          {}
func (resendOtpStarted) isAction()         {}
func (resendOtpSucceeded) isAction()       {}
func (resendOtpFailed) isAction()          {}
func (contactsStarted) isAction()          {}
func (contactsSucceeded) isAction()        {}
func (contactsFailed) isAction()           {}
func (addContactStarted) isAction()        {}
func (addContactSucceeded) isAction()      {}
func (addContactFailed) isAction()         {}
func (paymentMethodsStarted) isAction()    {}
func (paymentMethodsSucceeded) isAction()  {}
func (paymentMethodsFailed) isAction()     {}
func (paymentMethodSelected) isAction()    {}
func (eBanksStarted) isAction()            {}
func (eBanksSucceeded) isAction()          {}
func (eBanksFailed) isAction()             {}
func (errorsCleared) isAction()            {}
func (transferResponseCleared) isAction()  {}

var (
	busy = CallState{Busy: true}
	idle = CallState{}
)

func failed(err error) CallState {
	return CallState{Err: err}
}

// reduce returns the state following a, the one-shot events a raises and
// false when a left the state untouched.
func reduce(s State, a action) (State, []EventKind, bool) {
	switch a := a.(type) {
	case searchRecipientStarted:
		s.SearchRecipient.CallState = busy

	case searchRecipientSucceeded:
		r := a.recipient
		s.SearchRecipient = Slot[*domain.Recipient]{Result: &r}

		return s, []EventKind{EventRecipientFound}, true

	case searchRecipientFailed:
		s.SearchRecipient = Slot[*domain.Recipient]{CallState: failed(a.err)}

	case recipientCleared:
		s.SearchRecipient.Result = nil

	case initTransferStarted:
		s.InitTransfer = busy

	case initTransferSucceeded:
		r := a.response
		s.InitTransfer = idle
		s.AuthorizeTransfer = idle
		s.ResendOtp = idle
		s.TransferResponse = &r

		return s, []EventKind{EventTransferResponseChanged}, true

	case initTransferFailed:
		s.InitTransfer = failed(a.err)

	case authorizeStarted:
		s.AuthorizeTransfer = busy

		return s, []EventKind{EventAuthorizeStarted}, true

	case authorizeSucceeded:
		if s.TransferID() != a.transferID {
			return s, nil, false
		}

		s.AuthorizeTransfer = idle
		r := s.TransferResponse.Apply(a.authorization)
		s.TransferResponse = &r

		return s, []EventKind{EventTransferResponseChanged}, true

	case authorizeFailed:
		if a.transferID != "" && s.TransferID() != a.transferID {
			return s, nil, false
		}

		s.AuthorizeTransfer = failed(a.err)

		return s, []EventKind{EventAuthorizeFailed}, true

	case resendOtpStarted:
		s.ResendOtp = busy

	case resendOtpSucceeded:
		if s.TransferID() != a.transferID {
			return s, nil, false
		}

		s.ResendOtp = idle

		return s, []EventKind{EventOtpSent}, true

	case resendOtpFailed:
		if a.transferID != "" && s.TransferID() != a.transferID {
			return s, nil, false
		}

		s.ResendOtp = failed(a.err)

	case contactsStarted:
		s.Contacts.CallState = busy

	case contactsSucceeded:
		s.Contacts = Slot[[]domain.Recipient]{Result: a.contacts}

	case contactsFailed:
		s.Contacts.CallState = failed(a.err)

	case addContactStarted:
		s.AddContact = busy

	case addContactSucceeded:
		s.AddContact = idle

		return s, []EventKind{EventContactAdded}, true

	case addContactFailed:
		s.AddContact = failed(a.err)

	case paymentMethodsStarted:
		s.PaymentMethods.CallState = busy

	case paymentMethodsSucceeded:
		s.PaymentMethods = Slot[[]domain.PaymentMethod]{Result: a.methods}

	case paymentMethodsFailed:
		s.PaymentMethods.CallState = failed(a.err)

	case paymentMethodSelected:
		m := a.method
		s.PaymentMethod = &m

	case eBanksStarted:
		s.EBanks.CallState = busy

	case eBanksSucceeded:
		s.EBanks = Slot[[]domain.EBank]{Result: a.banks}

	case eBanksFailed:
		s.EBanks.CallState = failed(a.err)

	case errorsCleared:
		if len(s.Errors()) == 0 {
			return s, nil, false
		}

		s.SearchRecipient.Err = nil
		s.InitTransfer.Err = nil
		s.AuthorizeTransfer.Err = nil
		s.ResendOtp.Err = nil
		s.Contacts.Err = nil
		s.AddContact.Err = nil
		s.PaymentMethods.Err = nil
		s.EBanks.Err = nil

	case transferResponseCleared:
		if s.TransferResponse == nil {
			return s, nil, false
		}

		s.TransferResponse = nil
		s.AuthorizeTransfer = idle
		s.ResendOtp = idle

		return s, []EventKind{EventTransferResponseChanged}, true
	}

	return s, nil, true
}
