// Package sessionstore keeps the asynchronous request bookkeeping of a transfer session.
package sessionstore

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/go-petr/pet-transfer/internal/domain"
)

// Gateway provides the remote operations needed by the store.
//
//go:generate mockgen -source store.go -destination store_mock.go -package sessionstore
type Gateway interface {
	SearchRecipient(ctx context.Context, mobileNumber, accountNumber string) ([]domain.Recipient, error)
	ListRecentContacts(ctx context.Context) ([]domain.Recipient, error)
	AddContact(ctx context.Context, paymentReference, accountNumber, displayName string) error
	InitTransfer(ctx context.Context, arg domain.InitTransferParams) (domain.TransferResponse, error)
	AuthorizeTransfer(ctx context.Context, transferID, otp string) (domain.Authorization, error)
	ResendOtp(ctx context.Context, transferID string) error
	ListPaymentMethods(ctx context.Context) ([]domain.PaymentMethod, error)
	ListEBanks(ctx context.Context) ([]domain.EBank, error)
	SchemeFor(provider string) string
}

// EventKind identifies what a store event reports.
type EventKind int

// Event kinds. EventStateChanged follows every reduction, the others are
// raised once per occurrence.
const (
	EventStateChanged EventKind = iota
	EventRecipientFound
	EventTransferResponseChanged
	EventAuthorizeStarted
	EventAuthorizeFailed
	EventOtpSent
	EventContactAdded
)

var eventNames = map[EventKind]string{
	EventStateChanged:            "stateChanged",
	EventRecipientFound:          "recipientFound",
	EventTransferResponseChanged: "transferResponseChanged",
	EventAuthorizeStarted:        "authorizeStarted",
	EventAuthorizeFailed:         "authorizeFailed",
	EventOtpSent:                 "otpSent",
	EventContactAdded:            "contactAdded",
}

func (k EventKind) String() string {
	if name, ok := eventNames[k]; ok {
		return name
	}

	return fmt.Sprintf("EventKind(%d)", int(k))
}

// Event carries the state right after the reduction that raised it.
type Event struct {
	Kind  EventKind
	State State
}

// Listener receives store events.
type Listener func(Event)

type subscription struct {
	id       uint64
	listener Listener
	kinds    map[EventKind]bool
}

// Store holds the slots of one transfer session.
//
// Store is safe for concurrent use. Listeners are invoked outside the store
// lock and may call back into the store.
type Store struct {
	gw  Gateway
	log zerolog.Logger

	mu     sync.Mutex
	state  State
	subs   []subscription
	nextID uint64
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger used when the context carries none.
func WithLogger(l zerolog.Logger) Option {
	return func(s *Store) {
		s.log = l
	}
}

// New returns an empty store calling gw.
func New(gw Gateway, opts ...Option) *Store {
	s := &Store{
		gw:  gw,
		log: zerolog.Nop(),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// State returns a snapshot of the current state.
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.state
}

// Subscribe registers listener for the given event kinds, or for every kind
// when none is given. The returned function removes the subscription.
func (s *Store) Subscribe(listener Listener, kinds ...EventKind) (unsubscribe func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	sub := subscription{id: s.nextID, listener: listener}

	if len(kinds) > 0 {
		sub.kinds = make(map[EventKind]bool, len(kinds))
		for _, k := range kinds {
			sub.kinds[k] = true
		}
	}

	s.subs = append(s.subs, sub)

	id := sub.id

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()

		for i := range s.subs {
			if s.subs[i].id == id {
				s.subs = append(s.subs[:i:i], s.subs[i+1:]...)
				return
			}
		}
	}
}

func (s *Store) dispatch(a action) {
	s.mu.Lock()

	next, kinds, changed := reduce(s.state, a)
	if !changed {
		s.mu.Unlock()
		return
	}

	s.state = next
	subs := s.subs

	s.mu.Unlock()

	for _, kind := range append([]EventKind{EventStateChanged}, kinds...) {
		ev := Event{Kind: kind, State: next}

		for _, sub := range subs {
			if sub.kinds == nil || sub.kinds[kind] {
				sub.listener(ev)
			}
		}
	}
}

func (s *Store) logger(ctx context.Context) *zerolog.Logger {
	if l := zerolog.Ctx(ctx); l.GetLevel() != zerolog.Disabled {
		return l
	}

	return &s.log
}

// SearchRecipient looks the recipient up by mobile number or, when mobileNumber
// is empty, by account number.
//
// A match belonging to selfUserID is rejected with domain.ErrDomainRejected.
func (s *Store) SearchRecipient(ctx context.Context, selfUserID, mobileNumber, accountNumber string) {
	l := s.logger(ctx)

	s.dispatch(searchRecipientStarted{})

	kind := "account"
	if mobileNumber != "" {
		kind = "mobile"
	}

	recipients, err := s.gw.SearchRecipient(ctx, mobileNumber, accountNumber)
	if err == nil && len(recipients) == 0 {
		err = domain.ErrNotFound
	}

	if err != nil {
		l.Info().Err(err).Str("by", kind).Msg("search recipient")

		if errors.Is(err, domain.ErrNotFound) {
			s.dispatch(searchRecipientFailed{err: domain.NewMessageError(domain.ErrNotFound, fmt.Sprintf(
				"%s number doesn't exist. Please try other %s number for you to proceed.", capitalize(kind), kind))})

			return
		}

		s.dispatch(searchRecipientFailed{err: domain.NewMessageError(domain.ErrTransport,
			"We're having difficulty trying to connect to our server. Please try again")})

		return
	}

	recipient := recipients[0]
	if recipient.IsSelf(selfUserID) {
		s.dispatch(searchRecipientFailed{err: domain.NewMessageError(domain.ErrDomainRejected, fmt.Sprintf(
			"You can't place your own %s number. Please try other account number.", kind))})

		return
	}

	s.dispatch(searchRecipientSucceeded{recipient: recipient})
}

func capitalize(s string) string {
	if s == "" {
		return s
	}

	return string(s[0]-'a'+'A') + s[1:]
}

// ClearRecipient forgets the found recipient.
func (s *Store) ClearRecipient() {
	s.dispatch(recipientCleared{})
}

// InitTransfer initiates the transfer and stores the fresh response.
func (s *Store) InitTransfer(ctx context.Context, req domain.TransferRequest) {
	l := s.logger(ctx)

	s.dispatch(initTransferStarted{})

	provider := req.ProviderName()

	arg := domain.InitTransferParams{
		Provider: provider,
		Amount:   req.Amount,
		Currency: req.Currency,
		Debtor: domain.AccountRef{
			AccountID:  req.DebtorAccountID,
			SchemeName: s.gw.SchemeFor(domain.ProviderUD),
		},
		Creditor: domain.AccountRef{
			AccountID:  req.CreditorAccountID,
			SchemeName: s.gw.SchemeFor(provider),
			Name:       req.CreditorName,
		},
		Purpose:      req.Purpose,
		OtherPurpose: req.OtherPurpose,
		Note:         req.Note,
	}

	if req.Provider != nil {
		arg.BankCode = req.Provider.Code
	}

	resp, err := s.gw.InitTransfer(ctx, arg)
	if err != nil {
		l.Error().Err(err).Str("provider", provider).Msg("init transfer")
		s.dispatch(initTransferFailed{err: err})

		return
	}

	l.Info().Str("transfer_id", resp.TransferID).Str("status", resp.Status).Msg("transfer initiated")
	s.dispatch(initTransferSucceeded{response: resp})
}

// AuthorizeTransfer submits otp for the current transfer.
//
// Without a current transfer it fails with domain.ErrNoActivePayment and no
// remote call is made.
func (s *Store) AuthorizeTransfer(ctx context.Context, otp string) {
	l := s.logger(ctx)

	transferID := s.State().TransferID()
	if transferID == "" {
		s.dispatch(authorizeFailed{err: domain.ErrNoActivePayment})
		return
	}

	s.dispatch(authorizeStarted{})

	auth, err := s.gw.AuthorizeTransfer(ctx, transferID, otp)
	if err != nil {
		l.Info().Err(err).Str("transfer_id", transferID).Msg("authorize transfer")
		s.dispatch(authorizeFailed{transferID: transferID, err: err})

		return
	}

	s.dispatch(authorizeSucceeded{transferID: transferID, authorization: auth})
}

// ResendOtp asks for a new one-time code for the current transfer.
func (s *Store) ResendOtp(ctx context.Context) {
	l := s.logger(ctx)

	transferID := s.State().TransferID()
	if transferID == "" {
		s.dispatch(resendOtpFailed{err: domain.ErrNoActivePayment})
		return
	}

	s.dispatch(resendOtpStarted{})

	if err := s.gw.ResendOtp(ctx, transferID); err != nil {
		l.Info().Err(err).Str("transfer_id", transferID).Msg("resend otp")
		s.dispatch(resendOtpFailed{transferID: transferID, err: err})

		return
	}

	s.dispatch(resendOtpSucceeded{transferID: transferID})
}

// ListContacts loads the recent contacts.
func (s *Store) ListContacts(ctx context.Context) {
	s.dispatch(contactsStarted{})

	contacts, err := s.gw.ListRecentContacts(ctx)
	if err != nil {
		s.logger(ctx).Error().Err(err).Msg("list contacts")
		s.dispatch(contactsFailed{err: err})

		return
	}

	s.dispatch(contactsSucceeded{contacts: contacts})
}

// AddContact saves a recipient as a contact.
func (s *Store) AddContact(ctx context.Context, paymentReference, accountNumber, displayName string) {
	s.dispatch(addContactStarted{})

	if err := s.gw.AddContact(ctx, paymentReference, accountNumber, displayName); err != nil {
		s.logger(ctx).Error().Err(err).Msg("add contact")
		s.dispatch(addContactFailed{err: err})

		return
	}

	s.dispatch(addContactSucceeded{})
}

// ListPaymentMethods loads the payment methods.
func (s *Store) ListPaymentMethods(ctx context.Context) {
	s.dispatch(paymentMethodsStarted{})

	methods, err := s.gw.ListPaymentMethods(ctx)
	if err != nil {
		s.logger(ctx).Error().Err(err).Msg("list payment methods")
		s.dispatch(paymentMethodsFailed{err: err})

		return
	}

	s.dispatch(paymentMethodsSucceeded{methods: methods})
}

// SetPaymentMethod records the payment method chosen by the user.
func (s *Store) SetPaymentMethod(method domain.PaymentMethod) {
	s.dispatch(paymentMethodSelected{method: method})
}

// ListEBanks loads the bank directory.
func (s *Store) ListEBanks(ctx context.Context) {
	s.dispatch(eBanksStarted{})

	banks, err := s.gw.ListEBanks(ctx)
	if err != nil {
		s.logger(ctx).Error().Err(err).Msg("list banks")
		s.dispatch(eBanksFailed{err: err})

		return
	}

	s.dispatch(eBanksSucceeded{banks: banks})
}

// ClearErrors clears every error slot that is set.
func (s *Store) ClearErrors() {
	s.dispatch(errorsCleared{})
}

// ClearTransferResponse discards the current transfer.
func (s *Store) ClearTransferResponse() {
	s.dispatch(transferResponseCleared{})
}
