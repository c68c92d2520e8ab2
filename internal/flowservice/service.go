// Package flowservice manages the transfer flow sessions of the host application.
package flowservice

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/go-petr/pet-transfer/internal/catalog"
	"github.com/go-petr/pet-transfer/internal/domain"
	"github.com/go-petr/pet-transfer/internal/sessionstore"
	"github.com/go-petr/pet-transfer/internal/stepmachine"
)

// DefaultSessionTTL is the idle time after which a session expires.
const DefaultSessionTTL = 30 * time.Minute

// Notifier receives the step and status changes of the flows.
//
//go:generate mockgen -source service.go -destination service_mock.go -package flowservice
type Notifier interface {
	StepChanged(sessionID, userID string, step domain.Step)
	StatusChanged(sessionID, userID string, status domain.TransferStatus)
}

// Config holds the flow service settings.
type Config struct {
	CurrencyCode string
	SessionTTL   time.Duration
}

// Service facilitates the transfer flow sessions.
type Service struct {
	gw       sessionstore.Gateway
	catalog  *catalog.Catalog
	notifier Notifier
	cfg      Config
	log      zerolog.Logger
	now      func() time.Time

	mu       sync.Mutex
	sessions map[uuid.UUID]*session
}

type session struct {
	domain.Session

	store        *sessionstore.Store
	unsubscribe  func()
	contactAdded atomic.Bool

	mu      sync.Mutex
	machine *stepmachine.Machine
}

// New returns a flow service sharing gw across its sessions.
func New(gw sessionstore.Gateway, c *catalog.Catalog, n Notifier, cfg Config, log zerolog.Logger) *Service {
	if cfg.SessionTTL <= 0 {
		cfg.SessionTTL = DefaultSessionTTL
	}

	if c == nil {
		c = catalog.New("")
	}

	return &Service{
		gw:       gw,
		catalog:  c,
		notifier: n,
		cfg:      cfg,
		log:      log,
		now:      time.Now,
		sessions: make(map[uuid.UUID]*session),
	}
}

// View is the observable state of a session.
type View struct {
	Session domain.Session
	State   sessionstore.State
	Flow    *stepmachine.Snapshot
}

// view reads the session under the service lock as lookups extend it.
func (s *Service) view(sess *session) View {
	s.mu.Lock()
	v := View{Session: sess.Session}
	s.mu.Unlock()

	v.State = sess.store.State()

	sess.mu.Lock()
	m := sess.machine
	sess.mu.Unlock()

	if m != nil {
		snap := m.Snapshot()
		v.Flow = &snap
	}

	return v
}

// Create starts a new session owned by userID.
func (s *Service) Create(ctx context.Context, userID string) (View, error) {
	now := s.now()

	sess := &session{
		Session: domain.Session{
			ID:        uuid.New(),
			UserID:    userID,
			CreatedAt: now,
			ExpiresAt: now.Add(s.cfg.SessionTTL),
		},
		store: sessionstore.New(s.gw, sessionstore.WithLogger(s.log)),
	}

	sess.unsubscribe = sess.store.Subscribe(func(sessionstore.Event) {
		sess.contactAdded.Store(true)
	}, sessionstore.EventContactAdded)

	var expired []*session

	s.mu.Lock()
	for id, other := range s.sessions {
		if other.Expired(now) {
			delete(s.sessions, id)
			expired = append(expired, other)
		}
	}
	s.sessions[sess.ID] = sess
	s.mu.Unlock()

	for _, other := range expired {
		other.close()
	}

	zerolog.Ctx(ctx).Info().Str("session_id", sess.ID.String()).Msg("session created")

	return s.view(sess), nil
}

func (s *Service) lookup(ctx context.Context, userID, sessionID string) (*session, error) {
	l := zerolog.Ctx(ctx)

	id, err := uuid.Parse(sessionID)
	if err != nil {
		l.Info().Err(err).Send()
		return nil, domain.ErrSessionNotFound
	}

	now := s.now()

	s.mu.Lock()

	sess, ok := s.sessions[id]
	if !ok {
		s.mu.Unlock()
		return nil, domain.ErrSessionNotFound
	}

	if sess.UserID != userID {
		s.mu.Unlock()
		l.Info().Str("session_id", sessionID).Err(domain.ErrSessionOwner).Send()

		return nil, domain.ErrSessionOwner
	}

	if sess.Expired(now) {
		delete(s.sessions, id)
		s.mu.Unlock()
		sess.close()

		return nil, domain.ErrExpiredSession
	}

	sess.ExpiresAt = now.Add(s.cfg.SessionTTL)
	s.mu.Unlock()

	return sess, nil
}

// refreshContacts lists the contacts again if one was added since the last call.
func (sess *session) refreshContacts(ctx context.Context) {
	if sess.contactAdded.Swap(false) {
		sess.store.ListContacts(ctx)
	}
}

func (sess *session) close() {
	sess.mu.Lock()
	m := sess.machine
	sess.machine = nil
	sess.mu.Unlock()

	if m != nil {
		m.Close()
	}

	sess.unsubscribe()
}

// Get returns the session view.
func (s *Service) Get(ctx context.Context, userID, sessionID string) (View, error) {
	sess, err := s.lookup(ctx, userID, sessionID)
	if err != nil {
		return View{}, err
	}

	return s.view(sess), nil
}

// Delete closes the session and its flow.
func (s *Service) Delete(ctx context.Context, userID, sessionID string) error {
	sess, err := s.lookup(ctx, userID, sessionID)
	if err != nil {
		return err
	}

	s.mu.Lock()
	delete(s.sessions, sess.ID)
	s.mu.Unlock()

	sess.close()

	return nil
}

// Close closes every session.
func (s *Service) Close() {
	s.mu.Lock()
	sessions := s.sessions
	s.sessions = make(map[uuid.UUID]*session)
	s.mu.Unlock()

	for _, sess := range sessions {
		sess.close()
	}
}

// ClearErrors resets the errors of every call of the session.
func (s *Service) ClearErrors(ctx context.Context, userID, sessionID string) (View, error) {
	sess, err := s.lookup(ctx, userID, sessionID)
	if err != nil {
		return View{}, err
	}

	sess.store.ClearErrors()

	return s.view(sess), nil
}

// SearchContacts refreshes the saved contacts and groups the ones matching key.
func (s *Service) SearchContacts(ctx context.Context, userID, sessionID, key string) ([]domain.RecipientSection, error) {
	sess, err := s.lookup(ctx, userID, sessionID)
	if err != nil {
		return nil, err
	}

	sess.store.ListContacts(ctx)

	st := sess.store.State()
	if st.Contacts.Err != nil {
		return nil, st.Contacts.Err
	}

	return s.catalog.SearchContacts(st.Contacts.Result, key), nil
}

// AddContactParams holds the contact to save.
type AddContactParams struct {
	PaymentReference string
	AccountNumber    string
	DisplayName      string
}

// AddContact saves a contact. The contacts are refreshed once it is saved.
func (s *Service) AddContact(ctx context.Context, userID, sessionID string, arg AddContactParams) error {
	sess, err := s.lookup(ctx, userID, sessionID)
	if err != nil {
		return err
	}

	sess.store.AddContact(ctx, arg.PaymentReference, arg.AccountNumber, arg.DisplayName)
	sess.refreshContacts(ctx)

	return sess.store.State().AddContact.Err
}

// SearchRecipient looks up a recipient by mobile or account number.
func (s *Service) SearchRecipient(ctx context.Context, userID, sessionID, mobileNumber, accountNumber string) (domain.Recipient, error) {
	sess, err := s.lookup(ctx, userID, sessionID)
	if err != nil {
		return domain.Recipient{}, err
	}

	sess.store.SearchRecipient(ctx, userID, mobileNumber, accountNumber)

	st := sess.store.State()
	if st.SearchRecipient.Err != nil {
		return domain.Recipient{}, st.SearchRecipient.Err
	}

	if st.SearchRecipient.Result == nil {
		return domain.Recipient{}, domain.ErrNotFound
	}

	return *st.SearchRecipient.Result, nil
}

// ListPaymentMethods refreshes the payment methods.
func (s *Service) ListPaymentMethods(ctx context.Context, userID, sessionID string) ([]domain.PaymentMethod, error) {
	sess, err := s.lookup(ctx, userID, sessionID)
	if err != nil {
		return nil, err
	}

	sess.store.ListPaymentMethods(ctx)

	st := sess.store.State()
	if st.PaymentMethods.Err != nil {
		return nil, st.PaymentMethods.Err
	}

	return st.PaymentMethods.Result, nil
}

// SetPaymentMethod selects one of the listed payment methods by name.
func (s *Service) SetPaymentMethod(ctx context.Context, userID, sessionID, name string) (domain.PaymentMethod, error) {
	sess, err := s.lookup(ctx, userID, sessionID)
	if err != nil {
		return domain.PaymentMethod{}, err
	}

	for _, m := range sess.store.State().PaymentMethods.Result {
		if m.Name == name || m.LocalInstrument == name {
			sess.store.SetPaymentMethod(m)
			return m, nil
		}
	}

	return domain.PaymentMethod{}, fmt.Errorf("payment method %q: %w", name, domain.ErrNotFound)
}

// SearchEBanks refreshes the banks and groups the ones matching key. With
// selectable set only the banks that can receive a transfer are kept.
func (s *Service) SearchEBanks(ctx context.Context, userID, sessionID, key string, selectable bool) ([]domain.BankSection, error) {
	sess, err := s.lookup(ctx, userID, sessionID)
	if err != nil {
		return nil, err
	}

	sess.store.ListEBanks(ctx)

	st := sess.store.State()
	if st.EBanks.Err != nil {
		return nil, st.EBanks.Err
	}

	banks := st.EBanks.Result
	if selectable {
		banks = s.catalog.SelectableEBanks(banks)
	}

	return s.catalog.SearchEBanks(banks, key), nil
}

// StartFlowParams describes the transfer flow to start.
type StartFlowParams struct {
	// BankID selects a listed bank and makes the transfer external.
	BankID string
	// Recipient of an internal transfer. When nil the searched recipient is used.
	Recipient        *domain.Recipient
	IsFromContact    bool
	UserAccountID    string
	AvailableBalance decimal.NullDecimal
	// CurrencyCode overrides the configured currency when set.
	CurrencyCode string
}

// StartFlow starts a transfer flow, closing the previous one.
func (s *Service) StartFlow(ctx context.Context, userID, sessionID string, arg StartFlowParams) (View, error) {
	l := zerolog.Ctx(ctx)

	sess, err := s.lookup(ctx, userID, sessionID)
	if err != nil {
		return View{}, err
	}

	cfg, err := s.flowConfig(sess, userID, arg)
	if err != nil {
		l.Info().Err(err).Send()
		return View{}, err
	}

	sess.mu.Lock()
	prev := sess.machine
	sess.machine = nil
	sess.mu.Unlock()

	if prev != nil {
		prev.Close()
	}

	var m *stepmachine.Machine

	m = stepmachine.New(sess.store, cfg, s.hooks(sess, func() *stepmachine.Machine { return m }),
		stepmachine.WithLogger(s.log.With().Str("session_id", sess.ID.String()).Logger()))

	sess.mu.Lock()
	displaced := sess.machine
	sess.machine = m
	sess.mu.Unlock()

	if displaced != nil {
		displaced.Close()
	}

	l.Info().Str("session_id", sessionID).Str("transfer_type", string(m.Snapshot().TransferType)).Msg("flow started")

	return s.view(sess), nil
}

func (s *Service) flowConfig(sess *session, userID string, arg StartFlowParams) (stepmachine.Config, error) {
	st := sess.store.State()

	cfg := stepmachine.Config{
		IsFromContact:    arg.IsFromContact,
		UserAccountID:    arg.UserAccountID,
		CurrencyCode:     s.cfg.CurrencyCode,
		AvailableBalance: arg.AvailableBalance,
	}

	if arg.CurrencyCode != "" {
		cfg.CurrencyCode = arg.CurrencyCode
	}

	if arg.BankID != "" {
		for i := range st.EBanks.Result {
			b := st.EBanks.Result[i]
			if b.ID != arg.BankID {
				continue
			}

			if !b.Selectable() {
				return stepmachine.Config{}, fmt.Errorf("bank %s: %w", b.Name, domain.ErrProviderInactive)
			}

			cfg.EBank = &b

			return cfg, nil
		}

		return stepmachine.Config{}, fmt.Errorf("bank %s: %w", arg.BankID, domain.ErrNotFound)
	}

	r := arg.Recipient
	if r == nil {
		r = st.Recipient()
	}

	if r == nil {
		return stepmachine.Config{}, domain.NewMessageError(domain.ErrInvalidDetails, "Please select a recipient")
	}

	if r.IsSelf(userID) {
		return stepmachine.Config{}, domain.NewMessageError(domain.ErrDomainRejected, "You can't transfer to your own account")
	}

	recipient := *r
	cfg.Recipient = &recipient

	return cfg, nil
}

// hooks publishes the flow changes and ends the flow on done or cancel.
func (s *Service) hooks(sess *session, machine func() *stepmachine.Machine) stepmachine.Hooks {
	sessionID, userID := sess.ID.String(), sess.UserID

	end := func() {
		m := machine()

		sess.mu.Lock()
		if sess.machine != m {
			sess.mu.Unlock()
			return
		}
		sess.machine = nil
		sess.mu.Unlock()

		m.Close()
	}

	return stepmachine.Hooks{
		OnChangedStep: func(step domain.Step) {
			if s.notifier != nil {
				s.notifier.StepChanged(sessionID, userID, step)
			}
		},
		OnChangedStatus: func(status domain.TransferStatus) {
			if s.notifier != nil {
				s.notifier.StatusChanged(sessionID, userID, status)
			}
		},
		OnDone:   end,
		OnCancel: end,
	}
}

func (s *Service) flow(ctx context.Context, userID, sessionID string) (*session, *stepmachine.Machine, error) {
	sess, err := s.lookup(ctx, userID, sessionID)
	if err != nil {
		return nil, nil, err
	}

	sess.mu.Lock()
	m := sess.machine
	sess.mu.Unlock()

	if m == nil {
		return nil, nil, domain.ErrNoActiveFlow
	}

	return sess, m, nil
}

// SubmitAmount submits the amount step.
func (s *Service) SubmitAmount(ctx context.Context, userID, sessionID string, in stepmachine.AmountInput) (View, error) {
	sess, m, err := s.flow(ctx, userID, sessionID)
	if err != nil {
		return View{}, err
	}

	if err := m.SubmitAmount(in); err != nil {
		zerolog.Ctx(ctx).Info().Err(err).Send()
		return View{}, err
	}

	return s.view(sess), nil
}

// SubmitDetails submits the recipient details step.
func (s *Service) SubmitDetails(ctx context.Context, userID, sessionID string, in stepmachine.DetailsInput) (View, error) {
	sess, m, err := s.flow(ctx, userID, sessionID)
	if err != nil {
		return View{}, err
	}

	if err := m.SubmitDetails(in); err != nil {
		zerolog.Ctx(ctx).Info().Err(err).Send()
		return View{}, err
	}

	return s.view(sess), nil
}

// Confirm initiates the reviewed transfer.
func (s *Service) Confirm(ctx context.Context, userID, sessionID string) (View, error) {
	sess, m, err := s.flow(ctx, userID, sessionID)
	if err != nil {
		return View{}, err
	}

	if err := m.Confirm(ctx); err != nil {
		return View{}, err
	}

	if err := sess.store.State().InitTransfer.Err; err != nil {
		return View{}, err
	}

	return s.view(sess), nil
}

// Authorize submits the one-time code. A rejected code is reported through
// the failed flow status.
func (s *Service) Authorize(ctx context.Context, userID, sessionID, otp string) (View, error) {
	sess, m, err := s.flow(ctx, userID, sessionID)
	if err != nil {
		return View{}, err
	}

	if err := m.Authorize(ctx, otp); err != nil {
		return View{}, err
	}

	return s.view(sess), nil
}

// ResendOtp asks for a new one-time code.
func (s *Service) ResendOtp(ctx context.Context, userID, sessionID string) (View, error) {
	sess, m, err := s.flow(ctx, userID, sessionID)
	if err != nil {
		return View{}, err
	}

	if err := m.ResendOtp(ctx); err != nil {
		return View{}, err
	}

	if err := sess.store.State().ResendOtp.Err; err != nil {
		return View{}, err
	}

	return s.view(sess), nil
}

// Back goes one step back. Going back from the amount step ends the flow.
func (s *Service) Back(ctx context.Context, userID, sessionID string) (View, error) {
	sess, m, err := s.flow(ctx, userID, sessionID)
	if err != nil {
		return View{}, err
	}

	m.BackToPrevious()

	return s.view(sess), nil
}

// ChangeStep moves the flow to step.
func (s *Service) ChangeStep(ctx context.Context, userID, sessionID string, step domain.Step) (View, error) {
	sess, m, err := s.flow(ctx, userID, sessionID)
	if err != nil {
		return View{}, err
	}

	m.ChangeStep(step)

	return s.view(sess), nil
}

// Receipt returns the receipt of the succeeded transfer.
func (s *Service) Receipt(ctx context.Context, userID, sessionID string) (domain.Receipt, error) {
	_, m, err := s.flow(ctx, userID, sessionID)
	if err != nil {
		return domain.Receipt{}, err
	}

	return m.Receipt()
}

// AddRecipientToContacts saves the recipient of the succeeded transfer.
func (s *Service) AddRecipientToContacts(ctx context.Context, userID, sessionID string) (View, error) {
	sess, m, err := s.flow(ctx, userID, sessionID)
	if err != nil {
		return View{}, err
	}

	if err := m.AddRecipientToContacts(ctx); err != nil {
		return View{}, err
	}

	sess.refreshContacts(ctx)

	if err := sess.store.State().AddContact.Err; err != nil {
		return View{}, err
	}

	return s.view(sess), nil
}

// Done ends the flow.
func (s *Service) Done(ctx context.Context, userID, sessionID string) (View, error) {
	sess, m, err := s.flow(ctx, userID, sessionID)
	if err != nil {
		return View{}, err
	}

	m.Done()

	return s.view(sess), nil
}
