// Package stepmachine sequences the steps of one transfer flow.
package stepmachine

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/go-petr/pet-transfer/internal/domain"
	"github.com/go-petr/pet-transfer/internal/sessionstore"
)

// Store provides the session operations needed by the machine.
type Store interface {
	State() sessionstore.State
	Subscribe(listener sessionstore.Listener, kinds ...sessionstore.EventKind) (unsubscribe func())
	InitTransfer(ctx context.Context, req domain.TransferRequest)
	AuthorizeTransfer(ctx context.Context, otp string)
	ResendOtp(ctx context.Context)
	AddContact(ctx context.Context, paymentReference, accountNumber, displayName string)
	ClearTransferResponse()
}

// Config describes the flow being started.
type Config struct {
	// Recipient is the internal recipient, if any.
	Recipient *domain.Recipient
	// EBank is the destination bank of an external transfer. A nil EBank
	// makes the flow an internal transfer.
	EBank *domain.EBank
	// IsFromContact reports whether the recipient was picked from the saved contacts.
	IsFromContact    bool
	UserAccountID    string
	CurrencyCode     string
	AvailableBalance decimal.NullDecimal
}

// Hooks are notifications raised by the machine. Any of them may be nil.
type Hooks struct {
	OnChangedStep   func(step domain.Step)
	OnChangedStatus func(status domain.TransferStatus)
	OnDone          func()
	OnCancel        func()
}

// Option configures a Machine.
type Option func(*Machine)

// WithLogger sets the machine logger.
func WithLogger(l zerolog.Logger) Option {
	return func(m *Machine) {
		m.log = l
	}
}

// AmountInput is the data submitted by the amount step.
type AmountInput struct {
	Amount decimal.Decimal
	// Provider names the payment provider of the bank. Empty selects the
	// bank default provider. Ignored for internal transfers.
	Provider string
	Note     string
}

// DetailsInput is the data submitted by the recipient details step.
type DetailsInput struct {
	AccountNumber string `validate:"required"`
	AccountName   string `validate:"required"`
	AccountID     string
	Purpose       string `validate:"required,purpose"`
	OtherPurpose  string `validate:"required_if=Purpose Others"`
}

// Snapshot is the observable state of a machine.
type Snapshot struct {
	Step          domain.Step            `json:"step"`
	Status        domain.TransferStatus  `json:"status"`
	Details       domain.TransferDetails `json:"details"`
	TransferType  domain.TransferType    `json:"transferType"`
	IsFromContact bool                   `json:"isFromContact"`
}

// Machine drives a transfer flow through its steps.
//
// Machine is safe for concurrent use. Hooks are invoked outside the machine lock.
type Machine struct {
	store    Store
	cfg      Config
	hooks    Hooks
	log      zerolog.Logger
	validate *validator.Validate

	mu          sync.Mutex
	step        domain.Step
	status      domain.TransferStatus
	details     domain.TransferDetails
	unsubscribe func()
	closed      bool
}

// New starts a flow in the amount step and subscribes it to store.
func New(store Store, cfg Config, hooks Hooks, opts ...Option) *Machine {
	m := &Machine{
		store:    store,
		cfg:      cfg,
		hooks:    hooks,
		log:      zerolog.Nop(),
		validate: newValidator(),
		step:     domain.StepInputAmount,
		status:   domain.TransferStatusProgressing,
		details:  initialDetails(cfg),
	}

	for _, opt := range opts {
		opt(m)
	}

	m.unsubscribe = store.Subscribe(m.observe,
		sessionstore.EventTransferResponseChanged,
		sessionstore.EventAuthorizeStarted,
		sessionstore.EventAuthorizeFailed,
	)

	return m
}

func initialDetails(cfg Config) domain.TransferDetails {
	d := domain.TransferDetails{
		CurrencyCode: cfg.CurrencyCode,
		TransferType: domain.TransferTypeUD,
	}

	if cfg.EBank != nil {
		d.TransferType = domain.TransferTypeOthers
		d.BankName = cfg.EBank.Name
	}

	if cfg.Recipient != nil {
		d.AccountNumber = cfg.Recipient.AccountNumber
		d.AccountName = cfg.Recipient.DisplayName
		d.AccountID = cfg.Recipient.PaymentReference
	}

	return d
}

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("purpose", func(fl validator.FieldLevel) bool {
		return domain.IsSupportedPurpose(fl.Field().String())
	})

	return v
}

// Snapshot returns the current step, status and details.
func (m *Machine) Snapshot() Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()

	return Snapshot{
		Step:          m.step,
		Status:        m.status,
		Details:       m.details,
		TransferType:  m.details.TransferType,
		IsFromContact: m.cfg.IsFromContact,
	}
}

// Step returns the current step.
func (m *Machine) Step() domain.Step {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.step
}

// Status returns the status sub-state.
func (m *Machine) Status() domain.TransferStatus {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.status
}

// Details returns the accumulated transfer details.
func (m *Machine) Details() domain.TransferDetails {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.details
}

func (m *Machine) internal() bool {
	return m.cfg.EBank == nil
}

// transition is the outcome of a locked state update to be announced once unlocked.
type transition struct {
	step   *domain.Step
	status *domain.TransferStatus
	cancel bool
}

func (m *Machine) announce(t transition) {
	if t.step != nil {
		m.log.Debug().Str("step", t.step.String()).Msg("step changed")

		if m.hooks.OnChangedStep != nil {
			m.hooks.OnChangedStep(*t.step)
		}
	}

	if t.status != nil {
		m.log.Debug().Str("status", string(*t.status)).Msg("status changed")

		if m.hooks.OnChangedStatus != nil {
			m.hooks.OnChangedStatus(*t.status)
		}
	}

	if t.cancel && m.hooks.OnCancel != nil {
		m.hooks.OnCancel()
	}
}

// setStepLocked moves the machine to step and returns what to announce.
// Entering the status step restarts the status sub-state at progressing.
func (m *Machine) setStepLocked(step domain.Step) transition {
	var t transition

	if m.step != step {
		m.step = step
		t.step = &step
	}

	if step == domain.StepStatus && t.step != nil {
		status := domain.TransferStatusProgressing
		m.status = status
		t.status = &status
	}

	return t
}

func (m *Machine) setStatusLocked(status domain.TransferStatus) transition {
	if m.status == status {
		return transition{}
	}

	m.status = status

	return transition{status: &status}
}

// SubmitAmount records the amount step and moves to the details step, or
// straight to review for internal transfers.
func (m *Machine) SubmitAmount(in AmountInput) error {
	m.mu.Lock()

	if m.step != domain.StepInputAmount {
		m.mu.Unlock()
		return fmt.Errorf("submit amount in step %s: %w", m.step, domain.ErrStepMismatch)
	}

	next, err := m.amountDetails(in)
	if err != nil {
		m.mu.Unlock()
		return err
	}

	m.details = m.details.Merge(next)

	step := domain.StepInitial
	if m.internal() {
		step = domain.StepReview
	}

	t := m.setStepLocked(step)
	m.mu.Unlock()

	m.announce(t)

	return nil
}

func (m *Machine) amountDetails(in AmountInput) (domain.TransferDetails, error) {
	method := m.store.State().PaymentMethod

	next := domain.TransferDetails{
		Amount:       in.Amount,
		CurrencyCode: m.cfg.CurrencyCode,
		Note:         strings.TrimSpace(in.Note),
	}

	providerName := domain.ProviderUD

	if !m.internal() {
		provider, ok := m.cfg.EBank.DefaultProvider()
		if in.Provider != "" {
			provider, ok = m.cfg.EBank.Provider(in.Provider)
		}

		if !ok {
			return domain.TransferDetails{}, domain.NewMessageError(domain.ErrProviderInactive,
				"Please select a transfer method")
		}

		if !provider.IsActive {
			return domain.TransferDetails{}, fmt.Errorf("provider %s: %w", provider.Name, domain.ErrProviderInactive)
		}

		providerName = provider.Name
		next.Provider = &provider
		next.BankName = m.cfg.EBank.Name
	}

	var charge *domain.PaymentCharge

	if method != nil {
		if c, ok := method.ChargeFor(providerName); ok {
			charge = &c
		}
	}

	if charge == nil && !m.internal() {
		return domain.TransferDetails{}, domain.NewMessageError(domain.ErrProviderInactive,
			"Please select a transfer method")
	}

	if err := domain.ValidateAmount(in.Amount, charge, m.cfg.AvailableBalance, m.cfg.CurrencyCode); err != nil {
		return domain.TransferDetails{}, err
	}

	next.Charge = charge

	return next, nil
}

// SubmitDetails records the recipient details of an external transfer and
// moves to review.
func (m *Machine) SubmitDetails(in DetailsInput) error {
	in.AccountNumber = strings.TrimSpace(in.AccountNumber)
	in.AccountName = strings.TrimSpace(in.AccountName)
	in.OtherPurpose = strings.TrimSpace(in.OtherPurpose)

	if err := m.validate.Struct(in); err != nil {
		return detailsError(err)
	}

	if in.Purpose != domain.PurposeOthers {
		in.OtherPurpose = ""
	}

	m.mu.Lock()

	if m.step != domain.StepInitial {
		m.mu.Unlock()
		return fmt.Errorf("submit details in step %s: %w", m.step, domain.ErrStepMismatch)
	}

	m.details = m.details.Merge(domain.TransferDetails{
		AccountNumber: in.AccountNumber,
		AccountName:   in.AccountName,
		AccountID:     in.AccountID,
		Purpose:       in.Purpose,
		OtherPurpose:  in.OtherPurpose,
	})

	t := m.setStepLocked(domain.StepReview)
	m.mu.Unlock()

	m.announce(t)

	return nil
}

var detailsMessages = map[string]string{
	"AccountNumber": "Please enter account number",
	"AccountName":   "Please enter account name",
	"Purpose":       "Please select a purpose",
	"OtherPurpose":  "Please enter purpose of transfer",
}

func detailsError(err error) error {
	if errs, ok := err.(validator.ValidationErrors); ok && len(errs) > 0 {
		if msg, ok := detailsMessages[errs[0].Field()]; ok {
			return domain.NewMessageError(domain.ErrInvalidDetails, msg)
		}
	}

	return fmt.Errorf("%w: %w", domain.ErrInvalidDetails, err)
}

// Confirm initiates the transfer from the reviewed details. The machine
// moves to authorize once the store reports the transfer response.
func (m *Machine) Confirm(ctx context.Context) error {
	m.mu.Lock()

	if m.step != domain.StepReview {
		m.mu.Unlock()
		return fmt.Errorf("confirm in step %s: %w", m.step, domain.ErrStepMismatch)
	}

	d := m.details
	m.mu.Unlock()

	m.store.InitTransfer(ctx, domain.TransferRequest{
		Amount:            d.Amount,
		Currency:          d.CurrencyCode,
		DebtorAccountID:   m.cfg.UserAccountID,
		CreditorAccountID: d.CreditorAccountID(),
		CreditorName:      d.AccountName,
		Provider:          d.Provider,
		Purpose:           purposeOf(d),
		OtherPurpose:      d.OtherPurpose,
		Note:              d.Note,
	})

	return nil
}

func purposeOf(d domain.TransferDetails) string {
	if d.Purpose == "" {
		return ""
	}

	return domain.ComposePurpose(d.Purpose, d.OtherPurpose)
}

// Authorize submits the one-time code. The machine moves to the status step
// as soon as the store reports the authorization in flight.
func (m *Machine) Authorize(ctx context.Context, otp string) error {
	if step := m.Step(); step != domain.StepAuthorize {
		return fmt.Errorf("authorize in step %s: %w", step, domain.ErrStepMismatch)
	}

	m.store.AuthorizeTransfer(ctx, otp)

	return nil
}

// ResendOtp asks for a new one-time code.
func (m *Machine) ResendOtp(ctx context.Context) error {
	if step := m.Step(); step != domain.StepAuthorize {
		return fmt.Errorf("resend otp in step %s: %w", step, domain.ErrStepMismatch)
	}

	m.store.ResendOtp(ctx)

	return nil
}

// ChangeStep moves the machine to step without any precondition.
func (m *Machine) ChangeStep(step domain.Step) {
	m.mu.Lock()
	t := m.setStepLocked(step)
	m.mu.Unlock()

	m.announce(t)
}

// BackToPrevious applies the back navigation table. From the amount step it
// leaves the flow through OnCancel; from the status step it does nothing.
func (m *Machine) BackToPrevious() {
	m.mu.Lock()

	var t transition

	switch m.step {
	case domain.StepInputAmount:
		t.cancel = true
	case domain.StepInitial:
		t = m.setStepLocked(domain.StepInputAmount)
	case domain.StepReview:
		if m.internal() {
			t = m.setStepLocked(domain.StepInputAmount)
		} else {
			t = m.setStepLocked(domain.StepInitial)
		}
	case domain.StepAuthorize:
		t = m.setStepLocked(domain.StepReview)
	}

	m.mu.Unlock()

	m.announce(t)
}

func (m *Machine) observe(ev sessionstore.Event) {
	m.mu.Lock()

	if m.closed {
		m.mu.Unlock()
		return
	}

	var t transition

	switch ev.Kind {
	case sessionstore.EventTransferResponseChanged:
		resp := ev.State.TransferResponse

		switch {
		case resp != nil && m.step == domain.StepReview:
			t = m.setStepLocked(domain.StepAuthorize)
		case resp != nil && m.step == domain.StepStatus && domain.IsAcceptedStatus(resp.Status):
			t = m.setStatusLocked(domain.TransferStatusSuccess)
		}

	case sessionstore.EventAuthorizeStarted:
		if m.step == domain.StepStatus {
			t = m.setStatusLocked(domain.TransferStatusProgressing)
		} else {
			t = m.setStepLocked(domain.StepStatus)
		}

	case sessionstore.EventAuthorizeFailed:
		if m.step == domain.StepStatus {
			t = m.setStatusLocked(domain.TransferStatusFailed)
		}
	}

	m.mu.Unlock()

	m.announce(t)
}

// Receipt returns the summary of the succeeded transfer.
func (m *Machine) Receipt() (domain.Receipt, error) {
	m.mu.Lock()
	step, status, d := m.step, m.status, m.details
	m.mu.Unlock()

	if step != domain.StepStatus || status != domain.TransferStatusSuccess {
		return domain.Receipt{}, fmt.Errorf("receipt in step %s/%s: %w", step, status, domain.ErrStepMismatch)
	}

	resp := m.store.State().TransferResponse
	if resp == nil {
		return domain.Receipt{}, domain.ErrNoActivePayment
	}

	r := domain.Receipt{
		TransferID:      resp.TransferID,
		ReferenceNo:     resp.ReferenceNo,
		TransactionDate: resp.TransactionDate,
		RecipientName:   d.AccountName,
		AccountNumber:   d.AccountNumber,
		BankName:        d.BankName,
		Amount:          d.Amount,
		Fee:             d.Fee(),
		Total:           d.Amount.Add(d.Fee()),
		CurrencyCode:    d.CurrencyCode,
		Note:            d.Note,
		Purpose:         d.Purpose,
		Message:         domain.SuccessMessage(d),
	}

	if d.Provider != nil {
		r.Provider = d.Provider.Name
	}

	return r, nil
}

// AddRecipientToContacts saves the recipient of a succeeded internal transfer
// as a contact. Recipients picked from the contacts are not added again.
func (m *Machine) AddRecipientToContacts(ctx context.Context) error {
	m.mu.Lock()
	step, status, d := m.step, m.status, m.details
	m.mu.Unlock()

	if step != domain.StepStatus || status != domain.TransferStatusSuccess || d.TransferType != domain.TransferTypeUD {
		return fmt.Errorf("add contact in step %s/%s: %w", step, status, domain.ErrStepMismatch)
	}

	if m.cfg.IsFromContact {
		return domain.NewMessageError(domain.ErrDomainRejected, "Recipient is already in your contacts")
	}

	if d.AccountID == "" || d.AccountNumber == "" || d.AccountName == "" {
		return domain.NewMessageError(domain.ErrInvalidDetails, "Recipient details are incomplete")
	}

	m.store.AddContact(ctx, d.AccountID, d.AccountNumber, d.AccountName)

	return nil
}

// Done finishes the flow through OnDone.
func (m *Machine) Done() {
	if m.hooks.OnDone != nil {
		m.hooks.OnDone()
	}
}

// Close detaches the machine from the store, resets it and discards the
// transfer response. Close is idempotent.
func (m *Machine) Close() {
	m.mu.Lock()

	if m.closed {
		m.mu.Unlock()
		return
	}

	m.closed = true
	m.step = domain.StepInputAmount
	m.status = domain.TransferStatusProgressing
	m.details = initialDetails(m.cfg)
	unsubscribe := m.unsubscribe

	m.mu.Unlock()

	unsubscribe()
	m.store.ClearTransferResponse()
}
