// Package gateway translates transfer operations into calls to the remote payment,
// contact and bank directory services.
package gateway

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/go-petr/pet-transfer/internal/domain"
	"github.com/go-petr/pet-transfer/internal/restclient"
)

// DefaultPageSize is the page size used to list contacts and banks.
const DefaultPageSize = 1000

// Client provides the REST operations needed by the gateway.
//
//go:generate mockgen -source gateway.go -destination gateway_mock.go -package gateway
type Client interface {
	Get(ctx context.Context, path string, query url.Values, out any) error
	Post(ctx context.Context, path string, body, out any) error
	Patch(ctx context.Context, path string, body, out any) error
}

// Clients holds the injected remote service clients. A nil client makes
// every operation relying on it fail with domain.ErrNotConfigured.
type Clients struct {
	Payment Client
	Contact Client
	Bank    Client
}

// Schemes maps providers to account scheme names.
type Schemes struct {
	UD       string
	Pesonet  string
	Instapay string
}

// Options tunes the gateway requests.
type Options struct {
	ContactsPageSize int
	BanksPageSize    int
}

// Gateway exposes one method per remote capability.
type Gateway struct {
	payment Client
	contact Client
	bank    Client
	schemes Schemes
	opts    Options
}

// New returns a gateway over the given clients.
func New(clients Clients, schemes Schemes, opts Options) *Gateway {
	if opts.ContactsPageSize <= 0 {
		opts.ContactsPageSize = DefaultPageSize
	}

	if opts.BanksPageSize <= 0 {
		opts.BanksPageSize = DefaultPageSize
	}

	return &Gateway{
		payment: clients.Payment,
		contact: clients.Contact,
		bank:    clients.Bank,
		schemes: schemes,
		opts:    opts,
	}
}

// Schemes returns the configured scheme table.
func (g *Gateway) Schemes() Schemes {
	return g.schemes
}

// SchemeFor returns the account scheme of the given provider.
func (g *Gateway) SchemeFor(provider string) string {
	switch provider {
	case domain.ProviderPesonet:
		return g.schemes.Pesonet
	case domain.ProviderInstapay:
		return g.schemes.Instapay
	default:
		return g.schemes.UD
	}
}

func notConfigured(name string) error {
	return fmt.Errorf("%s: %w", name, domain.ErrNotConfigured)
}

// classify maps a client failure into domain.ErrNotFound or domain.ErrTransport.
func classify(op string, err error) error {
	var restErr *restclient.Error
	if errors.As(err, &restErr) && restErr.NotFound() {
		return fmt.Errorf("%s: %w: %w", op, domain.ErrNotFound, err)
	}

	return fmt.Errorf("%s: %w: %w", op, domain.ErrTransport, err)
}

// SearchRecipient looks a beneficiary up by mobile or account number.
func (g *Gateway) SearchRecipient(ctx context.Context, mobileNumber, accountNumber string) ([]domain.Recipient, error) {
	l := zerolog.Ctx(ctx)

	if g.contact == nil {
		return nil, notConfigured("contact client")
	}

	query := url.Values{}
	if mobileNumber != "" {
		query.Set("mobileNumber", mobileNumber)
	}

	if accountNumber != "" {
		query.Set("accountNumber", accountNumber)
	}

	var res listResponse[domain.Recipient]
	if err := g.contact.Get(ctx, "beneficiaries", query, &res); err != nil {
		l.Info().Err(err).Msg("search beneficiary")
		return nil, classify("search beneficiary", err)
	}

	return res.Data, nil
}

// ListRecentContacts returns the saved contacts of the user.
func (g *Gateway) ListRecentContacts(ctx context.Context) ([]domain.Recipient, error) {
	l := zerolog.Ctx(ctx)

	if g.contact == nil {
		return nil, notConfigured("contact client")
	}

	query := url.Values{"pageSize": []string{strconv.Itoa(g.opts.ContactsPageSize)}}

	var res listResponse[domain.Recipient]
	if err := g.contact.Get(ctx, "contacts", query, &res); err != nil {
		l.Error().Err(err).Msg("list contacts")
		return nil, classify("list contacts", err)
	}

	return res.Data, nil
}

// AddContact saves a recipient as a contact.
func (g *Gateway) AddContact(ctx context.Context, paymentReference, accountNumber, displayName string) error {
	l := zerolog.Ctx(ctx)

	if g.contact == nil {
		return notConfigured("contact client")
	}

	req := addContactRequest{
		PaymentReference: paymentReference,
		AccountNumber:    accountNumber,
		DisplayName:      displayName,
	}

	if err := g.contact.Post(ctx, "contacts", req, nil); err != nil {
		l.Error().Err(err).Msg("add contact")
		return classify("add contact", err)
	}

	return nil
}

// InitTransfer creates a payment and returns its server assigned identity.
func (g *Gateway) InitTransfer(ctx context.Context, arg domain.InitTransferParams) (domain.TransferResponse, error) {
	l := zerolog.Ctx(ctx)

	if g.payment == nil {
		return domain.TransferResponse{}, notConfigured("payment client")
	}

	var res paymentResponse
	if err := g.payment.Post(ctx, "payments", newInitPaymentRequest(arg), &res); err != nil {
		l.Error().Err(err).Str("provider", arg.Provider).Msg("init transfer")
		return domain.TransferResponse{}, classify("init transfer", err)
	}

	return domain.TransferResponse{
		TransferID:      res.Data.DomesticPaymentID,
		Status:          res.Data.Status,
		TransactionDate: res.Data.StatusUpdateDateTime,
	}, nil
}

// AuthorizeTransfer submits the one-time code of the payment.
func (g *Gateway) AuthorizeTransfer(ctx context.Context, transferID, otp string) (domain.Authorization, error) {
	l := zerolog.Ctx(ctx)

	if g.payment == nil {
		return domain.Authorization{}, notConfigured("payment client")
	}

	req := newPatchPaymentRequest(customField{Key: fieldOTP, Value: otp})

	var res paymentResponse
	if err := g.payment.Patch(ctx, "payments/"+url.PathEscape(transferID), req, &res); err != nil {
		l.Info().Err(err).Str("transfer_id", transferID).Msg("authorize transfer")
		return domain.Authorization{}, classify("authorize transfer", err)
	}

	return domain.Authorization{
		Status:          res.Data.Status,
		TransactionDate: res.Data.StatusUpdateDateTime,
		ReferenceNo:     res.Data.Initiation.SupplementaryData.PaymentServiceProviderExt.PspReference,
	}, nil
}

// ResendOtp asks the payment service to send the one-time code again.
func (g *Gateway) ResendOtp(ctx context.Context, transferID string) error {
	l := zerolog.Ctx(ctx)

	if g.payment == nil {
		return notConfigured("payment client")
	}

	req := newPatchPaymentRequest(customField{Key: fieldResendOTP, Value: "true"})

	if err := g.payment.Patch(ctx, "payments/"+url.PathEscape(transferID), req, nil); err != nil {
		l.Info().Err(err).Str("transfer_id", transferID).Msg("resend otp")
		return classify("resend otp", err)
	}

	return nil
}

// ListPaymentMethods returns the available transfer channels.
func (g *Gateway) ListPaymentMethods(ctx context.Context) ([]domain.PaymentMethod, error) {
	l := zerolog.Ctx(ctx)

	if g.payment == nil {
		return nil, notConfigured("payment client")
	}

	var res paymentListResponse[domain.PaymentMethod]
	if err := g.payment.Get(ctx, "paymentMethods", nil, &res); err != nil {
		l.Error().Err(err).Msg("list payment methods")
		return nil, classify("list payment methods", err)
	}

	return res.Data, nil
}

// ListEBanks returns the bank directory.
func (g *Gateway) ListEBanks(ctx context.Context) ([]domain.EBank, error) {
	l := zerolog.Ctx(ctx)

	if g.bank == nil {
		return nil, notConfigured("bank information client")
	}

	query := url.Values{"pageSize": []string{strconv.Itoa(g.opts.BanksPageSize)}}

	var res listResponse[domain.EBank]
	if err := g.bank.Get(ctx, "banks", query, &res); err != nil {
		l.Error().Err(err).Msg("list banks")
		return nil, classify("list banks", err)
	}

	return res.Data, nil
}
