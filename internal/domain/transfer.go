package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

// TransferType tells internal transfers from transfers to external banks.
type TransferType string

// Supported transfer types.
const (
	TransferTypeUD     TransferType = "UD"
	TransferTypeOthers TransferType = "OTHERS"
)

// Transfer purposes offered to the user.
const (
	PurposeFundTransfer = "Fund Transfer"
	PurposePayment      = "Payment"
	PurposeOthers       = "Others"
)

// Purposes holds all the supported transfer purposes.
var Purposes = []string{PurposeFundTransfer, PurposePayment, PurposeOthers}

// IsSupportedPurpose returns true if the purpose is one of Purposes.
func IsSupportedPurpose(purpose string) bool {
	for _, p := range Purposes {
		if p == purpose {
			return true
		}
	}

	return false
}

// ComposePurpose returns the purpose sent to the payment service.
func ComposePurpose(purpose, otherPurpose string) string {
	if purpose == PurposeOthers {
		return purpose + "\n" + strings.TrimSpace(otherPurpose)
	}

	return purpose
}

// Statuses of a transfer that mean the payment service accepted it.
const (
	StatusAcceptedSettlementInProcess = "AcceptedSettlementInProcess"
	StatusPending                     = "Pending"
)

// IsAcceptedStatus reports whether the server status means the transfer went through.
func IsAcceptedStatus(status string) bool {
	return status == StatusAcceptedSettlementInProcess || status == StatusPending
}

// TransferDetails accumulates the data entered across the flow steps.
type TransferDetails struct {
	AccountNumber string           `json:"accountNumber,omitempty"`
	AccountID     string           `json:"accountId,omitempty"`
	AccountName   string           `json:"accountName,omitempty"`
	Amount        decimal.Decimal  `json:"amount"`
	CurrencyCode  string           `json:"currencyCode,omitempty"`
	Purpose       string           `json:"purpose,omitempty"`
	Note          string           `json:"note,omitempty"`
	OtherPurpose  string           `json:"otherPurpose,omitempty"`
	Charge        *PaymentCharge   `json:"charge,omitempty"`
	BankName      string           `json:"bankName,omitempty"`
	Provider      *PaymentProvider `json:"provider,omitempty"`
	TransferType  TransferType     `json:"transferType,omitempty"`
}

// Merge returns a copy of d with every non-zero field of next applied on top.
func (d TransferDetails) Merge(next TransferDetails) TransferDetails {
	merged := d

	setString(&merged.AccountNumber, next.AccountNumber)
	setString(&merged.AccountID, next.AccountID)
	setString(&merged.AccountName, next.AccountName)
	setString(&merged.CurrencyCode, next.CurrencyCode)
	setString(&merged.Purpose, next.Purpose)
	setString(&merged.Note, next.Note)
	setString(&merged.OtherPurpose, next.OtherPurpose)
	setString(&merged.BankName, next.BankName)

	if !next.Amount.IsZero() {
		merged.Amount = next.Amount
	}

	if next.Charge != nil {
		merged.Charge = next.Charge
	}

	if next.Provider != nil {
		merged.Provider = next.Provider
	}

	if next.TransferType != "" {
		merged.TransferType = next.TransferType
	}

	return merged
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

// CreditorAccountID returns the identification used for the creditor account.
func (d TransferDetails) CreditorAccountID() string {
	if d.AccountID != "" {
		return d.AccountID
	}

	return d.AccountNumber
}

// Fee returns the transfer fee of the chosen charge.
func (d TransferDetails) Fee() decimal.Decimal {
	if d.Charge == nil {
		return decimal.Zero
	}

	return d.Charge.Fee
}

// TransferResponse is the server side state of an initiated transfer.
type TransferResponse struct {
	TransferID      string `json:"transferId"`
	Status          string `json:"status"`
	TransactionDate string `json:"transactionDate"`
	ReferenceNo     string `json:"referenceNo,omitempty"`
}

// Authorization is the result of authorizing a transfer with a one-time code.
type Authorization struct {
	Status          string `json:"status"`
	TransactionDate string `json:"transactionDate"`
	ReferenceNo     string `json:"referenceNo"`
}

// Apply merges the authorization result into the response keeping its TransferID.
func (r TransferResponse) Apply(a Authorization) TransferResponse {
	r.Status = a.Status
	r.TransactionDate = a.TransactionDate
	r.ReferenceNo = a.ReferenceNo

	return r
}

// AccountRef identifies an account within a scheme.
type AccountRef struct {
	AccountID  string
	SchemeName string
	Name       string
}

// InitTransferParams is the input data for initiating a transfer on the payment service.
type InitTransferParams struct {
	Provider     string
	Amount       decimal.Decimal
	Currency     string
	Debtor       AccountRef
	Creditor     AccountRef
	BankCode     string
	Purpose      string
	OtherPurpose string
	Note         string
}

// TransferRequest is the input data for initiating a transfer from the flow.
//
// Schemes are resolved from Provider by the session store.
type TransferRequest struct {
	Amount            decimal.Decimal
	Currency          string
	DebtorAccountID   string
	CreditorAccountID string
	CreditorName      string
	Provider          *PaymentProvider
	Purpose           string
	OtherPurpose      string
	Note              string
}

// ProviderName returns the name of the provider or ProviderUD when none is set.
func (r TransferRequest) ProviderName() string {
	if r.Provider == nil {
		return ProviderUD
	}

	return r.Provider.Name
}

// Receipt summarizes a successful transfer for sharing.
type Receipt struct {
	TransferID      string          `json:"transferId"`
	ReferenceNo     string          `json:"referenceNo"`
	TransactionDate string          `json:"transactionDate"`
	RecipientName   string          `json:"recipientName"`
	AccountNumber   string          `json:"accountNumber"`
	BankName        string          `json:"bankName,omitempty"`
	Provider        string          `json:"provider,omitempty"`
	Amount          decimal.Decimal `json:"amount"`
	Fee             decimal.Decimal `json:"fee"`
	Total           decimal.Decimal `json:"total"`
	CurrencyCode    string          `json:"currencyCode"`
	Note            string          `json:"note,omitempty"`
	Purpose         string          `json:"purpose,omitempty"`
	Message         string          `json:"message"`
}

// SuccessMessage returns the message shown once the transfer went through.
func SuccessMessage(d TransferDetails) string {
	if d.TransferType == TransferTypeUD || (d.Provider != nil && d.Provider.Name == ProviderInstapay) {
		return "Your money is on its way and should arrive instantly."
	}

	when := "later"
	if d.Provider != nil && d.Provider.Description != "" {
		when = d.Provider.Description
	}

	return "Your money is on its way and recipient should receive it " + when
}
