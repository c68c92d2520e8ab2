package gateway

import (
	"encoding/json"

	"github.com/go-petr/pet-transfer/internal/domain"
)

// Custom field keys understood by the payment service.
const (
	fieldTransferPurpose = "TransferPurpose"
	fieldTransferNotes   = "TransferNotes"
	fieldOTP             = "OTP"
	fieldResendOTP       = "ReSendOTP"
)

const paymentContextPartyToParty = "PartyToParty"

type listResponse[T any] struct {
	Data []T `json:"data"`
}

type paymentListResponse[T any] struct {
	Data []T `json:"Data"`
}

type addContactRequest struct {
	PaymentReference string `json:"paymentReference"`
	AccountNumber    string `json:"accountNumber"`
	DisplayName      string `json:"displayName"`
}

type customField struct {
	Key   string `json:"Key"`
	Value string `json:"Value,omitempty"`
}

type supplementaryData struct {
	CustomFields []customField `json:"CustomFields"`
}

type instructedAmount struct {
	Amount   json.Number `json:"Amount"`
	Currency string      `json:"Currency"`
}

type debtorAccount struct {
	Identification string `json:"Identification"`
	SchemeName     string `json:"SchemeName"`
}

type creditorAccount struct {
	Identification string `json:"Identification"`
	SchemeName     string `json:"SchemeName"`
	Name           string `json:"Name"`
}

type creditorAccountExt struct {
	BankCode string `json:"BankCode,omitempty"`
}

type remittanceInformation struct {
	Unstructured string `json:"Unstructured,omitempty"`
}

type initiation struct {
	LocalInstrument       string                `json:"LocalInstrument"`
	InstructedAmount      instructedAmount      `json:"InstructedAmount"`
	DebtorAccount         debtorAccount         `json:"DebtorAccount"`
	CreditorAccount       creditorAccount       `json:"CreditorAccount"`
	CreditorAccountExt    creditorAccountExt    `json:"CreditorAccountExt"`
	RemittanceInformation remittanceInformation `json:"RemittanceInformation"`
	SupplementaryData     supplementaryData     `json:"SupplementaryData"`
}

type risk struct {
	PaymentContextCode string `json:"PaymentContextCode"`
}

type initPaymentRequest struct {
	Data struct {
		Initiation initiation `json:"Initiation"`
	} `json:"Data"`
	Risk risk `json:"Risk"`
}

type patchPaymentRequest struct {
	Data struct {
		Initiation struct {
			SupplementaryData supplementaryData `json:"SupplementaryData"`
		} `json:"Initiation"`
	} `json:"Data"`
}

type paymentResponse struct {
	Data struct {
		DomesticPaymentID    string `json:"DomesticPaymentId"`
		Status               string `json:"Status"`
		StatusUpdateDateTime string `json:"StatusUpdateDateTime"`
		Initiation           struct {
			SupplementaryData struct {
				PaymentServiceProviderExt struct {
					PspReference string `json:"PspReference"`
				} `json:"PaymentServiceProviderExt"`
			} `json:"SupplementaryData"`
		} `json:"Initiation"`
	} `json:"Data"`
}

func newInitPaymentRequest(arg domain.InitTransferParams) initPaymentRequest {
	fields := []customField{{Key: fieldTransferPurpose, Value: arg.Purpose}}
	if arg.OtherPurpose != "" {
		fields = append(fields, customField{Key: fieldTransferNotes, Value: arg.OtherPurpose})
	}

	var req initPaymentRequest

	req.Data.Initiation = initiation{
		LocalInstrument: arg.Provider,
		InstructedAmount: instructedAmount{
			Amount:   json.Number(arg.Amount.String()),
			Currency: arg.Currency,
		},
		DebtorAccount: debtorAccount{
			Identification: arg.Debtor.AccountID,
			SchemeName:     arg.Debtor.SchemeName,
		},
		CreditorAccount: creditorAccount{
			Identification: arg.Creditor.AccountID,
			SchemeName:     arg.Creditor.SchemeName,
			Name:           arg.Creditor.Name,
		},
		CreditorAccountExt:    creditorAccountExt{BankCode: arg.BankCode},
		RemittanceInformation: remittanceInformation{Unstructured: arg.Note},
		SupplementaryData:     supplementaryData{CustomFields: fields},
	}
	req.Risk.PaymentContextCode = paymentContextPartyToParty

	return req
}

func newPatchPaymentRequest(fields ...customField) patchPaymentRequest {
	var req patchPaymentRequest
	req.Data.Initiation.SupplementaryData.CustomFields = fields

	return req
}
