package domain

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestEBankSelectable(t *testing.T) {
	testCases := []struct {
		name      string
		providers []PaymentProvider
		want      bool
	}{
		{
			name:      "ActiveDefault",
			providers: []PaymentProvider{{Name: ProviderInstapay, IsActive: true, IsDefault: true}},
			want:      true,
		},
		{
			name:      "InactiveDefault",
			providers: []PaymentProvider{{Name: ProviderInstapay, IsActive: false, IsDefault: true}},
			want:      false,
		},
		{
			name: "ActiveNotDefault",
			providers: []PaymentProvider{
				{Name: ProviderInstapay, IsActive: true, IsDefault: false},
				{Name: ProviderPesonet, IsActive: false, IsDefault: true},
			},
			want: false,
		},
		{
			name: "SecondProviderQualifies",
			providers: []PaymentProvider{
				{Name: ProviderInstapay, IsActive: false, IsDefault: true},
				{Name: ProviderPesonet, IsActive: true, IsDefault: true},
			},
			want: true,
		},
		{
			name: "NoProviders",
			want: false,
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			bank := EBank{ID: "1", Name: "Bank", PaymentProviders: tc.providers}
			require.Equal(t, tc.want, bank.Selectable())
		})
	}
}

func TestValidateAmount(t *testing.T) {
	charge := &PaymentCharge{
		Provider: ProviderInstapay,
		Fee:      decimal.NewFromInt(15),
		Min:      decimal.NewFromInt(10),
		Max:      decimal.NewFromInt(50_000),
	}

	testCases := []struct {
		name    string
		amount  string
		charge  *PaymentCharge
		balance decimal.NullDecimal
		wantMsg string
	}{
		{name: "OK", amount: "100", charge: charge},
		{name: "AtMin", amount: "10", charge: charge},
		{name: "AtMax", amount: "50000", charge: charge},
		{name: "Zero", amount: "0", charge: charge, wantMsg: "Please enter amount"},
		{name: "BelowMin", amount: "9.99", charge: charge, wantMsg: "Allowed minimum amount to send is PHP 10.00"},
		{name: "AboveMax", amount: "50000.01", charge: charge, wantMsg: "Allowed maximum amount to send is PHP 50000.00"},
		{
			name:    "AboveBalance",
			amount:  "600",
			charge:  charge,
			balance: decimal.NewNullDecimal(decimal.NewFromInt(500)),
			wantMsg: "Allowed maximum amount to send is PHP 500.00",
		},
		{name: "NoChargeNoBounds", amount: "999999"},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			err := ValidateAmount(decimal.RequireFromString(tc.amount), tc.charge, tc.balance, "PHP")
			if tc.wantMsg == "" {
				require.NoError(t, err)
				return
			}

			require.EqualError(t, err, tc.wantMsg)
			require.True(t, errors.Is(err, ErrInvalidAmount))
		})
	}
}

func TestChargeFor(t *testing.T) {
	method := PaymentMethod{
		LocalInstrument: "Instapay",
		IsActive:        true,
		Charges: []PaymentCharge{
			{Provider: ProviderInstapay, Fee: decimal.NewFromInt(15)},
			{Provider: ProviderPesonet, Fee: decimal.NewFromInt(10)},
		},
	}

	got, ok := method.ChargeFor(ProviderPesonet)
	require.True(t, ok)
	require.True(t, got.Fee.Equal(decimal.NewFromInt(10)))

	_, ok = method.ChargeFor("Unknown")
	require.False(t, ok)
}

func TestTransferDetailsMerge(t *testing.T) {
	provider := &PaymentProvider{Name: ProviderPesonet, Code: "PSN", IsActive: true, IsDefault: true}
	charge := &PaymentCharge{Provider: ProviderPesonet, Fee: decimal.NewFromInt(10)}

	initial := TransferDetails{BankName: "BDO", TransferType: TransferTypeOthers}
	afterAmount := initial.Merge(TransferDetails{
		Amount:       decimal.NewFromInt(250),
		CurrencyCode: "PHP",
		Charge:       charge,
		Note:         "rent",
		Provider:     provider,
	})
	afterDetails := afterAmount.Merge(TransferDetails{
		AccountNumber: "001122",
		AccountName:   "Juan Dela Cruz",
		Purpose:       PurposePayment,
	})

	want := TransferDetails{
		AccountNumber: "001122",
		AccountName:   "Juan Dela Cruz",
		Amount:        decimal.NewFromInt(250),
		CurrencyCode:  "PHP",
		Purpose:       PurposePayment,
		Note:          "rent",
		Charge:        charge,
		BankName:      "BDO",
		Provider:      provider,
		TransferType:  TransferTypeOthers,
	}

	if diff := cmp.Diff(want, afterDetails); diff != "" {
		t.Errorf("Merge returned unexpected diff: %s", diff)
	}

	require.Empty(t, initial.Note, "merge must not modify the receiver")
	require.Equal(t, "001122", afterDetails.CreditorAccountID())
}

func TestTransferResponseApply(t *testing.T) {
	resp := TransferResponse{TransferID: "pay-1", Status: StatusPending, TransactionDate: "2022-01-01"}

	got := resp.Apply(Authorization{
		Status:          StatusAcceptedSettlementInProcess,
		TransactionDate: "2022-01-02",
		ReferenceNo:     "REF-1",
	})

	require.Equal(t, TransferResponse{
		TransferID:      "pay-1",
		Status:          StatusAcceptedSettlementInProcess,
		TransactionDate: "2022-01-02",
		ReferenceNo:     "REF-1",
	}, got)
}

func TestComposePurpose(t *testing.T) {
	require.Equal(t, PurposePayment, ComposePurpose(PurposePayment, "ignored"))
	require.Equal(t, "Others\ntuition", ComposePurpose(PurposeOthers, " tuition "))
}

func TestSuccessMessage(t *testing.T) {
	instant := "Your money is on its way and should arrive instantly."

	require.Equal(t, instant, SuccessMessage(TransferDetails{TransferType: TransferTypeUD}))
	require.Equal(t, instant, SuccessMessage(TransferDetails{
		TransferType: TransferTypeOthers,
		Provider:     &PaymentProvider{Name: ProviderInstapay},
	}))
	require.Equal(t,
		"Your money is on its way and recipient should receive it within the next banking day",
		SuccessMessage(TransferDetails{
			TransferType: TransferTypeOthers,
			Provider:     &PaymentProvider{Name: ProviderPesonet, Description: "within the next banking day"},
		}))
	require.Equal(t,
		"Your money is on its way and recipient should receive it later",
		SuccessMessage(TransferDetails{TransferType: TransferTypeOthers}))
}

func TestStepJSON(t *testing.T) {
	step, err := ParseStep("review")
	require.NoError(t, err)
	require.Equal(t, StepReview, step)

	_, err = ParseStep("unknown")
	require.Error(t, err)

	b, err := StepAuthorize.MarshalJSON()
	require.NoError(t, err)
	require.Equal(t, `"authorize"`, string(b))
}
