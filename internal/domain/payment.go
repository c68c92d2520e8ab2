package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// DefaultMaxAmount bounds the amount when no charge applies.
var DefaultMaxAmount = decimal.New(1, 12)

// PaymentCharge bounds the legal amount range and the fee for a provider.
type PaymentCharge struct {
	Provider string          `json:"Provider"`
	Fee      decimal.Decimal `json:"Fee"`
	Min      decimal.Decimal `json:"Min"`
	Max      decimal.Decimal `json:"Max"`
}

// PaymentMethod is a transfer channel.
type PaymentMethod struct {
	LocalInstrument string          `json:"LocalInstrument"`
	Name            string          `json:"Name"`
	Description     string          `json:"Description"`
	Group           string          `json:"Group"`
	IsActive        bool            `json:"IsActive"`
	Charges         []PaymentCharge `json:"Charges"`
	Reason          string          `json:"Reason,omitempty"`
}

// ChargeFor returns the charge matching the provider name.
func (m PaymentMethod) ChargeFor(provider string) (PaymentCharge, bool) {
	for _, c := range m.Charges {
		if c.Provider == provider {
			return c, true
		}
	}

	return PaymentCharge{}, false
}

// AmountLimits returns the inclusive range an amount must fall into.
//
// Without a charge the range is [0, DefaultMaxAmount]. A known available
// balance further caps the upper bound.
func AmountLimits(charge *PaymentCharge, availableBalance decimal.NullDecimal) (lower, upper decimal.Decimal) {
	lower, upper = decimal.Zero, DefaultMaxAmount

	if charge != nil {
		lower = charge.Min.Round(2)
		if !charge.Max.IsZero() {
			upper = charge.Max.Round(2)
		}
	}

	if availableBalance.Valid && availableBalance.Decimal.LessThan(upper) {
		upper = availableBalance.Decimal
	}

	return lower, upper
}

// ValidateAmount checks the amount against the charge of the chosen provider.
func ValidateAmount(amount decimal.Decimal, charge *PaymentCharge, availableBalance decimal.NullDecimal, currency string) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return NewMessageError(ErrInvalidAmount, "Please enter amount")
	}

	lower, upper := AmountLimits(charge, availableBalance)

	if amount.LessThan(lower) {
		return NewMessageError(ErrInvalidAmount,
			fmt.Sprintf("Allowed minimum amount to send is %s", FormatMoney(lower, currency)))
	}

	if amount.GreaterThan(upper) {
		return NewMessageError(ErrInvalidAmount,
			fmt.Sprintf("Allowed maximum amount to send is %s", FormatMoney(upper, currency)))
	}

	return nil
}

// FormatMoney renders an amount with its currency code.
func FormatMoney(amount decimal.Decimal, currency string) string {
	return fmt.Sprintf("%s %s", currency, amount.StringFixed(2))
}
