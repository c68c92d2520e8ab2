package domain

// Known payment provider names.
const (
	ProviderInstapay = "Instapay"
	ProviderPesonet  = "Pesonet"
	// ProviderUD is used for transfers between internal accounts.
	ProviderUD = "UD"
)

// PaymentProvider is a settlement network offered by a bank.
type PaymentProvider struct {
	Name        string `json:"name"`
	Code        string `json:"code"`
	Description string `json:"description"`
	IsActive    bool   `json:"isActive"`
	IsDefault   bool   `json:"isDefault"`
}

// EBank is an external bank or e-wallet reachable through payment providers.
type EBank struct {
	ID               string            `json:"id"`
	Name             string            `json:"name"`
	CreatedAt        string            `json:"createdAt"`
	PaymentProviders []PaymentProvider `json:"paymentProviders"`
}

// DefaultProvider returns the first provider that is both active and default.
func (b EBank) DefaultProvider() (PaymentProvider, bool) {
	for _, p := range b.PaymentProviders {
		if p.IsActive && p.IsDefault {
			return p, true
		}
	}

	return PaymentProvider{}, false
}

// Selectable reports whether the bank can be chosen as a transfer destination.
func (b EBank) Selectable() bool {
	_, ok := b.DefaultProvider()
	return ok
}

// Provider returns the bank provider with the given name.
func (b EBank) Provider(name string) (PaymentProvider, bool) {
	for _, p := range b.PaymentProviders {
		if p.Name == name {
			return p, true
		}
	}

	return PaymentProvider{}, false
}

// BankSection groups banks under a section title.
type BankSection struct {
	Section string  `json:"section"`
	Items   []EBank `json:"items"`
}
