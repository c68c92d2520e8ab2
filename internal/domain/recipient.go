// Package domain provides definitions of all entities of the transfer flow.
package domain

// Recipient identifies a transfer counterparty.
type Recipient struct {
	UserID           string `json:"userId"`
	DisplayName      string `json:"displayName"`
	PaymentReference string `json:"paymentReference"`
	AccountNumber    string `json:"accountNumber"`
}

// IsSelf reports whether the recipient belongs to the acting user.
func (r Recipient) IsSelf(selfUserID string) bool {
	return r.UserID == selfUserID
}

// RecipientSection groups contacts under a section title.
type RecipientSection struct {
	Section string      `json:"section"`
	Items   []Recipient `json:"items"`
}
