// Package tokenpkg creates and verifies the access tokens of the host application.
package tokenpkg

import "time"

const minSecretKeySize = 32

// Maker is an interface for managing tokens.
type Maker interface {
	// CreateToken creates a new token for a specific user and duration.
	CreateToken(userID string, duration time.Duration) (string, *Payload, error)
	// VerifyToken checks if the token is valid or not.
	VerifyToken(token string) (*Payload, error)
}

// New returns the maker of tokenType, paseto unless "jwt" is asked for.
func New(tokenType, symmetricKey string) (Maker, error) {
	if tokenType == "jwt" {
		return NewJWTMaker(symmetricKey)
	}

	return NewPasetoMaker(symmetricKey)
}
