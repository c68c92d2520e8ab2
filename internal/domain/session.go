package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	// ErrSessionNotFound indicates that the session is not found.
	ErrSessionNotFound = errors.New("session not found")
	// ErrSessionOwner indicates that the session belongs to another user.
	ErrSessionOwner = errors.New("incorrect session user")
	// ErrExpiredSession indicates that the session was idle for too long.
	ErrExpiredSession = errors.New("expired session")
	// ErrNoActiveFlow indicates that the session has no transfer flow started.
	ErrNoActiveFlow = errors.New("no active transfer flow")
)

// Session is a host session of the transfer flow. It owns the session store
// and the active flow, if any.
type Session struct {
	ID        uuid.UUID `json:"id"`
	UserID    string    `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Expired reports whether the session is expired at now.
func (s Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && now.After(s.ExpiresAt)
}
