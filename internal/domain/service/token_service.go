package service

import (
	"time"

	"github.com/google/uuid"
)

// Claims is the verified content of a bearer credential: who it was
// issued to and when. IssuedAt is compared against the user's
// PasswordChangedAt to invalidate pre-reset sessions.
type Claims struct {
	UserID   uuid.UUID
	IssuedAt time.Time
}

// TokenService defines the interface for issuing and verifying the signed
// bearer credential. This abstracts the token format from the use cases.
type TokenService interface {
	// Generate creates a signed token for the given user.
	Generate(userID uuid.UUID) (string, error)

	// Validate verifies the signature and decodes the claims.
	Validate(token string) (*Claims, error)
}
