// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the core identity entity. It carries the credential material,
// the role used for authorization, the shipping address used at checkout,
// and the wishlist (an ordered set of product references).
type User struct {
	ID                uuid.UUID
	FullName          string
	Email             string // Unique, stored lowercased.
	Phone             string
	PasswordHash      string
	ProfileImage      string
	Address           *Address
	WishList          []uuid.UUID // Product IDs, insertion order, no duplicates.
	Role              Role
	ActiveAccount     bool // False until the sign-up code is verified.
	SignUpCode        *OneTimeCode
	PasswordReset     *PasswordResetCode
	PasswordChangedAt time.Time // Tokens issued before this instant are invalid.
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// Address is the shipping address stored on a user profile. All four
// fields are required before an order can be placed.
type Address struct {
	Details     string
	Governorate string
	City        string
	PostalCode  string
}

// IsComplete reports whether every required address field is present.
func (a *Address) IsComplete() bool {
	return a != nil &&
		a.Details != "" &&
		a.Governorate != "" &&
		a.City != "" &&
		a.PostalCode != ""
}

// OneTimeCode holds the hashed form of a short-lived verification code.
// Only the SHA-256 hash is ever persisted; the plaintext goes out by email.
type OneTimeCode struct {
	CodeHash  string
	ExpiresAt time.Time
}

// Expired reports whether the code is past its expiry at the given instant.
func (c *OneTimeCode) Expired(now time.Time) bool {
	return c == nil || !c.ExpiresAt.After(now)
}

// PasswordResetCode extends OneTimeCode with the verified flag that gates
// the actual password change step.
type PasswordResetCode struct {
	OneTimeCode
	Verified bool
}

// InWishList reports whether the product is already on the user's wishlist.
func (u *User) InWishList(productID uuid.UUID) bool {
	for _, id := range u.WishList {
		if id == productID {
			return true
		}
	}

	return false
}

// TokenIssuedBeforePasswordChange reports whether a token issued at the
// given time predates the most recent password change. The comparison
// floors PasswordChangedAt to the second because JWT iat claims carry
// second precision.
func (u *User) TokenIssuedBeforePasswordChange(issuedAt time.Time) bool {
	return issuedAt.Unix() < u.PasswordChangedAt.Unix()
}
