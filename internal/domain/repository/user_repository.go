package repository

import (
	"context"

	"ishop/internal/domain/entity"
	"ishop/internal/errors"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the standard operations for user persistence.
// The application layer will depend on this interface, not the concrete
// implementation.
type UserRepository interface {
	CRUDRepository[entity.User]

	// FindByEmail retrieves a single user by their case-folded email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// Update persists the full user entity, including address, wishlist and
	// one-time code fields.
	Update(ctx context.Context, user *entity.User) error

	// DeleteByEmail removes the user with the given email. Used to discard
	// stale unverified accounts on re-sign-up.
	DeleteByEmail(ctx context.Context, email string) error
}
