package usecase

import (
	"context"

	"github.com/google/uuid"

	"ishop/internal/domain/entity"
	"ishop/internal/domain/repository"
)

// CreateUserInput is the admin form for provisioning an account directly.
type CreateUserInput struct {
	FullName string `json:"fullName" validate:"required,min=2,max=64"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Phone    string `json:"phone" validate:"omitempty,e164"`
	Role     string `json:"role" validate:"omitempty,oneof=user admin"`
}

// UpdateUserInput is a partial update; absent fields keep their stored value.
type UpdateUserInput struct {
	FullName     *string `json:"fullName" validate:"omitempty,min=2,max=64"`
	Phone        *string `json:"phone" validate:"omitempty,e164"`
	ProfileImage *string `json:"profileImage"`
	Role         *string `json:"role" validate:"omitempty,oneof=user admin"`
	Active       *bool   `json:"active"`

	Details     *string `json:"details"`
	Governorate *string `json:"governorate"`
	City        *string `json:"city"`
	PostalCode  *string `json:"postalCode"`
}

// Fields flattens the provided values into an update map keyed by column.
func (in *UpdateUserInput) Fields() FieldMap {
	f := FieldMap{}
	f.SetString("full_name", in.FullName)
	f.SetString("phone", in.Phone)
	f.SetString("profile_image", in.ProfileImage)
	f.SetString("role", in.Role)
	f.SetBool("active_account", in.Active)
	f.SetString("address_details", in.Details)
	f.SetString("address_governorate", in.Governorate)
	f.SetString("address_city", in.City)
	f.SetString("address_postal_code", in.PostalCode)
	return f
}

// ChangePasswordInput rotates the caller's own password.
type ChangePasswordInput struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required,min=8"`
}

// UserUsecase covers admin account management plus the signed-in user's
// self-service operations.
type UserUsecase interface {
	GetUsers(ctx context.Context, query *repository.ListQuery) ([]*entity.User, *repository.Pagination, error)
	GetUser(ctx context.Context, id uuid.UUID) (*entity.User, error)
	CreateUser(ctx context.Context, input *CreateUserInput) (*entity.User, error)
	UpdateUser(ctx context.Context, id uuid.UUID, input *UpdateUserInput) (*entity.User, error)
	DeleteUser(ctx context.Context, id uuid.UUID) error

	// UpdateProfile applies a partial update to the caller's own record.
	// Role and account activation changes are ignored here.
	UpdateProfile(ctx context.Context, userID uuid.UUID, input *UpdateUserInput) (*entity.User, error)

	// ChangePassword verifies the current password, stores the new hash
	// and returns a fresh token since older ones become stale.
	ChangePassword(ctx context.Context, userID uuid.UUID, input *ChangePasswordInput) (*AuthOutput, error)

	// DeactivateAccount soft-disables the caller's own account.
	DeactivateAccount(ctx context.Context, userID uuid.UUID) error
}
