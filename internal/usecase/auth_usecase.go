package usecase

import (
	"context"

	"ishop/internal/domain/entity"
)

// SignUpInput carries the registration form.
type SignUpInput struct {
	FullName string `json:"fullName" validate:"required,min=2,max=64"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Phone    string `json:"phone" validate:"omitempty,e164"`
}

// VerifyCodeInput carries an email plus the one-time code sent to it.
type VerifyCodeInput struct {
	Email string `json:"email" validate:"required,email"`
	Code  string `json:"code" validate:"required,len=6,numeric"`
}

// SignInInput carries the credentials for an email/password login.
type SignInInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// ForgetPasswordInput names the account requesting a reset code.
type ForgetPasswordInput struct {
	Email string `json:"email" validate:"required,email"`
}

// ResetPasswordInput sets a new password after the reset code was verified.
type ResetPasswordInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

// AuthOutput is returned by every operation that establishes a session.
type AuthOutput struct {
	User  *entity.User
	Token string
}

// AuthUsecase implements registration, login and the password reset flow.
type AuthUsecase interface {
	// SignUp stores an inactive account and emails a six digit
	// verification code to the given address.
	SignUp(ctx context.Context, input *SignUpInput) error

	// VerifySignUpCode activates the account matching the code and signs
	// the user in.
	VerifySignUpCode(ctx context.Context, input *VerifyCodeInput) (*AuthOutput, error)

	// SignIn authenticates an active account by email and password.
	SignIn(ctx context.Context, input *SignInInput) (*AuthOutput, error)

	// ForgetPassword emails a six digit reset code to the account.
	ForgetPassword(ctx context.Context, input *ForgetPasswordInput) error

	// VerifyResetCode marks the pending reset code as verified.
	VerifyResetCode(ctx context.Context, input *VerifyCodeInput) error

	// ResetPassword replaces the password once the code was verified and
	// signs the user in with a fresh token.
	ResetPassword(ctx context.Context, input *ResetPasswordInput) (*AuthOutput, error)

	// Authenticate resolves a bearer token to its live user record,
	// rejecting tokens issued before the last password change.
	Authenticate(ctx context.Context, token string) (*entity.User, error)
}
