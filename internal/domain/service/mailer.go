package service

import "context"

// Mailer delivers one-time verification codes by email. Delivery is a
// collaborated external effect: when it fails, the caller must roll back
// the stored code so no valid-but-undelivered code persists.
type Mailer interface {
	// SendSignUpCode delivers the plaintext sign-up verification code.
	SendSignUpCode(ctx context.Context, to, fullName, code string) error

	// SendPasswordResetCode delivers the plaintext password reset code.
	SendPasswordResetCode(ctx context.Context, to, fullName, code string) error
}
