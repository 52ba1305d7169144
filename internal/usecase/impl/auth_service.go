package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"go.uber.org/fx"

	"ishop/config"
	deliverycontext "ishop/internal/delivery/context"
	"ishop/internal/domain/entity"
	domainerrors "ishop/internal/domain/errors"
	"ishop/internal/domain/repository"
	"ishop/internal/domain/service"
	"ishop/internal/errors"
	"ishop/internal/usecase"
)

type authService struct {
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	mailer       service.Mailer
	codeTTL      time.Duration
	logger       *slog.Logger
}

// AuthServiceParams holds dependencies for the auth service, injected by Fx.
type AuthServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Mailer       service.Mailer
	Config       *config.Config
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	codeTTL := 10 * time.Minute
	if params.Config != nil && params.Config.Auth != nil && params.Config.Auth.CodeTTL > 0 {
		codeTTL = params.Config.Auth.CodeTTL
	}

	return &authService{
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		mailer:       params.Mailer,
		codeTTL:      codeTTL,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// SignUp stores an inactive account and emails a verification code. A
// previous unverified registration under the same email is discarded so
// the address can be claimed again; an active account blocks re-use.
func (srv *authService) SignUp(ctx context.Context, input *usecase.SignUpInput) error {
	email := strings.ToLower(input.Email)

	existing, err := srv.userRepo.FindByEmail(ctx, email)
	switch {
	case err == nil:
		if existing.ActiveAccount {
			return domainerrors.ErrEmailAlreadyRegistered
		}
		if err := srv.userRepo.DeleteByEmail(ctx, email); err != nil {
			return errors.Wrap(err, "failed to discard stale unverified account")
		}
	case !errors.Is(err, repository.ErrUserNotFound):
		return errors.Wrap(err, "failed to look up email")
	}

	passwordHash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return errors.Wrap(err, "failed to hash password")
	}

	code, err := generateCode()
	if err != nil {
		return err
	}

	user := &entity.User{
		FullName:     input.FullName,
		Email:        email,
		Phone:        input.Phone,
		PasswordHash: passwordHash,
		Role:         entity.RoleUser,
		SignUpCode: &entity.OneTimeCode{
			CodeHash:  hashCode(code),
			ExpiresAt: time.Now().Add(srv.codeTTL),
		},
		PasswordChangedAt: time.Now(),
	}

	if err := srv.userRepo.Insert(ctx, user); err != nil {
		return errors.Wrap(err, "failed to create account")
	}

	// Mail delivery is part of the operation: an account whose code never
	// arrived must not linger, so a send failure rolls the account back.
	if err := srv.mailer.SendSignUpCode(ctx, user.Email, user.FullName, code); err != nil {
		srv.log(ctx).Error("Failed to send sign-up code", slog.String("email", user.Email), slog.Any("error", err))
		if dErr := srv.userRepo.DeleteByEmail(ctx, user.Email); dErr != nil {
			srv.log(ctx).Error("Failed to roll back account after mail failure", slog.String("email", user.Email), slog.Any("error", dErr))
		}

		return domainerrors.ErrEmailDelivery
	}

	srv.log(ctx).Info("Sign-up code sent", slog.String("email", user.Email))

	return nil
}

// VerifySignUpCode activates the account matching the code and signs the
// user in. Wrong email, wrong code and expired code are indistinguishable
// to the caller.
func (srv *authService) VerifySignUpCode(ctx context.Context, input *usecase.VerifyCodeInput) (*usecase.AuthOutput, error) {
	user, err := srv.userRepo.FindByEmail(ctx, strings.ToLower(input.Email))
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrCodeInvalidOrExpired
		}

		return nil, errors.Wrap(err, "failed to look up email")
	}

	if user.SignUpCode == nil ||
		!codeMatches(input.Code, user.SignUpCode.CodeHash) ||
		user.SignUpCode.Expired(time.Now()) {
		return nil, domainerrors.ErrCodeInvalidOrExpired
	}

	user.ActiveAccount = true
	user.SignUpCode = nil
	if err := srv.userRepo.Update(ctx, user); err != nil {
		return nil, errors.Wrap(err, "failed to activate account")
	}

	token, err := srv.tokenService.Generate(user.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate token")
	}

	srv.log(ctx).Info("Account activated", slog.Any("userID", user.ID))

	return &usecase.AuthOutput{User: user, Token: token}, nil
}

// SignIn authenticates an active account by email and password.
func (srv *authService) SignIn(ctx context.Context, input *usecase.SignInInput) (*usecase.AuthOutput, error) {
	user, err := srv.userRepo.FindByEmail(ctx, strings.ToLower(input.Email))
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, errors.Wrap(err, "failed to look up email")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		return nil, domainerrors.ErrInvalidCredentials
	}

	if !user.ActiveAccount {
		return nil, domainerrors.ErrAccountNotActivated
	}

	token, err := srv.tokenService.Generate(user.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate token")
	}

	return &usecase.AuthOutput{User: user, Token: token}, nil
}

// ForgetPassword emails a reset code to the account. Like sign-up, a mail
// failure rolls the stored code back so no undelivered code stays valid.
func (srv *authService) ForgetPassword(ctx context.Context, input *usecase.ForgetPasswordInput) error {
	user, err := srv.userRepo.FindByEmail(ctx, strings.ToLower(input.Email))
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrNoUserWithEmail
		}

		return errors.Wrap(err, "failed to look up email")
	}

	code, err := generateCode()
	if err != nil {
		return err
	}

	user.PasswordReset = &entity.PasswordResetCode{
		OneTimeCode: entity.OneTimeCode{
			CodeHash:  hashCode(code),
			ExpiresAt: time.Now().Add(srv.codeTTL),
		},
	}
	if err := srv.userRepo.Update(ctx, user); err != nil {
		return errors.Wrap(err, "failed to store reset code")
	}

	if err := srv.mailer.SendPasswordResetCode(ctx, user.Email, user.FullName, code); err != nil {
		srv.log(ctx).Error("Failed to send reset code", slog.String("email", user.Email), slog.Any("error", err))
		user.PasswordReset = nil
		if uErr := srv.userRepo.Update(ctx, user); uErr != nil {
			srv.log(ctx).Error("Failed to roll back reset code after mail failure", slog.String("email", user.Email), slog.Any("error", uErr))
		}

		return domainerrors.ErrEmailDelivery
	}

	srv.log(ctx).Info("Password reset code sent", slog.String("email", user.Email))

	return nil
}

// VerifyResetCode marks the pending reset code as verified, unlocking the
// actual password change step.
func (srv *authService) VerifyResetCode(ctx context.Context, input *usecase.VerifyCodeInput) error {
	user, err := srv.userRepo.FindByEmail(ctx, strings.ToLower(input.Email))
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrCodeInvalidOrExpired
		}

		return errors.Wrap(err, "failed to look up email")
	}

	if user.PasswordReset == nil ||
		!codeMatches(input.Code, user.PasswordReset.CodeHash) ||
		user.PasswordReset.Expired(time.Now()) {
		return domainerrors.ErrCodeInvalidOrExpired
	}

	user.PasswordReset.Verified = true
	if err := srv.userRepo.Update(ctx, user); err != nil {
		return errors.Wrap(err, "failed to mark reset code verified")
	}

	return nil
}

// ResetPassword replaces the password once the reset code was verified,
// invalidating every previously issued token.
func (srv *authService) ResetPassword(ctx context.Context, input *usecase.ResetPasswordInput) (*usecase.AuthOutput, error) {
	user, err := srv.userRepo.FindByEmail(ctx, strings.ToLower(input.Email))
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrNoUserWithEmail
		}

		return nil, errors.Wrap(err, "failed to look up email")
	}

	if user.PasswordReset == nil || !user.PasswordReset.Verified {
		return nil, domainerrors.ErrResetNotVerified
	}

	passwordHash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash password")
	}

	user.PasswordHash = passwordHash
	user.PasswordReset = nil
	user.PasswordChangedAt = time.Now()
	if err := srv.userRepo.Update(ctx, user); err != nil {
		return nil, errors.Wrap(err, "failed to store new password")
	}

	token, err := srv.tokenService.Generate(user.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate token")
	}

	srv.log(ctx).Info("Password reset completed", slog.Any("userID", user.ID))

	return &usecase.AuthOutput{User: user, Token: token}, nil
}

// Authenticate resolves a bearer token to its live user record. The live
// lookup is what makes deletion, deactivation and password changes take
// effect immediately, not at token expiry.
func (srv *authService) Authenticate(ctx context.Context, token string) (*entity.User, error) {
	claims, err := srv.tokenService.Validate(token)
	if err != nil {
		return nil, domainerrors.ErrInvalidToken
	}

	user, err := srv.userRepo.FindByID(ctx, claims.UserID)
	if err != nil {
		if domainerrors.IsNotFound(err) {
			return nil, domainerrors.ErrInvalidToken
		}

		return nil, errors.Wrap(err, "failed to load token user")
	}

	if !user.ActiveAccount {
		return nil, domainerrors.ErrAccountNotActivated
	}

	if user.TokenIssuedBeforePasswordChange(claims.IssuedAt) {
		return nil, domainerrors.ErrStaleToken
	}

	return user, nil
}
