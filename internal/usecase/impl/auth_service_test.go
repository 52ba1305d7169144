package impl

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"ishop/internal/domain/entity"
	domainerrors "ishop/internal/domain/errors"
	"ishop/internal/domain/repository"
	mockRepo "ishop/internal/mocks/repository"
	mockSvc "ishop/internal/mocks/service"
	"ishop/internal/usecase"
)

// authServiceFixtures holds all test dependencies for auth service tests.
type authServiceFixtures struct {
	service      usecase.AuthUsecase
	userRepo     *mockRepo.MockUserRepository
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
	mailer       *mockSvc.MockMailer
}

func createTestAuthService(t *testing.T) authServiceFixtures {
	t.Helper()

	userRepo := &mockRepo.MockUserRepository{}
	hasher := &mockSvc.MockPasswordHasher{}
	tokenService := &mockSvc.MockTokenService{}
	mailer := &mockSvc.MockMailer{}

	service := NewAuthService(AuthServiceParams{
		UserRepo:     userRepo,
		Hasher:       hasher,
		TokenService: tokenService,
		Mailer:       mailer,
		Config:       newTestConfig(),
		Logger:       newDiscardLogger(),
	})

	return authServiceFixtures{
		service:      service,
		userRepo:     userRepo,
		hasher:       hasher,
		tokenService: tokenService,
		mailer:       mailer,
	}
}

func TestAuthService_SignUp_NewAccount(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	var inserted *entity.User
	var mailedCode string

	fx.userRepo.On("FindByEmail", ctx, "dina@example.com").
		Return(nil, repository.ErrUserNotFound)
	fx.hasher.On("Hash", "secret-pass").Return("hashed", nil)
	fx.userRepo.On("Insert", ctx, mock.AnythingOfType("*entity.User")).
		Run(func(args mock.Arguments) {
			inserted = args.Get(1).(*entity.User)
		}).
		Return(nil)
	fx.mailer.On("SendSignUpCode", ctx, "dina@example.com", "Dina", mock.AnythingOfType("string")).
		Run(func(args mock.Arguments) {
			mailedCode = args.String(3)
		}).
		Return(nil)

	err := fx.service.SignUp(ctx, &usecase.SignUpInput{
		FullName: "Dina",
		Email:    "Dina@Example.com",
		Password: "secret-pass",
	})
	require.NoError(t, err)

	require.NotNil(t, inserted)
	assert.Equal(t, "dina@example.com", inserted.Email)
	assert.Equal(t, "hashed", inserted.PasswordHash)
	assert.Equal(t, entity.RoleUser, inserted.Role)
	assert.False(t, inserted.ActiveAccount)

	// Only the hash of the mailed code is stored.
	require.NotNil(t, inserted.SignUpCode)
	assert.Len(t, mailedCode, 6)
	assert.Equal(t, hashCode(mailedCode), inserted.SignUpCode.CodeHash)
	assert.NotContains(t, inserted.SignUpCode.CodeHash, mailedCode)
	assert.False(t, inserted.SignUpCode.Expired(time.Now()))
}

func TestAuthService_SignUp_ActiveEmailBlocked(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.userRepo.On("FindByEmail", ctx, "taken@example.com").
		Return(&entity.User{Email: "taken@example.com", ActiveAccount: true}, nil)

	err := fx.service.SignUp(ctx, &usecase.SignUpInput{
		FullName: "Someone",
		Email:    "taken@example.com",
		Password: "secret-pass",
	})
	assert.ErrorIs(t, err, domainerrors.ErrEmailAlreadyRegistered)
	fx.userRepo.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
}

func TestAuthService_SignUp_StaleUnverifiedReplaced(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.userRepo.On("FindByEmail", ctx, "retry@example.com").
		Return(&entity.User{Email: "retry@example.com", ActiveAccount: false}, nil)
	fx.userRepo.On("DeleteByEmail", ctx, "retry@example.com").Return(nil)
	fx.hasher.On("Hash", "secret-pass").Return("hashed", nil)
	fx.userRepo.On("Insert", ctx, mock.AnythingOfType("*entity.User")).Return(nil)
	fx.mailer.On("SendSignUpCode", ctx, "retry@example.com", "Retry", mock.AnythingOfType("string")).
		Return(nil)

	err := fx.service.SignUp(ctx, &usecase.SignUpInput{
		FullName: "Retry",
		Email:    "retry@example.com",
		Password: "secret-pass",
	})
	require.NoError(t, err)
	fx.userRepo.AssertCalled(t, "DeleteByEmail", ctx, "retry@example.com")
}

func TestAuthService_SignUp_MailFailureRollsBack(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.userRepo.On("FindByEmail", ctx, "lost@example.com").
		Return(nil, repository.ErrUserNotFound)
	fx.hasher.On("Hash", "secret-pass").Return("hashed", nil)
	fx.userRepo.On("Insert", ctx, mock.AnythingOfType("*entity.User")).Return(nil)
	fx.mailer.On("SendSignUpCode", ctx, "lost@example.com", "Lost", mock.AnythingOfType("string")).
		Return(assert.AnError)
	fx.userRepo.On("DeleteByEmail", ctx, "lost@example.com").Return(nil)

	err := fx.service.SignUp(ctx, &usecase.SignUpInput{
		FullName: "Lost",
		Email:    "lost@example.com",
		Password: "secret-pass",
	})
	assert.ErrorIs(t, err, domainerrors.ErrEmailDelivery)

	// The account whose code never arrived must not linger.
	fx.userRepo.AssertCalled(t, "DeleteByEmail", ctx, "lost@example.com")
}

func TestAuthService_VerifySignUpCode_Activates(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	userID := uuid.New()

	user := &entity.User{
		ID:    userID,
		Email: "dina@example.com",
		SignUpCode: &entity.OneTimeCode{
			CodeHash:  hashCode("123456"),
			ExpiresAt: time.Now().Add(5 * time.Minute),
		},
	}

	fx.userRepo.On("FindByEmail", ctx, "dina@example.com").Return(user, nil)
	fx.userRepo.On("Update", ctx, user).Return(nil)
	fx.tokenService.On("Generate", userID).Return("jwt-token", nil)

	out, err := fx.service.VerifySignUpCode(ctx, &usecase.VerifyCodeInput{
		Email: "dina@example.com",
		Code:  "123456",
	})
	require.NoError(t, err)
	assert.Equal(t, "jwt-token", out.Token)
	assert.True(t, out.User.ActiveAccount)
	assert.Nil(t, out.User.SignUpCode)
}

func TestAuthService_VerifySignUpCode_WrongCode(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	user := &entity.User{
		Email: "dina@example.com",
		SignUpCode: &entity.OneTimeCode{
			CodeHash:  hashCode("123456"),
			ExpiresAt: time.Now().Add(5 * time.Minute),
		},
	}
	fx.userRepo.On("FindByEmail", ctx, "dina@example.com").Return(user, nil)

	_, err := fx.service.VerifySignUpCode(ctx, &usecase.VerifyCodeInput{
		Email: "dina@example.com",
		Code:  "654321",
	})
	assert.ErrorIs(t, err, domainerrors.ErrCodeInvalidOrExpired)
}

func TestAuthService_VerifySignUpCode_Expired(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	user := &entity.User{
		Email: "dina@example.com",
		SignUpCode: &entity.OneTimeCode{
			CodeHash:  hashCode("123456"),
			ExpiresAt: time.Now().Add(-time.Minute),
		},
	}
	fx.userRepo.On("FindByEmail", ctx, "dina@example.com").Return(user, nil)

	_, err := fx.service.VerifySignUpCode(ctx, &usecase.VerifyCodeInput{
		Email: "dina@example.com",
		Code:  "123456",
	})
	assert.ErrorIs(t, err, domainerrors.ErrCodeInvalidOrExpired)
}

func TestAuthService_SignIn_Success(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	userID := uuid.New()

	user := &entity.User{ID: userID, Email: "dina@example.com", PasswordHash: "hashed", ActiveAccount: true}
	fx.userRepo.On("FindByEmail", ctx, "dina@example.com").Return(user, nil)
	fx.hasher.On("Check", "secret-pass", "hashed").Return(true)
	fx.tokenService.On("Generate", userID).Return("jwt-token", nil)

	out, err := fx.service.SignIn(ctx, &usecase.SignInInput{Email: "dina@example.com", Password: "secret-pass"})
	require.NoError(t, err)
	assert.Equal(t, "jwt-token", out.Token)
}

func TestAuthService_SignIn_WrongPassword(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	user := &entity.User{Email: "dina@example.com", PasswordHash: "hashed", ActiveAccount: true}
	fx.userRepo.On("FindByEmail", ctx, "dina@example.com").Return(user, nil)
	fx.hasher.On("Check", "wrong", "hashed").Return(false)

	_, err := fx.service.SignIn(ctx, &usecase.SignInInput{Email: "dina@example.com", Password: "wrong"})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthService_SignIn_UnknownEmail(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.userRepo.On("FindByEmail", ctx, "ghost@example.com").
		Return(nil, repository.ErrUserNotFound)

	_, err := fx.service.SignIn(ctx, &usecase.SignInInput{Email: "ghost@example.com", Password: "whatever"})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthService_SignIn_InactiveAccount(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	user := &entity.User{Email: "dina@example.com", PasswordHash: "hashed", ActiveAccount: false}
	fx.userRepo.On("FindByEmail", ctx, "dina@example.com").Return(user, nil)
	fx.hasher.On("Check", "secret-pass", "hashed").Return(true)

	_, err := fx.service.SignIn(ctx, &usecase.SignInInput{Email: "dina@example.com", Password: "secret-pass"})
	assert.ErrorIs(t, err, domainerrors.ErrAccountNotActivated)
}

func TestAuthService_ForgetPassword_MailFailureRollsBack(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	user := &entity.User{Email: "dina@example.com", ActiveAccount: true}
	fx.userRepo.On("FindByEmail", ctx, "dina@example.com").Return(user, nil)
	fx.userRepo.On("Update", ctx, user).Return(nil)
	fx.mailer.On("SendPasswordResetCode", ctx, "dina@example.com", "", mock.AnythingOfType("string")).
		Return(assert.AnError)

	err := fx.service.ForgetPassword(ctx, &usecase.ForgetPasswordInput{Email: "dina@example.com"})
	assert.ErrorIs(t, err, domainerrors.ErrEmailDelivery)

	// The second Update clears the undelivered code.
	assert.Nil(t, user.PasswordReset)
	fx.userRepo.AssertNumberOfCalls(t, "Update", 2)
}

func TestAuthService_ResetPassword_RequiresVerifiedCode(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	user := &entity.User{
		Email: "dina@example.com",
		PasswordReset: &entity.PasswordResetCode{
			OneTimeCode: entity.OneTimeCode{
				CodeHash:  hashCode("123456"),
				ExpiresAt: time.Now().Add(5 * time.Minute),
			},
			Verified: false,
		},
	}
	fx.userRepo.On("FindByEmail", ctx, "dina@example.com").Return(user, nil)

	_, err := fx.service.ResetPassword(ctx, &usecase.ResetPasswordInput{
		Email:    "dina@example.com",
		Password: "new-secret",
	})
	assert.ErrorIs(t, err, domainerrors.ErrResetNotVerified)
}

func TestAuthService_ResetPassword_BumpsPasswordChangedAt(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	userID := uuid.New()
	before := time.Now().Add(-time.Hour)

	user := &entity.User{
		ID:                userID,
		Email:             "dina@example.com",
		PasswordChangedAt: before,
		PasswordReset: &entity.PasswordResetCode{
			OneTimeCode: entity.OneTimeCode{
				CodeHash:  hashCode("123456"),
				ExpiresAt: time.Now().Add(5 * time.Minute),
			},
			Verified: true,
		},
	}
	fx.userRepo.On("FindByEmail", ctx, "dina@example.com").Return(user, nil)
	fx.hasher.On("Hash", "new-secret").Return("new-hash", nil)
	fx.userRepo.On("Update", ctx, user).Return(nil)
	fx.tokenService.On("Generate", userID).Return("fresh-token", nil)

	out, err := fx.service.ResetPassword(ctx, &usecase.ResetPasswordInput{
		Email:    "dina@example.com",
		Password: "new-secret",
	})
	require.NoError(t, err)
	assert.Equal(t, "fresh-token", out.Token)
	assert.Equal(t, "new-hash", user.PasswordHash)
	assert.Nil(t, user.PasswordReset)
	assert.True(t, user.PasswordChangedAt.After(before))
}

func TestAuthService_Authenticate_StaleToken(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	userID := uuid.New()

	issuedAt := time.Now().Add(-time.Hour)
	user := &entity.User{
		ID:                userID,
		ActiveAccount:     true,
		PasswordChangedAt: time.Now().Add(-time.Minute),
	}

	fx.tokenService.On("Validate", "old-token").
		Return(claimsFor(userID, issuedAt), nil)
	fx.userRepo.On("FindByID", ctx, userID).Return(user, nil)

	_, err := fx.service.Authenticate(ctx, "old-token")
	assert.ErrorIs(t, err, domainerrors.ErrStaleToken)
}

func TestAuthService_Authenticate_Success(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	userID := uuid.New()

	user := &entity.User{
		ID:                userID,
		ActiveAccount:     true,
		PasswordChangedAt: time.Now().Add(-time.Hour),
	}

	fx.tokenService.On("Validate", "fresh-token").
		Return(claimsFor(userID, time.Now()), nil)
	fx.userRepo.On("FindByID", ctx, userID).Return(user, nil)

	got, err := fx.service.Authenticate(ctx, "fresh-token")
	require.NoError(t, err)
	assert.Equal(t, userID, got.ID)
}

func TestAuthService_Authenticate_InvalidToken(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.tokenService.On("Validate", "garbage").Return(nil, assert.AnError)

	_, err := fx.service.Authenticate(ctx, "garbage")
	assert.ErrorIs(t, err, domainerrors.ErrInvalidToken)
}
