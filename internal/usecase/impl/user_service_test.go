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

type userServiceFixtures struct {
	service      usecase.UserUsecase
	userRepo     *mockRepo.MockUserRepository
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
}

func createTestUserService(t *testing.T) userServiceFixtures {
	t.Helper()

	userRepo := &mockRepo.MockUserRepository{}
	hasher := &mockSvc.MockPasswordHasher{}
	tokenService := &mockSvc.MockTokenService{}

	service := NewUserService(UserServiceParams{
		UserRepo:     userRepo,
		Hasher:       hasher,
		TokenService: tokenService,
		Logger:       newDiscardLogger(),
	})

	return userServiceFixtures{
		service:      service,
		userRepo:     userRepo,
		hasher:       hasher,
		tokenService: tokenService,
	}
}

func TestUserService_CreateUser_DefaultsRole(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.userRepo.On("FindByEmail", ctx, "new@example.com").
		Return(nil, repository.ErrUserNotFound)
	fx.hasher.On("Hash", "secret-pass").Return("hashed", nil)

	var inserted *entity.User
	fx.userRepo.On("Insert", ctx, mock.AnythingOfType("*entity.User")).
		Run(func(args mock.Arguments) {
			inserted = args.Get(1).(*entity.User)
		}).
		Return(nil)

	user, err := fx.service.CreateUser(ctx, &usecase.CreateUserInput{
		FullName: "New User",
		Email:    "New@Example.com",
		Password: "secret-pass",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleUser, user.Role)
	assert.True(t, inserted.ActiveAccount, "admin-created accounts skip verification")
	assert.Equal(t, "new@example.com", inserted.Email)
}

func TestUserService_CreateUser_DuplicateEmail(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.userRepo.On("FindByEmail", ctx, "taken@example.com").
		Return(&entity.User{Email: "taken@example.com"}, nil)

	_, err := fx.service.CreateUser(ctx, &usecase.CreateUserInput{
		FullName: "Dup",
		Email:    "taken@example.com",
		Password: "secret-pass",
	})
	assert.ErrorIs(t, err, domainerrors.ErrEmailAlreadyRegistered)
}

func TestUserService_UpdateUser_OnlyProvidedFields(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()
	userID := uuid.New()

	name := "Renamed"
	empty := ""

	var fields map[string]any
	fx.userRepo.On("UpdateFields", ctx, userID, mock.Anything).
		Run(func(args mock.Arguments) {
			fields = args.Get(2).(map[string]any)
		}).
		Return(&entity.User{ID: userID, FullName: name}, nil)

	_, err := fx.service.UpdateUser(ctx, userID, &usecase.UpdateUserInput{
		FullName: &name,
		Phone:    &empty, // explicitly empty, must be dropped
	})
	require.NoError(t, err)

	assert.Equal(t, map[string]any{"full_name": "Renamed"}, fields)
}

func TestUserService_UpdateProfile_StripsPrivilegedFields(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()
	userID := uuid.New()

	name := "Self Update"
	role := "admin"
	active := true

	var fields map[string]any
	fx.userRepo.On("UpdateFields", ctx, userID, mock.Anything).
		Run(func(args mock.Arguments) {
			fields = args.Get(2).(map[string]any)
		}).
		Return(&entity.User{ID: userID}, nil)

	_, err := fx.service.UpdateProfile(ctx, userID, &usecase.UpdateUserInput{
		FullName: &name,
		Role:     &role,
		Active:   &active,
	})
	require.NoError(t, err)

	assert.Contains(t, fields, "full_name")
	assert.NotContains(t, fields, "role")
	assert.NotContains(t, fields, "active_account")
}

func TestUserService_ChangePassword_WrongCurrent(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()
	userID := uuid.New()

	user := &entity.User{ID: userID, PasswordHash: "old-hash"}
	fx.userRepo.On("FindByID", ctx, userID).Return(user, nil)
	fx.hasher.On("Check", "wrong", "old-hash").Return(false)

	_, err := fx.service.ChangePassword(ctx, userID, &usecase.ChangePasswordInput{
		CurrentPassword: "wrong",
		NewPassword:     "new-secret",
	})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	fx.userRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestUserService_ChangePassword_ReissuesToken(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()
	userID := uuid.New()
	before := time.Now().Add(-time.Hour)

	user := &entity.User{ID: userID, PasswordHash: "old-hash", PasswordChangedAt: before}
	fx.userRepo.On("FindByID", ctx, userID).Return(user, nil)
	fx.hasher.On("Check", "current", "old-hash").Return(true)
	fx.hasher.On("Hash", "new-secret").Return("new-hash", nil)
	fx.userRepo.On("Update", ctx, user).Return(nil)
	fx.tokenService.On("Generate", userID).Return("fresh-token", nil)

	out, err := fx.service.ChangePassword(ctx, userID, &usecase.ChangePasswordInput{
		CurrentPassword: "current",
		NewPassword:     "new-secret",
	})
	require.NoError(t, err)
	assert.Equal(t, "fresh-token", out.Token)
	assert.Equal(t, "new-hash", user.PasswordHash)
	assert.True(t, user.PasswordChangedAt.After(before))
}

func TestUserService_DeactivateAccount(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()
	userID := uuid.New()

	fx.userRepo.On("UpdateFields", ctx, userID, map[string]any{"active_account": false}).
		Return(&entity.User{ID: userID, ActiveAccount: false}, nil)

	err := fx.service.DeactivateAccount(ctx, userID)
	require.NoError(t, err)
}
