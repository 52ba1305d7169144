package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/fx"

	deliverycontext "ishop/internal/delivery/context"
	"ishop/internal/domain/entity"
	domainerrors "ishop/internal/domain/errors"
	"ishop/internal/domain/repository"
	"ishop/internal/domain/service"
	"ishop/internal/errors"
	"ishop/internal/usecase"
)

type userService struct {
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// UserServiceParams holds dependencies for the user service, injected by Fx.
type UserServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewUserService is the constructor for userService.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *userService) GetUsers(ctx context.Context, query *repository.ListQuery) ([]*entity.User, *repository.Pagination, error) {
	users, pagination, err := srv.userRepo.List(ctx, *query)
	if err != nil {
		return nil, nil, err
	}

	return users, &pagination, nil
}

func (srv *userService) GetUser(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	return srv.userRepo.FindByID(ctx, id)
}

// CreateUser provisions an account directly. Admin-created accounts skip
// email verification and start active.
func (srv *userService) CreateUser(ctx context.Context, input *usecase.CreateUserInput) (*entity.User, error) {
	email := strings.ToLower(input.Email)

	if _, err := srv.userRepo.FindByEmail(ctx, email); err == nil {
		return nil, domainerrors.ErrEmailAlreadyRegistered
	} else if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, errors.Wrap(err, "failed to look up email")
	}

	passwordHash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash password")
	}

	role := entity.Role(input.Role)
	if role == "" {
		role = entity.RoleUser
	}

	user := &entity.User{
		FullName:          input.FullName,
		Email:             email,
		Phone:             input.Phone,
		PasswordHash:      passwordHash,
		Role:              role,
		ActiveAccount:     true,
		PasswordChangedAt: time.Now(),
	}

	if err := srv.userRepo.Insert(ctx, user); err != nil {
		return nil, errors.Wrap(err, "failed to create user")
	}

	srv.log(ctx).Info("User created", slog.Any("userID", user.ID), slog.String("role", string(user.Role)))

	return user, nil
}

func (srv *userService) UpdateUser(ctx context.Context, id uuid.UUID, input *usecase.UpdateUserInput) (*entity.User, error) {
	return srv.userRepo.UpdateFields(ctx, id, input.Fields())
}

func (srv *userService) DeleteUser(ctx context.Context, id uuid.UUID) error {
	if err := srv.userRepo.DeleteByID(ctx, id); err != nil {
		return err
	}

	srv.log(ctx).Info("User deleted", slog.Any("userID", id))

	return nil
}

// UpdateProfile applies a partial update to the caller's own record.
// Privileged fields are stripped so a user cannot escalate their own role
// or re-activate a disabled account.
func (srv *userService) UpdateProfile(ctx context.Context, userID uuid.UUID, input *usecase.UpdateUserInput) (*entity.User, error) {
	fields := input.Fields()
	delete(fields, "role")
	delete(fields, "active_account")

	return srv.userRepo.UpdateFields(ctx, userID, fields)
}

// ChangePassword verifies the current password before storing the new
// hash. The password change timestamp invalidates every previously issued
// token, so a fresh one is returned.
func (srv *userService) ChangePassword(ctx context.Context, userID uuid.UUID, input *usecase.ChangePasswordInput) (*usecase.AuthOutput, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if !srv.hasher.Check(input.CurrentPassword, user.PasswordHash) {
		return nil, domainerrors.ErrInvalidCredentials
	}

	passwordHash, err := srv.hasher.Hash(input.NewPassword)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash password")
	}

	user.PasswordHash = passwordHash
	user.PasswordChangedAt = time.Now()
	if err := srv.userRepo.Update(ctx, user); err != nil {
		return nil, errors.Wrap(err, "failed to store new password")
	}

	token, err := srv.tokenService.Generate(user.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate token")
	}

	srv.log(ctx).Info("Password changed", slog.Any("userID", user.ID))

	return &usecase.AuthOutput{User: user, Token: token}, nil
}

// DeactivateAccount soft-disables the caller's own account. The record is
// kept; signing in again requires re-activation by an admin.
func (srv *userService) DeactivateAccount(ctx context.Context, userID uuid.UUID) error {
	_, err := srv.userRepo.UpdateFields(ctx, userID, map[string]any{"active_account": false})
	if err != nil {
		return err
	}

	srv.log(ctx).Info("Account deactivated", slog.Any("userID", userID))

	return nil
}
