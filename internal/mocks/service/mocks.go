// Package service provides hand-written testify mocks for the domain
// service interfaces used in service tests.
package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"ishop/internal/domain/service"
)

// MockPasswordHasher mocks service.PasswordHasher.
type MockPasswordHasher struct {
	mock.Mock
}

func (m *MockPasswordHasher) Hash(password string) (string, error) {
	args := m.Called(password)

	return args.String(0), args.Error(1)
}

func (m *MockPasswordHasher) Check(password, hash string) bool {
	args := m.Called(password, hash)

	return args.Bool(0)
}

// MockTokenService mocks service.TokenService.
type MockTokenService struct {
	mock.Mock
}

func (m *MockTokenService) Generate(userID uuid.UUID) (string, error) {
	args := m.Called(userID)

	return args.String(0), args.Error(1)
}

func (m *MockTokenService) Validate(token string) (*service.Claims, error) {
	args := m.Called(token)
	if v, ok := args.Get(0).(*service.Claims); ok {
		return v, args.Error(1)
	}

	return nil, args.Error(1)
}

// MockMailer mocks service.Mailer.
type MockMailer struct {
	mock.Mock
}

func (m *MockMailer) SendSignUpCode(ctx context.Context, to, fullName, code string) error {
	args := m.Called(ctx, to, fullName, code)

	return args.Error(0)
}

func (m *MockMailer) SendPasswordResetCode(ctx context.Context, to, fullName, code string) error {
	args := m.Called(ctx, to, fullName, code)

	return args.Error(0)
}

// MockImageStorage mocks service.ImageStorage.
type MockImageStorage struct {
	mock.Mock
}

func (m *MockImageStorage) Store(ctx context.Context, fileName string, data []byte) (string, error) {
	args := m.Called(ctx, fileName, data)

	return args.String(0), args.Error(1)
}
