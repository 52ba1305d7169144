package impl

import (
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"ishop/config"
	"ishop/internal/domain/service"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		Auth: &config.AuthConfig{
			BcryptCost: 4,
			CodeTTL:    10 * time.Minute,
		},
	}
}

func claimsFor(userID uuid.UUID, issuedAt time.Time) *service.Claims {
	return &service.Claims{UserID: userID, IssuedAt: issuedAt}
}
