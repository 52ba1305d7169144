// Package imagestore provides the local-disk ImageStorage implementation.
// Cloud backends can replace it behind the same interface.
package imagestore

import (
	"context"
	"os"
	"path/filepath"

	"ishop/config"
	"ishop/internal/domain/service"
	"ishop/internal/errors"
)

type localStore struct {
	dir     string
	baseURL string
}

// NewLocalStore is the constructor for the local-disk image store.
func NewLocalStore(cfg *config.Config) service.ImageStorage {
	dir := "./uploads"
	baseURL := "/uploads"
	if cfg.Images != nil {
		if cfg.Images.Dir != "" {
			dir = cfg.Images.Dir
		}
		if cfg.Images.BaseURL != "" {
			baseURL = cfg.Images.BaseURL
		}
	}

	return &localStore{dir: dir, baseURL: baseURL}
}

// Store writes the image bytes to disk and returns the serving URL.
func (s *localStore) Store(ctx context.Context, fileName string, data []byte) (string, error) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", errors.Wrap(err, "create image directory")
	}

	fileName = filepath.Base(fileName)
	if err := os.WriteFile(filepath.Join(s.dir, fileName), data, 0o644); err != nil {
		return "", errors.Wrap(err, "write image file")
	}

	return s.baseURL + "/" + fileName, nil
}
