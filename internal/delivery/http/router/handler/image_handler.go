package handler

import (
	"io"
	"net/http"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"ishop/internal/delivery/http/response"
	"ishop/internal/domain/service"
)

// maxImageSize caps uploads at 5 MiB.
const maxImageSize = 5 << 20

// ImageHandler accepts image uploads and returns the URL to store on the
// owning record (profile image, product cover, category image).
type ImageHandler struct {
	store service.ImageStorage
}

// NewImageHandler is the constructor for ImageHandler, injected by Fx.
func NewImageHandler(store service.ImageStorage) *ImageHandler {
	return &ImageHandler{store: store}
}

// Upload stores the multipart "image" file under a random name and
// returns its serving URL.
func (h *ImageHandler) Upload(c echo.Context) error {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		return response.Fail(c, http.StatusBadRequest, "Missing image file", "")
	}
	if fileHeader.Size > maxImageSize {
		return response.Fail(c, http.StatusBadRequest, "Image too large", "")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return errors.Wrap(err, "open uploaded image")
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxImageSize))
	if err != nil {
		return errors.Wrap(err, "read uploaded image")
	}

	fileName := uuid.New().String() + filepath.Ext(fileHeader.Filename)
	url, err := h.store.Store(c.Request().Context(), fileName, data)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Created(c, map[string]string{"url": url})
}
