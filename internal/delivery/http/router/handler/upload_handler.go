package handler

import (
	"log/slog"
	"net/http"
	"net/url"

	"pressroom/internal/delivery/http/response"
	"pressroom/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// UploadHandler holds dependencies for image upload handlers.
type UploadHandler struct {
	uc     usecase.UploadUsecase
	logger *slog.Logger
}

// NewUploadHandler is the constructor for UploadHandler, injected by Fx.
func NewUploadHandler(uc usecase.UploadUsecase, logger *slog.Logger) *UploadHandler {
	return &UploadHandler{uc: uc, logger: logger}
}

type uploadImageRequest struct {
	Image string `json:"image" validate:"required"`
}

// UploadImage stores a base64-encoded image and returns its public URL and
// object key.
func (h *UploadHandler) UploadImage(c echo.Context) error {
	var input uploadImageRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid upload input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.UploadImage(c.Request().Context(), usecase.UploadImageInput{Data: input.Image})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, map[string]string{
		"url": output.URL,
		"key": output.Key,
	}, "Image uploaded successfully")
}

// DeleteImage removes a previously uploaded image. The key arrives
// URL-encoded because object keys contain slashes.
func (h *UploadHandler) DeleteImage(c echo.Context) error {
	key, err := url.PathUnescape(c.Param("key"))
	if err != nil || key == "" {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid object key")
	}

	if err := h.uc.DeleteImage(c.Request().Context(), key); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Image deleted successfully")
}
