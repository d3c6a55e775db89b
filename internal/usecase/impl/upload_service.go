package impl

import (
	"context"
	"encoding/base64"
	"log/slog"
	"net/http"
	"strings"

	deliverycontext "pressroom/internal/delivery/context"
	domainerrors "pressroom/internal/domain/errors"
	"pressroom/internal/domain/service"
	"pressroom/internal/usecase"

	"github.com/pkg/errors"
)

// maxImageBytes bounds decoded uploads at 10 MiB.
const maxImageBytes = 10 << 20

// uploadService implements the UploadUsecase interface.
type uploadService struct {
	store  service.ImageStore
	logger *slog.Logger
}

// NewUploadService is the constructor for uploadService.
func NewUploadService(store service.ImageStore, logger *slog.Logger) usecase.UploadUsecase {
	return &uploadService{
		store:  store,
		logger: logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *uploadService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *uploadService) UploadImage(ctx context.Context, input usecase.UploadImageInput) (*usecase.UploadImageOutput, error) {
	data, err := decodeImagePayload(input.Data)
	if err != nil {
		return nil, err
	}

	contentType := http.DetectContentType(data)
	if !strings.HasPrefix(contentType, "image/") {
		return nil, domainerrors.ErrInvalidImage.WithDetails("payload decodes to " + contentType)
	}

	uploaded, err := srv.store.Upload(ctx, data, contentType)
	if err != nil {
		return nil, errors.Wrap(err, "failed to store image")
	}

	srv.log(ctx).Info("Image uploaded", slog.String("key", uploaded.Key), slog.Int("bytes", len(data)))

	return &usecase.UploadImageOutput{
		URL: uploaded.URL,
		Key: uploaded.Key,
	}, nil
}

func (srv *uploadService) DeleteImage(ctx context.Context, key string) error {
	if err := srv.store.Delete(ctx, key); err != nil {
		return errors.Wrap(err, "failed to delete image")
	}

	srv.log(ctx).Info("Image deleted", slog.String("key", key))

	return nil
}

// decodeImagePayload accepts a raw base64 string or a data URI
// ("data:image/png;base64,...") and returns the decoded bytes.
func decodeImagePayload(payload string) ([]byte, error) {
	if payload == "" {
		return nil, domainerrors.ErrInvalidImage.WithDetails("empty payload")
	}

	if strings.HasPrefix(payload, "data:") {
		_, encoded, found := strings.Cut(payload, ",")
		if !found {
			return nil, domainerrors.ErrInvalidImage.WithDetails("malformed data URI")
		}
		payload = encoded
	}

	if base64.StdEncoding.DecodedLen(len(payload)) > maxImageBytes {
		return nil, domainerrors.ErrInvalidImage.WithDetails("image exceeds the 10MB limit")
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, domainerrors.ErrInvalidImage.WithDetails("payload is not valid base64")
	}
	if len(data) == 0 {
		return nil, domainerrors.ErrInvalidImage.WithDetails("empty image")
	}

	return data, nil
}
