package usecase

import (
	"context"
)

// UploadImageInput carries a base64-encoded image payload. Data may be a raw
// base64 string or a data URI with an image media type.
type UploadImageInput struct {
	Data string
}

// UploadImageOutput returns the public URL and the key needed to delete the
// image later.
type UploadImageOutput struct {
	URL string
	Key string
}

// UploadUsecase defines the interface for image upload operations.
type UploadUsecase interface {
	// UploadImage decodes and validates the payload, then stores it remotely.
	// Payloads that do not decode to a known image format are rejected.
	UploadImage(ctx context.Context, input UploadImageInput) (*UploadImageOutput, error)

	// DeleteImage removes a previously uploaded image by its key.
	DeleteImage(ctx context.Context, key string) error
}
