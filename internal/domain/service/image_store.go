package service

import "context"

// UploadedImage describes a stored image: a public URL for embedding and the
// object key needed to delete it later.
type UploadedImage struct {
	URL string
	Key string
}

// ImageStore persists uploaded images in a remote object store.
type ImageStore interface {
	// Upload stores raw image bytes under a generated key and returns the
	// public URL plus the deletable key.
	Upload(ctx context.Context, data []byte, contentType string) (*UploadedImage, error)

	// Delete removes a previously uploaded image by its key.
	Delete(ctx context.Context, key string) error
}
