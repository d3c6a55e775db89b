// Package storage implements the ImageStore domain service against a
// MinIO/S3-compatible object store.
package storage

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"pressroom/config"
	"pressroom/internal/domain/lifecycle"
	"pressroom/internal/domain/service"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/pkg/errors"
)

type minioStore struct {
	client        *minio.Client
	bucket        string
	publicBaseURL string
	logger        *slog.Logger
}

// NewMinioStore connects to the object store and ensures the bucket exists.
func NewMinioStore(cfg *config.Config, logger *slog.Logger) (service.ImageStore, error) {
	sc := cfg.ImageStore
	if sc == nil || sc.Endpoint == "" {
		return nil, errors.New("image store configuration is required")
	}

	client, err := minio.New(sc.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(sc.AccessKey, sc.SecretKey, ""),
		Secure: sc.UseSSL,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to init object store client")
	}

	ctx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer cancel()

	exists, err := client.BucketExists(ctx, sc.Bucket)
	if err != nil {
		return nil, errors.Wrap(err, "failed to check image bucket")
	}
	if !exists {
		if err := client.MakeBucket(ctx, sc.Bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, errors.Wrap(err, "failed to create image bucket")
		}
	}

	return &minioStore{
		client:        client,
		bucket:        sc.Bucket,
		publicBaseURL: strings.TrimSuffix(sc.PublicBaseURL, "/"),
		logger:        logger,
	}, nil
}

// Upload stores raw image bytes under a generated key and returns the public
// URL plus the deletable key.
func (s *minioStore) Upload(ctx context.Context, data []byte, contentType string) (*service.UploadedImage, error) {
	key := fmt.Sprintf("uploads/%s/%s%s",
		time.Now().UTC().Format("2006/01"),
		uuid.New().String(),
		extensionFor(contentType),
	)

	_, err := s.client.PutObject(ctx, s.bucket, key, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to store image")
	}

	s.logger.Debug("Image uploaded", slog.String("key", key), slog.Int("bytes", len(data)))

	return &service.UploadedImage{
		URL: s.publicBaseURL + "/" + key,
		Key: key,
	}, nil
}

// Delete removes a previously uploaded image by its key.
func (s *minioStore) Delete(ctx context.Context, key string) error {
	if err := s.client.RemoveObject(ctx, s.bucket, key, minio.RemoveObjectOptions{}); err != nil {
		return errors.Wrap(err, "failed to delete image")
	}

	return nil
}

func extensionFor(contentType string) string {
	switch contentType {
	case "image/png":
		return ".png"
	case "image/gif":
		return ".gif"
	case "image/webp":
		return ".webp"
	default:
		return ".jpg"
	}
}
