package impl

import (
	"context"
	"encoding/base64"
	"strings"
	"testing"

	domainerrors "pressroom/internal/domain/errors"
	"pressroom/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type uploadServiceFixtures struct {
	service usecase.UploadUsecase
	store   *fakeImageStore
}

func createTestUploadService(t *testing.T) uploadServiceFixtures {
	t.Helper()

	store := newFakeImageStore()

	return uploadServiceFixtures{
		service: NewUploadService(store, testLogger()),
		store:   store,
	}
}

// pngPayload is a minimal payload carrying the PNG signature, enough for
// content-type sniffing.
func pngPayload() []byte {
	return append([]byte("\x89PNG\r\n\x1a\n"), make([]byte, 32)...)
}

func TestUploadService_UploadImage(t *testing.T) {
	fx := createTestUploadService(t)

	out, err := fx.service.UploadImage(context.Background(), usecase.UploadImageInput{
		Data: base64.StdEncoding.EncodeToString(pngPayload()),
	})

	require.NoError(t, err)
	assert.NotEmpty(t, out.Key)
	assert.NotEmpty(t, out.URL)
	assert.Equal(t, pngPayload(), fx.store.stored[out.Key])
}

func TestUploadService_UploadImage_DataURI(t *testing.T) {
	fx := createTestUploadService(t)

	payload := "data:image/png;base64," + base64.StdEncoding.EncodeToString(pngPayload())
	out, err := fx.service.UploadImage(context.Background(), usecase.UploadImageInput{Data: payload})

	require.NoError(t, err)
	assert.Equal(t, pngPayload(), fx.store.stored[out.Key])
}

func TestUploadService_UploadImage_RejectsNonImage(t *testing.T) {
	fx := createTestUploadService(t)

	_, err := fx.service.UploadImage(context.Background(), usecase.UploadImageInput{
		Data: base64.StdEncoding.EncodeToString([]byte("<!DOCTYPE html><html></html>")),
	})

	assert.ErrorIs(t, err, domainerrors.ErrInvalidImage)
	assert.Empty(t, fx.store.stored)
}

func TestUploadService_UploadImage_RejectsGarbage(t *testing.T) {
	fx := createTestUploadService(t)

	for _, payload := range []string{"", "not base64!!!", "data:image/png;base64"} {
		_, err := fx.service.UploadImage(context.Background(), usecase.UploadImageInput{Data: payload})
		assert.ErrorIs(t, err, domainerrors.ErrInvalidImage)
	}
}

func TestUploadService_UploadImage_RejectsOversized(t *testing.T) {
	fx := createTestUploadService(t)

	// 20 MiB of base64 decodes to ~15 MiB; the size check runs before decoding.
	oversized := strings.Repeat("A", 20<<20)
	_, err := fx.service.UploadImage(context.Background(), usecase.UploadImageInput{Data: oversized})

	assert.ErrorIs(t, err, domainerrors.ErrInvalidImage)
}

func TestUploadService_DeleteImage(t *testing.T) {
	fx := createTestUploadService(t)

	out, err := fx.service.UploadImage(context.Background(), usecase.UploadImageInput{
		Data: base64.StdEncoding.EncodeToString(pngPayload()),
	})
	require.NoError(t, err)

	require.NoError(t, fx.service.DeleteImage(context.Background(), out.Key))
	assert.Empty(t, fx.store.stored)
}
