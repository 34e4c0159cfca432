package storage

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"storefront/config"
	"storefront/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
	"gocloud.dev/blob/memblob"
)

func newTestStorage(t *testing.T) *blobProofStorage {
	t.Helper()

	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { _ = bucket.Close() })

	storage := newBlobProofStorage(bucket, "/uploads/", slog.New(slog.NewTextHandler(io.Discard, nil)))
	storage.now = func() time.Time { return time.Unix(0, 1714564800000000000) }

	return storage
}

func TestBlobProofStorage_SaveAndOpen(t *testing.T) {
	storage := newTestStorage(t)
	ctx := context.Background()

	ref, err := storage.SaveProof(ctx, "receipt.png", "image/png", strings.NewReader("png-bytes"))
	require.NoError(t, err)
	assert.Equal(t, "/uploads/proof/1714564800000000000-receipt.png", ref)

	attrs, err := storage.bucket.Attributes(ctx, "proof/1714564800000000000-receipt.png")
	require.NoError(t, err)
	assert.Equal(t, "image/png", attrs.ContentType)

	reader, err := storage.OpenProof(ctx, ref)
	require.NoError(t, err)
	defer reader.Close()

	data, err := io.ReadAll(reader)
	require.NoError(t, err)
	assert.Equal(t, "png-bytes", string(data))
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, io.ErrUnexpectedEOF
}

func TestBlobProofStorage_SaveAbortsOnReadError(t *testing.T) {
	storage := newTestStorage(t)
	ctx := context.Background()

	_, err := storage.SaveProof(ctx, "receipt.png", "image/png", failingReader{})
	require.Error(t, err)
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)

	exists, err := storage.bucket.Exists(ctx, "proof/1714564800000000000-receipt.png")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestBlobProofStorage_OpenUnknown(t *testing.T) {
	storage := newTestStorage(t)
	ctx := context.Background()

	for _, ref := range []string{
		"/uploads/proof/missing.png",
		"/uploads/other/receipt.png",
		"/uploads/proof/../secret",
	} {
		_, err := storage.OpenProof(ctx, ref)
		assert.True(t, errors.Is(err, service.ErrProofNotFound), ref)
	}
}

func TestNewProofStorage(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	_, err := NewProofStorage(StorageParams{
		Lc:     fxtest.NewLifecycle(t),
		Ctx:    context.Background(),
		Config: &config.Config{Storage: &config.StorageConfig{}},
		Logger: logger,
	})
	require.Error(t, err)

	lc := fxtest.NewLifecycle(t)
	storage, err := NewProofStorage(StorageParams{
		Lc:     lc,
		Ctx:    context.Background(),
		Config: &config.Config{Storage: &config.StorageConfig{BucketURL: "mem://", PublicPrefix: "/uploads"}},
		Logger: logger,
	})
	require.NoError(t, err)

	ref, err := storage.SaveProof(context.Background(), "a.jpg", "image/jpeg", strings.NewReader("jpeg"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(ref, "/uploads/proof/"))

	lc.RequireStart()
	lc.RequireStop()
}
