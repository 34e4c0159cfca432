// Package storage keeps payment proof uploads in a gocloud blob bucket.
package storage

import (
	"context"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"storefront/config"
	"storefront/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob" // file:// buckets
	_ "gocloud.dev/blob/gcsblob"  // gs:// buckets
	_ "gocloud.dev/blob/memblob"  // mem:// buckets
	"gocloud.dev/gcerrors"
)

const proofKeyPrefix = "proof/"

type blobProofStorage struct {
	bucket       *blob.Bucket
	publicPrefix string
	now          func() time.Time
	logger       *slog.Logger
}

// StorageParams holds dependencies for ProofStorage, injected by Fx
type StorageParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewProofStorage opens the configured bucket and closes it on shutdown.
func NewProofStorage(params StorageParams) (service.ProofStorage, error) {
	cfg := params.Config.Storage
	if cfg == nil || cfg.BucketURL == "" {
		return nil, errors.New("storage.bucketUrl is required")
	}

	bucket, err := blob.OpenBucket(params.Ctx, cfg.BucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "open bucket %s", cfg.BucketURL)
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return errors.WithStack(bucket.Close())
		},
	})

	params.Logger.Info("Proof storage ready", slog.String("bucket", cfg.BucketURL))

	return newBlobProofStorage(bucket, cfg.PublicPrefix, params.Logger), nil
}

func newBlobProofStorage(bucket *blob.Bucket, publicPrefix string, logger *slog.Logger) *blobProofStorage {
	return &blobProofStorage{
		bucket:       bucket,
		publicPrefix: strings.TrimRight(publicPrefix, "/"),
		now:          time.Now,
		logger:       logger,
	}
}

// SaveProof writes content under proof/<unixnano>-<filename> and returns <publicPrefix>/proof/<...>.
// The filename must already be sanitized.
func (s *blobProofStorage) SaveProof(ctx context.Context, filename, contentType string, content io.Reader) (string, error) {
	key := proofKeyPrefix + strconv.FormatInt(s.now().UnixNano(), 10) + "-" + filename

	writeCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	writer, err := s.bucket.NewWriter(writeCtx, key, &blob.WriterOptions{ContentType: contentType})
	if err != nil {
		return "", errors.Wrap(err, "open proof writer")
	}

	written, err := io.Copy(writer, content)
	if err != nil {
		// Cancelling before Close discards the partial object.
		cancel()
		_ = writer.Close()

		return "", errors.Wrap(err, "write proof")
	}

	if err := writer.Close(); err != nil {
		return "", errors.Wrap(err, "commit proof")
	}

	s.logger.Debug("Proof stored", slog.String("key", key), slog.Int64("bytes", written))

	return s.publicPrefix + "/" + key, nil
}

// OpenProof opens a proof by the reference SaveProof returned.
func (s *blobProofStorage) OpenProof(ctx context.Context, ref string) (io.ReadCloser, error) {
	key := strings.TrimPrefix(strings.TrimPrefix(ref, s.publicPrefix), "/")
	if !strings.HasPrefix(key, proofKeyPrefix) || strings.Contains(key, "..") {
		return nil, errors.Wrapf(service.ErrProofNotFound, "ref %q", ref)
	}

	reader, err := s.bucket.NewReader(ctx, key, nil)
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil, errors.Wrapf(service.ErrProofNotFound, "ref %q", ref)
		}

		return nil, errors.Wrap(err, "open proof")
	}

	return reader, nil
}

// Module provides the storage FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewProofStorage),
)
