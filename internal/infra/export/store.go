package export

import (
	"context"
	"log/slog"

	"backoffice/config"
	"backoffice/internal/domain/service"
	"backoffice/internal/errors"

	"go.uber.org/fx"
	"gocloud.dev/blob"

	// Bucket drivers selected by URL scheme
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob"
	_ "gocloud.dev/blob/memblob"
)

// StoreParams holds dependencies for the export store, injected by Fx
type StoreParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

type bucketStore struct {
	bucket *blob.Bucket
	logger *slog.Logger
}

// NewStore opens the configured bucket. Without a bucket URL exports are not stored
// and nil is returned.
func NewStore(params StoreParams) (service.ExportStore, error) {
	cfg := params.Config.Export
	if cfg == nil || cfg.BucketURL == "" {
		params.Logger.Info("Export bucket not configured, exports are not stored")

		return nil, nil
	}

	store, err := OpenStore(params.Ctx, cfg.BucketURL, params.Logger)
	if err != nil {
		return nil, err
	}
	params.Logger.Info("Export bucket opened", slog.String("url", cfg.BucketURL))

	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return store.Close()
		},
	})

	return store, nil
}

// OpenStore opens a bucket by URL, e.g. file:///var/exports, mem:// or gs://bucket
func OpenStore(ctx context.Context, bucketURL string, logger *slog.Logger) (service.ExportStore, error) {
	bucket, err := blob.OpenBucket(ctx, bucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open export bucket %s", bucketURL)
	}

	return &bucketStore{bucket: bucket, logger: logger}, nil
}

func (s *bucketStore) Save(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	err := s.bucket.WriteAll(ctx, key, data, &blob.WriterOptions{ContentType: contentType})
	if err != nil {
		return "", errors.Wrapf(err, "failed to write %s", key)
	}

	s.logger.Debug("Export stored", slog.String("key", key), slog.Int("bytes", len(data)))

	return key, nil
}

func (s *bucketStore) Close() error {
	return errors.WithStack(s.bucket.Close())
}
