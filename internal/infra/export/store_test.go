package export

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBucketStore_Save(t *testing.T) {
	ctx := context.Background()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	store, err := OpenStore(ctx, "mem://", logger)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	key, err := store.Save(ctx, "exports/brand/x-ProductData.xlsx", []byte("xlsx"), "application/octet-stream")
	require.NoError(t, err)
	assert.Equal(t, "exports/brand/x-ProductData.xlsx", key)

	bucket := store.(*bucketStore).bucket
	data, err := bucket.ReadAll(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, []byte("xlsx"), data)

	attrs, err := bucket.Attributes(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, "application/octet-stream", attrs.ContentType)
}

func TestOpenStore_UnknownScheme(t *testing.T) {
	_, err := OpenStore(context.Background(), "nope://bucket", slog.New(slog.NewTextHandler(io.Discard, nil)))
	assert.Error(t, err)
}
