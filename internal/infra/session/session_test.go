package session

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingStore struct {
	memoryStore
	clears atomic.Int32
}

func (c *countingStore) Clear(ctx context.Context) error {
	c.clears.Add(1)

	return c.memoryStore.Clear(ctx)
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func signedToken(t *testing.T, exp time.Time) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"exp": exp.Unix()}).SignedString([]byte("secret"))
	require.NoError(t, err)

	return token
}

func TestSession_InvalidateFiresOnce(t *testing.T) {
	ctx := context.Background()
	store := &countingStore{}
	s, err := newSession(ctx, store, testLogger(), time.Now)
	require.NoError(t, err)
	require.NoError(t, s.Set(ctx, "tok-1"))

	var fired atomic.Int32
	s.OnInvalidate(func(context.Context, string) { fired.Add(1) })

	var wg sync.WaitGroup
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.Invalidate(ctx, "tok-1")
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), fired.Load())
	assert.Equal(t, int32(1), store.clears.Load())
	assert.Empty(t, s.Token())
}

func TestSession_InvalidateStaleToken(t *testing.T) {
	ctx := context.Background()
	s, err := newSession(ctx, &countingStore{}, testLogger(), time.Now)
	require.NoError(t, err)
	require.NoError(t, s.Set(ctx, "new"))

	assert.False(t, s.Invalidate(ctx, "old"))
	assert.False(t, s.Invalidate(ctx, ""))
	assert.Equal(t, "new", s.Token())
}

func TestSession_DiscardsExpiredStoredToken(t *testing.T) {
	ctx := context.Background()
	store := &countingStore{}
	require.NoError(t, store.Save(ctx, signedToken(t, time.Now().Add(-time.Hour))))

	s, err := newSession(ctx, store, testLogger(), time.Now)
	require.NoError(t, err)

	assert.Empty(t, s.Token())
	assert.Equal(t, int32(1), store.clears.Load())
}

func TestSession_ExpiresAt(t *testing.T) {
	ctx := context.Background()
	exp := time.Now().Add(time.Hour).Truncate(time.Second)
	s, err := newSession(ctx, NewMemoryStore(), testLogger(), time.Now)
	require.NoError(t, err)

	_, ok := s.ExpiresAt()
	assert.False(t, ok)

	require.NoError(t, s.Set(ctx, signedToken(t, exp)))
	got, ok := s.ExpiresAt()
	assert.True(t, ok)
	assert.True(t, exp.Equal(got))

	require.NoError(t, s.Set(ctx, "opaque-token"))
	_, ok = s.ExpiresAt()
	assert.False(t, ok)
}

func TestFileStore(t *testing.T) {
	ctx := context.Background()
	store := NewFileStore(filepath.Join(t.TempDir(), "nested", "token"))

	token, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, token)

	require.NoError(t, store.Save(ctx, "abc"))
	token, err = store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "abc", token)

	require.NoError(t, store.Clear(ctx))
	require.NoError(t, store.Clear(ctx))
	token, err = store.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, token)
}
