package session

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"backoffice/config"
	"backoffice/internal/domain/service"

	"github.com/pkg/errors"
)

const (
	tokenDirPerm  = 0o700
	tokenFilePerm = 0o600
)

// NewTokenStore returns a file store when a token path is configured, otherwise a memory store.
func NewTokenStore(cfg *config.Config) service.TokenStore {
	if strings.TrimSpace(cfg.Session.TokenPath) == "" {
		return NewMemoryStore()
	}

	return NewFileStore(cfg.Session.TokenPath)
}

type fileStore struct {
	path string
}

// NewFileStore persists the token in a single file.
func NewFileStore(path string) service.TokenStore {
	return &fileStore{path: path}
}

func (f *fileStore) Load(_ context.Context) (string, error) {
	data, err := os.ReadFile(f.path)
	if errors.Is(err, os.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", errors.WithStack(err)
	}

	return strings.TrimSpace(string(data)), nil
}

func (f *fileStore) Save(_ context.Context, token string) error {
	if err := os.MkdirAll(filepath.Dir(f.path), tokenDirPerm); err != nil {
		return errors.WithStack(err)
	}

	return errors.WithStack(os.WriteFile(f.path, []byte(token), tokenFilePerm))
}

func (f *fileStore) Clear(_ context.Context) error {
	err := os.Remove(f.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}

	return errors.WithStack(err)
}

type memoryStore struct {
	mu    sync.Mutex
	token string
}

// NewMemoryStore keeps the token for the life of the process.
func NewMemoryStore() service.TokenStore {
	return &memoryStore{}
}

func (m *memoryStore) Load(_ context.Context) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.token, nil
}

func (m *memoryStore) Save(_ context.Context, token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.token = token

	return nil
}

func (m *memoryStore) Clear(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.token = ""

	return nil
}
