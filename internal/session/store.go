package session

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// Store holds the single session token. Every API call reads it through this
// interface instead of reaching for ambient global state.
type Store interface {
	// Token returns the stored token; ok is false when none is stored.
	Token() (token string, ok bool)
	SetToken(token string) error
	Clear() error
}

// FileStore keeps the token as one string in a local file, the rendition of
// the browser's persistent storage. It survives restarts; Clear removes it.
type FileStore struct {
	mu   sync.RWMutex
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) Token() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		return "", false
	}
	token := strings.TrimSpace(string(data))
	return token, token != ""
}

func (s *FileStore) SetToken(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return err
	}
	return os.WriteFile(s.path, []byte(token), 0o600)
}

func (s *FileStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := os.Remove(s.path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

// MemStore is an in-memory Store for tests.
type MemStore struct {
	mu    sync.RWMutex
	token string
	set   bool
}

func NewMemStore() *MemStore { return &MemStore{} }

func (s *MemStore) Token() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token, s.set && s.token != ""
}

func (s *MemStore) SetToken(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	s.set = true
	return nil
}

func (s *MemStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	s.set = false
	return nil
}
