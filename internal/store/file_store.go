package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"dante/internal/domain"
)

// FileKV stores one JSON file per key under dir.
type FileKV struct {
	dir string
	mu  sync.Mutex
}

// NewFileKV returns a FileKV rooted at dir. The directory is created lazily.
func NewFileKV(dir string) *FileKV { return &FileKV{dir: dir} }

func (s *FileKV) path(key string) (string, error) {
	if key == "" || strings.ContainsAny(key, `/\`) || strings.HasPrefix(key, ".") {
		return "", fmt.Errorf("invalid store key %q", key)
	}
	return filepath.Join(s.dir, key+".json"), nil
}

// Get returns the stored bytes for key, or nil if it was never written.
func (s *FileKV) Get(_ context.Context, key string) ([]byte, error) {
	p, err := s.path(key)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return readFile(p)
}

// Set atomically replaces the value stored for key.
func (s *FileKV) Set(_ context.Context, key string, value []byte) error {
	p, err := s.path(key)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := os.MkdirAll(s.dir, 0o700); err != nil {
		return err
	}
	return writeFile(p, value, 0o600)
}

// Delete removes key.
func (s *FileKV) Delete(_ context.Context, key string) error {
	p, err := s.path(key)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return removeFile(p)
}

// Compile-time assertion that FileKV implements domain.KV.
var _ domain.KV = (*FileKV)(nil)
