package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	apperrors "github.com/matzehuels/radii/pkg/errors"
)

// FileStore keeps one JSON file per key in a config directory.
type FileStore struct {
	mu  sync.RWMutex
	dir string
}

// DefaultDir returns ~/.config/radii/state.
func DefaultDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home dir: %w", err)
	}
	return filepath.Join(home, ".config", "radii", "state"), nil
}

// NewFileStore creates a file store in dir, creating the directory if needed.
// If dir is empty, DefaultDir is used.
func NewFileStore(dir string) (*FileStore, error) {
	if dir == "" {
		d, err := DefaultDir()
		if err != nil {
			return nil, err
		}
		dir = d
	}
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, fmt.Errorf("create state dir: %w", err)
	}
	return &FileStore{dir: dir}, nil
}

// Load reads the file for key.
func (s *FileStore) Load(ctx context.Context, key string) ([]byte, error) {
	if err := apperrors.ValidateStateKey(key); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, err := os.ReadFile(s.Path(key))
	if os.IsNotExist(err) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("read state file: %w", err)
	}
	return data, nil
}

// Save writes data to a temporary file and renames it over the old one, so a
// crash never leaves a truncated blob behind.
func (s *FileStore) Save(ctx context.Context, key string, data []byte) error {
	if err := apperrors.ValidateStateKey(key); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	tmp, err := os.CreateTemp(s.dir, key+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp state file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write state file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close state file: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.Path(key)); err != nil {
		return fmt.Errorf("replace state file: %w", err)
	}
	return nil
}

// Delete removes the file for key.
func (s *FileStore) Delete(ctx context.Context, key string) error {
	if err := apperrors.ValidateStateKey(key); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.Path(key)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove state file: %w", err)
	}
	return nil
}

// Close does nothing for the file store.
func (s *FileStore) Close() error { return nil }

// Dir returns the directory state files live in.
func (s *FileStore) Dir() string { return s.dir }

// Path returns the file path used for key.
func (s *FileStore) Path(key string) string {
	return filepath.Join(s.dir, key+".json")
}

var _ Store = (*FileStore)(nil)
