package store

import "context"

// NullStore is a no-op store that never keeps anything.
// Useful for testing or when persistence should be disabled.
type NullStore struct{}

// NewNullStore creates a null store.
func NewNullStore() *NullStore {
	return &NullStore{}
}

// Load always reports ErrNotFound.
func (NullStore) Load(ctx context.Context, key string) ([]byte, error) {
	return nil, ErrNotFound
}

// Save does nothing.
func (NullStore) Save(ctx context.Context, key string, data []byte) error { return nil }

// Delete does nothing.
func (NullStore) Delete(ctx context.Context, key string) error { return nil }

// Close does nothing.
func (NullStore) Close() error { return nil }

var _ Store = (*NullStore)(nil)
