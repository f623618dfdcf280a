// Package store persists the editor's state blob.
//
// The editor keeps exactly one JSON blob per key. Backends only move bytes;
// validating and merging the blob is the job of [radius.Decode]. Implementations:
//   - [FileStore]: one JSON file per key, for the CLI and terminal editor
//   - [MemoryStore]: process-local map, for tests and the HTTP API
//   - [RedisStore]: Redis strings, for API deployments with several instances
//   - [MongoStore]: one document per key in a MongoDB collection
//   - [NullStore]: discards writes, for --no-persist runs
//
// [Open] builds one of these from a [Config] and wraps it with [Instrument]
// so every load and save reaches the registered observability hooks.
package store

import (
	"context"
	"errors"
	"time"

	apperrors "github.com/matzehuels/radii/pkg/errors"
	"github.com/matzehuels/radii/pkg/observability"
)

// DefaultKey is the key the editor state is stored under.
const DefaultKey = "border-radius-app-state"

// DefaultTimeout bounds a single load or save against a remote backend.
const DefaultTimeout = 5 * time.Second

// ErrNotFound is returned by Load when nothing is stored under the key.
var ErrNotFound = errors.New("not found")

// Store is a key/value slot for serialized editor state.
type Store interface {
	// Load returns the bytes stored under key, or ErrNotFound.
	Load(ctx context.Context, key string) ([]byte, error)

	// Save replaces whatever is stored under key.
	Save(ctx context.Context, key string, data []byte) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases connections held by the backend.
	Close() error
}

// Backend names accepted by Config.Backend.
const (
	BackendFile   = "file"
	BackendMemory = "memory"
	BackendNone   = "none"
	BackendRedis  = "redis"
	BackendMongo  = "mongo"
)

// Config selects and configures a backend.
type Config struct {
	Backend string        `toml:"backend"`
	Dir     string        `toml:"dir"`
	Key     string        `toml:"key"`
	Timeout time.Duration `toml:"timeout"`

	RedisAddr     string `toml:"redis_addr"`
	RedisPassword string `toml:"redis_password"`
	RedisDB       int    `toml:"redis_db"`
	RedisPrefix   string `toml:"redis_prefix"`

	MongoURI        string `toml:"mongo_uri"`
	MongoDatabase   string `toml:"mongo_database"`
	MongoCollection string `toml:"mongo_collection"`
}

// StateKey returns the configured key, or DefaultKey.
func (c Config) StateKey() string {
	if c.Key == "" {
		return DefaultKey
	}
	return c.Key
}

// OpTimeout returns the configured per-operation timeout, or DefaultTimeout.
func (c Config) OpTimeout() time.Duration {
	if c.Timeout <= 0 {
		return DefaultTimeout
	}
	return c.Timeout
}

// Open connects the backend named by cfg.Backend. An empty backend means file.
func Open(ctx context.Context, cfg Config) (Store, error) {
	if err := apperrors.ValidateStateKey(cfg.StateKey()); err != nil {
		return nil, err
	}

	var (
		s   Store
		err error
	)
	backend := cfg.Backend
	switch backend {
	case "", BackendFile:
		backend = BackendFile
		s, err = NewFileStore(cfg.Dir)
	case BackendMemory:
		s = NewMemoryStore()
	case BackendNone:
		s = NewNullStore()
	case BackendRedis:
		ctx, cancel := context.WithTimeout(ctx, cfg.OpTimeout())
		defer cancel()
		s, err = NewRedisStore(ctx, RedisOptions{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
			Prefix:   cfg.RedisPrefix,
		})
	case BackendMongo:
		ctx, cancel := context.WithTimeout(ctx, cfg.OpTimeout())
		defer cancel()
		s, err = NewMongoStore(ctx, MongoOptions{
			URI:        cfg.MongoURI,
			Database:   cfg.MongoDatabase,
			Collection: cfg.MongoCollection,
		})
	default:
		return nil, apperrors.New(apperrors.ErrCodeInvalidInput,
			"unknown store backend %q (want file, memory, none, redis or mongo)", cfg.Backend)
	}
	if err != nil {
		return nil, apperrors.Wrap(apperrors.StorageCode(err), err, "open %s store", backend)
	}
	return Instrument(s, backend), nil
}

// instrumented reports every call to the registered StoreHooks.
type instrumented struct {
	Store
	backend string
}

// Instrument wraps s so loads and saves are reported to
// observability.Store() under the given backend name.
func Instrument(s Store, backend string) Store {
	return &instrumented{Store: s, backend: backend}
}

func (s *instrumented) Load(ctx context.Context, key string) ([]byte, error) {
	start := time.Now()
	data, err := s.Store.Load(ctx, key)
	hit := err == nil
	hookErr := err
	if errors.Is(err, ErrNotFound) {
		hookErr = nil
	}
	observability.Store().OnLoad(ctx, s.backend, hit, time.Since(start), hookErr)
	return data, err
}

func (s *instrumented) Save(ctx context.Context, key string, data []byte) error {
	start := time.Now()
	err := s.Store.Save(ctx, key, data)
	observability.Store().OnSave(ctx, s.backend, len(data), time.Since(start), err)
	return err
}

// Unwrap returns the wrapped backend.
func (s *instrumented) Unwrap() Store { return s.Store }
