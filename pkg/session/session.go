// Package session manages editor sessions for the HTTP API.
//
// Each session owns one [editor.Editor] whose state is written through to a
// shared [store.Store] under a per-session key. The [Manager] keeps live
// sessions in memory with a sliding expiry and falls back to the store when a
// session id is not in memory, so a restarted server (or a second instance
// sharing a Redis or MongoDB backend) picks up where the last one left off.
//
// # Usage
//
//	m := session.NewManager(store.NewMemoryStore())
//	sess, err := m.Create(ctx)
//	if err != nil {
//	    return err
//	}
//	err = sess.Do(func(ed *editor.Editor) error {
//	    return ed.SetMode(ctx, radius.ModeAll)
//	})
package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/matzehuels/radii/pkg/editor"
	apperrors "github.com/matzehuels/radii/pkg/errors"
	"github.com/matzehuels/radii/pkg/radius"
	"github.com/matzehuels/radii/pkg/store"
)

// DefaultTTL is how long an idle session stays in memory.
const DefaultTTL = 24 * time.Hour

// keyPrefix namespaces session state in the backing store.
const keyPrefix = "session-"

// Key returns the storage key for a session id.
func Key(id string) string { return keyPrefix + id }

// Session is one editor bound to an id.
type Session struct {
	ID        string
	CreatedAt time.Time

	mu        sync.Mutex
	expiresAt time.Time
	editor    *editor.Editor
}

// IsExpired reports whether the session has been idle past its TTL.
func (s *Session) IsExpired() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return time.Now().After(s.expiresAt)
}

// Do runs fn with exclusive access to the session's editor.
func (s *Session) Do(fn func(*editor.Editor) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(s.editor)
}

// Snapshot returns the derived views of the current state.
func (s *Session) Snapshot() editor.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.editor.Snapshot()
}

func (s *Session) touch(ttl time.Duration) {
	s.mu.Lock()
	s.expiresAt = time.Now().Add(ttl)
	s.mu.Unlock()
}

// Option configures a Manager.
type Option func(*Manager)

// WithTTL sets the idle expiry. Defaults to DefaultTTL.
func WithTTL(d time.Duration) Option {
	return func(m *Manager) {
		if d > 0 {
			m.ttl = d
		}
	}
}

// WithTimeout bounds each store operation made by session editors.
func WithTimeout(d time.Duration) Option {
	return func(m *Manager) { m.timeout = d }
}

// WithLogger sets the logger handed to session editors.
func WithLogger(l *log.Logger) Option {
	return func(m *Manager) { m.logger = l }
}

// Manager is a registry of live sessions. It is safe for concurrent use.
type Manager struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	store    store.Store
	ttl      time.Duration
	timeout  time.Duration
	logger   *log.Logger
}

// NewManager creates a Manager persisting session state to s.
func NewManager(s store.Store, opts ...Option) *Manager {
	if s == nil {
		s = store.NewNullStore()
	}
	m := &Manager{
		sessions: make(map[string]*Session),
		store:    s,
		ttl:      DefaultTTL,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Create starts a session at the default state and persists it.
func (m *Manager) Create(ctx context.Context) (*Session, error) {
	id := uuid.NewString()
	sess := m.newSession(id, radius.DefaultState())
	sess.editor.Replace(ctx, radius.DefaultState())

	m.mu.Lock()
	m.sessions[id] = sess
	m.mu.Unlock()
	return sess, nil
}

// Get returns the session for id. Sessions not held in memory, or held but
// idle past their TTL, are restored from the store, so expiry only evicts
// and never ends a session. Ids unknown to the store yield SESSION_NOT_FOUND.
func (m *Manager) Get(ctx context.Context, id string) (*Session, error) {
	if err := apperrors.ValidateSessionID(id); err != nil {
		return nil, err
	}

	m.mu.RLock()
	sess, ok := m.sessions[id]
	m.mu.RUnlock()
	if ok && !sess.IsExpired() {
		sess.touch(m.ttl)
		return sess, nil
	}

	data, err := m.store.Load(ctx, Key(id))
	if errors.Is(err, store.ErrNotFound) {
		m.drop(id)
		return nil, apperrors.New(apperrors.ErrCodeSessionNotFound, "session %s not found", id)
	}
	if err != nil {
		return nil, apperrors.Wrap(apperrors.StorageCode(err), err, "load session %s", id)
	}

	fresh := m.newSession(id, radius.Load(data))
	m.mu.Lock()
	if existing, ok := m.sessions[id]; ok && !existing.IsExpired() {
		fresh = existing
		fresh.touch(m.ttl)
	} else {
		m.sessions[id] = fresh
	}
	m.mu.Unlock()
	return fresh, nil
}

// Delete ends a session and removes its stored state.
func (m *Manager) Delete(ctx context.Context, id string) error {
	if err := apperrors.ValidateSessionID(id); err != nil {
		return err
	}
	m.drop(id)
	if err := m.store.Delete(ctx, Key(id)); err != nil {
		return apperrors.Wrap(apperrors.StorageCode(err), err, "delete session %s", id)
	}
	return nil
}

// Cleanup evicts expired sessions from memory and returns how many were
// removed. Their stored state is kept.
func (m *Manager) Cleanup() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	n := 0
	for id, sess := range m.sessions {
		if sess.IsExpired() {
			delete(m.sessions, id)
			n++
		}
	}
	return n
}

// Len returns the number of sessions held in memory.
func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

func (m *Manager) drop(id string) {
	m.mu.Lock()
	delete(m.sessions, id)
	m.mu.Unlock()
}

func (m *Manager) newSession(id string, st radius.State) *Session {
	now := time.Now()
	opts := []editor.Option{editor.WithKey(Key(id)), editor.WithTimeout(m.timeout)}
	if m.logger != nil {
		opts = append(opts, editor.WithLogger(m.logger))
	}
	return &Session{
		ID:        id,
		CreatedAt: now,
		expiresAt: now.Add(m.ttl),
		editor:    editor.New(m.store, st, opts...),
	}
}
