// Package editor owns one radius state and keeps it in sync with a store.
//
// Every mutation goes through an [Editor] method, which applies it to the
// in-memory [radius.State] and then writes the whole state through to the
// backing [store.Store]. Write failures are logged at debug level and
// otherwise ignored: the in-memory state is always authoritative.
//
// An Editor is not safe for concurrent use. Callers that share one (the HTTP
// API) serialize access themselves.
package editor

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/charmbracelet/log"

	apperrors "github.com/matzehuels/radii/pkg/errors"
	"github.com/matzehuels/radii/pkg/geometry"
	"github.com/matzehuels/radii/pkg/observability"
	"github.com/matzehuels/radii/pkg/radius"
	"github.com/matzehuels/radii/pkg/shorthand"
	"github.com/matzehuels/radii/pkg/store"
)

// Editor coordinates the state, its derived views and persistence.
type Editor struct {
	state   radius.State
	store   store.Store
	key     string
	timeout time.Duration
	logger  *log.Logger
}

// Option configures an Editor.
type Option func(*Editor)

// WithKey sets the storage key. Defaults to store.DefaultKey.
func WithKey(key string) Option {
	return func(e *Editor) {
		if key != "" {
			e.key = key
		}
	}
}

// WithTimeout bounds each load and save. Defaults to store.DefaultTimeout.
func WithTimeout(d time.Duration) Option {
	return func(e *Editor) {
		if d > 0 {
			e.timeout = d
		}
	}
}

// WithLogger sets the logger persistence failures are reported to.
func WithLogger(l *log.Logger) Option {
	return func(e *Editor) {
		if l != nil {
			e.logger = l
		}
	}
}

func newEditor(s store.Store, state radius.State, opts []Option) *Editor {
	if s == nil {
		s = store.NewNullStore()
	}
	e := &Editor{
		state:   state,
		store:   s,
		key:     store.DefaultKey,
		timeout: store.DefaultTimeout,
		logger:  log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Open loads the persisted state from s, falling back to the built-in
// default when nothing is stored or the blob fails validation. It never
// fails: a broken store only costs the previous session.
func Open(ctx context.Context, s store.Store, opts ...Option) *Editor {
	e := newEditor(s, radius.DefaultState(), opts)
	e.state = e.load(ctx)
	return e
}

// New wraps an explicit state without reading the store. The state is not
// persisted until the first mutation.
func New(s store.Store, state radius.State, opts ...Option) *Editor {
	return newEditor(s, state, opts)
}

func (e *Editor) load(ctx context.Context) radius.State {
	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	data, err := e.store.Load(ctx, e.key)
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			e.logger.Debug("load state", "key", e.key, "err", err)
		}
		return radius.DefaultState()
	}
	st, err := radius.Decode(data)
	if err != nil {
		e.logger.Debug("discard stored state", "key", e.key, "err", err)
		return radius.DefaultState()
	}
	return st
}

// Reload replaces the in-memory state with what the store holds now. It is
// used when another process rewrote the state file.
func (e *Editor) Reload(ctx context.Context) {
	e.state = e.load(ctx)
}

// Key returns the storage key.
func (e *Editor) Key() string { return e.key }

// State returns a copy of the current state.
func (e *Editor) State() radius.State { return e.state }

// =============================================================================
// Mutations
// =============================================================================

// SetValue writes raw to the active unit of corner c, axis a. Malformed
// input is stored as 0.
func (e *Editor) SetValue(ctx context.Context, c radius.Corner, a radius.Axis, raw string) error {
	if err := checkCornerAxis(c, a); err != nil {
		return err
	}
	e.state.SetValue(c, a, raw)
	e.commit(ctx, "set_value")
	return nil
}

// ToggleUnit flips the active unit of corner c, axis a.
func (e *Editor) ToggleUnit(ctx context.Context, c radius.Corner, a radius.Axis) error {
	if err := checkCornerAxis(c, a); err != nil {
		return err
	}
	e.state.ToggleUnit(c, a)
	e.commit(ctx, "toggle_unit")
	return nil
}

// ToggleLink flips the link flag of corner c.
func (e *Editor) ToggleLink(ctx context.Context, c radius.Corner) error {
	if !c.Valid() {
		return apperrors.New(apperrors.ErrCodeInvalidCorner, "invalid corner %d", int(c))
	}
	e.state.ToggleLink(c)
	e.commit(ctx, "toggle_link")
	return nil
}

// SetMode switches the symmetry mode.
func (e *Editor) SetMode(ctx context.Context, m radius.Mode) error {
	if !m.Valid() {
		return apperrors.New(apperrors.ErrCodeInvalidMode, "invalid mode %d (want 1-4)", int(m))
	}
	e.state.Mode = m
	e.commit(ctx, "set_mode")
	return nil
}

// SetShape switches the preview box.
func (e *Editor) SetShape(ctx context.Context, s radius.Shape) error {
	if !s.Valid() {
		return apperrors.New(apperrors.ErrCodeInvalidShape, "invalid shape %d", int(s))
	}
	e.state.Shape = s
	e.commit(ctx, "set_shape")
	return nil
}

// ApplyPreset applies the preset with the given name or slug.
func (e *Editor) ApplyPreset(ctx context.Context, name string) error {
	p, err := radius.FindPreset(name)
	if err != nil {
		return err
	}
	e.state.ApplyPreset(p)
	e.commit(ctx, "apply_preset")
	return nil
}

// Reset restores the built-in default state.
func (e *Editor) Reset(ctx context.Context) {
	e.state = radius.DefaultState()
	e.commit(ctx, "reset")
}

// Replace swaps in a whole state, e.g. one decoded from a request body.
func (e *Editor) Replace(ctx context.Context, st radius.State) {
	e.state = st
	e.commit(ctx, "replace")
}

func checkCornerAxis(c radius.Corner, a radius.Axis) error {
	if !c.Valid() {
		return apperrors.New(apperrors.ErrCodeInvalidCorner, "invalid corner %d", int(c))
	}
	if !a.Valid() {
		return apperrors.New(apperrors.ErrCodeInvalidAxis, "invalid axis %d", int(a))
	}
	return nil
}

func (e *Editor) commit(ctx context.Context, op string) {
	observability.Editor().OnMutation(ctx, op)
	e.persist(ctx)
}

// persist writes the state through. Failures are swallowed.
func (e *Editor) persist(ctx context.Context) {
	start := time.Now()
	err := e.save(ctx)
	observability.Editor().OnPersist(ctx, time.Since(start), err)
	if err != nil {
		e.logger.Debug("persist state", "key", e.key, "err", err)
	}
}

func (e *Editor) save(ctx context.Context) error {
	data, err := radius.Encode(e.state)
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()
	return e.store.Save(ctx, e.key, data)
}

// =============================================================================
// Derived views
// =============================================================================

// Snapshot is everything a front end draws for one state.
type Snapshot struct {
	State      radius.State
	Derived    radius.Derived
	CSS        string
	Rule       string
	Longhands  []shorthand.Declaration
	Projection geometry.Projection
}

// Snapshot resolves the current state and derives the CSS text and overlay
// geometry from it.
func (e *Editor) Snapshot() Snapshot {
	st := e.state
	return Compute(&st)
}

// Compute derives a Snapshot from st without an Editor.
func Compute(st *radius.State) Snapshot {
	d := st.Resolve()
	css := shorthand.Serialize(d, st.Mode.Normalize(), st.Linked())
	w, h := st.Size()
	return Snapshot{
		State:      *st,
		Derived:    d,
		CSS:        css,
		Rule:       shorthand.Rule(css),
		Longhands:  shorthand.Longhands(d),
		Projection: geometry.Project(d, w, h),
	}
}
