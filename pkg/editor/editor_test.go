package editor

import (
	"context"
	"errors"
	"testing"
	"time"

	apperrors "github.com/matzehuels/radii/pkg/errors"
	"github.com/matzehuels/radii/pkg/observability"
	"github.com/matzehuels/radii/pkg/radius"
	"github.com/matzehuels/radii/pkg/store"
)

// failingStore rejects every write.
type failingStore struct{ store.NullStore }

func (failingStore) Save(context.Context, string, []byte) error { return errors.New("disk full") }

func stored(t *testing.T, s *store.MemoryStore, key string) radius.State {
	t.Helper()
	data, err := s.Load(context.Background(), key)
	if err != nil {
		t.Fatalf("nothing persisted under %q: %v", key, err)
	}
	st, err := radius.Decode(data)
	if err != nil {
		t.Fatalf("persisted blob invalid: %v", err)
	}
	return st
}

func TestOpenEmptyStore(t *testing.T) {
	e := Open(context.Background(), store.NewMemoryStore())
	if e.State() != radius.DefaultState() {
		t.Errorf("State = %+v, want DefaultState", e.State())
	}
	if e.Key() != store.DefaultKey {
		t.Errorf("Key = %q", e.Key())
	}
}

func TestOpenDiscardsInvalidBlob(t *testing.T) {
	ctx := context.Background()
	s := store.NewMemoryStore()
	_ = s.Save(ctx, store.DefaultKey, []byte(`{"radiiAbsolute":{"tl":[1,2]}}`))

	e := Open(ctx, s)
	if e.State() != radius.DefaultState() {
		t.Error("invalid blob should fall back to DefaultState")
	}
}

func TestOpenRestoresState(t *testing.T) {
	ctx := context.Background()
	s := store.NewMemoryStore()

	first := Open(ctx, s)
	if err := first.SetMode(ctx, radius.ModeDiagonal); err != nil {
		t.Fatal(err)
	}
	if err := first.SetShape(ctx, radius.Square); err != nil {
		t.Fatal(err)
	}
	if err := first.ToggleLink(ctx, radius.TopRight); err != nil {
		t.Fatal(err)
	}

	second := Open(ctx, s)
	if second.State() != first.State() {
		t.Errorf("reopened state = %+v, want %+v", second.State(), first.State())
	}
}

func TestMutationsWriteThrough(t *testing.T) {
	ctx := context.Background()
	s := store.NewMemoryStore()
	e := Open(ctx, s, WithKey("k"))

	tests := []struct {
		name  string
		apply func() error
		check func(radius.State) bool
	}{
		{
			"set value",
			func() error { return e.SetValue(ctx, radius.TopRight, radius.Horizontal, "42px") },
			func(st radius.State) bool { return st.DisplayValue(radius.TopRight, radius.Horizontal) == 42 },
		},
		{
			"toggle unit",
			func() error { return e.ToggleUnit(ctx, radius.TopRight, radius.Vertical) },
			func(st radius.State) bool { return st.ActiveUnit(radius.TopRight, radius.Vertical) == radius.Relative },
		},
		{
			"toggle link",
			func() error { return e.ToggleLink(ctx, radius.BottomLeft) },
			func(st radius.State) bool { return st.Corners[radius.BottomLeft].Linked },
		},
		{
			"set mode",
			func() error { return e.SetMode(ctx, radius.ModeThree) },
			func(st radius.State) bool { return st.Mode == radius.ModeThree },
		},
		{
			"set shape",
			func() error { return e.SetShape(ctx, radius.Square) },
			func(st radius.State) bool { return st.Shape == radius.Square },
		},
		{
			"apply preset",
			func() error { return e.ApplyPreset(ctx, "pill") },
			func(st radius.State) bool {
				return st.Mode == radius.ModeAll && st.Corners[radius.TopLeft].Absolute == [2]int{999, 999}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.apply(); err != nil {
				t.Fatalf("apply: %v", err)
			}
			if !tt.check(e.State()) {
				t.Errorf("in-memory state not updated: %+v", e.State())
			}
			if got := stored(t, s, "k"); got != e.State() {
				t.Errorf("persisted %+v, want %+v", got, e.State())
			}
		})
	}
}

func TestRejectedMutationsLeaveStateAlone(t *testing.T) {
	ctx := context.Background()
	s := store.NewMemoryStore()
	e := Open(ctx, s)
	before := e.State()

	tests := []struct {
		name string
		err  error
		code apperrors.Code
	}{
		{"mode", e.SetMode(ctx, radius.Mode(5)), apperrors.ErrCodeInvalidMode},
		{"shape", e.SetShape(ctx, radius.Shape(9)), apperrors.ErrCodeInvalidShape},
		{"preset", e.ApplyPreset(ctx, "hexagon"), apperrors.ErrCodePresetNotFound},
		{"corner", e.SetValue(ctx, radius.Corner(7), radius.Horizontal, "1"), apperrors.ErrCodeInvalidCorner},
		{"axis", e.ToggleUnit(ctx, radius.TopLeft, radius.Axis(3)), apperrors.ErrCodeInvalidAxis},
		{"link", e.ToggleLink(ctx, radius.Corner(-1)), apperrors.ErrCodeInvalidCorner},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !apperrors.Is(tt.err, tt.code) {
				t.Errorf("err = %v, want %s", tt.err, tt.code)
			}
		})
	}

	if e.State() != before {
		t.Error("rejected mutations changed the state")
	}
	if len(s.Keys()) != 0 {
		t.Error("rejected mutations were persisted")
	}
}

func TestPersistFailureIsSwallowed(t *testing.T) {
	ctx := context.Background()
	e := Open(ctx, failingStore{})

	if err := e.SetValue(ctx, radius.TopLeft, radius.Vertical, "77"); err != nil {
		t.Fatalf("SetValue returned %v, want nil despite store failure", err)
	}
	st := e.State()
	if got := st.DisplayValue(radius.TopLeft, radius.Vertical); got != 77 {
		t.Errorf("DisplayValue = %d, want 77", got)
	}
}

func TestReset(t *testing.T) {
	ctx := context.Background()
	s := store.NewMemoryStore()
	e := Open(ctx, s)
	_ = e.ApplyPreset(ctx, "blob")

	e.Reset(ctx)
	if e.State() != radius.DefaultState() {
		t.Error("Reset should restore DefaultState")
	}
	if stored(t, s, store.DefaultKey) != radius.DefaultState() {
		t.Error("Reset should persist DefaultState")
	}
}

func TestReload(t *testing.T) {
	ctx := context.Background()
	s := store.NewMemoryStore()
	a := Open(ctx, s)
	b := Open(ctx, s)

	_ = a.SetMode(ctx, radius.ModeAll)
	if b.State().Mode == radius.ModeAll {
		t.Fatal("editors should not share memory")
	}
	b.Reload(ctx)
	if b.State().Mode != radius.ModeAll {
		t.Errorf("Reload mode = %v, want 1", b.State().Mode)
	}
}

func TestSnapshot(t *testing.T) {
	ctx := context.Background()
	e := New(store.NewMemoryStore(), radius.DefaultState())
	_ = e.ApplyPreset(ctx, "rounded")

	snap := e.Snapshot()
	if snap.CSS != "24px" {
		t.Errorf("CSS = %q, want 24px", snap.CSS)
	}
	if snap.Rule != "border-radius: 24px;" {
		t.Errorf("Rule = %q", snap.Rule)
	}
	if len(snap.Longhands) != 4 {
		t.Errorf("Longhands = %d entries", len(snap.Longhands))
	}
	if snap.Projection.Width != 500 || snap.Projection.Height != 300 {
		t.Errorf("projection box = %vx%v", snap.Projection.Width, snap.Projection.Height)
	}
	for _, c := range radius.Corners {
		if snap.Projection.Corners[c].RX != 24 {
			t.Errorf("%s RX = %v, want 24", c, snap.Projection.Corners[c].RX)
		}
	}
}

type recordingEditorHooks struct {
	observability.NoopEditorHooks
	ops      []string
	persists int
	failures int
}

func (h *recordingEditorHooks) OnMutation(_ context.Context, op string) { h.ops = append(h.ops, op) }

func (h *recordingEditorHooks) OnPersist(_ context.Context, _ time.Duration, err error) {
	h.persists++
	if err != nil {
		h.failures++
	}
}

func TestHooks(t *testing.T) {
	hooks := &recordingEditorHooks{}
	observability.SetEditorHooks(hooks)
	defer observability.Reset()

	ctx := context.Background()
	e := Open(ctx, failingStore{})
	_ = e.ToggleLink(ctx, radius.TopLeft)
	_ = e.SetMode(ctx, radius.ModeAll)

	if len(hooks.ops) != 2 || hooks.ops[0] != "toggle_link" || hooks.ops[1] != "set_mode" {
		t.Errorf("ops = %v", hooks.ops)
	}
	if hooks.persists != 2 || hooks.failures != 2 {
		t.Errorf("persists = %d failures = %d, want 2 and 2", hooks.persists, hooks.failures)
	}
}
