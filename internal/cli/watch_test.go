package cli

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/radii/pkg/store"
)

func TestWatchFileSignalsOnSave(t *testing.T) {
	dir := t.TempDir()
	fs, err := store.NewFileStore(dir)
	if err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	changes, stop, err := watchFile(ctx, fs.Path(store.DefaultKey), log.New(io.Discard))
	if err != nil {
		t.Fatalf("watchFile: %v", err)
	}
	defer stop()

	// Unrelated files in the same directory are ignored.
	if err := os.WriteFile(filepath.Join(dir, "other.json"), []byte("{}"), 0o644); err != nil {
		t.Fatal(err)
	}
	select {
	case <-changes:
		t.Fatal("signalled for an unrelated file")
	case <-time.After(100 * time.Millisecond):
	}

	if err := fs.Save(ctx, store.DefaultKey, []byte(`{"mode":1}`)); err != nil {
		t.Fatal(err)
	}
	select {
	case <-changes:
	case <-time.After(2 * time.Second):
		t.Fatal("no signal after saving the watched key")
	}
}

func TestWaitForChange(t *testing.T) {
	if waitForChange(nil) != nil {
		t.Error("nil channel should yield a nil command")
	}

	ch := make(chan struct{}, 1)
	ch <- struct{}{}
	if _, ok := waitForChange(ch)().(stateChangedMsg); !ok {
		t.Error("expected stateChangedMsg")
	}

	close(ch)
	if msg := waitForChange(ch)(); msg != nil {
		t.Errorf("closed channel yielded %T", msg)
	}
}
