package observability

import (
	"context"
	"testing"
	"time"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	e := NoopEditorHooks{}
	e.OnMutation(ctx, "set_value")
	e.OnPersist(ctx, time.Millisecond, nil)

	s := NoopStoreHooks{}
	s.OnLoad(ctx, "file", true, time.Millisecond, nil)
	s.OnSave(ctx, "redis", 512, time.Millisecond, nil)

	r := NoopRenderHooks{}
	r.OnRenderStart(ctx, "svg")
	r.OnRenderComplete(ctx, "svg", 2048, time.Millisecond, nil)

	h := NoopHTTPHooks{}
	h.OnRequest(ctx, "GET", "/sessions/{id}")
	h.OnResponse(ctx, "GET", "/sessions/{id}", 200, time.Millisecond)
}

func TestGlobalHooksRegistry(t *testing.T) {
	// Reset to known state
	Reset()

	// Verify defaults are noop
	if _, ok := Editor().(NoopEditorHooks); !ok {
		t.Error("Editor() should return NoopEditorHooks by default")
	}
	if _, ok := Store().(NoopStoreHooks); !ok {
		t.Error("Store() should return NoopStoreHooks by default")
	}
	if _, ok := Render().(NoopRenderHooks); !ok {
		t.Error("Render() should return NoopRenderHooks by default")
	}
	if _, ok := HTTP().(NoopHTTPHooks); !ok {
		t.Error("HTTP() should return NoopHTTPHooks by default")
	}

	// Set custom hooks
	customEditor := &testEditorHooks{}
	SetEditorHooks(customEditor)
	if Editor() != customEditor {
		t.Error("SetEditorHooks should set custom hooks")
	}

	customStore := &testStoreHooks{}
	SetStoreHooks(customStore)
	if Store() != customStore {
		t.Error("SetStoreHooks should set custom hooks")
	}

	customRender := &testRenderHooks{}
	SetRenderHooks(customRender)
	if Render() != customRender {
		t.Error("SetRenderHooks should set custom hooks")
	}

	customHTTP := &testHTTPHooks{}
	SetHTTPHooks(customHTTP)
	if HTTP() != customHTTP {
		t.Error("SetHTTPHooks should set custom hooks")
	}

	// Reset and verify
	Reset()
	if _, ok := Editor().(NoopEditorHooks); !ok {
		t.Error("Reset() should restore NoopEditorHooks")
	}
	if _, ok := Store().(NoopStoreHooks); !ok {
		t.Error("Reset() should restore NoopStoreHooks")
	}
}

func TestSetNilHooksIsIgnored(t *testing.T) {
	Reset()

	custom := &testEditorHooks{}
	SetEditorHooks(custom)

	// Setting nil should be ignored
	SetEditorHooks(nil)

	if Editor() != custom {
		t.Error("SetEditorHooks(nil) should be ignored")
	}

	Reset()
}

// Test implementations
type testEditorHooks struct{ NoopEditorHooks }
type testStoreHooks struct{ NoopStoreHooks }
type testRenderHooks struct{ NoopRenderHooks }
type testHTTPHooks struct{ NoopHTTPHooks }
