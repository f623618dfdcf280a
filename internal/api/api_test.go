package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/matzehuels/radii/pkg/observability"
	"github.com/matzehuels/radii/pkg/session"
	"github.com/matzehuels/radii/pkg/store"
)

func testServer(t *testing.T) *httptest.Server {
	t.Helper()
	srv := New(session.NewManager(store.NewMemoryStore()))
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)
	return ts
}

func do(t *testing.T, method, url, body string) *http.Response {
	t.Helper()
	var r *bytes.Reader
	if body != "" {
		r = bytes.NewReader([]byte(body))
	} else {
		r = bytes.NewReader(nil)
	}
	req, err := http.NewRequest(method, url, r)
	if err != nil {
		t.Fatal(err)
	}
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, url, err)
	}
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func decodeSnapshot(t *testing.T, resp *http.Response) snapshotView {
	t.Helper()
	var v snapshotView
	if err := json.NewDecoder(resp.Body).Decode(&v); err != nil {
		t.Fatalf("decode snapshot: %v", err)
	}
	return v
}

func createSession(t *testing.T, ts *httptest.Server) snapshotView {
	t.Helper()
	resp := do(t, http.MethodPost, ts.URL+"/api/sessions", "")
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create status = %d", resp.StatusCode)
	}
	return decodeSnapshot(t, resp)
}

func TestCreateSession(t *testing.T) {
	ts := testServer(t)
	v := createSession(t, ts)

	if v.ID == "" {
		t.Fatal("empty session id")
	}
	if v.Mode != 4 || v.Shape != "rectangle" {
		t.Errorf("mode/shape = %d/%s, want 4/rectangle", v.Mode, v.Shape)
	}
	if len(v.Corners) != 4 {
		t.Fatalf("corners = %d, want 4", len(v.Corners))
	}
	if v.CSS == "" || !strings.HasPrefix(v.Rule, "border-radius:") {
		t.Errorf("css %q rule %q", v.CSS, v.Rule)
	}

	resp := do(t, http.MethodGet, ts.URL+"/api/sessions/"+v.ID, "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("get status = %d", resp.StatusCode)
	}
	if got := decodeSnapshot(t, resp); got.CSS != v.CSS {
		t.Errorf("get CSS = %q, want %q", got.CSS, v.CSS)
	}
}

func TestMutations(t *testing.T) {
	ts := testServer(t)
	id := createSession(t, ts).ID
	base := ts.URL + "/api/sessions/" + id

	resp := do(t, http.MethodPost, base+"/preset", `{"name":"pill"}`)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("preset status = %d", resp.StatusCode)
	}
	if v := decodeSnapshot(t, resp); v.CSS != "999px" || v.Mode != 1 {
		t.Errorf("after pill: css %q mode %d", v.CSS, v.Mode)
	}

	resp = do(t, http.MethodPost, base+"/corners/tl/link", "")
	if v := decodeSnapshot(t, resp); !v.Corners[0].Linked {
		t.Error("top-left not linked")
	}

	resp = do(t, http.MethodPut, base+"/corners/tl/h", `{"value":"40"}`)
	if v := decodeSnapshot(t, resp); v.CSS != "40px" {
		t.Errorf("after set: css %q, want 40px", v.CSS)
	}

	resp = do(t, http.MethodPut, base+"/mode", `{"mode":2}`)
	if v := decodeSnapshot(t, resp); v.Mode != 2 || v.Corners[1].Label != "TOP-R / BOT-L" {
		t.Errorf("after mode: mode %d label %q", v.Mode, v.Corners[1].Label)
	}

	resp = do(t, http.MethodPut, base+"/shape", `{"shape":"square"}`)
	if v := decodeSnapshot(t, resp); v.Shape != "square" {
		t.Errorf("shape = %q", v.Shape)
	}

	resp = do(t, http.MethodPost, base+"/corners/tl/h/unit", "")
	if v := decodeSnapshot(t, resp); v.Corners[0].H.Unit != "%" || v.Corners[0].H.Max != 100 {
		t.Errorf("after unit toggle: %+v", v.Corners[0].H)
	}

	resp = do(t, http.MethodPost, base+"/reset", "")
	if v := decodeSnapshot(t, resp); v.Mode != 4 {
		t.Errorf("after reset mode = %d", v.Mode)
	}
}

func TestErrors(t *testing.T) {
	ts := testServer(t)
	id := createSession(t, ts).ID
	base := ts.URL + "/api/sessions/" + id

	tests := []struct {
		name   string
		method string
		url    string
		body   string
		status int
		code   string
	}{
		{"bad session id", http.MethodGet, ts.URL + "/api/sessions/nope", "", http.StatusBadRequest, "INVALID_INPUT"},
		{"unknown session", http.MethodGet, ts.URL + "/api/sessions/3f1c9a52-7d8e-4b0a-9c61-2e5f4d3b1a70", "", http.StatusNotFound, "SESSION_NOT_FOUND"},
		{"bad corner", http.MethodPut, base + "/corners/xx/h", `{"value":"1"}`, http.StatusBadRequest, "INVALID_CORNER"},
		{"bad axis", http.MethodPut, base + "/corners/tl/z", `{"value":"1"}`, http.StatusBadRequest, "INVALID_AXIS"},
		{"bad mode", http.MethodPut, base + "/mode", `{"mode":7}`, http.StatusBadRequest, "INVALID_MODE"},
		{"bad shape", http.MethodPut, base + "/shape", `{"shape":"circle"}`, http.StatusBadRequest, "INVALID_SHAPE"},
		{"unknown preset", http.MethodPost, base + "/preset", `{"name":"nope"}`, http.StatusNotFound, "PRESET_NOT_FOUND"},
		{"malformed body", http.MethodPut, base + "/mode", `{"mode":`, http.StatusBadRequest, "INVALID_INPUT"},
		{"unknown field", http.MethodPut, base + "/mode", `{"mood":2}`, http.StatusBadRequest, "INVALID_INPUT"},
		{"bad format", http.MethodGet, base + "/preview.pdf", "", http.StatusBadRequest, "INVALID_FORMAT"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := do(t, tt.method, tt.url, tt.body)
			if resp.StatusCode != tt.status {
				t.Errorf("status = %d, want %d", resp.StatusCode, tt.status)
			}
			var body map[string]errorBody
			if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
				t.Fatalf("decode error body: %v", err)
			}
			if got := string(body["error"].Code); got != tt.code {
				t.Errorf("code = %q, want %q", got, tt.code)
			}
		})
	}
}

func TestPreview(t *testing.T) {
	ts := testServer(t)
	base := ts.URL + "/api/sessions/" + createSession(t, ts).ID

	tests := []struct {
		format      string
		contentType string
		prefix      string
	}{
		{"svg", "image/svg+xml", "<?xml"},
		{"png", "image/png", "\x89PNG"},
		{"json", "application/json", "{"},
		{"css", "text/css; charset=utf-8", "border-radius"},
	}
	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			resp := do(t, http.MethodGet, base+"/preview."+tt.format+"?overlay=true", "")
			if resp.StatusCode != http.StatusOK {
				t.Fatalf("status = %d", resp.StatusCode)
			}
			if got := resp.Header.Get("Content-Type"); got != tt.contentType {
				t.Errorf("Content-Type = %q, want %q", got, tt.contentType)
			}
			var buf bytes.Buffer
			_, _ = buf.ReadFrom(resp.Body)
			if !strings.HasPrefix(buf.String(), tt.prefix) {
				t.Errorf("body starts %q, want prefix %q", buf.String()[:min(16, buf.Len())], tt.prefix)
			}
		})
	}
}

func TestPresets(t *testing.T) {
	ts := testServer(t)
	resp := do(t, http.MethodGet, ts.URL+"/api/presets", "")

	var out []presetView
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatal(err)
	}
	found := false
	for _, p := range out {
		if p.Slug == "pill" {
			found = true
			if p.CSS != "999px" {
				t.Errorf("pill css = %q", p.CSS)
			}
		}
	}
	if !found {
		t.Error("pill preset missing")
	}
}

func TestDeleteSession(t *testing.T) {
	ts := testServer(t)
	url := ts.URL + "/api/sessions/" + createSession(t, ts).ID

	if resp := do(t, http.MethodDelete, url, ""); resp.StatusCode != http.StatusNoContent {
		t.Errorf("delete status = %d", resp.StatusCode)
	}
	if resp := do(t, http.MethodGet, url, ""); resp.StatusCode != http.StatusNotFound {
		t.Errorf("get after delete status = %d", resp.StatusCode)
	}
}

type recordingHTTPHooks struct {
	mu     sync.Mutex
	routes []string
	status []int
}

func (h *recordingHTTPHooks) OnRequest(context.Context, string, string) {}

func (h *recordingHTTPHooks) OnResponse(_ context.Context, _, route string, status int, _ time.Duration) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.routes = append(h.routes, route)
	h.status = append(h.status, status)
}

func TestHTTPHooks(t *testing.T) {
	hooks := &recordingHTTPHooks{}
	observability.SetHTTPHooks(hooks)
	defer observability.Reset()

	ts := testServer(t)
	do(t, http.MethodGet, ts.URL+"/healthz", "")

	hooks.mu.Lock()
	defer hooks.mu.Unlock()
	if len(hooks.routes) != 1 || hooks.routes[0] != "/healthz" || hooks.status[0] != http.StatusOK {
		t.Errorf("recorded %v %v", hooks.routes, hooks.status)
	}
}
