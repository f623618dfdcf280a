package cli

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/radii/pkg/observability"
)

// logHooks reports editor, store, render and HTTP events to the CLI logger.
// Routine events log at debug, so they only show with --verbose.
type logHooks struct {
	logger *log.Logger
}

// installLogHooks registers l as the sink for every hook family.
func installLogHooks(l *log.Logger) {
	h := logHooks{logger: l}
	observability.SetEditorHooks(h)
	observability.SetStoreHooks(h)
	observability.SetRenderHooks(h)
	observability.SetHTTPHooks(h)
}

func (h logHooks) OnMutation(_ context.Context, op string) {
	h.logger.Debug("mutation", "op", op)
}

func (h logHooks) OnPersist(_ context.Context, d time.Duration, err error) {
	if err != nil {
		h.logger.Warn("State not saved", "err", err)
		return
	}
	h.logger.Debug("persisted", "took", d.Round(time.Microsecond))
}

func (h logHooks) OnLoad(_ context.Context, backend string, hit bool, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("load failed", "backend", backend, "err", err)
		return
	}
	h.logger.Debug("loaded", "backend", backend, "hit", hit, "took", d.Round(time.Microsecond))
}

func (h logHooks) OnSave(_ context.Context, backend string, size int, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("save failed", "backend", backend, "err", err)
		return
	}
	h.logger.Debug("saved", "backend", backend, "bytes", size, "took", d.Round(time.Microsecond))
}

func (h logHooks) OnRenderStart(_ context.Context, format string) {
	h.logger.Debug("render", "format", format)
}

func (h logHooks) OnRenderComplete(_ context.Context, format string, size int, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("render failed", "format", format, "err", err)
		return
	}
	h.logger.Debug("rendered", "format", format, "bytes", size, "took", d.Round(time.Microsecond))
}

func (h logHooks) OnRequest(context.Context, string, string) {}

func (h logHooks) OnResponse(_ context.Context, method, route string, status int, d time.Duration) {
	h.logger.Info(method+" "+route, "status", status, "took", d.Round(time.Microsecond))
}
