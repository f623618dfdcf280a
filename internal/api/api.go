// Package api serves the radius editor over HTTP.
//
// Every client works on its own session, created with POST /api/sessions and
// addressed by the returned uuid afterwards. Mutations answer with the new
// snapshot so a front end never needs a second round trip:
//
//	POST   /api/sessions                              create a session
//	GET    /api/sessions/{id}                         current snapshot
//	DELETE /api/sessions/{id}                         end the session
//	PUT    /api/sessions/{id}/corners/{corner}/{axis} {"value": "40"}
//	POST   /api/sessions/{id}/corners/{corner}/{axis}/unit
//	POST   /api/sessions/{id}/corners/{corner}/link
//	PUT    /api/sessions/{id}/mode                    {"mode": 2}
//	PUT    /api/sessions/{id}/shape                   {"shape": "square"}
//	POST   /api/sessions/{id}/preset                  {"name": "pill"}
//	POST   /api/sessions/{id}/reset
//	GET    /api/sessions/{id}/preview.{format}        svg, png, json or css
//	GET    /api/presets                               preset catalog
//	GET    /healthz
//
// Errors are JSON objects {"error": {"code": ..., "message": ...}} whose HTTP
// status follows the error code.
package api

import (
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/radii/pkg/buildinfo"
	apperrors "github.com/matzehuels/radii/pkg/errors"
	"github.com/matzehuels/radii/pkg/observability"
	"github.com/matzehuels/radii/pkg/render"
	"github.com/matzehuels/radii/pkg/session"
)

// maxBodyBytes caps request bodies; every payload is a single small object.
const maxBodyBytes = 4 << 10

// Server holds the session registry and render settings.
type Server struct {
	sessions *session.Manager
	render   render.Options
	logger   *log.Logger
	router   chi.Router
}

// Option configures a Server.
type Option func(*Server)

// WithRenderOptions sets the defaults used by preview endpoints.
func WithRenderOptions(o render.Options) Option {
	return func(s *Server) { s.render = o }
}

// WithLogger sets the logger for request errors.
func WithLogger(l *log.Logger) Option {
	return func(s *Server) {
		if l != nil {
			s.logger = l
		}
	}
}

// New builds a Server over m.
func New(m *session.Manager, opts ...Option) *Server {
	s := &Server{
		sessions: m,
		logger:   log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.router = s.routes()
	return s
}

// Handler returns the HTTP handler.
func (s *Server) Handler() http.Handler { return s.router }

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(instrument)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok", "version": buildinfo.Version})
	})
	r.Get("/api/presets", s.handlePresets)

	r.Route("/api/sessions", func(r chi.Router) {
		r.Post("/", s.handleCreate)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", s.handleGet)
			r.Delete("/", s.handleDelete)
			r.Put("/corners/{corner}/{axis}", s.handleSetValue)
			r.Post("/corners/{corner}/{axis}/unit", s.handleToggleUnit)
			r.Post("/corners/{corner}/link", s.handleToggleLink)
			r.Put("/mode", s.handleSetMode)
			r.Put("/shape", s.handleSetShape)
			r.Post("/preset", s.handleApplyPreset)
			r.Post("/reset", s.handleReset)
			r.Get("/preview.{format}", s.handlePreview)
		})
	})
	return r
}

// instrument reports each request to the registered HTTP hooks.
func instrument(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hooks := observability.HTTP()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()

		next.ServeHTTP(ww, r)

		route := r.URL.Path
		if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
			route = rctx.RoutePattern()
		}
		hooks.OnRequest(r.Context(), r.Method, route)
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		hooks.OnResponse(r.Context(), r.Method, route, status, time.Since(start))
	})
}

// =============================================================================
// Responses
// =============================================================================

type errorBody struct {
	Code    apperrors.Code `json:"code"`
	Message string         `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed", "method", r.Method, "path", r.URL.Path, "err", err)
	}
	code := apperrors.GetCode(err)
	if code == "" {
		code = apperrors.ErrCodeInternal
	}
	writeJSON(w, status, map[string]errorBody{
		"error": {Code: code, Message: apperrors.UserMessage(err)},
	})
}

// statusFor maps an error code to an HTTP status.
func statusFor(err error) int {
	switch {
	case apperrors.IsInvalid(err):
		return http.StatusBadRequest
	case apperrors.IsNotFound(err):
		return http.StatusNotFound
	}
	switch apperrors.GetCode(err) {
	case apperrors.ErrCodeTimeout:
		return http.StatusGatewayTimeout
	case apperrors.ErrCodeStorage:
		return http.StatusServiceUnavailable
	case apperrors.ErrCodeUnsupported:
		return http.StatusNotImplemented
	}
	return http.StatusInternalServerError
}

// decode reads a JSON body into v.
func decode(r *http.Request, v any) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return apperrors.Wrap(apperrors.ErrCodeInvalidInput, err, "invalid request body")
	}
	return nil
}
