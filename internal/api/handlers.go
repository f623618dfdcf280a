package api

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/matzehuels/radii/pkg/editor"
	"github.com/matzehuels/radii/pkg/radius"
	"github.com/matzehuels/radii/pkg/render"
	"github.com/matzehuels/radii/pkg/session"
)

// =============================================================================
// Views
// =============================================================================

type axisView struct {
	Value int    `json:"value"`
	Unit  string `json:"unit"`
	Max   int    `json:"max"`
}

type cornerView struct {
	Corner  string   `json:"corner"`
	Label   string   `json:"label"`
	Visible bool     `json:"visible"`
	Linked  bool     `json:"linked"`
	H       axisView `json:"h"`
	V       axisView `json:"v"`
}

type snapshotView struct {
	ID        string            `json:"id"`
	Mode      int               `json:"mode"`
	ModeLabel string            `json:"mode_label"`
	Shape     string            `json:"shape"`
	CSS       string            `json:"css"`
	Rule      string            `json:"rule"`
	Longhands map[string]string `json:"longhands"`
	Corners   []cornerView      `json:"corners"`
}

func newSnapshotView(id string, snap editor.Snapshot) snapshotView {
	st := snap.State
	mode := st.Mode.Normalize()
	v := snapshotView{
		ID:        id,
		Mode:      int(mode),
		ModeLabel: mode.String(),
		Shape:     st.Shape.String(),
		CSS:       snap.CSS,
		Rule:      snap.Rule,
		Longhands: make(map[string]string, len(snap.Longhands)),
		Corners:   make([]cornerView, 0, len(radius.Corners)),
	}
	for _, d := range snap.Longhands {
		v.Longhands[d.Property] = d.Value
	}
	for _, c := range radius.Corners {
		v.Corners = append(v.Corners, cornerView{
			Corner:  c.Key(),
			Label:   radius.CornerLabel(c, mode),
			Visible: mode.Visible(c),
			Linked:  st.Corners[c].Linked,
			H:       axisOf(&st, c, radius.Horizontal),
			V:       axisOf(&st, c, radius.Vertical),
		})
	}
	return v
}

func axisOf(st *radius.State, c radius.Corner, a radius.Axis) axisView {
	u := st.ActiveUnit(c, a)
	return axisView{Value: st.DisplayValue(c, a), Unit: u.Suffix(), Max: radius.MaxValue(a, u)}
}

type presetView struct {
	Slug string `json:"slug"`
	Name string `json:"name"`
	Mode int    `json:"mode"`
	CSS  string `json:"css"`
}

// =============================================================================
// Handlers
// =============================================================================

func (s *Server) handlePresets(w http.ResponseWriter, r *http.Request) {
	out := make([]presetView, 0, len(radius.Presets))
	for _, p := range radius.Presets {
		st := radius.DefaultState()
		st.ApplyPreset(p)
		out = append(out, presetView{
			Slug: p.Slug(),
			Name: p.Name,
			Mode: int(p.Mode),
			CSS:  editor.Compute(&st).CSS,
		})
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleCreate(w http.ResponseWriter, r *http.Request) {
	sess, err := s.sessions.Create(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	w.Header().Set("Location", "/api/sessions/"+sess.ID)
	writeJSON(w, http.StatusCreated, newSnapshotView(sess.ID, sess.Snapshot()))
}

func (s *Server) handleGet(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.session(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, newSnapshotView(sess.ID, sess.Snapshot()))
}

func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	if err := s.sessions.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		s.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleSetValue(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Value string `json:"value"`
	}
	if err := decode(r, &body); err != nil {
		s.writeError(w, r, err)
		return
	}
	s.mutate(w, r, func(ed *editor.Editor) error {
		c, a, err := cornerAxis(r)
		if err != nil {
			return err
		}
		return ed.SetValue(r.Context(), c, a, body.Value)
	})
}

func (s *Server) handleToggleUnit(w http.ResponseWriter, r *http.Request) {
	s.mutate(w, r, func(ed *editor.Editor) error {
		c, a, err := cornerAxis(r)
		if err != nil {
			return err
		}
		return ed.ToggleUnit(r.Context(), c, a)
	})
}

func (s *Server) handleToggleLink(w http.ResponseWriter, r *http.Request) {
	s.mutate(w, r, func(ed *editor.Editor) error {
		c, err := radius.ParseCorner(chi.URLParam(r, "corner"))
		if err != nil {
			return err
		}
		return ed.ToggleLink(r.Context(), c)
	})
}

func (s *Server) handleSetMode(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Mode int `json:"mode"`
	}
	if err := decode(r, &body); err != nil {
		s.writeError(w, r, err)
		return
	}
	s.mutate(w, r, func(ed *editor.Editor) error {
		return ed.SetMode(r.Context(), radius.Mode(body.Mode))
	})
}

func (s *Server) handleSetShape(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Shape string `json:"shape"`
	}
	if err := decode(r, &body); err != nil {
		s.writeError(w, r, err)
		return
	}
	s.mutate(w, r, func(ed *editor.Editor) error {
		shape, err := radius.ParseShape(body.Shape)
		if err != nil {
			return err
		}
		return ed.SetShape(r.Context(), shape)
	})
}

func (s *Server) handleApplyPreset(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Name string `json:"name"`
	}
	if err := decode(r, &body); err != nil {
		s.writeError(w, r, err)
		return
	}
	s.mutate(w, r, func(ed *editor.Editor) error {
		return ed.ApplyPreset(r.Context(), body.Name)
	})
}

func (s *Server) handleReset(w http.ResponseWriter, r *http.Request) {
	s.mutate(w, r, func(ed *editor.Editor) error {
		ed.Reset(r.Context())
		return nil
	})
}

func (s *Server) handlePreview(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.session(w, r)
	if !ok {
		return
	}

	format := chi.URLParam(r, "format")
	opts := s.render
	if v := r.URL.Query().Get("overlay"); v != "" {
		overlay, err := strconv.ParseBool(v)
		if err == nil {
			opts.Overlay = overlay
		}
	}

	data, err := render.Render(r.Context(), format, sess.Snapshot(), opts)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", render.ContentType(format))
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

// =============================================================================
// Helpers
// =============================================================================

func (s *Server) session(w http.ResponseWriter, r *http.Request) (*session.Session, bool) {
	sess, err := s.sessions.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, r, err)
		return nil, false
	}
	return sess, true
}

// mutate applies fn to the session's editor and answers with the new snapshot.
func (s *Server) mutate(w http.ResponseWriter, r *http.Request, fn func(*editor.Editor) error) {
	sess, ok := s.session(w, r)
	if !ok {
		return
	}
	if err := sess.Do(fn); err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, newSnapshotView(sess.ID, sess.Snapshot()))
}

func cornerAxis(r *http.Request) (radius.Corner, radius.Axis, error) {
	c, err := radius.ParseCorner(chi.URLParam(r, "corner"))
	if err != nil {
		return 0, 0, err
	}
	a, err := radius.ParseAxis(chi.URLParam(r, "axis"))
	if err != nil {
		return 0, 0, err
	}
	return c, a, nil
}
