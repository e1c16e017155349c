package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/sells-group/launch-dashboard/internal/model"
	"github.com/sells-group/launch-dashboard/internal/render"
	"github.com/sells-group/launch-dashboard/internal/resolve"
)

const (
	chartPie     = "pie"
	chartScatter = "scatter"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		zap.L().Warn("http: encode response", zap.Error(err))
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":     "ok",
		"dataset_id": s.ds.ID(),
		"records":    s.ds.Len(),
	})
}

func (s *Server) handleControls(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, NewControls(s.ds))
}

func (s *Server) handleSites(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"options": s.ds.SiteOptions(),
		"payload": s.ds.PayloadBounds(),
	})
}

func (s *Server) handleCacheStats(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.cache.Stats())
}

// siteParam reads the site selector value, defaulting to "ALL".
func (s *Server) siteParam(r *http.Request) (string, error) {
	site := r.URL.Query().Get("site")
	if site == "" {
		site = model.AllSites
	}
	if !s.ds.ValidSite(site) {
		return "", eris.Wrapf(resolve.ErrUnknownSite, "site %q", site)
	}
	return site, nil
}

// filterState reads site, low and high from the query. Missing bounds default
// to the dataset's payload bounds and are clamped to them.
func (s *Server) filterState(r *http.Request) (model.FilterState, error) {
	site, err := s.siteParam(r)
	if err != nil {
		return model.FilterState{}, err
	}

	q := r.URL.Query()
	bounds := s.ds.PayloadBounds()

	low, err := floatParam(q.Get("low"), bounds.Low)
	if err != nil {
		return model.FilterState{}, eris.Wrap(err, "low")
	}
	high, err := floatParam(q.Get("high"), bounds.High)
	if err != nil {
		return model.FilterState{}, eris.Wrap(err, "high")
	}

	fs, err := model.NewFilterState(site, low, high)
	if err != nil {
		return model.FilterState{}, err
	}
	fs.Payload = fs.Payload.Clamp(bounds.Low, bounds.High)
	return fs, nil
}

func floatParam(raw string, def float64) (float64, error) {
	if raw == "" {
		return def, nil
	}
	return strconv.ParseFloat(raw, 64)
}

func (s *Server) resolvePie(w http.ResponseWriter, r *http.Request) (model.FilterState, model.PieChart, bool) {
	site, err := s.siteParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return model.FilterState{}, model.PieChart{}, false
	}
	fs := model.FilterState{Site: site, Payload: s.ds.PayloadBounds()}
	pie, err := resolve.Pie(s.ds, site)
	if err != nil {
		s.resolveFailed(w, err)
		return fs, model.PieChart{}, false
	}
	return fs, pie, true
}

func (s *Server) resolveScatter(w http.ResponseWriter, r *http.Request) (model.FilterState, model.ScatterChart, bool) {
	fs, err := s.filterState(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return fs, model.ScatterChart{}, false
	}
	sc, err := resolve.ScatterFor(s.ds, fs)
	if err != nil {
		s.resolveFailed(w, err)
		return fs, model.ScatterChart{}, false
	}
	return fs, sc, true
}

func (s *Server) resolveFailed(w http.ResponseWriter, err error) {
	if errors.Is(err, resolve.ErrUnknownSite) || errors.Is(err, model.ErrInvalidRange) {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	zap.L().Error("http: resolve chart", zap.Error(err))
	writeError(w, http.StatusInternalServerError, "chart resolution failed")
}

func (s *Server) handlePie(w http.ResponseWriter, r *http.Request) {
	if _, pie, ok := s.resolvePie(w, r); ok {
		writeJSON(w, http.StatusOK, pie)
	}
}

func (s *Server) handleScatter(w http.ResponseWriter, r *http.Request) {
	if _, sc, ok := s.resolveScatter(w, r); ok {
		writeJSON(w, http.StatusOK, sc)
	}
}

func (s *Server) handlePiePNG(w http.ResponseWriter, r *http.Request) {
	fs, pie, ok := s.resolvePie(w, r)
	if !ok {
		return
	}
	s.servePNG(w, chartKey(s.ds.ID(), chartPie, fs), func(buf *bytes.Buffer) error {
		return render.Pie(buf, pie, s.opts.Render)
	})
}

func (s *Server) handleScatterPNG(w http.ResponseWriter, r *http.Request) {
	fs, sc, ok := s.resolveScatter(w, r)
	if !ok {
		return
	}
	s.servePNG(w, chartKey(s.ds.ID(), chartScatter, fs), func(buf *bytes.Buffer) error {
		return render.Scatter(buf, sc, s.opts.Render)
	})
}

func (s *Server) servePNG(w http.ResponseWriter, key string, draw func(*bytes.Buffer) error) {
	if cached := s.cache.Get(key); cached != nil {
		w.Header().Set("Content-Type", "image/png")
		w.Header().Set("X-Cache", "hit")
		_, _ = w.Write(cached)
		return
	}

	var buf bytes.Buffer
	if err := draw(&buf); err != nil {
		zap.L().Error("http: render chart", zap.String("key", key), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "chart rendering failed")
		return
	}

	data := buf.Bytes()
	s.cache.Put(key, data)
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("X-Cache", "miss")
	_, _ = w.Write(data)
}
