package dashboard

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/KaramelBytes/petreg/internal/analysis"
	"github.com/KaramelBytes/petreg/internal/dataset"
	"github.com/KaramelBytes/petreg/internal/render"
)

// selectionFrom reads ?region=&metric= from the request.
func selectionFrom(r *http.Request) analysis.Selection {
	q := r.URL.Query()
	return analysis.Selection{Region: q.Get("region"), Metric: q.Get("metric")}
}

// run executes the full pipeline for one request.
func (s *Server) run(r *http.Request) (*analysis.View, error) {
	start := time.Now()
	tbl, err := dataset.Load(s.opt.DataPath, s.opt.Dataset)
	if err != nil {
		return nil, err
	}
	v, err := analysis.BuildView(tbl, s.opt.Columns, selectionFrom(r), s.opt.PreviewRows, render.FormatTotal)
	if err != nil {
		return nil, err
	}
	v.RunID = uuid.NewString()
	s.logger.Debug("Pipeline rerun",
		"run_id", v.RunID,
		"region", v.Selection.Region,
		"metric", v.Selection.Metric,
		"rows", len(v.Result.Rows),
		"total", v.Result.Total,
		"elapsed", time.Since(start),
	)
	return v, nil
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, dataset.ErrFileNotFound):
		return http.StatusNotFound
	case errors.Is(err, analysis.ErrUnknownRegion), errors.Is(err, analysis.ErrUnknownMetric):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) pageHandler(w http.ResponseWriter, r *http.Request) {
	data := pageData{Title: analysis.Title}
	if s.fontWarning != "" {
		data.Banners = append(data.Banners, analysis.Warning(s.fontWarning))
	}
	v, err := s.run(r)
	status := http.StatusOK
	if err != nil {
		s.logger.Error("Pipeline failed", "error", err)
		data.Banners = append(data.Banners, analysis.Describe(err))
		status = statusFor(err)
	} else {
		data.View = v
		data.Loaded = analysis.LoadedMessage
		if len(v.Result.Rows) > 0 {
			data.ChartURL = chartURL(v.Selection)
		}
	}

	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, data); err != nil {
		s.logger.Error("Failed to render page", "error", err)
		http.Error(w, "Failed to render page", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(buf.Bytes())
}

func (s *Server) chartHandler(format string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		v, err := s.run(r)
		if err != nil {
			http.Error(w, analysis.Describe(err).Message, statusFor(err))
			return
		}
		var buf bytes.Buffer
		if err := render.Chart(&buf, v, format, s.opt.Chart); err != nil {
			if errors.Is(err, render.ErrEmptyResult) {
				http.Error(w, err.Error(), http.StatusNotFound)
				return
			}
			s.logger.Error("Failed to render chart", "error", err)
			http.Error(w, analysis.Describe(err).Message, http.StatusInternalServerError)
			return
		}
		if format == "svg" {
			w.Header().Set("Content-Type", "image/svg+xml")
		} else {
			w.Header().Set("Content-Type", "image/png")
		}
		_, _ = w.Write(buf.Bytes())
	}
}

func (s *Server) viewHandler(w http.ResponseWriter, r *http.Request) {
	v, err := s.run(r)
	if err != nil {
		s.writeJSON(w, statusFor(err), map[string]interface{}{
			"error":  analysis.Describe(err),
			"banner": s.fontBanner(),
		})
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]interface{}{
		"view":   v,
		"banner": s.fontBanner(),
	})
}

func (s *Server) healthHandler(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"timestamp": time.Now().Format(time.RFC3339),
		"data":      s.opt.DataPath,
	})
}

func (s *Server) fontBanner() *analysis.Banner {
	if s.fontWarning == "" {
		return nil
	}
	b := analysis.Warning(s.fontWarning)
	return &b
}

// writeJSON encodes before writing the status so an encoding failure still
// reaches the client as a 500.
func (s *Server) writeJSON(w http.ResponseWriter, status int, v interface{}) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(v); err != nil {
		s.logger.Error("Failed to encode response", "error", err)
		http.Error(w, analysis.Describe(err).Message, http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(buf.Bytes())
}
