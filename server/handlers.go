package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"project-explorer/dataset"
	"project-explorer/engine"
	"project-explorer/export"
)

// summaryResponse feeds the key-metrics panel and the sidebar controls:
// slider limits come from Bounds, the category multiselect from
// Categories, and the load fallback banner from Notice.
type summaryResponse struct {
	Metrics    engine.Metrics `json:"metrics"`
	Bounds     dataset.Bounds `json:"bounds"`
	Categories []string       `json:"categories"`
	Total      int            `json:"total"`
	Source     string         `json:"source"`
	Notice     string         `json:"notice,omitempty"`
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	if err := s.tmpl.Execute(w, map[string]any{"Title": s.cfg.Title}); err != nil {
		s.logger.Error("render index", zap.Error(err))
	}
}

func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	ds, base, _, ok := s.pipeline(w, r)
	if !ok {
		return
	}
	writeJSON(w, summaryResponse{
		Metrics:    engine.Aggregate(base, ds.Len()),
		Bounds:     ds.Bounds,
		Categories: ds.Categories(),
		Total:      ds.Len(),
		Source:     ds.Source,
		Notice:     ds.Notice,
	})
}

func (s *Server) handleCharts(w http.ResponseWriter, r *http.Request) {
	_, base, _, ok := s.pipeline(w, r)
	if !ok {
		return
	}
	writeJSON(w, engine.Charts(base, s.cfg.HistogramBins))
}

func (s *Server) handleTable(w http.ResponseWriter, r *http.Request) {
	_, _, narrowed, ok := s.pipeline(w, r)
	if !ok {
		return
	}
	writeJSON(w, engine.BuildTable(narrowed))
}

func (s *Server) handleGraph(w http.ResponseWriter, r *http.Request) {
	_, base, _, ok := s.pipeline(w, r)
	if !ok {
		return
	}
	net, err := engine.BuildNeighborGraph(base, s.cfg.NeighborK)
	if err != nil {
		s.logger.Error("neighbor graph", zap.Error(err))
		http.Error(w, "failed to build graph", http.StatusInternalServerError)
		return
	}
	writeJSON(w, net)
}

func (s *Server) handleExportCSV(w http.ResponseWriter, r *http.Request) {
	_, base, _, ok := s.pipeline(w, r)
	if !ok {
		return
	}
	data, err := export.CSV(base)
	if err != nil {
		s.logger.Error("csv export", zap.Error(err))
		http.Error(w, "failed to export CSV", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=%q", export.Filename(time.Now())))
	w.Write(data)
}

func (s *Server) handleExportPDF(w http.ResponseWriter, r *http.Request) {
	ds, base, _, ok := s.pipeline(w, r)
	if !ok {
		return
	}
	data, err := export.PDF(
		s.cfg.Title,
		engine.Aggregate(base, ds.Len()),
		engine.FundingByCategorySpec(base),
		time.Now().Format("2006-01-02 15:04:05"),
	)
	if err != nil {
		s.logger.Error("pdf export", zap.Error(err))
		http.Error(w, "failed to export PDF", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="project_report.pdf"`)
	w.Write(data)
}

func (s *Server) handleExportChart(w http.ResponseWriter, r *http.Request) {
	name := strings.TrimPrefix(r.URL.Path, "/export/chart/")
	name = strings.TrimSuffix(name, ".png")
	if name == "" || strings.Contains(name, "/") {
		http.NotFound(w, r)
		return
	}

	_, base, _, ok := s.pipeline(w, r)
	if !ok {
		return
	}
	data, err := export.ChartPNG(name, base, s.cfg.HistogramBins)
	if err != nil {
		if strings.Contains(err.Error(), "unknown chart") {
			http.NotFound(w, r)
			return
		}
		s.logger.Error("chart export", zap.String("chart", name), zap.Error(err))
		http.Error(w, "failed to render chart", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Write(data)
}

// pipeline runs the shared request steps: fetch the memoized dataset,
// parse the filter controls, build the base and search-narrowed views.
// On failure it writes the response itself and returns ok=false.
func (s *Server) pipeline(w http.ResponseWriter, r *http.Request) (ds *dataset.Dataset, base, narrowed engine.View, ok bool) {
	ds, err := s.store.Dataset()
	if err != nil {
		http.Error(w, "dataset unavailable", http.StatusInternalServerError)
		return nil, engine.View{}, engine.View{}, false
	}

	params, err := parseParams(r, ds.Bounds)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return nil, engine.View{}, engine.View{}, false
	}

	base = engine.Filter(ds, params)
	narrowed = engine.Narrow(base, params.Search)
	return ds, base, narrowed, true
}

// parseParams reads the filter controls from the query string. Absent
// range params fall back to the dataset's own bounds, mirroring sliders
// that start at their limits.
func parseParams(r *http.Request, b dataset.Bounds) (engine.Params, error) {
	q := r.URL.Query()
	p := engine.DefaultParams(b)

	if cats, present := q["category"]; present {
		p.Categories = cats
	}
	p.Search = q.Get("q")

	var err error
	if p.YearMin, err = intParam(q.Get("year_min"), p.YearMin); err != nil {
		return engine.Params{}, fmt.Errorf("year_min: %w", err)
	}
	if p.YearMax, err = intParam(q.Get("year_max"), p.YearMax); err != nil {
		return engine.Params{}, fmt.Errorf("year_max: %w", err)
	}
	if p.TeamMin, err = intParam(q.Get("team_min"), p.TeamMin); err != nil {
		return engine.Params{}, fmt.Errorf("team_min: %w", err)
	}
	if p.TeamMax, err = intParam(q.Get("team_max"), p.TeamMax); err != nil {
		return engine.Params{}, fmt.Errorf("team_max: %w", err)
	}
	return p, nil
}

func intParam(raw string, fallback int) (int, error) {
	if raw == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid integer %q", raw)
	}
	return n, nil
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}
