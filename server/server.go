package server

import (
	"html/template"
	"net/http"
	"time"

	"go.uber.org/zap"

	"project-explorer/config"
	"project-explorer/dataset"
)

// Server wires the dataset store, the engine pipeline and the HTTP
// surface together. Every request recomputes the whole
// filter -> aggregate -> compose pipeline from the memoized dataset;
// there is no other shared state.
type Server struct {
	cfg    config.Config
	store  *dataset.Store
	logger *zap.Logger
	tmpl   *template.Template
	mux    *http.ServeMux
}

func New(cfg config.Config, store *dataset.Store, logger *zap.Logger) *Server {
	s := &Server{
		cfg:    cfg,
		store:  store,
		logger: logger,
		tmpl:   template.Must(template.New("index").Parse(indexHTML)),
		mux:    http.NewServeMux(),
	}

	s.mux.HandleFunc("/", s.handleIndex)
	s.mux.HandleFunc("/api/summary", s.handleSummary)
	s.mux.HandleFunc("/api/charts", s.handleCharts)
	s.mux.HandleFunc("/api/table", s.handleTable)
	s.mux.HandleFunc("/api/graph", s.handleGraph)
	s.mux.HandleFunc("/export/csv", s.handleExportCSV)
	s.mux.HandleFunc("/export/report.pdf", s.handleExportPDF)
	s.mux.HandleFunc("/export/chart/", s.handleExportChart)
	return s
}

// Handler returns the full handler chain, request logging included.
func (s *Server) Handler() http.Handler {
	return s.logRequests(s.mux)
}

func (s *Server) ListenAndServe() error {
	s.logger.Info("dashboard listening", zap.String("addr", s.cfg.Listen))
	return http.ListenAndServe(s.cfg.Listen, s.Handler())
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		s.logger.Info("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", rec.status),
			zap.Duration("duration", time.Since(start)))
	})
}
