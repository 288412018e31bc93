package dashboard

import (
	"context"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi"
	"github.com/pkg/errors"
	"github.com/rs/cors"

	"github.com/KaramelBytes/petreg/internal/analysis"
	"github.com/KaramelBytes/petreg/internal/dataset"
	"github.com/KaramelBytes/petreg/internal/render"
)

// Options configures the dashboard.
type Options struct {
	DataPath       string
	Dataset        dataset.Options
	Columns        analysis.Columns
	PreviewRows    int
	Chart          render.ChartOptions
	FontPath       string
	AllowedOrigins []string
}

// Server serves the dashboard. It holds no per-request state: every request
// reloads the dataset and recomputes the view.
type Server struct {
	opt         Options
	logger      *log.Logger
	fontWarning string
}

// New prepares a server and performs the one-time font setup.
func New(opt Options, logger *log.Logger) *Server {
	s := &Server{opt: opt, logger: logger}
	if opt.FontPath != "" {
		warn, err := render.SetupFonts(opt.FontPath)
		if err != nil {
			logger.Warn("Font setup failed, using built-in font", "path", opt.FontPath, "error", err)
			warn = err.Error()
		}
		if warn != "" {
			logger.Warn(warn)
		}
		s.fontWarning = warn
	}
	return s
}

// Router builds the HTTP routes.
func (s *Server) Router() http.Handler {
	router := chi.NewRouter()

	origins := s.opt.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	router.Use(cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedHeaders: []string{"Content-Type", "Accept"},
		AllowedMethods: []string{"GET", "OPTIONS"},
	}).Handler)

	router.Get("/", s.pageHandler)
	router.Get("/chart.svg", s.chartHandler("svg"))
	router.Get("/chart.png", s.chartHandler("png"))
	router.Get("/api/view", s.viewHandler)
	router.Get("/healthz", s.healthHandler)
	return router
}

// Run serves on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	httpServer := &http.Server{
		Addr:              addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("Starting dashboard", "address", "http://"+addr, "data", s.opt.DataPath)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- errors.Wrap(err, "listen")
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}
	s.logger.Info("Dashboard shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return errors.Wrap(err, "shutdown")
	}
	return nil
}
