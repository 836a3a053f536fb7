package v1

import (
	"context"
	"log/slog"
	"net"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/kurochkinivan/video_sorter/internal/config"
)

type Server struct {
	httpServer *http.Server
}

func NewServer(
	cfg config.HTTP,
	log *slog.Logger,
	reconciler Reconciler,
	statuses StatusReader,
	reports ReportGenerator,
) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:         net.JoinHostPort(cfg.Host, cfg.Port),
			ReadTimeout:  cfg.ReadTimeout,
			WriteTimeout: cfg.WriteTimeout,
			IdleTimeout:  cfg.IdleTimeout,
			Handler:      NewRouter(log, reconciler, statuses, reports),
		},
	}
}

func NewRouter(log *slog.Logger, reconciler Reconciler, statuses StatusReader, reports ReportGenerator) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestLogger(&middleware.DefaultLogFormatter{
		Logger:  slog.NewLogLogger(log.Handler(), slog.LevelInfo),
		NoColor: true,
	}))
	r.Use(middleware.Recoverer)

	h := NewRunsHandler(log, reconciler, statuses, reports)

	r.Get("/", h.Form)
	r.Post("/submit", h.Submit)
	r.Get("/progress", h.Progress)
	r.Get("/current_process", h.CurrentProcess)

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/runs", h.CreateRun)
		r.Get("/runs/{run_id}/status", h.RunStatus)
		r.Get("/runs/{run_id}/report.pdf", h.RunReport)
	})

	return r
}

func (s *Server) ListenAndServe() error {
	return s.httpServer.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
