package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/kurochkinivan/video_sorter/internal/config"
	v1 "github.com/kurochkinivan/video_sorter/internal/controller/http/v1"
	"github.com/kurochkinivan/video_sorter/internal/infrastructure/process"
	"github.com/kurochkinivan/video_sorter/internal/infrastructure/report_generator"
	"github.com/kurochkinivan/video_sorter/internal/pipeline"
	"github.com/kurochkinivan/video_sorter/internal/status"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 5 * time.Second

type App struct {
	log *slog.Logger
	cfg *config.Config
}

func New(log *slog.Logger, cfg *config.Config) *App {
	return &App{
		log: log,
		cfg: cfg,
	}
}

func (a *App) Run(ctx context.Context) error {
	a.log.InfoContext(ctx, "starting app",
		slog.String("kill_process", a.cfg.App.KillProcess),
		slog.Int("runs_history", a.cfg.App.RunsHistory),
	)

	statuses := status.NewStore(a.cfg.App.RunsHistory)

	reconciler := pipeline.NewReconciler(
		a.log,
		pipeline.NewParser(a.log),
		pipeline.NewCopier(),
		statuses,
		a.preRunHook(),
	)

	server := v1.NewServer(a.cfg.HTTP, a.log, reconciler, statuses, report_generator.New())

	return a.serve(ctx, server)
}

func (a *App) preRunHook() pipeline.PreRunHook {
	if a.cfg.App.KillProcess == "" {
		return nil
	}

	return process.NewTerminator(a.log, a.cfg.App.KillProcess)
}

func (a *App) serve(ctx context.Context, server *v1.Server) error {
	erg, ctx := errgroup.WithContext(ctx)

	erg.Go(func() error {
		a.log.InfoContext(ctx, "starting http server",
			slog.String("addr", net.JoinHostPort(a.cfg.HTTP.Host, a.cfg.HTTP.Port)),
		)

		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server error: %w", err)
		}

		return nil
	})

	erg.Go(func() error {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		return server.Shutdown(shutdownCtx)
	})

	if err := erg.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		a.log.ErrorContext(ctx, "app stopped with error", slog.String("err", err.Error()))

		return err
	}

	a.log.InfoContext(ctx, "app stopped gracefully")

	return nil
}
