// Package ui exposes the JSON API: check-in capture plus the computed
// insight, evidence, and summary endpoints.
package ui

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"lifelens/app"
	"lifelens/internal"
	"lifelens/internal/config"
)

// App represents the HTTP application
type App struct {
	router   *chi.Mux
	insights *app.InsightService
	checkins *app.CheckinService
	cfg      config.ServerConfig
	logger   *internal.Logger
}

// NewApp creates the HTTP application and wires its routes
func NewApp(cfg config.ServerConfig, insights *app.InsightService, checkins *app.CheckinService, logger *internal.Logger) *App {
	a := &App{
		router:   chi.NewRouter(),
		insights: insights,
		checkins: checkins,
		cfg:      cfg,
		logger:   logger.WithComponent("http"),
	}
	a.setupMiddleware()
	a.setupRoutes()
	return a
}

func (a *App) setupMiddleware() {
	a.router.Use(middleware.Logger)
	a.router.Use(middleware.Recoverer)
	a.router.Use(middleware.Compress(5))
}

func (a *App) setupRoutes() {
	a.router.Get("/healthz", a.handleHealthz)

	a.router.Get("/api/checkins", a.handleListCheckins)
	a.router.Post("/api/checkins", a.handleSubmitCheckin)
	a.router.Get("/api/checkins/{date}", a.handleGetCheckin)

	a.router.Get("/api/insights", a.handleInsights)
	a.router.Get("/api/insights/evidence", a.handleEvidence)
	a.router.Post("/api/insights/summary", a.handleSummary)
}

// Handler returns the routed handler, primarily for tests
func (a *App) Handler() http.Handler {
	return a.router
}

// Start runs the HTTP server until ctx is cancelled, then shuts down
// gracefully
func (a *App) Start(ctx context.Context) error {
	srv := &http.Server{
		Addr:         ":" + a.cfg.Port,
		Handler:      a.router,
		ReadTimeout:  a.cfg.ReadTimeout,
		WriteTimeout: a.cfg.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("listening on %s", srv.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err == http.ErrServerClosed {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}
