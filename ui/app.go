package ui

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"ecoscan/app"
	"ecoscan/ports"
)

// App represents the HTTP API for the label auditor
type App struct {
	router *chi.Mux
	audits *app.AuditService
	scans  ports.ScanRepository // nil when history is disabled
}

// Config holds API application configuration
type Config struct {
	Port string
}

// NewApp creates the API application
func NewApp(audits *app.AuditService, scans ports.ScanRepository) (*App, error) {
	if audits == nil {
		return nil, fmt.Errorf("audit service is required")
	}

	a := &App{
		router: chi.NewRouter(),
		audits: audits,
		scans:  scans,
	}

	a.setupMiddleware()
	a.setupRoutes()

	return a, nil
}

// setupMiddleware configures HTTP middleware
func (a *App) setupMiddleware() {
	a.router.Use(middleware.Logger)
	a.router.Use(middleware.Recoverer)
	a.router.Use(middleware.Compress(5))
}

// setupRoutes configures the application routes
func (a *App) setupRoutes() {
	a.router.Post("/api/analyze", a.handleAnalyze)
	a.router.Post("/api/analyze/image", a.handleAnalyzeImage)

	// Scan history (no-ops to 404/503 when persistence is disabled)
	a.router.Get("/api/scans", a.handleListScans)
	a.router.Get("/api/scans/export", a.handleExportScans)
	a.router.Get("/api/scans/{id}", a.handleGetScan)

	// HTML report view
	a.router.Get("/report/{id}", a.handleReportView)

	a.router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
}

// Start runs the HTTP server
func (a *App) Start(config Config) error {
	addr := ":" + config.Port
	fmt.Printf("EcoScan API listening on %s\n", addr)
	return http.ListenAndServe(addr, a.router)
}

// Router exposes the chi mux for testing
func (a *App) Router() http.Handler {
	return a.router
}
