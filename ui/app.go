package ui

import (
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"gomendel/app"
)

// App is the public JSON API served to the trait editor and simulators.
type App struct {
	router     *chi.Mux
	preview    *app.PreviewService
	simulation *app.SimulationService
	catalog    *app.CatalogService
}

// NewApp creates the public API application
func NewApp(preview *app.PreviewService, simulation *app.SimulationService, catalog *app.CatalogService, requestTimeout time.Duration) *App {
	a := &App{
		router:     chi.NewRouter(),
		preview:    preview,
		simulation: simulation,
		catalog:    catalog,
	}

	a.setupMiddleware(requestTimeout)
	a.setupRoutes()
	return a
}

// setupMiddleware configures HTTP middleware
func (a *App) setupMiddleware(requestTimeout time.Duration) {
	a.router.Use(middleware.Logger)
	a.router.Use(middleware.Recoverer)
	a.router.Use(middleware.Compress(5))
	if requestTimeout > 0 {
		a.router.Use(middleware.Timeout(requestTimeout))
	}
}

// setupRoutes configures the application routes
func (a *App) setupRoutes() {
	// Computation endpoints
	a.router.Post("/api/mendelian/preview", a.handlePreview)
	a.router.Post("/api/mendelian/simulate", a.handleSimulate)
	a.router.Post("/api/mendelian/genotypes", a.handleGenotypes)

	// Trait catalog
	a.router.Get("/api/traits", a.handleListTraits)
	a.router.Get("/api/traits/{key}", a.handleGetTrait)

	a.router.Get("/healthz", a.handleHealth)
}

// Router exposes the mux for tests and embedding.
func (a *App) Router() *chi.Mux {
	return a.router
}
