package container

import (
	"context"
	"fmt"
	"log"

	"github.com/jmoiron/sqlx"

	"gomendel/adapters/excel"
	"gomendel/adapters/memory"
	"gomendel/adapters/postgres"
	"gomendel/app"
	"gomendel/internal"
	"gomendel/internal/config"
	"gomendel/internal/usage"
	"gomendel/ports"
)

// Container holds all application dependencies and manages their lifecycle
type Container struct {
	Config *config.Config
	Logger *internal.Logger

	// Infrastructure. DB stays nil when DATABASE_URL is unset and usage
	// falls back to the in-memory store.
	DB *sqlx.DB

	// Adapters
	TraitRegistry ports.TraitRegistry
	UsageRepo     ports.UsageRepository
	CatalogReader ports.CatalogReader

	// Services
	UsageService      *usage.Service
	PreviewService    *app.PreviewService
	SimulationService *app.SimulationService
	CatalogService    *app.CatalogService
	AnalyticsService  *app.AnalyticsService
}

// New creates a new dependency injection container with in-memory adapters
func New(cfg *config.Config, logger *internal.Logger) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}
	if logger == nil {
		logger = internal.DefaultLogger
	}

	return &Container{
		Config:        cfg,
		Logger:        logger,
		TraitRegistry: memory.NewTraitRegistry(),
		UsageRepo:     memory.NewUsageRepository(),
		CatalogReader: excel.NewCatalogReader(),
	}, nil
}

// InitWithDatabase switches usage tracking to PostgreSQL
func (c *Container) InitWithDatabase(db *sqlx.DB) error {
	if db == nil {
		return fmt.Errorf("database connection cannot be nil")
	}

	if err := db.Ping(); err != nil {
		return fmt.Errorf("database connection test failed: %w", err)
	}

	c.DB = db
	c.UsageRepo = postgres.NewUsageRepository(db)
	log.Printf("Container using PostgreSQL usage store")
	return nil
}

// InitServices wires the service layer over whichever adapters are active.
// Call after the optional InitWithDatabase.
func (c *Container) InitServices() error {
	if c.TraitRegistry == nil || c.UsageRepo == nil {
		return fmt.Errorf("adapters must be initialized before services")
	}

	c.UsageService = usage.NewService(c.UsageRepo)
	c.PreviewService = app.NewPreviewService(c.UsageService, c.Logger)
	c.SimulationService = app.NewSimulationService(c.TraitRegistry, c.UsageService, c.Logger, c.Config.Engine.MaxBatchTraits)
	c.CatalogService = app.NewCatalogService(c.TraitRegistry, c.CatalogReader, c.Logger)
	c.AnalyticsService = app.NewAnalyticsService(c.UsageService)

	log.Printf("Services initialized: preview, simulation, catalog, analytics")
	return nil
}

// LoadCatalog seeds the built-in traits and, when a catalog path is
// configured, imports the spreadsheet on top of them.
func (c *Container) LoadCatalog(ctx context.Context) error {
	if c.CatalogService == nil {
		return fmt.Errorf("services must be initialized before loading the catalog")
	}

	if err := c.CatalogService.SeedBuiltins(ctx); err != nil {
		return fmt.Errorf("failed to seed built-in traits: %w", err)
	}

	if path := c.Config.Catalog.Path; path != "" {
		result, err := c.CatalogService.LoadFromFile(ctx, path)
		if err != nil {
			return fmt.Errorf("failed to load catalog %s: %w", path, err)
		}
		for _, msg := range result.Errors {
			c.Logger.Warn("catalog: %s", msg)
		}
	}
	return nil
}

// Shutdown gracefully shuts down all components
func (c *Container) Shutdown(ctx context.Context) error {
	if c.DB != nil {
		return c.DB.Close()
	}
	return nil
}
