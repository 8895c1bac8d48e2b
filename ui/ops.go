package ui

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"gomendel/app"
)

// OpsServer is the internal operations API. It stays off the public port
// and speaks JSON only.
type OpsServer struct {
	router             *gin.Engine
	analytics          *app.AnalyticsService
	catalog            *app.CatalogService
	defaultCatalogPath string
}

// NewOpsServer creates the internal operations server
func NewOpsServer(mode string, analytics *app.AnalyticsService, catalog *app.CatalogService, defaultCatalogPath string) *OpsServer {
	if mode != "" {
		gin.SetMode(mode)
	}

	s := &OpsServer{
		router:             gin.Default(),
		analytics:          analytics,
		catalog:            catalog,
		defaultCatalogPath: defaultCatalogPath,
	}

	s.setupRoutes()
	return s
}

// setupRoutes configures the internal routes
func (s *OpsServer) setupRoutes() {
	internal := s.router.Group("/internal")
	internal.GET("/healthz", s.handleHealth)
	internal.GET("/analytics/usage", s.handleUsageAnalytics)
	internal.POST("/catalog/reload", s.handleCatalogReload)
}

func (s *OpsServer) handleHealth(c *gin.Context) {
	count, err := s.catalog.Count(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"status": "degraded", "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":          "ok",
		"registry_traits": count,
		"store":           s.analytics.StoreKind(),
	})
}

// handleUsageAnalytics summarizes recorded computations
func (s *OpsServer) handleUsageAnalytics(c *gin.Context) {
	snapshot, err := s.analytics.Snapshot(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, snapshot)
}

// handleCatalogReload re-imports the trait catalog spreadsheet. The request
// body may name a path; otherwise the configured catalog is used.
func (s *OpsServer) handleCatalogReload(c *gin.Context) {
	var body struct {
		Path string `json:"path"`
	}
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON body"})
			return
		}
	}

	path := body.Path
	if path == "" {
		path = s.defaultCatalogPath
	}
	if path == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no catalog path configured or provided"})
		return
	}

	result, err := s.catalog.LoadFromFile(c.Request.Context(), path)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}

// Router exposes the engine for tests.
func (s *OpsServer) Router() *gin.Engine {
	return s.router
}
