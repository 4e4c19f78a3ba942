package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/johnquangdev/cinejournal/internal/adapter/dto/common"
)

// Router holds all handlers
type Router struct {
	journalHandler *Journal
	insightHandler *Insight
	enableSwagger  bool
}

// NewRouter creates a new router with all handlers
func NewRouter(journalHandler *Journal, insightHandler *Insight, enableSwagger bool) *Router {
	return &Router{
		journalHandler: journalHandler,
		insightHandler: insightHandler,
		enableSwagger:  enableSwagger,
	}
}

// Setup configures all application routes
func (rt *Router) Setup(e *echo.Echo) {
	api := e.Group("/api")

	api.GET("/health", rt.healthCheck)

	rt.setupJournalRoutes(api)

	if rt.enableSwagger {
		e.GET("/swagger/*", echoSwagger.WrapHandler)
	}
}

// setupJournalRoutes configures journal entry routes. Static segments are
// registered alongside /:id; echo matches them first.
func (rt *Router) setupJournalRoutes(g *echo.Group) {
	entries := g.Group("/journal-entries")

	entries.GET("", rt.journalHandler.ListEntries)
	entries.POST("", rt.journalHandler.CreateEntry)
	entries.GET("/insights", rt.journalHandler.GetInsights)
	entries.GET("/ai-insights", rt.insightHandler.GetLatest)
	entries.POST("/ai-insights/generate", rt.insightHandler.Generate)
	entries.GET("/:id", rt.journalHandler.GetEntry)
	entries.PUT("/:id", rt.journalHandler.UpdateEntry)
	entries.DELETE("/:id", rt.journalHandler.DeleteEntry)
}

// healthCheck returns health status
// @Summary      Health check
// @Tags         Health
// @Produce      json
// @Success      200  {object}  common.HealthResponse
// @Router       /health [get]
func (rt *Router) healthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, common.HealthResponse{
		Status:    "OK",
		Timestamp: time.Now().UTC().Format(time.RFC3339Nano),
	})
}
