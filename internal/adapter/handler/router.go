package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/johnquangdev/discussion-planner/internal/adapter/dto/common"
	"github.com/johnquangdev/discussion-planner/pkg/config"
)

// Router holds all handlers
type Router struct {
	cfg               *config.Config
	assignmentHandler *Assignment
	gatherer          prometheus.Gatherer
}

// NewRouter creates a new router with all handlers
func NewRouter(cfg *config.Config, assignmentHandler *Assignment, gatherer prometheus.Gatherer) *Router {
	return &Router{
		cfg:               cfg,
		assignmentHandler: assignmentHandler,
		gatherer:          gatherer,
	}
}

// Setup configures all application routes
func (rt *Router) Setup(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", rt.healthCheck)

	if rt.cfg.Metrics.Enabled && rt.gatherer != nil {
		e.GET(rt.cfg.Metrics.Path, echo.WrapHandler(promhttp.HandlerFor(rt.gatherer, promhttp.HandlerOpts{})))
	}

	if !rt.cfg.IsProduction() {
		e.GET("/swagger/*", echoSwagger.WrapHandler)
	}

	// API v1 group
	v1 := e.Group("/v1")

	rt.setupAssignmentRoutes(v1)
}

// setupAssignmentRoutes configures assignment routes
func (rt *Router) setupAssignmentRoutes(g *echo.Group) {
	assignmentGroup := g.Group("/events/:id/assignments")

	if rt.assignmentHandler != nil {
		assignmentGroup.POST("/generate", rt.assignmentHandler.GenerateAssignments)
		assignmentGroup.GET("", rt.assignmentHandler.ListAssignments)
		assignmentGroup.DELETE("", rt.assignmentHandler.ClearAssignments)
		assignmentGroup.GET("/statistics", rt.assignmentHandler.GetStatistics)
		assignmentGroup.GET("/export", rt.assignmentHandler.ExportAssignments)
	} else {
		// Placeholder routes when handler is not initialized
		assignmentGroup.POST("/generate", rt.notImplemented)
		assignmentGroup.GET("", rt.notImplemented)
		assignmentGroup.DELETE("", rt.notImplemented)
		assignmentGroup.GET("/statistics", rt.notImplemented)
		assignmentGroup.GET("/export", rt.notImplemented)
	}
}

// notImplemented returns 501 Not Implemented response
func (rt *Router) notImplemented(c echo.Context) error {
	return c.JSON(http.StatusNotImplemented, map[string]interface{}{
		"error":   "This endpoint is not yet implemented",
		"path":    c.Request().URL.Path,
		"method":  c.Request().Method,
		"message": "Please initialize the required handler in main.go",
	})
}

// healthCheck returns health status
func (rt *Router) healthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, common.HealthResponse{
		Status:      "ok",
		Environment: rt.cfg.Server.Environment,
		Time:        time.Now().UTC(),
	})
}
