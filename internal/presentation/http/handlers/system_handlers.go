package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/lakbayph/lakbay-go/internal/infrastructure/geo"
	"github.com/lakbayph/lakbay-go/internal/infrastructure/observability/performance"
)

// SystemHandlers contains health, registry, and admin metrics handlers
type SystemHandlers struct {
	registry    *geo.Registry
	perfTracker *performance.Tracker
	startedAt   time.Time
}

// NewSystemHandlers creates system handlers with injected dependencies
func NewSystemHandlers(registry *geo.Registry, perfTracker *performance.Tracker) *SystemHandlers {
	return &SystemHandlers{
		registry:    registry,
		perfTracker: perfTracker,
		startedAt:   time.Now(),
	}
}

// GetHealth handles GET /api/v1/health
func (h *SystemHandlers) GetHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"uptime":    time.Since(h.startedAt).String(),
		"provinces": h.registry.Total(),
	})
}

// GetRegistry handles GET /api/v1/registry - returns the province registry
func (h *SystemHandlers) GetRegistry(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"ids":   h.registry.IDs(),
		"total": h.registry.Total(),
	})
}

// GetMetrics handles GET /api/v1/admin/metrics - per-operation timing
// aggregates over the retained marker window
func (h *SystemHandlers) GetMetrics(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"operations": h.perfTracker.Summarize(),
	})
}
