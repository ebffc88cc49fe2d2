package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/lakbayph/lakbay-go/internal/application/services"
	"github.com/lakbayph/lakbay-go/internal/domain/entities/visit"
	"github.com/lakbayph/lakbay-go/internal/infrastructure/geo"
	"github.com/lakbayph/lakbay-go/internal/infrastructure/observability/logging"
	"github.com/lakbayph/lakbay-go/internal/infrastructure/observability/performance"
	"github.com/lakbayph/lakbay-go/internal/presentation/http/middleware"
)

// StateHandlers contains all map-state HTTP handlers
type StateHandlers struct {
	mapStateService *services.MapStateService
	logger          *logging.ChanneledLogger
	perfTracker     *performance.Tracker
}

// NewStateHandlers creates state handlers with injected dependencies
func NewStateHandlers(mapStateService *services.MapStateService, logger *logging.ChanneledLogger, perfTracker *performance.Tracker) *StateHandlers {
	return &StateHandlers{
		mapStateService: mapStateService,
		logger:          logger,
		perfTracker:     perfTracker,
	}
}

// GetState handles GET /api/v1/state - returns the caller's map state
func (h *StateHandlers) GetState(c *gin.Context) {
	ownerKey := middleware.GetOwnerKey(c)

	view, err := h.mapStateService.GetState(ownerKey)
	if err != nil {
		h.logger.Map().Error("Failed to load map state", "error", err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load map state"})
		return
	}
	c.JSON(http.StatusOK, view)
}

// PutState handles PUT /api/v1/state - replaces the caller's map state
func (h *StateHandlers) PutState(c *gin.Context) {
	start := time.Now()
	ownerKey := middleware.GetOwnerKey(c)

	var req struct {
		State visit.MapState `json:"state" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid state payload"})
		return
	}

	view, err := h.mapStateService.ReplaceState(ownerKey, req.State)
	if err != nil {
		h.logger.Map().Error("Failed to replace map state", "error", err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save map state"})
		return
	}

	h.logger.Map().Info("Map state replaced", "regions", len(view.State), "duration", time.Since(start))
	c.JSON(http.StatusOK, view)
}

// PostCycle handles POST /api/v1/state/cycle - advances one region's status
func (h *StateHandlers) PostCycle(c *gin.Context) {
	ownerKey := middleware.GetOwnerKey(c)

	var req struct {
		RegionID string `json:"regionId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "regionId is required"})
		return
	}

	view, next, err := h.mapStateService.CycleStatus(ownerKey, req.RegionID)
	if errors.Is(err, geo.ErrUnknownRegion) {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown region"})
		return
	}
	if err != nil {
		h.logger.Map().Error("Failed to cycle region", "regionId", req.RegionID, "error", err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update region"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"regionId": req.RegionID,
		"status":   next,
		"state":    view.State,
		"stats":    view.Stats,
		"level":    view.Level,
	})
}

// PostMigrate handles POST /api/v1/state/migrate - pulls local-device state
// into the caller's account
func (h *StateHandlers) PostMigrate(c *gin.Context) {
	ownerKey := middleware.GetOwnerKey(c)

	view, err := h.mapStateService.MigrateLocal(ownerKey)
	if err != nil {
		h.logger.Map().Error("Failed to migrate local state", "error", err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to migrate state"})
		return
	}
	c.JSON(http.StatusOK, view)
}

// GetStats handles GET /api/v1/stats - returns aggregate visit counts
func (h *StateHandlers) GetStats(c *gin.Context) {
	ownerKey := middleware.GetOwnerKey(c)

	stats, err := h.mapStateService.Stats(ownerKey)
	if err != nil {
		h.logger.Map().Error("Failed to compute stats", "error", err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to compute stats"})
		return
	}
	c.JSON(http.StatusOK, stats)
}

// GetLevels handles GET /api/v1/levels - returns the level ladder and the
// caller's position in it
func (h *StateHandlers) GetLevels(c *gin.Context) {
	ownerKey := middleware.GetOwnerKey(c)

	info, err := h.mapStateService.LevelInfo(ownerKey)
	if err != nil {
		h.logger.Map().Error("Failed to compute level info", "error", err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to compute levels"})
		return
	}
	c.JSON(http.StatusOK, info)
}
