package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/lakbayph/lakbay-go/internal/application/services"
	"github.com/lakbayph/lakbay-go/internal/domain/entities/visit"
	"github.com/lakbayph/lakbay-go/internal/infrastructure/observability/logging"
	"github.com/lakbayph/lakbay-go/internal/infrastructure/observability/performance"
	"github.com/lakbayph/lakbay-go/internal/presentation/http/middleware"
)

// ShareHandlers contains all sharing-related HTTP handlers
type ShareHandlers struct {
	snapshotService   *services.SnapshotService
	shareImageService *services.ShareImageService
	captionService    *services.CaptionService
	logger            *logging.ChanneledLogger
	perfTracker       *performance.Tracker
}

// NewShareHandlers creates share handlers with injected dependencies
func NewShareHandlers(
	snapshotService *services.SnapshotService,
	shareImageService *services.ShareImageService,
	captionService *services.CaptionService,
	logger *logging.ChanneledLogger,
	perfTracker *performance.Tracker,
) *ShareHandlers {
	return &ShareHandlers{
		snapshotService:   snapshotService,
		shareImageService: shareImageService,
		captionService:    captionService,
		logger:            logger,
		perfTracker:       perfTracker,
	}
}

// PostShare handles POST /api/v1/share - publishes a snapshot
func (h *ShareHandlers) PostShare(c *gin.Context) {
	start := time.Now()
	ownerKey := middleware.GetOwnerKey(c)

	var req struct {
		State       visit.MapState `json:"state" binding:"required"`
		DisplayName string         `json:"displayName"`
		NotifyEmail string         `json:"notifyEmail"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid share payload"})
		return
	}

	result, err := h.snapshotService.CreateShare(ownerKey, req.DisplayName, req.State, req.NotifyEmail)
	if err != nil {
		h.logger.Share().Error("Failed to publish snapshot", "error", err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to publish snapshot"})
		return
	}

	h.logger.Share().Info("Snapshot published via API", "slug", result.Slug, "duration", time.Since(start))
	c.JSON(http.StatusOK, result)
}

// GetShared handles GET /api/v1/share/:slug - loads a published snapshot
func (h *ShareHandlers) GetShared(c *gin.Context) {
	slug := c.Param("slug")

	snap, err := h.snapshotService.GetShared(slug)
	if err != nil {
		h.logger.Share().Error("Failed to load snapshot", "slug", slug, "error", err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load snapshot"})
		return
	}
	if snap == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "snapshot not found"})
		return
	}
	c.JSON(http.StatusOK, snap)
}

// PostShareImage handles POST /api/v1/share/:slug/image - composes the share
// image for a published snapshot. ?format=webp selects the lossy variant;
// the default is the lossless PNG master.
func (h *ShareHandlers) PostShareImage(c *gin.Context) {
	slug := c.Param("slug")

	snap, err := h.snapshotService.GetShared(slug)
	if err != nil {
		h.logger.Share().Error("Failed to load snapshot for image", "slug", slug, "error", err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load snapshot"})
		return
	}
	if snap == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "snapshot not found"})
		return
	}

	composite, err := h.shareImageService.Render(c.Request.Context(), snap)
	if err != nil {
		h.logger.Render().Error("Failed to compose share image", "slug", slug, "error", err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to compose share image"})
		return
	}

	if c.Query("format") == "webp" {
		data, err := composite.WebP()
		if err != nil {
			h.logger.Render().Error("Failed to encode webp variant", "slug", slug, "error", err.Error())
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to encode image"})
			return
		}
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", h.shareImageService.Filename(snap, "webp")))
		c.Data(http.StatusOK, "image/webp", data)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", h.shareImageService.Filename(snap, "png")))
	c.Data(http.StatusOK, "image/png", composite.PNG())
}

// PostCaption handles POST /api/v1/share/:slug/caption - generates a social
// caption for a published snapshot
func (h *ShareHandlers) PostCaption(c *gin.Context) {
	slug := c.Param("slug")

	snap, err := h.snapshotService.GetShared(slug)
	if err != nil {
		h.logger.Share().Error("Failed to load snapshot for caption", "slug", slug, "error", err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load snapshot"})
		return
	}
	if snap == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "snapshot not found"})
		return
	}

	caption := h.captionService.GenerateCaption(c.Request.Context(), snap.DisplayName, snap.Stats)
	c.JSON(http.StatusOK, gin.H{"caption": caption})
}
