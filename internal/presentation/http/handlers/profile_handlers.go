package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lakbayph/lakbay-go/internal/application/services"
	"github.com/lakbayph/lakbay-go/internal/infrastructure/observability/logging"
	"github.com/lakbayph/lakbay-go/internal/presentation/http/middleware"
)

// ProfileHandlers contains the public username HTTP handlers
type ProfileHandlers struct {
	profileService *services.ProfileService
	logger         *logging.ChanneledLogger
}

// NewProfileHandlers creates profile handlers with injected dependencies
func NewProfileHandlers(profileService *services.ProfileService, logger *logging.ChanneledLogger) *ProfileHandlers {
	return &ProfileHandlers{profileService: profileService, logger: logger}
}

// PostUsername handles POST /api/v1/profile/username - reserves a username
func (h *ProfileHandlers) PostUsername(c *gin.Context) {
	ownerKey := middleware.GetOwnerKey(c)

	var req struct {
		Username string `json:"username" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "username is required"})
		return
	}

	username, err := h.profileService.ReserveUsername(ownerKey, req.Username)
	if errors.Is(err, services.ErrInvalidUsername) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if errors.Is(err, services.ErrUsernameTaken) {
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		h.logger.Share().Error("Failed to reserve username", "error", err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to reserve username"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"username": username})
}

// GetUsername handles GET /api/v1/profile/username/:username - resolves a
// public username
func (h *ProfileHandlers) GetUsername(c *gin.Context) {
	username := c.Param("username")

	ownerKey, found, err := h.profileService.ResolveUsername(username)
	if err != nil {
		h.logger.Share().Error("Failed to resolve username", "username", username, "error", err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to resolve username"})
		return
	}
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "username not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"username": username, "ownerKey": ownerKey})
}
