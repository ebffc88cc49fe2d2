// Package handlers provides HTTP request handlers for the presentation layer.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lakbayph/lakbay-go/internal/application/services"
	"github.com/lakbayph/lakbay-go/internal/infrastructure/observability/logging"
	"github.com/lakbayph/lakbay-go/internal/infrastructure/observability/performance"
	"github.com/lakbayph/lakbay-go/internal/presentation/http/middleware"
)

// AuthHandlers contains all authentication-related HTTP handlers
type AuthHandlers struct {
	authService *services.AuthService
	logger      *logging.ChanneledLogger
	perfTracker *performance.Tracker
}

// NewAuthHandlers creates auth handlers with injected dependencies
func NewAuthHandlers(authService *services.AuthService, logger *logging.ChanneledLogger, perfTracker *performance.Tracker) *AuthHandlers {
	return &AuthHandlers{
		authService: authService,
		logger:      logger,
		perfTracker: perfTracker,
	}
}

// PostSession handles POST /api/v1/auth/session - starts an anonymous session
func (h *AuthHandlers) PostSession(c *gin.Context) {
	marker := h.perfTracker.StartOperation("post_session_request", "")
	defer marker.Complete()

	session, err := h.authService.StartSession()
	if err != nil {
		h.logger.Auth().Error("Failed to start session", "error", err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to start session"})
		return
	}

	marker.SetSuccess(true)
	c.JSON(http.StatusOK, session)
}

// GetAuthStatus handles GET /api/v1/auth/status - reports the current session
func (h *AuthHandlers) GetAuthStatus(c *gin.Context) {
	ownerKey := middleware.GetOwnerKey(c)
	c.JSON(http.StatusOK, gin.H{
		"authenticated": ownerKey != "",
		"ownerKey":      ownerKey,
	})
}

// PostLogin handles POST /api/v1/auth/login - admin authentication
func (h *AuthHandlers) PostLogin(c *gin.Context) {
	marker := h.perfTracker.StartOperation("post_login_request", "")
	defer marker.Complete()

	var req struct {
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "password is required"})
		return
	}

	token, ok := h.authService.AuthenticateAdmin(req.Password)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		return
	}

	marker.SetSuccess(true)
	c.JSON(http.StatusOK, gin.H{"token": token})
}
