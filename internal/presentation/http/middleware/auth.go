package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/lakbayph/lakbay-go/internal/application/services"
)

const (
	ownerKeyContextKey = "ownerKey"
	roleContextKey     = "role"
)

// SessionMiddleware extracts the bearer session token when present and stores
// the owner key on the request context. Requests without a token continue
// anonymously; only a malformed token is rejected.
func SessionMiddleware(authService *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			c.Next()
			return
		}

		claims, err := authService.ValidateToken(token)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid session token"})
			c.Abort()
			return
		}

		c.Set(ownerKeyContextKey, claims.OwnerKey)
		c.Set(roleContextKey, claims.Role)
		c.Next()
	}
}

// RequireSession rejects requests that did not present a valid session.
func RequireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		if GetOwnerKey(c) == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "session required"})
			c.Abort()
			return
		}
		c.Next()
	}
}

// AdminOnly rejects requests whose session does not carry the admin role.
func AdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		if role, _ := c.Get(roleContextKey); role != "admin" {
			c.JSON(http.StatusForbidden, gin.H{"error": "admin access required"})
			c.Abort()
			return
		}
		c.Next()
	}
}

// GetOwnerKey returns the authenticated owner key, empty for anonymous
// requests.
func GetOwnerKey(c *gin.Context) string {
	if v, ok := c.Get(ownerKeyContextKey); ok {
		if key, ok := v.(string); ok {
			return key
		}
	}
	return ""
}

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
	}
	return ""
}
