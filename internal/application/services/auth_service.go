// Package services provides application-level orchestration services
package services

import (
	"github.com/lakbayph/lakbay-go/internal/infrastructure/observability/logging"
	"github.com/lakbayph/lakbay-go/internal/infrastructure/observability/performance"
	"github.com/lakbayph/lakbay-go/internal/infrastructure/security"
	"github.com/lakbayph/lakbay-go/pkg/config"
	"golang.org/x/crypto/bcrypt"
)

// AuthService issues anonymous traveler sessions and validates tokens.
type AuthService struct {
	logger      *logging.ChanneledLogger
	perfTracker *performance.Tracker
}

// NewAuthService creates a new authentication service.
func NewAuthService(logger *logging.ChanneledLogger, perfTracker *performance.Tracker) *AuthService {
	return &AuthService{logger: logger, perfTracker: perfTracker}
}

// SessionResult holds a freshly issued session.
type SessionResult struct {
	OwnerKey string `json:"ownerKey"`
	Token    string `json:"token"`
}

// StartSession mints a new owner key and a signed session token for it.
func (a *AuthService) StartSession() (*SessionResult, error) {
	ownerKey := security.GenerateULID()
	token, err := security.GenerateOwnerToken(ownerKey, "traveler", config.JWTSecret, config.SessionIssuer, config.OwnerTokenTTL)
	if err != nil {
		return nil, err
	}

	a.logger.Auth().Info("Session started", "ownerKey", ownerKey)
	return &SessionResult{OwnerKey: ownerKey, Token: token}, nil
}

// ValidateToken checks a session token and returns its claims.
func (a *AuthService) ValidateToken(token string) (*security.OwnerClaims, error) {
	return security.ValidateOwnerToken(token, config.JWTSecret)
}

// AuthenticateAdmin validates the admin password and issues an admin token.
// Returns empty on failure; bcrypt hashes and plaintext passwords are both
// accepted during transition.
func (a *AuthService) AuthenticateAdmin(password string) (string, bool) {
	if config.AdminPassword == "" || password == "" {
		return "", false
	}

	matched := false
	if err := bcrypt.CompareHashAndPassword([]byte(config.AdminPassword), []byte(password)); err == nil {
		matched = true
	} else if password == config.AdminPassword {
		matched = true
	}
	if !matched {
		a.logger.Auth().Warn("Admin authentication failed")
		return "", false
	}

	token, err := security.GenerateOwnerToken("admin", "admin", config.JWTSecret, config.SessionIssuer, config.OwnerTokenTTL)
	if err != nil {
		a.logger.Auth().Error("Failed to issue admin token", "error", err.Error())
		return "", false
	}
	return token, true
}
