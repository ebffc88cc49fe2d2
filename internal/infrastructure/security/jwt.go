// Package security provides token generation and validation utilities.
package security

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// OwnerClaims are the JWT claims carried by a traveler session token.
type OwnerClaims struct {
	OwnerKey string `json:"ownerKey"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// GenerateOwnerToken issues a signed session token for an owner key.
func GenerateOwnerToken(ownerKey, role, secret, issuer string, ttl time.Duration) (string, error) {
	claims := OwnerClaims{
		OwnerKey: ownerKey,
		Role:     role,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", fmt.Errorf("failed to sign owner token: %w", err)
	}
	return signed, nil
}

// ValidateOwnerToken parses and validates a session token, returning its
// claims.
func ValidateOwnerToken(tokenString, secret string) (*OwnerClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &OwnerClaims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	claims, ok := token.Claims.(*OwnerClaims)
	if !ok || !token.Valid || claims.OwnerKey == "" {
		return nil, fmt.Errorf("invalid owner claims")
	}
	return claims, nil
}
