package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims defines the custom claims for access tokens.
type Claims struct {
	UserID uuid.UUID `json:"-"`
	Roles  []string  `json:"roles,omitempty"`
	jwt.RegisteredClaims
}

// TokenService defines the interface for issuing and validating access tokens.
type TokenService interface {
	// GenerateToken creates a signed access token for subject with roles, valid for ttl.
	GenerateToken(subject uuid.UUID, roles []string, ttl time.Duration) (string, error)

	// ValidateToken parses and verifies a token string.
	ValidateToken(tokenString string) (*Claims, error)
}
