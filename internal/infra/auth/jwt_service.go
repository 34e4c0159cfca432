// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"storefront/config"
	"storefront/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const (
	issuer = "storefront"
	// Shorter secrets make HS256 tokens brute-forceable.
	minSecretLength = 16
)

// ErrInvalidToken wraps every parse or verification failure.
var ErrInvalidToken = errors.New("invalid token")

// jwtService is a concrete implementation of the TokenService interface using HS256 JWTs.
type jwtService struct {
	accessSecret []byte
	now          func() time.Time
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if len(cfg.SecretKey.Access) < minSecretLength {
		return nil, errors.Errorf("secretKey.access must be at least %d characters", minSecretLength)
	}

	return &jwtService{
		accessSecret: []byte(cfg.SecretKey.Access),
		now:          time.Now,
	}, nil
}

// GenerateToken creates a signed access token for subject with roles.
func (s *jwtService) GenerateToken(subject uuid.UUID, roles []string, ttl time.Duration) (string, error) {
	if ttl <= 0 {
		return "", errors.New("token ttl must be positive")
	}

	now := s.now()
	claims := &service.Claims{
		Roles: roles,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   subject.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			ID:        uuid.NewString(),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.accessSecret)
	if err != nil {
		return "", errors.Wrap(err, "sign token")
	}

	return signed, nil
}

// ValidateToken checks signature, expiry and issuer, and resolves the subject to a user id.
func (s *jwtService) ValidateToken(tokenString string) (*service.Claims, error) {
	claims := &service.Claims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(*jwt.Token) (any, error) {
		return s.accessSecret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return nil, errors.Wrap(ErrInvalidToken, err.Error())
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, errors.Wrap(ErrInvalidToken, "subject is not a uuid")
	}
	claims.UserID = userID

	return claims, nil
}
