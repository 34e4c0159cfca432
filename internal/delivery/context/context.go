// Package context carries request-scoped values between middleware, handlers and usecases.
package context

import (
	"context"
	"log/slog"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// ContextKey is a custom type for context keys to avoid collisions.
type ContextKey string

const (
	// KeyRequestID is the key for storing request ID in context.
	KeyRequestID ContextKey = "request_id"

	// KeyLogger is the key for storing request-scoped logger in context.
	KeyLogger ContextKey = "logger"

	// KeyCartOwner is the echo.Context key of the resolved cart owner.
	KeyCartOwner ContextKey = "cart_owner"

	// KeyUserID and KeyRoles are the echo.Context keys of a validated access token.
	KeyUserID ContextKey = "user_id"
	KeyRoles  ContextKey = "roles"

	// HeaderXRequestID is the HTTP header name for request ID.
	HeaderXRequestID = "X-Request-Id"
)

// GetRequestID extracts the request ID from echo.Context, or returns an empty string.
func GetRequestID(c echo.Context) string {
	if id, ok := c.Get(string(KeyRequestID)).(string); ok {
		return id
	}

	return ""
}

// SetRequestID sets the request ID in echo.Context.
func SetRequestID(c echo.Context, requestID string) {
	c.Set(string(KeyRequestID), requestID)
}

// GetRequestIDFromContext extracts the request ID from context.Context.
func GetRequestIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(KeyRequestID).(string); ok {
		return id
	}

	return ""
}

// WithRequestID returns a new context with the request ID.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, KeyRequestID, requestID)
}

// GetLoggerOrDefault extracts the request-scoped logger from context.Context.
// If not found, returns the provided fallback logger.
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger, ok := ctx.Value(KeyLogger).(*slog.Logger); ok && logger != nil {
		return logger
	}

	return fallback
}

// WithLogger returns a new context with the logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, KeyLogger, logger)
}

// SetCartOwner stores the identity that owns the request's cart.
func SetCartOwner(c echo.Context, owner entity.CartOwner) {
	c.Set(string(KeyCartOwner), owner)
}

// GetCartOwner returns the identity resolved for the request.
func GetCartOwner(c echo.Context) (entity.CartOwner, bool) {
	owner, ok := c.Get(string(KeyCartOwner)).(entity.CartOwner)

	return owner, ok
}

// SetAuth stores the subject and roles of a validated access token.
func SetAuth(c echo.Context, userID uuid.UUID, roles entity.Roles) {
	c.Set(string(KeyUserID), userID)
	c.Set(string(KeyRoles), roles)
}

// GetUserID returns the authenticated subject, if any.
func GetUserID(c echo.Context) (uuid.UUID, bool) {
	userID, ok := c.Get(string(KeyUserID)).(uuid.UUID)

	return userID, ok
}

// GetRoles returns the roles of the authenticated subject.
func GetRoles(c echo.Context) entity.Roles {
	roles, _ := c.Get(string(KeyRoles)).(entity.Roles)

	return roles
}
