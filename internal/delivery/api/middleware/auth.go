package middleware

import (
	"strings"

	"storefront/internal/delivery/api/response"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"

	"github.com/labstack/echo/v4"
)

const bearerPrefix = "Bearer "

// AuthMiddleware provides middleware for JWT authentication and authorization.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate requires a valid bearer access token.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return response.Unauthorized(c, "MISSING_TOKEN", "Authorization header is missing")
		}

		if ok := m.authenticate(c, authHeader); !ok {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid or expired token")
		}

		return next(c)
	}
}

// OptionalAuthenticate accepts anonymous requests but rejects a bearer token that does not verify.
func (m *AuthMiddleware) OptionalAuthenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return next(c)
		}

		if ok := m.authenticate(c, authHeader); !ok {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid or expired token")
		}

		return next(c)
	}
}

func (m *AuthMiddleware) authenticate(c echo.Context, authHeader string) bool {
	tokenString, found := strings.CutPrefix(authHeader, bearerPrefix)
	if !found || tokenString == "" {
		return false
	}

	claims, err := m.tokenSvc.ValidateToken(tokenString)
	if err != nil {
		return false
	}

	deliverycontext.SetAuth(c, claims.UserID, entity.RolesFromStrings(claims.Roles))

	return true
}

// RequireRole is a middleware factory that checks if the user has a specific role.
// It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireRole(requiredRole entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !deliverycontext.GetRoles(c).Contains(requiredRole) {
				return response.Forbidden(c, "FORBIDDEN", "Permission denied: require '"+requiredRole.String()+"' role")
			}

			return next(c)
		}
	}
}
