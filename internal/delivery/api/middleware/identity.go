package middleware

import (
	"net/http"
	"strings"
	"time"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/constants"
	"storefront/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	sessionCookieMaxAge = 30 * 24 * time.Hour
	maxSessionIDLength  = 128
)

// IdentityMiddleware resolves the cart owner of a request. It must run after OptionalAuthenticate.
type IdentityMiddleware struct {
	secureCookie bool
	newID        func() string
}

// NewIdentityMiddleware creates the identity middleware. secureCookie marks the session cookie Secure.
func NewIdentityMiddleware(secureCookie bool) *IdentityMiddleware {
	return &IdentityMiddleware{
		secureCookie: secureCookie,
		newID:        uuid.NewString,
	}
}

// Resolve binds the request to the authenticated customer or to an anonymous session.
// A session id is taken from the X-Session-Id header, then the sid cookie, and is generated
// and returned in both when the client sent none.
func (m *IdentityMiddleware) Resolve(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		var userID *uuid.UUID
		if id, ok := deliverycontext.GetUserID(c); ok && deliverycontext.GetRoles(c).Contains(entity.RoleCustomer) {
			userID = &id
		}

		sessionID := m.sessionID(c)
		owner, ok := entity.ResolveCartOwner(userID, sessionID)
		if !ok {
			sessionID = m.newID()
			owner = entity.SessionOwner(sessionID)
		}

		if !owner.IsUser() {
			c.Response().Header().Set(constants.HeaderXSessionID, sessionID)
			c.SetCookie(&http.Cookie{
				Name:     constants.SessionCookieName,
				Value:    sessionID,
				Path:     "/",
				MaxAge:   int(sessionCookieMaxAge.Seconds()),
				HttpOnly: true,
				Secure:   m.secureCookie,
				SameSite: http.SameSiteLaxMode,
			})
		}

		deliverycontext.SetCartOwner(c, owner)

		return next(c)
	}
}

func (m *IdentityMiddleware) sessionID(c echo.Context) string {
	candidate := strings.TrimSpace(c.Request().Header.Get(constants.HeaderXSessionID))
	if candidate == "" {
		if cookie, err := c.Cookie(constants.SessionCookieName); err == nil {
			candidate = strings.TrimSpace(cookie.Value)
		}
	}

	if len(candidate) > maxSessionIDLength {
		return ""
	}

	return candidate
}
