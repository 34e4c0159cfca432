package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/constants"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
	mockSvc "storefront/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

func newContext(req *http.Request) (echo.Context, *httptest.ResponseRecorder) {
	rec := httptest.NewRecorder()

	return echo.New().NewContext(req, rec), rec
}

func okHandler(c echo.Context) error {
	return c.NoContent(http.StatusOK)
}

func TestAuthMiddleware_Authenticate(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name       string
		header     string
		setup      func(tokens *mockSvc.MockTokenService)
		wantStatus int
	}{
		{
			name:       "missing header",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "not a bearer token",
			header:     "Basic abc",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:   "invalid token",
			header: "Bearer bad",
			setup: func(tokens *mockSvc.MockTokenService) {
				tokens.EXPECT().ValidateToken("bad").Return(nil, errors.New("expired")).Once()
			},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:   "valid token",
			header: "Bearer good",
			setup: func(tokens *mockSvc.MockTokenService) {
				tokens.EXPECT().ValidateToken("good").Return(&service.Claims{UserID: userID, Roles: []string{"admin"}}, nil).Once()
			},
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens := mockSvc.NewMockTokenService(t)
			if tt.setup != nil {
				tt.setup(tokens)
			}
			m := NewAuthMiddleware(tokens)

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set(echo.HeaderAuthorization, tt.header)
			}
			c, rec := newContext(req)

			require.NoError(t, m.Authenticate(okHandler)(c))
			assert.Equal(t, tt.wantStatus, rec.Code)

			if tt.wantStatus == http.StatusOK {
				got, ok := deliverycontext.GetUserID(c)
				require.True(t, ok)
				assert.Equal(t, userID, got)
				assert.True(t, deliverycontext.GetRoles(c).Contains(entity.RoleAdmin))
			}
		})
	}
}

func TestAuthMiddleware_OptionalAuthenticate(t *testing.T) {
	t.Run("anonymous passes", func(t *testing.T) {
		m := NewAuthMiddleware(mockSvc.NewMockTokenService(t))
		c, rec := newContext(httptest.NewRequest(http.MethodGet, "/", nil))

		require.NoError(t, m.OptionalAuthenticate(okHandler)(c))
		assert.Equal(t, http.StatusOK, rec.Code)
		_, ok := deliverycontext.GetUserID(c)
		assert.False(t, ok)
	})

	t.Run("bad token is rejected", func(t *testing.T) {
		tokens := mockSvc.NewMockTokenService(t)
		tokens.EXPECT().ValidateToken("bad").Return(nil, errors.New("bad signature")).Once()
		m := NewAuthMiddleware(tokens)

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(echo.HeaderAuthorization, "Bearer bad")
		c, rec := newContext(req)

		require.NoError(t, m.OptionalAuthenticate(okHandler)(c))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestAuthMiddleware_RequireRole(t *testing.T) {
	m := NewAuthMiddleware(mockSvc.NewMockTokenService(t))

	c, rec := newContext(httptest.NewRequest(http.MethodGet, "/", nil))
	deliverycontext.SetAuth(c, uuid.New(), entity.Roles{entity.RoleCustomer})
	require.NoError(t, m.RequireRole(entity.RoleAdmin)(okHandler)(c))
	assert.Equal(t, http.StatusForbidden, rec.Code)

	c, rec = newContext(httptest.NewRequest(http.MethodGet, "/", nil))
	deliverycontext.SetAuth(c, uuid.New(), entity.Roles{entity.RoleAdmin})
	require.NoError(t, m.RequireRole(entity.RoleAdmin)(okHandler)(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestIdentityMiddleware_Resolve(t *testing.T) {
	newMiddleware := func() *IdentityMiddleware {
		m := NewIdentityMiddleware(true)
		m.newID = func() string { return "generated-id" }

		return m
	}

	resolve := func(t *testing.T, req *http.Request, setup func(c echo.Context)) (entity.CartOwner, *httptest.ResponseRecorder) {
		t.Helper()

		c, rec := newContext(req)
		if setup != nil {
			setup(c)
		}
		require.NoError(t, newMiddleware().Resolve(okHandler)(c))

		owner, ok := deliverycontext.GetCartOwner(c)
		require.True(t, ok)

		return owner, rec
	}

	t.Run("customer token wins over session", func(t *testing.T) {
		userID := uuid.New()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(constants.HeaderXSessionID, "sess-1")

		owner, rec := resolve(t, req, func(c echo.Context) {
			deliverycontext.SetAuth(c, userID, entity.Roles{entity.RoleCustomer})
		})
		require.True(t, owner.IsUser())
		assert.Equal(t, userID, *owner.UserID)
		assert.Empty(t, rec.Header().Get(constants.HeaderXSessionID))
	})

	t.Run("admin token does not own a cart", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(constants.HeaderXSessionID, "sess-1")

		owner, _ := resolve(t, req, func(c echo.Context) {
			deliverycontext.SetAuth(c, uuid.New(), entity.Roles{entity.RoleAdmin})
		})
		assert.Equal(t, entity.SessionOwner("sess-1"), owner)
	})

	t.Run("header before cookie", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(constants.HeaderXSessionID, "from-header")
		req.AddCookie(&http.Cookie{Name: constants.SessionCookieName, Value: "from-cookie"})

		owner, rec := resolve(t, req, nil)
		assert.Equal(t, entity.SessionOwner("from-header"), owner)
		assert.Equal(t, "from-header", rec.Header().Get(constants.HeaderXSessionID))
	})

	t.Run("cookie", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: constants.SessionCookieName, Value: "from-cookie"})

		owner, _ := resolve(t, req, nil)
		assert.Equal(t, entity.SessionOwner("from-cookie"), owner)
	})

	t.Run("new session is issued", func(t *testing.T) {
		owner, rec := resolve(t, httptest.NewRequest(http.MethodGet, "/", nil), nil)
		assert.Equal(t, entity.SessionOwner("generated-id"), owner)
		assert.Equal(t, "generated-id", rec.Header().Get(constants.HeaderXSessionID))

		cookies := rec.Result().Cookies()
		require.Len(t, cookies, 1)
		assert.Equal(t, constants.SessionCookieName, cookies[0].Name)
		assert.Equal(t, "generated-id", cookies[0].Value)
		assert.True(t, cookies[0].HttpOnly)
		assert.True(t, cookies[0].Secure)
	})

	t.Run("oversized session id is replaced", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(constants.HeaderXSessionID, strings.Repeat("a", 200))

		owner, _ := resolve(t, req, nil)
		assert.Equal(t, entity.SessionOwner("generated-id"), owner)
	})
}

func TestErrorMiddleware_HandleHTTPError(t *testing.T) {
	m := NewErrorMiddleware(discardLogger)

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   string
	}{
		{
			name:       "app error",
			err:        errors.WithStack(domainerrors.ErrOrderNotFound),
			wantStatus: http.StatusNotFound,
			wantBody:   `"code":"ORDER_NOT_FOUND"`,
		},
		{
			name:       "echo error",
			err:        echo.NewHTTPError(http.StatusRequestEntityTooLarge, "Request Entity Too Large"),
			wantStatus: http.StatusRequestEntityTooLarge,
			wantBody:   `"code":"HTTP_ERROR"`,
		},
		{
			name:       "database error hides details",
			err:        domainerrors.NewDatabaseExecuteError(errors.New("conn reset"), "insert order"),
			wantStatus: http.StatusInternalServerError,
			wantBody:   `"code":"SERVER_ERROR"`,
		},
		{
			name:       "unknown error",
			err:        errors.New("boom"),
			wantStatus: http.StatusInternalServerError,
			wantBody:   `"code":"INTERNAL_ERROR"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := newContext(httptest.NewRequest(http.MethodGet, "/", nil))

			m.HandleHTTPError(tt.err, c)
			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantBody)
			assert.NotContains(t, rec.Body.String(), "conn reset")
		})
	}
}

func TestErrorMiddleware_SkipsCommittedResponse(t *testing.T) {
	m := NewErrorMiddleware(discardLogger)
	c, rec := newContext(httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, c.NoContent(http.StatusAccepted))

	m.HandleHTTPError(errors.New("late failure"), c)
	assert.Equal(t, http.StatusAccepted, rec.Code)
	assert.Empty(t, rec.Body.String())
}

type observation struct {
	method string
	path   string
	status int
}

type fakeObserver struct {
	observed []observation
}

func (f *fakeObserver) ObserveHTTPRequest(method, path string, status int, _ time.Duration) {
	f.observed = append(f.observed, observation{method: method, path: path, status: status})
}

func TestMetricsMiddleware_Handle(t *testing.T) {
	observer := &fakeObserver{}
	e := echo.New()
	e.HTTPErrorHandler = NewErrorMiddleware(discardLogger).HandleHTTPError
	e.Use(NewMetricsMiddleware(observer).Handle)
	e.GET("/api/v1/orders/:id", func(c echo.Context) error {
		return errors.WithStack(domainerrors.ErrOrderNotFound)
	})
	e.GET("/health", okHandler)

	for _, target := range []string{"/api/v1/orders/42", "/health", "/nowhere"} {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	}

	require.Len(t, observer.observed, 3)
	assert.Equal(t, observation{method: http.MethodGet, path: "/api/v1/orders/:id", status: http.StatusNotFound}, observer.observed[0])
	assert.Equal(t, observation{method: http.MethodGet, path: "/health", status: http.StatusOK}, observer.observed[1])
	assert.Equal(t, http.StatusNotFound, observer.observed[2].status)
}
