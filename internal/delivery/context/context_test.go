package context

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEchoContext() echo.Context {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	return e.NewContext(req, httptest.NewRecorder())
}

func TestLoggerFallback(t *testing.T) {
	fallback := slog.New(slog.NewTextHandler(io.Discard, nil))
	scoped := fallback.With(slog.String("request_id", "abc"))

	assert.Same(t, fallback, GetLoggerOrDefault(context.Background(), fallback))
	assert.Same(t, scoped, GetLoggerOrDefault(WithLogger(context.Background(), scoped), fallback))
}

func TestRequestID(t *testing.T) {
	c := newEchoContext()
	assert.Empty(t, GetRequestID(c))

	SetRequestID(c, "req-1")
	assert.Equal(t, "req-1", GetRequestID(c))
	assert.Equal(t, "req-1", GetRequestIDFromContext(WithRequestID(context.Background(), "req-1")))
}

func TestCartOwnerAndAuth(t *testing.T) {
	c := newEchoContext()

	_, ok := GetCartOwner(c)
	assert.False(t, ok)

	SetCartOwner(c, entity.SessionOwner("s1"))
	owner, ok := GetCartOwner(c)
	require.True(t, ok)
	assert.Equal(t, "s1", owner.SessionID)

	userID := uuid.New()
	SetAuth(c, userID, entity.Roles{entity.RoleAdmin})
	got, ok := GetUserID(c)
	require.True(t, ok)
	assert.Equal(t, userID, got)
	assert.True(t, GetRoles(c).Contains(entity.RoleAdmin))
}
