package context

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"greencart/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEchoContext() (echo.Context, *httptest.ResponseRecorder) {
	rec := httptest.NewRecorder()

	return echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec), rec
}

func TestBegin_TagsLoggerAndHeader(t *testing.T) {
	var buf bytes.Buffer
	base := slog.New(slog.NewJSONHandler(&buf, nil))
	c, rec := newEchoContext()

	Begin(c, "req-1", base)

	ctx := c.Request().Context()
	assert.Equal(t, "req-1", RequestIDFrom(ctx))
	assert.Equal(t, "req-1", rec.Header().Get(HeaderXRequestID))

	LoggerFrom(ctx, nil).Info("hello")
	assert.Contains(t, buf.String(), `"request_id":"req-1"`)
}

func TestLoggerFrom_FallsBackOutsideRequest(t *testing.T) {
	fallback := slog.Default()

	assert.Same(t, fallback, LoggerFrom(context.Background(), fallback))
	assert.Equal(t, "", RequestIDFrom(context.Background()))
}

func TestAdmit_User(t *testing.T) {
	var buf bytes.Buffer
	c, _ := newEchoContext()
	Begin(c, "req-2", slog.New(slog.NewJSONHandler(&buf, nil)))

	_, ok := UserID(c)
	assert.False(t, ok)

	id := uuid.New()
	Admit(c, entity.AudienceUser, id)

	got, ok := UserID(c)
	require.True(t, ok)
	assert.Equal(t, id, got)

	LoggerFrom(c.Request().Context(), nil).Info("admitted")
	assert.Contains(t, buf.String(), `"user_id":"`+id.String()+`"`)
	assert.Contains(t, buf.String(), `"audience":"user"`)
}

func TestAdmit_SellerCarriesNoUser(t *testing.T) {
	c, _ := newEchoContext()

	Admit(c, entity.AudienceSeller, uuid.Nil)

	scope, ok := ScopeFrom(c.Request().Context())
	require.True(t, ok)
	assert.Equal(t, entity.AudienceSeller, scope.Audience)

	_, ok = UserID(c)
	assert.False(t, ok)
}
