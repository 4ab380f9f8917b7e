package middleware

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "greencart/internal/delivery/context"
	"greencart/internal/delivery/http/session"
	"greencart/internal/domain/entity"
	"greencart/internal/domain/service"
	mockService "greencart/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type gateFixture struct {
	tokenSvc *mockService.MockTokenService
	metrics  *mockService.MockSessionMetrics
	mw       *AuthMiddleware
}

func newGateFixture(t *testing.T) *gateFixture {
	t.Helper()

	tokenSvc := mockService.NewMockTokenService(t)
	metrics := mockService.NewMockSessionMetrics(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return &gateFixture{
		tokenSvc: tokenSvc,
		metrics:  metrics,
		mw:       NewAuthMiddleware(tokenSvc, metrics, logger),
	}
}

func serveGate(gate echo.MiddlewareFunc, cookie *http.Cookie) (*httptest.ResponseRecorder, bool, uuid.UUID, error) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	var userID uuid.UUID
	err := gate(func(c echo.Context) error {
		called = true
		userID, _ = deliverycontext.UserIDFrom(c.Request().Context())

		return c.NoContent(http.StatusOK)
	})(c)

	return rec, called, userID, err
}

func decodeFailure(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body
}

func TestUserGate_AttachesUserID(t *testing.T) {
	f := newGateFixture(t)
	userID := uuid.New()

	f.tokenSvc.EXPECT().Verify("good", entity.AudienceUser).
		Return(&service.Claims{IdentityClaim: service.IdentityClaim{UserID: userID}, Audience: entity.AudienceUser}, nil).Once()

	rec, called, gotID, err := serveGate(f.mw.UserGate, &http.Cookie{Name: session.UserCookie, Value: "good"})

	require.NoError(t, err)
	assert.True(t, called)
	assert.Equal(t, userID, gotID)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestUserGate_Rejections(t *testing.T) {
	tests := []struct {
		name        string
		cookie      *http.Cookie
		verifyErr   error
		wantReason  string
		wantMessage string
	}{
		{
			name:        "missing cookie",
			wantReason:  reasonMissing,
			wantMessage: "Not Authorized",
		},
		{
			name:        "empty cookie",
			cookie:      &http.Cookie{Name: session.UserCookie, Value: ""},
			wantReason:  reasonMissing,
			wantMessage: "Not Authorized",
		},
		{
			name:        "expired token",
			cookie:      &http.Cookie{Name: session.UserCookie, Value: "old"},
			verifyErr:   service.ErrTokenExpired,
			wantReason:  reasonExpired,
			wantMessage: "token is expired",
		},
		{
			name:        "seller token on user route",
			cookie:      &http.Cookie{Name: session.UserCookie, Value: "seller"},
			verifyErr:   service.ErrWrongAudience,
			wantReason:  reasonAudience,
			wantMessage: "Not Authorized",
		},
		{
			name:        "tampered token",
			cookie:      &http.Cookie{Name: session.UserCookie, Value: "bad"},
			verifyErr:   service.ErrTokenInvalid,
			wantReason:  reasonInvalid,
			wantMessage: "token is invalid",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newGateFixture(t)
			if tt.verifyErr != nil {
				f.tokenSvc.EXPECT().Verify(tt.cookie.Value, entity.AudienceUser).Return(nil, tt.verifyErr).Once()
			}
			f.metrics.EXPECT().RecordGateRejection(entity.AudienceUser, tt.wantReason).Once()

			rec, called, _, err := serveGate(f.mw.UserGate, tt.cookie)

			require.NoError(t, err)
			assert.False(t, called)
			assert.Equal(t, http.StatusUnauthorized, rec.Code)

			body := decodeFailure(t, rec)
			assert.Equal(t, false, body["success"])
			assert.Equal(t, tt.wantMessage, body["message"])
		})
	}
}

func TestSellerGate(t *testing.T) {
	t.Run("valid seller session", func(t *testing.T) {
		f := newGateFixture(t)
		f.tokenSvc.EXPECT().Verify("seller", entity.AudienceSeller).
			Return(&service.Claims{IdentityClaim: service.IdentityClaim{Email: "seller@example.com"}, Audience: entity.AudienceSeller}, nil).Once()

		rec, called, _, err := serveGate(f.mw.SellerGate, &http.Cookie{Name: session.SellerCookie, Value: "seller"})

		require.NoError(t, err)
		assert.True(t, called)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("user cookie does not open seller routes", func(t *testing.T) {
		f := newGateFixture(t)
		f.metrics.EXPECT().RecordGateRejection(entity.AudienceSeller, reasonMissing).Once()

		rec, called, _, err := serveGate(f.mw.SellerGate, &http.Cookie{Name: session.UserCookie, Value: "user"})

		require.NoError(t, err)
		assert.False(t, called)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("stale seller after email change", func(t *testing.T) {
		f := newGateFixture(t)
		f.tokenSvc.EXPECT().Verify("stale", entity.AudienceSeller).Return(nil, service.ErrWrongAudience).Once()
		f.metrics.EXPECT().RecordGateRejection(entity.AudienceSeller, reasonAudience).Once()

		rec, called, _, err := serveGate(f.mw.SellerGate, &http.Cookie{Name: session.SellerCookie, Value: "stale"})

		require.NoError(t, err)
		assert.False(t, called)
		assert.Equal(t, "Not Authorized", decodeFailure(t, rec)["message"])
	})
}
