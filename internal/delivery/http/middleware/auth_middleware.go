package middleware

import (
	"log/slog"

	deliverycontext "greencart/internal/delivery/context"
	"greencart/internal/delivery/http/response"
	"greencart/internal/delivery/http/session"
	"greencart/internal/domain/entity"
	domainerrors "greencart/internal/domain/errors"
	"greencart/internal/domain/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// Gate rejection reasons reported to metrics.
const (
	reasonMissing  = "missing"
	reasonExpired  = "expired"
	reasonInvalid  = "invalid"
	reasonAudience = "audience"
)

// AuthMiddleware guards routes with the session cookie of one trust domain.
// Gates only verify tokens; they never read the credential store.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	metrics  service.SessionMetrics
	logger   *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, metrics service.SessionMetrics, logger *slog.Logger) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc, metrics: metrics, logger: logger}
}

// UserGate admits requests carrying a valid user session and attaches the user id.
func (m *AuthMiddleware) UserGate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, err := m.verify(c, session.UserCookie, entity.AudienceUser)
		if claims == nil {
			return err
		}

		deliverycontext.Admit(c, claims.Audience, claims.UserID)

		return next(c)
	}
}

// SellerGate admits requests carrying a session of the configured seller.
func (m *AuthMiddleware) SellerGate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, err := m.verify(c, session.SellerCookie, entity.AudienceSeller)
		if claims == nil {
			return err
		}

		deliverycontext.Admit(c, claims.Audience, claims.UserID)

		return next(c)
	}
}

// verify returns nil claims when the request was rejected; the 401 has then already been written.
func (m *AuthMiddleware) verify(c echo.Context, cookieName string, audience entity.Audience) (*service.Claims, error) {
	cookie, err := c.Cookie(cookieName)
	if err != nil || cookie.Value == "" {
		return nil, m.reject(c, audience, reasonMissing, domainerrors.ErrNotAuthorized.Message())
	}

	claims, err := m.tokenSvc.Verify(cookie.Value, audience)
	if err != nil {
		reason, message := describeVerifyError(err)

		return nil, m.reject(c, audience, reason, message)
	}

	return claims, nil
}

func (m *AuthMiddleware) reject(c echo.Context, audience entity.Audience, reason, message string) error {
	m.metrics.RecordGateRejection(audience, reason)
	deliverycontext.LoggerFrom(c.Request().Context(), m.logger).Debug("Session rejected",
		slog.String("audience", audience.String()),
		slog.String("reason", reason),
		slog.String("path", c.Path()),
	)

	return response.Unauthorized(c, message)
}

// describeVerifyError maps a verification failure onto a metrics reason and the client message.
func describeVerifyError(err error) (reason, message string) {
	switch {
	case errors.Is(err, service.ErrTokenExpired):
		return reasonExpired, service.ErrTokenExpired.Error()
	case errors.Is(err, service.ErrWrongAudience):
		return reasonAudience, domainerrors.ErrNotAuthorized.Message()
	default:
		return reasonInvalid, service.ErrTokenInvalid.Error()
	}
}
