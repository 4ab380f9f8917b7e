package context

import (
	"context"
	"log/slog"

	"greencart/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// Admit records the session a gate accepted. Seller sessions carry no user id.
// The request logger gains the audience, and the user id when there is one.
func Admit(c echo.Context, audience entity.Audience, userID uuid.UUID) {
	scope := scopeOf(c)
	scope.Audience = audience
	scope.UserID = userID

	if scope.Logger == nil {
		return
	}
	scope.Logger = scope.Logger.With(slog.String("audience", audience.String()))
	if userID != uuid.Nil {
		scope.Logger = scope.Logger.With(slog.String("user_id", userID.String()))
	}
}

// UserID returns the user admitted by the user gate.
func UserID(c echo.Context) (uuid.UUID, bool) {
	return UserIDFrom(c.Request().Context())
}

// UserIDFrom returns the admitted user id carried by ctx.
func UserIDFrom(ctx context.Context) (uuid.UUID, bool) {
	scope, ok := ScopeFrom(ctx)
	if !ok || scope.Audience != entity.AudienceUser || scope.UserID == uuid.Nil {
		return uuid.Nil, false
	}

	return scope.UserID, true
}
