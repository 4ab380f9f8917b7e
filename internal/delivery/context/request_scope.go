// Package context carries the per-request scope: request id, request logger and the admitted session.
package context

import (
	"context"
	"log/slog"

	"greencart/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// ContextKey is a custom type for context keys to avoid collisions.
type ContextKey string

const (
	// KeyScope stores the *Scope of the current request.
	KeyScope ContextKey = "greencart_scope"

	// HeaderXRequestID is the HTTP header name for request ID.
	HeaderXRequestID = "X-Request-Id"
)

// Scope is the state one request accumulates while it passes the middleware chain.
// Audience and UserID stay empty until a session gate admits the request.
type Scope struct {
	RequestID string
	Logger    *slog.Logger
	Audience  entity.Audience
	UserID    uuid.UUID
}

// Begin opens the scope of a request, tags the logger with the request id and echoes the id back.
func Begin(c echo.Context, requestID string, base *slog.Logger) *Scope {
	scope := &Scope{RequestID: requestID}
	if base != nil {
		scope.Logger = base.With(slog.String("request_id", requestID))
	}

	c.Response().Header().Set(HeaderXRequestID, requestID)
	attach(c, scope)

	return scope
}

// ScopeFrom returns the scope stored in ctx.
func ScopeFrom(ctx context.Context) (*Scope, bool) {
	scope, ok := ctx.Value(KeyScope).(*Scope)

	return scope, ok && scope != nil
}

// RequestIDFrom returns the request id of ctx, or "" outside a request.
func RequestIDFrom(ctx context.Context) string {
	if scope, ok := ScopeFrom(ctx); ok {
		return scope.RequestID
	}

	return ""
}

// LoggerFrom returns the request logger, or fallback outside a request.
func LoggerFrom(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if scope, ok := ScopeFrom(ctx); ok && scope.Logger != nil {
		return scope.Logger
	}

	return fallback
}

// scopeOf returns the scope of the echo request, opening an anonymous one when no middleware did.
func scopeOf(c echo.Context) *Scope {
	if scope, ok := ScopeFrom(c.Request().Context()); ok {
		return scope
	}

	scope := &Scope{}
	attach(c, scope)

	return scope
}

func attach(c echo.Context, scope *Scope) {
	c.Set(string(KeyScope), scope)
	c.SetRequest(c.Request().WithContext(context.WithValue(c.Request().Context(), KeyScope, scope)))
}
