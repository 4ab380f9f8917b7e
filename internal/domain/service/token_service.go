package service

import (
	"errors"
	"time"

	"greencart/internal/domain/entity"

	"github.com/google/uuid"
)

// Token verification failures. Callers match them with errors.Is.
var (
	ErrTokenExpired  = errors.New("token is expired")
	ErrTokenInvalid  = errors.New("token is invalid")
	ErrWrongAudience = errors.New("token audience mismatch")
)

// IdentityClaim is the minimal payload embedded in a session token.
// User tokens carry UserID, seller tokens carry Email.
type IdentityClaim struct {
	UserID uuid.UUID
	Email  string
}

// Claims is a verified token payload.
type Claims struct {
	IdentityClaim
	Audience  entity.Audience
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// AudiencePolicy accepts or rejects verified claims for one trust domain.
type AudiencePolicy func(claims *Claims) error

// TokenService mints and verifies signed session tokens for both trust domains.
type TokenService interface {
	// Issue signs a token for the claim, scoped to the audience.
	Issue(claim IdentityClaim, audience entity.Audience) (string, error)

	// Verify checks signature, expiry and the audience policy.
	// It fails with ErrTokenExpired, ErrTokenInvalid or ErrWrongAudience.
	Verify(token string, audience entity.Audience) (*Claims, error)

	// TTL returns how long issued tokens stay valid.
	TTL() time.Duration
}
