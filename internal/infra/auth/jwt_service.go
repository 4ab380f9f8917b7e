// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"greencart/config"
	"greencart/internal/domain/entity"
	"greencart/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// sessionClaims is the wire payload of a session token.
type sessionClaims struct {
	ID    string `json:"id,omitempty"`
	Email string `json:"email,omitempty"`
	jwt.RegisteredClaims
}

// jwtService signs HS256 session tokens for both trust domains with one secret.
// Each audience has its own acceptance policy on top of the shared verification.
type jwtService struct {
	secret   []byte
	ttl      time.Duration
	now      func() time.Time
	policies map[entity.Audience]service.AudiencePolicy
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	return NewJWTServiceWithClock(cfg, time.Now)
}

// NewJWTServiceWithClock builds the token service on a custom clock.
func NewJWTServiceWithClock(cfg *config.Config, now func() time.Time) (service.TokenService, error) {
	if cfg.SecretKey.JWT == "" {
		return nil, errors.New("jwt secret must be provided")
	}
	sellerEmail := cfg.SellerEmail()
	if sellerEmail == "" {
		return nil, errors.New("seller email must be provided")
	}

	return &jwtService{
		secret: []byte(cfg.SecretKey.JWT),
		ttl:    cfg.TokenTTL(),
		now:    now,
		policies: map[entity.Audience]service.AudiencePolicy{
			entity.AudienceUser:   userPolicy,
			entity.AudienceSeller: sellerPolicy(sellerEmail),
		},
	}, nil
}

// Issue signs a token carrying the minimal claim for the audience.
func (s *jwtService) Issue(claim service.IdentityClaim, audience entity.Audience) (string, error) {
	if _, ok := s.policies[audience]; !ok {
		return "", errors.Errorf("unknown token audience: %s", audience)
	}

	now := s.now()
	claims := sessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Audience:  jwt.ClaimStrings{audience.String()},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	switch audience {
	case entity.AudienceUser:
		if claim.UserID == uuid.Nil {
			return "", errors.New("user token requires a user id")
		}
		claims.ID = claim.UserID.String()
	case entity.AudienceSeller:
		if claim.Email == "" {
			return "", errors.New("seller token requires an email")
		}
		claims.Email = claim.Email
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign session token")
	}

	return signed, nil
}

// Verify parses the token and runs the audience policy.
func (s *jwtService) Verify(tokenString string, audience entity.Audience) (*service.Claims, error) {
	policy, ok := s.policies[audience]
	if !ok {
		return nil, errors.Wrapf(service.ErrWrongAudience, "no policy for audience %s", audience)
	}

	parsed := &sessionClaims{}
	_, err := jwt.ParseWithClaims(tokenString, parsed, s.keyFunc,
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithAudience(audience.String()),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return nil, s.classify(tokenString, err)
	}

	claims, err := parsed.toDomain(audience)
	if err != nil {
		return nil, err
	}

	if err := policy(claims); err != nil {
		return nil, err
	}

	return claims, nil
}

// TTL returns how long issued tokens stay valid.
func (s *jwtService) TTL() time.Duration {
	return s.ttl
}

func (s *jwtService) keyFunc(token *jwt.Token) (any, error) {
	if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
		return nil, jwt.ErrSignatureInvalid
	}

	return s.secret, nil
}

// classify maps parser failures onto the domain sentinels. Expiry wins over every other failure,
// including a bad signature, so a stale token is always reported as expired.
func (s *jwtService) classify(tokenString string, err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return errors.WithStack(service.ErrTokenExpired)
	case errors.Is(err, jwt.ErrTokenSignatureInvalid) && s.expiredUnverified(tokenString):
		return errors.WithStack(service.ErrTokenExpired)
	case errors.Is(err, jwt.ErrTokenInvalidAudience):
		return errors.WithStack(service.ErrWrongAudience)
	default:
		return errors.WithStack(service.ErrTokenInvalid)
	}
}

func (s *jwtService) expiredUnverified(tokenString string) bool {
	claims := &sessionClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(tokenString, claims); err != nil {
		return false
	}

	return claims.ExpiresAt != nil && !s.now().Before(claims.ExpiresAt.Time)
}

func (c *sessionClaims) toDomain(audience entity.Audience) (*service.Claims, error) {
	claims := &service.Claims{
		IdentityClaim: service.IdentityClaim{Email: c.Email},
		Audience:      audience,
	}

	if c.ID != "" {
		userID, err := uuid.Parse(c.ID)
		if err != nil {
			return nil, errors.Wrap(service.ErrTokenInvalid, "malformed user id claim")
		}
		claims.UserID = userID
	}
	if c.IssuedAt != nil {
		claims.IssuedAt = c.IssuedAt.Time
	}
	if c.ExpiresAt != nil {
		claims.ExpiresAt = c.ExpiresAt.Time
	}

	return claims, nil
}

func userPolicy(claims *service.Claims) error {
	if claims.UserID == uuid.Nil {
		return errors.Wrap(service.ErrWrongAudience, "user token without user id")
	}

	return nil
}

func sellerPolicy(sellerEmail string) service.AudiencePolicy {
	return func(claims *service.Claims) error {
		if claims.Email != sellerEmail {
			return errors.Wrap(service.ErrWrongAudience, "seller email mismatch")
		}

		return nil
	}
}
