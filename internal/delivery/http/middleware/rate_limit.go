package middleware

import (
	"net/http"
	"time"

	"greencart/config"
	"greencart/internal/delivery/http/response"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"
)

const (
	defaultRateLimitRPS       = 5
	defaultRateLimitBurst     = 10
	defaultRateLimitExpiresIn = 3 * time.Minute
)

// NewCredentialRateLimiter throttles credential endpoints per client IP.
func NewCredentialRateLimiter(cfg *config.Config) echo.MiddlewareFunc {
	storeCfg := echomw.RateLimiterMemoryStoreConfig{
		Rate:      rate.Limit(defaultRateLimitRPS),
		Burst:     defaultRateLimitBurst,
		ExpiresIn: defaultRateLimitExpiresIn,
	}
	if rl := cfg.HTTP.RateLimit; rl != nil {
		if rl.RequestsPerSecond > 0 {
			storeCfg.Rate = rate.Limit(rl.RequestsPerSecond)
		}
		if rl.Burst > 0 {
			storeCfg.Burst = rl.Burst
		}
		if rl.ExpiresIn > 0 {
			storeCfg.ExpiresIn = rl.ExpiresIn
		}
	}

	return echomw.RateLimiterWithConfig(echomw.RateLimiterConfig{
		Store: echomw.NewRateLimiterMemoryStoreWithConfig(storeCfg),
		IdentifierExtractor: func(c echo.Context) (string, error) {
			return c.RealIP(), nil
		},
		ErrorHandler: func(c echo.Context, _ error) error {
			return response.Error(c, http.StatusForbidden, "Unable to identify client")
		},
		DenyHandler: func(c echo.Context, _ string, _ error) error {
			return response.TooManyRequests(c)
		},
	})
}
