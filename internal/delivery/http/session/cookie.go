// Package session writes and clears the session cookies of both trust domains.
package session

import (
	"net/http"
	"time"

	"greencart/config"

	"github.com/labstack/echo/v4"
)

// Cookie names of the two trust domains.
const (
	UserCookie   = "token"
	SellerCookie = "sellerToken"
)

// CookiePolicy applies the environment-dependent cookie attributes.
// Production cookies are Secure and SameSite=None so the storefront can call the API cross-site.
// Development cookies are Strict when issued and Lax when cleared.
type CookiePolicy struct {
	production bool
}

// NewCookiePolicy builds the policy for the configured environment.
func NewCookiePolicy(cfg *config.Config) *CookiePolicy {
	return &CookiePolicy{production: cfg.IsProduction()}
}

// Issue sets an HttpOnly session cookie that lives as long as the token.
func (p *CookiePolicy) Issue(c echo.Context, name, token string, ttl time.Duration) {
	sameSite := http.SameSiteStrictMode
	if p.production {
		sameSite = http.SameSiteNoneMode
	}

	c.SetCookie(&http.Cookie{
		Name:     name,
		Value:    token,
		Path:     "/",
		MaxAge:   int(ttl / time.Second),
		Expires:  time.Now().Add(ttl),
		HttpOnly: true,
		Secure:   p.production,
		SameSite: sameSite,
	})
}

// Clear expires the session cookie on the client.
func (p *CookiePolicy) Clear(c echo.Context, name string) {
	sameSite := http.SameSiteLaxMode
	if p.production {
		sameSite = http.SameSiteNoneMode
	}

	c.SetCookie(&http.Cookie{
		Name:     name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
		Secure:   p.production,
		SameSite: sameSite,
	})
}
