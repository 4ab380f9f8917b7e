package session

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"greencart/config"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeCookie(t *testing.T, env string, write func(p *CookiePolicy, c echo.Context)) *http.Cookie {
	t.Helper()

	cfg := &config.Config{}
	cfg.Env.Env = env

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	write(NewCookiePolicy(cfg), c)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)

	return cookies[0]
}

func TestCookiePolicy_IssueDevelopment(t *testing.T) {
	cookie := writeCookie(t, "development", func(p *CookiePolicy, c echo.Context) {
		p.Issue(c, UserCookie, "tok", 7*24*time.Hour)
	})

	assert.Equal(t, "token", cookie.Name)
	assert.Equal(t, "tok", cookie.Value)
	assert.True(t, cookie.HttpOnly)
	assert.False(t, cookie.Secure)
	assert.Equal(t, http.SameSiteStrictMode, cookie.SameSite)
	assert.Equal(t, 7*24*60*60, cookie.MaxAge)
	assert.Equal(t, "/", cookie.Path)
}

func TestCookiePolicy_IssueProduction(t *testing.T) {
	cookie := writeCookie(t, "production", func(p *CookiePolicy, c echo.Context) {
		p.Issue(c, SellerCookie, "tok", time.Hour)
	})

	assert.Equal(t, "sellerToken", cookie.Name)
	assert.True(t, cookie.Secure)
	assert.Equal(t, http.SameSiteNoneMode, cookie.SameSite)
}

func TestCookiePolicy_ClearUsesLaxOutsideProduction(t *testing.T) {
	cookie := writeCookie(t, "development", func(p *CookiePolicy, c echo.Context) {
		p.Clear(c, UserCookie)
	})

	assert.Equal(t, "", cookie.Value)
	assert.Equal(t, http.SameSiteLaxMode, cookie.SameSite)
	assert.Equal(t, -1, cookie.MaxAge)

	cookie = writeCookie(t, "production", func(p *CookiePolicy, c echo.Context) {
		p.Clear(c, UserCookie)
	})
	assert.Equal(t, http.SameSiteNoneMode, cookie.SameSite)
	assert.True(t, cookie.Secure)
}
