package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"greencart/config"
	"greencart/internal/delivery/http/session"
	"greencart/internal/domain/entity"
	domainerrors "greencart/internal/domain/errors"
	"greencart/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSellerUsecase struct {
	output *usecase.SessionOutput
	err    error
	input  *usecase.LoginInput
}

func (s *stubSellerUsecase) Login(_ context.Context, input *usecase.LoginInput) (*usecase.SessionOutput, error) {
	s.input = input

	return s.output, s.err
}

func TestToUserView_HidesPasswordAndCopiesCart(t *testing.T) {
	user := &entity.User{
		ID:           uuid.New(),
		Name:         "Alice",
		Email:        "alice@example.com",
		PasswordHash: "$2a$10$secret",
		CartItems:    entity.Cart{"p1": 2},
		Addresses:    []*entity.Address{{ID: uuid.New(), City: "Oxford"}},
	}

	view := toUserView(user)
	view.CartItems["p1"] = 9

	raw, err := json.Marshal(view)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "secret")
	assert.Equal(t, 2, user.CartItems["p1"])
	require.Len(t, view.Addresses, 1)
	assert.Equal(t, "Oxford", view.Addresses[0].City)
}

func TestToUserView_EmptyCollections(t *testing.T) {
	view := toUserView(&entity.User{ID: uuid.New()})

	raw, err := json.Marshal(view)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"cartItems":{}`)
	assert.Contains(t, string(raw), `"addresses":[]`)
}

func TestSellerHandler_Login(t *testing.T) {
	cfg := &config.Config{}
	cfg.Env.Env = config.EnvProduction
	uc := &stubSellerUsecase{output: &usecase.SessionOutput{Token: "seller-token", TTL: time.Hour}}
	h := NewSellerHandler(uc, session.NewCookiePolicy(cfg))

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/seller/login",
		strings.NewReader(`{"email":"seller@example.com","password":"pw"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	require.NoError(t, h.Login(e.NewContext(req, rec)))

	assert.Equal(t, "seller@example.com", uc.input.Email)
	assert.JSONEq(t, `{"success":true,"message":"Logged In"}`, rec.Body.String())

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, session.SellerCookie, cookies[0].Name)
	assert.True(t, cookies[0].Secure)
	assert.Equal(t, http.SameSiteNoneMode, cookies[0].SameSite)
}

func TestSellerHandler_LoginFailureSetsNoCookie(t *testing.T) {
	uc := &stubSellerUsecase{err: errors.WithStack(domainerrors.ErrInvalidSellerCredentials)}
	h := NewSellerHandler(uc, session.NewCookiePolicy(&config.Config{}))

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/seller/login", strings.NewReader(`{}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	err := h.Login(e.NewContext(req, rec))

	assert.True(t, errors.Is(err, domainerrors.ErrInvalidSellerCredentials))
	assert.Empty(t, rec.Result().Cookies())
}
