package handler

import (
	"greencart/internal/delivery/http/response"
	"greencart/internal/delivery/http/session"
	domainerrors "greencart/internal/domain/errors"
	"greencart/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// SellerHandler serves the seller session endpoints.
type SellerHandler struct {
	uc      usecase.SellerUsecase
	cookies *session.CookiePolicy
}

// NewSellerHandler is the constructor for SellerHandler.
func NewSellerHandler(uc usecase.SellerUsecase, cookies *session.CookiePolicy) *SellerHandler {
	return &SellerHandler{uc: uc, cookies: cookies}
}

// Login handles POST /api/seller/login.
func (h *SellerHandler) Login(c echo.Context) error {
	var input usecase.LoginInput
	if err := c.Bind(&input); err != nil {
		return errors.WithStack(domainerrors.ErrValidationFailed)
	}

	output, err := h.uc.Login(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	h.cookies.Issue(c, session.SellerCookie, output.Token, output.TTL)

	return response.Message(c, "Logged In")
}

// IsAuth handles GET /api/seller/is-auth. Reaching it means the seller gate passed.
func (h *SellerHandler) IsAuth(c echo.Context) error {
	return response.Success(c, nil)
}

// Logout handles GET /api/seller/logout.
func (h *SellerHandler) Logout(c echo.Context) error {
	h.cookies.Clear(c, session.SellerCookie)

	return response.Message(c, "Logged Out")
}
