// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"

	deliverycontext "greencart/internal/delivery/context"
	"greencart/internal/delivery/http/response"
	"greencart/internal/delivery/http/session"
	domainerrors "greencart/internal/domain/errors"
	"greencart/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// UserHandler holds dependencies for user-related handlers.
type UserHandler struct {
	uc        usecase.UserUsecase
	addressUC usecase.AddressUsecase
	cookies   *session.CookiePolicy
	logger    *slog.Logger
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(uc usecase.UserUsecase, addressUC usecase.AddressUsecase, cookies *session.CookiePolicy, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		uc:        uc,
		addressUC: addressUC,
		cookies:   cookies,
		logger:    logger,
	}
}

type addAddressRequest struct {
	Address *AddressView `json:"address"`
}

// Register handles POST /api/user/register.
func (h *UserHandler) Register(c echo.Context) error {
	var input usecase.RegisterUserInput
	if err := c.Bind(&input); err != nil {
		return errors.WithStack(domainerrors.ErrValidationFailed)
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(domainerrors.ErrMissingDetails)
	}

	output, err := h.uc.Register(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	h.cookies.Issue(c, session.UserCookie, output.Token, output.TTL)

	return response.Success(c, echo.Map{
		"user": sessionUserView{Email: output.User.Email, Name: output.User.Name},
	})
}

// Login handles POST /api/user/login.
func (h *UserHandler) Login(c echo.Context) error {
	var input usecase.LoginInput
	if err := c.Bind(&input); err != nil {
		return errors.WithStack(domainerrors.ErrValidationFailed)
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(domainerrors.ErrMissingCredentials)
	}

	output, err := h.uc.Login(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	h.cookies.Issue(c, session.UserCookie, output.Token, output.TTL)

	return response.Success(c, echo.Map{
		"user": sessionUserView{Email: output.User.Email, Name: output.User.Name},
	})
}

// IsAuth handles GET /api/user/is-auth and returns the full user behind the session.
func (h *UserHandler) IsAuth(c echo.Context) error {
	userID, ok := deliverycontext.UserID(c)
	if !ok {
		return errors.WithStack(domainerrors.ErrNotAuthenticated)
	}

	user, err := h.uc.GetUser(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, echo.Map{"user": toUserView(user)})
}

// Logout handles GET /api/user/logout. Tokens are not revoked server-side; the cookie is cleared.
func (h *UserHandler) Logout(c echo.Context) error {
	h.cookies.Clear(c, session.UserCookie)

	return response.Message(c, "Logged Out")
}

// AddAddress handles POST /api/user/add-address.
func (h *UserHandler) AddAddress(c echo.Context) error {
	userID, ok := deliverycontext.UserID(c)
	if !ok {
		return errors.WithStack(domainerrors.ErrNotAuthenticated)
	}

	var req addAddressRequest
	if err := c.Bind(&req); err != nil {
		return errors.WithStack(domainerrors.ErrValidationFailed)
	}

	input := &usecase.AddAddressInput{UserID: userID}
	if req.Address != nil {
		input.Address = req.Address.toEntity()
	}

	addresses, err := h.addressUC.AddAddress(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, echo.Map{
		"message":   "Address added successfully",
		"addresses": toAddressViews(addresses),
	})
}

// GetAddresses handles GET /api/user/get-address.
func (h *UserHandler) GetAddresses(c echo.Context) error {
	userID, ok := deliverycontext.UserID(c)
	if !ok {
		return errors.WithStack(domainerrors.ErrNotAuthenticated)
	}

	addresses, err := h.addressUC.GetAddresses(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, echo.Map{"addresses": toAddressViews(addresses)})
}
