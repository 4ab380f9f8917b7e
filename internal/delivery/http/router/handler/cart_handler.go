package handler

import (
	deliverycontext "greencart/internal/delivery/context"
	"greencart/internal/delivery/http/response"
	"greencart/internal/domain/entity"
	domainerrors "greencart/internal/domain/errors"
	"greencart/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CartHandler stores the server-side cart backup.
type CartHandler struct {
	uc usecase.CartUsecase
}

// NewCartHandler is the constructor for CartHandler.
func NewCartHandler(uc usecase.CartUsecase) *CartHandler {
	return &CartHandler{uc: uc}
}

type updateCartRequest struct {
	CartItems map[string]int `json:"cartItems"`
}

// Update handles POST /api/cart/update with the full cart snapshot.
func (h *CartHandler) Update(c echo.Context) error {
	userID, ok := deliverycontext.UserID(c)
	if !ok {
		return errors.WithStack(domainerrors.ErrNotAuthenticated)
	}

	var req updateCartRequest
	if err := c.Bind(&req); err != nil {
		return errors.WithStack(domainerrors.ErrValidationFailed)
	}

	err := h.uc.UpdateCart(c.Request().Context(), &usecase.UpdateCartInput{
		UserID:    userID,
		CartItems: entity.Cart(req.CartItems),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Message(c, "Cart Updated")
}
