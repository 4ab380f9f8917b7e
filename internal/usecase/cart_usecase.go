package usecase

import (
	"context"

	"greencart/internal/domain/entity"

	"github.com/google/uuid"
)

// UpdateCartInput replaces the stored cart of UserID with CartItems.
type UpdateCartInput struct {
	UserID    uuid.UUID
	CartItems entity.Cart
}

// CartUsecase keeps the server-side backup of the client cart.
type CartUsecase interface {
	UpdateCart(ctx context.Context, input *UpdateCartInput) error
}
