package usecase

import (
	"context"

	"greencart/internal/domain/entity"

	"github.com/google/uuid"
)

// AddAddressInput appends Address to the address book of UserID.
type AddAddressInput struct {
	UserID  uuid.UUID
	Address *entity.Address
}

// AddressUsecase manages the append-only address book of a user.
type AddressUsecase interface {
	AddAddress(ctx context.Context, input *AddAddressInput) ([]*entity.Address, error)
	GetAddresses(ctx context.Context, userID uuid.UUID) ([]*entity.Address, error)
}
