package repository

import (
	"context"

	"greencart/internal/domain/entity"

	"github.com/google/uuid"
)

// AddressRepository stores the append-only address book of each user.
type AddressRepository interface {
	// AppendAddress persists a new address at the end of the owner's list.
	AppendAddress(ctx context.Context, address *entity.Address) error

	// FindAddressesByUser returns the owner's addresses in insertion order.
	FindAddressesByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Address, error)
}
