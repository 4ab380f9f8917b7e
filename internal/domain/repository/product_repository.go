package repository

import (
	"context"

	"greencart/internal/domain/entity"
)

// ProductRepository is a read-only view of the external product catalog.
type ProductRepository interface {
	// ListProducts returns the full catalog, newest first.
	ListProducts(ctx context.Context) ([]entity.Product, error)
}
