package usecase

import (
	"context"

	"greencart/internal/domain/entity"
)

// ProductUsecase serves the read-only catalog feed.
type ProductUsecase interface {
	ListProducts(ctx context.Context) ([]entity.Product, error)
}
