package impl

import (
	"context"

	"greencart/internal/domain/entity"
	"greencart/internal/domain/repository"
	"greencart/internal/usecase"

	"github.com/pkg/errors"
)

type productService struct {
	productRepo repository.ProductRepository
}

// NewProductService is the constructor for productService.
func NewProductService(productRepo repository.ProductRepository) usecase.ProductUsecase {
	return &productService{productRepo: productRepo}
}

func (srv *productService) ListProducts(ctx context.Context) ([]entity.Product, error) {
	products, err := srv.productRepo.ListProducts(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}
	if products == nil {
		products = []entity.Product{}
	}

	return products, nil
}
