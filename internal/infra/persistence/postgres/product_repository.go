package postgres

import (
	"context"

	"greencart/internal/domain/entity"
	"greencart/internal/domain/repository"
	"greencart/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type productRepository struct {
	db *gorm.DB
}

// NewProductRepository is the constructor for the read-only catalog view.
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{db: db}
}

// ListProducts returns every catalog product, newest first.
func (repo *productRepository) ListProducts(ctx context.Context) ([]entity.Product, error) {
	var productModels []model.ProductModel
	if err := repo.db.WithContext(ctx).Order("created_at DESC").Find(&productModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	products := make([]entity.Product, 0, len(productModels))
	for i := range productModels {
		p := &productModels[i]
		products = append(products, entity.Product{
			ID:          p.ID,
			Name:        p.Name,
			Description: []string(p.Description),
			Category:    p.Category,
			Price:       p.Price,
			OfferPrice:  p.OfferPrice,
			Images:      []string(p.Images),
			InStock:     p.InStock,
			CreatedAt:   p.CreatedAt,
		})
	}

	return products, nil
}
