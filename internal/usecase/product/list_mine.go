package product

import (
	"context"

	domain "github.com/agriconnect/marketplace-api/internal/domain/product"
	"github.com/agriconnect/marketplace-api/internal/models"
)

type ListMyProducts struct {
	repo domain.Repository
}

func NewListMyProducts(repo domain.Repository) *ListMyProducts {
	return &ListMyProducts{repo: repo}
}

func (uc *ListMyProducts) Execute(
	ctx context.Context,
	ownerID string,
) ([]models.Product, error) {
	products, err := uc.repo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if products == nil {
		// Find leaves the slice nil on zero rows; the endpoint contract is [].
		products = make([]models.Product, 0)
	}
	return products, nil
}
