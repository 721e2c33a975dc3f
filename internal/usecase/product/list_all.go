package product

import (
	"context"

	domain "github.com/agriconnect/marketplace-api/internal/domain/product"
	"github.com/agriconnect/marketplace-api/internal/dto"
)

// CatalogCache is satisfied by cache.Catalog; a nil-safe no-op is fine in tests.
type CatalogCache interface {
	Get(ctx context.Context) ([]dto.ProductListDTO, bool)
	Set(ctx context.Context, items []dto.ProductListDTO)
	Invalidate(ctx context.Context)
}

type ListAllProducts struct {
	repo  domain.Repository
	cache CatalogCache
}

func NewListAllProducts(
	repo domain.Repository,
	cache CatalogCache,
) *ListAllProducts {
	return &ListAllProducts{
		repo:  repo,
		cache: cache,
	}
}

func (uc *ListAllProducts) Execute(
	ctx context.Context,
	filter domain.ListFilter,
) ([]dto.ProductListDTO, error) {

	cacheable := filter == (domain.ListFilter{})

	if cacheable {
		if items, ok := uc.cache.Get(ctx); ok {
			return items, nil
		}
	}

	products, err := uc.repo.ListAll(ctx, filter)
	if err != nil {
		return nil, err
	}

	items := make([]dto.ProductListDTO, 0, len(products))
	for _, p := range products {
		items = append(items, dto.FromProduct(p))
	}

	if cacheable {
		uc.cache.Set(ctx, items)
	}

	return items, nil
}
