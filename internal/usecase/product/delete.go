package product

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/agriconnect/marketplace-api/internal/audit"
	domain "github.com/agriconnect/marketplace-api/internal/domain/product"
	"github.com/agriconnect/marketplace-api/internal/httperr"
)

type DeleteProduct struct {
	repo  domain.Repository
	cache CatalogCache
	audit *audit.Dispatcher
}

func NewDeleteProduct(
	repo domain.Repository,
	cache CatalogCache,
	audit *audit.Dispatcher,
) *DeleteProduct {
	return &DeleteProduct{
		repo:  repo,
		cache: cache,
		audit: audit,
	}
}

func (uc *DeleteProduct) Execute(
	ctx context.Context,
	userID string,
	productID string,
) error {

	p, err := uc.repo.GetByID(ctx, productID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return httperr.ErrBusiness("product_not_found")
		}
		return err
	}

	if p.OwnerID != userID {
		return httperr.ErrBusiness("not_owner")
	}

	if err := uc.repo.Delete(ctx, productID); err != nil {
		return err
	}

	uc.cache.Invalidate(ctx)

	uc.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "product_deleted",
		Entity:   "product",
		EntityID: &productID,
	})

	return nil
}
