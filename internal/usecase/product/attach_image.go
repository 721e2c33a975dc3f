package product

import (
	"context"
	"errors"
	"io"

	"gorm.io/gorm"

	"github.com/agriconnect/marketplace-api/internal/audit"
	domain "github.com/agriconnect/marketplace-api/internal/domain/product"
	"github.com/agriconnect/marketplace-api/internal/httperr"
	"github.com/agriconnect/marketplace-api/internal/models"
	"github.com/agriconnect/marketplace-api/internal/storage"
)

type AttachProductImage struct {
	repo     domain.Repository
	cache    CatalogCache
	uploader storage.Uploader
	audit    *audit.Dispatcher
}

func NewAttachProductImage(
	repo domain.Repository,
	cache CatalogCache,
	uploader storage.Uploader,
	audit *audit.Dispatcher,
) *AttachProductImage {
	return &AttachProductImage{
		repo:     repo,
		cache:    cache,
		uploader: uploader,
		audit:    audit,
	}
}

func (uc *AttachProductImage) Execute(
	ctx context.Context,
	userID string,
	productID string,
	image io.Reader,
) (*models.Product, error) {

	p, err := uc.repo.GetByID(ctx, productID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness("product_not_found")
		}
		return nil, err
	}

	if p.OwnerID != userID {
		return nil, httperr.ErrBusiness("not_owner")
	}

	normalized, err := storage.NormalizeImage(image)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_image")
	}

	url, err := uc.uploader.Upload(
		ctx,
		"products/"+productID+".webp",
		normalized,
		"image/webp",
	)
	if err != nil {
		return nil, err
	}

	p.ImageURL = url
	if err := uc.repo.Update(ctx, p); err != nil {
		return nil, err
	}

	uc.cache.Invalidate(ctx)

	uc.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "product_image_attached",
		Entity:   "product",
		EntityID: &productID,
	})

	return p, nil
}
