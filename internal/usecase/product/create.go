package product

import (
	"context"

	"github.com/agriconnect/marketplace-api/internal/audit"
	domain "github.com/agriconnect/marketplace-api/internal/domain/product"
	"github.com/agriconnect/marketplace-api/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CreateProductInput struct {
	Name           string
	Price          float64
	Category       string
	Description    string
	ImageURL       string
	Contact        string
	PaymentMethods []string
}

// ======================================================
// USE CASE
// ======================================================

type CreateProduct struct {
	repo  domain.Repository
	cache CatalogCache
	audit *audit.Dispatcher
}

func NewCreateProduct(
	repo domain.Repository,
	cache CatalogCache,
	audit *audit.Dispatcher,
) *CreateProduct {
	return &CreateProduct{
		repo:  repo,
		cache: cache,
		audit: audit,
	}
}

func (uc *CreateProduct) Execute(
	ctx context.Context,
	ownerID string,
	in CreateProductInput,
) (*models.Product, error) {

	p := &models.Product{
		Name:           in.Name,
		Price:          in.Price,
		Category:       in.Category,
		Description:    in.Description,
		ImageURL:       in.ImageURL,
		Contact:        in.Contact,
		PaymentMethods: in.PaymentMethods,
		OwnerID:        ownerID,
	}

	// Ownership comes from the verified token, never from the request body.
	if err := domain.Validate(p); err != nil {
		return nil, err
	}

	if err := uc.repo.Create(ctx, p); err != nil {
		return nil, err
	}

	uc.cache.Invalidate(ctx)

	uc.audit.Dispatch(audit.Event{
		UserID:   &ownerID,
		Action:   "product_created",
		Entity:   "product",
		EntityID: &p.ID,
		Metadata: map[string]any{"name": p.Name, "category": p.Category},
	})

	return p, nil
}
