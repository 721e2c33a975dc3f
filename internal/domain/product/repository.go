package product

import (
	"context"

	"github.com/agriconnect/marketplace-api/internal/models"
)

// ListFilter narrows the public catalog listing; zero value means everything.
type ListFilter struct {
	Category string
	Query    string
}

type Repository interface {
	// -------- Catalog --------
	ListAll(
		ctx context.Context,
		filter ListFilter,
	) ([]models.Product, error)

	ListByOwner(
		ctx context.Context,
		ownerID string,
	) ([]models.Product, error)

	// -------- Single listing --------
	GetByID(
		ctx context.Context,
		id string,
	) (*models.Product, error)

	Create(
		ctx context.Context,
		p *models.Product,
	) error

	Delete(
		ctx context.Context,
		id string,
	) error

	Update(
		ctx context.Context,
		p *models.Product,
	) error
}
