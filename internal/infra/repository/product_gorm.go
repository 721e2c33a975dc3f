package repository

import (
	"context"
	"strings"

	"gorm.io/gorm"

	domain "github.com/agriconnect/marketplace-api/internal/domain/product"
	"github.com/agriconnect/marketplace-api/internal/models"
)

type ProductGormRepository struct {
	db *gorm.DB
}

func NewProductGormRepository(db *gorm.DB) *ProductGormRepository {
	return &ProductGormRepository{db: db}
}

// --------------------------------------------------
// Catalog
// --------------------------------------------------

func (r *ProductGormRepository) ListAll(
	ctx context.Context,
	filter domain.ListFilter,
) ([]models.Product, error) {

	q := r.db.WithContext(ctx).Preload("Owner")

	if filter.Category != "" {
		q = q.Where("category = ?", filter.Category)
	}

	if query := strings.ToLower(strings.TrimSpace(filter.Query)); query != "" {
		like := "%" + query + "%"
		q = q.Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", like, like)
	}

	var products []models.Product
	if err := q.
		Order("created_at DESC").
		Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (r *ProductGormRepository) ListByOwner(
	ctx context.Context,
	ownerID string,
) ([]models.Product, error) {

	var products []models.Product
	if err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// --------------------------------------------------
// Single listing
// --------------------------------------------------

func (r *ProductGormRepository) GetByID(
	ctx context.Context,
	id string,
) (*models.Product, error) {

	var product models.Product
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&product).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *ProductGormRepository) Create(
	ctx context.Context,
	p *models.Product,
) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *ProductGormRepository) Delete(
	ctx context.Context,
	id string,
) error {
	return r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&models.Product{}).Error
}

func (r *ProductGormRepository) Update(
	ctx context.Context,
	p *models.Product,
) error {
	return r.db.WithContext(ctx).Save(p).Error
}
