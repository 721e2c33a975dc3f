package dto

import (
	"time"

	"github.com/agriconnect/marketplace-api/internal/models"
)

type ProductOwnerDTO struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type ProductListDTO struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Price          float64         `json:"price"`
	Category       string          `json:"category"`
	Description    string          `json:"description"`
	ImageURL       string          `json:"image_url"`
	Contact        string          `json:"contact"`
	PaymentMethods []string        `json:"payment_methods"`
	Owner          ProductOwnerDTO `json:"owner"`
	CreatedAt      time.Time       `json:"created_at"`
}

func FromProduct(p models.Product) ProductListDTO {
	return ProductListDTO{
		ID:             p.ID,
		Name:           p.Name,
		Price:          p.Price,
		Category:       p.Category,
		Description:    p.Description,
		ImageURL:       p.ImageURL,
		Contact:        p.Contact,
		PaymentMethods: p.PaymentMethods,
		Owner: ProductOwnerDTO{
			Name:  p.Owner.Name,
			Email: p.Owner.Email,
		},
		CreatedAt: p.CreatedAt,
	}
}
