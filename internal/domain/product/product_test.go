package product_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/agriconnect/marketplace-api/internal/domain/product"
	"github.com/agriconnect/marketplace-api/internal/models"
)

func validProduct() *models.Product {
	return &models.Product{
		Name:           "Fresh Tomatoes",
		Price:          12.5,
		Category:       domain.CategoryVegetables,
		PaymentMethods: models.PaymentMethods{domain.PaymentMoMo},
		OwnerID:        "owner-1",
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name       string
		mutate     func(p *models.Product)
		wantFields []string
	}{
		{
			name:   "valid product",
			mutate: func(_ *models.Product) {},
		},
		{
			name:       "empty name",
			mutate:     func(p *models.Product) { p.Name = "  " },
			wantFields: []string{"name"},
		},
		{
			name:       "negative price",
			mutate:     func(p *models.Product) { p.Price = -1 },
			wantFields: []string{"price"},
		},
		{
			name:       "unknown category",
			mutate:     func(p *models.Product) { p.Category = "Machinery" },
			wantFields: []string{"category"},
		},
		{
			name:       "unaccepted payment method",
			mutate:     func(p *models.Product) { p.PaymentMethods = models.PaymentMethods{"Bitcoin"} },
			wantFields: []string{"payment_methods"},
		},
		{
			name: "multiple violations",
			mutate: func(p *models.Product) {
				p.Name = ""
				p.Price = -5
				p.Category = ""
			},
			wantFields: []string{"name", "price", "category"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validProduct()
			tt.mutate(p)

			err := domain.Validate(p)
			if len(tt.wantFields) == 0 {
				assert.NoError(t, err)
				return
			}

			var ve *domain.ValidationError
			require.True(t, errors.As(err, &ve))

			var fields []string
			for _, v := range ve.Violations {
				fields = append(fields, v.Field)
			}
			assert.Equal(t, tt.wantFields, fields)
		})
	}
}

func TestValidateAppliesPaymentMethodDefault(t *testing.T) {
	p := validProduct()
	p.PaymentMethods = nil

	require.NoError(t, domain.Validate(p))
	assert.Equal(t, models.PaymentMethods{domain.PaymentMoMo}, p.PaymentMethods)
}

func TestEnumHelpers(t *testing.T) {
	assert.True(t, domain.IsValidCategory("Fruits"))
	assert.False(t, domain.IsValidCategory("fruits"))
	assert.True(t, domain.IsValidPaymentMethod("Visa Card"))
	assert.False(t, domain.IsValidPaymentMethod("Cash"))
}
