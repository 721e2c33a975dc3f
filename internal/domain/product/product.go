package product

import (
	"fmt"
	"strings"

	"github.com/agriconnect/marketplace-api/internal/models"
)

// ===============================
// Categories
// ===============================

const (
	CategoryFruits     = "Fruits"
	CategoryVegetables = "Vegetables"
	CategoryGrains     = "Grains"
	CategoryLivestock  = "Livestock"
	CategoryEquipment  = "Equipment"
	CategoryOther      = "Other"
)

var Categories = []string{
	CategoryFruits,
	CategoryVegetables,
	CategoryGrains,
	CategoryLivestock,
	CategoryEquipment,
	CategoryOther,
}

func IsValidCategory(category string) bool {
	for _, c := range Categories {
		if c == category {
			return true
		}
	}
	return false
}

// ===============================
// Payment methods
// ===============================

const (
	PaymentVisa = "Visa Card"
	PaymentMoMo = "Mobile Money (MoMo)"
)

var PaymentMethodOptions = []string{PaymentVisa, PaymentMoMo}

func IsValidPaymentMethod(method string) bool {
	for _, m := range PaymentMethodOptions {
		if m == method {
			return true
		}
	}
	return false
}

func DefaultPaymentMethods() models.PaymentMethods {
	return models.PaymentMethods{PaymentMoMo}
}

// ===============================
// Validation
// ===============================

type Violation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type ValidationError struct {
	Violations []Violation `json:"violations"`
}

func (e *ValidationError) Error() string {
	fields := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		fields = append(fields, v.Field)
	}
	return "invalid product fields: " + strings.Join(fields, ", ")
}

// Validate checks a listing before persistence. The payment-method default is
// applied here so an absent list never fails validation.
func Validate(p *models.Product) error {
	var violations []Violation

	if strings.TrimSpace(p.Name) == "" {
		violations = append(violations, Violation{
			Field:   "name",
			Message: "Product name is required",
		})
	}

	if p.Price < 0 {
		violations = append(violations, Violation{
			Field:   "price",
			Message: "Price must be zero or greater",
		})
	}

	if !IsValidCategory(p.Category) {
		violations = append(violations, Violation{
			Field:   "category",
			Message: fmt.Sprintf("Category must be one of: %s", strings.Join(Categories, ", ")),
		})
	}

	if len(p.PaymentMethods) == 0 {
		p.PaymentMethods = DefaultPaymentMethods()
	}
	for _, m := range p.PaymentMethods {
		if !IsValidPaymentMethod(m) {
			violations = append(violations, Violation{
				Field:   "payment_methods",
				Message: fmt.Sprintf("%q is not an accepted payment method", m),
			})
		}
	}

	if len(violations) > 0 {
		return &ValidationError{Violations: violations}
	}
	return nil
}
