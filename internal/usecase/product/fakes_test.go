package product_test

import (
	"context"
	"sort"
	"strings"

	"gorm.io/gorm"

	"github.com/agriconnect/marketplace-api/internal/audit"
	domain "github.com/agriconnect/marketplace-api/internal/domain/product"
	"github.com/agriconnect/marketplace-api/internal/dto"
	"github.com/agriconnect/marketplace-api/internal/models"
)

// ------------------------------
// Repository fake
// ------------------------------

type fakeRepo struct {
	products map[string]*models.Product
}

func newFakeRepo(products ...*models.Product) *fakeRepo {
	r := &fakeRepo{products: make(map[string]*models.Product)}
	for _, p := range products {
		r.products[p.ID] = p
	}
	return r
}

func (r *fakeRepo) ListAll(_ context.Context, filter domain.ListFilter) ([]models.Product, error) {
	var out []models.Product
	for _, p := range r.products {
		if filter.Category != "" && p.Category != filter.Category {
			continue
		}
		if filter.Query != "" && !strings.Contains(strings.ToLower(p.Name), strings.ToLower(filter.Query)) {
			continue
		}
		out = append(out, *p)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (r *fakeRepo) ListByOwner(_ context.Context, ownerID string) ([]models.Product, error) {
	var out []models.Product
	for _, p := range r.products {
		if p.OwnerID == ownerID {
			out = append(out, *p)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (r *fakeRepo) GetByID(_ context.Context, id string) (*models.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *p
	return &cp, nil
}

func (r *fakeRepo) Create(_ context.Context, p *models.Product) error {
	if p.ID == "" {
		p.ID = "generated-" + p.Name
	}
	cp := *p
	r.products[p.ID] = &cp
	return nil
}

func (r *fakeRepo) Delete(_ context.Context, id string) error {
	delete(r.products, id)
	return nil
}

func (r *fakeRepo) Update(_ context.Context, p *models.Product) error {
	cp := *p
	r.products[p.ID] = &cp
	return nil
}

// ------------------------------
// Cache fake
// ------------------------------

type fakeCache struct {
	items         []dto.ProductListDTO
	warm          bool
	gets          int
	sets          int
	invalidations int
}

func (c *fakeCache) Get(_ context.Context) ([]dto.ProductListDTO, bool) {
	c.gets++
	return c.items, c.warm
}

func (c *fakeCache) Set(_ context.Context, items []dto.ProductListDTO) {
	c.sets++
	c.items = items
	c.warm = true
}

func (c *fakeCache) Invalidate(_ context.Context) {
	c.invalidations++
	c.items = nil
	c.warm = false
}

// ------------------------------
// Audit sink
// ------------------------------

type recordedEvents struct {
	events chan audit.Event
}

func newRecordedEvents() *recordedEvents {
	return &recordedEvents{events: make(chan audit.Event, 10)}
}

func (r *recordedEvents) Record(ev audit.Event) error {
	r.events <- ev
	return nil
}
