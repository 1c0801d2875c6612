package memory

import (
	"context"
	"sort"
	"sync"

	"auto_accessories/internal/domain/entities"
	"auto_accessories/internal/usecase/interfaces"
)

// ProductRepository is an in-memory catalog used for local development and tests.
type ProductRepository struct {
	mu       sync.RWMutex
	products map[string]entities.Product
}

var _ interfaces.IProductRepository = (*ProductRepository)(nil)

// NewProductRepository constructs a catalog holding seed.
func NewProductRepository(seed []entities.Product) *ProductRepository {
	r := &ProductRepository{products: make(map[string]entities.Product, len(seed))}
	for _, p := range seed {
		r.products[p.ID] = cloneProduct(p)
	}
	return r
}

func (r *ProductRepository) GetByID(_ context.Context, id string) (entities.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.products[id]
	if !ok {
		return entities.Product{}, nil
	}
	return cloneProduct(p), nil
}

// List returns products ordered by id; an empty category matches all.
func (r *ProductRepository) List(_ context.Context, category string) ([]entities.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]entities.Product, 0, len(r.products))
	for _, p := range r.products {
		if category != "" && p.Category != category {
			continue
		}
		out = append(out, cloneProduct(p))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *ProductRepository) Upsert(_ context.Context, p entities.Product) (entities.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.products[p.ID] = cloneProduct(p)
	return cloneProduct(p), nil
}

func cloneProduct(p entities.Product) entities.Product {
	if p.Compatibility != nil {
		p.Compatibility = append([]entities.CompatibilityEntry(nil), p.Compatibility...)
	}
	p.DiscountPrice = cloneFloat(p.DiscountPrice)
	if p.InstallationOverride != nil {
		o := *p.InstallationOverride
		o.FlatRate = cloneFloat(o.FlatRate)
		p.InstallationOverride = &o
	}
	return p
}

func cloneFloat(v *float64) *float64 {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}
