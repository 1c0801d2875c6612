package memory

import (
	"context"
	"sync"

	"auto_accessories/internal/domain/entities"
	"auto_accessories/internal/usecase/interfaces"
)

type CartRepository struct {
	mu    sync.Mutex
	carts map[string]entities.Cart
}

var _ interfaces.ICartRepository = (*CartRepository)(nil)

func NewCartRepository() *CartRepository {
	return &CartRepository{carts: make(map[string]entities.Cart)}
}

// Get returns an empty cart for unknown sessions.
func (r *CartRepository) Get(_ context.Context, sessionID string) (entities.Cart, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.carts[sessionID]
	if !ok {
		return entities.Cart{SessionID: sessionID, Items: []entities.CartLineItem{}}, nil
	}
	return cloneCart(c), nil
}

func (r *CartRepository) Save(_ context.Context, c entities.Cart) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.carts[c.SessionID] = cloneCart(c)
	return nil
}

func cloneCart(c entities.Cart) entities.Cart {
	items := make([]entities.CartLineItem, len(c.Items))
	for i, it := range c.Items {
		it.OriginalPrice = cloneFloat(it.OriginalPrice)
		it.InstallationCost = cloneFloat(it.InstallationCost)
		items[i] = it
	}
	c.Items = items
	return c
}
