package memory

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"auto_accessories/internal/domain/entities"
	"auto_accessories/internal/usecase/interfaces"
)

var ErrAlreadyExists = errors.New("item already exists")

type OrderRepository struct {
	mu     sync.Mutex
	orders map[string]entities.Order
}

var _ interfaces.IOrderRepository = (*OrderRepository)(nil)

func NewOrderRepository() *OrderRepository {
	return &OrderRepository{orders: make(map[string]entities.Order)}
}

func (r *OrderRepository) Create(_ context.Context, o entities.Order) (entities.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.orders[o.ID]; ok {
		return entities.Order{}, ErrAlreadyExists
	}
	r.orders[o.ID] = cloneOrder(o)
	return cloneOrder(o), nil
}

func (r *OrderRepository) GetByID(_ context.Context, id string) (entities.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	o, ok := r.orders[id]
	if !ok {
		return entities.Order{}, nil
	}
	return cloneOrder(o), nil
}

// ListBySessionID returns the newest orders first.
func (r *OrderRepository) ListBySessionID(_ context.Context, sessionID string) ([]entities.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []entities.Order{}
	for _, o := range r.orders {
		if o.SessionID == sessionID {
			out = append(out, cloneOrder(o))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *OrderRepository) UpdateStatusByID(_ context.Context, id string, status entities.OrderStatus) (entities.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	o, ok := r.orders[id]
	if !ok {
		return entities.Order{}, nil
	}
	o.Status = status
	o.UpdatedAt = time.Now().UTC()
	r.orders[id] = o
	return cloneOrder(o), nil
}

func cloneOrder(o entities.Order) entities.Order {
	items := make([]entities.OrderLine, len(o.Items))
	for i, it := range o.Items {
		it.InstallationCost = cloneFloat(it.InstallationCost)
		items[i] = it
	}
	o.Items = items
	return o
}
