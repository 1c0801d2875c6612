package memory

import (
	"context"
	"sort"
	"sync"

	"auto_accessories/internal/domain/entities"
	"auto_accessories/internal/usecase/interfaces"
)

type PaymentRepository struct {
	mu       sync.Mutex
	payments map[string]entities.Payment
}

var _ interfaces.IPaymentRepository = (*PaymentRepository)(nil)

func NewPaymentRepository() *PaymentRepository {
	return &PaymentRepository{payments: make(map[string]entities.Payment)}
}

func (r *PaymentRepository) Create(_ context.Context, p entities.Payment) (entities.Payment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.payments[p.ID]; ok {
		return entities.Payment{}, ErrAlreadyExists
	}
	r.payments[p.ID] = p
	return p, nil
}

func (r *PaymentRepository) GetByID(_ context.Context, id string) (entities.Payment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.payments[id], nil
}

// ListByOrderID returns the newest payments first.
func (r *PaymentRepository) ListByOrderID(_ context.Context, orderID string) ([]entities.Payment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []entities.Payment{}
	for _, p := range r.payments {
		if p.OrderID == orderID {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out, nil
}
