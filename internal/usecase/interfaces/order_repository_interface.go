package interfaces

import (
	"auto_accessories/internal/domain/entities"
	"context"
)

// IOrderRepository abstracts DynamoDB persistence for Order.
//
// UpdateStatusByID returns the zero Order when no order matches.
type IOrderRepository interface {
	Create(ctx context.Context, o entities.Order) (entities.Order, error)
	GetByID(ctx context.Context, id string) (entities.Order, error)
	ListBySessionID(ctx context.Context, sessionID string) ([]entities.Order, error)
	UpdateStatusByID(ctx context.Context, id string, status entities.OrderStatus) (entities.Order, error)
}
