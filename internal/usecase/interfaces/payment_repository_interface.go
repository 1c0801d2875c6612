package interfaces

import (
	"auto_accessories/internal/domain/entities"
	"context"
)

// IPaymentRepository abstracts DynamoDB persistence for Payment.
type IPaymentRepository interface {
	Create(ctx context.Context, p entities.Payment) (entities.Payment, error)
	GetByID(ctx context.Context, id string) (entities.Payment, error)
	ListByOrderID(ctx context.Context, orderID string) ([]entities.Payment, error)
}
