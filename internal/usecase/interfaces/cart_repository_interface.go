package interfaces

import (
	"auto_accessories/internal/domain/entities"
	"context"
)

// ICartRepository persists the full line list of a session cart.
//
// Get never fails on unreadable stored data: it degrades to an empty cart.
type ICartRepository interface {
	Get(ctx context.Context, sessionID string) (entities.Cart, error)
	Save(ctx context.Context, c entities.Cart) error
}
