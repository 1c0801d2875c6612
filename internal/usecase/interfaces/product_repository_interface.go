package interfaces

import (
	"auto_accessories/internal/domain/entities"
	"context"
)

// IProductRepository is the catalog read API plus the admin editor write path.
//
// GetByID returns the zero Product when the id is unknown.
type IProductRepository interface {
	GetByID(ctx context.Context, id string) (entities.Product, error)
	List(ctx context.Context, category string) ([]entities.Product, error)
	Upsert(ctx context.Context, p entities.Product) (entities.Product, error)
}
