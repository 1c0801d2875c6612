package interfaces

import (
	"auto_accessories/internal/domain/entities"
	"context"
)

// IGarageRepository stores the session vehicle as one atomic record.
type IGarageRepository interface {
	Get(ctx context.Context, sessionID string) (*entities.VehicleSelection, error)
	Save(ctx context.Context, sessionID string, v entities.VehicleSelection) error
	Delete(ctx context.Context, sessionID string) error
}
