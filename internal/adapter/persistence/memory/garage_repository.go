package memory

import (
	"context"
	"sync"

	"auto_accessories/internal/domain/entities"
	"auto_accessories/internal/usecase/interfaces"
)

type GarageRepository struct {
	mu       sync.Mutex
	vehicles map[string]entities.VehicleSelection
}

var _ interfaces.IGarageRepository = (*GarageRepository)(nil)

func NewGarageRepository() *GarageRepository {
	return &GarageRepository{vehicles: make(map[string]entities.VehicleSelection)}
}

func (r *GarageRepository) Get(_ context.Context, sessionID string) (*entities.VehicleSelection, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	v, ok := r.vehicles[sessionID]
	if !ok {
		return nil, nil
	}
	return &v, nil
}

func (r *GarageRepository) Save(_ context.Context, sessionID string, v entities.VehicleSelection) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.vehicles[sessionID] = v
	return nil
}

func (r *GarageRepository) Delete(_ context.Context, sessionID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.vehicles, sessionID)
	return nil
}
