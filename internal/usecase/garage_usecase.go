package usecase

import (
	"auto_accessories/internal/domain/entities"
	"auto_accessories/internal/usecase/interfaces"
	"context"
	"strings"

	"go.uber.org/zap"
)

// IGarageUseCase holds the single active vehicle of a session, shared by every
// product page.
type IGarageUseCase interface {
	GetSelection(ctx context.Context, sessionID string) (*entities.VehicleSelection, error)
	SelectCar(ctx context.Context, sessionID, modelName, segment string) (entities.VehicleSelection, error)
	ClearGarage(ctx context.Context, sessionID string) error
}

type GarageUseCase struct {
	repo interfaces.IGarageRepository
}

var _ IGarageUseCase = (*GarageUseCase)(nil)

func NewGarageUseCase(repo interfaces.IGarageRepository) *GarageUseCase {
	return &GarageUseCase{repo: repo}
}

// GetSelection returns nil when the session has no vehicle.
func (u *GarageUseCase) GetSelection(ctx context.Context, sessionID string) (*entities.VehicleSelection, error) {
	sessionID, err := normalizeSessionID(sessionID)
	if err != nil {
		return nil, err
	}
	v, err := u.repo.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if v == nil || !v.IsComplete() {
		return nil, nil
	}
	return v, nil
}

// SelectCar replaces the selection as a whole. The model name is not checked
// against the vehicle catalog so manual entries are accepted.
func (u *GarageUseCase) SelectCar(ctx context.Context, sessionID, modelName, segment string) (entities.VehicleSelection, error) {
	sessionID, err := normalizeSessionID(sessionID)
	if err != nil {
		return entities.VehicleSelection{}, err
	}
	v, err := parseVehicle(modelName, segment)
	if err != nil {
		return entities.VehicleSelection{}, err
	}
	if err := u.repo.Save(ctx, sessionID, v); err != nil {
		return entities.VehicleSelection{}, err
	}
	zap.L().Info("garage.select",
		zap.String("session_id", sessionID),
		zap.String("model_name", v.ModelName),
		zap.String("segment", string(v.Segment)),
	)
	return v, nil
}

func (u *GarageUseCase) ClearGarage(ctx context.Context, sessionID string) error {
	sessionID, err := normalizeSessionID(sessionID)
	if err != nil {
		return err
	}
	if err := u.repo.Delete(ctx, sessionID); err != nil {
		return err
	}
	zap.L().Info("garage.clear", zap.String("session_id", sessionID))
	return nil
}

func parseVehicle(modelName, segment string) (entities.VehicleSelection, error) {
	if strings.TrimSpace(modelName) == "" {
		return entities.VehicleSelection{}, entities.ErrInvalidVehicleName
	}
	seg, ok := entities.ParseVehicleSegment(segment)
	if !ok {
		return entities.VehicleSelection{}, entities.ErrInvalidVehicleSegment
	}
	return entities.NewVehicleSelection(modelName, seg)
}
