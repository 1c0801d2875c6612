package interfaces

import (
	"auto_accessories/internal/domain/entities"
	"context"
)

type IInstallationPanelRepository interface {
	Get(ctx context.Context, sessionID, productID string) (entities.InstallationPanel, error)
	Save(ctx context.Context, p entities.InstallationPanel) error
	Delete(ctx context.Context, sessionID, productID string) error
}
