package memory

import (
	"context"
	"sync"

	"auto_accessories/internal/domain/entities"
	"auto_accessories/internal/usecase/interfaces"
)

type panelKey struct {
	sessionID string
	productID string
}

type InstallationPanelRepository struct {
	mu     sync.Mutex
	panels map[panelKey]entities.InstallationPanel
}

var _ interfaces.IInstallationPanelRepository = (*InstallationPanelRepository)(nil)

func NewInstallationPanelRepository() *InstallationPanelRepository {
	return &InstallationPanelRepository{panels: make(map[panelKey]entities.InstallationPanel)}
}

// Get returns a blank panel when none is stored.
func (r *InstallationPanelRepository) Get(_ context.Context, sessionID, productID string) (entities.InstallationPanel, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.panels[panelKey{sessionID, productID}]
	if !ok {
		return entities.InstallationPanel{SessionID: sessionID, ProductID: productID}, nil
	}
	return clonePanel(p), nil
}

func (r *InstallationPanelRepository) Save(_ context.Context, p entities.InstallationPanel) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.panels[panelKey{p.SessionID, p.ProductID}] = clonePanel(p)
	return nil
}

func (r *InstallationPanelRepository) Delete(_ context.Context, sessionID, productID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.panels, panelKey{sessionID, productID})
	return nil
}

func clonePanel(p entities.InstallationPanel) entities.InstallationPanel {
	if p.ManualVehicle != nil {
		v := *p.ManualVehicle
		p.ManualVehicle = &v
	}
	if p.Pending != nil {
		pc := *p.Pending
		if pc.Vehicle != nil {
			v := *pc.Vehicle
			pc.Vehicle = &v
		}
		if pc.Price != nil {
			price := *pc.Price
			pc.Price = &price
		}
		p.Pending = &pc
	}
	return p
}
