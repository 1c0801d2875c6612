package request

import "auto_accessories/internal/domain/entities"

type AddToCartRequest struct {
	ProductID        string   `json:"product_id" binding:"required"`
	Quantity         *int     `json:"quantity"`
	HasInstallation  bool     `json:"has_installation"`
	InstallationCost *float64 `json:"installation_cost"`
}

// ResolveQuantity defaults an omitted quantity to one unit.
func (r AddToCartRequest) ResolveQuantity() int {
	if r.Quantity == nil {
		return 1
	}
	return *r.Quantity
}

// InstallationOption drops a cost sent without the installation flag.
func (r AddToCartRequest) InstallationOption() entities.InstallationOption {
	if !r.HasInstallation {
		return entities.InstallationOption{}
	}
	return entities.InstallationOption{HasInstallation: true, InstallationCost: r.InstallationCost}
}

type UpdateQuantityRequest struct {
	Quantity *int `json:"quantity" binding:"required"`
}
