package request

import (
	"strings"

	"auto_accessories/internal/domain/entities"
)

type CompatibilityRequest struct {
	Make  string `json:"make"`
	Model string `json:"model" binding:"required"`
	Years string `json:"years"`
}

type InstallationOverrideRequest struct {
	IsAvailable bool     `json:"is_available"`
	FlatRate    *float64 `json:"flat_rate"`
}

// UpsertProductRequest is the admin editor payload. The product id comes from the path.
type UpsertProductRequest struct {
	Name                 string                       `json:"name" binding:"required"`
	Slug                 string                       `json:"slug"`
	Image                string                       `json:"image"`
	Category             string                       `json:"category"`
	Price                float64                      `json:"price" binding:"required"`
	DiscountPrice        *float64                     `json:"discount_price"`
	Stock                int                          `json:"stock"`
	Compatibility        []CompatibilityRequest       `json:"compatibility" binding:"omitempty,dive"`
	IsUniversal          bool                         `json:"is_universal"`
	InstallationOverride *InstallationOverrideRequest `json:"installation_override"`
}

func (r UpsertProductRequest) ToEntity(id string) entities.Product {
	p := entities.Product{
		ID:            strings.TrimSpace(id),
		Slug:          strings.TrimSpace(r.Slug),
		Name:          r.Name,
		Image:         strings.TrimSpace(r.Image),
		Category:      r.Category,
		Price:         r.Price,
		DiscountPrice: r.DiscountPrice,
		Stock:         r.Stock,
		IsUniversal:   r.IsUniversal,
	}
	for _, c := range r.Compatibility {
		p.Compatibility = append(p.Compatibility, entities.CompatibilityEntry{
			Make:  strings.TrimSpace(c.Make),
			Model: strings.TrimSpace(c.Model),
			Years: strings.TrimSpace(c.Years),
		})
	}
	if o := r.InstallationOverride; o != nil {
		p.InstallationOverride = &entities.InstallationOverride{IsAvailable: o.IsAvailable, FlatRate: o.FlatRate}
	}
	return p
}
