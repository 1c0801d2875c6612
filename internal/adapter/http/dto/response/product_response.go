package response

import (
	"auto_accessories/internal/domain/entities"
	"time"
)

type CompatibilityResponse struct {
	Make  string `json:"make"`
	Model string `json:"model"`
	Years string `json:"years,omitempty"`
}

type InstallationOverrideResponse struct {
	IsAvailable bool     `json:"is_available"`
	FlatRate    *float64 `json:"flat_rate,omitempty"`
}

// ProductResponse carries the raw prices for the editor and the effective
// price pair shown on the storefront.
type ProductResponse struct {
	ID                   string                        `json:"id"`
	Slug                 string                        `json:"slug"`
	Name                 string                        `json:"name"`
	Image                string                        `json:"image"`
	Category             string                        `json:"category"`
	Price                float64                       `json:"price"`
	DiscountPrice        *float64                      `json:"discount_price,omitempty"`
	EffectivePrice       float64                       `json:"effective_price"`
	OriginalPrice        *float64                      `json:"original_price,omitempty"`
	Stock                int                           `json:"stock"`
	InStock              bool                          `json:"in_stock"`
	IsUniversal          bool                          `json:"is_universal"`
	Compatibility        []CompatibilityResponse       `json:"compatibility"`
	InstallationOverride *InstallationOverrideResponse `json:"installation_override,omitempty"`
	CreatedAt            time.Time                     `json:"created_at"`
	UpdatedAt            time.Time                     `json:"updated_at"`
}

func FromProduct(p entities.Product) ProductResponse {
	effective, original := p.EffectivePrice()
	out := ProductResponse{
		ID:             p.ID,
		Slug:           p.Slug,
		Name:           p.Name,
		Image:          p.Image,
		Category:       p.Category,
		Price:          p.Price,
		DiscountPrice:  p.DiscountPrice,
		EffectivePrice: effective,
		OriginalPrice:  original,
		Stock:          p.Stock,
		InStock:        p.InStock(),
		IsUniversal:    p.IsUniversal,
		Compatibility:  make([]CompatibilityResponse, 0, len(p.Compatibility)),
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
	for _, c := range p.Compatibility {
		out.Compatibility = append(out.Compatibility, CompatibilityResponse{Make: c.Make, Model: c.Model, Years: c.Years})
	}
	if o := p.InstallationOverride; o != nil {
		out.InstallationOverride = &InstallationOverrideResponse{IsAvailable: o.IsAvailable, FlatRate: o.FlatRate}
	}
	return out
}

func FromProducts(ps []entities.Product) []ProductResponse {
	out := make([]ProductResponse, 0, len(ps))
	for _, p := range ps {
		out = append(out, FromProduct(p))
	}
	return out
}
