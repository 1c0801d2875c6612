package entities

import (
	"strings"
	"time"
)

// CompatibilityEntry declares a vehicle the product is known to fit.
type CompatibilityEntry struct {
	Make  string `json:"make"`
	Model string `json:"model"`
	Years string `json:"years,omitempty"`
}

// InstallationOverride replaces the segment rate matrix for a single product.
//
//   - IsAvailable=false disables installation entirely.
//   - FlatRate, when set, is charged for every vehicle.
type InstallationOverride struct {
	IsAvailable bool     `json:"is_available"`
	FlatRate    *float64 `json:"flat_rate,omitempty"`
}

// Product is the catalog record consumed by cart and installation pricing.
//
// Storage model (DynamoDB):
//   - PK: id
type Product struct {
	ID                   string                `json:"id"`
	Slug                 string                `json:"slug"`
	Name                 string                `json:"name"`
	Image                string                `json:"image"`
	Category             string                `json:"category"`
	Price                float64               `json:"price"`
	DiscountPrice        *float64              `json:"discount_price,omitempty"`
	Stock                int                   `json:"stock"`
	Compatibility        []CompatibilityEntry  `json:"compatibility,omitempty"`
	IsUniversal          bool                  `json:"is_universal"`
	InstallationOverride *InstallationOverride `json:"installation_override,omitempty"`
	CreatedAt            time.Time             `json:"created_at"`
	UpdatedAt            time.Time             `json:"updated_at"`
}

// EffectivePrice returns the unit price charged and, when a discount is active,
// the undiscounted price. A discount that is not below Price is ignored.
func (p Product) EffectivePrice() (float64, *float64) {
	if p.DiscountPrice != nil && *p.DiscountPrice < p.Price {
		original := p.Price
		return *p.DiscountPrice, &original
	}
	return p.Price, nil
}

func (p Product) InStock() bool {
	return p.Stock > 0
}

// Fit reports whether the product fits the vehicle. known is false when the
// product is not universal and declares no compatibility list.
func (p Product) Fit(v VehicleSelection) (fits bool, known bool) {
	if p.IsUniversal {
		return true, true
	}
	if len(p.Compatibility) == 0 {
		return false, false
	}
	name := strings.TrimSpace(v.ModelName)
	for _, c := range p.Compatibility {
		if strings.EqualFold(strings.TrimSpace(c.Model), name) {
			return true, true
		}
		full := strings.TrimSpace(c.Make + " " + c.Model)
		if strings.EqualFold(full, name) {
			return true, true
		}
	}
	return false, true
}
