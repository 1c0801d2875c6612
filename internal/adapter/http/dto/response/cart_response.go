package response

import (
	"auto_accessories/internal/domain/entities"
	"time"
)

type CartLineResponse struct {
	LineID           string   `json:"line_id"`
	ProductID        string   `json:"product_id"`
	Slug             string   `json:"slug"`
	Name             string   `json:"name"`
	Image            string   `json:"image"`
	Quantity         int      `json:"quantity"`
	Price            float64  `json:"price"`
	OriginalPrice    *float64 `json:"original_price,omitempty"`
	HasInstallation  bool     `json:"has_installation"`
	InstallationCost *float64 `json:"installation_cost,omitempty"`
	LineTotal        float64  `json:"line_total"`
}

type CartResponse struct {
	SessionID string             `json:"session_id"`
	Items     []CartLineResponse `json:"items"`
	ItemCount int                `json:"item_count"`
	Total     float64            `json:"total"`
	UpdatedAt *time.Time         `json:"updated_at,omitempty"`
}

func FromCart(c entities.Cart) CartResponse {
	out := CartResponse{
		SessionID: c.SessionID,
		Items:     make([]CartLineResponse, 0, len(c.Items)),
		ItemCount: c.ItemCount(),
		Total:     c.Total(),
	}
	if !c.UpdatedAt.IsZero() {
		t := c.UpdatedAt
		out.UpdatedAt = &t
	}
	for _, l := range c.Items {
		out.Items = append(out.Items, CartLineResponse{
			LineID:           l.LineID,
			ProductID:        l.ProductID,
			Slug:             l.Slug,
			Name:             l.Name,
			Image:            l.Image,
			Quantity:         l.Quantity,
			Price:            l.Price,
			OriginalPrice:    l.OriginalPrice,
			HasInstallation:  l.HasInstallation,
			InstallationCost: l.InstallationCost,
			LineTotal:        l.LineTotal(),
		})
	}
	return out
}
