package response

import (
	"auto_accessories/internal/domain/entities"
	"time"
)

type OrderLineResponse struct {
	ProductID        string   `json:"product_id"`
	Name             string   `json:"name"`
	Quantity         int      `json:"quantity"`
	Price            float64  `json:"price"`
	HasInstallation  bool     `json:"has_installation"`
	InstallationCost *float64 `json:"installation_cost,omitempty"`
	LineTotal        float64  `json:"line_total"`
}

type OrderResponse struct {
	ID        string              `json:"id"`
	Items     []OrderLineResponse `json:"items"`
	Total     float64             `json:"total"`
	Status    string              `json:"status"`
	CreatedAt time.Time           `json:"created_at"`
	UpdatedAt time.Time           `json:"updated_at"`
}

func FromOrder(o entities.Order) OrderResponse {
	out := OrderResponse{
		ID:        o.ID,
		Items:     make([]OrderLineResponse, 0, len(o.Items)),
		Total:     o.Total,
		Status:    string(o.Status),
		CreatedAt: o.CreatedAt,
		UpdatedAt: o.UpdatedAt,
	}
	for _, l := range o.Items {
		out.Items = append(out.Items, OrderLineResponse{
			ProductID:        l.ProductID,
			Name:             l.Name,
			Quantity:         l.Quantity,
			Price:            l.Price,
			HasInstallation:  l.HasInstallation,
			InstallationCost: l.InstallationCost,
			LineTotal:        l.LineTotal(),
		})
	}
	return out
}

func FromOrders(os []entities.Order) []OrderResponse {
	out := make([]OrderResponse, 0, len(os))
	for _, o := range os {
		out = append(out, FromOrder(o))
	}
	return out
}
