package entities

import "time"

// OrderStatus represents the lifecycle of a placed order.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusPaid      OrderStatus = "paid"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// OrderLine is the cart line snapshot handed to order placement.
type OrderLine struct {
	ProductID        string   `json:"product_id"`
	Name             string   `json:"name"`
	Quantity         int      `json:"quantity"`
	Price            float64  `json:"price"`
	HasInstallation  bool     `json:"has_installation"`
	InstallationCost *float64 `json:"installation_cost,omitempty"`
}

// LineTotal matches the cart line total the snapshot was taken from.
func (l OrderLine) LineTotal() float64 {
	return CartLineItem{
		Quantity:         l.Quantity,
		Price:            l.Price,
		HasInstallation:  l.HasInstallation,
		InstallationCost: l.InstallationCost,
	}.LineTotal()
}

// Order is a placed order.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (session_id-index): session_id
//
// Total is computed once from the snapshot at placement and is the amount charged.
type Order struct {
	ID        string      `json:"id"`
	SessionID string      `json:"session_id"`
	Items     []OrderLine `json:"items"`
	Total     float64     `json:"total"`
	Status    OrderStatus `json:"status"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}

// OrderLinesFromCart snapshots the cart lines.
func OrderLinesFromCart(c Cart) []OrderLine {
	lines := make([]OrderLine, 0, len(c.Items))
	for _, it := range c.Items {
		line := OrderLine{
			ProductID:       it.ProductID,
			Name:            it.Name,
			Quantity:        it.Quantity,
			Price:           it.Price,
			HasInstallation: it.HasInstallation,
		}
		if it.HasInstallation && it.InstallationCost != nil {
			cost := *it.InstallationCost
			line.InstallationCost = &cost
		}
		lines = append(lines, line)
	}
	return lines
}
