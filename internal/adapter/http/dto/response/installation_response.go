package response

import (
	"auto_accessories/internal/domain/entities"
	"auto_accessories/internal/usecase"
	"time"
)

type InstallationQuoteResponse struct {
	IsAvailable bool     `json:"is_available"`
	Price       *float64 `json:"price"`
	Source      string   `json:"source,omitempty"`
	Reason      string   `json:"reason,omitempty"`
}

type PendingConfirmationResponse struct {
	Token       string    `json:"token"`
	Action      string    `json:"action"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

// InstallationPanelResponse is everything the product page needs to render
// the installation service box.
type InstallationPanelResponse struct {
	ProductID        string                       `json:"product_id"`
	State            string                       `json:"state"`
	Vehicle          *VehicleResponse             `json:"vehicle"`
	VehicleSource    string                       `json:"vehicle_source,omitempty"`
	Quote            InstallationQuoteResponse    `json:"quote"`
	Fits             *bool                        `json:"fits"`
	Selecting        bool                         `json:"selecting"`
	Pending          *PendingConfirmationResponse `json:"pending,omitempty"`
	InstallationCost *float64                     `json:"installation_cost,omitempty"`
	Notice           string                       `json:"notice,omitempty"`
}

func FromInstallationQuote(q entities.InstallationQuote) InstallationQuoteResponse {
	return InstallationQuoteResponse{
		IsAvailable: q.IsAvailable,
		Price:       q.Price,
		Source:      string(q.Source),
		Reason:      string(q.Reason),
	}
}

func FromPendingConfirmation(p entities.PendingConfirmation) PendingConfirmationResponse {
	return PendingConfirmationResponse{
		Token:       p.Token,
		Action:      string(p.Action),
		Title:       p.Title,
		Description: p.Description,
		CreatedAt:   p.CreatedAt,
	}
}

func FromInstallationView(v usecase.InstallationView) InstallationPanelResponse {
	out := InstallationPanelResponse{
		ProductID:        v.ProductID,
		State:            string(v.State),
		Vehicle:          FromVehicle(v.Vehicle),
		VehicleSource:    v.VehicleSource,
		Quote:            FromInstallationQuote(v.Quote),
		Fits:             v.Fits,
		Selecting:        v.Selecting,
		InstallationCost: v.InstallationCost,
		Notice:           v.Notice,
	}
	if v.Pending != nil {
		p := FromPendingConfirmation(*v.Pending)
		out.Pending = &p
	}
	return out
}
