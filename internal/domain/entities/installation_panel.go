package entities

import "time"

// InstallationState is the lifecycle of the installation service for one product.
type InstallationState string

const (
	InstallationStateNoVehicle       InstallationState = "no_vehicle"
	InstallationStateVehicleSelected InstallationState = "vehicle_selected"
	InstallationStateServiceActive   InstallationState = "service_active"
)

type ConfirmationAction string

const (
	ConfirmationActionAdd    ConfirmationAction = "add"
	ConfirmationActionRemove ConfirmationAction = "remove"
	ConfirmationActionChange ConfirmationAction = "change"
)

func (a ConfirmationAction) IsValid() bool {
	switch a {
	case ConfirmationActionAdd, ConfirmationActionRemove, ConfirmationActionChange:
		return true
	}
	return false
}

// PendingConfirmation is a proposed state change waiting for the customer's
// confirm or cancel. Token identifies the proposal so a stale confirm is rejected.
// Vehicle and Price are the quote the proposal was described with.
type PendingConfirmation struct {
	Token       string             `json:"token"`
	Action      ConfirmationAction `json:"action"`
	Title       string             `json:"title"`
	Description string             `json:"description"`
	Vehicle     *VehicleSelection  `json:"vehicle,omitempty"`
	Price       *float64           `json:"price,omitempty"`
	CreatedAt   time.Time          `json:"created_at"`
}

// Quotes reports whether vehicle and price are still the ones the proposal showed.
func (p PendingConfirmation) Quotes(vehicle *VehicleSelection, price *float64) bool {
	switch {
	case (p.Vehicle == nil) != (vehicle == nil):
		return false
	case p.Vehicle != nil && *p.Vehicle != *vehicle:
		return false
	case (p.Price == nil) != (price == nil):
		return false
	case p.Price != nil && *p.Price != *price:
		return false
	}
	return true
}

// InstallationPanel is the per-product interaction state of a session.
// Whether the service is active is not stored here; it is read from the cart.
//
// Storage model (DynamoDB):
//   - PK: session_id
//   - SK: product_id
type InstallationPanel struct {
	SessionID     string               `json:"session_id"`
	ProductID     string               `json:"product_id"`
	ManualVehicle *VehicleSelection    `json:"manual_vehicle,omitempty"`
	Selecting     bool                 `json:"selecting"`
	Pending       *PendingConfirmation `json:"pending,omitempty"`
	UpdatedAt     time.Time            `json:"updated_at"`
}
