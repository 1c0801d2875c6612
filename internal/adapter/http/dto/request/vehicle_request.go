package request

// VehicleRequest selects a vehicle for the garage or for one product's
// installation panel.
type VehicleRequest struct {
	ModelName string `json:"model_name" binding:"required"`
	Segment   string `json:"segment" binding:"required"`
}
