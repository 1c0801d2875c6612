package response

import (
	"auto_accessories/internal/domain/entities"
	"sort"
)

type VehicleResponse struct {
	ModelName string `json:"model_name"`
	Segment   string `json:"segment"`
}

type GarageResponse struct {
	Vehicle *VehicleResponse `json:"vehicle"`
}

type VehicleModelResponse struct {
	Name    string `json:"name"`
	Segment string `json:"segment"`
}

type VehicleBrandResponse struct {
	Brand  string                 `json:"brand"`
	Models []VehicleModelResponse `json:"models"`
}

type InstallationRateResponse struct {
	Segment string  `json:"segment"`
	Rate    float64 `json:"rate"`
}

func FromVehicle(v *entities.VehicleSelection) *VehicleResponse {
	if v == nil {
		return nil
	}
	return &VehicleResponse{ModelName: v.ModelName, Segment: string(v.Segment)}
}

func FromGarage(v *entities.VehicleSelection) GarageResponse {
	return GarageResponse{Vehicle: FromVehicle(v)}
}

func FromVehicleBrands(brands []entities.VehicleBrand) []VehicleBrandResponse {
	out := make([]VehicleBrandResponse, 0, len(brands))
	for _, b := range brands {
		models := make([]VehicleModelResponse, 0, len(b.Models))
		for _, m := range b.Models {
			models = append(models, VehicleModelResponse{Name: m.Name, Segment: string(m.Segment)})
		}
		out = append(out, VehicleBrandResponse{Brand: b.Brand, Models: models})
	}
	return out
}

// FromRateMatrix lists the configured rates in segment order. Segments
// without a rate are omitted.
func FromRateMatrix(m entities.InstallationRateMatrix) []InstallationRateResponse {
	out := make([]InstallationRateResponse, 0, len(m))
	for seg, rate := range m {
		out = append(out, InstallationRateResponse{Segment: string(seg), Rate: rate})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Segment < out[j].Segment })
	return out
}
