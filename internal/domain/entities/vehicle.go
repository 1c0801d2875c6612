package entities

import (
	"errors"
	"strings"
)

var (
	ErrInvalidVehicleName    = errors.New("invalid vehicle model name")
	ErrInvalidVehicleSegment = errors.New("invalid vehicle segment")
)

// VehicleSegment is the body class used to price installation work.
type VehicleSegment string

const (
	SegmentHatchback VehicleSegment = "Hatchback"
	SegmentSedan     VehicleSegment = "Sedan"
	SegmentSUV       VehicleSegment = "SUV"
	SegmentMUV       VehicleSegment = "MUV"
	SegmentLuxury    VehicleSegment = "Luxury"
)

// VehicleSegments lists every accepted segment in display order.
var VehicleSegments = []VehicleSegment{
	SegmentHatchback,
	SegmentSedan,
	SegmentSUV,
	SegmentMUV,
	SegmentLuxury,
}

func (s VehicleSegment) IsValid() bool {
	for _, seg := range VehicleSegments {
		if s == seg {
			return true
		}
	}
	return false
}

// ParseVehicleSegment matches raw against the closed segment set, ignoring case.
func ParseVehicleSegment(raw string) (VehicleSegment, bool) {
	raw = strings.TrimSpace(raw)
	for _, seg := range VehicleSegments {
		if strings.EqualFold(raw, string(seg)) {
			return seg, true
		}
	}
	return "", false
}

// VehicleSelection is the customer's car. Name and segment are always set together.
type VehicleSelection struct {
	ModelName string         `json:"model_name"`
	Segment   VehicleSegment `json:"segment"`
}

func NewVehicleSelection(modelName string, segment VehicleSegment) (VehicleSelection, error) {
	modelName = strings.TrimSpace(modelName)
	if modelName == "" {
		return VehicleSelection{}, ErrInvalidVehicleName
	}
	if !segment.IsValid() {
		return VehicleSelection{}, ErrInvalidVehicleSegment
	}
	return VehicleSelection{ModelName: modelName, Segment: segment}, nil
}

// IsComplete reports whether both halves of the selection are usable.
func (v VehicleSelection) IsComplete() bool {
	return strings.TrimSpace(v.ModelName) != "" && v.Segment.IsValid()
}

type VehicleModel struct {
	Name    string         `json:"name"`
	Segment VehicleSegment `json:"segment"`
}

// VehicleBrand groups the models offered in the vehicle picker.
type VehicleBrand struct {
	Brand  string         `json:"brand"`
	Models []VehicleModel `json:"models"`
}
