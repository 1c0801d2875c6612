package catalog

import "auto_accessories/internal/domain/entities"

// Vehicles is the picker catalog. Manual entry bypasses it.
var Vehicles = []entities.VehicleBrand{
	{Brand: "Maruti Suzuki", Models: []entities.VehicleModel{
		{Name: "Swift", Segment: entities.SegmentHatchback},
		{Name: "Baleno", Segment: entities.SegmentHatchback},
		{Name: "Wagon R", Segment: entities.SegmentHatchback},
		{Name: "Dzire", Segment: entities.SegmentSedan},
		{Name: "Ciaz", Segment: entities.SegmentSedan},
		{Name: "Brezza", Segment: entities.SegmentSUV},
		{Name: "Grand Vitara", Segment: entities.SegmentSUV},
		{Name: "Ertiga", Segment: entities.SegmentMUV},
		{Name: "XL6", Segment: entities.SegmentMUV},
	}},
	{Brand: "Hyundai", Models: []entities.VehicleModel{
		{Name: "i10 Nios", Segment: entities.SegmentHatchback},
		{Name: "i20", Segment: entities.SegmentHatchback},
		{Name: "Verna", Segment: entities.SegmentSedan},
		{Name: "Venue", Segment: entities.SegmentSUV},
		{Name: "Creta", Segment: entities.SegmentSUV},
		{Name: "Alcazar", Segment: entities.SegmentSUV},
	}},
	{Brand: "Tata", Models: []entities.VehicleModel{
		{Name: "Tiago", Segment: entities.SegmentHatchback},
		{Name: "Altroz", Segment: entities.SegmentHatchback},
		{Name: "Tigor", Segment: entities.SegmentSedan},
		{Name: "Nexon", Segment: entities.SegmentSUV},
		{Name: "Harrier", Segment: entities.SegmentSUV},
		{Name: "Safari", Segment: entities.SegmentSUV},
	}},
	{Brand: "Mahindra", Models: []entities.VehicleModel{
		{Name: "XUV 3XO", Segment: entities.SegmentSUV},
		{Name: "Thar", Segment: entities.SegmentSUV},
		{Name: "Scorpio-N", Segment: entities.SegmentSUV},
		{Name: "XUV700", Segment: entities.SegmentSUV},
		{Name: "Marazzo", Segment: entities.SegmentMUV},
	}},
	{Brand: "Honda", Models: []entities.VehicleModel{
		{Name: "Amaze", Segment: entities.SegmentSedan},
		{Name: "City", Segment: entities.SegmentSedan},
		{Name: "Elevate", Segment: entities.SegmentSUV},
	}},
	{Brand: "Toyota", Models: []entities.VehicleModel{
		{Name: "Glanza", Segment: entities.SegmentHatchback},
		{Name: "Urban Cruiser Hyryder", Segment: entities.SegmentSUV},
		{Name: "Fortuner", Segment: entities.SegmentSUV},
		{Name: "Innova Crysta", Segment: entities.SegmentMUV},
		{Name: "Innova Hycross", Segment: entities.SegmentMUV},
		{Name: "Camry", Segment: entities.SegmentLuxury},
	}},
	{Brand: "Kia", Models: []entities.VehicleModel{
		{Name: "Sonet", Segment: entities.SegmentSUV},
		{Name: "Seltos", Segment: entities.SegmentSUV},
		{Name: "Carens", Segment: entities.SegmentMUV},
		{Name: "Carnival", Segment: entities.SegmentLuxury},
	}},
	{Brand: "Mercedes-Benz", Models: []entities.VehicleModel{
		{Name: "C-Class", Segment: entities.SegmentLuxury},
		{Name: "E-Class", Segment: entities.SegmentLuxury},
		{Name: "GLC", Segment: entities.SegmentLuxury},
	}},
	{Brand: "BMW", Models: []entities.VehicleModel{
		{Name: "3 Series", Segment: entities.SegmentLuxury},
		{Name: "X1", Segment: entities.SegmentLuxury},
		{Name: "X5", Segment: entities.SegmentLuxury},
	}},
}
