package catalog

import (
	"time"

	"auto_accessories/internal/domain/entities"
)

func price(v float64) *float64 { return &v }

// SeedProducts is the demo catalog loaded by the memory storage driver.
func SeedProducts() []entities.Product {
	now := time.Now().UTC()
	products := []entities.Product{
		{
			ID: "prd-dashcam-4k", Slug: "dashcam-4k", Name: "4K Front Dash Camera",
			Image: "/img/products/dashcam-4k.jpg", Category: "electronics",
			Price: 6999, DiscountPrice: price(5499), Stock: 25, IsUniversal: true,
		},
		{
			ID: "prd-seat-cover-creta", Slug: "seat-cover-creta", Name: "Leatherette Seat Covers",
			Image: "/img/products/seat-cover.jpg", Category: "interior",
			Price: 8999, Stock: 10,
			Compatibility: []entities.CompatibilityEntry{
				{Make: "Hyundai", Model: "Creta", Years: "2020-2024"},
				{Make: "Kia", Model: "Seltos", Years: "2019-2024"},
			},
		},
		{
			ID: "prd-android-stereo", Slug: "android-stereo-9in", Name: "9in Android Touchscreen Stereo",
			Image: "/img/products/android-stereo.jpg", Category: "electronics",
			Price: 12499, DiscountPrice: price(10999), Stock: 8, IsUniversal: true,
			InstallationOverride: &entities.InstallationOverride{IsAvailable: true, FlatRate: price(1200)},
		},
		{
			ID: "prd-air-freshener", Slug: "air-freshener-gel", Name: "Gel Air Freshener",
			Image: "/img/products/air-freshener.jpg", Category: "care",
			Price: 299, Stock: 200, IsUniversal: true,
			InstallationOverride: &entities.InstallationOverride{IsAvailable: false},
		},
		{
			ID: "prd-led-headlamp", Slug: "led-headlamp-h4", Name: "LED Headlamp Bulbs H4",
			Image: "/img/products/led-h4.jpg", Category: "lighting",
			Price: 2499, DiscountPrice: price(2999), Stock: 0,
			Compatibility: []entities.CompatibilityEntry{
				{Make: "Maruti Suzuki", Model: "Swift", Years: "2018-2024"},
				{Make: "Tata", Model: "Nexon", Years: "2017-2024"},
			},
		},
	}
	for i := range products {
		products[i].CreatedAt = now
		products[i].UpdatedAt = now
	}
	return products
}
