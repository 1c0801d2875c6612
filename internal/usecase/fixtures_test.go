package usecase

import (
	"auto_accessories/internal/adapter/persistence/memory"
	"auto_accessories/internal/domain/entities"
)

func fptr(v float64) *float64 { return &v }

func testRateMatrix() entities.InstallationRateMatrix {
	return entities.InstallationRateMatrix{
		entities.SegmentHatchback: 499,
		entities.SegmentSedan:     699,
		entities.SegmentSUV:       800,
		entities.SegmentMUV:       999,
	}
}

func testProducts() []entities.Product {
	return []entities.Product{
		{ID: "p-dashcam", Name: "Dash Camera", Slug: "dash-camera", Category: "electronics", Price: 1000, DiscountPrice: fptr(800), Stock: 10, IsUniversal: true},
		{ID: "p-stereo", Name: "Stereo", Slug: "stereo", Category: "electronics", Price: 5000, Stock: 5, IsUniversal: true,
			InstallationOverride: &entities.InstallationOverride{IsAvailable: true, FlatRate: fptr(500)}},
		{ID: "p-freshener", Name: "Freshener", Slug: "freshener", Category: "care", Price: 300, Stock: 50, IsUniversal: true,
			InstallationOverride: &entities.InstallationOverride{IsAvailable: false}},
		{ID: "p-covers", Name: "Seat Covers", Slug: "seat-covers", Category: "interior", Price: 1000, DiscountPrice: fptr(1200), Stock: 5,
			Compatibility: []entities.CompatibilityEntry{{Make: "Hyundai", Model: "Creta"}}},
		{ID: "p-soldout", Name: "Sold Out", Slug: "sold-out", Category: "lighting", Price: 100, Stock: 0},
	}
}

type testStore struct {
	products *memory.ProductRepository
	carts    *memory.CartRepository
	garages  *memory.GarageRepository
	panels   *memory.InstallationPanelRepository
	orders   *memory.OrderRepository

	garage       *GarageUseCase
	cart         *CartUseCase
	installation *InstallationUseCase
	order        *OrderUseCase
}

func newTestStore() *testStore {
	s := &testStore{
		products: memory.NewProductRepository(testProducts()),
		carts:    memory.NewCartRepository(),
		garages:  memory.NewGarageRepository(),
		panels:   memory.NewInstallationPanelRepository(),
		orders:   memory.NewOrderRepository(),
	}
	s.garage = NewGarageUseCase(s.garages)
	s.cart = NewCartUseCase(s.carts, s.products)
	s.installation = NewInstallationUseCase(s.products, s.panels, s.garage, s.cart, testRateMatrix())
	s.order = NewOrderUseCase(s.orders, s.cart)
	return s
}
