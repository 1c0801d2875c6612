package routes

import (
	"context"
	"fmt"
	"os"
	"strings"

	"auto_accessories/internal/adapter/persistence/memory"
	"auto_accessories/internal/adapter/persistence/repository"
	"auto_accessories/internal/domain/entities"
	"auto_accessories/internal/infrastructure/catalog"
	"auto_accessories/internal/infrastructure/database"
	"auto_accessories/internal/usecase/interfaces"

	"go.uber.org/zap"
)

const (
	StorageDynamoDB = "dynamodb"
	StorageMemory   = "memory"
)

type repositories struct {
	products interfaces.IProductRepository
	carts    interfaces.ICartRepository
	garages  interfaces.IGarageRepository
	panels   interfaces.IInstallationPanelRepository
	orders   interfaces.IOrderRepository
	payments interfaces.IPaymentRepository
}

// newRepositories picks the storage driver. DynamoDB is the default; the
// memory driver starts with the demo catalog and loses everything on restart.
func newRepositories(ctx context.Context, driver string) (repositories, error) {
	switch strings.ToLower(strings.TrimSpace(driver)) {
	case "", StorageDynamoDB:
		ddb := database.ConnectDynamoDB()
		repos := repositories{
			products: repository.NewProductDynamoRepository(ddb),
			carts:    repository.NewCartDynamoRepository(ddb),
			garages:  repository.NewGarageDynamoRepository(ddb),
			panels:   repository.NewInstallationPanelDynamoRepository(ddb),
			orders:   repository.NewOrderDynamoRepository(ddb),
			payments: repository.NewPaymentDynamoRepository(ddb),
		}
		if isTruthy(os.Getenv("SEED_CATALOG")) {
			if err := seedProducts(ctx, repos.products, catalog.SeedProducts()); err != nil {
				return repositories{}, err
			}
		}
		return repos, nil
	case StorageMemory:
		return newMemoryRepositories(), nil
	}
	return repositories{}, fmt.Errorf("unknown STORAGE_DRIVER %q", driver)
}

func newMemoryRepositories() repositories {
	return repositories{
		products: memory.NewProductRepository(catalog.SeedProducts()),
		carts:    memory.NewCartRepository(),
		garages:  memory.NewGarageRepository(),
		panels:   memory.NewInstallationPanelRepository(),
		orders:   memory.NewOrderRepository(),
		payments: memory.NewPaymentRepository(),
	}
}

// seedProducts writes the products that are not stored yet. Existing products
// are left as edited.
func seedProducts(ctx context.Context, repo interfaces.IProductRepository, products []entities.Product) error {
	seeded := 0
	for _, p := range products {
		existing, err := repo.GetByID(ctx, p.ID)
		if err != nil {
			return err
		}
		if existing.ID != "" {
			continue
		}
		if _, err := repo.Upsert(ctx, p); err != nil {
			return err
		}
		seeded++
	}
	zap.L().Info("catalog.seed done", zap.Int("seeded", seeded), zap.Int("total", len(products)))
	return nil
}

func isTruthy(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}
