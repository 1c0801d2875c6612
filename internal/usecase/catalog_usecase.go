package usecase

import (
	"auto_accessories/internal/domain/entities"
	"auto_accessories/internal/usecase/interfaces"
	"context"
	"errors"
	"regexp"
	"strings"
	"time"

	"go.uber.org/zap"
)

var (
	ErrProductNotFound  = errors.New("product not found")
	ErrInvalidProductID = errors.New("invalid product id")
	ErrInvalidProduct   = errors.New("invalid product")
)

var slugSanitizer = regexp.MustCompile(`[^a-z0-9]+`)

// ICatalogUseCase exposes the product catalog read API, the admin product
// editor and the static tables behind the vehicle picker and installation pricing.
type ICatalogUseCase interface {
	GetProduct(ctx context.Context, id string) (entities.Product, error)
	ListProducts(ctx context.Context, category string) ([]entities.Product, error)
	UpsertProduct(ctx context.Context, p entities.Product) (entities.Product, error)
	ListVehicles() []entities.VehicleBrand
	InstallationRates() entities.InstallationRateMatrix
}

type CatalogUseCase struct {
	repo     interfaces.IProductRepository
	vehicles []entities.VehicleBrand
	rates    entities.InstallationRateMatrix
}

var _ ICatalogUseCase = (*CatalogUseCase)(nil)

func NewCatalogUseCase(repo interfaces.IProductRepository, vehicles []entities.VehicleBrand, rates entities.InstallationRateMatrix) *CatalogUseCase {
	return &CatalogUseCase{repo: repo, vehicles: vehicles, rates: rates}
}

func (u *CatalogUseCase) GetProduct(ctx context.Context, id string) (entities.Product, error) {
	return loadProduct(ctx, u.repo, id)
}

func (u *CatalogUseCase) ListProducts(ctx context.Context, category string) ([]entities.Product, error) {
	return u.repo.List(ctx, strings.ToLower(strings.TrimSpace(category)))
}

// UpsertProduct validates and stores an edited product, keeping the original
// creation time.
func (u *CatalogUseCase) UpsertProduct(ctx context.Context, p entities.Product) (entities.Product, error) {
	p.ID = strings.TrimSpace(p.ID)
	if p.ID == "" {
		return entities.Product{}, ErrInvalidProductID
	}
	p.Name = strings.TrimSpace(p.Name)
	p.Category = strings.ToLower(strings.TrimSpace(p.Category))
	if err := validateProduct(p); err != nil {
		return entities.Product{}, err
	}
	if strings.TrimSpace(p.Slug) == "" {
		p.Slug = slugify(p.Name)
	}

	existing, err := u.repo.GetByID(ctx, p.ID)
	if err != nil {
		return entities.Product{}, err
	}
	now := time.Now().UTC()
	p.CreatedAt = now
	if existing.ID != "" {
		p.CreatedAt = existing.CreatedAt
	}
	p.UpdatedAt = now

	saved, err := u.repo.Upsert(ctx, p)
	if err != nil {
		return entities.Product{}, err
	}
	zap.L().Info("catalog.upsert", zap.String("product_id", saved.ID), zap.Bool("created", existing.ID == ""))
	return saved, nil
}

func (u *CatalogUseCase) ListVehicles() []entities.VehicleBrand {
	return u.vehicles
}

func (u *CatalogUseCase) InstallationRates() entities.InstallationRateMatrix {
	out := make(entities.InstallationRateMatrix, len(u.rates))
	for k, v := range u.rates {
		out[k] = v
	}
	return out
}

func validateProduct(p entities.Product) error {
	switch {
	case p.Name == "":
		return ErrInvalidProduct
	case p.Price <= 0:
		return ErrInvalidProduct
	case p.Stock < 0:
		return ErrInvalidProduct
	case p.DiscountPrice != nil && *p.DiscountPrice <= 0:
		return ErrInvalidProduct
	case p.InstallationOverride != nil && p.InstallationOverride.FlatRate != nil && *p.InstallationOverride.FlatRate < 0:
		return ErrInvalidProduct
	}
	return nil
}

func slugify(name string) string {
	return strings.Trim(slugSanitizer.ReplaceAllString(strings.ToLower(name), "-"), "-")
}

func loadProduct(ctx context.Context, repo interfaces.IProductRepository, id string) (entities.Product, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Product{}, ErrInvalidProductID
	}
	p, err := repo.GetByID(ctx, id)
	if err != nil {
		return entities.Product{}, err
	}
	if p.ID == "" {
		return entities.Product{}, ErrProductNotFound
	}
	return p, nil
}
