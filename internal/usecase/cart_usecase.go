package usecase

import (
	"auto_accessories/internal/domain/entities"
	"auto_accessories/internal/usecase/interfaces"
	"context"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"
)

var (
	ErrInvalidQuantity         = errors.New("invalid quantity")
	ErrInvalidInstallationCost = errors.New("invalid installation cost")
	ErrInvalidLineID           = errors.New("invalid line id")
	ErrProductOutOfStock       = errors.New("product out of stock")
	ErrCartLineNotFound        = errors.New("cart line not found")
)

// ICartUseCase is the session cart.
//
// Every mutation loads the persisted cart, applies the change and writes the
// full line list back before returning.
type ICartUseCase interface {
	GetCart(ctx context.Context, sessionID string) (entities.Cart, error)
	AddToCart(ctx context.Context, sessionID, productID string, quantity int, opt entities.InstallationOption) (entities.Cart, error)
	RemoveFromCart(ctx context.Context, sessionID, productID string) (entities.Cart, error)
	RemoveLine(ctx context.Context, sessionID, lineID string) (entities.Cart, error)
	UpdateQuantity(ctx context.Context, sessionID, productID string, quantity int) (entities.Cart, error)
	ClearCart(ctx context.Context, sessionID string) (entities.Cart, error)
}

type CartUseCase struct {
	repo     interfaces.ICartRepository
	products interfaces.IProductRepository
	locks    *sessionLocks
	now      func() time.Time
}

var _ ICartUseCase = (*CartUseCase)(nil)

func NewCartUseCase(repo interfaces.ICartRepository, products interfaces.IProductRepository) *CartUseCase {
	return &CartUseCase{
		repo:     repo,
		products: products,
		locks:    newSessionLocks(),
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func (u *CartUseCase) GetCart(ctx context.Context, sessionID string) (entities.Cart, error) {
	sessionID, err := normalizeSessionID(sessionID)
	if err != nil {
		return entities.Cart{}, err
	}
	c, err := u.repo.Get(ctx, sessionID)
	if err != nil {
		return entities.Cart{}, err
	}
	c.SessionID = sessionID
	if c.Items == nil {
		c.Items = []entities.CartLineItem{}
	}
	return c, nil
}

func (u *CartUseCase) AddToCart(ctx context.Context, sessionID, productID string, quantity int, opt entities.InstallationOption) (entities.Cart, error) {
	if quantity < 1 {
		return entities.Cart{}, ErrInvalidQuantity
	}
	if opt.HasInstallation && (opt.InstallationCost == nil || *opt.InstallationCost < 0) {
		return entities.Cart{}, ErrInvalidInstallationCost
	}
	p, err := loadProduct(ctx, u.products, productID)
	if err != nil {
		return entities.Cart{}, err
	}
	if !p.InStock() {
		return entities.Cart{}, ErrProductOutOfStock
	}

	c, err := u.mutate(ctx, sessionID, func(c *entities.Cart) (bool, error) {
		c.Add(p, quantity, opt)
		return true, nil
	})
	if err != nil {
		return entities.Cart{}, err
	}
	zap.L().Info("cart.add",
		zap.String("session_id", c.SessionID),
		zap.String("product_id", p.ID),
		zap.Int("quantity", quantity),
		zap.Bool("has_installation", opt.HasInstallation),
	)
	return c, nil
}

// RemoveFromCart drops every line of the product, installed or not.
func (u *CartUseCase) RemoveFromCart(ctx context.Context, sessionID, productID string) (entities.Cart, error) {
	productID = strings.TrimSpace(productID)
	if productID == "" {
		return entities.Cart{}, ErrInvalidProductID
	}
	return u.mutate(ctx, sessionID, func(c *entities.Cart) (bool, error) {
		return c.RemoveProduct(productID) > 0, nil
	})
}

// RemoveLine drops a single product variant.
func (u *CartUseCase) RemoveLine(ctx context.Context, sessionID, lineID string) (entities.Cart, error) {
	lineID = strings.TrimSpace(lineID)
	if lineID == "" {
		return entities.Cart{}, ErrInvalidLineID
	}
	return u.mutate(ctx, sessionID, func(c *entities.Cart) (bool, error) {
		if !c.RemoveLine(lineID) {
			return false, ErrCartLineNotFound
		}
		return true, nil
	})
}

// UpdateQuantity sets the quantity; zero or below removes the product.
func (u *CartUseCase) UpdateQuantity(ctx context.Context, sessionID, productID string, quantity int) (entities.Cart, error) {
	productID = strings.TrimSpace(productID)
	if productID == "" {
		return entities.Cart{}, ErrInvalidProductID
	}
	return u.mutate(ctx, sessionID, func(c *entities.Cart) (bool, error) {
		return c.SetQuantity(productID, quantity), nil
	})
}

func (u *CartUseCase) ClearCart(ctx context.Context, sessionID string) (entities.Cart, error) {
	return u.mutate(ctx, sessionID, func(c *entities.Cart) (bool, error) {
		c.Clear()
		return true, nil
	})
}

// Checkout hands the cart to place and empties it, both under the session's
// cart lock so no line added meanwhile is lost. The cart is kept when place
// fails. An empty cart fails with ErrEmptyCart before place runs.
func (u *CartUseCase) Checkout(ctx context.Context, sessionID string, place func(c entities.Cart) error) (entities.Cart, error) {
	return u.mutate(ctx, sessionID, func(c *entities.Cart) (bool, error) {
		if len(c.Items) == 0 {
			return false, ErrEmptyCart
		}
		if err := place(*c); err != nil {
			return false, err
		}
		c.Clear()
		return true, nil
	})
}

// SyncInstallationCost rebinds the fee of an installed line to a newly
// resolved quote. It is a no-op when the product has no installed line.
func (u *CartUseCase) SyncInstallationCost(ctx context.Context, sessionID, productID string, cost float64) (entities.Cart, error) {
	if cost < 0 {
		return entities.Cart{}, ErrInvalidInstallationCost
	}
	return u.mutate(ctx, sessionID, func(c *entities.Cart) (bool, error) {
		line, ok := c.InstalledLine(productID)
		if !ok || (line.InstallationCost != nil && *line.InstallationCost == cost) {
			return false, nil
		}
		return c.UpdateInstallationCost(productID, cost), nil
	})
}

// DetachInstallation removes the installation service from the product's line.
func (u *CartUseCase) DetachInstallation(ctx context.Context, sessionID, productID string) (entities.Cart, error) {
	return u.mutate(ctx, sessionID, func(c *entities.Cart) (bool, error) {
		return c.DetachInstallation(productID), nil
	})
}

func (u *CartUseCase) mutate(ctx context.Context, sessionID string, apply func(c *entities.Cart) (bool, error)) (entities.Cart, error) {
	sessionID, err := normalizeSessionID(sessionID)
	if err != nil {
		return entities.Cart{}, err
	}
	unlock := u.locks.lock(sessionID)
	defer unlock()

	// The persisted cart is always read before the first write of a request.
	c, err := u.repo.Get(ctx, sessionID)
	if err != nil {
		return entities.Cart{}, err
	}
	c.SessionID = sessionID
	if c.Items == nil {
		c.Items = []entities.CartLineItem{}
	}

	changed, err := apply(&c)
	if err != nil {
		return entities.Cart{}, err
	}
	if !changed {
		return c, nil
	}
	c.UpdatedAt = u.now()
	if err := u.repo.Save(ctx, c); err != nil {
		zap.L().Error("cart.save failed", zap.String("session_id", sessionID), zap.Error(err))
		return entities.Cart{}, err
	}
	return c, nil
}
