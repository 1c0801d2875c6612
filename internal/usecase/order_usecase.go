package usecase

import (
	"auto_accessories/internal/domain/entities"
	"auto_accessories/internal/usecase/interfaces"
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrOrderNotFound   = errors.New("order not found")
	ErrInvalidOrderID  = errors.New("invalid order id")
	ErrEmptyCart       = errors.New("cart is empty")
	ErrOrderNotPending = errors.New("order is not pending")
)

// IOrderUseCase turns the session cart into an order.
type IOrderUseCase interface {
	PlaceOrder(ctx context.Context, sessionID string) (entities.Order, error)
	GetByID(ctx context.Context, sessionID, id string) (entities.Order, error)
	ListBySession(ctx context.Context, sessionID string) ([]entities.Order, error)
	CancelOrder(ctx context.Context, sessionID, id string) (entities.Order, error)
}

// orderCart is the part of the cart consumed at checkout.
type orderCart interface {
	Checkout(ctx context.Context, sessionID string, place func(c entities.Cart) error) (entities.Cart, error)
}

type OrderUseCase struct {
	repo interfaces.IOrderRepository
	cart orderCart
}

var _ IOrderUseCase = (*OrderUseCase)(nil)

func NewOrderUseCase(repo interfaces.IOrderRepository, cart orderCart) *OrderUseCase {
	return &OrderUseCase{repo: repo, cart: cart}
}

// PlaceOrder snapshots the cart lines, prices and installation fees into a
// pending order and empties the cart in the same cart operation.
func (u *OrderUseCase) PlaceOrder(ctx context.Context, sessionID string) (entities.Order, error) {
	sessionID, err := normalizeSessionID(sessionID)
	if err != nil {
		return entities.Order{}, err
	}

	var created entities.Order
	_, err = u.cart.Checkout(ctx, sessionID, func(c entities.Cart) error {
		now := time.Now().UTC()
		o := entities.Order{
			ID:        uuid.NewString(),
			SessionID: sessionID,
			Items:     entities.OrderLinesFromCart(c),
			Total:     c.Total(),
			Status:    entities.OrderStatusPending,
			CreatedAt: now,
			UpdatedAt: now,
		}
		saved, err := u.repo.Create(ctx, o)
		if err != nil {
			zap.L().Error("order.create failed", zap.String("session_id", sessionID), zap.Error(err))
			return err
		}
		created = saved
		return nil
	})
	if err != nil {
		if created.ID == "" {
			return entities.Order{}, err
		}
		// The order exists; a stale cart is left for the shopper to clear.
		zap.L().Warn("order.clear cart failed",
			zap.String("session_id", sessionID),
			zap.String("order_id", created.ID),
			zap.Error(err),
		)
	}
	zap.L().Info("order.placed",
		zap.String("session_id", sessionID),
		zap.String("order_id", created.ID),
		zap.Float64("total", created.Total),
		zap.Int("lines", len(created.Items)),
	)
	return created, nil
}

// GetByID only returns orders owned by the session.
func (u *OrderUseCase) GetByID(ctx context.Context, sessionID, id string) (entities.Order, error) {
	sessionID, err := normalizeSessionID(sessionID)
	if err != nil {
		return entities.Order{}, err
	}
	o, err := loadOrder(ctx, u.repo, id)
	if err != nil {
		return entities.Order{}, err
	}
	if o.SessionID != sessionID {
		return entities.Order{}, ErrOrderNotFound
	}
	return o, nil
}

func (u *OrderUseCase) ListBySession(ctx context.Context, sessionID string) ([]entities.Order, error) {
	sessionID, err := normalizeSessionID(sessionID)
	if err != nil {
		return nil, err
	}
	return u.repo.ListBySessionID(ctx, sessionID)
}

func (u *OrderUseCase) CancelOrder(ctx context.Context, sessionID, id string) (entities.Order, error) {
	o, err := u.GetByID(ctx, sessionID, id)
	if err != nil {
		return entities.Order{}, err
	}
	if o.Status != entities.OrderStatusPending {
		return entities.Order{}, ErrOrderNotPending
	}
	updated, err := u.repo.UpdateStatusByID(ctx, o.ID, entities.OrderStatusCancelled)
	if err != nil {
		return entities.Order{}, err
	}
	if updated.ID == "" {
		return entities.Order{}, ErrOrderNotFound
	}
	zap.L().Info("order.cancelled", zap.String("order_id", updated.ID))
	return updated, nil
}

func loadOrder(ctx context.Context, repo interfaces.IOrderRepository, id string) (entities.Order, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Order{}, ErrInvalidOrderID
	}
	o, err := repo.GetByID(ctx, id)
	if err != nil {
		return entities.Order{}, err
	}
	if o.ID == "" {
		return entities.Order{}, ErrOrderNotFound
	}
	return o, nil
}
