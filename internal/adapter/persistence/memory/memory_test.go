package memory

import (
	"context"
	"testing"
	"time"

	"auto_accessories/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fptr(v float64) *float64 { return &v }

func TestProductRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewProductRepository([]entities.Product{
		{ID: "b", Category: "lighting", Price: 10, DiscountPrice: fptr(8)},
		{ID: "a", Category: "electronics", Price: 20},
	})

	all, err := repo.List(ctx, "")
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "a", all[0].ID)

	lighting, err := repo.List(ctx, "lighting")
	require.NoError(t, err)
	require.Len(t, lighting, 1)
	assert.Equal(t, "b", lighting[0].ID)

	got, err := repo.GetByID(ctx, "b")
	require.NoError(t, err)
	*got.DiscountPrice = 1
	again, _ := repo.GetByID(ctx, "b")
	assert.Equal(t, 8.0, *again.DiscountPrice, "returned products must not alias stored ones")

	missing, err := repo.GetByID(ctx, "zzz")
	require.NoError(t, err)
	assert.Empty(t, missing.ID)

	_, err = repo.Upsert(ctx, entities.Product{ID: "c", Price: 5})
	require.NoError(t, err)
	all, _ = repo.List(ctx, "")
	assert.Len(t, all, 3)
}

func TestCartRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewCartRepository()

	c, err := repo.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, "s1", c.SessionID)
	assert.Empty(t, c.Items)

	c.Items = append(c.Items, entities.CartLineItem{LineID: "p1", ProductID: "p1", Quantity: 1, Price: 100})
	require.NoError(t, repo.Save(ctx, c))

	loaded, err := repo.Get(ctx, "s1")
	require.NoError(t, err)
	loaded.Items[0].Quantity = 99

	again, _ := repo.Get(ctx, "s1")
	assert.Equal(t, 1, again.Items[0].Quantity)

	other, _ := repo.Get(ctx, "s2")
	assert.Empty(t, other.Items)
}

func TestGarageRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewGarageRepository()

	v, err := repo.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Nil(t, v)

	require.NoError(t, repo.Save(ctx, "s1", entities.VehicleSelection{ModelName: "Swift", Segment: entities.SegmentHatchback}))
	v, err = repo.Get(ctx, "s1")
	require.NoError(t, err)
	require.NotNil(t, v)
	assert.Equal(t, "Swift", v.ModelName)

	require.NoError(t, repo.Delete(ctx, "s1"))
	v, _ = repo.Get(ctx, "s1")
	assert.Nil(t, v)
}

func TestInstallationPanelRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewInstallationPanelRepository()

	p, err := repo.Get(ctx, "s1", "p1")
	require.NoError(t, err)
	assert.Equal(t, entities.InstallationPanel{SessionID: "s1", ProductID: "p1"}, p)

	price := 800.0
	p.Pending = &entities.PendingConfirmation{
		Token:   "t",
		Action:  entities.ConfirmationActionAdd,
		Vehicle: &entities.VehicleSelection{ModelName: "Creta", Segment: entities.SegmentSUV},
		Price:   &price,
	}
	require.NoError(t, repo.Save(ctx, p))

	other, _ := repo.Get(ctx, "s1", "p2")
	assert.Nil(t, other.Pending)

	loaded, _ := repo.Get(ctx, "s1", "p1")
	require.NotNil(t, loaded.Pending)
	loaded.Pending.Token = "changed"
	loaded.Pending.Vehicle.ModelName = "Swift"
	*loaded.Pending.Price = 1
	again, _ := repo.Get(ctx, "s1", "p1")
	assert.Equal(t, "t", again.Pending.Token)
	assert.Equal(t, "Creta", again.Pending.Vehicle.ModelName)
	assert.Equal(t, 800.0, *again.Pending.Price)

	require.NoError(t, repo.Delete(ctx, "s1", "p1"))
	gone, _ := repo.Get(ctx, "s1", "p1")
	assert.Nil(t, gone.Pending)
}

func TestOrderRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewOrderRepository()
	t0 := time.Now().UTC()

	_, err := repo.Create(ctx, entities.Order{ID: "o1", SessionID: "s1", Status: entities.OrderStatusPending, CreatedAt: t0})
	require.NoError(t, err)
	_, err = repo.Create(ctx, entities.Order{ID: "o2", SessionID: "s1", Status: entities.OrderStatusPending, CreatedAt: t0.Add(time.Minute)})
	require.NoError(t, err)
	_, err = repo.Create(ctx, entities.Order{ID: "o1"})
	assert.ErrorIs(t, err, ErrAlreadyExists)

	list, err := repo.ListBySessionID(ctx, "s1")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "o2", list[0].ID)

	updated, err := repo.UpdateStatusByID(ctx, "o1", entities.OrderStatusCancelled)
	require.NoError(t, err)
	assert.Equal(t, entities.OrderStatusCancelled, updated.Status)

	missing, err := repo.UpdateStatusByID(ctx, "nope", entities.OrderStatusPaid)
	require.NoError(t, err)
	assert.Empty(t, missing.ID)
}

func TestPaymentRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewPaymentRepository()
	t0 := time.Now().UTC()

	_, err := repo.Create(ctx, entities.Payment{ID: "p1", OrderID: "o1", Date: t0})
	require.NoError(t, err)
	_, err = repo.Create(ctx, entities.Payment{ID: "p2", OrderID: "o1", Date: t0.Add(time.Second)})
	require.NoError(t, err)
	_, err = repo.Create(ctx, entities.Payment{ID: "p1"})
	assert.ErrorIs(t, err, ErrAlreadyExists)

	list, err := repo.ListByOrderID(ctx, "o1")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "p2", list[0].ID)

	got, err := repo.GetByID(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, "o1", got.OrderID)
}
