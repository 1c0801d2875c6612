package repository

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"auto_accessories/internal/domain/entities"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeDynamo is a single-table store keyed by keyNames.
type fakeDynamo struct {
	DynamoDBAPI
	keyNames []string
	items    map[string]map[string]types.AttributeValue
	err      error
}

func newFakeDynamo(keyNames ...string) *fakeDynamo {
	return &fakeDynamo{keyNames: keyNames, items: map[string]map[string]types.AttributeValue{}}
}

func (f *fakeDynamo) key(av map[string]types.AttributeValue) string {
	parts := make([]string, 0, len(f.keyNames))
	for _, k := range f.keyNames {
		if s, ok := av[k].(*types.AttributeValueMemberS); ok {
			parts = append(parts, s.Value)
		}
	}
	return strings.Join(parts, "/")
}

func (f *fakeDynamo) GetItem(_ context.Context, in *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &dynamodb.GetItemOutput{Item: f.items[f.key(in.Key)]}, nil
}

func (f *fakeDynamo) PutItem(_ context.Context, in *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	k := f.key(in.Item)
	if in.ConditionExpression != nil && strings.HasPrefix(*in.ConditionExpression, "attribute_not_exists") {
		if _, ok := f.items[k]; ok {
			return nil, &types.ConditionalCheckFailedException{}
		}
	}
	f.items[k] = in.Item
	return &dynamodb.PutItemOutput{}, nil
}

func (f *fakeDynamo) DeleteItem(_ context.Context, in *dynamodb.DeleteItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error) {
	delete(f.items, f.key(in.Key))
	return &dynamodb.DeleteItemOutput{}, nil
}

func (f *fakeDynamo) UpdateItem(_ context.Context, in *dynamodb.UpdateItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error) {
	k := f.key(in.Key)
	item, ok := f.items[k]
	if !ok {
		return nil, &types.ConditionalCheckFailedException{}
	}
	// Only plain "SET #a = :a, #b = :b" expressions are supported.
	expr := strings.TrimPrefix(*in.UpdateExpression, "SET ")
	updated := make(map[string]types.AttributeValue, len(item))
	for name, v := range item {
		updated[name] = v
	}
	for _, assign := range strings.Split(expr, ",") {
		lhs, rhs, _ := strings.Cut(strings.TrimSpace(assign), " = ")
		updated[in.ExpressionAttributeNames[lhs]] = in.ExpressionAttributeValues[rhs]
	}
	f.items[k] = updated
	return &dynamodb.UpdateItemOutput{Attributes: updated}, nil
}

func (f *fakeDynamo) Scan(_ context.Context, _ *dynamodb.ScanInput, _ ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error) {
	out := &dynamodb.ScanOutput{}
	for _, it := range f.items {
		out.Items = append(out.Items, it)
	}
	return out, nil
}

func (f *fakeDynamo) Query(_ context.Context, in *dynamodb.QueryInput, _ ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
	out := &dynamodb.QueryOutput{}
	// Only single "attr = :value" key conditions are supported.
	attr, placeholder, _ := strings.Cut(*in.KeyConditionExpression, " = ")
	want := in.ExpressionAttributeValues[placeholder].(*types.AttributeValueMemberS).Value
	for _, it := range f.items {
		if s, ok := it[attr].(*types.AttributeValueMemberS); ok && s.Value == want {
			out.Items = append(out.Items, it)
		}
	}
	return out, nil
}

func fptr(v float64) *float64 { return &v }

func TestProductDynamoRepository_RoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := NewProductDynamoRepository(newFakeDynamo("id"))
	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	p := entities.Product{
		ID: "p1", Slug: "stereo", Name: "Stereo", Category: "electronics",
		Price: 12499.5, DiscountPrice: fptr(10999), Stock: 3,
		Compatibility:        []entities.CompatibilityEntry{{Make: "Hyundai", Model: "Creta", Years: "2020-2024"}},
		InstallationOverride: &entities.InstallationOverride{IsAvailable: true, FlatRate: fptr(1200)},
		CreatedAt:            now, UpdatedAt: now,
	}
	_, err := repo.Upsert(ctx, p)
	require.NoError(t, err)

	got, err := repo.GetByID(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, p, got)

	missing, err := repo.GetByID(ctx, "nope")
	require.NoError(t, err)
	assert.Empty(t, missing.ID)

	list, err := repo.List(ctx, "")
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestProductItem_NoOverride(t *testing.T) {
	it := toProductItem(entities.Product{ID: "p", Price: 10})
	assert.False(t, it.HasOverride)
	assert.Nil(t, fromProductItem(it).InstallationOverride)
	assert.Nil(t, fromProductItem(it).DiscountPrice)

	disabled := toProductItem(entities.Product{ID: "p", InstallationOverride: &entities.InstallationOverride{IsAvailable: false}})
	o := fromProductItem(disabled).InstallationOverride
	require.NotNil(t, o)
	assert.False(t, o.IsAvailable)
	assert.Nil(t, o.FlatRate)
}

func TestCartDynamoRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("missing cart is empty", func(t *testing.T) {
		repo := NewCartDynamoRepository(newFakeDynamo("session_id"))
		c, err := repo.Get(ctx, "s1")
		require.NoError(t, err)
		assert.Equal(t, "s1", c.SessionID)
		assert.NotNil(t, c.Items)
		assert.Empty(t, c.Items)
	})

	t.Run("save then load", func(t *testing.T) {
		repo := NewCartDynamoRepository(newFakeDynamo("session_id"))
		in := entities.Cart{SessionID: "s1", Items: []entities.CartLineItem{
			{LineID: "p1", ProductID: "p1", Name: "A", Quantity: 2, Price: 100},
			{LineID: "p1#installed", ProductID: "p1", Name: "A", Quantity: 1, Price: 100, HasInstallation: true, InstallationCost: fptr(499)},
		}}
		require.NoError(t, repo.Save(ctx, in))

		out, err := repo.Get(ctx, "s1")
		require.NoError(t, err)
		assert.Equal(t, in.Items, out.Items)
		assert.Equal(t, 699.0, out.Total())
	})

	t.Run("malformed items degrade to empty cart", func(t *testing.T) {
		db := newFakeDynamo("session_id")
		db.items["s1"] = map[string]types.AttributeValue{
			"session_id": &types.AttributeValueMemberS{Value: "s1"},
			"items":      &types.AttributeValueMemberS{Value: "{not json"},
		}
		repo := NewCartDynamoRepository(db)
		c, err := repo.Get(ctx, "s1")
		require.NoError(t, err)
		assert.Empty(t, c.Items)
	})

	t.Run("client error is returned", func(t *testing.T) {
		db := newFakeDynamo("session_id")
		db.err = errors.New("boom")
		_, err := NewCartDynamoRepository(db).Get(ctx, "s1")
		assert.EqualError(t, err, "boom")
	})
}

func TestFromCartItem_DropsInvalidLines(t *testing.T) {
	c, err := fromCartItem(cartItem{SessionID: "s", Items: `[{"product_id":"p1","quantity":0},{"product_id":"","quantity":1},{"product_id":"p2","quantity":1,"has_installation":true}]`})
	require.NoError(t, err)
	require.Len(t, c.Items, 1)
	assert.Equal(t, "p2#installed", c.Items[0].LineID)
}

func TestGarageDynamoRepository(t *testing.T) {
	ctx := context.Background()
	db := newFakeDynamo("session_id")
	repo := NewGarageDynamoRepository(db)

	v, err := repo.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Nil(t, v)

	require.NoError(t, repo.Save(ctx, "s1", entities.VehicleSelection{ModelName: "Creta", Segment: entities.SegmentSUV}))
	v, err = repo.Get(ctx, "s1")
	require.NoError(t, err)
	require.NotNil(t, v)
	assert.Equal(t, "Creta", v.ModelName)
	assert.Equal(t, entities.SegmentSUV, v.Segment)

	db.items["s1"]["vehicle"] = &types.AttributeValueMemberS{Value: `{"model_name":"Creta","segment":"Tank"}`}
	v, err = repo.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Nil(t, v)

	require.NoError(t, repo.Delete(ctx, "s1"))
	assert.Empty(t, db.items)
}

func TestInstallationPanelDynamoRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewInstallationPanelDynamoRepository(newFakeDynamo("session_id", "product_id"))
	created := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	price := 899.5

	blank, err := repo.Get(ctx, "s1", "p1")
	require.NoError(t, err)
	assert.Equal(t, entities.InstallationPanel{SessionID: "s1", ProductID: "p1"}, blank)

	in := entities.InstallationPanel{
		SessionID:     "s1",
		ProductID:     "p1",
		ManualVehicle: &entities.VehicleSelection{ModelName: "Old | Classic", Segment: entities.SegmentSedan},
		Selecting:     true,
		Pending: &entities.PendingConfirmation{
			Token: "tok", Action: entities.ConfirmationActionAdd, Title: "t", Description: "d", CreatedAt: created,
			Vehicle: &entities.VehicleSelection{ModelName: "Creta", Segment: entities.SegmentSUV},
			Price:   &price,
		},
		UpdatedAt: created,
	}
	require.NoError(t, repo.Save(ctx, in))

	out, err := repo.Get(ctx, "s1", "p1")
	require.NoError(t, err)
	assert.Equal(t, in, out)

	other, err := repo.Get(ctx, "s1", "p2")
	require.NoError(t, err)
	assert.Nil(t, other.Pending)

	require.NoError(t, repo.Delete(ctx, "s1", "p1"))
	out, err = repo.Get(ctx, "s1", "p1")
	require.NoError(t, err)
	assert.Nil(t, out.ManualVehicle)
}

func TestParseManualVehicle(t *testing.T) {
	_, ok := parseManualVehicle("")
	assert.False(t, ok)
	_, ok = parseManualVehicle("Spaceship|X")
	assert.False(t, ok)
	_, ok = parseManualVehicle("SUV|  ")
	assert.False(t, ok)
	v, ok := parseManualVehicle("suv|Thar")
	assert.True(t, ok)
	assert.Equal(t, entities.VehicleSelection{ModelName: "Thar", Segment: entities.SegmentSUV}, v)
}

func TestOrderDynamoRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewOrderDynamoRepository(newFakeDynamo("id"))
	t0 := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	o1 := entities.Order{
		ID: "o1", SessionID: "s1", Total: 1598, Status: entities.OrderStatusPending,
		Items: []entities.OrderLine{
			{ProductID: "p1", Name: "A", Quantity: 1, Price: 1099, HasInstallation: true, InstallationCost: fptr(499)},
		},
		CreatedAt: t0, UpdatedAt: t0,
	}
	o2 := o1
	o2.ID = "o2"
	o2.CreatedAt = t0.Add(time.Hour)

	_, err := repo.Create(ctx, o1)
	require.NoError(t, err)
	_, err = repo.Create(ctx, o2)
	require.NoError(t, err)

	_, err = repo.Create(ctx, o1)
	var cfe *types.ConditionalCheckFailedException
	assert.ErrorAs(t, err, &cfe)

	got, err := repo.GetByID(ctx, "o1")
	require.NoError(t, err)
	assert.Equal(t, o1, got)

	list, err := repo.ListBySessionID(ctx, "s1")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "o2", list[0].ID)

	updated, err := repo.UpdateStatusByID(ctx, "o1", entities.OrderStatusPaid)
	require.NoError(t, err)
	assert.Equal(t, entities.OrderStatusPaid, updated.Status)

	missing, err := repo.UpdateStatusByID(ctx, "nope", entities.OrderStatusPaid)
	require.NoError(t, err)
	assert.Empty(t, missing.ID)
}

func TestPaymentDynamoRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewPaymentDynamoRepository(newFakeDynamo("id"))
	t0 := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	p := entities.Payment{
		ID: "pay-1", OrderID: "o1", Amount: 1598, Date: t0, Status: entities.PaymentStatusApproved,
		MPPayloadRaw: []byte(`{"status":"approved"}`),
		MPPayload:    map[string]interface{}{"status": "approved"},
	}
	_, err := repo.Create(ctx, p)
	require.NoError(t, err)

	got, err := repo.GetByID(ctx, "pay-1")
	require.NoError(t, err)
	assert.Equal(t, p.Amount, got.Amount)
	assert.Equal(t, "approved", got.MPPayload["status"])
	assert.JSONEq(t, `{"status":"approved"}`, string(got.MPPayloadRaw))

	list, err := repo.ListByOrderID(ctx, "o1")
	require.NoError(t, err)
	assert.Len(t, list, 1)

	list, err = repo.ListByOrderID(ctx, "o2")
	require.NoError(t, err)
	assert.Empty(t, list)
}
