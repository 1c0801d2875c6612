package repository

import (
	"context"
	"encoding/json"

	"auto_accessories/internal/domain/entities"
	"auto_accessories/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"go.uber.org/zap"
)

const defaultCartsTableName = "carts"

type cartItem struct {
	SessionID string `dynamodbav:"session_id"`
	Items     string `dynamodbav:"items"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// CartDynamoRepository persists session carts in DynamoDB.
//
// Table requirements:
//   - PK: session_id (string)
//
// The whole line list is written as a single JSON string so a save replaces
// the cart atomically.
type CartDynamoRepository struct {
	ddb       DynamoDBAPI
	tableName string
}

var _ interfaces.ICartRepository = (*CartDynamoRepository)(nil)

func NewCartDynamoRepository(ddb DynamoDBAPI) *CartDynamoRepository {
	return &CartDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("CARTS_TABLE", defaultCartsTableName),
	}
}

func (r *CartDynamoRepository) Get(ctx context.Context, sessionID string) (entities.Cart, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"session_id": &types.AttributeValueMemberS{Value: sessionID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Cart{}, err
	}
	empty := entities.Cart{SessionID: sessionID, Items: []entities.CartLineItem{}}
	if len(out.Item) == 0 {
		return empty, nil
	}

	var it cartItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		zap.L().Warn("cart.load unreadable record", zap.String("session_id", sessionID), zap.Error(err))
		return empty, nil
	}
	c, err := fromCartItem(it)
	if err != nil {
		zap.L().Warn("cart.load malformed items", zap.String("session_id", sessionID), zap.Error(err))
		return empty, nil
	}
	return c, nil
}

func (r *CartDynamoRepository) Save(ctx context.Context, c entities.Cart) error {
	it, err := toCartItem(c)
	if err != nil {
		return err
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	return err
}

func toCartItem(c entities.Cart) (cartItem, error) {
	items := c.Items
	if items == nil {
		items = []entities.CartLineItem{}
	}
	b, err := json.Marshal(items)
	if err != nil {
		return cartItem{}, err
	}
	return cartItem{
		SessionID: c.SessionID,
		Items:     string(b),
		UpdatedAt: formatTime(c.UpdatedAt),
	}, nil
}

func fromCartItem(it cartItem) (entities.Cart, error) {
	c := entities.Cart{SessionID: it.SessionID, Items: []entities.CartLineItem{}, UpdatedAt: parseTime(it.UpdatedAt)}
	if it.Items == "" {
		return c, nil
	}
	var items []entities.CartLineItem
	if err := json.Unmarshal([]byte(it.Items), &items); err != nil {
		return entities.Cart{}, err
	}
	for _, line := range items {
		if line.ProductID == "" || line.Quantity < 1 {
			continue
		}
		line.LineID = entities.LineIDFor(line.ProductID, line.HasInstallation)
		c.Items = append(c.Items, line)
	}
	return c, nil
}
