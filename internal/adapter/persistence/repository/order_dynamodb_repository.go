package repository

import (
	"context"
	"errors"
	"sort"
	"time"

	"auto_accessories/internal/domain/entities"
	"auto_accessories/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultOrdersTableName = "orders"
	ordersSessionIDIndex   = "session_id-index"
)

type orderLineItem struct {
	ProductID        string `dynamodbav:"product_id"`
	Name             string `dynamodbav:"name"`
	Quantity         int    `dynamodbav:"quantity"`
	Price            string `dynamodbav:"price"`
	HasInstallation  bool   `dynamodbav:"has_installation"`
	InstallationCost string `dynamodbav:"installation_cost,omitempty"`
}

type orderItem struct {
	ID        string          `dynamodbav:"id"`
	SessionID string          `dynamodbav:"session_id"`
	Items     []orderLineItem `dynamodbav:"items"`
	Total     string          `dynamodbav:"total"`
	Status    string          `dynamodbav:"status"`
	CreatedAt string          `dynamodbav:"created_at"`
	UpdatedAt string          `dynamodbav:"updated_at"`
}

// OrderDynamoRepository persists Order entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: session_id-index (PK: session_id)
type OrderDynamoRepository struct {
	ddb       DynamoDBAPI
	tableName string
}

var _ interfaces.IOrderRepository = (*OrderDynamoRepository)(nil)

func NewOrderDynamoRepository(ddb DynamoDBAPI) *OrderDynamoRepository {
	return &OrderDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ORDERS_TABLE", defaultOrdersTableName),
	}
}

func (r *OrderDynamoRepository) Create(ctx context.Context, o entities.Order) (entities.Order, error) {
	av, err := attributevalue.MarshalMap(toOrderItem(o))
	if err != nil {
		return entities.Order{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Order{}, err
	}
	return o, nil
}

func (r *OrderDynamoRepository) GetByID(ctx context.Context, id string) (entities.Order, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Order{}, err
	}
	if len(out.Item) == 0 {
		return entities.Order{}, nil
	}

	var it orderItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Order{}, err
	}
	return fromOrderItem(it), nil
}

// ListBySessionID returns the newest orders first.
func (r *OrderDynamoRepository) ListBySessionID(ctx context.Context, sessionID string) ([]entities.Order, error) {
	p := dynamodb.NewQueryPaginator(r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(ordersSessionIDIndex),
		KeyConditionExpression: aws.String("session_id = :sid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":sid": &types.AttributeValueMemberS{Value: sessionID},
		},
	})

	orders := []entities.Order{}
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range page.Items {
			var it orderItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			orders = append(orders, fromOrderItem(it))
		}
	}
	sort.Slice(orders, func(i, j int) bool { return orders[i].CreatedAt.After(orders[j].CreatedAt) })
	return orders, nil
}

func (r *OrderDynamoRepository) UpdateStatusByID(ctx context.Context, id string, status entities.OrderStatus) (entities.Order, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #status = :status, #updated_at = :updated_at"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status":     &types.AttributeValueMemberS{Value: string(status)},
			":updated_at": &types.AttributeValueMemberS{Value: formatTime(time.Now())},
		},
		ExpressionAttributeNames: mergeNames(map[string]string{
			"#status":     "status",
			"#updated_at": "updated_at",
		}, map[string]string{"#id": "id"}),
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Order{}, nil
		}
		return entities.Order{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Order{}, nil
	}
	var it orderItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Order{}, err
	}
	return fromOrderItem(it), nil
}

func toOrderItem(o entities.Order) orderItem {
	lines := make([]orderLineItem, 0, len(o.Items))
	for _, l := range o.Items {
		lines = append(lines, orderLineItem{
			ProductID:        l.ProductID,
			Name:             l.Name,
			Quantity:         l.Quantity,
			Price:            floatToString(l.Price),
			HasInstallation:  l.HasInstallation,
			InstallationCost: floatPtrToString(l.InstallationCost),
		})
	}
	return orderItem{
		ID:        o.ID,
		SessionID: o.SessionID,
		Items:     lines,
		Total:     floatToString(o.Total),
		Status:    string(o.Status),
		CreatedAt: formatTime(o.CreatedAt),
		UpdatedAt: formatTime(o.UpdatedAt),
	}
}

func fromOrderItem(it orderItem) entities.Order {
	lines := make([]entities.OrderLine, 0, len(it.Items))
	for _, l := range it.Items {
		lines = append(lines, entities.OrderLine{
			ProductID:        l.ProductID,
			Name:             l.Name,
			Quantity:         l.Quantity,
			Price:            parseFloat(l.Price),
			HasInstallation:  l.HasInstallation,
			InstallationCost: parseFloatPtr(l.InstallationCost),
		})
	}
	return entities.Order{
		ID:        it.ID,
		SessionID: it.SessionID,
		Items:     lines,
		Total:     parseFloat(it.Total),
		Status:    entities.OrderStatus(it.Status),
		CreatedAt: parseTime(it.CreatedAt),
		UpdatedAt: parseTime(it.UpdatedAt),
	}
}
