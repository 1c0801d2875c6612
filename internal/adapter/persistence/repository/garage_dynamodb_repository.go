package repository

import (
	"context"
	"encoding/json"
	"time"

	"auto_accessories/internal/domain/entities"
	"auto_accessories/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"go.uber.org/zap"
)

const defaultGaragesTableName = "garages"

type garageItem struct {
	SessionID string `dynamodbav:"session_id"`
	Vehicle   string `dynamodbav:"vehicle"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// GarageDynamoRepository keeps the session vehicle as one JSON attribute so the
// model name and segment are always written together.
//
// Table requirements:
//   - PK: session_id (string)
type GarageDynamoRepository struct {
	ddb       DynamoDBAPI
	tableName string
}

var _ interfaces.IGarageRepository = (*GarageDynamoRepository)(nil)

func NewGarageDynamoRepository(ddb DynamoDBAPI) *GarageDynamoRepository {
	return &GarageDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("GARAGES_TABLE", defaultGaragesTableName),
	}
}

func (r *GarageDynamoRepository) Get(ctx context.Context, sessionID string) (*entities.VehicleSelection, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"session_id": &types.AttributeValueMemberS{Value: sessionID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, err
	}
	if len(out.Item) == 0 {
		return nil, nil
	}
	var it garageItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		zap.L().Warn("garage.load unreadable record", zap.String("session_id", sessionID), zap.Error(err))
		return nil, nil
	}
	v, ok := vehicleFromJSON(it.Vehicle)
	if !ok {
		zap.L().Warn("garage.load malformed vehicle", zap.String("session_id", sessionID))
		return nil, nil
	}
	return v, nil
}

func (r *GarageDynamoRepository) Save(ctx context.Context, sessionID string, v entities.VehicleSelection) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	av, err := attributevalue.MarshalMap(garageItem{
		SessionID: sessionID,
		Vehicle:   string(b),
		UpdatedAt: formatTime(time.Now()),
	})
	if err != nil {
		return err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	return err
}

func (r *GarageDynamoRepository) Delete(ctx context.Context, sessionID string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"session_id": &types.AttributeValueMemberS{Value: sessionID},
		},
	})
	return err
}

// vehicleFromJSON rejects records that do not hold a complete, known vehicle.
func vehicleFromJSON(raw string) (*entities.VehicleSelection, bool) {
	if raw == "" {
		return nil, false
	}
	var v entities.VehicleSelection
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		return nil, false
	}
	seg, ok := entities.ParseVehicleSegment(string(v.Segment))
	if !ok {
		return nil, false
	}
	sel, err := entities.NewVehicleSelection(v.ModelName, seg)
	if err != nil {
		return nil, false
	}
	return &sel, true
}
