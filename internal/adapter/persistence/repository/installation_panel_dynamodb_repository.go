package repository

import (
	"context"
	"strings"

	"auto_accessories/internal/domain/entities"
	"auto_accessories/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"go.uber.org/zap"
)

const defaultInstallationPanelsTableName = "installation_panels"

type pendingItem struct {
	Token       string `dynamodbav:"token"`
	Action      string `dynamodbav:"action"`
	Title       string `dynamodbav:"title"`
	Description string `dynamodbav:"description"`
	Vehicle     string `dynamodbav:"vehicle,omitempty"`
	Price       string `dynamodbav:"price,omitempty"`
	CreatedAt   string `dynamodbav:"created_at"`
}

type installationPanelItem struct {
	SessionID     string       `dynamodbav:"session_id"`
	ProductID     string       `dynamodbav:"product_id"`
	ManualVehicle string       `dynamodbav:"manual_vehicle,omitempty"`
	Selecting     bool         `dynamodbav:"selecting"`
	Pending       *pendingItem `dynamodbav:"pending,omitempty"`
	UpdatedAt     string       `dynamodbav:"updated_at"`
}

// InstallationPanelDynamoRepository persists per-product installation panels.
//
// Table requirements:
//   - PK: session_id (string)
//   - SK: product_id (string)
type InstallationPanelDynamoRepository struct {
	ddb       DynamoDBAPI
	tableName string
}

var _ interfaces.IInstallationPanelRepository = (*InstallationPanelDynamoRepository)(nil)

func NewInstallationPanelDynamoRepository(ddb DynamoDBAPI) *InstallationPanelDynamoRepository {
	return &InstallationPanelDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("INSTALLATION_PANELS_TABLE", defaultInstallationPanelsTableName),
	}
}

func panelKey(sessionID, productID string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"session_id": &types.AttributeValueMemberS{Value: sessionID},
		"product_id": &types.AttributeValueMemberS{Value: productID},
	}
}

func (r *InstallationPanelDynamoRepository) Get(ctx context.Context, sessionID, productID string) (entities.InstallationPanel, error) {
	blank := entities.InstallationPanel{SessionID: sessionID, ProductID: productID}
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            panelKey(sessionID, productID),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.InstallationPanel{}, err
	}
	if len(out.Item) == 0 {
		return blank, nil
	}
	var it installationPanelItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		zap.L().Warn("installation.panel unreadable record",
			zap.String("session_id", sessionID),
			zap.String("product_id", productID),
			zap.Error(err),
		)
		return blank, nil
	}
	return fromInstallationPanelItem(it), nil
}

func (r *InstallationPanelDynamoRepository) Save(ctx context.Context, p entities.InstallationPanel) error {
	av, err := attributevalue.MarshalMap(toInstallationPanelItem(p))
	if err != nil {
		return err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	return err
}

func (r *InstallationPanelDynamoRepository) Delete(ctx context.Context, sessionID, productID string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key:       panelKey(sessionID, productID),
	})
	return err
}

func toInstallationPanelItem(p entities.InstallationPanel) installationPanelItem {
	it := installationPanelItem{
		SessionID: p.SessionID,
		ProductID: p.ProductID,
		Selecting: p.Selecting,
		UpdatedAt: formatTime(p.UpdatedAt),
	}
	it.ManualVehicle = formatVehicle(p.ManualVehicle)
	if p.Pending != nil {
		it.Pending = &pendingItem{
			Token:       p.Pending.Token,
			Action:      string(p.Pending.Action),
			Title:       p.Pending.Title,
			Description: p.Pending.Description,
			Vehicle:     formatVehicle(p.Pending.Vehicle),
			Price:       floatPtrToString(p.Pending.Price),
			CreatedAt:   formatTime(p.Pending.CreatedAt),
		}
	}
	return it
}

func fromInstallationPanelItem(it installationPanelItem) entities.InstallationPanel {
	p := entities.InstallationPanel{
		SessionID: it.SessionID,
		ProductID: it.ProductID,
		Selecting: it.Selecting,
		UpdatedAt: parseTime(it.UpdatedAt),
	}
	if v, ok := parseManualVehicle(it.ManualVehicle); ok {
		p.ManualVehicle = &v
	}
	if it.Pending != nil && entities.ConfirmationAction(it.Pending.Action).IsValid() && it.Pending.Token != "" {
		p.Pending = &entities.PendingConfirmation{
			Token:       it.Pending.Token,
			Action:      entities.ConfirmationAction(it.Pending.Action),
			Title:       it.Pending.Title,
			Description: it.Pending.Description,
			Price:       parseFloatPtr(it.Pending.Price),
			CreatedAt:   parseTime(it.Pending.CreatedAt),
		}
		if v, ok := parseManualVehicle(it.Pending.Vehicle); ok {
			p.Pending.Vehicle = &v
		}
	}
	return p
}

func formatVehicle(v *entities.VehicleSelection) string {
	if v == nil {
		return ""
	}
	return string(v.Segment) + "|" + v.ModelName
}

// parseManualVehicle reads the "segment|model name" encoding.
func parseManualVehicle(raw string) (entities.VehicleSelection, bool) {
	segment, name, found := strings.Cut(raw, "|")
	if !found {
		return entities.VehicleSelection{}, false
	}
	seg, ok := entities.ParseVehicleSegment(segment)
	if !ok {
		return entities.VehicleSelection{}, false
	}
	v, err := entities.NewVehicleSelection(name, seg)
	return v, err == nil
}
