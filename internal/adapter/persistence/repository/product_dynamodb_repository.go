package repository

import (
	"context"

	"auto_accessories/internal/domain/entities"
	"auto_accessories/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultProductsTableName = "products"

type compatibilityItem struct {
	Make  string `dynamodbav:"make"`
	Model string `dynamodbav:"model"`
	Years string `dynamodbav:"years,omitempty"`
}

type productItem struct {
	ID                   string              `dynamodbav:"id"`
	Slug                 string              `dynamodbav:"slug"`
	Name                 string              `dynamodbav:"name"`
	Image                string              `dynamodbav:"image,omitempty"`
	Category             string              `dynamodbav:"category"`
	Price                string              `dynamodbav:"price"`
	DiscountPrice        string              `dynamodbav:"discount_price,omitempty"`
	Stock                int                 `dynamodbav:"stock"`
	Compatibility        []compatibilityItem `dynamodbav:"compatibility,omitempty"`
	IsUniversal          bool                `dynamodbav:"is_universal"`
	HasOverride          bool                `dynamodbav:"installation_override"`
	InstallationOffered  bool                `dynamodbav:"installation_available"`
	InstallationFlatRate string              `dynamodbav:"installation_flat_rate,omitempty"`
	CreatedAt            string              `dynamodbav:"created_at"`
	UpdatedAt            string              `dynamodbav:"updated_at"`
}

// ProductDynamoRepository persists the catalog in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
type ProductDynamoRepository struct {
	ddb       DynamoDBAPI
	tableName string
}

var _ interfaces.IProductRepository = (*ProductDynamoRepository)(nil)

func NewProductDynamoRepository(ddb DynamoDBAPI) *ProductDynamoRepository {
	return &ProductDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PRODUCTS_TABLE", defaultProductsTableName),
	}
}

func (r *ProductDynamoRepository) GetByID(ctx context.Context, id string) (entities.Product, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	if err != nil {
		return entities.Product{}, err
	}
	if len(out.Item) == 0 {
		return entities.Product{}, nil
	}
	var it productItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Product{}, err
	}
	return fromProductItem(it), nil
}

// List scans the table; category narrows the scan with a filter.
func (r *ProductDynamoRepository) List(ctx context.Context, category string) ([]entities.Product, error) {
	in := &dynamodb.ScanInput{TableName: aws.String(r.tableName)}
	if category != "" {
		in.FilterExpression = aws.String("#category = :category")
		in.ExpressionAttributeNames = map[string]string{"#category": "category"}
		in.ExpressionAttributeValues = map[string]types.AttributeValue{
			":category": &types.AttributeValueMemberS{Value: category},
		}
	}

	products := []entities.Product{}
	p := dynamodb.NewScanPaginator(r.ddb, in)
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range page.Items {
			var it productItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			products = append(products, fromProductItem(it))
		}
	}
	return products, nil
}

func (r *ProductDynamoRepository) Upsert(ctx context.Context, p entities.Product) (entities.Product, error) {
	av, err := attributevalue.MarshalMap(toProductItem(p))
	if err != nil {
		return entities.Product{}, err
	}
	if _, err := r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	}); err != nil {
		return entities.Product{}, err
	}
	return p, nil
}

func toProductItem(p entities.Product) productItem {
	it := productItem{
		ID:            p.ID,
		Slug:          p.Slug,
		Name:          p.Name,
		Image:         p.Image,
		Category:      p.Category,
		Price:         floatToString(p.Price),
		DiscountPrice: floatPtrToString(p.DiscountPrice),
		Stock:         p.Stock,
		IsUniversal:   p.IsUniversal,
		CreatedAt:     formatTime(p.CreatedAt),
		UpdatedAt:     formatTime(p.UpdatedAt),
	}
	for _, c := range p.Compatibility {
		it.Compatibility = append(it.Compatibility, compatibilityItem(c))
	}
	if o := p.InstallationOverride; o != nil {
		it.HasOverride = true
		it.InstallationOffered = o.IsAvailable
		it.InstallationFlatRate = floatPtrToString(o.FlatRate)
	}
	return it
}

func fromProductItem(it productItem) entities.Product {
	p := entities.Product{
		ID:            it.ID,
		Slug:          it.Slug,
		Name:          it.Name,
		Image:         it.Image,
		Category:      it.Category,
		Price:         parseFloat(it.Price),
		DiscountPrice: parseFloatPtr(it.DiscountPrice),
		Stock:         it.Stock,
		IsUniversal:   it.IsUniversal,
		CreatedAt:     parseTime(it.CreatedAt),
		UpdatedAt:     parseTime(it.UpdatedAt),
	}
	for _, c := range it.Compatibility {
		p.Compatibility = append(p.Compatibility, entities.CompatibilityEntry(c))
	}
	if it.HasOverride {
		p.InstallationOverride = &entities.InstallationOverride{
			IsAvailable: it.InstallationOffered,
			FlatRate:    parseFloatPtr(it.InstallationFlatRate),
		}
	}
	return p
}
