package dynamo

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"restaurant-booking-api/internal/models"
	"restaurant-booking-api/internal/repositories"
)

// TableRepository stores table records in a DynamoDB table keyed by the
// string attribute "id".
type TableRepository struct {
	client    *dynamodb.Client
	tableName string
}

// NewTableRepository creates a table repository bound to the given table.
func NewTableRepository(client *dynamodb.Client, tableName string) *TableRepository {
	return &TableRepository{client: client, tableName: tableName}
}

// List scans the full table.
func (r *TableRepository) List(ctx context.Context) ([]models.TableRecord, error) {
	var records []models.TableRecord

	paginator := dynamodb.NewScanPaginator(r.client, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, repositories.NewRepositoryError("scan", "table", "", err)
		}

		var pageRecords []models.TableRecord
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &pageRecords); err != nil {
			return nil, repositories.NewRepositoryError("unmarshal", "table", "", err)
		}
		records = append(records, pageRecords...)
	}

	return records, nil
}

// GetByID fetches a single record by its string id.
func (r *TableRepository) GetByID(ctx context.Context, id string) (*models.TableRecord, error) {
	out, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	if err != nil {
		return nil, repositories.NewRepositoryError("get", "table", id, err)
	}
	if out.Item == nil {
		return nil, repositories.NewRepositoryError("get", "table", id, repositories.ErrNotFound)
	}

	var record models.TableRecord
	if err := attributevalue.UnmarshalMap(out.Item, &record); err != nil {
		return nil, repositories.NewRepositoryError("unmarshal", "table", id, err)
	}
	return &record, nil
}

// Put stores a record unconditionally.
func (r *TableRepository) Put(ctx context.Context, record models.TableRecord) error {
	item, err := attributevalue.MarshalMap(record)
	if err != nil {
		return repositories.NewRepositoryError("marshal", "table", record.ID, err)
	}

	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      item,
	})
	if err != nil {
		return repositories.NewRepositoryError("put", "table", record.ID, err)
	}
	return nil
}
