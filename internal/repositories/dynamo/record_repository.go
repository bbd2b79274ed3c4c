package dynamo

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"

	"restaurant-booking-api/internal/models"
	"restaurant-booking-api/internal/repositories"
)

// EventRepository stores captured events.
type EventRepository struct {
	client    *dynamodb.Client
	tableName string
}

// NewEventRepository creates an event repository bound to the given table.
func NewEventRepository(client *dynamodb.Client, tableName string) *EventRepository {
	return &EventRepository{client: client, tableName: tableName}
}

// Put stores an event record.
func (r *EventRepository) Put(ctx context.Context, event models.Event) error {
	return putRecord(ctx, r.client, r.tableName, "event", event.ID, event)
}

// AuditRepository stores configuration change audit records.
type AuditRepository struct {
	client    *dynamodb.Client
	tableName string
}

// NewAuditRepository creates an audit repository bound to the given table.
func NewAuditRepository(client *dynamodb.Client, tableName string) *AuditRepository {
	return &AuditRepository{client: client, tableName: tableName}
}

// Put stores an audit record.
func (r *AuditRepository) Put(ctx context.Context, record models.AuditRecord) error {
	return putRecord(ctx, r.client, r.tableName, "audit", record.ID, record)
}

// ForecastRepository stores fetched weather forecasts.
type ForecastRepository struct {
	client    *dynamodb.Client
	tableName string
}

// NewForecastRepository creates a forecast repository bound to the given table.
func NewForecastRepository(client *dynamodb.Client, tableName string) *ForecastRepository {
	return &ForecastRepository{client: client, tableName: tableName}
}

// Put stores a forecast record.
func (r *ForecastRepository) Put(ctx context.Context, record models.ForecastRecord) error {
	return putRecord(ctx, r.client, r.tableName, "forecast", record.ID, record)
}

func putRecord(ctx context.Context, client *dynamodb.Client, tableName, entity, key string, record any) error {
	item, err := attributevalue.MarshalMap(record)
	if err != nil {
		return repositories.NewRepositoryError("marshal", entity, key, err)
	}

	_, err = client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(tableName),
		Item:      item,
	})
	if err != nil {
		return repositories.NewRepositoryError("put", entity, key, err)
	}
	return nil
}
