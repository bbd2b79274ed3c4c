package main

import (
	"context"
	"log"
	"strconv"

	"github.com/aws/aws-lambda-go/events"
	awslambda "github.com/aws/aws-lambda-go/lambda"
	"github.com/sirupsen/logrus"

	"restaurant-booking-api/internal/config"
	"restaurant-booking-api/internal/repositories/dynamo"
	"restaurant-booking-api/internal/services"
)

var auditService services.AuditService

func init() {
	cfg, err := config.Load()
	if err != nil {
		log.Panicf("Failed to load configuration: %v", err)
	}
	config.SetupLogging(cfg.Environment)

	tableName, err := config.RequireTable("AUDIT_TABLE", cfg.Tables.Audit)
	if err != nil {
		log.Panicf("Configuration error: %v", err)
	}

	client, err := dynamo.NewClient(context.Background(), dynamo.ClientConfig{
		Region:    cfg.AWS.Region,
		Endpoint:  cfg.AWS.DynamoEndpoint,
		AccessKey: cfg.AWS.AccessKey,
		SecretKey: cfg.AWS.SecretKey,
	})
	if err != nil {
		log.Panicf("Failed to create DynamoDB client: %v", err)
	}

	auditService = services.NewAuditService(dynamo.NewAuditRepository(client, tableName))
}

// intAttribute reads a numeric stream attribute, returning nil when the
// attribute is absent from the image.
func intAttribute(image map[string]events.DynamoDBAttributeValue, name string) *int {
	attr, ok := image[name]
	if !ok || attr.DataType() != events.DataTypeNumber {
		return nil
	}
	value, err := strconv.Atoi(attr.Number())
	if err != nil {
		return nil
	}
	return &value
}

func handler(ctx context.Context, event events.DynamoDBEvent) error {
	for _, record := range event.Records {
		keyAttr, ok := record.Change.Keys["key"]
		if !ok {
			logrus.WithField("event_id", record.EventID).Warn("Stream record without key attribute, skipping")
			continue
		}

		change := services.ConfigurationChange{
			EventName: record.EventName,
			ItemKey:   keyAttr.String(),
			OldValue:  intAttribute(record.Change.OldImage, "value"),
			NewValue:  intAttribute(record.Change.NewImage, "value"),
		}

		if err := auditService.RecordChange(ctx, change); err != nil {
			logrus.WithError(err).WithField("item_key", change.ItemKey).Error("Failed to record audit entry")
			return err
		}
	}
	return nil
}

func main() {
	awslambda.Start(handler)
}
