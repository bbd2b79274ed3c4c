package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/aws/aws-lambda-go/events"
	awslambda "github.com/aws/aws-lambda-go/lambda"
	"github.com/sirupsen/logrus"

	"restaurant-booking-api/internal/config"
	"restaurant-booking-api/internal/models"
	"restaurant-booking-api/internal/repositories/dynamo"
	"restaurant-booking-api/internal/services"
)

var eventService services.EventService

func init() {
	cfg, err := config.Load()
	if err != nil {
		log.Panicf("Failed to load configuration: %v", err)
	}
	config.SetupLogging(cfg.Environment)

	tableName, err := config.RequireTable("EVENTS_TABLE", cfg.Tables.Events)
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

	repo := dynamo.NewEventRepository(client, tableName)
	eventService = services.NewEventService(repo)
}

func errorResponse(statusCode int, message string) events.APIGatewayV2HTTPResponse {
	body, _ := json.Marshal(map[string]string{"error": message})
	return events.APIGatewayV2HTTPResponse{
		StatusCode: statusCode,
		Headers:    map[string]string{"Content-Type": "application/json"},
		Body:       string(body),
	}
}

func handler(ctx context.Context, event events.APIGatewayV2HTTPRequest) (events.APIGatewayV2HTTPResponse, error) {
	var req models.CreateEventRequest
	if err := json.Unmarshal([]byte(event.Body), &req); err != nil {
		return errorResponse(400, "Missing required fields"), nil
	}

	result, err := eventService.Create(ctx, &req)
	if err != nil {
		if kind, ok := services.KindOf(err); ok && kind == services.KindInvalidInput {
			return errorResponse(400, "Missing required fields"), nil
		}
		logrus.WithError(err).Error("Failed to create event")
		return errorResponse(500, fmt.Sprintf("Failed to save event: %v", err)), nil
	}

	body, err := json.Marshal(result)
	if err != nil {
		return errorResponse(500, fmt.Sprintf("Failed to serialize response: %v", err)), nil
	}

	return events.APIGatewayV2HTTPResponse{
		StatusCode: 201,
		Headers:    map[string]string{"Content-Type": "application/json"},
		Body:       string(body),
	}, nil
}

func main() {
	awslambda.Start(handler)
}
