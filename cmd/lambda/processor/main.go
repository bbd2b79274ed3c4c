package main

import (
	"context"
	"log"

	awslambda "github.com/aws/aws-lambda-go/lambda"
	"github.com/sirupsen/logrus"

	"restaurant-booking-api/internal/adapters/weather"
	"restaurant-booking-api/internal/config"
	"restaurant-booking-api/internal/repositories/dynamo"
	"restaurant-booking-api/internal/services"
)

var forecastService services.ForecastService

func init() {
	cfg, err := config.Load()
	if err != nil {
		log.Panicf("Failed to load configuration: %v", err)
	}
	config.SetupLogging(cfg.Environment)

	tableName, err := config.RequireTable("FORECASTS_TABLE", cfg.Tables.Forecasts)
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

	fetcher := weather.NewClient(cfg.Weather.BaseURL, cfg.Weather.RequestsPerSecond)
	repo := dynamo.NewForecastRepository(client, tableName)
	forecastService = services.NewForecastService(fetcher, repo, cfg.Weather.Latitude, cfg.Weather.Longitude)
}

type response struct {
	StatusCode int    `json:"statusCode"`
	Body       string `json:"body"`
}

func handler(ctx context.Context) (response, error) {
	message, err := forecastService.Process(ctx)
	if err != nil {
		logrus.WithError(err).Error("Forecast processing failed")
		return response{StatusCode: 500, Body: err.Error()}, nil
	}
	return response{StatusCode: 200, Body: message}, nil
}

func main() {
	awslambda.Start(handler)
}
