package main

import (
	"context"

	"github.com/aws/aws-lambda-go/events"
	awslambda "github.com/aws/aws-lambda-go/lambda"
	"github.com/sirupsen/logrus"

	"restaurant-booking-api/internal/config"
)

func init() {
	config.SetupLogging("")
}

type result struct {
	StatusCode int    `json:"statusCode"`
	Body       string `json:"body"`
}

func handler(ctx context.Context, event events.SNSEvent) (result, error) {
	for _, record := range event.Records {
		logrus.WithFields(logrus.Fields{
			"message_id": record.SNS.MessageID,
			"topic_arn":  record.SNS.TopicArn,
		}).Info(record.SNS.Message)
	}
	return result{StatusCode: 200, Body: "SNS messages processed successfully"}, nil
}

func main() {
	awslambda.Start(handler)
}
