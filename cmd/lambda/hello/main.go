package main

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/aws/aws-lambda-go/events"
	awslambda "github.com/aws/aws-lambda-go/lambda"
)

type message struct {
	StatusCode int    `json:"statusCode"`
	Message    string `json:"message"`
}

func respond(statusCode int, msg string) events.APIGatewayProxyResponse {
	body, _ := json.Marshal(message{StatusCode: statusCode, Message: msg})
	return events.APIGatewayProxyResponse{
		StatusCode: statusCode,
		Headers:    map[string]string{"Content-Type": "application/json"},
		Body:       string(body),
	}
}

func handler(ctx context.Context, event events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	if event.Path == "/hello" && event.HTTPMethod == "GET" {
		return respond(200, "Hello from Lambda"), nil
	}
	return respond(400, fmt.Sprintf(
		"Bad request syntax or unsupported method. Request path: %s. HTTP method: %s",
		event.Path, event.HTTPMethod,
	)), nil
}

func main() {
	awslambda.Start(handler)
}
