package main

import (
	"context"

	"github.com/aws/aws-lambda-go/events"
	awslambda "github.com/aws/aws-lambda-go/lambda"

	"restaurant-booking-api/internal/config"
	"restaurant-booking-api/internal/router"
	"restaurant-booking-api/pkg/server"
)

var container *server.Container

func init() {
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}
	config.SetupLogging(cfg.Environment)

	container, err = server.NewContainer(context.Background(), cfg)
	if err != nil {
		panic("Failed to initialize container: " + err.Error())
	}
}

// handler normalizes the API Gateway event, dispatches it through the route
// table and returns the response verbatim. Path parameters are already
// extracted by the gateway; the route key uses the resource template string.
func handler(ctx context.Context, event events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	req := &router.Request{
		Resource:        event.Resource,
		Method:          event.HTTPMethod,
		Body:            []byte(event.Body),
		PathParameters:  event.PathParameters,
		QueryParameters: event.QueryStringParameters,
		Headers:         event.Headers,
	}

	resp := container.Router.Dispatch(ctx, req)

	return events.APIGatewayProxyResponse{
		StatusCode: resp.StatusCode,
		Headers:    resp.Headers,
		Body:       resp.Body,
	}, nil
}

func main() {
	awslambda.Start(handler)
}
