// Package server wires the booking API dependency graph: gateways,
// services and the route table, selected by configuration.
package server

import (
	"context"
	"fmt"

	"restaurant-booking-api/internal/adapters/identity"
	"restaurant-booking-api/internal/adapters/weather"
	"restaurant-booking-api/internal/config"
	"restaurant-booking-api/internal/handlers"
	"restaurant-booking-api/internal/repositories"
	"restaurant-booking-api/internal/repositories/dynamo"
	"restaurant-booking-api/internal/repositories/memory"
	"restaurant-booking-api/internal/router"
	"restaurant-booking-api/internal/services"
)

// Container holds the booking API dependencies.
type Container struct {
	Config             *config.Config
	AuthService        services.AuthService
	TableService       services.TableService
	ReservationService services.ReservationService
	Weather            *weather.Client
	Router             *router.Router
}

// NewContainer builds the dependency graph once at process start. In
// development mode the container uses in-memory repositories and the fake
// identity provider; otherwise it connects DynamoDB and Cognito.
func NewContainer(ctx context.Context, cfg *config.Config) (*Container, error) {
	var (
		tableRepo       repositories.TableRepository
		reservationRepo repositories.ReservationRepository
		provider        identity.Provider
	)

	if cfg.IsDevelopment() {
		tableRepo = memory.NewTableRepository()
		reservationRepo = memory.NewReservationRepository()
		provider = identity.NewFakeProvider()
	} else {
		tablesTable, err := config.RequireTable("TABLES_TABLE", cfg.Tables.Tables)
		if err != nil {
			return nil, err
		}
		reservationsTable, err := config.RequireTable("RESERVATIONS_TABLE", cfg.Tables.Reservations)
		if err != nil {
			return nil, err
		}

		client, err := dynamo.NewClient(ctx, dynamo.ClientConfig{
			Region:    cfg.AWS.Region,
			Endpoint:  cfg.AWS.DynamoEndpoint,
			AccessKey: cfg.AWS.AccessKey,
			SecretKey: cfg.AWS.SecretKey,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create document store client: %w", err)
		}
		tableRepo = dynamo.NewTableRepository(client, tablesTable)
		reservationRepo = dynamo.NewReservationRepository(client, reservationsTable)

		provider, err = identity.NewCognitoProvider(ctx, identity.CognitoConfig{
			Region:     cfg.AWS.Region,
			UserPoolID: cfg.Cognito.UserPoolID,
			ClientID:   cfg.Cognito.ClientID,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create identity provider: %w", err)
		}
	}

	weatherClient := weather.NewClient(cfg.Weather.BaseURL, cfg.Weather.RequestsPerSecond)

	container := &Container{
		Config:             cfg,
		AuthService:        services.NewAuthService(provider),
		TableService:       services.NewTableService(tableRepo),
		ReservationService: services.NewReservationService(reservationRepo, tableRepo),
		Weather:            weatherClient,
	}

	container.Router = handlers.NewRouter(&handlers.RouterConfig{
		AuthService:        container.AuthService,
		TableService:       container.TableService,
		ReservationService: container.ReservationService,
		Weather:            weatherClient,
		WeatherLatitude:    cfg.Weather.Latitude,
		WeatherLongitude:   cfg.Weather.Longitude,
	})

	return container, nil
}
