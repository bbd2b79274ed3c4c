// Package services holds the domain services sitting between the route
// handlers and the gateways. Services enforce the domain rules (validation
// order, uniqueness, slot overlap) and classify every failure with a Kind so
// the boundary can map it to a status code.
package services

import (
	"context"

	"restaurant-booking-api/internal/models"
)

// AuthService handles account signup and signin against the identity
// provider.
type AuthService interface {
	// SignUp registers an account and returns a confirmation message.
	// An already-registered email is not an error: the password is updated
	// and a distinguishing message returned.
	SignUp(ctx context.Context, req *models.SignUpRequest) (string, error)

	// SignIn authenticates and returns the identity token.
	SignIn(ctx context.Context, req *models.SignInRequest) (*models.SignInResponse, error)
}

// TableService manages table records.
type TableService interface {
	// ListAll returns every table projected to its public shape, sorted by
	// id ascending.
	ListAll(ctx context.Context) (*models.TableListResponse, error)

	// Create persists a caller-keyed table record.
	Create(ctx context.Context, req *models.CreateTableRequest) (*models.CreateTableResponse, error)

	// GetByID returns one table projected to its public shape.
	GetByID(ctx context.Context, id string) (*models.Table, error)
}

// ReservationService manages reservation records and the slot-overlap rule.
type ReservationService interface {
	// ListAll returns every stored reservation verbatim.
	ListAll(ctx context.Context) (*models.ReservationListResponse, error)

	// Create validates table existence and slot overlap, then persists a
	// reservation under a generated id.
	Create(ctx context.Context, req *models.CreateReservationRequest) (*models.CreateReservationResponse, error)
}

// EventService persists captured client events.
type EventService interface {
	Create(ctx context.Context, req *models.CreateEventRequest) (*models.CreateEventResponse, error)
}

// ConfigurationChange describes one observed change on the audited
// configuration table.
type ConfigurationChange struct {
	EventName string // "INSERT" or "MODIFY"
	ItemKey   string
	OldValue  *int
	NewValue  *int
}

// AuditService turns configuration changes into persisted audit records.
type AuditService interface {
	RecordChange(ctx context.Context, change ConfigurationChange) error
}

// ForecastFetcher abstracts the outbound weather client for testability.
type ForecastFetcher interface {
	FetchForecast(ctx context.Context, latitude, longitude float64) (*models.Forecast, error)
}

// ForecastService fetches and persists weather forecasts.
type ForecastService interface {
	// Process fetches the configured coordinates' forecast, persists it and
	// returns a confirmation message.
	Process(ctx context.Context) (string, error)
}
