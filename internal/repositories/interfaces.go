// Package repositories defines the persistence gateway interfaces the domain
// services depend on. Implementations live in the dynamo and memory
// subpackages; services never touch a concrete store directly.
package repositories

import (
	"context"

	"restaurant-booking-api/internal/models"
)

// TableRepository persists table records keyed by string id.
type TableRepository interface {
	// List scans every table record.
	List(ctx context.Context) ([]models.TableRecord, error)

	// GetByID fetches one record; absent records yield ErrNotFound.
	GetByID(ctx context.Context, id string) (*models.TableRecord, error)

	// Put stores a record unconditionally.
	Put(ctx context.Context, record models.TableRecord) error
}

// ReservationRepository persists reservation records.
type ReservationRepository interface {
	// List scans every reservation record.
	List(ctx context.Context) ([]models.Reservation, error)

	// Put stores a record unconditionally.
	Put(ctx context.Context, reservation models.Reservation) error
}

// EventRepository persists captured client events.
type EventRepository interface {
	Put(ctx context.Context, event models.Event) error
}

// AuditRepository persists configuration change audit records.
type AuditRepository interface {
	Put(ctx context.Context, record models.AuditRecord) error
}

// ForecastRepository persists fetched weather forecasts.
type ForecastRepository interface {
	Put(ctx context.Context, record models.ForecastRecord) error
}
