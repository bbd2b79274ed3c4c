// Package memory provides in-memory repository implementations for tests and
// the local development server. The implementations are safe for concurrent
// use but hold no state beyond the process lifetime.
package memory

import (
	"context"
	"sync"

	"restaurant-booking-api/internal/models"
	"restaurant-booking-api/internal/repositories"
)

// TableRepository is an in-memory TableRepository.
type TableRepository struct {
	mu      sync.RWMutex
	records map[string]models.TableRecord
}

// NewTableRepository creates an empty in-memory table repository.
func NewTableRepository() *TableRepository {
	return &TableRepository{records: make(map[string]models.TableRecord)}
}

// List returns every stored record in unspecified order.
func (r *TableRepository) List(ctx context.Context) ([]models.TableRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	records := make([]models.TableRecord, 0, len(r.records))
	for _, record := range r.records {
		records = append(records, record)
	}
	return records, nil
}

// GetByID returns one record or ErrNotFound.
func (r *TableRepository) GetByID(ctx context.Context, id string) (*models.TableRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	record, ok := r.records[id]
	if !ok {
		return nil, repositories.NewRepositoryError("get", "table", id, repositories.ErrNotFound)
	}
	return &record, nil
}

// Put stores a record, overwriting any existing one with the same id.
func (r *TableRepository) Put(ctx context.Context, record models.TableRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.records[record.ID] = record
	return nil
}

// ReservationRepository is an in-memory ReservationRepository.
type ReservationRepository struct {
	mu      sync.RWMutex
	records map[string]models.Reservation
}

// NewReservationRepository creates an empty in-memory reservation repository.
func NewReservationRepository() *ReservationRepository {
	return &ReservationRepository{records: make(map[string]models.Reservation)}
}

// List returns every stored record in unspecified order.
func (r *ReservationRepository) List(ctx context.Context) ([]models.Reservation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	reservations := make([]models.Reservation, 0, len(r.records))
	for _, record := range r.records {
		reservations = append(reservations, record)
	}
	return reservations, nil
}

// Put stores a record keyed by its id.
func (r *ReservationRepository) Put(ctx context.Context, reservation models.Reservation) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.records[reservation.ID] = reservation
	return nil
}

// EventRepository is an in-memory EventRepository.
type EventRepository struct {
	mu     sync.Mutex
	Events []models.Event
}

// NewEventRepository creates an empty in-memory event repository.
func NewEventRepository() *EventRepository {
	return &EventRepository{}
}

// Put appends an event record.
func (r *EventRepository) Put(ctx context.Context, event models.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.Events = append(r.Events, event)
	return nil
}

// AuditRepository is an in-memory AuditRepository.
type AuditRepository struct {
	mu      sync.Mutex
	Records []models.AuditRecord
}

// NewAuditRepository creates an empty in-memory audit repository.
func NewAuditRepository() *AuditRepository {
	return &AuditRepository{}
}

// Put appends an audit record.
func (r *AuditRepository) Put(ctx context.Context, record models.AuditRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.Records = append(r.Records, record)
	return nil
}

// ForecastRepository is an in-memory ForecastRepository.
type ForecastRepository struct {
	mu      sync.Mutex
	Records []models.ForecastRecord
}

// NewForecastRepository creates an empty in-memory forecast repository.
func NewForecastRepository() *ForecastRepository {
	return &ForecastRepository{}
}

// Put appends a forecast record.
func (r *ForecastRepository) Put(ctx context.Context, record models.ForecastRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.Records = append(r.Records, record)
	return nil
}
