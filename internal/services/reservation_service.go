package services

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"restaurant-booking-api/internal/models"
	"restaurant-booking-api/internal/repositories"
)

// reservationService implements ReservationService over the reservation and
// table repositories.
type reservationService struct {
	reservations repositories.ReservationRepository
	tables       repositories.TableRepository
	validator    *validator.Validate
}

// NewReservationService creates a new reservation service instance.
func NewReservationService(reservations repositories.ReservationRepository, tables repositories.TableRepository) ReservationService {
	return &reservationService{
		reservations: reservations,
		tables:       tables,
		validator:    validator.New(),
	}
}

// ListAll scans and returns every stored reservation verbatim.
func (s *reservationService) ListAll(ctx context.Context) (*models.ReservationListResponse, error) {
	reservations, err := s.reservations.List(ctx)
	if err != nil {
		return nil, WrapError(KindUpstreamFailure, "Failed to list reservations: "+err.Error(), err)
	}
	if reservations == nil {
		reservations = []models.Reservation{}
	}
	return &models.ReservationListResponse{Reservations: reservations}, nil
}

// Create checks that the referenced table number exists, scans existing
// reservations for a same-table same-date slot overlap and persists the
// record under a generated id.
//
// The existence check, the overlap scan and the write are not transactional:
// two concurrent creates for the same table and date can both pass the scan
// before either write lands. This matches the documented default behavior;
// see DESIGN.md for the decision not to close the race.
func (s *reservationService) Create(ctx context.Context, req *models.CreateReservationRequest) (*models.CreateReservationResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, WrapError(KindInvalidInput, "Missing required reservation fields: "+err.Error(), err)
	}

	tables, err := s.tables.List(ctx)
	if err != nil {
		return nil, WrapError(KindUpstreamFailure, "Failed to verify table: "+err.Error(), err)
	}

	tableExists := false
	for _, table := range tables {
		if table.Number == *req.TableNumber {
			tableExists = true
			break
		}
	}
	if !tableExists {
		return nil, NewError(KindNotFound, "Table not found")
	}

	existing, err := s.reservations.List(ctx)
	if err != nil {
		return nil, WrapError(KindUpstreamFailure, "Failed to check reservations: "+err.Error(), err)
	}

	for _, reservation := range existing {
		if reservation.TableNumber != *req.TableNumber || reservation.Date != req.Date {
			continue
		}

		overlaps, err := models.SlotsOverlap(
			req.SlotTimeStart, req.SlotTimeEnd,
			reservation.SlotTimeStart, reservation.SlotTimeEnd,
		)
		if err != nil {
			return nil, WrapError(KindInvalidInput, "Invalid slot time: "+err.Error(), err)
		}
		if overlaps {
			return nil, NewError(KindConflict, "Reservation overlaps with an existing reservation")
		}
	}

	reservation := models.Reservation{
		ID:            uuid.NewString(),
		TableNumber:   *req.TableNumber,
		ClientName:    req.ClientName,
		PhoneNumber:   req.PhoneNumber,
		Date:          req.Date,
		SlotTimeStart: req.SlotTimeStart,
		SlotTimeEnd:   req.SlotTimeEnd,
	}

	if err := s.reservations.Put(ctx, reservation); err != nil {
		return nil, WrapError(KindUpstreamFailure, "Failed to create reservation: "+err.Error(), err)
	}

	logrus.WithFields(logrus.Fields{
		"reservationId": reservation.ID,
		"tableNumber":   reservation.TableNumber,
		"date":          reservation.Date,
	}).Info("reservation created")

	return &models.CreateReservationResponse{ReservationID: reservation.ID}, nil
}
