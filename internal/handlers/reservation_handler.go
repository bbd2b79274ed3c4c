package handlers

import (
	"context"

	"restaurant-booking-api/internal/models"
	"restaurant-booking-api/internal/router"
	"restaurant-booking-api/internal/services"
)

// ReservationHandler handles the reservation routes.
type ReservationHandler struct {
	reservationService services.ReservationService
}

// NewReservationHandler creates a new reservation handler.
func NewReservationHandler(reservationService services.ReservationService) *ReservationHandler {
	return &ReservationHandler{reservationService: reservationService}
}

// HandleList handles GET /reservations.
func (h *ReservationHandler) HandleList(ctx context.Context, req *router.Request) (*router.Response, error) {
	result, err := h.reservationService.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return router.NewResponse(200, result), nil
}

// HandleCreate handles POST /reservations.
func (h *ReservationHandler) HandleCreate(ctx context.Context, req *router.Request) (*router.Response, error) {
	var body models.CreateReservationRequest
	if err := decodeBody(req, &body); err != nil {
		return nil, err
	}

	result, err := h.reservationService.Create(ctx, &body)
	if err != nil {
		return nil, err
	}
	return router.NewResponse(200, result), nil
}
