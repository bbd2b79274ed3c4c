package services

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"restaurant-booking-api/internal/models"
	"restaurant-booking-api/internal/repositories"
)

// eventService implements EventService.
type eventService struct {
	events    repositories.EventRepository
	validator *validator.Validate
}

// NewEventService creates a new event service instance.
func NewEventService(events repositories.EventRepository) EventService {
	return &eventService{
		events:    events,
		validator: validator.New(),
	}
}

// Create validates the required fields, persists the event under a generated
// id and returns the created-event envelope.
func (s *eventService) Create(ctx context.Context, req *models.CreateEventRequest) (*models.CreateEventResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, WrapError(KindInvalidInput, "Missing required fields", err)
	}

	event := models.Event{
		ID:          uuid.NewString(),
		PrincipalID: *req.PrincipalID,
		CreatedAt:   time.Now().UTC().Format(time.RFC3339),
		Body:        req.Content,
	}

	if err := s.events.Put(ctx, event); err != nil {
		return nil, WrapError(KindUpstreamFailure, "Failed to store event: "+err.Error(), err)
	}

	logrus.WithFields(logrus.Fields{
		"eventId":     event.ID,
		"principalId": event.PrincipalID,
	}).Info("event stored")

	return &models.CreateEventResponse{StatusCode: 201, Event: event}, nil
}
