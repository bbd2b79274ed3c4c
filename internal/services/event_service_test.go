package services

import (
	"context"
	"testing"

	"restaurant-booking-api/internal/models"
	"restaurant-booking-api/internal/repositories/memory"
)

func TestEventServiceCreate(t *testing.T) {
	repo := memory.NewEventRepository()
	service := NewEventService(repo)

	req := &models.CreateEventRequest{
		PrincipalID: intPtr(42),
		Content:     map[string]string{"name": "click", "page": "home"},
	}

	result, err := service.Create(context.Background(), req)
	if err != nil {
		t.Fatalf("Create() unexpected error: %v", err)
	}
	if result.StatusCode != 201 {
		t.Errorf("Create() statusCode = %d, want 201", result.StatusCode)
	}
	if result.Event.ID == "" {
		t.Error("Create() returned empty event id")
	}
	if result.Event.PrincipalID != 42 {
		t.Errorf("Create() principalId = %d, want 42", result.Event.PrincipalID)
	}
	if result.Event.CreatedAt == "" {
		t.Error("Create() returned empty createdAt")
	}
	if result.Event.Body["name"] != "click" {
		t.Errorf("Create() body = %v, want content echoed", result.Event.Body)
	}

	if len(repo.Events) != 1 {
		t.Fatalf("repository holds %d events, want 1", len(repo.Events))
	}
	if repo.Events[0].ID != result.Event.ID {
		t.Error("stored event id does not match returned event")
	}
}

func TestEventServiceCreateMissingFields(t *testing.T) {
	tests := []struct {
		name string
		req  *models.CreateEventRequest
	}{
		{"missing principalId", &models.CreateEventRequest{Content: map[string]string{"k": "v"}}},
		{"missing content", &models.CreateEventRequest{PrincipalID: intPtr(1)}},
		{"empty request", &models.CreateEventRequest{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewEventService(memory.NewEventRepository())

			_, err := service.Create(context.Background(), tt.req)
			if err == nil {
				t.Fatal("Create() expected error, got nil")
			}
			if err.Error() != "Missing required fields" {
				t.Errorf("Create() error = %q, want %q", err.Error(), "Missing required fields")
			}
			if kind, ok := KindOf(err); !ok || kind != KindInvalidInput {
				t.Errorf("Create() error kind = %v, want KindInvalidInput", kind)
			}
		})
	}
}
