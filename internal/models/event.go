package models

// Event is a captured client event persisted by the event-capture handler.
type Event struct {
	ID          string            `json:"id" dynamodbav:"id"`
	PrincipalID int               `json:"principalId" dynamodbav:"principalId"`
	CreatedAt   string            `json:"createdAt" dynamodbav:"createdAt"`
	Body        map[string]string `json:"body" dynamodbav:"body"`
}

// CreateEventRequest is the request body for the event-capture handler.
type CreateEventRequest struct {
	PrincipalID *int              `json:"principalId" validate:"required"`
	Content     map[string]string `json:"content" validate:"required"`
}

// CreateEventResponse is the created-event envelope returned to the caller.
type CreateEventResponse struct {
	StatusCode int   `json:"statusCode"`
	Event      Event `json:"event"`
}
