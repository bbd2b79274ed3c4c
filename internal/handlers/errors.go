package handlers

import (
	"restaurant-booking-api/internal/router"
	"restaurant-booking-api/internal/services"
)

// MapError is the single boundary translating service failures into
// responses. Unclassified errors fall back to the catch-all shape.
func MapError(err error) *router.Response {
	if kind, ok := services.KindOf(err); ok {
		return router.NewResponse(statusFor(kind), err.Error())
	}
	return router.NewResponse(400, "Error: "+err.Error())
}

// statusFor maps error kinds to status codes. The booking API deliberately
// collapses client errors, domain violations and provider failures into 400
// rather than 404/409/502; preserved for wire compatibility.
func statusFor(kind services.Kind) int {
	switch kind {
	case services.KindInvalidInput:
		return 400
	case services.KindNotFound:
		return 400
	case services.KindConflict:
		return 400
	case services.KindUpstreamFailure:
		return 400
	default:
		return 400
	}
}
