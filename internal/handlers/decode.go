package handlers

import (
	"encoding/json"

	"restaurant-booking-api/internal/router"
	"restaurant-booking-api/internal/services"
)

// decodeBody parses a JSON request body into a typed request, converting
// decode failures into invalid-input errors that name the offending field
// where the decoder identifies one.
func decodeBody(req *router.Request, dst any) error {
	if len(req.Body) == 0 {
		return services.NewError(services.KindInvalidInput, "Invalid request body")
	}

	if err := json.Unmarshal(req.Body, dst); err != nil {
		if typeErr, ok := err.(*json.UnmarshalTypeError); ok && typeErr.Field != "" {
			return services.Errorf(services.KindInvalidInput, "Missing or invalid field: %s", typeErr.Field)
		}
		return services.WrapError(services.KindInvalidInput, "Invalid request body", err)
	}
	return nil
}

// bodyHasField reports whether the raw JSON body carries the named
// top-level field.
func bodyHasField(req *router.Request, field string) bool {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(req.Body, &raw); err != nil {
		return false
	}
	_, ok := raw[field]
	return ok
}
