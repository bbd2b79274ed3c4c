package handlers

import (
	"context"

	"restaurant-booking-api/internal/router"
	"restaurant-booking-api/internal/services"
)

// ForecastSource abstracts the outbound weather client for the pass-through
// route.
type ForecastSource interface {
	FetchRaw(ctx context.Context, latitude, longitude float64) ([]byte, error)
}

// WeatherHandler serves the forecast pass-through for a fixed coordinate
// pair.
type WeatherHandler struct {
	source    ForecastSource
	latitude  float64
	longitude float64
}

// NewWeatherHandler creates a new weather handler.
func NewWeatherHandler(source ForecastSource, latitude, longitude float64) *WeatherHandler {
	return &WeatherHandler{source: source, latitude: latitude, longitude: longitude}
}

// HandleGet handles GET /weather, returning the upstream forecast document
// verbatim.
func (h *WeatherHandler) HandleGet(ctx context.Context, req *router.Request) (*router.Response, error) {
	body, err := h.source.FetchRaw(ctx, h.latitude, h.longitude)
	if err != nil {
		return nil, services.WrapError(services.KindUpstreamFailure, "Failed to fetch weather data", err)
	}
	return router.NewResponse(200, string(body)), nil
}
