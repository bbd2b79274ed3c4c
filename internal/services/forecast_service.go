package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"restaurant-booking-api/internal/models"
	"restaurant-booking-api/internal/repositories"
)

// forecastService implements ForecastService for a fixed coordinate pair.
type forecastService struct {
	fetcher   ForecastFetcher
	forecasts repositories.ForecastRepository
	latitude  float64
	longitude float64
}

// NewForecastService creates a new forecast service instance.
func NewForecastService(fetcher ForecastFetcher, forecasts repositories.ForecastRepository, latitude, longitude float64) ForecastService {
	return &forecastService{
		fetcher:   fetcher,
		forecasts: forecasts,
		latitude:  latitude,
		longitude: longitude,
	}
}

// Process fetches the forecast for the configured coordinates and persists
// it under a generated id.
func (s *forecastService) Process(ctx context.Context) (string, error) {
	forecast, err := s.fetcher.FetchForecast(ctx, s.latitude, s.longitude)
	if err != nil {
		return "", WrapError(KindUpstreamFailure, "Error processing weather data: "+err.Error(), err)
	}

	record := models.ForecastRecord{
		ID:       uuid.NewString(),
		Forecast: *forecast,
	}
	if err := s.forecasts.Put(ctx, record); err != nil {
		return "", WrapError(KindUpstreamFailure, "Error processing weather data: "+err.Error(), err)
	}

	logrus.WithFields(logrus.Fields{
		"forecastId": record.ID,
		"latitude":   s.latitude,
		"longitude":  s.longitude,
	}).Info("forecast stored")

	return "Weather forecast successfully saved", nil
}
