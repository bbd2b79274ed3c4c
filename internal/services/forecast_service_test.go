package services

import (
	"context"
	"errors"
	"testing"

	"restaurant-booking-api/internal/models"
	"restaurant-booking-api/internal/repositories/memory"
)

type stubFetcher struct {
	forecast *models.Forecast
	err      error
}

func (f *stubFetcher) FetchForecast(ctx context.Context, latitude, longitude float64) (*models.Forecast, error) {
	return f.forecast, f.err
}

func TestForecastServiceProcess(t *testing.T) {
	repo := memory.NewForecastRepository()
	fetcher := &stubFetcher{forecast: &models.Forecast{Latitude: 50.4375, Longitude: 30.5}}
	service := NewForecastService(fetcher, repo, 50.4375, 30.5)

	message, err := service.Process(context.Background())
	if err != nil {
		t.Fatalf("Process() unexpected error: %v", err)
	}
	if message != "Weather forecast successfully saved" {
		t.Errorf("Process() message = %q, want success confirmation", message)
	}

	if len(repo.Records) != 1 {
		t.Fatalf("repository holds %d records, want 1", len(repo.Records))
	}
	if repo.Records[0].ID == "" {
		t.Error("stored forecast record has empty id")
	}
	if repo.Records[0].Forecast.Latitude != 50.4375 {
		t.Errorf("stored latitude = %v, want 50.4375", repo.Records[0].Forecast.Latitude)
	}
}

func TestForecastServiceProcessFetchFailure(t *testing.T) {
	repo := memory.NewForecastRepository()
	fetcher := &stubFetcher{err: errors.New("upstream timeout")}
	service := NewForecastService(fetcher, repo, 50.4375, 30.5)

	_, err := service.Process(context.Background())
	if err == nil {
		t.Fatal("Process() expected error, got nil")
	}
	if err.Error() != "Error processing weather data: upstream timeout" {
		t.Errorf("Process() error = %q, want wrapped upstream message", err.Error())
	}
	if kind, ok := KindOf(err); !ok || kind != KindUpstreamFailure {
		t.Errorf("Process() error kind = %v, want KindUpstreamFailure", kind)
	}
	if len(repo.Records) != 0 {
		t.Error("failed fetch must not persist a record")
	}
}
