package weather

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

const forecastDocument = `{
	"latitude": 50.4375,
	"longitude": 30.5,
	"timezone": "GMT",
	"hourly": {"time": ["2026-08-28T00:00"], "temperature_2m": [21.3]},
	"hourly_units": {"time": "iso8601", "temperature_2m": "°C"}
}`

func TestClientFetchRaw(t *testing.T) {
	var gotQuery map[string]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = map[string]string{}
		for key := range r.URL.Query() {
			gotQuery[key] = r.URL.Query().Get(key)
		}
		w.Write([]byte(forecastDocument))
	}))
	defer server.Close()

	client := NewClient(server.URL, 0)
	body, err := client.FetchRaw(context.Background(), 50.4375, 30.5)
	if err != nil {
		t.Fatalf("FetchRaw() unexpected error: %v", err)
	}
	if string(body) != forecastDocument {
		t.Error("FetchRaw() did not return the upstream document verbatim")
	}

	wantQuery := map[string]string{
		"latitude":  "50.4375",
		"longitude": "30.5000",
		"current":   "temperature_2m,wind_speed_10m",
		"hourly":    "temperature_2m,relative_humidity_2m,wind_speed_10m",
	}
	for key, want := range wantQuery {
		if gotQuery[key] != want {
			t.Errorf("query %s = %q, want %q", key, gotQuery[key], want)
		}
	}
}

func TestClientFetchRawUpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "service unavailable", http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := NewClient(server.URL, 0)
	if _, err := client.FetchRaw(context.Background(), 50.4375, 30.5); err == nil {
		t.Error("FetchRaw() expected error for non-200 status, got nil")
	}
}

func TestClientFetchForecast(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(forecastDocument))
	}))
	defer server.Close()

	client := NewClient(server.URL, 0)
	forecast, err := client.FetchForecast(context.Background(), 50.4375, 30.5)
	if err != nil {
		t.Fatalf("FetchForecast() unexpected error: %v", err)
	}
	if forecast.Latitude != 50.4375 {
		t.Errorf("forecast latitude = %v, want 50.4375", forecast.Latitude)
	}
	if len(forecast.Hourly.Temperature2M) != 1 || forecast.Hourly.Temperature2M[0] != 21.3 {
		t.Errorf("forecast hourly temperatures = %v, want [21.3]", forecast.Hourly.Temperature2M)
	}
}

func TestNewClientDefaultBaseURL(t *testing.T) {
	client := NewClient("", 1)
	if client.baseURL != DefaultBaseURL {
		t.Errorf("baseURL = %q, want %q", client.baseURL, DefaultBaseURL)
	}
}
