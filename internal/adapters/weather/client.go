// Package weather is a thin client for the open-meteo forecast API.
package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"golang.org/x/time/rate"

	"restaurant-booking-api/internal/models"
)

// DefaultBaseURL is the public open-meteo forecast endpoint.
const DefaultBaseURL = "https://api.open-meteo.com/v1/forecast"

// Client fetches forecasts. Outbound calls are rate-limited to stay polite
// toward the public API; each call is attempted exactly once.
type Client struct {
	httpClient *http.Client
	baseURL    string
	limiter    *rate.Limiter
}

// NewClient creates a Client. An empty baseURL selects the public endpoint;
// requestsPerSecond <= 0 disables the limiter.
func NewClient(baseURL string, requestsPerSecond float64) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	var limiter *rate.Limiter
	if requestsPerSecond > 0 {
		limiter = rate.NewLimiter(rate.Limit(requestsPerSecond), 1)
	}

	return &Client{
		httpClient: http.DefaultClient,
		baseURL:    baseURL,
		limiter:    limiter,
	}
}

// FetchRaw returns the forecast document for the coordinates verbatim.
func (c *Client) FetchRaw(ctx context.Context, latitude, longitude float64) ([]byte, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("rate limiter wait: %w", err)
		}
	}

	params := url.Values{}
	params.Set("latitude", fmt.Sprintf("%.4f", latitude))
	params.Set("longitude", fmt.Sprintf("%.4f", longitude))
	params.Set("current", "temperature_2m,wind_speed_10m")
	params.Set("hourly", "temperature_2m,relative_humidity_2m,wind_speed_10m")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("build forecast request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch forecast: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read forecast response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch forecast: unexpected status %d", resp.StatusCode)
	}

	return body, nil
}

// FetchForecast returns the forecast decoded into the persisted subset.
func (c *Client) FetchForecast(ctx context.Context, latitude, longitude float64) (*models.Forecast, error) {
	body, err := c.FetchRaw(ctx, latitude, longitude)
	if err != nil {
		return nil, err
	}

	var forecast models.Forecast
	if err := json.Unmarshal(body, &forecast); err != nil {
		return nil, fmt.Errorf("decode forecast response: %w", err)
	}
	return &forecast, nil
}
