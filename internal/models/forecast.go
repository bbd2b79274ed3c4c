package models

// Forecast is the subset of the open-meteo forecast document this system
// persists. The upstream response carries more hourly series; only time and
// temperature are kept.
type Forecast struct {
	Latitude             float64             `json:"latitude" dynamodbav:"latitude"`
	Longitude            float64             `json:"longitude" dynamodbav:"longitude"`
	Elevation            float64             `json:"elevation" dynamodbav:"elevation"`
	GenerationTimeMS     float64             `json:"generationtime_ms" dynamodbav:"generationtime_ms"`
	UTCOffsetSeconds     int                 `json:"utc_offset_seconds" dynamodbav:"utc_offset_seconds"`
	Timezone             string              `json:"timezone" dynamodbav:"timezone"`
	TimezoneAbbreviation string              `json:"timezone_abbreviation" dynamodbav:"timezone_abbreviation"`
	Hourly               ForecastHourly      `json:"hourly" dynamodbav:"hourly"`
	HourlyUnits          ForecastHourlyUnits `json:"hourly_units" dynamodbav:"hourly_units"`
}

// ForecastHourly holds the hourly series kept from the forecast.
type ForecastHourly struct {
	Time          []string  `json:"time" dynamodbav:"time"`
	Temperature2M []float64 `json:"temperature_2m" dynamodbav:"temperature_2m"`
}

// ForecastHourlyUnits names the units of the kept hourly series.
type ForecastHourlyUnits struct {
	Time          string `json:"time" dynamodbav:"time"`
	Temperature2M string `json:"temperature_2m" dynamodbav:"temperature_2m"`
}

// ForecastRecord is the persisted form of a fetched forecast.
type ForecastRecord struct {
	ID       string   `json:"id" dynamodbav:"id"`
	Forecast Forecast `json:"forecast" dynamodbav:"forecast"`
}
