// Package config loads configuration from environment variables, with .env
// support for local development. All table names, the bucket and the user
// pool identifiers are environment-supplied; nothing is hardcoded.
package config

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
type Config struct {
	Environment string
	Port        string
	AWS         AWSConfig
	Cognito     CognitoConfig
	Tables      TablesConfig
	Storage     StorageConfig
	Weather     WeatherConfig
	Auth        AuthConfig
}

// AWSConfig holds region and optional local-endpoint settings.
type AWSConfig struct {
	Region         string
	DynamoEndpoint string // non-empty selects a local DynamoDB endpoint
	AccessKey      string
	SecretKey      string
}

// CognitoConfig identifies the user pool the auth routes operate on.
type CognitoConfig struct {
	UserPoolID string
	ClientID   string
}

// TablesConfig names the document-store tables.
type TablesConfig struct {
	Tables       string
	Reservations string
	Events       string
	Audit        string
	Forecasts    string
}

// StorageConfig holds object storage configuration.
type StorageConfig struct {
	Bucket string
}

// WeatherConfig holds the outbound forecast client settings.
type WeatherConfig struct {
	BaseURL           string
	Latitude          float64
	Longitude         float64
	RequestsPerSecond float64
}

// AuthConfig holds the optional bearer-token guard settings.
type AuthConfig struct {
	VerifyTokens bool
}

// Load loads configuration from environment variables and an optional .env
// file.
func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	viper.AutomaticEnv()
	viper.SetDefault("ENVIRONMENT", "development")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("REGION", "eu-central-1")
	viper.SetDefault("WEATHER_BASE_URL", "")
	viper.SetDefault("WEATHER_LATITUDE", 50.4375)
	viper.SetDefault("WEATHER_LONGITUDE", 30.5)
	viper.SetDefault("WEATHER_REQUESTS_PER_SECOND", 1.0)
	viper.SetDefault("AUTH_VERIFY_TOKENS", false)

	config := &Config{
		Environment: viper.GetString("ENVIRONMENT"),
		Port:        viper.GetString("PORT"),
		AWS: AWSConfig{
			Region:         viper.GetString("REGION"),
			DynamoEndpoint: viper.GetString("DYNAMODB_ENDPOINT"),
			AccessKey:      viper.GetString("AWS_ACCESS_KEY_ID"),
			SecretKey:      viper.GetString("AWS_SECRET_ACCESS_KEY"),
		},
		Cognito: CognitoConfig{
			UserPoolID: viper.GetString("COGNITO_ID"),
			ClientID:   viper.GetString("CLIENT_ID"),
		},
		Tables: TablesConfig{
			Tables:       viper.GetString("TABLES_TABLE"),
			Reservations: viper.GetString("RESERVATIONS_TABLE"),
			Events:       viper.GetString("EVENTS_TABLE"),
			Audit:        viper.GetString("AUDIT_TABLE"),
			Forecasts:    viper.GetString("FORECASTS_TABLE"),
		},
		Storage: StorageConfig{
			Bucket: viper.GetString("TARGET_BUCKET"),
		},
		Weather: WeatherConfig{
			BaseURL:           viper.GetString("WEATHER_BASE_URL"),
			Latitude:          viper.GetFloat64("WEATHER_LATITUDE"),
			Longitude:         viper.GetFloat64("WEATHER_LONGITUDE"),
			RequestsPerSecond: viper.GetFloat64("WEATHER_REQUESTS_PER_SECOND"),
		},
		Auth: AuthConfig{
			VerifyTokens: viper.GetBool("AUTH_VERIFY_TOKENS"),
		},
	}

	return config, nil
}

// IsDevelopment reports whether the local development stack (in-memory
// repositories, fake identity provider) should be used.
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development" && !IsRunningInLambda()
}

// RequireTable returns the named table or an error when it is unset.
func RequireTable(name, value string) (string, error) {
	if value == "" {
		return "", fmt.Errorf("required table name %s is not configured", name)
	}
	return value, nil
}
