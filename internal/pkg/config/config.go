package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, upstream URLs)
// - default: Values common across all environments (timeouts, timezone)
// -----------------------------------------------------------------------------

type Config struct {
	Server     ServerConfig
	Catalog    CatalogConfig
	Scheduling SchedulingConfig
	Submission SubmissionConfig
	Booking    BookingConfig
	CORS       CORSConfig
	Log        LogConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

// CatalogConfig points at the club/venue catalog service.
type CatalogConfig struct {
	BaseURL string        `envconfig:"CATALOG_BASE_URL" required:"true"`
	Timeout time.Duration `envconfig:"CATALOG_TIMEOUT" default:"5s"`
}

// SchedulingConfig points at the scheduling authority holding existing bookings.
type SchedulingConfig struct {
	BaseURL string        `envconfig:"SCHEDULING_BASE_URL" required:"true"`
	Timeout time.Duration `envconfig:"SCHEDULING_TIMEOUT" default:"5s"`
}

type SubmissionConfig struct {
	BaseURL string        `envconfig:"SUBMISSION_BASE_URL" required:"true"`
	Timeout time.Duration `envconfig:"SUBMISSION_TIMEOUT" default:"10s"`
}

type BookingConfig struct {
	// Local time zone in which draft dates and wall-clock times are interpreted
	// when building absolute instants for the conflict query and submission.
	TimeZone string `envconfig:"BOOKING_TIMEZONE" default:"Asia/Kolkata"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level string `envconfig:"LOG_LEVEL" default:"info"`
}

func (c *BookingConfig) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.TimeZone)
	if err != nil {
		return nil, fmt.Errorf("invalid booking timezone %q: %w", c.TimeZone, err)
	}
	return loc, nil
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		Catalog: CatalogConfig{
			BaseURL: "http://localhost:18081",
			Timeout: time.Second,
		},
		Scheduling: SchedulingConfig{
			BaseURL: "http://localhost:18082",
			Timeout: time.Second,
		},
		Submission: SubmissionConfig{
			BaseURL: "http://localhost:18083",
			Timeout: time.Second,
		},
		Booking: BookingConfig{
			TimeZone: "UTC",
		},
		Log: LogConfig{
			Level: "error", // Error level only for tests
		},
	}
}
