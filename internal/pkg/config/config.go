package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, upstream URL, etc.), security settings
// - default: Values common across all environments (timezone, timeout, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server  ServerConfig
	Booking BookingConfig
	CORS    CORSConfig
	Log     LogConfig
	JWT     JWTConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type BookingConfig struct {
	// Backend selects the upstream reservation client: "fake" keeps the
	// deterministic in-memory backend, "http" talks to the real API.
	Backend            string        `envconfig:"BOOKING_BACKEND" default:"fake"`
	UpstreamBaseURL    string        `envconfig:"BOOKING_UPSTREAM_BASE_URL" default:"http://localhost:8000/api/v1"`
	UpstreamTimeout    time.Duration `envconfig:"BOOKING_UPSTREAM_TIMEOUT" default:"5s"`
	SessionTTL         time.Duration `envconfig:"BOOKING_SESSION_TTL" default:"30m"`
	DefaultPartySize   int           `envconfig:"BOOKING_DEFAULT_PARTY_SIZE" default:"2"`
	DefaultTime        string        `envconfig:"BOOKING_DEFAULT_TIME" default:"19:00"`
	StrictAlternatives bool          `envconfig:"BOOKING_STRICT_ALTERNATIVES" default:"false"`
	TimeZone           string        `envconfig:"BOOKING_TIMEZONE" default:"Asia/Tokyo"`
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
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"Asia/Tokyo"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"32400"` // 9*60*60
}

type JWTConfig struct {
	Secret   string `envconfig:"JWT_SECRET" required:"true"`
	Duration string `envconfig:"JWT_DURATION" default:"24h"`
}

const (
	BackendFake = "fake"
	BackendHTTP = "http"
)

func (c *BookingConfig) ValidateBackend() error {
	switch c.Backend {
	case BackendFake, BackendHTTP:
		return nil
	default:
		return fmt.Errorf("unknown BOOKING_BACKEND %q (expected %q or %q)", c.Backend, BackendFake, BackendHTTP)
	}
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	if err := cfg.Booking.ValidateBackend(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		Booking: BookingConfig{
			Backend:          BackendFake,
			UpstreamBaseURL:  "http://localhost:18000/api/v1",
			UpstreamTimeout:  2 * time.Second,
			SessionTTL:       30 * time.Minute,
			DefaultPartySize: 2,
			DefaultTime:      "19:00",
			TimeZone:         "Asia/Tokyo",
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "Asia/Tokyo",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 32400,
		},
		JWT: JWTConfig{
			Secret:   "test-secret",
			Duration: "24h",
		},
		CORS: CORSConfig{
			AllowOrigins:     []string{"http://localhost:3000", "http://localhost:8080"},
			AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
			ExposeHeaders:    []string{"Content-Length"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		},
	}
}
