package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"
)

// Config represents the full application configuration surface.
type Config struct {
	Server   ServerConfig
	Weather  WeatherConfig
	Sessions SessionConfig
	Digest   DigestConfig
	LogLevel string
}

// ServerConfig holds HTTP server related options.
type ServerConfig struct {
	Port string
}

// WeatherConfig describes the forecast endpoint and the fixed location it is asked about.
type WeatherConfig struct {
	BaseURL         string
	Latitude        float64
	Longitude       float64
	Timezone        string
	TemperatureUnit string
	Timeout         time.Duration
}

// SessionConfig controls how long an idle trip log survives.
type SessionConfig struct {
	TTL time.Duration
}

// DigestConfig holds scheduler-related settings. An empty CronSchedule disables the digest.
type DigestConfig struct {
	CronSchedule string
	Timezone     string
}

// Load reads environment variables (optionally from the provided file) and
// materializes a Config instance.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			if !errors.Is(err, os.ErrNotExist) {
				return nil, fmt.Errorf("failed loading env file %s: %w", envFile, err)
			}
		}
	} else {
		// Missing .env files are acceptable when configuration comes from the
		// environment directly.
		_ = godotenv.Load()
	}

	var errs []error

	cfg := &Config{
		Server: ServerConfig{
			Port: getenvWithDefault("APP_PORT", "8080"),
		},
		Weather: WeatherConfig{
			BaseURL:         getenvWithDefault("WEATHER_BASE_URL", "https://api.open-meteo.com/v1"),
			Latitude:        parseFloat("WEATHER_LATITUDE", 34.1336, &errs),
			Longitude:       parseFloat("WEATHER_LONGITUDE", -117.9076, &errs),
			Timezone:        getenvWithDefault("WEATHER_TIMEZONE", "auto"),
			TemperatureUnit: getenvWithDefault("WEATHER_TEMPERATURE_UNIT", "fahrenheit"),
			Timeout:         parseDuration("WEATHER_TIMEOUT", 15*time.Second, &errs),
		},
		Sessions: SessionConfig{
			TTL: parseDuration("SESSION_TTL", 12*time.Hour, &errs),
		},
		Digest: DigestConfig{
			CronSchedule: digestSchedule(),
			Timezone:     getenvWithDefault("TIMEZONE", "America/Los_Angeles"),
		},
		LogLevel: getenvWithDefault("LOG_LEVEL", "info"),
	}

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate ensures that required configuration fields are populated and well formed.
func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}

	if c.Server.Port == "" {
		return errors.New("APP_PORT must be provided")
	}

	if c.Weather.BaseURL == "" {
		return errors.New("WEATHER_BASE_URL must not be empty")
	}

	switch {
	case c.Weather.Latitude < -90 || c.Weather.Latitude > 90:
		return errors.New("WEATHER_LATITUDE must be within [-90, 90]")
	case c.Weather.Longitude < -180 || c.Weather.Longitude > 180:
		return errors.New("WEATHER_LONGITUDE must be within [-180, 180]")
	}

	switch c.Weather.TemperatureUnit {
	case "fahrenheit", "celsius":
	default:
		return errors.New("WEATHER_TEMPERATURE_UNIT must be fahrenheit or celsius")
	}

	if c.Weather.Timeout <= 0 {
		return errors.New("WEATHER_TIMEOUT must be positive")
	}

	if c.Sessions.TTL <= 0 {
		return errors.New("SESSION_TTL must be positive")
	}

	if c.Digest.Timezone == "" {
		return errors.New("TIMEZONE must be provided")
	}
	if _, err := time.LoadLocation(c.Digest.Timezone); err != nil {
		return fmt.Errorf("TIMEZONE is invalid: %w", err)
	}

	if c.Digest.CronSchedule != "" {
		if _, err := cron.ParseStandard(c.Digest.CronSchedule); err != nil {
			return fmt.Errorf("DIGEST_CRON_SCHEDULE is invalid: %w", err)
		}
	}

	return nil
}

// Location returns the configured local timezone, falling back to UTC.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Digest.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func getenvWithDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// digestSchedule returns the digest cron spec. A variable that is set but empty,
// or set to "off", disables the digest; an unset one keeps the 06:00 default.
func digestSchedule() string {
	raw, ok := os.LookupEnv("DIGEST_CRON_SCHEDULE")
	if !ok {
		return "0 6 * * *"
	}
	raw = strings.TrimSpace(raw)
	if strings.EqualFold(raw, "off") {
		return ""
	}
	return raw
}

func parseFloat(key string, fallback float64, errs *[]error) float64 {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		*errs = append(*errs, fmt.Errorf("%s must be a number: %w", key, err))
		return fallback
	}
	return v
}

func parseDuration(key string, fallback time.Duration, errs *[]error) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	v, err := time.ParseDuration(raw)
	if err != nil {
		*errs = append(*errs, fmt.Errorf("%s must be a duration: %w", key, err))
		return fallback
	}
	return v
}
