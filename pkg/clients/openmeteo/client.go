// Package openmeteo is a thin client for the Open-Meteo forecast API.
package openmeteo

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/mamadbah2/fishtracker/internal/config"
)

// ErrUnavailable is returned when the forecast endpoint answers with anything but 200.
var ErrUnavailable = errors.New("weather data unavailable")

// DailyFields are the per-day series requested from the forecast endpoint.
var DailyFields = []string{
	"precipitation_sum",
	"temperature_2m_max",
	"temperature_2m_min",
	"weathercode",
}

// Client exposes the Open-Meteo operations used by the application.
type Client interface {
	FetchDaily(ctx context.Context) (*DailyForecast, error)
}

// APIClient is a resty-backed implementation of Client bound to one location.
type APIClient struct {
	httpClient *resty.Client
	params     map[string]string
}

// NewClient builds a forecast client using the provided configuration values.
func NewClient(cfg config.WeatherConfig) *APIClient {
	restyClient := resty.New().
		SetBaseURL(strings.TrimSuffix(cfg.BaseURL, "/")).
		SetHeader("Accept", "application/json").
		SetTimeout(cfg.Timeout)

	return &APIClient{
		httpClient: restyClient,
		params: map[string]string{
			"latitude":         strconv.FormatFloat(cfg.Latitude, 'f', -1, 64),
			"longitude":        strconv.FormatFloat(cfg.Longitude, 'f', -1, 64),
			"daily":            strings.Join(DailyFields, ","),
			"timezone":         cfg.Timezone,
			"temperature_unit": cfg.TemperatureUnit,
		},
	}
}

// DailyForecast mirrors the "daily" block of a forecast response. Every series is
// indexed by day offset, index 0 being today.
type DailyForecast struct {
	Latitude  float64     `json:"latitude"`
	Longitude float64     `json:"longitude"`
	Timezone  string      `json:"timezone"`
	Daily     DailySeries `json:"daily"`
}

// DailySeries holds the requested per-day values. Missing readings decode as nil.
type DailySeries struct {
	Time             []string   `json:"time"`
	PrecipitationSum []*float64 `json:"precipitation_sum"`
	TemperatureMax   []*float64 `json:"temperature_2m_max"`
	TemperatureMin   []*float64 `json:"temperature_2m_min"`
	WeatherCode      []*int     `json:"weathercode"`
}

type apiError struct {
	Error  bool   `json:"error"`
	Reason string `json:"reason"`
}

// FetchDaily requests today's daily series for the configured location.
func (c *APIClient) FetchDaily(ctx context.Context) (*DailyForecast, error) {
	result := new(DailyForecast)
	apiErr := new(apiError)

	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetQueryParams(c.params).
		SetResult(result).
		SetError(apiErr).
		ExpectContentType("application/json").
		Get("/forecast")
	if err != nil {
		return nil, fmt.Errorf("fetch daily forecast: %w", err)
	}

	if resp.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("%w: status=%d, reason=%s", ErrUnavailable, resp.StatusCode(), apiErr.Reason)
	}

	return result, nil
}
