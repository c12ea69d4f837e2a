// Package conditions turns the raw daily forecast into today's weather snapshot.
package conditions

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/mamadbah2/fishtracker/internal/domain/models"
	"github.com/mamadbah2/fishtracker/pkg/clients/openmeteo"
)

const todayIndex = 0

var errIncompleteSeries = errors.New("daily series has no reading for today")

// Source yields the raw daily forecast.
type Source interface {
	FetchDaily(ctx context.Context) (*openmeteo.DailyForecast, error)
}

// Recorder receives the outcome of every fetch for metrics.
type Recorder interface {
	ObserveWeatherFetch(ok bool)
}

// Service builds snapshots and degrades to "no data" when the source fails.
type Service struct {
	source   Source
	recorder Recorder
	logger   *zap.Logger
}

// NewService wires a conditions service. recorder may be nil.
func NewService(source Source, recorder Recorder, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{source: source, recorder: recorder, logger: logger}
}

// Snapshot fetches today's reading. Failures are logged and reported as ok=false,
// never returned to the caller.
func (s *Service) Snapshot(ctx context.Context) (models.WeatherSnapshot, bool) {
	snapshot, err := s.fetch(ctx)
	if s.recorder != nil {
		s.recorder.ObserveWeatherFetch(err == nil)
	}
	if err != nil {
		s.logger.Warn("weather snapshot unavailable", zap.Error(err))
		return models.WeatherSnapshot{}, false
	}
	return snapshot, true
}

func (s *Service) fetch(ctx context.Context) (models.WeatherSnapshot, error) {
	forecast, err := s.source.FetchDaily(ctx)
	if err != nil {
		return models.WeatherSnapshot{}, err
	}
	if forecast == nil {
		return models.WeatherSnapshot{}, errIncompleteSeries
	}
	return FromDaily(forecast.Daily)
}

// FromDaily reads today's values out of the daily series and classifies the code.
// Temperatures and the weather code are required; missing precipitation reads as zero.
func FromDaily(d openmeteo.DailySeries) (models.WeatherSnapshot, error) {
	maxF, ok := floatAt(d.TemperatureMax, todayIndex)
	if !ok {
		return models.WeatherSnapshot{}, fmt.Errorf("temperature_2m_max: %w", errIncompleteSeries)
	}
	minF, ok := floatAt(d.TemperatureMin, todayIndex)
	if !ok {
		return models.WeatherSnapshot{}, fmt.Errorf("temperature_2m_min: %w", errIncompleteSeries)
	}
	if len(d.WeatherCode) <= todayIndex || d.WeatherCode[todayIndex] == nil {
		return models.WeatherSnapshot{}, fmt.Errorf("weathercode: %w", errIncompleteSeries)
	}
	code := *d.WeatherCode[todayIndex]
	precip, _ := floatAt(d.PrecipitationSum, todayIndex)

	snapshot := models.WeatherSnapshot{
		TempMaxF:        maxF,
		TempMinF:        minF,
		PrecipitationMM: precip,
		WeatherCode:     code,
		Condition:       models.ConditionFromCode(code),
	}
	if len(d.Time) > todayIndex {
		if day, err := time.Parse(models.DateLayout, d.Time[todayIndex]); err == nil {
			snapshot.Date = day
		}
	}
	return snapshot, nil
}

func floatAt(series []*float64, i int) (float64, bool) {
	if len(series) <= i || series[i] == nil {
		return 0, false
	}
	return *series[i], true
}
