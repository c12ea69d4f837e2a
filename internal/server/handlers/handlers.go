// Package handlers adapts the trip log and weather services to gin routes.
package handlers

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mamadbah2/fishtracker/internal/domain/models"
	"github.com/mamadbah2/fishtracker/internal/service/reporting"
	"github.com/mamadbah2/fishtracker/internal/service/triplog"
)

// SessionContextKey is the gin context key holding the caller's session id.
const SessionContextKey = "session_id"

// TripStore is the per-session trip log the handlers read and append to.
type TripStore interface {
	Load(sessionID string) triplog.TripLog
	Append(sessionID string, record models.TripRecord) triplog.TripLog
}

// SnapshotSource yields today's weather, or false when it cannot be fetched.
type SnapshotSource interface {
	Snapshot(ctx context.Context) (models.WeatherSnapshot, bool)
}

// Advisor compares today's weather with a trip log.
type Advisor interface {
	Today(ctx context.Context, log triplog.TripLog) (models.WeatherSnapshot, *models.Recommendation, bool)
}

// TripRecorder counts appended trips.
type TripRecorder interface {
	IncTripsLogged()
}

func sessionID(c *gin.Context) string {
	return c.GetString(SessionContextKey)
}

type errorResponse struct {
	Error string `json:"error"`
}

type tripResponse struct {
	ID         string    `json:"id"`
	Date       string    `json:"date"`
	AirTempF   int       `json:"air_temp_f"`
	Weather    string    `json:"weather"`
	FlyUsed    string    `json:"fly_used"`
	FishCaught int       `json:"fish_caught"`
	Notes      string    `json:"notes"`
	LoggedAt   time.Time `json:"logged_at"`
}

type snapshotResponse struct {
	Date            string  `json:"date,omitempty"`
	TempMaxF        float64 `json:"temp_max_f"`
	TempMinF        float64 `json:"temp_min_f"`
	PrecipitationMM float64 `json:"precipitation_mm"`
	WeatherCode     int     `json:"weather_code"`
	Condition       string  `json:"condition"`
}

type conditionsResponse struct {
	Available      bool                   `json:"available"`
	Snapshot       *snapshotResponse      `json:"snapshot,omitempty"`
	Recommendation *models.Recommendation `json:"recommendation,omitempty"`
}

type trendsResponse struct {
	CatchByWeather []models.WeatherCatch `json:"catch_by_weather"`
	CatchByDate    []models.DateCatch    `json:"catch_by_date"`
}

func tripToResponse(r models.TripRecord) tripResponse {
	return tripResponse{
		ID:         r.ID.String(),
		Date:       r.Date.Format(models.DateLayout),
		AirTempF:   r.AirTempF,
		Weather:    string(r.Weather),
		FlyUsed:    r.FlyUsed,
		FishCaught: r.FishCaught,
		Notes:      r.Notes,
		LoggedAt:   r.LoggedAt,
	}
}

func tripsToResponse(records []models.TripRecord) []tripResponse {
	out := make([]tripResponse, len(records))
	for i, r := range records {
		out[i] = tripToResponse(r)
	}
	return out
}

func snapshotToResponse(s models.WeatherSnapshot) *snapshotResponse {
	resp := &snapshotResponse{
		TempMaxF:        s.TempMaxF,
		TempMinF:        s.TempMinF,
		PrecipitationMM: s.PrecipitationMM,
		WeatherCode:     s.WeatherCode,
		Condition:       string(s.Condition),
	}
	if !s.Date.IsZero() {
		resp.Date = s.Date.Format(models.DateLayout)
	}
	return resp
}

func buildTrends(log triplog.TripLog) trendsResponse {
	return trendsResponse{
		CatchByWeather: reporting.CatchByWeather(log),
		CatchByDate:    reporting.CatchByDate(log),
	}
}
