package handlers

import (
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mamadbah2/fishtracker/internal/domain/models"
	"github.com/mamadbah2/fishtracker/internal/service/triplog"
)

func newTripEngine(store TripStore, recorder TripRecorder, now time.Time) *gin.Engine {
	h := NewTripHandler(store, recorder, time.UTC, nil)
	h.now = func() time.Time { return now }

	r := newEngine()
	r.GET("/api/trips", h.List)
	r.POST("/api/trips", h.Create)
	r.GET("/api/trends", h.Trends)
	r.GET("/api/weather-options", h.WeatherOptions)
	return r
}

var fixedNow = time.Date(2025, 6, 14, 9, 30, 0, 0, time.UTC)

func TestCreateTrip_201(t *testing.T) {
	store := newMemoryStore()
	recorder := &countingRecorder{}
	r := newTripEngine(store, recorder, fixedNow)

	rec := serve(t, r, http.MethodPost, "/api/trips", map[string]any{
		"date":        "2025-06-10",
		"air_temp_f":  72,
		"weather":     "Sunny",
		"fly_used":    "Elk Hair Caddis",
		"fish_caught": 3,
		"notes":       "evening hatch",
	})

	require.Equal(t, http.StatusCreated, rec.Code)

	var resp tripResponse
	decode(t, rec, &resp)
	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, "2025-06-10", resp.Date)
	assert.Equal(t, 72, resp.AirTempF)
	assert.Equal(t, "Sunny", resp.Weather)
	assert.Equal(t, "Elk Hair Caddis", resp.FlyUsed)
	assert.Equal(t, 3, resp.FishCaught)
	assert.Equal(t, "evening hatch", resp.Notes)

	assert.Equal(t, []string{testSession}, store.appended)
	assert.Equal(t, 1, store.Load(testSession).Len())
	assert.Equal(t, 1, recorder.trips)
}

func TestCreateTrip_ZeroFishAndNoDate(t *testing.T) {
	store := newMemoryStore()
	r := newTripEngine(store, nil, fixedNow)

	rec := serve(t, r, http.MethodPost, "/api/trips", map[string]any{
		"air_temp_f":  55,
		"weather":     "Overcast",
		"fish_caught": 0,
	})

	require.Equal(t, http.StatusCreated, rec.Code)
	var resp tripResponse
	decode(t, rec, &resp)
	assert.Equal(t, "2025-06-14", resp.Date)
	assert.Zero(t, resp.FishCaught)
	assert.Empty(t, resp.FlyUsed)
}

func TestCreateTrip_400_MalformedOrMissing(t *testing.T) {
	tests := []struct {
		name string
		body any
	}{
		{"not_json", "{nope"},
		{"missing_fish_caught", map[string]any{"air_temp_f": 60, "weather": "Sunny"}},
		{"missing_air_temp", map[string]any{"weather": "Sunny", "fish_caught": 1}},
		{"missing_weather", map[string]any{"air_temp_f": 60, "fish_caught": 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newMemoryStore()
			rec := serve(t, newTripEngine(store, nil, fixedNow), http.MethodPost, "/api/trips", tt.body)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Empty(t, store.appended)
		})
	}
}

func TestCreateTrip_422_ConstraintViolations(t *testing.T) {
	tests := []struct {
		name string
		body map[string]any
	}{
		{"too_cold", map[string]any{"air_temp_f": 29, "weather": "Sunny", "fish_caught": 1}},
		{"too_hot", map[string]any{"air_temp_f": 121, "weather": "Sunny", "fish_caught": 1}},
		{"negative_catch", map[string]any{"air_temp_f": 60, "weather": "Sunny", "fish_caught": -2}},
		{"foggy_not_selectable", map[string]any{"air_temp_f": 60, "weather": "Foggy", "fish_caught": 1}},
		{"bad_date", map[string]any{"date": "June 1", "air_temp_f": 60, "weather": "Sunny", "fish_caught": 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newMemoryStore()
			rec := serve(t, newTripEngine(store, nil, fixedNow), http.MethodPost, "/api/trips", tt.body)

			require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
			var resp errorResponse
			decode(t, rec, &resp)
			assert.Contains(t, resp.Error, "validation error")
			assert.Empty(t, store.appended)
		})
	}
}

func TestListTrips_NewestFirst(t *testing.T) {
	store := newMemoryStore()
	store.logs[testSession] = triplog.New(
		storedTrip(2, 70, models.ConditionSunny, "Adams", 1),
		storedTrip(9, 64, models.ConditionRainy, "Woolly Bugger", 4),
	)

	rec := serve(t, newTripEngine(store, nil, fixedNow), http.MethodGet, "/api/trips", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp struct {
		Trips []tripResponse `json:"trips"`
	}
	decode(t, rec, &resp)
	require.Len(t, resp.Trips, 2)
	assert.Equal(t, "2025-06-09", resp.Trips[0].Date)
	assert.Equal(t, "2025-06-02", resp.Trips[1].Date)
}

func TestListTrips_EmptyIsArray(t *testing.T) {
	rec := serve(t, newTripEngine(newMemoryStore(), nil, fixedNow), http.MethodGet, "/api/trips", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"trips":[]}`, rec.Body.String())
}

func TestTrends(t *testing.T) {
	store := newMemoryStore()
	store.logs[testSession] = triplog.New(
		storedTrip(1, 70, models.ConditionSunny, "Adams", 1),
		storedTrip(1, 70, models.ConditionSunny, "Adams", 3),
		storedTrip(2, 64, models.ConditionRainy, "Woolly Bugger", 4),
	)

	rec := serve(t, newTripEngine(store, nil, fixedNow), http.MethodGet, "/api/trends", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{
		"catch_by_weather": [
			{"weather": "Rainy", "avg_catch": 4, "trips": 1},
			{"weather": "Sunny", "avg_catch": 2, "trips": 2}
		],
		"catch_by_date": [
			{"date": "2025-06-01", "total": 4},
			{"date": "2025-06-02", "total": 4}
		]
	}`, rec.Body.String())
}

func TestWeatherOptions(t *testing.T) {
	rec := serve(t, newTripEngine(newMemoryStore(), nil, fixedNow), http.MethodGet, "/api/weather-options", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{
		"weather": ["Sunny", "Partly Cloudy", "Overcast", "Rainy", "Windy"],
		"min_air_temp_f": 30,
		"max_air_temp_f": 120,
		"min_fish_caught": 0,
		"default_date": "2025-06-14"
	}`, rec.Body.String())
}
