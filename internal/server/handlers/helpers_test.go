package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/mamadbah2/fishtracker/internal/domain/models"
	"github.com/mamadbah2/fishtracker/internal/service/triplog"
)

const testSession = "3f1c2a9e-5d6b-4c8e-9a7f-1b2c3d4e5f60"

// memoryStore is a TripStore backed by a plain map; appends are recorded for assertions.
type memoryStore struct {
	logs     map[string]triplog.TripLog
	appended []string
}

func newMemoryStore() *memoryStore {
	return &memoryStore{logs: make(map[string]triplog.TripLog)}
}

func (m *memoryStore) Load(id string) triplog.TripLog {
	return m.logs[id]
}

func (m *memoryStore) Append(id string, r models.TripRecord) triplog.TripLog {
	m.appended = append(m.appended, id)
	m.logs[id] = m.logs[id].Append(r)
	return m.logs[id]
}

type mockSource struct {
	snapshot func(ctx context.Context) (models.WeatherSnapshot, bool)
}

func (m *mockSource) Snapshot(ctx context.Context) (models.WeatherSnapshot, bool) {
	return m.snapshot(ctx)
}

type mockAdvisor struct {
	today func(ctx context.Context, log triplog.TripLog) (models.WeatherSnapshot, *models.Recommendation, bool)
}

func (m *mockAdvisor) Today(ctx context.Context, log triplog.TripLog) (models.WeatherSnapshot, *models.Recommendation, bool) {
	return m.today(ctx, log)
}

type countingRecorder struct {
	trips int
}

func (c *countingRecorder) IncTripsLogged() { c.trips++ }

var (
	_ TripStore      = (*memoryStore)(nil)
	_ TripStore      = (*triplog.SessionStore)(nil)
	_ SnapshotSource = (*mockSource)(nil)
	_ Advisor        = (*mockAdvisor)(nil)
	_ TripRecorder   = (*countingRecorder)(nil)
)

func newEngine() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set(SessionContextKey, testSession)
		c.Next()
	})
	return r
}

func serve(t *testing.T, h http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if s, ok := body.(string); ok {
			buf.WriteString(s)
		} else {
			require.NoError(t, json.NewEncoder(&buf).Encode(body))
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, v any) {
	t.Helper()
	require.NoError(t, json.NewDecoder(rec.Body).Decode(v))
}

func storedTrip(day int, temp int, weather models.Condition, fly string, fish int) models.TripRecord {
	return models.TripRecord{
		ID:         uuid.New(),
		Date:       time.Date(2025, 6, day, 0, 0, 0, 0, time.UTC),
		AirTempF:   temp,
		Weather:    weather,
		FlyUsed:    fly,
		FishCaught: fish,
		LoggedAt:   time.Date(2025, 6, day, 18, 0, 0, 0, time.UTC),
	}
}
