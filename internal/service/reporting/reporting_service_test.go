package reporting_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mamadbah2/fishtracker/internal/domain/models"
	"github.com/mamadbah2/fishtracker/internal/service/reporting"
	"github.com/mamadbah2/fishtracker/internal/service/triplog"
)

func trip(day int, weather models.Condition, fish int) models.TripRecord {
	return models.TripRecord{
		Date:       time.Date(2025, 6, day, 0, 0, 0, 0, time.UTC),
		AirTempF:   65,
		Weather:    weather,
		FishCaught: fish,
	}
}

func sampleLog() triplog.TripLog {
	return triplog.New(
		trip(3, models.ConditionSunny, 3),
		trip(1, models.ConditionSunny, 1),
		trip(1, models.ConditionRainy, 0),
		trip(2, models.ConditionOvercast, 5),
		trip(3, models.ConditionRainy, 2),
	)
}

func TestCatchByWeather(t *testing.T) {
	got := reporting.CatchByWeather(sampleLog())

	require.Len(t, got, 3)
	assert.Equal(t, models.ConditionOvercast, got[0].Weather)
	assert.InDelta(t, 5.0, got[0].AvgCatch, 0.001)
	assert.Equal(t, models.ConditionRainy, got[1].Weather)
	assert.InDelta(t, 1.0, got[1].AvgCatch, 0.001)
	assert.Equal(t, 2, got[1].Trips)
	assert.Equal(t, models.ConditionSunny, got[2].Weather)
	assert.InDelta(t, 2.0, got[2].AvgCatch, 0.001)
}

func TestCatchByDate(t *testing.T) {
	got := reporting.CatchByDate(sampleLog())

	assert.Equal(t, []models.DateCatch{
		{Date: "2025-06-01", Total: 1},
		{Date: "2025-06-02", Total: 5},
		{Date: "2025-06-03", Total: 5},
	}, got)
}

func TestTrends_EmptyLog(t *testing.T) {
	var log triplog.TripLog

	assert.Empty(t, reporting.CatchByWeather(log))
	assert.Empty(t, reporting.CatchByDate(log))
	assert.NotNil(t, reporting.CatchByWeather(log))
	assert.NotNil(t, reporting.CatchByDate(log))
}

func TestSummary(t *testing.T) {
	assert.Equal(t, "Trip log: no trips logged yet.", reporting.Summary(triplog.TripLog{}))

	got := reporting.Summary(sampleLog())

	assert.Equal(t, "Trip log: 11 fish across 5 trips. Best conditions so far: Overcast (5.00 per trip).", got)
}
