// Package reporting derives the trend views charted next to the trip log.
package reporting

import (
	"fmt"
	"sort"

	"github.com/montanaflynn/stats"

	"github.com/mamadbah2/fishtracker/internal/domain/models"
	"github.com/mamadbah2/fishtracker/internal/service/triplog"
)

// CatchByWeather returns the mean catch per weather label, ordered by label.
func CatchByWeather(log triplog.TripLog) []models.WeatherCatch {
	groups := make(map[models.Condition]stats.Float64Data)
	for _, r := range log.All() {
		groups[r.Weather] = append(groups[r.Weather], float64(r.FishCaught))
	}

	out := make([]models.WeatherCatch, 0, len(groups))
	for weather, catches := range groups {
		mean, err := stats.Mean(catches)
		if err != nil {
			continue
		}
		rounded, err := stats.Round(mean, 2)
		if err != nil {
			rounded = mean
		}
		out = append(out, models.WeatherCatch{Weather: weather, AvgCatch: rounded, Trips: len(catches)})
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Weather < out[j].Weather })
	return out
}

// CatchByDate returns the total catch per logged day, oldest first.
func CatchByDate(log triplog.TripLog) []models.DateCatch {
	totals := make(map[string]int)
	for _, r := range log.All() {
		totals[r.Date.Format(models.DateLayout)] += r.FishCaught
	}

	out := make([]models.DateCatch, 0, len(totals))
	for date, total := range totals {
		out = append(out, models.DateCatch{Date: date, Total: total})
	}

	// DateLayout sorts lexically in calendar order.
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out
}

// Summary renders a one-line digest of the log.
func Summary(log triplog.TripLog) string {
	if log.Empty() {
		return "Trip log: no trips logged yet."
	}

	var total int
	for _, r := range log.All() {
		total += r.FishCaught
	}

	best := bestWeather(CatchByWeather(log))
	return fmt.Sprintf("Trip log: %d fish across %d trips. Best conditions so far: %s (%.2f per trip).",
		total, log.Len(), best.Weather, best.AvgCatch)
}

func bestWeather(groups []models.WeatherCatch) models.WeatherCatch {
	var best models.WeatherCatch
	for i, g := range groups {
		if i == 0 || g.AvgCatch > best.AvgCatch {
			best = g
		}
	}
	return best
}
