// Package recommendation compares today's weather with past trips and reports what
// worked on similar days.
package recommendation

import (
	"fmt"
	"sort"
	"strings"

	"github.com/montanaflynn/stats"

	"github.com/mamadbah2/fishtracker/internal/domain/models"
	"github.com/mamadbah2/fishtracker/internal/service/triplog"
)

const (
	msgNoSimilar     = "No similar past conditions found in your log."
	msgNoFlyPattern  = "No consistent fly pattern from those trips."
	msgFliesTemplate = "Average fish caught on similar days: %.2f. Flies that worked: %s."
	msgAvgTemplate   = "Average fish caught on similar days: %.2f. %s"
)

// Filter returns the trips logged within today's temperature span (both ends
// inclusive) under the same weather label. The result is newest first.
func Filter(snapshot models.WeatherSnapshot, log triplog.TripLog) []models.TripRecord {
	var matches []models.TripRecord
	for _, r := range log.All() {
		temp := float64(r.AirTempF)
		if temp < snapshot.TempMinF || temp > snapshot.TempMaxF {
			continue
		}
		if r.Weather != snapshot.Condition {
			continue
		}
		matches = append(matches, r)
	}
	return matches
}

// Recommend filters the log against the snapshot and aggregates the matches.
// It has no side effects; an empty log or an empty match set is a normal result.
func Recommend(snapshot models.WeatherSnapshot, log triplog.TripLog) models.Recommendation {
	matches := Filter(snapshot, log)
	if len(matches) == 0 {
		return models.Recommendation{
			Outcome:     models.OutcomeNoSimilarConditions,
			CommonFlies: []string{},
			Message:     msgNoSimilar,
		}
	}

	avg := averageCatch(matches)
	flies := modeFlies(matches)

	rec := models.Recommendation{
		Matches:     len(matches),
		AvgCatch:    avg,
		CommonFlies: flies,
	}

	if consistentPattern(len(matches), len(flies)) {
		rec.Outcome = models.OutcomeFliesThatWorked
		rec.Message = fmt.Sprintf(msgFliesTemplate, avg, strings.Join(flies, ", "))
	} else {
		rec.Outcome = models.OutcomeNoFlyPattern
		rec.Message = fmt.Sprintf(msgAvgTemplate, avg, msgNoFlyPattern)
	}
	return rec
}

// consistentPattern decides whether the mode list is worth showing. A list as long
// as the match set means every matched trip used a different fly.
func consistentPattern(matches, modes int) bool {
	if modes == 0 {
		return false
	}
	return matches == 1 || modes < matches
}

func averageCatch(records []models.TripRecord) float64 {
	data := make(stats.Float64Data, len(records))
	for i, r := range records {
		data[i] = float64(r.FishCaught)
	}

	mean, err := stats.Mean(data)
	if err != nil {
		return 0
	}
	rounded, err := stats.Round(mean, 2)
	if err != nil {
		return mean
	}
	return rounded
}

// modeFlies returns the most frequent non-empty fly names, alphabetically.
func modeFlies(records []models.TripRecord) []string {
	counts := make(map[string]int)
	for _, r := range records {
		if r.FlyUsed == "" {
			continue
		}
		counts[r.FlyUsed]++
	}

	best := 0
	for _, n := range counts {
		if n > best {
			best = n
		}
	}

	flies := []string{}
	for fly, n := range counts {
		if n == best {
			flies = append(flies, fly)
		}
	}
	sort.Strings(flies)
	return flies
}
