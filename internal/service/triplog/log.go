// Package triplog holds the append-only trip log owned by a browsing session.
package triplog

import (
	"sort"

	"github.com/mamadbah2/fishtracker/internal/domain/models"
)

// TripLog is an immutable ordered collection of trips. The zero value is an empty log.
type TripLog struct {
	records []models.TripRecord
}

// New builds a log holding the given records.
func New(records ...models.TripRecord) TripLog {
	if len(records) == 0 {
		return TripLog{}
	}
	cp := make([]models.TripRecord, len(records))
	copy(cp, records)
	return TripLog{records: cp}
}

// Append returns a new log with record added. The receiver is left untouched, so
// logs handed out earlier never observe the new row.
func (l TripLog) Append(record models.TripRecord) TripLog {
	next := make([]models.TripRecord, len(l.records), len(l.records)+1)
	copy(next, l.records)
	return TripLog{records: append(next, record)}
}

// All returns every record ordered by date, newest first. Trips on the same day keep
// their insertion order.
func (l TripLog) All() []models.TripRecord {
	out := make([]models.TripRecord, len(l.records))
	copy(out, l.records)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.After(out[j].Date)
	})
	return out
}

// Len reports the number of logged trips.
func (l TripLog) Len() int {
	return len(l.records)
}

// Empty reports whether nothing has been logged yet.
func (l TripLog) Empty() bool {
	return len(l.records) == 0
}
