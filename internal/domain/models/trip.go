package models

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ErrValidation indicates a trip submission violated one of the field constraints.
var ErrValidation = errors.New("validation error")

const (
	// MinAirTempF and MaxAirTempF bound the air temperature an angler can record.
	MinAirTempF = 30
	MaxAirTempF = 120

	// DateLayout is the wire format of a trip date.
	DateLayout = "2006-01-02"
)

// TripRecord captures one logged fishing outing. Values are immutable once built.
type TripRecord struct {
	ID         uuid.UUID
	Date       time.Time
	AirTempF   int
	Weather    Condition
	FlyUsed    string
	FishCaught int
	Notes      string
	LoggedAt   time.Time
}

// TripInput is the raw form submission before constraints are applied.
type TripInput struct {
	Date       time.Time
	AirTempF   int
	Weather    string
	FlyUsed    string
	FishCaught int
	Notes      string
}

// NewTripRecord validates the input and returns a record with a fresh ID.
// The date is truncated to a civil day.
func NewTripRecord(in TripInput, now time.Time) (TripRecord, error) {
	if in.AirTempF < MinAirTempF || in.AirTempF > MaxAirTempF {
		return TripRecord{}, fmt.Errorf("%w: air temperature must be between %d and %d", ErrValidation, MinAirTempF, MaxAirTempF)
	}
	if in.FishCaught < 0 {
		return TripRecord{}, fmt.Errorf("%w: fish caught must not be negative", ErrValidation)
	}

	weather, err := ParseTripCondition(in.Weather)
	if err != nil {
		return TripRecord{}, err
	}

	date := in.Date
	if date.IsZero() {
		date = now
	}

	return TripRecord{
		ID:         uuid.New(),
		Date:       CivilDate(date),
		AirTempF:   in.AirTempF,
		Weather:    weather,
		FlyUsed:    strings.TrimSpace(in.FlyUsed),
		FishCaught: in.FishCaught,
		Notes:      strings.TrimSpace(in.Notes),
		LoggedAt:   now.UTC(),
	}, nil
}

// CivilDate drops the clock part of t, keeping its calendar day in its own location,
// and returns midnight UTC of that day.
func CivilDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseDate reads a YYYY-MM-DD string.
func ParseDate(value string) (time.Time, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(value))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: date must use the %s layout", ErrValidation, DateLayout)
	}
	return t, nil
}
