package models

import (
	"fmt"
	"strings"
	"time"
)

// Condition is the simplified weather label shared by logged trips and the daily snapshot.
type Condition string

const (
	ConditionSunny        Condition = "Sunny"
	ConditionPartlyCloudy Condition = "Partly Cloudy"
	ConditionOvercast     Condition = "Overcast"
	ConditionFoggy        Condition = "Foggy"
	ConditionRainy        Condition = "Rainy"
	ConditionWindy        Condition = "Windy"
	ConditionUnknown      Condition = "Unknown"
)

// TripConditions lists the labels an angler can pick when logging a trip.
// Foggy and Unknown only ever come from the weather service.
var TripConditions = []Condition{
	ConditionSunny,
	ConditionPartlyCloudy,
	ConditionOvercast,
	ConditionRainy,
	ConditionWindy,
}

// weatherCodeConditions collapses WMO weather codes into the labels above.
// Drizzle, rain and showers all land on Rainy; thunderstorms on Windy.
var weatherCodeConditions = map[int]Condition{
	0:  ConditionSunny,
	1:  ConditionPartlyCloudy,
	2:  ConditionOvercast,
	3:  ConditionOvercast,
	45: ConditionFoggy,
	48: ConditionFoggy,
	51: ConditionRainy,
	53: ConditionRainy,
	55: ConditionRainy,
	61: ConditionRainy,
	63: ConditionRainy,
	65: ConditionRainy,
	80: ConditionRainy,
	81: ConditionRainy,
	82: ConditionRainy,
	95: ConditionWindy,
	96: ConditionWindy,
	99: ConditionWindy,
}

// ConditionFromCode maps a weather code to its label, falling back to Unknown.
func ConditionFromCode(code int) Condition {
	if c, ok := weatherCodeConditions[code]; ok {
		return c
	}
	return ConditionUnknown
}

// ParseTripCondition accepts one of the selectable trip labels, ignoring case and
// surrounding whitespace.
func ParseTripCondition(value string) (Condition, error) {
	normalized := strings.TrimSpace(value)
	for _, c := range TripConditions {
		if strings.EqualFold(normalized, string(c)) {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w: weather must be one of %s", ErrValidation, joinConditions(TripConditions))
}

func joinConditions(conditions []Condition) string {
	names := make([]string, len(conditions))
	for i, c := range conditions {
		names[i] = string(c)
	}
	return strings.Join(names, ", ")
}

// WeatherSnapshot is today's reading for the tracked location. It is rebuilt on every
// request and never stored alongside trips.
type WeatherSnapshot struct {
	Date            time.Time `json:"-"`
	TempMaxF        float64   `json:"temp_max_f"`
	TempMinF        float64   `json:"temp_min_f"`
	PrecipitationMM float64   `json:"precipitation_mm"`
	WeatherCode     int       `json:"weather_code"`
	Condition       Condition `json:"condition"`
}
