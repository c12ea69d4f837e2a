package models

// RecommendationOutcome tells callers which message to show for a lookup.
type RecommendationOutcome string

const (
	// OutcomeNoSimilarConditions means no logged trip matched today's weather.
	OutcomeNoSimilarConditions RecommendationOutcome = "no_similar_conditions"
	// OutcomeNoFlyPattern means trips matched but no fly stood out.
	OutcomeNoFlyPattern RecommendationOutcome = "no_consistent_fly_pattern"
	// OutcomeFliesThatWorked means one or more flies dominated the matching trips.
	OutcomeFliesThatWorked RecommendationOutcome = "flies_that_worked"
)

// Recommendation is the result of comparing today's snapshot with the trip log.
type Recommendation struct {
	Outcome     RecommendationOutcome `json:"outcome"`
	Matches     int                   `json:"matches"`
	AvgCatch    float64               `json:"avg_catch"`
	CommonFlies []string              `json:"common_flies"`
	Message     string                `json:"message"`
}

// WeatherCatch is the mean catch for one weather label.
type WeatherCatch struct {
	Weather  Condition `json:"weather"`
	AvgCatch float64   `json:"avg_catch"`
	Trips    int       `json:"trips"`
}

// DateCatch is the total catch logged for one day.
type DateCatch struct {
	Date  string `json:"date"`
	Total int    `json:"total"`
}
