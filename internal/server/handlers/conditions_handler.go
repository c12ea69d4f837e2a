package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mamadbah2/fishtracker/internal/service/reporting"
	"github.com/mamadbah2/fishtracker/internal/service/triplog"
)

// ConditionsHandler serves today's weather, the recommendation and the combined
// dashboard pass.
type ConditionsHandler struct {
	weather SnapshotSource
	advisor Advisor
	store   TripStore
	logger  *zap.Logger
}

// NewConditionsHandler constructs the HTTP handler adapter.
func NewConditionsHandler(weather SnapshotSource, advisor Advisor, store TripStore, logger *zap.Logger) *ConditionsHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ConditionsHandler{weather: weather, advisor: advisor, store: store, logger: logger}
}

// Conditions returns today's snapshot. An unavailable weather service is reported
// as available=false with status 200.
func (h *ConditionsHandler) Conditions(c *gin.Context) {
	snapshot, ok := h.weather.Snapshot(c.Request.Context())
	if !ok {
		c.JSON(http.StatusOK, conditionsResponse{Available: false})
		return
	}
	c.JSON(http.StatusOK, conditionsResponse{Available: true, Snapshot: snapshotToResponse(snapshot)})
}

// Recommendation compares today's snapshot with the session's trips.
func (h *ConditionsHandler) Recommendation(c *gin.Context) {
	c.JSON(http.StatusOK, h.conditions(c, h.store.Load(sessionID(c))))
}

// Dashboard runs one full pass: weather, recommendation, trip log and trends.
func (h *ConditionsHandler) Dashboard(c *gin.Context) {
	log := h.store.Load(sessionID(c))
	c.JSON(http.StatusOK, gin.H{
		"conditions": h.conditions(c, log),
		"trips":      tripsToResponse(log.All()),
		"trends":     buildTrends(log),
		"summary":    reporting.Summary(log),
	})
}

func (h *ConditionsHandler) conditions(c *gin.Context, log triplog.TripLog) conditionsResponse {
	snapshot, rec, ok := h.advisor.Today(c.Request.Context(), log)
	if !ok {
		h.logger.Debug("skipping recommendation, weather unavailable")
		return conditionsResponse{Available: false}
	}
	return conditionsResponse{
		Available:      true,
		Snapshot:       snapshotToResponse(snapshot),
		Recommendation: rec,
	}
}
