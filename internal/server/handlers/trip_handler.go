package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mamadbah2/fishtracker/internal/domain/models"
)

// TripHandler serves the trip log, the logging form and the trend views.
type TripHandler struct {
	store    TripStore
	recorder TripRecorder
	logger   *zap.Logger
	loc      *time.Location
	now      func() time.Time
}

// NewTripHandler constructs the HTTP handler adapter. loc decides which calendar
// day "today" is when a submission carries no date.
func NewTripHandler(store TripStore, recorder TripRecorder, loc *time.Location, logger *zap.Logger) *TripHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	if loc == nil {
		loc = time.UTC
	}
	return &TripHandler{store: store, recorder: recorder, logger: logger, loc: loc, now: time.Now}
}

type createTripRequest struct {
	Date       string `json:"date"`
	AirTempF   *int   `json:"air_temp_f" binding:"required"`
	Weather    string `json:"weather" binding:"required"`
	FlyUsed    string `json:"fly_used"`
	FishCaught *int   `json:"fish_caught" binding:"required"`
	Notes      string `json:"notes"`
}

// List returns the session's trips, newest first.
func (h *TripHandler) List(c *gin.Context) {
	log := h.store.Load(sessionID(c))
	c.JSON(http.StatusOK, gin.H{"trips": tripsToResponse(log.All())})
}

// Create validates a form submission and appends it to the session's log.
func (h *TripHandler) Create(c *gin.Context) {
	var req createTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid trip payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	now := h.now().In(h.loc)
	in := models.TripInput{
		AirTempF:   *req.AirTempF,
		Weather:    req.Weather,
		FlyUsed:    req.FlyUsed,
		FishCaught: *req.FishCaught,
		Notes:      req.Notes,
	}
	if req.Date != "" {
		date, err := models.ParseDate(req.Date)
		if err != nil {
			c.JSON(http.StatusUnprocessableEntity, errorResponse{Error: err.Error()})
			return
		}
		in.Date = date
	}

	record, err := models.NewTripRecord(in, now)
	if err != nil {
		if errors.Is(err, models.ErrValidation) {
			c.JSON(http.StatusUnprocessableEntity, errorResponse{Error: err.Error()})
			return
		}
		h.logger.Error("failed building trip record", zap.Error(err))
		c.JSON(http.StatusInternalServerError, errorResponse{Error: "failed to log trip"})
		return
	}

	log := h.store.Append(sessionID(c), record)
	if h.recorder != nil {
		h.recorder.IncTripsLogged()
	}
	h.logger.Info("trip logged",
		zap.String("trip_id", record.ID.String()),
		zap.String("weather", string(record.Weather)),
		zap.Int("fish_caught", record.FishCaught),
		zap.Int("log_size", log.Len()))

	c.JSON(http.StatusCreated, tripToResponse(record))
}

// Trends returns the chart views: mean catch by weather and total catch by date.
func (h *TripHandler) Trends(c *gin.Context) {
	c.JSON(http.StatusOK, buildTrends(h.store.Load(sessionID(c))))
}

// WeatherOptions lists the selectable weather labels and temperature bounds of the form.
func (h *TripHandler) WeatherOptions(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"weather":         models.TripConditions,
		"min_air_temp_f":  models.MinAirTempF,
		"max_air_temp_f":  models.MaxAirTempF,
		"default_date":    h.now().In(h.loc).Format(models.DateLayout),
		"min_fish_caught": 0,
	})
}
