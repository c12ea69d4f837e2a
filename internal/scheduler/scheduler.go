package scheduler

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/mamadbah2/fishtracker/internal/config"
	"github.com/mamadbah2/fishtracker/internal/domain/models"
)

const digestTimeout = 2 * time.Minute

// SnapshotSource yields today's weather, or false when it cannot be fetched.
type SnapshotSource interface {
	Snapshot(ctx context.Context) (models.WeatherSnapshot, bool)
}

// SessionCounter reports how many sessions currently hold a trip log.
type SessionCounter interface {
	Count() int
}

// Scheduler manages scheduled tasks.
type Scheduler struct {
	cron     *cron.Cron
	weather  SnapshotSource
	sessions SessionCounter
	cfg      config.DigestConfig
	logger   *zap.Logger
}

// NewScheduler creates a new scheduler instance whose schedule is read in loc.
func NewScheduler(cfg config.DigestConfig, loc *time.Location, weather SnapshotSource, sessions SessionCounter, logger *zap.Logger) *Scheduler {
	if logger == nil {
		logger = zap.NewNop()
	}
	if loc == nil {
		loc = time.UTC
	}

	return &Scheduler{
		cron:     cron.New(cron.WithLocation(loc)),
		weather:  weather,
		sessions: sessions,
		cfg:      cfg,
		logger:   logger,
	}
}

// Start schedules the morning conditions digest and starts the cron loop.
// An empty schedule leaves the scheduler idle.
func (s *Scheduler) Start() {
	if s.cfg.CronSchedule == "" {
		s.logger.Info("conditions digest disabled")
		return
	}

	s.logger.Info("starting scheduler", zap.String("schedule", s.cfg.CronSchedule))
	if _, err := s.cron.AddFunc(s.cfg.CronSchedule, s.logConditionsDigest); err != nil {
		s.logger.Error("failed to schedule conditions digest", zap.Error(err))
		return
	}

	s.cron.Start()
}

// Stop stops the scheduler and waits for a running digest to finish.
func (s *Scheduler) Stop() {
	s.logger.Info("stopping scheduler")
	<-s.cron.Stop().Done()
}

func (s *Scheduler) logConditionsDigest() {
	ctx, cancel := context.WithTimeout(context.Background(), digestTimeout)
	defer cancel()

	active := 0
	if s.sessions != nil {
		active = s.sessions.Count()
	}

	snapshot, ok := s.weather.Snapshot(ctx)
	if !ok {
		s.logger.Info("conditions digest: weather unavailable", zap.Int("active_sessions", active))
		return
	}

	s.logger.Info("conditions digest",
		zap.String("condition", string(snapshot.Condition)),
		zap.Float64("temp_min_f", snapshot.TempMinF),
		zap.Float64("temp_max_f", snapshot.TempMaxF),
		zap.Float64("precipitation_mm", snapshot.PrecipitationMM),
		zap.Int("active_sessions", active))
}
