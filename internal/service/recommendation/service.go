package recommendation

import (
	"context"

	"go.uber.org/zap"

	"github.com/mamadbah2/fishtracker/internal/domain/models"
	"github.com/mamadbah2/fishtracker/internal/service/triplog"
)

// SnapshotSource yields today's weather, reporting false when none is available.
type SnapshotSource interface {
	Snapshot(ctx context.Context) (models.WeatherSnapshot, bool)
}

// Recorder receives recommendation outcomes for metrics.
type Recorder interface {
	ObserveRecommendation(outcome models.RecommendationOutcome)
}

// Service ties the weather source to the pure engine.
type Service struct {
	source   SnapshotSource
	recorder Recorder
	logger   *zap.Logger
}

// NewService wires a recommendation service. recorder may be nil.
func NewService(source SnapshotSource, recorder Recorder, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{source: source, recorder: recorder, logger: logger}
}

// Today fetches the snapshot and, when the log has trips, the matching
// recommendation. ok is false when the weather is unavailable; rec is nil when
// there is nothing logged to compare against.
func (s *Service) Today(ctx context.Context, log triplog.TripLog) (snapshot models.WeatherSnapshot, rec *models.Recommendation, ok bool) {
	snapshot, ok = s.source.Snapshot(ctx)
	if !ok {
		return models.WeatherSnapshot{}, nil, false
	}
	if log.Empty() {
		return snapshot, nil, true
	}

	result := Recommend(snapshot, log)
	s.logger.Debug("recommendation computed",
		zap.String("condition", string(snapshot.Condition)),
		zap.String("outcome", string(result.Outcome)),
		zap.Int("matches", result.Matches))
	if s.recorder != nil {
		s.recorder.ObserveRecommendation(result.Outcome)
	}
	return snapshot, &result, true
}
