// Package progress tracks page activities and per-topic completion,
// the counters the site's progress bars and status badges read from.
package progress

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"

	"github.com/jonboulle/clockwork"

	"github.com/pylearn/revision-backend/internal/domain"
)

type progressStore interface {
	Load() (*domain.ProgressData, error)
	Save(data *domain.ProgressData) error
	Clear() error
}

// Service implements the progress tracking business logic. Like the
// review service, every mutation is a whole-snapshot read-modify-write.
type Service struct {
	store progressStore
	log   *slog.Logger
	clock clockwork.Clock
}

// NewService creates a new progress service.
func NewService(log *slog.Logger, store progressStore, clock clockwork.Clock) (*Service, error) {
	if log == nil {
		return nil, errors.New("progress: logger is required")
	}
	if store == nil {
		return nil, errors.New("progress: store is required")
	}
	if clock == nil {
		clock = clockwork.NewRealClock()
	}

	return &Service{store: store, log: log, clock: clock}, nil
}

// StartActivity marks an activity as in progress and remembers it as
// the last visited one. Starting an already-known activity only moves
// the last-visited pointer.
func (s *Service) StartActivity(ctx context.Context, activityID, topicID string) error {
	if activityID == "" {
		return domain.NewValidationError("activity_id", "required")
	}

	now := s.clock.Now()

	data, err := s.store.Load()
	if err != nil {
		return fmt.Errorf("load progress: %w", err)
	}

	if _, ok := data.Activities[activityID]; !ok {
		data.Activities[activityID] = &domain.ActivityProgress{
			Status:    domain.ActivityStatusInProgress,
			TopicID:   topicID,
			StartedAt: now,
		}
	}
	data.LastVisited = activityID
	recomputeTopic(data, topicID)

	if err := s.store.Save(data); err != nil {
		return fmt.Errorf("save progress: %w", err)
	}

	s.log.DebugContext(ctx, "activity started",
		slog.String("activity_id", activityID),
		slog.String("topic_id", topicID),
	)
	return nil
}

// CompleteActivity marks an activity as completed, counts the attempt,
// and keeps the best score seen so far. Completing an activity that was
// never started creates it on the spot.
func (s *Service) CompleteActivity(ctx context.Context, activityID string, score *int) error {
	if activityID == "" {
		return domain.NewValidationError("activity_id", "required")
	}

	now := s.clock.Now()

	data, err := s.store.Load()
	if err != nil {
		return fmt.Errorf("load progress: %w", err)
	}

	activity, ok := data.Activities[activityID]
	if !ok {
		activity = &domain.ActivityProgress{
			Status:    domain.ActivityStatusCompleted,
			StartedAt: now,
			Attempts:  1,
			BestScore: score,
		}
		data.Activities[activityID] = activity
	} else {
		activity.Status = domain.ActivityStatusCompleted
		activity.CompletedAt = &now
		activity.Attempts++
		bumpBestScore(activity, score)
	}

	if activity.TopicID != "" {
		recomputeTopic(data, activity.TopicID)
	}

	if err := s.store.Save(data); err != nil {
		return fmt.Errorf("save progress: %w", err)
	}

	s.log.InfoContext(ctx, "activity completed",
		slog.String("activity_id", activityID),
		slog.Int("attempts", activity.Attempts),
	)
	return nil
}

// RecordAttempt counts one more attempt at a known activity without
// changing its status. Attempts at unknown activities are dropped.
func (s *Service) RecordAttempt(ctx context.Context, activityID string, score *int) error {
	if activityID == "" {
		return domain.NewValidationError("activity_id", "required")
	}

	data, err := s.store.Load()
	if err != nil {
		return fmt.Errorf("load progress: %w", err)
	}

	activity, ok := data.Activities[activityID]
	if !ok {
		return nil
	}

	activity.Attempts++
	bumpBestScore(activity, score)

	if err := s.store.Save(data); err != nil {
		return fmt.Errorf("save progress: %w", err)
	}
	return nil
}

// GetActivityStatus returns the progress of one activity. Unknown
// activities read as not started.
func (s *Service) GetActivityStatus(ctx context.Context, activityID string) (*domain.ActivityProgress, error) {
	data, err := s.store.Load()
	if err != nil {
		return nil, fmt.Errorf("load progress: %w", err)
	}

	if activity, ok := data.Activities[activityID]; ok {
		return activity, nil
	}
	return &domain.ActivityProgress{Status: domain.ActivityStatusNotStarted}, nil
}

// GetTopicProgress returns the completion summary for a topic. Unknown
// topics read as zero progress.
func (s *Service) GetTopicProgress(ctx context.Context, topicID string) (domain.TopicProgress, error) {
	data, err := s.store.Load()
	if err != nil {
		return domain.TopicProgress{}, fmt.Errorf("load progress: %w", err)
	}
	return data.Topics[topicID], nil
}

// SetTopicTotal declares how many activities a topic has, so progress
// percentages can account for activities not yet touched.
func (s *Service) SetTopicTotal(ctx context.Context, topicID string, total int) error {
	if topicID == "" {
		return domain.NewValidationError("topic_id", "required")
	}
	if total < 0 {
		return domain.NewValidationError("total", "must not be negative")
	}

	data, err := s.store.Load()
	if err != nil {
		return fmt.Errorf("load progress: %w", err)
	}

	topic := data.Topics[topicID]
	topic.Total = total
	topic.Progress = percentage(topic.Completed, total)
	data.Topics[topicID] = topic

	if err := s.store.Save(data); err != nil {
		return fmt.Errorf("save progress: %w", err)
	}
	return nil
}

// LastVisited returns the id of the most recently started activity,
// empty when nothing was visited yet.
func (s *Service) LastVisited(ctx context.Context) (string, error) {
	data, err := s.store.Load()
	if err != nil {
		return "", fmt.Errorf("load progress: %w", err)
	}
	return data.LastVisited, nil
}

// Reset erases all recorded progress.
func (s *Service) Reset(ctx context.Context) error {
	if err := s.store.Clear(); err != nil {
		return fmt.Errorf("clear progress: %w", err)
	}

	s.log.InfoContext(ctx, "progress data cleared")
	return nil
}

// recomputeTopic rebuilds a topic's summary from its activities. A
// topic with no known activities reads as zero.
func recomputeTopic(data *domain.ProgressData, topicID string) {
	if topicID == "" {
		return
	}

	var completed, total int
	for _, activity := range data.Activities {
		if activity.TopicID != topicID {
			continue
		}
		total++
		if activity.Status == domain.ActivityStatusCompleted {
			completed++
		}
	}

	data.Topics[topicID] = domain.TopicProgress{
		Progress:  percentage(completed, total),
		Completed: completed,
		Total:     total,
	}
}

// bumpBestScore keeps the highest score seen. A nil score means the
// activity has no score to report.
func bumpBestScore(activity *domain.ActivityProgress, score *int) {
	if score == nil {
		return
	}
	if activity.BestScore == nil || *score > *activity.BestScore {
		v := *score
		activity.BestScore = &v
	}
}

func percentage(completed, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(completed) / float64(total) * 100))
}
