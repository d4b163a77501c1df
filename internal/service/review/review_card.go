package review

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/pylearn/revision-backend/internal/domain"
)

// ReviewCard records a review and updates the card's scheduling state.
//
// A nonexistent card id is not an error: the call returns (nil, nil)
// and the caller checks for absence. The card update, the appended
// history record, and the running statistics are written as one
// snapshot.
func (s *Service) ReviewCard(ctx context.Context, input ReviewCardInput) (*domain.Card, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	// One "now" per operation: due-date math, streak comparison, and
	// the history record all use the same instant.
	now := s.clock.Now()

	col, err := s.cards.Load()
	if err != nil {
		return nil, fmt.Errorf("load collection: %w", err)
	}

	card, ok := col.Cards[input.CardID]
	if !ok {
		s.log.DebugContext(ctx, "review of unknown card ignored",
			slog.String("card_id", input.CardID),
		)
		return nil, nil
	}

	result := CalculateSRS(SRSInput{
		EaseFactor:   card.EaseFactor,
		IntervalDays: card.IntervalDays,
		Repetitions:  card.Repetitions,
		Rating:       input.Rating,
		Now:          now,
		Config:       s.srsConfig,
	})

	// One-shot learned transition: inspects only prior history, before
	// the new record is appended. Re-crossing the threshold later must
	// not double-count.
	if result.IntervalDays >= s.srsConfig.MatureIntervalDays &&
		!card.WasLearned(s.srsConfig.MatureIntervalDays) {
		col.Stats.CardsLearned++
	}

	card.EaseFactor = result.EaseFactor
	card.IntervalDays = result.IntervalDays
	card.Repetitions = result.Repetitions
	card.Due = result.Due
	card.LastReview = &now
	card.History = append(card.History, domain.ReviewRecord{
		Date:         now,
		Rating:       input.Rating,
		IntervalDays: result.IntervalDays,
	})

	col.Stats.TotalReviews++
	s.updateStreak(&col.Stats, now)

	if err := s.cards.Save(col); err != nil {
		return nil, fmt.Errorf("save collection: %w", err)
	}

	if input.SessionID != nil {
		s.recordSessionGrade(ctx, *input.SessionID, input.Rating)
	}

	s.log.InfoContext(ctx, "card reviewed",
		slog.String("card_id", card.ID),
		slog.String("rating", input.Rating.String()),
		slog.Int("interval_days", card.IntervalDays),
		slog.Float64("ease_factor", card.EaseFactor),
		slog.Int("streak", col.Stats.CurrentStreak),
	)

	return card, nil
}

// updateStreak advances the consecutive-day counter by comparing
// calendar dates, not timestamps, in the configured timezone.
func (s *Service) updateStreak(stats *domain.Stats, now time.Time) {
	today := dayOf(now, s.tz)

	switch {
	case stats.LastReview == nil:
		stats.CurrentStreak = 1
	case dayOf(*stats.LastReview, s.tz).Equal(today):
		// Same day, streak unchanged.
	case dayOf(*stats.LastReview, s.tz).AddDate(0, 0, 1).Equal(today):
		stats.CurrentStreak++
	default:
		// A gap of two or more days resets the streak to 1, not 0.
		stats.CurrentStreak = 1
	}

	stats.LastReview = &now
}

// recordSessionGrade tallies the rating on the session, if it exists
// and is still active. Session bookkeeping never fails the review.
func (s *Service) recordSessionGrade(ctx context.Context, id uuid.UUID, rating domain.Rating) {
	session, err := s.sessions.Get(id)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			s.log.WarnContext(ctx, "load session failed",
				slog.String("session_id", id.String()),
				slog.String("error", err.Error()),
			)
		}
		return
	}
	if session.Status != domain.SessionStatusActive {
		return
	}

	session.Grades.Add(rating)
	if err := s.sessions.Upsert(session); err != nil {
		s.log.WarnContext(ctx, "save session failed",
			slog.String("session_id", id.String()),
			slog.String("error", err.Error()),
		)
	}
}
