// Package review implements the spaced-repetition engine: the pure
// scheduling function, the review session controller, statistics, and
// snapshot import/export.
package review

import (
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/pylearn/revision-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type cardStore interface {
	Load() (*domain.Collection, error)
	Save(col *domain.Collection) error
	ReplaceAll(col *domain.Collection) error
	Get(id string) (*domain.Card, error)
	Upsert(card *domain.Card) error
	Delete(id string) error
	Clear() error
}

type quizHistoryStore interface {
	List() ([]domain.QuizAttempt, error)
	Save(attempts []domain.QuizAttempt) error
}

type sessionStore interface {
	Get(id uuid.UUID) (*domain.StudySession, error)
	GetActive() (*domain.StudySession, error)
	Upsert(session *domain.StudySession) error
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service implements the review business logic. All operations are
// synchronous; there is exactly one logical writer, so every mutation
// is a whole-snapshot read-modify-write.
type Service struct {
	cards         cardStore
	quiz          quizHistoryStore
	sessions      sessionStore
	log           *slog.Logger
	clock         clockwork.Clock
	srsConfig     domain.SRSConfig
	newCardsLimit int
	tz            *time.Location
}

// NewService creates a new review service. The timezone governs
// calendar-day comparisons for the streak counter; nil defaults to UTC.
func NewService(
	log *slog.Logger,
	cards cardStore,
	quiz quizHistoryStore,
	sessions sessionStore,
	clock clockwork.Clock,
	srsConfig domain.SRSConfig,
	newCardsLimit int,
	tz *time.Location,
) (*Service, error) {
	if log == nil {
		return nil, errors.New("review: logger is required")
	}
	if cards == nil {
		return nil, errors.New("review: card store is required")
	}
	if quiz == nil {
		return nil, errors.New("review: quiz history store is required")
	}
	if sessions == nil {
		return nil, errors.New("review: session store is required")
	}
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	if newCardsLimit <= 0 {
		newCardsLimit = 10
	}
	if tz == nil {
		tz = time.UTC
	}

	return &Service{
		cards:         cards,
		quiz:          quiz,
		sessions:      sessions,
		log:           log,
		clock:         clock,
		srsConfig:     srsConfig,
		newCardsLimit: newCardsLimit,
		tz:            tz,
	}, nil
}

// dayOf returns the calendar date of t in loc, at midnight.
func dayOf(t time.Time, loc *time.Location) time.Time {
	lt := t.In(loc)
	return time.Date(lt.Year(), lt.Month(), lt.Day(), 0, 0, 0, 0, loc)
}
