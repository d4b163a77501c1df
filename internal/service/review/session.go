package review

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/pylearn/revision-backend/internal/domain"
)

// StartSession begins a study sitting. Starting while another sitting
// is active is idempotent: the active session is returned as-is.
func (s *Service) StartSession(ctx context.Context) (*domain.StudySession, error) {
	active, err := s.sessions.GetActive()
	if err == nil {
		return active, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("find active session: %w", err)
	}

	session := &domain.StudySession{
		ID:        uuid.New(),
		Status:    domain.SessionStatusActive,
		StartedAt: s.clock.Now(),
	}

	if err := s.sessions.Upsert(session); err != nil {
		return nil, fmt.Errorf("save session: %w", err)
	}

	s.log.InfoContext(ctx, "session started", slog.String("session_id", session.ID.String()))
	return session, nil
}

// FinishSession closes a sitting and stamps its end time. Finishing an
// already finished session is idempotent and returns it unchanged.
func (s *Service) FinishSession(ctx context.Context, id uuid.UUID) (*domain.StudySession, error) {
	session, err := s.sessions.Get(id)
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}
	if session.Status == domain.SessionStatusFinished {
		return session, nil
	}

	now := s.clock.Now()
	session.Status = domain.SessionStatusFinished
	session.FinishedAt = &now

	if err := s.sessions.Upsert(session); err != nil {
		return nil, fmt.Errorf("save session: %w", err)
	}

	s.log.InfoContext(ctx, "session finished",
		slog.String("session_id", session.ID.String()),
		slog.Int("reviews", session.Grades.Total()),
	)
	return session, nil
}

// ActiveSession returns the session currently in progress, or nil when
// there is none.
func (s *Service) ActiveSession(ctx context.Context) (*domain.StudySession, error) {
	session, err := s.sessions.GetActive()
	if errors.Is(err, domain.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find active session: %w", err)
	}
	return session, nil
}
