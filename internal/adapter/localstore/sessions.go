package localstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/pylearn/revision-backend/internal/domain"
)

// Sessions provides study session persistence.
type Sessions struct {
	kv  kv
	log *slog.Logger
}

// NewSessions creates a new session repository.
func NewSessions(store kv, log *slog.Logger) *Sessions {
	return &Sessions{kv: store, log: log}
}

func (r *Sessions) load() (map[uuid.UUID]*domain.StudySession, error) {
	raw, err := r.kv.Get(KeySessions)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return map[uuid.UUID]*domain.StudySession{}, nil
		}
		return nil, fmt.Errorf("load sessions: %w", err)
	}

	var sessions map[uuid.UUID]*domain.StudySession
	if err := json.Unmarshal(raw, &sessions); err != nil {
		r.log.Warn("session record is corrupt, starting empty",
			slog.String("error", err.Error()),
		)
		return map[uuid.UUID]*domain.StudySession{}, nil
	}
	return sessions, nil
}

func (r *Sessions) save(sessions map[uuid.UUID]*domain.StudySession) error {
	raw, err := json.Marshal(sessions)
	if err != nil {
		return fmt.Errorf("encode sessions: %w", err)
	}
	if err := r.kv.Put(KeySessions, raw); err != nil {
		return fmt.Errorf("save sessions: %w", err)
	}
	return nil
}

// Get returns a session by id.
func (r *Sessions) Get(id uuid.UUID) (*domain.StudySession, error) {
	sessions, err := r.load()
	if err != nil {
		return nil, err
	}
	s, ok := sessions[id]
	if !ok {
		return nil, fmt.Errorf("session %s: %w", id, domain.ErrNotFound)
	}
	return s, nil
}

// GetActive returns the session with ACTIVE status, if any.
func (r *Sessions) GetActive() (*domain.StudySession, error) {
	sessions, err := r.load()
	if err != nil {
		return nil, err
	}
	for _, s := range sessions {
		if s.Status == domain.SessionStatusActive {
			return s, nil
		}
	}
	return nil, fmt.Errorf("active session: %w", domain.ErrNotFound)
}

// Upsert inserts or replaces a session.
func (r *Sessions) Upsert(session *domain.StudySession) error {
	sessions, err := r.load()
	if err != nil {
		return err
	}
	sessions[session.ID] = session
	return r.save(sessions)
}
