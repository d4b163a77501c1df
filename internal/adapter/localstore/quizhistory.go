package localstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/pylearn/revision-backend/internal/domain"
)

// QuizHistory reads the quiz-history record the quiz widgets write.
// The review engine treats it as read-only input; Save exists for the
// collaborators that produce it.
type QuizHistory struct {
	kv  kv
	log *slog.Logger
}

// NewQuizHistory creates a new quiz history repository.
func NewQuizHistory(store kv, log *slog.Logger) *QuizHistory {
	return &QuizHistory{kv: store, log: log}
}

// List returns all recorded quiz attempts in their stored order.
// Missing or corrupt records degrade to an empty history.
func (r *QuizHistory) List() ([]domain.QuizAttempt, error) {
	raw, err := r.kv.Get(KeyQuizHistory)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("load quiz history: %w", err)
	}

	var attempts []domain.QuizAttempt
	if err := json.Unmarshal(raw, &attempts); err != nil {
		r.log.Warn("quiz history record is corrupt, treating as empty",
			slog.String("error", err.Error()),
		)
		return nil, nil
	}
	return attempts, nil
}

// Save replaces the stored quiz history.
func (r *QuizHistory) Save(attempts []domain.QuizAttempt) error {
	raw, err := json.Marshal(attempts)
	if err != nil {
		return fmt.Errorf("encode quiz history: %w", err)
	}
	if err := r.kv.Put(KeyQuizHistory, raw); err != nil {
		return fmt.Errorf("save quiz history: %w", err)
	}
	return nil
}
