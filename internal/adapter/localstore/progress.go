package localstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/pylearn/revision-backend/internal/domain"
)

// Progress provides activity/topic progress persistence.
type Progress struct {
	kv  kv
	log *slog.Logger
}

// NewProgress creates a new progress repository.
func NewProgress(store kv, log *slog.Logger) *Progress {
	return &Progress{kv: store, log: log}
}

// Load reads the progress record, degrading to the empty default when
// the record is missing or unreadable.
func (r *Progress) Load() (*domain.ProgressData, error) {
	raw, err := r.kv.Get(KeyProgress)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.NewProgressData(), nil
		}
		return nil, fmt.Errorf("load progress: %w", err)
	}

	var data domain.ProgressData
	if err := json.Unmarshal(raw, &data); err != nil {
		r.log.Warn("progress record is corrupt, starting empty",
			slog.String("error", err.Error()),
		)
		return domain.NewProgressData(), nil
	}
	if data.Activities == nil {
		data.Activities = map[string]*domain.ActivityProgress{}
	}
	if data.Topics == nil {
		data.Topics = map[string]domain.TopicProgress{}
	}
	return &data, nil
}

// Save writes the full progress record.
func (r *Progress) Save(data *domain.ProgressData) error {
	raw, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("encode progress: %w", err)
	}
	if err := r.kv.Put(KeyProgress, raw); err != nil {
		return fmt.Errorf("save progress: %w", err)
	}
	return nil
}

// Clear erases the persisted progress record.
func (r *Progress) Clear() error {
	if err := r.kv.Delete(KeyProgress); err != nil {
		return fmt.Errorf("clear progress: %w", err)
	}
	return nil
}
