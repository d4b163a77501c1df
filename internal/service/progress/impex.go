package progress

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/pylearn/revision-backend/internal/domain"
)

// Export serializes the full progress record as indented JSON.
func (s *Service) Export(ctx context.Context) ([]byte, error) {
	data, err := s.store.Load()
	if err != nil {
		return nil, fmt.Errorf("load progress: %w", err)
	}

	out, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal progress: %w", err)
	}
	return out, nil
}

// Import replaces the whole progress record with a previously exported
// snapshot. Malformed JSON leaves the store untouched.
func (s *Service) Import(ctx context.Context, raw []byte) error {
	var data domain.ProgressData
	if err := json.Unmarshal(raw, &data); err != nil {
		return fmt.Errorf("%w: %s", domain.NewValidationError("snapshot", "not valid JSON"), err)
	}
	if data.Activities == nil {
		data.Activities = map[string]*domain.ActivityProgress{}
	}
	if data.Topics == nil {
		data.Topics = map[string]domain.TopicProgress{}
	}

	if err := s.store.Save(&data); err != nil {
		return fmt.Errorf("save progress: %w", err)
	}

	s.log.InfoContext(ctx, "progress imported",
		slog.Int("activities", len(data.Activities)),
		slog.Int("topics", len(data.Topics)),
	)
	return nil
}
