package review

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/pylearn/revision-backend/internal/domain"
)

// Export serializes the full collection as an indented JSON snapshot,
// the same shape the store persists. The output round-trips through
// Import unchanged.
func (s *Service) Export(ctx context.Context) ([]byte, error) {
	col, err := s.cards.Load()
	if err != nil {
		return nil, fmt.Errorf("load collection: %w", err)
	}

	data, err := json.MarshalIndent(col, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal collection: %w", err)
	}

	s.log.InfoContext(ctx, "collection exported", slog.Int("cards", len(col.Cards)))
	return data, nil
}

// importSnapshot mirrors domain.Collection with pointer fields so a
// missing "cards" or "stats" key is distinguishable from an empty one.
type importSnapshot struct {
	Cards map[string]*domain.Card `json:"cards"`
	Stats *domain.Stats           `json:"stats"`
}

// Import replaces the whole collection with a previously exported
// snapshot. Malformed JSON or a payload missing the cards or stats
// shape fails validation and leaves the store untouched.
func (s *Service) Import(ctx context.Context, data []byte) error {
	var snap importSnapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return fmt.Errorf("%w: %s", domain.NewValidationError("snapshot", "not valid JSON"), err)
	}
	if snap.Cards == nil {
		return domain.NewValidationError("cards", "required")
	}
	if snap.Stats == nil {
		return domain.NewValidationError("stats", "required")
	}

	for id, c := range snap.Cards {
		if c == nil {
			return domain.NewValidationError("cards."+id, "null card")
		}
		if c.ID == "" {
			c.ID = id
		}
	}

	col := &domain.Collection{
		Cards: snap.Cards,
		Stats: *snap.Stats,
	}

	if err := s.cards.ReplaceAll(col); err != nil {
		return fmt.Errorf("replace collection: %w", err)
	}

	s.log.InfoContext(ctx, "collection imported", slog.Int("cards", len(col.Cards)))
	return nil
}
