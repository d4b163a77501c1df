package review

import (
	"context"
	"fmt"
	"sort"

	"github.com/pylearn/revision-backend/internal/domain"
)

// GetDueCards returns every card whose due date has passed, hardest
// first (ascending ease factor). Ties break on card id so the order is
// reproducible.
func (s *Service) GetDueCards(ctx context.Context) ([]*domain.Card, error) {
	now := s.clock.Now()

	col, err := s.cards.Load()
	if err != nil {
		return nil, fmt.Errorf("load collection: %w", err)
	}

	var due []*domain.Card
	for _, c := range col.Cards {
		if c.IsDue(now) {
			due = append(due, c)
		}
	}

	sort.Slice(due, func(i, j int) bool {
		if due[i].EaseFactor != due[j].EaseFactor {
			return due[i].EaseFactor < due[j].EaseFactor
		}
		return due[i].ID < due[j].ID
	})

	return due, nil
}

// GetNewCards returns cards that have never been successfully reviewed
// (repetitions 0), in id order, truncated to limit. A non-positive
// limit uses the configured default.
func (s *Service) GetNewCards(ctx context.Context, limit int) ([]*domain.Card, error) {
	if limit <= 0 {
		limit = s.newCardsLimit
	}

	col, err := s.cards.Load()
	if err != nil {
		return nil, fmt.Errorf("load collection: %w", err)
	}

	var fresh []*domain.Card
	for _, c := range col.Cards {
		if c.IsNew() {
			fresh = append(fresh, c)
		}
	}

	// Map iteration order is not stable; sort by id for reproducibility.
	sort.Slice(fresh, func(i, j int) bool { return fresh[i].ID < fresh[j].ID })

	if len(fresh) > limit {
		fresh = fresh[:limit]
	}
	return fresh, nil
}

// GetCardsByTopic returns all cards whose topic matches exactly.
func (s *Service) GetCardsByTopic(ctx context.Context, topic string) ([]*domain.Card, error) {
	col, err := s.cards.Load()
	if err != nil {
		return nil, fmt.Errorf("load collection: %w", err)
	}

	var matched []*domain.Card
	for _, c := range col.Cards {
		if c.Topic == topic {
			matched = append(matched, c)
		}
	}

	sort.Slice(matched, func(i, j int) bool { return matched[i].ID < matched[j].ID })

	return matched, nil
}
