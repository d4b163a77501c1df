package review

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/pylearn/revision-backend/internal/domain"
)

// AddCard creates a card by hand, outside the quiz import flow.
// The id is derived the same way as for imported cards, so adding a
// card that matches an existing mistake fails with ErrAlreadyExists.
func (s *Service) AddCard(ctx context.Context, input AddCardInput) (*domain.Card, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	now := s.clock.Now()

	concept := input.Concept
	if concept == "" {
		concept = input.Topic
	}
	id := domain.CardID(concept, input.Question)

	if _, err := s.cards.Get(id); err == nil {
		return nil, fmt.Errorf("card %s: %w", id, domain.ErrAlreadyExists)
	}

	card := &domain.Card{
		ID:            id,
		Question:      input.Question,
		CorrectAnswer: input.CorrectAnswer,
		Explanation:   input.Explanation,
		Topic:         input.Topic,
		Concept:       concept,
		EaseFactor:    s.srsConfig.DefaultEaseFactor,
		Due:           now,
		CreatedAt:     now,
		History:       []domain.ReviewRecord{},
	}

	if err := s.cards.Upsert(card); err != nil {
		return nil, fmt.Errorf("upsert card: %w", err)
	}

	s.log.InfoContext(ctx, "card added",
		slog.String("card_id", card.ID),
		slog.String("topic", card.Topic),
	)

	return card, nil
}

// DeleteCard removes a card. A missing id maps to domain.ErrNotFound.
func (s *Service) DeleteCard(ctx context.Context, id string) error {
	if id == "" {
		return domain.NewValidationError("card_id", "required")
	}

	if err := s.cards.Delete(id); err != nil {
		return fmt.Errorf("delete card: %w", err)
	}

	s.log.InfoContext(ctx, "card deleted", slog.String("card_id", id))
	return nil
}

// ResetProgress resets every card's scheduling state and zeroes the
// running statistics. Card content and provenance are kept.
func (s *Service) ResetProgress(ctx context.Context) error {
	now := s.clock.Now()

	col, err := s.cards.Load()
	if err != nil {
		return fmt.Errorf("load collection: %w", err)
	}

	for _, c := range col.Cards {
		c.EaseFactor = s.srsConfig.DefaultEaseFactor
		c.IntervalDays = 0
		c.Repetitions = 0
		c.Due = now
		c.LastReview = nil
		c.History = []domain.ReviewRecord{}
	}
	col.Stats = domain.Stats{}

	if err := s.cards.Save(col); err != nil {
		return fmt.Errorf("save collection: %w", err)
	}

	s.log.InfoContext(ctx, "progress reset", slog.Int("cards", len(col.Cards)))
	return nil
}

// ClearAll erases the persisted flashcard record entirely.
func (s *Service) ClearAll(ctx context.Context) error {
	if err := s.cards.Clear(); err != nil {
		return fmt.Errorf("clear collection: %w", err)
	}

	s.log.InfoContext(ctx, "all flashcard data cleared")
	return nil
}
