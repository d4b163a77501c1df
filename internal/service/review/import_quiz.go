package review

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/pylearn/revision-backend/internal/domain"
)

// RecordQuizAttempt appends one quiz result to the stored history, the
// record ImportFromQuizHistory later mines for cards.
func (s *Service) RecordQuizAttempt(ctx context.Context, input RecordQuizAttemptInput) error {
	if err := input.Validate(); err != nil {
		return err
	}

	now := s.clock.Now()

	attempts, err := s.quiz.List()
	if err != nil {
		return fmt.Errorf("load quiz history: %w", err)
	}

	attempt := domain.QuizAttempt{
		Topic:   input.Topic,
		TakenAt: now,
	}
	for _, w := range input.WrongAnswers {
		attempt.WrongAnswers = append(attempt.WrongAnswers, domain.WrongAnswer{
			Question:      w.Question,
			CorrectAnswer: w.CorrectAnswer,
			UserAnswer:    w.UserAnswer,
			Explanation:   w.Explanation,
			Concept:       w.Concept,
		})
	}

	if err := s.quiz.Save(append(attempts, attempt)); err != nil {
		return fmt.Errorf("save quiz history: %w", err)
	}

	s.log.InfoContext(ctx, "quiz attempt recorded",
		slog.String("topic", input.Topic),
		slog.Int("wrong_answers", len(input.WrongAnswers)),
	)
	return nil
}

// ImportFromQuizHistory derives new cards from the quiz widgets'
// mistake records and returns the number of cards created.
//
// Card ids are deterministic, so importing the same history twice is a
// no-op for already-seen mistakes: existing cards are never touched.
func (s *Service) ImportFromQuizHistory(ctx context.Context) (int, error) {
	now := s.clock.Now()

	attempts, err := s.quiz.List()
	if err != nil {
		return 0, fmt.Errorf("load quiz history: %w", err)
	}

	col, err := s.cards.Load()
	if err != nil {
		return 0, fmt.Errorf("load collection: %w", err)
	}

	newCards := 0
	for _, attempt := range attempts {
		for _, wrong := range attempt.WrongAnswers {
			concept := wrong.Concept
			if concept == "" {
				concept = attempt.Topic
			}

			id := domain.CardID(concept, wrong.Question)
			if _, exists := col.Cards[id]; exists {
				continue
			}

			col.Cards[id] = &domain.Card{
				ID:            id,
				Question:      wrong.Question,
				CorrectAnswer: wrong.CorrectAnswer,
				UserAnswer:    wrong.UserAnswer,
				Explanation:   wrong.Explanation,
				Topic:         attempt.Topic,
				Concept:       concept,
				EaseFactor:    s.srsConfig.DefaultEaseFactor,
				IntervalDays:  0,
				Repetitions:   0,
				Due:           now,
				CreatedAt:     now,
				History:       []domain.ReviewRecord{},
				Imported:      true,
			}
			newCards++
		}
	}

	if err := s.cards.Save(col); err != nil {
		return 0, fmt.Errorf("save collection: %w", err)
	}

	s.log.InfoContext(ctx, "quiz history imported",
		slog.Int("attempts", len(attempts)),
		slog.Int("new_cards", newCards),
	)

	return newCards, nil
}
