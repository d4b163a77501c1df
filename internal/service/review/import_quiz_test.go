package review

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/pylearn/revision-backend/internal/domain"
)

func TestService_ImportFromQuizHistory(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	env := newTestEnv(t, now)

	env.quiz.attempts = []domain.QuizAttempt{
		{
			Topic:   "loops",
			TakenAt: now.AddDate(0, 0, -2),
			WrongAnswers: []domain.WrongAnswer{
				{
					Question:      "What does range(3) produce?",
					CorrectAnswer: "0, 1, 2",
					UserAnswer:    "1, 2, 3",
					Explanation:   "range starts at 0 by default",
					Concept:       "range",
				},
				{
					Question:      "Which loop runs at least once?",
					CorrectAnswer: "None in Python; there is no do-while",
					UserAnswer:    "while",
					// No concept: falls back to the attempt topic.
				},
			},
		},
		{
			Topic:   "strings",
			TakenAt: now.AddDate(0, 0, -1),
			WrongAnswers: []domain.WrongAnswer{
				{
					Question:      "What does 'abc'.upper() return?",
					CorrectAnswer: "'ABC'",
					UserAnswer:    "'Abc'",
					Concept:       "methods",
				},
			},
		},
	}

	n, err := env.svc.ImportFromQuizHistory(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != 3 {
		t.Fatalf("imported = %d, want 3", n)
	}

	col, err := env.cards.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(col.Cards) != 3 {
		t.Fatalf("collection has %d cards, want 3", len(col.Cards))
	}

	fallbackID := domain.CardID("loops", "Which loop runs at least once?")
	card, ok := col.Cards[fallbackID]
	if !ok {
		t.Fatalf("card with topic-fallback concept not found (id %s)", fallbackID)
	}
	if card.Concept != "loops" {
		t.Errorf("Concept = %q, want topic fallback %q", card.Concept, "loops")
	}
	if !card.Imported {
		t.Error("imported card should carry the provenance flag")
	}
	if card.EaseFactor != 2.5 || card.IntervalDays != 0 || card.Repetitions != 0 {
		t.Errorf("fresh scheduling state expected, got %+v", card)
	}
	if !card.Due.Equal(now) {
		t.Errorf("Due = %v, want %v (immediately due)", card.Due, now)
	}
}

func TestService_ImportFromQuizHistory_Idempotent(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	env := newTestEnv(t, now)

	env.quiz.attempts = []domain.QuizAttempt{
		{
			Topic:   "loops",
			TakenAt: now,
			WrongAnswers: []domain.WrongAnswer{
				{Question: "Q1", CorrectAnswer: "A1", Concept: "range"},
			},
		},
	}

	n, err := env.svc.ImportFromQuizHistory(context.Background())
	if err != nil {
		t.Fatalf("first import: %v", err)
	}
	if n != 1 {
		t.Fatalf("first import = %d, want 1", n)
	}

	// Review the card so its state diverges from the default.
	id := domain.CardID("range", "Q1")
	if _, err := env.svc.ReviewCard(context.Background(), ReviewCardInput{CardID: id, Rating: domain.RatingGood}); err != nil {
		t.Fatalf("review: %v", err)
	}

	n, err = env.svc.ImportFromQuizHistory(context.Background())
	if err != nil {
		t.Fatalf("second import: %v", err)
	}
	if n != 0 {
		t.Errorf("second import = %d, want 0", n)
	}

	// The reviewed card kept its progress.
	card := env.mustGet(t, id)
	if card.Repetitions != 1 {
		t.Errorf("Repetitions = %d, want 1 (existing card untouched)", card.Repetitions)
	}
}

func TestService_ImportFromQuizHistory_DuplicateMistakeAcrossAttempts(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	env := newTestEnv(t, now)

	wrong := domain.WrongAnswer{Question: "Q1", CorrectAnswer: "A1", Concept: "range"}
	env.quiz.attempts = []domain.QuizAttempt{
		{Topic: "loops", TakenAt: now.AddDate(0, 0, -3), WrongAnswers: []domain.WrongAnswer{wrong}},
		{Topic: "loops", TakenAt: now, WrongAnswers: []domain.WrongAnswer{wrong}},
	}

	n, err := env.svc.ImportFromQuizHistory(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != 1 {
		t.Errorf("imported = %d, want 1 (same mistake twice)", n)
	}
}

func TestService_RecordQuizAttempt(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	env := newTestEnv(t, now)

	err := env.svc.RecordQuizAttempt(context.Background(), RecordQuizAttemptInput{
		Topic: "loops",
		WrongAnswers: []WrongAnswerInput{
			{Question: "Q1", CorrectAnswer: "A1", UserAnswer: "B1", Concept: "range"},
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	attempts, err := env.quiz.List()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(attempts) != 1 {
		t.Fatalf("attempts = %d, want 1", len(attempts))
	}
	if attempts[0].Topic != "loops" || !attempts[0].TakenAt.Equal(now) {
		t.Errorf("attempt = %+v", attempts[0])
	}
	if len(attempts[0].WrongAnswers) != 1 || attempts[0].WrongAnswers[0].Concept != "range" {
		t.Errorf("wrong answers = %+v", attempts[0].WrongAnswers)
	}

	// A recorded attempt feeds straight into the card import.
	n, err := env.svc.ImportFromQuizHistory(context.Background())
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if n != 1 {
		t.Errorf("imported = %d, want 1", n)
	}
}

func TestService_RecordQuizAttempt_Invalid(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t, time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC))

	err := env.svc.RecordQuizAttempt(context.Background(), RecordQuizAttemptInput{
		WrongAnswers: []WrongAnswerInput{{UserAnswer: "B1"}},
	})
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("error = %v, want ErrValidation", err)
	}

	var vErr *domain.ValidationError
	if !errors.As(err, &vErr) {
		t.Fatal("error is not a ValidationError")
	}
	// Missing topic, question, and correct answer all reported.
	if len(vErr.Errors) != 3 {
		t.Errorf("field errors = %d, want 3 (%+v)", len(vErr.Errors), vErr.Errors)
	}
}

func TestService_ImportFromQuizHistory_EmptyHistory(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t, time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC))

	n, err := env.svc.ImportFromQuizHistory(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != 0 {
		t.Errorf("imported = %d, want 0", n)
	}
}
