package review

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/pylearn/revision-backend/internal/domain"
)

// ReviewCardInput holds the parameters for reviewing a card.
type ReviewCardInput struct {
	CardID    string
	Rating    domain.Rating
	SessionID *uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i *ReviewCardInput) Validate() error {
	var errs []domain.FieldError

	if i.CardID == "" {
		errs = append(errs, domain.FieldError{Field: "card_id", Message: "required"})
	}
	if !i.Rating.IsValid() {
		errs = append(errs, domain.FieldError{Field: "rating", Message: "must be AGAIN, HARD, GOOD, or EASY"})
	}
	// SessionID is optional and can be nil.

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// RecordQuizAttemptInput holds one quiz result to append to the
// stored history.
type RecordQuizAttemptInput struct {
	Topic        string
	WrongAnswers []WrongAnswerInput
}

// WrongAnswerInput is one mistake within a quiz attempt.
type WrongAnswerInput struct {
	Question      string
	CorrectAnswer string
	UserAnswer    string
	Explanation   string
	Concept       string
}

// Validate checks all fields and collects all errors.
func (i *RecordQuizAttemptInput) Validate() error {
	var errs []domain.FieldError

	if i.Topic == "" {
		errs = append(errs, domain.FieldError{Field: "topic", Message: "required"})
	}
	for n, w := range i.WrongAnswers {
		if w.Question == "" {
			errs = append(errs, domain.FieldError{
				Field:   fmt.Sprintf("wrong_answers[%d].question", n),
				Message: "required",
			})
		}
		if w.CorrectAnswer == "" {
			errs = append(errs, domain.FieldError{
				Field:   fmt.Sprintf("wrong_answers[%d].correct_answer", n),
				Message: "required",
			})
		}
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// AddCardInput holds the parameters for adding a card manually.
type AddCardInput struct {
	Question      string
	CorrectAnswer string
	Explanation   string
	Topic         string
	// Concept defaults to Topic when empty.
	Concept string
}

// Validate checks all fields and collects all errors.
func (i *AddCardInput) Validate() error {
	var errs []domain.FieldError

	if i.Question == "" {
		errs = append(errs, domain.FieldError{Field: "question", Message: "required"})
	}
	if i.CorrectAnswer == "" {
		errs = append(errs, domain.FieldError{Field: "correct_answer", Message: "required"})
	}
	if i.Topic == "" {
		errs = append(errs, domain.FieldError{Field: "topic", Message: "required"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
