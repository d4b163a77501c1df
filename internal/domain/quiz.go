package domain

import "time"

// QuizAttempt is one entry of the quiz-history record. Quiz widgets
// append attempts; the review engine mines them for cards.
type QuizAttempt struct {
	Topic        string        `json:"topic"`
	TakenAt      time.Time     `json:"takenAt,omitzero"`
	WrongAnswers []WrongAnswer `json:"wrongAnswers"`
}

// WrongAnswer is a single mistake captured during a quiz attempt.
type WrongAnswer struct {
	Question      string `json:"question"`
	CorrectAnswer string `json:"correctAnswer"`
	UserAnswer    string `json:"userAnswer,omitempty"`
	Explanation   string `json:"explanation,omitempty"`
	// Concept is optional; when empty the attempt's topic is used for
	// id derivation instead.
	Concept string `json:"concept,omitempty"`
}
