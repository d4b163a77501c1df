package domain

import (
	"time"

	"github.com/google/uuid"
)

// GradeCounts holds per-rating counters for a study session.
type GradeCounts struct {
	Again int `json:"again"`
	Hard  int `json:"hard"`
	Good  int `json:"good"`
	Easy  int `json:"easy"`
}

// Add increments the counter for the given rating.
func (g *GradeCounts) Add(r Rating) {
	switch r {
	case RatingAgain:
		g.Again++
	case RatingHard:
		g.Hard++
	case RatingGood:
		g.Good++
	case RatingEasy:
		g.Easy++
	}
}

// Total returns the number of reviews counted.
func (g GradeCounts) Total() int {
	return g.Again + g.Hard + g.Good + g.Easy
}

// StudySession tracks one sitting of reviews from start to finish.
type StudySession struct {
	ID         uuid.UUID     `json:"id"`
	Status     SessionStatus `json:"status"`
	StartedAt  time.Time     `json:"startedAt"`
	FinishedAt *time.Time    `json:"finishedAt,omitempty"`
	Grades     GradeCounts   `json:"grades"`
}
