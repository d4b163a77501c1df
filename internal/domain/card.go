package domain

import (
	"strconv"
	"time"

	"github.com/cespare/xxhash/v2"
)

// Card is one reviewable fact derived from a quiz mistake or added by hand.
//
// The JSON tags define the persisted snapshot format; changing them breaks
// previously exported backups.
type Card struct {
	ID            string  `json:"id"`
	Question      string  `json:"question"`
	CorrectAnswer string  `json:"correctAnswer"`
	UserAnswer    string  `json:"userAnswer,omitempty"`
	Explanation   string  `json:"explanation,omitempty"`
	Topic         string  `json:"topic"`
	Concept       string  `json:"concept"`
	EaseFactor    float64 `json:"easeFactor"`
	// IntervalDays is the current review interval in whole days.
	// Zero means the card is still in the short-term relearning queue
	// and is rescheduled minutes, not days, ahead.
	IntervalDays int            `json:"interval"`
	Repetitions  int            `json:"repetitions"`
	Due          time.Time      `json:"dueDate"`
	LastReview   *time.Time     `json:"lastReview,omitempty"`
	CreatedAt    time.Time      `json:"createdAt"`
	History      []ReviewRecord `json:"reviewHistory"`
	Imported     bool           `json:"imported,omitempty"`
}

// ReviewRecord is one append-only entry in a card's review history.
type ReviewRecord struct {
	Date         time.Time `json:"date"`
	Rating       Rating    `json:"rating"`
	IntervalDays int       `json:"interval"`
}

// IsDue reports whether the card should be shown at the given time.
func (c *Card) IsDue(now time.Time) bool {
	return !c.Due.After(now)
}

// IsNew reports whether the card has never had a successful scheduling
// round trip since creation or its last reset.
func (c *Card) IsNew() bool {
	return c.Repetitions == 0
}

// WasLearned reports whether any history record crossed the given
// maturity interval. Used for the one-shot learned transition.
func (c *Card) WasLearned(matureIntervalDays int) bool {
	for _, r := range c.History {
		if r.IntervalDays >= matureIntervalDays {
			return true
		}
	}
	return false
}

// Stats are the store-wide running counters.
type Stats struct {
	TotalReviews  int        `json:"totalReviews"`
	CardsLearned  int        `json:"cardsLearned"`
	CurrentStreak int        `json:"currentStreak"`
	LastReview    *time.Time `json:"lastReviewDate,omitempty"`
}

// Collection is the full persisted flashcard record. It is read and
// written as a whole; the unit of atomicity is one snapshot.
type Collection struct {
	Cards map[string]*Card `json:"cards"`
	Stats Stats            `json:"stats"`
}

// NewCollection returns the empty default a missing or unreadable
// snapshot degrades to.
func NewCollection() *Collection {
	return &Collection{Cards: map[string]*Card{}}
}

// CardID derives the deterministic card id from the concept (or topic,
// when the mistake carries no concept) and the question text.
// Re-importing the same mistake always yields the same id; collisions
// are tolerated as a rare, accepted risk.
func CardID(concept, question string) string {
	h := xxhash.Sum64String(concept + "-" + question)
	return "card-" + strconv.FormatUint(h, 36)
}
