package domain

import "fmt"

// Rating represents the user's self-assessed recall quality.
// The numeric values are part of the persisted format: review history
// records store the ordinal, not the name.
type Rating int

const (
	RatingAgain Rating = 0 // complete failure, reset
	RatingHard  Rating = 1 // recalled with difficulty
	RatingGood  Rating = 2 // recalled correctly
	RatingEasy  Rating = 3 // recalled easily
)

func (r Rating) String() string {
	switch r {
	case RatingAgain:
		return "AGAIN"
	case RatingHard:
		return "HARD"
	case RatingGood:
		return "GOOD"
	case RatingEasy:
		return "EASY"
	}
	return fmt.Sprintf("Rating(%d)", int(r))
}

func (r Rating) IsValid() bool {
	return r >= RatingAgain && r <= RatingEasy
}

// ParseRating converts a rating name (case-sensitive, as produced by
// String) back to a Rating.
func ParseRating(s string) (Rating, error) {
	switch s {
	case "AGAIN":
		return RatingAgain, nil
	case "HARD":
		return RatingHard, nil
	case "GOOD":
		return RatingGood, nil
	case "EASY":
		return RatingEasy, nil
	}
	return 0, fmt.Errorf("unknown rating %q: %w", s, ErrValidation)
}

// SessionStatus represents the state of a study session.
type SessionStatus string

const (
	SessionStatusActive   SessionStatus = "ACTIVE"
	SessionStatusFinished SessionStatus = "FINISHED"
)

func (s SessionStatus) String() string { return string(s) }

func (s SessionStatus) IsValid() bool {
	switch s {
	case SessionStatusActive, SessionStatusFinished:
		return true
	}
	return false
}

// ActivityStatus represents the completion state of a page activity.
type ActivityStatus string

const (
	ActivityStatusNotStarted ActivityStatus = "not-started"
	ActivityStatusInProgress ActivityStatus = "in-progress"
	ActivityStatusCompleted  ActivityStatus = "completed"
)

func (s ActivityStatus) String() string { return string(s) }

func (s ActivityStatus) IsValid() bool {
	switch s {
	case ActivityStatusNotStarted, ActivityStatusInProgress, ActivityStatusCompleted:
		return true
	}
	return false
}
