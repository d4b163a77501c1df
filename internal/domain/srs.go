package domain

import "time"

// SRSConfig holds the spaced-repetition algorithm parameters (pure
// domain type; internal/config parses and validates the raw form).
type SRSConfig struct {
	// DefaultEaseFactor is assigned to newly created cards.
	DefaultEaseFactor float64
	// MinEaseFactor is the floor the ease factor can never drop below.
	MinEaseFactor float64
	// FirstIntervalDays is the interval after the first successful recall.
	FirstIntervalDays int
	// SecondIntervalDays is the interval after the second consecutive
	// successful recall; later intervals grow by the ease factor.
	SecondIntervalDays int
	// MatureIntervalDays is the interval at which a card counts as learned.
	MatureIntervalDays int
	// HardEasePenalty is subtracted from the ease factor on HARD.
	HardEasePenalty float64
	// EasyEaseBonus is added to the ease factor on EASY.
	EasyEaseBonus float64
	// RelearnDelay is how far ahead a failed card (interval 0) is
	// rescheduled, keeping it in near-term rotation within the session.
	RelearnDelay time.Duration
}
