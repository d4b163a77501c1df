package review

import (
	"math"
	"time"

	"github.com/pylearn/revision-backend/internal/domain"
)

// SRSInput holds all data needed for the scheduling calculation.
type SRSInput struct {
	EaseFactor   float64
	IntervalDays int
	Repetitions  int
	Rating       domain.Rating
	Now          time.Time
	Config       domain.SRSConfig
}

// SRSOutput is the result of the scheduling calculation.
type SRSOutput struct {
	EaseFactor   float64
	IntervalDays int
	Repetitions  int
	Due          time.Time
}

// CalculateSRS is a pure function. No store, no context, no logger.
// All decisions are deterministic based on input parameters.
//
// AGAIN resets the card to the short-term relearning queue (interval 0,
// repetitions 0) and leaves the ease factor untouched. Any successful
// recall walks the graduation ladder: first interval, second interval,
// then ease-scaled growth. The ease adjustment uses the pre-update ease
// factor and is floored at the configured minimum.
func CalculateSRS(in SRSInput) SRSOutput {
	ease := in.EaseFactor
	interval := in.IntervalDays
	reps := in.Repetitions

	if in.Rating == domain.RatingAgain {
		// Failed recall goes back to the relearning queue.
		reps = 0
		interval = 0
	} else {
		switch {
		case reps == 0:
			interval = in.Config.FirstIntervalDays
		case reps == 1:
			interval = in.Config.SecondIntervalDays
		default:
			// Growth uses the pre-adjustment ease factor.
			interval = int(math.Round(float64(interval) * in.EaseFactor))
		}
		reps++

		ease = math.Max(in.Config.MinEaseFactor, in.EaseFactor+easeAdjust(in.Rating, in.Config))
	}

	var due time.Time
	if interval == 0 {
		// Keep failed cards in near-term rotation within the session.
		due = in.Now.Add(in.Config.RelearnDelay)
	} else {
		// Same time-of-day, interval days ahead.
		due = in.Now.AddDate(0, 0, interval)
	}

	return SRSOutput{
		EaseFactor:   ease,
		IntervalDays: interval,
		Repetitions:  reps,
		Due:          due,
	}
}

// easeAdjust returns the ease delta for a successful recall. Ratings
// without a defined adjustment leave the ease unchanged.
func easeAdjust(r domain.Rating, cfg domain.SRSConfig) float64 {
	switch r {
	case domain.RatingHard:
		return -cfg.HardEasePenalty
	case domain.RatingEasy:
		return cfg.EasyEaseBonus
	default:
		return 0
	}
}
