package review

import (
	"context"
	"fmt"
	"math"
)

// Summary is the dashboard aggregate computed over the full collection
// at call time. Nothing is cached.
type Summary struct {
	TotalCards int
	DueNow     int
	NewCards   int
	// Learning counts cards with at least one successful recall that
	// have not yet reached the maturity interval.
	Learning int
	Mature   int
	// AverageEase is the mean ease factor rounded to two decimal
	// places; zero when the collection is empty.
	AverageEase    float64
	TotalReviews   int
	CardsLearned   int
	CurrentStreak  int
	TopicBreakdown map[string]int
}

// GetStats aggregates the collection into the dashboard summary.
func (s *Service) GetStats(ctx context.Context) (Summary, error) {
	now := s.clock.Now()

	col, err := s.cards.Load()
	if err != nil {
		return Summary{}, fmt.Errorf("load collection: %w", err)
	}

	sum := Summary{
		TotalCards:     len(col.Cards),
		TotalReviews:   col.Stats.TotalReviews,
		CardsLearned:   col.Stats.CardsLearned,
		CurrentStreak:  col.Stats.CurrentStreak,
		TopicBreakdown: map[string]int{},
	}

	var easeTotal float64
	for _, c := range col.Cards {
		if c.IsDue(now) {
			sum.DueNow++
		}
		switch {
		case c.IsNew():
			sum.NewCards++
		case c.IntervalDays < s.srsConfig.MatureIntervalDays:
			sum.Learning++
		}
		if c.IntervalDays >= s.srsConfig.MatureIntervalDays {
			sum.Mature++
		}
		easeTotal += c.EaseFactor
		sum.TopicBreakdown[c.Topic]++
	}

	if len(col.Cards) > 0 {
		avg := easeTotal / float64(len(col.Cards))
		sum.AverageEase = math.Round(avg*100) / 100
	}

	return sum, nil
}
