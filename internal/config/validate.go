package config

import (
	"fmt"
	"time"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if !c.Storage.InMemory && c.Storage.Dir == "" {
		return fmt.Errorf("storage.dir must be set unless storage.in_memory is true")
	}

	if err := c.SRS.validate(); err != nil {
		return fmt.Errorf("srs: %w", err)
	}

	if c.Review.NewCardsLimit <= 0 {
		return fmt.Errorf("review.new_cards_limit must be > 0 (got %d)", c.Review.NewCardsLimit)
	}
	if _, err := time.LoadLocation(c.Review.Timezone); err != nil {
		return fmt.Errorf("review.timezone: %w", err)
	}

	return nil
}

func (s *SRSConfig) validate() error {
	if s.MinEaseFactor <= 0 {
		return fmt.Errorf("min_ease_factor must be > 0 (got %v)", s.MinEaseFactor)
	}
	if s.DefaultEaseFactor < s.MinEaseFactor {
		return fmt.Errorf("default_ease_factor must be >= min_ease_factor (got %v < %v)",
			s.DefaultEaseFactor, s.MinEaseFactor)
	}
	if s.FirstIntervalDays <= 0 {
		return fmt.Errorf("first_interval_days must be > 0 (got %d)", s.FirstIntervalDays)
	}
	if s.SecondIntervalDays < s.FirstIntervalDays {
		return fmt.Errorf("second_interval_days must be >= first_interval_days (got %d < %d)",
			s.SecondIntervalDays, s.FirstIntervalDays)
	}
	if s.MatureIntervalDays <= 0 {
		return fmt.Errorf("mature_interval_days must be > 0 (got %d)", s.MatureIntervalDays)
	}
	if s.HardEasePenalty < 0 || s.EasyEaseBonus < 0 {
		return fmt.Errorf("ease adjustments must be >= 0")
	}

	d, err := time.ParseDuration(s.RelearnDelayRaw)
	if err != nil {
		return fmt.Errorf("relearn_delay: %w", err)
	}
	if d <= 0 {
		return fmt.Errorf("relearn_delay must be > 0 (got %v)", d)
	}
	s.RelearnDelay = d

	return nil
}
