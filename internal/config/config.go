package config

import (
	"time"

	"github.com/pylearn/revision-backend/internal/domain"
)

// Config is the root application configuration.
type Config struct {
	Log     LogConfig     `yaml:"log"`
	Storage StorageConfig `yaml:"storage"`
	SRS     SRSConfig     `yaml:"srs"`
	Review  ReviewConfig  `yaml:"review"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// StorageConfig holds local store settings.
type StorageConfig struct {
	Dir        string `yaml:"dir"         env:"STORAGE_DIR"         env-default:"./data"`
	InMemory   bool   `yaml:"in_memory"   env:"STORAGE_IN_MEMORY"   env-default:"false"`
	SyncWrites bool   `yaml:"sync_writes" env:"STORAGE_SYNC_WRITES" env-default:"true"`
}

// SRSConfig holds spaced-repetition algorithm parameters.
type SRSConfig struct {
	DefaultEaseFactor  float64 `yaml:"default_ease_factor"  env:"SRS_DEFAULT_EASE"        env-default:"2.5"`
	MinEaseFactor      float64 `yaml:"min_ease_factor"      env:"SRS_MIN_EASE"            env-default:"1.3"`
	FirstIntervalDays  int     `yaml:"first_interval_days"  env:"SRS_FIRST_INTERVAL"      env-default:"1"`
	SecondIntervalDays int     `yaml:"second_interval_days" env:"SRS_SECOND_INTERVAL"     env-default:"3"`
	MatureIntervalDays int     `yaml:"mature_interval_days" env:"SRS_MATURE_INTERVAL"     env-default:"21"`
	HardEasePenalty    float64 `yaml:"hard_ease_penalty"    env:"SRS_HARD_EASE_PENALTY"   env-default:"0.15"`
	EasyEaseBonus      float64 `yaml:"easy_ease_bonus"      env:"SRS_EASY_EASE_BONUS"     env-default:"0.15"`
	RelearnDelayRaw    string  `yaml:"relearn_delay"        env:"SRS_RELEARN_DELAY"       env-default:"10m"`

	// RelearnDelay is parsed from RelearnDelayRaw during validation.
	RelearnDelay time.Duration `yaml:"-" env:"-"`
}

// ReviewConfig holds review session settings.
type ReviewConfig struct {
	NewCardsLimit int    `yaml:"new_cards_limit" env:"REVIEW_NEW_CARDS_LIMIT" env-default:"10"`
	Timezone      string `yaml:"timezone"        env:"REVIEW_TIMEZONE"        env-default:"UTC"`
}

// ToDomain converts the validated SRS section to the pure domain type.
func (s SRSConfig) ToDomain() domain.SRSConfig {
	return domain.SRSConfig{
		DefaultEaseFactor:  s.DefaultEaseFactor,
		MinEaseFactor:      s.MinEaseFactor,
		FirstIntervalDays:  s.FirstIntervalDays,
		SecondIntervalDays: s.SecondIntervalDays,
		MatureIntervalDays: s.MatureIntervalDays,
		HardEasePenalty:    s.HardEasePenalty,
		EasyEaseBonus:      s.EasyEaseBonus,
		RelearnDelay:       s.RelearnDelay,
	}
}
