// Package app wires configuration, logging, storage, and services into
// a runnable application.
package app

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/pylearn/revision-backend/internal/adapter/badgerstore"
	"github.com/pylearn/revision-backend/internal/adapter/localstore"
	"github.com/pylearn/revision-backend/internal/config"
	"github.com/pylearn/revision-backend/internal/service/progress"
	"github.com/pylearn/revision-backend/internal/service/review"
)

// App holds the wired application: the open store and the services
// built on top of it.
type App struct {
	Review   *review.Service
	Progress *progress.Service
	Log      *slog.Logger

	store *badgerstore.Store
}

// New loads configuration, opens the local store, and builds the
// services. The caller must Close the returned App.
func New() (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return NewWithConfig(cfg)
}

// NewWithConfig builds the application from an already-loaded
// configuration.
func NewWithConfig(cfg *config.Config) (*App, error) {
	log := NewLogger(cfg.Log)

	log.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.String("storage_dir", cfg.Storage.Dir),
	)

	tz, err := time.LoadLocation(cfg.Review.Timezone)
	if err != nil {
		return nil, fmt.Errorf("load timezone %q: %w", cfg.Review.Timezone, err)
	}

	store, err := badgerstore.Open(badgerstore.Config{
		Dir:        cfg.Storage.Dir,
		InMemory:   cfg.Storage.InMemory,
		SyncWrites: cfg.Storage.SyncWrites,
		Logger:     log,
	})
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	clock := clockwork.NewRealClock()

	reviewSvc, err := review.NewService(
		log,
		localstore.NewCards(store, log),
		localstore.NewQuizHistory(store, log),
		localstore.NewSessions(store, log),
		clock,
		cfg.SRS.ToDomain(),
		cfg.Review.NewCardsLimit,
		tz,
	)
	if err != nil {
		store.Close()
		return nil, fmt.Errorf("build review service: %w", err)
	}

	progressSvc, err := progress.NewService(log, localstore.NewProgress(store, log), clock)
	if err != nil {
		store.Close()
		return nil, fmt.Errorf("build progress service: %w", err)
	}

	return &App{
		Review:   reviewSvc,
		Progress: progressSvc,
		Log:      log,
		store:    store,
	}, nil
}

// Close releases the underlying store.
func (a *App) Close() error {
	return a.store.Close()
}
