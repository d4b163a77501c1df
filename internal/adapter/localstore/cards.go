package localstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/pylearn/revision-backend/internal/domain"
)

// Cards provides flashcard collection persistence.
type Cards struct {
	kv  kv
	log *slog.Logger
}

// NewCards creates a new card repository.
func NewCards(store kv, log *slog.Logger) *Cards {
	return &Cards{kv: store, log: log}
}

// Load reads the full collection snapshot. A missing record yields the
// empty default; a corrupt record is logged and also yields the empty
// default, per the degrade-to-safe-default error policy.
func (r *Cards) Load() (*domain.Collection, error) {
	raw, err := r.kv.Get(KeyFlashcards)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.NewCollection(), nil
		}
		return nil, fmt.Errorf("load collection: %w", err)
	}

	var col domain.Collection
	if err := json.Unmarshal(raw, &col); err != nil {
		r.log.Warn("flashcard record is corrupt, starting empty",
			slog.String("error", err.Error()),
		)
		return domain.NewCollection(), nil
	}
	if col.Cards == nil {
		col.Cards = map[string]*domain.Card{}
	}
	return &col, nil
}

// Save writes the full collection snapshot, replacing the previous one.
func (r *Cards) Save(col *domain.Collection) error {
	raw, err := json.Marshal(col)
	if err != nil {
		return fmt.Errorf("encode collection: %w", err)
	}
	if err := r.kv.Put(KeyFlashcards, raw); err != nil {
		return fmt.Errorf("save collection: %w", err)
	}
	return nil
}

// Get returns a single card by id.
func (r *Cards) Get(id string) (*domain.Card, error) {
	col, err := r.Load()
	if err != nil {
		return nil, err
	}
	card, ok := col.Cards[id]
	if !ok {
		return nil, fmt.Errorf("card %s: %w", id, domain.ErrNotFound)
	}
	return card, nil
}

// Upsert inserts or replaces a single card.
func (r *Cards) Upsert(card *domain.Card) error {
	col, err := r.Load()
	if err != nil {
		return err
	}
	col.Cards[card.ID] = card
	return r.Save(col)
}

// Delete removes a single card. A missing id maps to domain.ErrNotFound.
func (r *Cards) Delete(id string) error {
	col, err := r.Load()
	if err != nil {
		return err
	}
	if _, ok := col.Cards[id]; !ok {
		return fmt.Errorf("card %s: %w", id, domain.ErrNotFound)
	}
	delete(col.Cards, id)
	return r.Save(col)
}

// ReplaceAll swaps the whole collection for the given snapshot.
func (r *Cards) ReplaceAll(col *domain.Collection) error {
	return r.Save(col)
}

// Clear erases the persisted record entirely.
func (r *Cards) Clear() error {
	if err := r.kv.Delete(KeyFlashcards); err != nil {
		return fmt.Errorf("clear collection: %w", err)
	}
	return nil
}
