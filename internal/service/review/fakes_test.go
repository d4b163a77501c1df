package review

import (
	"encoding/json"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/pylearn/revision-backend/internal/domain"
)

// fakeCardStore mimics the snapshot store: every Load hands out a deep
// copy, so mutations only persist through Save. That keeps the
// "store untouched on error" tests honest.
type fakeCardStore struct {
	col     *domain.Collection
	loadErr error
	saveErr error
	saves   int
}

func copyCollection(col *domain.Collection) *domain.Collection {
	data, err := json.Marshal(col)
	if err != nil {
		panic(err)
	}
	out := domain.NewCollection()
	if err := json.Unmarshal(data, out); err != nil {
		panic(err)
	}
	return out
}

func (f *fakeCardStore) Load() (*domain.Collection, error) {
	if f.loadErr != nil {
		return nil, f.loadErr
	}
	if f.col == nil {
		return domain.NewCollection(), nil
	}
	return copyCollection(f.col), nil
}

func (f *fakeCardStore) Save(col *domain.Collection) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.col = copyCollection(col)
	f.saves++
	return nil
}

func (f *fakeCardStore) ReplaceAll(col *domain.Collection) error {
	return f.Save(col)
}

func (f *fakeCardStore) Get(id string) (*domain.Card, error) {
	col, err := f.Load()
	if err != nil {
		return nil, err
	}
	card, ok := col.Cards[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return card, nil
}

func (f *fakeCardStore) Upsert(card *domain.Card) error {
	col, err := f.Load()
	if err != nil {
		return err
	}
	col.Cards[card.ID] = card
	return f.Save(col)
}

func (f *fakeCardStore) Delete(id string) error {
	col, err := f.Load()
	if err != nil {
		return err
	}
	if _, ok := col.Cards[id]; !ok {
		return domain.ErrNotFound
	}
	delete(col.Cards, id)
	return f.Save(col)
}

func (f *fakeCardStore) Clear() error {
	f.col = nil
	return nil
}

type fakeQuizStore struct {
	attempts []domain.QuizAttempt
	err      error
}

func (f *fakeQuizStore) List() ([]domain.QuizAttempt, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.attempts, nil
}

func (f *fakeQuizStore) Save(attempts []domain.QuizAttempt) error {
	if f.err != nil {
		return f.err
	}
	f.attempts = attempts
	return nil
}

type fakeSessionStore struct {
	sessions map[uuid.UUID]*domain.StudySession
}

func newFakeSessionStore() *fakeSessionStore {
	return &fakeSessionStore{sessions: map[uuid.UUID]*domain.StudySession{}}
}

func (f *fakeSessionStore) Get(id uuid.UUID) (*domain.StudySession, error) {
	s, ok := f.sessions[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *s
	return &cp, nil
}

func (f *fakeSessionStore) GetActive() (*domain.StudySession, error) {
	for _, s := range f.sessions {
		if s.Status == domain.SessionStatusActive {
			cp := *s
			return &cp, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeSessionStore) Upsert(session *domain.StudySession) error {
	cp := *session
	f.sessions[session.ID] = &cp
	return nil
}

type testEnv struct {
	svc      *Service
	cards    *fakeCardStore
	quiz     *fakeQuizStore
	sessions *fakeSessionStore
	clock    *clockwork.FakeClock
}

func newTestEnv(t *testing.T, at time.Time) *testEnv {
	t.Helper()

	cards := &fakeCardStore{}
	quiz := &fakeQuizStore{}
	sessions := newFakeSessionStore()
	clock := clockwork.NewFakeClockAt(at)
	log := slog.New(slog.NewTextHandler(io.Discard, nil))

	svc, err := NewService(log, cards, quiz, sessions, clock, defaultSRSConfig(), 10, time.UTC)
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}

	return &testEnv{svc: svc, cards: cards, quiz: quiz, sessions: sessions, clock: clock}
}

// seedCard installs a card directly into the fake store.
func (e *testEnv) seedCard(t *testing.T, card *domain.Card) {
	t.Helper()
	col, err := e.cards.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	col.Cards[card.ID] = card
	if err := e.cards.Save(col); err != nil {
		t.Fatalf("save: %v", err)
	}
}

func (e *testEnv) mustGet(t *testing.T, id string) *domain.Card {
	t.Helper()
	card, err := e.cards.Get(id)
	if err != nil {
		t.Fatalf("get %s: %v", id, err)
	}
	return card
}

func (e *testEnv) stats(t *testing.T) domain.Stats {
	t.Helper()
	col, err := e.cards.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	return col.Stats
}

func testCard(id string, ease float64, interval, reps int, due time.Time) *domain.Card {
	return &domain.Card{
		ID:            id,
		Question:      "What does len() return for a dict?",
		CorrectAnswer: "The number of keys",
		Topic:         "dictionaries",
		Concept:       "builtins",
		EaseFactor:    ease,
		IntervalDays:  interval,
		Repetitions:   reps,
		Due:           due,
		CreatedAt:     due.AddDate(0, 0, -30),
		History:       []domain.ReviewRecord{},
	}
}
