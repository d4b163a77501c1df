package localstore

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pylearn/revision-backend/internal/adapter/badgerstore"
	"github.com/pylearn/revision-backend/internal/domain"
)

func testKV(t *testing.T) *badgerstore.Store {
	t.Helper()
	s, err := badgerstore.Open(badgerstore.Config{InMemory: true})
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func testCard(id string) *domain.Card {
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	return &domain.Card{
		ID:            id,
		Question:      "What does len('abc') return?",
		CorrectAnswer: "3",
		Topic:         "strings",
		Concept:       "strings",
		EaseFactor:    2.5,
		Due:           now,
		CreatedAt:     now,
		History:       []domain.ReviewRecord{},
	}
}

func TestCards_Load_Empty(t *testing.T) {
	repo := NewCards(testKV(t), slog.Default())

	col, err := repo.Load()
	require.NoError(t, err)
	assert.Empty(t, col.Cards)
	assert.Zero(t, col.Stats.TotalReviews)
}

func TestCards_Load_Corrupt(t *testing.T) {
	kv := testKV(t)
	require.NoError(t, kv.Put(KeyFlashcards, []byte("{not json")))

	repo := NewCards(kv, slog.Default())
	col, err := repo.Load()
	require.NoError(t, err)
	assert.Empty(t, col.Cards)
}

func TestCards_UpsertGetDelete(t *testing.T) {
	repo := NewCards(testKV(t), slog.Default())
	card := testCard("card-1")

	require.NoError(t, repo.Upsert(card))

	got, err := repo.Get("card-1")
	require.NoError(t, err)
	assert.Equal(t, card.Question, got.Question)
	assert.Equal(t, 2.5, got.EaseFactor)

	_, err = repo.Get("card-missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	require.NoError(t, repo.Delete("card-1"))
	_, err = repo.Get("card-1")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	assert.ErrorIs(t, repo.Delete("card-1"), domain.ErrNotFound)
}

func TestCards_SaveRoundTrip(t *testing.T) {
	repo := NewCards(testKV(t), slog.Default())

	col := domain.NewCollection()
	col.Cards["card-a"] = testCard("card-a")
	col.Stats.TotalReviews = 7
	col.Stats.CurrentStreak = 3
	require.NoError(t, repo.Save(col))

	got, err := repo.Load()
	require.NoError(t, err)
	assert.Len(t, got.Cards, 1)
	assert.Equal(t, 7, got.Stats.TotalReviews)
	assert.Equal(t, 3, got.Stats.CurrentStreak)
}

func TestCards_Clear(t *testing.T) {
	repo := NewCards(testKV(t), slog.Default())
	require.NoError(t, repo.Upsert(testCard("card-1")))

	require.NoError(t, repo.Clear())

	col, err := repo.Load()
	require.NoError(t, err)
	assert.Empty(t, col.Cards)
}

func TestQuizHistory_ListEmptyAndSave(t *testing.T) {
	kv := testKV(t)
	repo := NewQuizHistory(kv, slog.Default())

	attempts, err := repo.List()
	require.NoError(t, err)
	assert.Empty(t, attempts)

	in := []domain.QuizAttempt{{
		Topic: "for-loops",
		WrongAnswers: []domain.WrongAnswer{
			{Question: "What does range(3) produce?", CorrectAnswer: "0, 1, 2"},
		},
	}}
	require.NoError(t, repo.Save(in))

	got, err := repo.List()
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "for-loops", got[0].Topic)
	require.Len(t, got[0].WrongAnswers, 1)
}

func TestQuizHistory_Corrupt(t *testing.T) {
	kv := testKV(t)
	require.NoError(t, kv.Put(KeyQuizHistory, []byte("[broken")))

	repo := NewQuizHistory(kv, slog.Default())
	attempts, err := repo.List()
	require.NoError(t, err)
	assert.Empty(t, attempts)
}

func TestProgress_RoundTrip(t *testing.T) {
	repo := NewProgress(testKV(t), slog.Default())

	data, err := repo.Load()
	require.NoError(t, err)
	assert.Empty(t, data.Activities)

	data.Activities["parsons-1"] = &domain.ActivityProgress{
		Status:  domain.ActivityStatusInProgress,
		TopicID: "for-loops",
	}
	data.LastVisited = "parsons-1"
	require.NoError(t, repo.Save(data))

	got, err := repo.Load()
	require.NoError(t, err)
	require.Contains(t, got.Activities, "parsons-1")
	assert.Equal(t, domain.ActivityStatusInProgress, got.Activities["parsons-1"].Status)
	assert.Equal(t, "parsons-1", got.LastVisited)
}
