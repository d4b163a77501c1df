package badgerstore

import (
	"errors"
	"testing"

	"github.com/pylearn/revision-backend/internal/domain"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(Config{InMemory: true})
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestStore_PutGet(t *testing.T) {
	s := openTestStore(t)

	if err := s.Put("flashcard_data", []byte(`{"cards":{}}`)); err != nil {
		t.Fatalf("put: %v", err)
	}

	got, err := s.Get("flashcard_data")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if string(got) != `{"cards":{}}` {
		t.Errorf("get: got %s", got)
	}
}

func TestStore_Get_Missing(t *testing.T) {
	s := openTestStore(t)

	_, err := s.Get("no_such_record")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("want ErrNotFound, got %v", err)
	}
}

func TestStore_Put_Replaces(t *testing.T) {
	s := openTestStore(t)

	if err := s.Put("k", []byte("one")); err != nil {
		t.Fatalf("put: %v", err)
	}
	if err := s.Put("k", []byte("two")); err != nil {
		t.Fatalf("put: %v", err)
	}

	got, err := s.Get("k")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if string(got) != "two" {
		t.Errorf("got %s, want two", got)
	}
}

func TestStore_Delete(t *testing.T) {
	s := openTestStore(t)

	if err := s.Put("k", []byte("v")); err != nil {
		t.Fatalf("put: %v", err)
	}
	if err := s.Delete("k"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := s.Get("k"); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("want ErrNotFound after delete, got %v", err)
	}

	// Deleting again is a no-op.
	if err := s.Delete("k"); err != nil {
		t.Errorf("delete missing: %v", err)
	}
}

func TestOpen_RequiresDir(t *testing.T) {
	if _, err := Open(Config{}); err == nil {
		t.Error("expected error for persistent store without dir")
	}
}
