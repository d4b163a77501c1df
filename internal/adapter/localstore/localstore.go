// Package localstore implements the typed repositories over the local
// key-value store. Each repository owns one fixed record key and reads
// and writes its record as a whole JSON snapshot.
//
// Unreadable or missing records degrade to a well-defined empty default
// instead of failing; malformed data is logged and discarded on the
// next successful write.
package localstore

// Record keys in the local store. Fixed names are part of the persisted
// format.
const (
	KeyFlashcards  = "flashcard_data"
	KeyQuizHistory = "quiz_history"
	KeyProgress    = "learning_progress"
	KeySessions    = "study_sessions"
)

// kv is the minimal store surface the repositories need.
type kv interface {
	Get(key string) ([]byte, error)
	Put(key string, value []byte) error
	Delete(key string) error
}
