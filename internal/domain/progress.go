package domain

import "time"

// ActivityProgress tracks one interactive page activity.
type ActivityProgress struct {
	Status      ActivityStatus `json:"status"`
	TopicID     string         `json:"topicId,omitempty"`
	StartedAt   time.Time      `json:"startedAt"`
	CompletedAt *time.Time     `json:"completedAt,omitempty"`
	Attempts    int            `json:"attempts"`
	BestScore   *int           `json:"bestScore,omitempty"`
}

// TopicProgress is the per-topic summary derived from activities.
// Progress is a whole percentage (0-100).
type TopicProgress struct {
	Progress  int `json:"progress"`
	Completed int `json:"completed"`
	Total     int `json:"total"`
}

// ProgressData is the full persisted progress record.
type ProgressData struct {
	Activities  map[string]*ActivityProgress `json:"activities"`
	Topics      map[string]TopicProgress     `json:"topics"`
	LastVisited string                       `json:"lastVisited,omitempty"`
}

// NewProgressData returns the empty default a missing or unreadable
// progress record degrades to.
func NewProgressData() *ProgressData {
	return &ProgressData{
		Activities: map[string]*ActivityProgress{},
		Topics:     map[string]TopicProgress{},
	}
}
