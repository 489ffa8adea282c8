package model

import "time"

// Transcript statuses. Set once at creation based on the provider outcome.
const (
	StatusCompleted = "completed"
	StatusError     = "error"
)

// Transcript is one persisted transcription attempt. Rows are write-once:
// created during a submission, read afterwards, never updated.
type Transcript struct {
	ID        int       `json:"id"`
	Filename  string    `json:"filename"`
	Text      string    `json:"text"`
	Status    string    `json:"status"`
	Sentiment string    `json:"sentiment"`
	CreatedAt time.Time `json:"created_at"`
}
