package dto

import (
	"time"

	"github.com/karimnaderr/speech-to-text-backend/internal/app/model"
)

// TranscribeResponse is the body returned by POST /transcribe/. A provider
// failure is surfaced here as status "error", not as an HTTP error.
type TranscribeResponse struct {
	Text         string `json:"text"`
	Status       string `json:"status"`
	TranscriptID int    `json:"transcript_id"`
	Sentiment    string `json:"sentiment"`
}

// TranscriptResponse represents a stored transcript in API responses
type TranscriptResponse struct {
	ID        int       `json:"id"`
	Filename  string    `json:"filename"`
	Text      string    `json:"text"`
	Status    string    `json:"status"`
	Sentiment string    `json:"sentiment"`
	CreatedAt time.Time `json:"created_at"`
}

// ListTranscriptsQuery represents query parameters for listing transcripts.
// Limit is optional; zero means all rows.
type ListTranscriptsQuery struct {
	Limit int `form:"limit" binding:"omitempty,min=1"`
}

// ToTranscriptResponse converts a model to response DTO
func ToTranscriptResponse(t *model.Transcript) TranscriptResponse {
	return TranscriptResponse{
		ID:        t.ID,
		Filename:  t.Filename,
		Text:      t.Text,
		Status:    t.Status,
		Sentiment: t.Sentiment,
		CreatedAt: t.CreatedAt,
	}
}
