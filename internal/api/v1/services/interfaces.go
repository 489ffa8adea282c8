package services

import (
	"context"
	"io"

	"github.com/tealeg/xlsx"

	"github.com/karimnaderr/speech-to-text-backend/internal/api/v1/dto"
)

// TranscriptService orchestrates submissions and reads. One Submit call
// produces exactly one stored row once input validation has passed,
// regardless of the provider outcome.
type TranscriptService interface {
	Submit(ctx context.Context, filename string, audio io.Reader) (*dto.TranscribeResponse, error)
	List(ctx context.Context, query dto.ListTranscriptsQuery) ([]dto.TranscriptResponse, error)
	Get(ctx context.Context, id int) (*dto.TranscriptResponse, error)
}

// ExportService renders stored transcripts as a spreadsheet download.
type ExportService interface {
	Export(ctx context.Context) (*xlsx.File, error)
}
