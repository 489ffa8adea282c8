package services

import (
	"context"
	"fmt"
	"time"

	"github.com/tealeg/xlsx"

	apierrors "github.com/karimnaderr/speech-to-text-backend/internal/api/errors"
	"github.com/karimnaderr/speech-to-text-backend/internal/app/repository"
)

// ExportServiceImpl implements ExportService
type ExportServiceImpl struct {
	repository repository.TranscriptDAO
}

// NewExportService creates a new export service
func NewExportService(repo repository.TranscriptDAO) ExportService {
	return &ExportServiceImpl{repository: repo}
}

// Export builds an xlsx workbook with one row per stored transcript.
func (s *ExportServiceImpl) Export(ctx context.Context) (*xlsx.File, error) {
	transcripts, err := s.repository.List(ctx)
	if err != nil {
		return nil, apierrors.NewInternalError("Failed to list transcripts")
	}

	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Transcripts")
	if err != nil {
		return nil, apierrors.NewInternalError("Failed to build workbook")
	}

	headerRow := sheet.AddRow()
	headerRow.AddCell().Value = "ID"
	headerRow.AddCell().Value = "Filename"
	headerRow.AddCell().Value = "Text"
	headerRow.AddCell().Value = "Status"
	headerRow.AddCell().Value = "Sentiment"
	headerRow.AddCell().Value = "Created At"

	for _, t := range transcripts {
		row := sheet.AddRow()
		row.AddCell().Value = fmt.Sprint(t.ID)
		row.AddCell().Value = t.Filename
		row.AddCell().Value = t.Text
		row.AddCell().Value = t.Status
		row.AddCell().Value = t.Sentiment
		row.AddCell().Value = t.CreatedAt.Format(time.RFC3339)
	}

	return file, nil
}
