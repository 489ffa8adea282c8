package services

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/samber/lo"

	apierrors "github.com/karimnaderr/speech-to-text-backend/internal/api/errors"
	"github.com/karimnaderr/speech-to-text-backend/internal/api/v1/dto"
	"github.com/karimnaderr/speech-to-text-backend/internal/app/api"
	"github.com/karimnaderr/speech-to-text-backend/internal/app/model"
	"github.com/karimnaderr/speech-to-text-backend/internal/app/repository"
	"github.com/karimnaderr/speech-to-text-backend/internal/app/sentiment"
)

// TranscriptServiceImpl implements TranscriptService
type TranscriptServiceImpl struct {
	transcriber api.Transcriber
	classifier  *sentiment.Classifier
	repository  repository.TranscriptDAO
	logger      *slog.Logger
}

// NewTranscriptService creates a new transcript service
func NewTranscriptService(
	transcriber api.Transcriber,
	classifier *sentiment.Classifier,
	repo repository.TranscriptDAO,
	logger *slog.Logger,
) TranscriptService {
	return &TranscriptServiceImpl{
		transcriber: transcriber,
		classifier:  classifier,
		repository:  repo,
		logger:      logger,
	}
}

// Submit transcribes the uploaded audio and persists the outcome. Provider
// failures are absorbed: the attempt is still recorded, with status "error"
// and no sentiment, and the caller gets a normal response carrying that
// status. Only store failures surface as errors.
func (s *TranscriptServiceImpl) Submit(ctx context.Context, filename string, audio io.Reader) (*dto.TranscribeResponse, error) {
	text, err := s.transcriber.Transcribe(ctx, filename, audio)

	var status, label string
	if err != nil {
		s.logger.Warn("Transcription failed",
			"filename", filename,
			"error", err.Error(),
		)
		text = ""
		status = model.StatusError
		label = sentiment.NotAvailable
	} else {
		status = model.StatusCompleted
		label = s.classifier.Classify(text)
	}

	t, err := s.repository.Create(ctx, filename, text, status, label)
	if err != nil {
		s.logger.Error("Failed to persist transcript",
			"filename", filename,
			"error", err.Error(),
		)
		return nil, apierrors.NewInternalError("Failed to persist transcript")
	}

	return &dto.TranscribeResponse{
		Text:         t.Text,
		Status:       t.Status,
		TranscriptID: t.ID,
		Sentiment:    t.Sentiment,
	}, nil
}

// List returns all stored transcripts, newest first.
func (s *TranscriptServiceImpl) List(ctx context.Context, query dto.ListTranscriptsQuery) ([]dto.TranscriptResponse, error) {
	transcripts, err := s.repository.List(ctx)
	if err != nil {
		return nil, apierrors.NewInternalError("Failed to list transcripts")
	}

	if query.Limit > 0 && query.Limit < len(transcripts) {
		transcripts = transcripts[:query.Limit]
	}

	return lo.Map(transcripts, func(t model.Transcript, _ int) dto.TranscriptResponse {
		return dto.ToTranscriptResponse(&t)
	}), nil
}

// Get returns a single transcript by id.
func (s *TranscriptServiceImpl) Get(ctx context.Context, id int) (*dto.TranscriptResponse, error) {
	t, err := s.repository.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apierrors.NewNotFoundError("Transcript")
		}
		return nil, apierrors.NewInternalError("Failed to load transcript")
	}

	resp := dto.ToTranscriptResponse(t)
	return &resp, nil
}
