package app

import (
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"

	"github.com/karimnaderr/speech-to-text-backend/internal/app/api"
	"github.com/karimnaderr/speech-to-text-backend/internal/app/api/openai/whisper"
	"github.com/karimnaderr/speech-to-text-backend/internal/app/repository"
	"github.com/karimnaderr/speech-to-text-backend/internal/app/repository/pg"
	"github.com/karimnaderr/speech-to-text-backend/internal/app/repository/sqlite"
	"github.com/karimnaderr/speech-to-text-backend/internal/app/sentiment"
	"github.com/karimnaderr/speech-to-text-backend/internal/config"
)

// ProvideTranscriber builds the Whisper-backed transcription gateway.
func ProvideTranscriber(cfg *config.Config) api.Transcriber {
	return whisper.NewRemoteTranscriber(openai.NewClient(cfg.OpenAIAPIKey))
}

// ProvideClassifier builds the VADER-backed sentiment classifier.
func ProvideClassifier() *sentiment.Classifier {
	return sentiment.NewClassifier(sentiment.NewVaderScorer())
}

// ProvideTranscriptDAO selects the store implementation from the database
// URL: postgres:// connection strings get the PostgreSQL driver, anything
// else is treated as a SQLite file path.
func ProvideTranscriptDAO(cfg *config.Config) (repository.TranscriptDAO, error) {
	url := cfg.DatabaseURL
	if strings.HasPrefix(url, "postgres://") || strings.HasPrefix(url, "postgresql://") {
		dao, err := pg.NewPostgresDB(url)
		if err != nil {
			return nil, fmt.Errorf("connect transcript store: %w", err)
		}
		return dao, nil
	}

	dao, err := sqlite.NewSQLiteDB(strings.TrimPrefix(url, "sqlite://"))
	if err != nil {
		return nil, fmt.Errorf("open transcript store: %w", err)
	}
	return dao, nil
}
