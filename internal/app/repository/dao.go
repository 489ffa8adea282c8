package repository

import (
	"context"
	"errors"

	"github.com/karimnaderr/speech-to-text-backend/internal/app/model"
)

// ErrNotFound is returned when no transcript exists for the requested id.
var ErrNotFound = errors.New("transcript not found")

// TranscriptDAO is the persistence contract for transcripts. Create and the
// two readers are the whole surface: rows are never updated or deleted.
type TranscriptDAO interface {
	Close() error

	// Init ensures the transcript table exists. Idempotent, called once
	// before the server starts accepting traffic.
	Init(ctx context.Context) error

	// Create writes one row and returns it fully populated, with the id
	// and creation time assigned by the database.
	Create(ctx context.Context, filename, text, status, sentiment string) (*model.Transcript, error)

	// List returns all transcripts, newest first.
	List(ctx context.Context) ([]model.Transcript, error)

	// Get returns the transcript with the given id, or ErrNotFound.
	Get(ctx context.Context, id int) (*model.Transcript, error)
}
