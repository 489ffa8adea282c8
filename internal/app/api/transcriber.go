package api

import (
	"context"
	"io"
)

// Transcriber converts an uploaded audio stream to text. Implementations
// block until the provider finishes processing; a failed attempt is final,
// no retries happen at this boundary.
type Transcriber interface {
	Transcribe(ctx context.Context, filename string, audio io.Reader) (string, error)
}
