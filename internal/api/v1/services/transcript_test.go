package services

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apierrors "github.com/karimnaderr/speech-to-text-backend/internal/api/errors"
	"github.com/karimnaderr/speech-to-text-backend/internal/api/v1/dto"
	"github.com/karimnaderr/speech-to-text-backend/internal/app/model"
	"github.com/karimnaderr/speech-to-text-backend/internal/app/repository"
	"github.com/karimnaderr/speech-to-text-backend/internal/app/sentiment"
)

// fakeTranscriber returns a canned transcription result.
type fakeTranscriber struct {
	text string
	err  error
}

func (f *fakeTranscriber) Transcribe(ctx context.Context, filename string, audio io.Reader) (string, error) {
	return f.text, f.err
}

// fakeDAO is an in-memory TranscriptDAO. Ids are assigned under a lock, the
// way a database sequence would.
type fakeDAO struct {
	mu        sync.Mutex
	rows      map[int]model.Transcript
	nextID    int
	createErr error
}

func newFakeDAO() *fakeDAO {
	return &fakeDAO{rows: make(map[int]model.Transcript), nextID: 1}
}

func (f *fakeDAO) Close() error                   { return nil }
func (f *fakeDAO) Init(ctx context.Context) error { return nil }

func (f *fakeDAO) Create(ctx context.Context, filename, text, status, sentimentLabel string) (*model.Transcript, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	t := model.Transcript{
		ID:        f.nextID,
		Filename:  filename,
		Text:      text,
		Status:    status,
		Sentiment: sentimentLabel,
		CreatedAt: time.Now(),
	}
	f.rows[t.ID] = t
	f.nextID++
	return &t, nil
}

func (f *fakeDAO) List(ctx context.Context) ([]model.Transcript, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	transcripts := make([]model.Transcript, 0, len(f.rows))
	for id := f.nextID - 1; id >= 1; id-- {
		if t, ok := f.rows[id]; ok {
			transcripts = append(transcripts, t)
		}
	}
	return transcripts, nil
}

func (f *fakeDAO) Get(ctx context.Context, id int) (*model.Transcript, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	t, ok := f.rows[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &t, nil
}

// fixedScorer gives every text the same polarity.
type fixedScorer struct{ score float64 }

func (s fixedScorer) Polarity(text string) float64 { return s.score }

func newService(transcriber *fakeTranscriber, dao *fakeDAO, score float64) TranscriptService {
	classifier := sentiment.NewClassifier(fixedScorer{score: score})
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewTranscriptService(transcriber, classifier, dao, logger)
}

func TestTranscriptService_Submit_Completed(t *testing.T) {
	dao := newFakeDAO()
	svc := newService(&fakeTranscriber{text: "what a lovely meeting"}, dao, 0.7)

	resp, err := svc.Submit(context.Background(), "meeting.mp3", nil)
	require.NoError(t, err)

	assert.Equal(t, "what a lovely meeting", resp.Text)
	assert.Equal(t, model.StatusCompleted, resp.Status)
	assert.Equal(t, sentiment.Positive, resp.Sentiment)
	assert.Equal(t, 1, resp.TranscriptID)

	// The stored row matches the response.
	stored, err := dao.Get(context.Background(), resp.TranscriptID)
	require.NoError(t, err)
	assert.Equal(t, "meeting.mp3", stored.Filename)
	assert.Equal(t, resp.Text, stored.Text)
	assert.Equal(t, resp.Status, stored.Status)
	assert.Equal(t, resp.Sentiment, stored.Sentiment)
}

func TestTranscriptService_Submit_ProviderFailureIsAbsorbed(t *testing.T) {
	dao := newFakeDAO()
	svc := newService(&fakeTranscriber{err: fmt.Errorf("provider unreachable")}, dao, 0.7)

	resp, err := svc.Submit(context.Background(), "broken.mp3", nil)
	require.NoError(t, err, "provider failure must not surface as a request error")

	assert.Equal(t, "", resp.Text)
	assert.Equal(t, model.StatusError, resp.Status)
	assert.Equal(t, sentiment.NotAvailable, resp.Sentiment)

	// The failed attempt is still recorded.
	stored, err := dao.Get(context.Background(), resp.TranscriptID)
	require.NoError(t, err)
	assert.Equal(t, model.StatusError, stored.Status)
	assert.Equal(t, sentiment.NotAvailable, stored.Sentiment)
	assert.Equal(t, "", stored.Text)
}

func TestTranscriptService_Submit_StoreFailure(t *testing.T) {
	dao := newFakeDAO()
	dao.createErr = fmt.Errorf("connection refused")
	svc := newService(&fakeTranscriber{text: "hello"}, dao, 0.0)

	resp, err := svc.Submit(context.Background(), "a.mp3", nil)
	assert.Nil(t, resp)

	var apiErr *apierrors.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, apierrors.KindInternal, apiErr.Kind)
}

func TestTranscriptService_Submit_EmptyTranscriptionText(t *testing.T) {
	dao := newFakeDAO()
	svc := newService(&fakeTranscriber{text: ""}, dao, 0.9)

	resp, err := svc.Submit(context.Background(), "silence.mp3", nil)
	require.NoError(t, err)

	// Provider succeeded but produced no text: completed, no sentiment.
	assert.Equal(t, model.StatusCompleted, resp.Status)
	assert.Equal(t, sentiment.NotAvailable, resp.Sentiment)
}

func TestTranscriptService_Get_NotFound(t *testing.T) {
	svc := newService(&fakeTranscriber{}, newFakeDAO(), 0.0)

	resp, err := svc.Get(context.Background(), 99)
	assert.Nil(t, resp)

	var apiErr *apierrors.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, apierrors.KindNotFound, apiErr.Kind)
}

func TestTranscriptService_ListAfterSubmits(t *testing.T) {
	dao := newFakeDAO()
	svc := newService(&fakeTranscriber{text: "fine"}, dao, 0.0)

	const n = 5
	for i := 0; i < n; i++ {
		_, err := svc.Submit(context.Background(), fmt.Sprintf("f%d.mp3", i), nil)
		require.NoError(t, err)
	}

	listed, err := svc.List(context.Background(), dto.ListTranscriptsQuery{})
	require.NoError(t, err)
	require.Len(t, listed, n)

	// Each row is individually retrievable by its assigned id.
	for _, item := range listed {
		got, err := svc.Get(context.Background(), item.ID)
		require.NoError(t, err)
		assert.Equal(t, item, *got)
	}
}

func TestTranscriptService_List_Limit(t *testing.T) {
	dao := newFakeDAO()
	svc := newService(&fakeTranscriber{text: "fine"}, dao, 0.0)

	for i := 0; i < 4; i++ {
		_, err := svc.Submit(context.Background(), "f.mp3", nil)
		require.NoError(t, err)
	}

	listed, err := svc.List(context.Background(), dto.ListTranscriptsQuery{Limit: 2})
	require.NoError(t, err)
	assert.Len(t, listed, 2)
}

func TestTranscriptService_ConcurrentSubmits(t *testing.T) {
	dao := newFakeDAO()
	svc := newService(&fakeTranscriber{text: "ok"}, dao, 0.0)

	const workers = 8
	var wg sync.WaitGroup
	ids := make(chan int, workers)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			resp, err := svc.Submit(context.Background(), fmt.Sprintf("c%d.mp3", i), nil)
			assert.NoError(t, err)
			ids <- resp.TranscriptID
		}(i)
	}
	wg.Wait()
	close(ids)

	seen := make(map[int]bool)
	for id := range ids {
		assert.False(t, seen[id], "duplicate transcript id %d", id)
		seen[id] = true

		_, err := svc.Get(context.Background(), id)
		assert.NoError(t, err)
	}
	assert.Len(t, seen, workers)
}
