package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/tealeg/xlsx"

	apierrors "github.com/karimnaderr/speech-to-text-backend/internal/api/errors"
	"github.com/karimnaderr/speech-to-text-backend/internal/api/v1/dto"
	"github.com/karimnaderr/speech-to-text-backend/internal/api/v1/routes"
)

// MockTranscriptService mocks services.TranscriptService
type MockTranscriptService struct {
	mock.Mock
}

func (m *MockTranscriptService) Submit(ctx context.Context, filename string, audio io.Reader) (*dto.TranscribeResponse, error) {
	args := m.Called(ctx, filename, audio)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.TranscribeResponse), args.Error(1)
}

func (m *MockTranscriptService) List(ctx context.Context, query dto.ListTranscriptsQuery) ([]dto.TranscriptResponse, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.TranscriptResponse), args.Error(1)
}

func (m *MockTranscriptService) Get(ctx context.Context, id int) (*dto.TranscriptResponse, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.TranscriptResponse), args.Error(1)
}

// MockExportService mocks services.ExportService
type MockExportService struct {
	mock.Mock
}

func (m *MockExportService) Export(ctx context.Context) (*xlsx.File, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*xlsx.File), args.Error(1)
}

func setupRouter(t *testing.T) (*gin.Engine, *MockTranscriptService, *MockExportService) {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	transcriptService := new(MockTranscriptService)
	exportService := new(MockExportService)
	routes.RegisterRoutes(router.Group(""), &routes.ServiceContainer{
		TranscriptService: transcriptService,
		ExportService:     exportService,
	})
	return router, transcriptService, exportService
}

func newUploadRequest(t *testing.T, field, filename string, content []byte) *http.Request {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile(field, filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/transcribe", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

func TestTranscriptHandler_Transcribe(t *testing.T) {
	router, transcriptService, _ := setupRouter(t)

	transcriptService.On("Submit", mock.Anything, "meeting.mp3", mock.Anything).
		Return(&dto.TranscribeResponse{
			Text:         "hello there",
			Status:       "completed",
			TranscriptID: 1,
			Sentiment:    "Positive",
		}, nil)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, newUploadRequest(t, "audio_file", "meeting.mp3", []byte("fake-audio")))

	assert.Equal(t, http.StatusOK, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "hello there", body["text"])
	assert.Equal(t, "completed", body["status"])
	assert.Equal(t, float64(1), body["transcript_id"])
	assert.Equal(t, "Positive", body["sentiment"])

	transcriptService.AssertExpectations(t)
}

func TestTranscriptHandler_Transcribe_ProviderFailureStillOK(t *testing.T) {
	router, transcriptService, _ := setupRouter(t)

	transcriptService.On("Submit", mock.Anything, "broken.mp3", mock.Anything).
		Return(&dto.TranscribeResponse{
			Text:         "",
			Status:       "error",
			TranscriptID: 2,
			Sentiment:    "N/A",
		}, nil)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, newUploadRequest(t, "audio_file", "broken.mp3", []byte("junk")))

	// Provider failure is data, not an HTTP error.
	assert.Equal(t, http.StatusOK, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "error", body["status"])
	assert.Equal(t, "N/A", body["sentiment"])
}

func TestTranscriptHandler_Transcribe_NoFile(t *testing.T) {
	router, transcriptService, _ := setupRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/transcribe", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	transcriptService.AssertNotCalled(t, "Submit", mock.Anything, mock.Anything, mock.Anything)
}

func TestTranscriptHandler_Transcribe_WrongFieldName(t *testing.T) {
	router, transcriptService, _ := setupRouter(t)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, newUploadRequest(t, "file", "meeting.mp3", []byte("fake-audio")))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	transcriptService.AssertNotCalled(t, "Submit", mock.Anything, mock.Anything, mock.Anything)
}

func TestTranscriptHandler_List(t *testing.T) {
	router, transcriptService, _ := setupRouter(t)

	now := time.Now().UTC()
	transcriptService.On("List", mock.Anything, dto.ListTranscriptsQuery{}).
		Return([]dto.TranscriptResponse{
			{ID: 2, Filename: "b.mp3", Text: "", Status: "error", Sentiment: "N/A", CreatedAt: now},
			{ID: 1, Filename: "a.mp3", Text: "hello", Status: "completed", Sentiment: "Neutral", CreatedAt: now},
		}, nil)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/transcripts", nil))

	assert.Equal(t, http.StatusOK, w.Code)

	var body []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body, 2)
	assert.Equal(t, float64(2), body[0]["id"])
	assert.Equal(t, float64(1), body[1]["id"])
}

func TestTranscriptHandler_Get(t *testing.T) {
	router, transcriptService, _ := setupRouter(t)

	transcriptService.On("Get", mock.Anything, 3).
		Return(&dto.TranscriptResponse{
			ID:        3,
			Filename:  "call.wav",
			Text:      "thanks everyone",
			Status:    "completed",
			Sentiment: "Positive",
			CreatedAt: time.Now().UTC(),
		}, nil)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/transcripts/3", nil))

	assert.Equal(t, http.StatusOK, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, float64(3), body["id"])
	assert.Equal(t, "call.wav", body["filename"])
}

func TestTranscriptHandler_Get_NotFound(t *testing.T) {
	router, transcriptService, _ := setupRouter(t)

	transcriptService.On("Get", mock.Anything, 42).
		Return(nil, apierrors.NewNotFoundError("Transcript"))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/transcripts/42", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "not_found", body["kind"])
}

func TestTranscriptHandler_Get_InvalidID(t *testing.T) {
	router, transcriptService, _ := setupRouter(t)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/transcripts/abc", nil))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	transcriptService.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
}

func TestExportHandler_Export(t *testing.T) {
	router, _, exportService := setupRouter(t)

	file := xlsx.NewFile()
	_, err := file.AddSheet("Transcripts")
	require.NoError(t, err)
	exportService.On("Export", mock.Anything).Return(file, nil)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/export", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Disposition"), "transcripts.xlsx")
	assert.NotZero(t, w.Body.Len())
}
