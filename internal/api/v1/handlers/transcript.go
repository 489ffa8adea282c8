package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/karimnaderr/speech-to-text-backend/internal/api/errors"
	"github.com/karimnaderr/speech-to-text-backend/internal/api/middleware"
	"github.com/karimnaderr/speech-to-text-backend/internal/api/v1/dto"
	"github.com/karimnaderr/speech-to-text-backend/internal/api/v1/services"
)

// TranscriptHandler handles transcript-related API endpoints
type TranscriptHandler struct {
	service services.TranscriptService
}

// NewTranscriptHandler creates a new transcript handler
func NewTranscriptHandler(service services.TranscriptService) *TranscriptHandler {
	return &TranscriptHandler{
		service: service,
	}
}

// Transcribe handles POST /transcribe/
//
// @Summary Transcribe an uploaded audio file
// @Description Transcribes the uploaded audio, classifies its sentiment and stores the result. Provider failures are recorded and returned with status "error" in the body, not as an HTTP error.
// @Tags transcripts
// @Accept multipart/form-data
// @Produce json
// @Param audio_file formData file true "Audio file to transcribe"
// @Success 200 {object} dto.TranscribeResponse "Handled outcome, including provider failure"
// @Failure 400 {object} errors.APIError "No audio file supplied"
// @Failure 500 {object} errors.APIError "Internal server error"
// @Router /transcribe [post]
func (h *TranscriptHandler) Transcribe(c *gin.Context) {
	file, header, err := c.Request.FormFile("audio_file")
	if err != nil {
		middleware.HandleError(c, errors.NewBadRequestError("No audio file supplied"))
		return
	}
	defer file.Close()

	response, err := h.service.Submit(c.Request.Context(), header.Filename, file)
	if err != nil {
		middleware.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// List handles GET /transcripts/
//
// @Summary List all transcripts
// @Description Returns all stored transcripts, newest first
// @Tags transcripts
// @Produce json
// @Param limit query int false "Maximum number of rows to return" minimum(1)
// @Success 200 {array} dto.TranscriptResponse "List of transcripts"
// @Failure 500 {object} errors.APIError "Internal server error"
// @Router /transcripts [get]
func (h *TranscriptHandler) List(c *gin.Context) {
	var query dto.ListTranscriptsQuery
	if err := middleware.ValidateQuery(c, &query); err != nil {
		middleware.HandleError(c, err)
		return
	}

	response, err := h.service.List(c.Request.Context(), query)
	if err != nil {
		middleware.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// Get handles GET /transcripts/:id
//
// @Summary Get transcript by ID
// @Description Returns a single stored transcript
// @Tags transcripts
// @Produce json
// @Param id path int true "Transcript ID" minimum(1)
// @Success 200 {object} dto.TranscriptResponse "Transcript details"
// @Failure 400 {object} errors.APIError "Bad request - invalid ID"
// @Failure 404 {object} errors.APIError "Transcript not found"
// @Failure 500 {object} errors.APIError "Internal server error"
// @Router /transcripts/{id} [get]
func (h *TranscriptHandler) Get(c *gin.Context) {
	idStr := c.Param("id")
	id, err := strconv.Atoi(idStr)
	if err != nil {
		middleware.HandleError(c, errors.NewBadRequestError("Invalid transcript ID"))
		return
	}

	response, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		middleware.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}
